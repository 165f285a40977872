package series

import "fmt"

// CropInPlace restricts the domain to [low, high], dropping every point
// outside. It fails with ErrEmptyRange when no points remain; the series
// is unchanged on error.
func (s *Series) CropInPlace(low, high float64) error {
	lo := 0
	for lo < len(s.x) && s.x[lo] < low {
		lo++
	}

	hi := len(s.x)
	for hi > lo && s.x[hi-1] > high {
		hi--
	}

	if lo == hi {
		return fmt.Errorf("%w: [%g, %g]", ErrEmptyRange, low, high)
	}

	s.x = s.x[lo:hi]
	s.re = s.re[lo:hi]

	if s.im != nil {
		s.im = s.im[lo:hi]
	}

	if s.mask != nil {
		s.mask = s.mask[lo:hi]
	}

	return nil
}

// Cropped returns a new series restricted to [low, high].
func (s *Series) Cropped(low, high float64) (*Series, error) {
	out := s.Copy()
	if err := out.CropInPlace(low, high); err != nil {
		return nil, err
	}

	return out, nil
}

// ShiftInPlace translates every coordinate by dx. Values are untouched.
func (s *Series) ShiftInPlace(dx float64) {
	for i := range s.x {
		s.x[i] += dx
	}
}

// Shifted returns a new series with every coordinate translated by dx.
func (s *Series) Shifted(dx float64) *Series {
	out := s.Copy()
	out.ShiftInPlace(dx)

	return out
}

// MeanRemoveInPlace subtracts the mean of the unmasked values from every
// point, typically before windowing and spectral analysis.
func (s *Series) MeanRemoveInPlace() {
	s.AddScalarInPlace(-s.complexMean())
}

// MeanRemoved returns a new series with the mean subtracted.
func (s *Series) MeanRemoved() *Series {
	out := s.Copy()
	out.MeanRemoveInPlace()

	return out
}

// CoordScaleInPlace multiplies every coordinate by the factor f, which
// must be positive to preserve the coordinate ordering.
func (s *Series) CoordScaleInPlace(f float64) error {
	if f <= 0 {
		return fmt.Errorf("%w: coordinate scale factor must be > 0: %g", ErrShapeMismatch, f)
	}

	for i := range s.x {
		s.x[i] *= f
	}

	return nil
}

// CoordScaled returns a new series with every coordinate multiplied by f.
func (s *Series) CoordScaled(f float64) (*Series, error) {
	out := s.Copy()
	if err := out.CoordScaleInPlace(f); err != nil {
		return nil, err
	}

	return out, nil
}

// ValueScaleInPlace multiplies every value by the real factor f. It is
// ScaleInPlace under the name the unit-conversion collaborator uses.
func (s *Series) ValueScaleInPlace(f float64) {
	s.ScaleInPlace(f)
}

// ValueScaled returns a new series with every value multiplied by f.
func (s *Series) ValueScaled(f float64) *Series {
	return s.Scale(f)
}

// Convert rescales both axes of a series by external unit-conversion
// factors. With inverse set, the factors divide instead of multiply.
func Convert(s *Series, coordFactor, valueFactor float64, inverse bool) (*Series, error) {
	if inverse {
		if coordFactor == 0 || valueFactor == 0 {
			return nil, fmt.Errorf("%w: zero conversion factor", ErrShapeMismatch)
		}

		coordFactor = 1 / coordFactor
		valueFactor = 1 / valueFactor
	}

	out, err := s.CoordScaled(coordFactor)
	if err != nil {
		return nil, err
	}

	out.ScaleInPlace(valueFactor)

	return out, nil
}
