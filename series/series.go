package series

import (
	"fmt"
	"math"
)

// defaultStepTolerance is the relative step deviation below which a
// coordinate grid counts as uniformly sampled.
const defaultStepTolerance = 1e-10

// Series is an ordered sequence of (coordinate, value) pairs. Coordinates
// are strictly increasing and free of NaN. Values are stored as separate
// real and imaginary components; the imaginary component is nil for
// real-valued series.
type Series struct {
	x  []float64
	re []float64
	im []float64
	// mask[i] marks point i as hidden from reductions. nil when nothing
	// is masked; never shorter than x once allocated.
	mask []bool
}

// New constructs a real-valued series from coordinate/value arrays. Both
// slices are copied. It fails with ErrShapeMismatch when lengths differ or
// coordinates are not strictly increasing or contain NaN, and ErrEmpty on
// zero-length input.
func New(x, v []float64) (*Series, error) {
	if err := validateArrays(len(x), len(v), x); err != nil {
		return nil, err
	}

	return &Series{
		x:  append([]float64(nil), x...),
		re: append([]float64(nil), v...),
	}, nil
}

// NewComplex constructs a complex-valued series from coordinate/value
// arrays. Validation matches New.
func NewComplex(x []float64, v []complex128) (*Series, error) {
	if err := validateArrays(len(x), len(v), x); err != nil {
		return nil, err
	}

	s := &Series{
		x:  append([]float64(nil), x...),
		re: make([]float64, len(v)),
		im: make([]float64, len(v)),
	}

	for i, c := range v {
		s.re[i] = real(c)
		s.im[i] = imag(c)
	}

	return s, nil
}

func validateArrays(nx, nv int, x []float64) error {
	if nx == 0 {
		return ErrEmpty
	}

	if nx != nv {
		return fmt.Errorf("%w: %d coordinates, %d values", ErrShapeMismatch, nx, nv)
	}

	if math.IsNaN(x[0]) {
		return fmt.Errorf("%w: NaN coordinate at index 0", ErrShapeMismatch)
	}

	for i := 1; i < nx; i++ {
		if math.IsNaN(x[i]) {
			return fmt.Errorf("%w: NaN coordinate at index %d", ErrShapeMismatch, i)
		}

		if !(x[i] > x[i-1]) {
			return fmt.Errorf("%w: coordinates not strictly increasing at index %d", ErrShapeMismatch, i)
		}
	}

	return nil
}

// Copy returns a deep copy. Mutating the copy never affects the original.
func (s *Series) Copy() *Series {
	out := &Series{
		x:  append([]float64(nil), s.x...),
		re: append([]float64(nil), s.re...),
	}

	if s.im != nil {
		out.im = append([]float64(nil), s.im...)
	}

	if s.mask != nil {
		out.mask = append([]bool(nil), s.mask...)
	}

	return out
}

// Len returns the number of points, masked points included.
func (s *Series) Len() int { return len(s.x) }

// IsComplex reports whether the series carries an imaginary component.
func (s *Series) IsComplex() bool { return s.im != nil }

// X returns the coordinate of point i.
func (s *Series) X(i int) float64 { return s.x[i] }

// At returns the value of point i.
func (s *Series) At(i int) complex128 {
	if s.im == nil {
		return complex(s.re[i], 0)
	}

	return complex(s.re[i], s.im[i])
}

// Xs returns a copy of the coordinate array.
func (s *Series) Xs() []float64 {
	return append([]float64(nil), s.x...)
}

// Values returns a copy of the values as complex numbers.
func (s *Series) Values() []complex128 {
	out := make([]complex128, len(s.re))
	for i := range out {
		out[i] = s.At(i)
	}

	return out
}

// FloatValues returns a copy of the real component of the values.
func (s *Series) FloatValues() []float64 {
	return append([]float64(nil), s.re...)
}

// XMin returns the smallest coordinate.
func (s *Series) XMin() float64 { return s.x[0] }

// XMax returns the largest coordinate.
func (s *Series) XMax() float64 { return s.x[len(s.x)-1] }

// DX returns the uniform coordinate step, or ErrNonUniformSampling when
// the grid is not uniform within the default tolerance.
func (s *Series) DX() (float64, error) {
	if len(s.x) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 points for a step", ErrNonUniformSampling)
	}

	if !s.IsRegularlySampled(0) {
		return 0, fmt.Errorf("%w: coordinate steps vary beyond tolerance", ErrNonUniformSampling)
	}

	return (s.x[len(s.x)-1] - s.x[0]) / float64(len(s.x)-1), nil
}

// IsRegularlySampled reports whether all coordinate steps agree with the
// mean step within relative tolerance tol. tol <= 0 selects the default
// tolerance.
func (s *Series) IsRegularlySampled(tol float64) bool {
	if len(s.x) < 2 {
		return false
	}

	if tol <= 0 {
		tol = defaultStepTolerance
	}

	mean := (s.x[len(s.x)-1] - s.x[0]) / float64(len(s.x)-1)
	limit := tol * math.Abs(mean)

	for i := 1; i < len(s.x); i++ {
		if math.Abs(s.x[i]-s.x[i-1]-mean) > limit {
			return false
		}
	}

	return true
}

// sameGrid reports whether two series share an identical coordinate grid.
func (s *Series) sameGrid(o *Series) bool {
	if len(s.x) != len(o.x) {
		return false
	}

	for i := range s.x {
		if s.x[i] != o.x[i] {
			return false
		}
	}

	return true
}

// requireUnmasked returns ErrMaskedData when any point is masked.
func (s *Series) requireUnmasked(op string) error {
	if s.IsMasked() {
		return fmt.Errorf("%w: %s", ErrMaskedData, op)
	}

	return nil
}
