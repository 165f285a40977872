package series

import (
	"fmt"
	"math"
)

// IsMasked reports whether any point is currently masked.
func (s *Series) IsMasked() bool {
	for _, m := range s.mask {
		if m {
			return true
		}
	}

	return false
}

// MaskedCount returns the number of masked points.
func (s *Series) MaskedCount() int {
	n := 0
	for _, m := range s.mask {
		if m {
			n++
		}
	}

	return n
}

// Mask returns a copy of the mask, allocating an all-false mask for a
// series that has none.
func (s *Series) Mask() []bool {
	if s.mask == nil {
		return make([]bool, len(s.x))
	}

	return append([]bool(nil), s.mask...)
}

func (s *Series) ensureMask() {
	if s.mask == nil {
		s.mask = make([]bool, len(s.x))
	}
}

// MaskGreater masks every point whose real value exceeds threshold.
// Masked points keep their index and value but vanish from reductions.
func (s *Series) MaskGreater(threshold float64) {
	s.ensureMask()

	for i, v := range s.re {
		if v > threshold {
			s.mask[i] = true
		}
	}
}

// MaskLess masks every point whose real value is below threshold.
func (s *Series) MaskLess(threshold float64) {
	s.ensureMask()

	for i, v := range s.re {
		if v < threshold {
			s.mask[i] = true
		}
	}
}

// MaskOutside masks every point whose real value lies outside [lo, hi].
func (s *Series) MaskOutside(lo, hi float64) {
	s.ensureMask()

	for i, v := range s.re {
		if v < lo || v > hi {
			s.mask[i] = true
		}
	}
}

// MaskInvalid masks every point whose value is NaN or infinite in either
// component.
func (s *Series) MaskInvalid() {
	s.ensureMask()

	for i := range s.re {
		if !isFinite(s.re[i]) {
			s.mask[i] = true
			continue
		}

		if s.im != nil && !isFinite(s.im[i]) {
			s.mask[i] = true
		}
	}
}

// MaskClear unmasks every point.
func (s *Series) MaskClear() {
	s.mask = nil
}

// MaskRemoveInPlace permanently deletes all masked points, shrinking the
// series. It fails with ErrEmptyRange when every point is masked.
func (s *Series) MaskRemoveInPlace() error {
	if s.mask == nil {
		return nil
	}

	kept := 0
	for _, m := range s.mask {
		if !m {
			kept++
		}
	}

	if kept == 0 {
		return fmt.Errorf("%w: all points masked", ErrEmptyRange)
	}

	if kept == len(s.x) {
		s.mask = nil
		return nil
	}

	x := make([]float64, 0, kept)
	re := make([]float64, 0, kept)

	var im []float64
	if s.im != nil {
		im = make([]float64, 0, kept)
	}

	for i, m := range s.mask {
		if m {
			continue
		}

		x = append(x, s.x[i])
		re = append(re, s.re[i])

		if im != nil {
			im = append(im, s.im[i])
		}
	}

	s.x, s.re, s.im, s.mask = x, re, im, nil

	return nil
}

// MaskRemoved returns a new series with all masked points deleted.
func (s *Series) MaskRemoved() (*Series, error) {
	out := s.Copy()
	if err := out.MaskRemoveInPlace(); err != nil {
		return nil, err
	}

	return out, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
