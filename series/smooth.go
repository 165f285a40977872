package series

import (
	"fmt"
	"math"

	"github.com/nrkit/relseries/smooth"
)

// SmoothInPlace applies Savitzky-Golay smoothing of the given polynomial
// order. The window is given as a coordinate length and converted to a
// sample count n = round(windowLength/dx), bumped by one when even so the
// window stays symmetric. The series must be regularly sampled and
// unmasked.
//
// It fails with ErrInvalidWindow when the window rounds to fewer samples
// than order+1 or to more samples than the series holds.
func (s *Series) SmoothInPlace(windowLength float64, order int) error {
	if err := s.requireUnmasked("smoothing"); err != nil {
		return err
	}

	dx, err := s.DX()
	if err != nil {
		return err
	}

	n := int(math.Round(windowLength / dx))
	if n%2 == 0 {
		n++
	}

	if n <= order {
		return fmt.Errorf("%w: length %g rounds to %d samples, order %d needs more",
			ErrInvalidWindow, windowLength, n, order)
	}

	if n > len(s.x) {
		return fmt.Errorf("%w: length %g rounds to %d samples, series has %d",
			ErrInvalidWindow, windowLength, n, len(s.x))
	}

	re, err := smooth.Filter(s.re, n, order)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}

	if s.im != nil {
		im, err := smooth.Filter(s.im, n, order)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidWindow, err)
		}

		s.im = im
	}

	s.re = re

	return nil
}

// Smoothed returns a new Savitzky-Golay-smoothed series.
func (s *Series) Smoothed(windowLength float64, order int) (*Series, error) {
	out := s.Copy()
	if err := out.SmoothInPlace(windowLength, order); err != nil {
		return nil, err
	}

	return out, nil
}
