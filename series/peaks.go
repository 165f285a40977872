package series

import (
	"fmt"

	"github.com/nrkit/relseries/peaks"
)

// LocalMaxima returns the local maxima of the real values, refined by
// quadratic interpolation and filtered by the given options (minimum
// height, prominence, width). Masked points are excluded before
// detection, exactly as they are from reductions.
func (s *Series) LocalMaxima(opts ...peaks.Option) ([]peaks.Peak, error) {
	x, y, err := s.unmaskedReal()
	if err != nil {
		return nil, err
	}

	found, err := peaks.Find(x, y, opts...)
	if err != nil {
		return nil, fmt.Errorf("series: local maxima: %w", err)
	}

	return found, nil
}

// LocalMinima returns the local minima of the real values; see
// LocalMaxima for filtering and masking behavior.
func (s *Series) LocalMinima(opts ...peaks.Option) ([]peaks.Peak, error) {
	x, y, err := s.unmaskedReal()
	if err != nil {
		return nil, err
	}

	found, err := peaks.FindMinima(x, y, opts...)
	if err != nil {
		return nil, fmt.Errorf("series: local minima: %w", err)
	}

	return found, nil
}

// unmaskedReal returns the coordinates and real values of the unmasked
// points, sharing storage with the series when nothing is masked.
func (s *Series) unmaskedReal() ([]float64, []float64, error) {
	if !s.IsMasked() {
		return s.x, s.re, nil
	}

	kept := len(s.x) - s.MaskedCount()
	if kept == 0 {
		return nil, nil, fmt.Errorf("%w: all points masked", ErrEmptyRange)
	}

	x := make([]float64, 0, kept)
	y := make([]float64, 0, kept)

	for i, m := range s.mask {
		if m {
			continue
		}

		x = append(x, s.x[i])
		y = append(y, s.re[i])
	}

	return x, y, nil
}
