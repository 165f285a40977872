package series

import (
	"math"

	"github.com/nrkit/relseries/stats"
)

// Reductions operate on the real component of the values and skip masked
// points. For a complex series, reduce a projection (Abs(), Imag(), ...)
// instead when another component is wanted.

// Mean returns the mean of the unmasked real values, NaN when every point
// is masked.
func (s *Series) Mean() float64 {
	return stats.Mean(s.re, s.mask)
}

// Min returns the smallest unmasked real value.
func (s *Series) Min() float64 {
	return stats.Calculate(s.re, s.mask).Min
}

// Max returns the largest unmasked real value.
func (s *Series) Max() float64 {
	return stats.Calculate(s.re, s.mask).Max
}

// AbsMax returns the largest |value| over the unmasked points.
func (s *Series) AbsMax() float64 {
	if s.im == nil {
		return stats.Calculate(s.re, s.mask).AbsMax
	}

	best := math.NaN()
	for i := range s.re {
		if s.mask != nil && s.mask[i] {
			continue
		}

		a := math.Hypot(s.re[i], s.im[i])
		if math.IsNaN(best) || a > best {
			best = a
		}
	}

	return best
}

// XAtAbsMax returns the coordinate of the point with the largest |value|
// over the unmasked points.
func (s *Series) XAtAbsMax() float64 {
	pos := -1
	best := 0.0

	for i := range s.re {
		if s.mask != nil && s.mask[i] {
			continue
		}

		a := math.Abs(s.re[i])
		if s.im != nil {
			a = math.Hypot(s.re[i], s.im[i])
		}

		if pos < 0 || a > best {
			best = a
			pos = i
		}
	}

	if pos < 0 {
		return math.NaN()
	}

	return s.x[pos]
}

// Sum returns the sum of the unmasked values.
func (s *Series) Sum() complex128 {
	var re, im float64

	for i := range s.re {
		if s.mask != nil && s.mask[i] {
			continue
		}

		re += s.re[i]
		if s.im != nil {
			im += s.im[i]
		}
	}

	return complex(re, im)
}

// Statistics returns full single-pass statistics of the unmasked real
// values.
func (s *Series) Statistics() stats.Stats {
	return stats.Calculate(s.re, s.mask)
}

// complexMean returns the mean value over the unmasked points.
func (s *Series) complexMean() complex128 {
	var re, im float64
	count := 0

	for i := range s.re {
		if s.mask != nil && s.mask[i] {
			continue
		}

		count++
		re += s.re[i]
		if s.im != nil {
			im += s.im[i]
		}
	}

	if count == 0 {
		return complex(math.NaN(), math.NaN())
	}

	return complex(re/float64(count), im/float64(count))
}
