package series

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Real returns a new real-valued series holding the real component.
func (s *Series) Real() *Series {
	out := &Series{
		x:  append([]float64(nil), s.x...),
		re: append([]float64(nil), s.re...),
	}

	if s.mask != nil {
		out.mask = append([]bool(nil), s.mask...)
	}

	return out
}

// Imag returns a new real-valued series holding the imaginary component,
// which is zero everywhere for a real series.
func (s *Series) Imag() *Series {
	out := &Series{
		x:  append([]float64(nil), s.x...),
		re: make([]float64, len(s.re)),
	}

	if s.im != nil {
		copy(out.re, s.im)
	}

	if s.mask != nil {
		out.mask = append([]bool(nil), s.mask...)
	}

	return out
}

// Abs returns a new real-valued series holding |value|.
func (s *Series) Abs() *Series {
	out := &Series{
		x:  append([]float64(nil), s.x...),
		re: make([]float64, len(s.re)),
	}

	if s.im == nil {
		for i, v := range s.re {
			out.re[i] = math.Abs(v)
		}
	} else {
		vecmath.Magnitude(out.re, s.re, s.im)
	}

	if s.mask != nil {
		out.mask = append([]bool(nil), s.mask...)
	}

	return out
}

// Conj returns a new series holding the complex conjugate.
func (s *Series) Conj() *Series {
	out := s.Copy()
	if out.im != nil {
		vecmath.ScaleBlock(out.im, out.im, -1)
	}

	return out
}

// Phase returns a new real-valued series holding arg(value) in (-pi, pi].
func (s *Series) Phase() *Series {
	out := &Series{
		x:  append([]float64(nil), s.x...),
		re: make([]float64, len(s.re)),
	}

	if s.im != nil {
		for i := range s.re {
			out.re[i] = math.Atan2(s.im[i], s.re[i])
		}
	} else {
		for i, v := range s.re {
			out.re[i] = math.Atan2(0, v) // 0 or pi
		}
	}

	if s.mask != nil {
		out.mask = append([]bool(nil), s.mask...)
	}

	return out
}

// UnfoldedPhase returns a new real-valued series holding the phase with
// the +/-2*pi wrap discontinuities removed by cumulative unwrapping.
func (s *Series) UnfoldedPhase() *Series {
	out := s.Phase()

	offset := 0.0
	prev := out.re[0]
	for i := 1; i < len(out.re); i++ {
		raw := out.re[i]

		d := raw - prev
		switch {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}

		out.re[i] = raw + offset
		prev = raw
	}

	return out
}
