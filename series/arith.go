package series

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"
)

// checkGrid validates element-wise algebra between s and o.
func (s *Series) checkGrid(o *Series) error {
	if !s.sameGrid(o) {
		return fmt.Errorf("%w: use ResampleCommon or Resampled first", ErrDomainMismatch)
	}

	return nil
}

// mergeMask folds o's mask into s after an element-wise operation.
func (s *Series) mergeMask(o *Series) {
	if o.mask == nil {
		return
	}

	s.ensureMask()
	for i, m := range o.mask {
		if m {
			s.mask[i] = true
		}
	}
}

// promoteComplex allocates the imaginary component when o carries one.
func (s *Series) promoteComplex(o *Series) {
	if s.im == nil && o.im != nil {
		s.im = make([]float64, len(s.re))
	}
}

// AddInPlace adds o element-wise. Both series must share an identical
// coordinate grid. Masks are merged.
func (s *Series) AddInPlace(o *Series) error {
	if err := s.checkGrid(o); err != nil {
		return err
	}

	s.promoteComplex(o)
	vecmath.AddBlockInPlace(s.re, o.re)

	if o.im != nil {
		vecmath.AddBlockInPlace(s.im, o.im)
	}

	s.mergeMask(o)

	return nil
}

// Add returns a new series holding the element-wise sum.
func (s *Series) Add(o *Series) (*Series, error) {
	out := s.Copy()
	if err := out.AddInPlace(o); err != nil {
		return nil, err
	}

	return out, nil
}

// SubInPlace subtracts o element-wise.
func (s *Series) SubInPlace(o *Series) error {
	if err := s.checkGrid(o); err != nil {
		return err
	}

	s.promoteComplex(o)
	for i := range s.re {
		s.re[i] -= o.re[i]
	}

	if o.im != nil {
		for i := range s.im {
			s.im[i] -= o.im[i]
		}
	}

	s.mergeMask(o)

	return nil
}

// Sub returns a new series holding the element-wise difference.
func (s *Series) Sub(o *Series) (*Series, error) {
	out := s.Copy()
	if err := out.SubInPlace(o); err != nil {
		return nil, err
	}

	return out, nil
}

// MulInPlace multiplies by o element-wise, with full complex semantics
// when either operand is complex.
func (s *Series) MulInPlace(o *Series) error {
	if err := s.checkGrid(o); err != nil {
		return err
	}

	if s.im == nil && o.im == nil {
		vecmath.MulBlockInPlace(s.re, o.re)
		s.mergeMask(o)

		return nil
	}

	s.promoteComplex(o)
	for i := range s.re {
		a := complex(s.re[i], s.im[i])

		b := complex(o.re[i], 0)
		if o.im != nil {
			b = complex(o.re[i], o.im[i])
		}

		p := a * b
		s.re[i], s.im[i] = real(p), imag(p)
	}

	s.mergeMask(o)

	return nil
}

// Mul returns a new series holding the element-wise product.
func (s *Series) Mul(o *Series) (*Series, error) {
	out := s.Copy()
	if err := out.MulInPlace(o); err != nil {
		return nil, err
	}

	return out, nil
}

// DivInPlace divides by o element-wise. Division by a zero sample yields
// the IEEE result (Inf or NaN); MaskInvalid can hide those afterwards.
func (s *Series) DivInPlace(o *Series) error {
	if err := s.checkGrid(o); err != nil {
		return err
	}

	if s.im == nil && o.im == nil {
		for i := range s.re {
			s.re[i] /= o.re[i]
		}

		s.mergeMask(o)

		return nil
	}

	s.promoteComplex(o)
	for i := range s.re {
		a := complex(s.re[i], s.im[i])

		b := complex(o.re[i], 0)
		if o.im != nil {
			b = complex(o.re[i], o.im[i])
		}

		q := a / b
		s.re[i], s.im[i] = real(q), imag(q)
	}

	s.mergeMask(o)

	return nil
}

// Div returns a new series holding the element-wise quotient.
func (s *Series) Div(o *Series) (*Series, error) {
	out := s.Copy()
	if err := out.DivInPlace(o); err != nil {
		return nil, err
	}

	return out, nil
}

// PowInPlace raises every value to the power p.
func (s *Series) PowInPlace(p float64) {
	if s.im == nil {
		for i := range s.re {
			s.re[i] = math.Pow(s.re[i], p)
		}

		return
	}

	for i := range s.re {
		v := cmplx.Pow(complex(s.re[i], s.im[i]), complex(p, 0))
		s.re[i], s.im[i] = real(v), imag(v)
	}
}

// Pow returns a new series with every value raised to the power p.
func (s *Series) Pow(p float64) *Series {
	out := s.Copy()
	out.PowInPlace(p)

	return out
}

// ScaleInPlace multiplies every value by the real factor f.
func (s *Series) ScaleInPlace(f float64) {
	vecmath.ScaleBlock(s.re, s.re, f)

	if s.im != nil {
		vecmath.ScaleBlock(s.im, s.im, f)
	}
}

// Scale returns a new series with every value multiplied by f.
func (s *Series) Scale(f float64) *Series {
	out := s.Copy()
	out.ScaleInPlace(f)

	return out
}

// AddScalarInPlace adds the complex scalar c to every value.
func (s *Series) AddScalarInPlace(c complex128) {
	if imag(c) != 0 && s.im == nil {
		s.im = make([]float64, len(s.re))
	}

	for i := range s.re {
		s.re[i] += real(c)
	}

	if imag(c) != 0 {
		for i := range s.im {
			s.im[i] += imag(c)
		}
	}
}

// AddScalar returns a new series with c added to every value.
func (s *Series) AddScalar(c complex128) *Series {
	out := s.Copy()
	out.AddScalarInPlace(c)

	return out
}
