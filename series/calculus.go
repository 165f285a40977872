package series

import (
	"fmt"

	"github.com/nrkit/relseries/interp"
)

// splines builds cubic splines for the real and (when present) imaginary
// components. Masked series are rejected.
func (s *Series) splines(op string) (re, im *interp.Spline, err error) {
	if err := s.requireUnmasked(op); err != nil {
		return nil, nil, err
	}

	if len(s.x) < 2 {
		return nil, nil, fmt.Errorf("%w: %s needs at least 2 points", ErrShapeMismatch, op)
	}

	re, err = interp.NewSpline(s.x, s.re)
	if err != nil {
		return nil, nil, fmt.Errorf("series: %s: %w", op, err)
	}

	if s.im != nil {
		im, err = interp.NewSpline(s.x, s.im)
		if err != nil {
			return nil, nil, fmt.Errorf("series: %s: %w", op, err)
		}
	}

	return re, im, nil
}

// Eval returns the cubic-spline-interpolated value at coordinate x. It
// fails with ErrOutOfBounds outside [XMin, XMax] and ErrMaskedData on a
// masked series.
func (s *Series) Eval(x float64) (complex128, error) {
	if x < s.XMin() || x > s.XMax() {
		return 0, fmt.Errorf("%w: %g not in [%g, %g]", ErrOutOfBounds, x, s.XMin(), s.XMax())
	}

	reSpl, imSpl, err := s.splines("evaluation")
	if err != nil {
		return 0, err
	}

	re, err := reSpl.At(x)
	if err != nil {
		return 0, fmt.Errorf("series: evaluation: %w", err)
	}

	if imSpl == nil {
		return complex(re, 0), nil
	}

	im, err := imSpl.At(x)
	if err != nil {
		return 0, fmt.Errorf("series: evaluation: %w", err)
	}

	return complex(re, im), nil
}

// EvalMany evaluates the series at every coordinate of xs.
func (s *Series) EvalMany(xs []float64) ([]complex128, error) {
	reSpl, imSpl, err := s.splines("evaluation")
	if err != nil {
		return nil, err
	}

	out := make([]complex128, len(xs))
	for i, x := range xs {
		if x < s.XMin() || x > s.XMax() {
			return nil, fmt.Errorf("%w: %g not in [%g, %g]", ErrOutOfBounds, x, s.XMin(), s.XMax())
		}

		re, err := reSpl.At(x)
		if err != nil {
			return nil, fmt.Errorf("series: evaluation: %w", err)
		}

		im := 0.0
		if imSpl != nil {
			im, err = imSpl.At(x)
			if err != nil {
				return nil, fmt.Errorf("series: evaluation: %w", err)
			}
		}

		out[i] = complex(re, im)
	}

	return out, nil
}

// DifferentiateInPlace replaces the values with the finite-difference
// derivative with respect to the coordinate: central differences in the
// interior, one-sided at the boundaries. The grid may be non-uniform.
func (s *Series) DifferentiateInPlace() error {
	if err := s.requireUnmasked("differentiation"); err != nil {
		return err
	}

	if len(s.x) < 2 {
		return fmt.Errorf("%w: differentiation needs at least 2 points", ErrShapeMismatch)
	}

	s.re = finiteDifference(s.x, s.re)
	if s.im != nil {
		s.im = finiteDifference(s.x, s.im)
	}

	return nil
}

// Differentiated returns a new series holding the finite-difference
// derivative. The result has the same length as the input.
func (s *Series) Differentiated() (*Series, error) {
	out := s.Copy()
	if err := out.DifferentiateInPlace(); err != nil {
		return nil, err
	}

	return out, nil
}

// SplineDifferentiated returns a new series holding the derivative of the
// natural cubic spline through the data, evaluated at the sample points.
func (s *Series) SplineDifferentiated() (*Series, error) {
	reSpl, imSpl, err := s.splines("spline differentiation")
	if err != nil {
		return nil, err
	}

	out := s.Copy()
	for i, x := range s.x {
		v, err := reSpl.Derivative(x)
		if err != nil {
			return nil, fmt.Errorf("series: spline differentiation: %w", err)
		}

		out.re[i] = v

		if imSpl != nil {
			v, err = imSpl.Derivative(x)
			if err != nil {
				return nil, fmt.Errorf("series: spline differentiation: %w", err)
			}

			out.im[i] = v
		}
	}

	return out, nil
}

// IntegrateInPlace replaces the values with the cumulative spline
// integral from the domain start, so the first value becomes 0 and
// evaluating the result at two points and subtracting gives the definite
// integral between them.
func (s *Series) IntegrateInPlace() error {
	reSpl, imSpl, err := s.splines("integration")
	if err != nil {
		return err
	}

	for i, x := range s.x {
		v, err := reSpl.Antiderivative(x)
		if err != nil {
			return fmt.Errorf("series: integration: %w", err)
		}

		s.re[i] = v

		if imSpl != nil {
			v, err = imSpl.Antiderivative(x)
			if err != nil {
				return fmt.Errorf("series: integration: %w", err)
			}

			s.im[i] = v
		}
	}

	return nil
}

// Integrated returns a new series holding the cumulative spline integral
// from the domain start.
func (s *Series) Integrated() (*Series, error) {
	out := s.Copy()
	if err := out.IntegrateInPlace(); err != nil {
		return nil, err
	}

	return out, nil
}

// finiteDifference returns dy/dx with central differences in the interior
// and one-sided differences at the boundaries.
func finiteDifference(x, y []float64) []float64 {
	n := len(y)
	out := make([]float64, n)

	if n == 2 {
		d := (y[1] - y[0]) / (x[1] - x[0])
		out[0], out[1] = d, d

		return out
	}

	out[0] = (y[1] - y[0]) / (x[1] - x[0])
	out[n-1] = (y[n-1] - y[n-2]) / (x[n-1] - x[n-2])

	for i := 1; i < n-1; i++ {
		out[i] = (y[i+1] - y[i-1]) / (x[i+1] - x[i-1])
	}

	return out
}
