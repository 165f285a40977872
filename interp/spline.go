package interp

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrTooFewKnots indicates fewer knots than a cubic spline needs.
	ErrTooFewKnots = errors.New("interp: spline requires at least 2 knots")
	// ErrNotIncreasing indicates knots that are not strictly increasing.
	ErrNotIncreasing = errors.New("interp: knots must be strictly increasing")
	// ErrLengthMismatch indicates knot and value slices of different lengths.
	ErrLengthMismatch = errors.New("interp: knots and values must have same length")
	// ErrOutOfBounds indicates evaluation outside the knot domain.
	ErrOutOfBounds = errors.New("interp: evaluation point outside spline domain")
)

// Spline is a natural cubic spline: piecewise cubic with continuous first and
// second derivatives and zero second derivative at both endpoints.
//
// On segment i the spline is
//
//	s(x) = a[i] + b[i]*h + c[i]*h^2 + d[i]*h^3,  h = x - knot[i]
type Spline struct {
	x []float64
	a []float64
	b []float64
	c []float64
	d []float64
	// cum[i] is the integral from x[0] to x[i].
	cum []float64
}

// NewSpline constructs a natural cubic spline through (x[i], y[i]).
//
// x must be strictly increasing with at least 2 points. With exactly 2 points
// the spline degenerates to linear interpolation.
func NewSpline(x, y []float64) (*Spline, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(x), len(y))
	}

	n := len(x)
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewKnots, n)
	}

	for i := 1; i < n; i++ {
		if !(x[i] > x[i-1]) {
			return nil, fmt.Errorf("%w: at index %d", ErrNotIncreasing, i)
		}
	}

	s := &Spline{
		x: append([]float64(nil), x...),
		a: append([]float64(nil), y...),
		b: make([]float64, n-1),
		c: make([]float64, n),
		d: make([]float64, n-1),
	}

	if n == 2 {
		s.b[0] = (y[1] - y[0]) / (x[1] - x[0])
		s.buildCumulative()

		return s, nil
	}

	// Solve the tridiagonal system for second-derivative coefficients c
	// using the Thomas algorithm. Natural boundary: c[0] = c[n-1] = 0.
	h := make([]float64, n-1)
	for i := range h {
		h[i] = x[i+1] - x[i]
	}

	diag := make([]float64, n)
	rhs := make([]float64, n)
	diag[0] = 1

	for i := 1; i < n-1; i++ {
		diag[i] = 2 * (h[i-1] + h[i])
		rhs[i] = 3 * ((y[i+1]-y[i])/h[i] - (y[i]-y[i-1])/h[i-1])
	}

	diag[n-1] = 1

	// Forward elimination. Sub/super diagonals are h[i-1] and h[i]; the
	// first and last rows are identity rows, so elimination starts at 1.
	scratch := make([]float64, n)
	for i := 1; i < n-1; i++ {
		m := h[i-1] / diag[i-1]
		diag[i] -= m * scratch[i-1]
		rhs[i] -= m * rhs[i-1]
		scratch[i] = h[i]
	}

	s.c[n-1] = rhs[n-1] / diag[n-1]
	for i := n - 2; i >= 0; i-- {
		s.c[i] = (rhs[i] - scratch[i]*s.c[i+1]) / diag[i]
	}

	for i := 0; i < n-1; i++ {
		s.b[i] = (y[i+1]-y[i])/h[i] - h[i]*(2*s.c[i]+s.c[i+1])/3
		s.d[i] = (s.c[i+1] - s.c[i]) / (3 * h[i])
	}

	s.buildCumulative()

	return s, nil
}

func (s *Spline) buildCumulative() {
	s.cum = make([]float64, len(s.x))
	for i := 0; i < len(s.x)-1; i++ {
		s.cum[i+1] = s.cum[i] + s.segmentIntegral(i, s.x[i+1]-s.x[i])
	}
}

// Domain returns the inclusive interpolation domain [min, max].
func (s *Spline) Domain() (min, max float64) {
	return s.x[0], s.x[len(s.x)-1]
}

// segment returns the index i such that x lies in [knot[i], knot[i+1]].
func (s *Spline) segment(x float64) (int, error) {
	if x < s.x[0] || x > s.x[len(s.x)-1] {
		return 0, fmt.Errorf("%w: %g not in [%g, %g]", ErrOutOfBounds, x, s.x[0], s.x[len(s.x)-1])
	}

	lo, hi := 0, len(s.x)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if s.x[mid] <= x {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo, nil
}

// At evaluates the spline at x.
func (s *Spline) At(x float64) (float64, error) {
	i, err := s.segment(x)
	if err != nil {
		return math.NaN(), err
	}

	h := x - s.x[i]

	return s.a[i] + h*(s.b[i]+h*(s.c[i]+h*s.d[i])), nil
}

// AtMany evaluates the spline at every point of xs and returns a new slice.
func (s *Spline) AtMany(xs []float64) ([]float64, error) {
	out := make([]float64, len(xs))

	for i, x := range xs {
		v, err := s.At(x)
		if err != nil {
			return nil, err
		}

		out[i] = v
	}

	return out, nil
}

// Derivative evaluates the first derivative of the spline at x.
func (s *Spline) Derivative(x float64) (float64, error) {
	i, err := s.segment(x)
	if err != nil {
		return math.NaN(), err
	}

	h := x - s.x[i]

	return s.b[i] + h*(2*s.c[i]+3*h*s.d[i]), nil
}

// SecondDerivative evaluates the second derivative of the spline at x.
func (s *Spline) SecondDerivative(x float64) (float64, error) {
	i, err := s.segment(x)
	if err != nil {
		return math.NaN(), err
	}

	h := x - s.x[i]

	return 2*s.c[i] + 6*h*s.d[i], nil
}

// segmentIntegral integrates segment i from its left knot over length h.
func (s *Spline) segmentIntegral(i int, h float64) float64 {
	return h * (s.a[i] + h*(s.b[i]/2+h*(s.c[i]/3+h*s.d[i]/4)))
}

// Antiderivative returns the definite integral from the domain start to x.
func (s *Spline) Antiderivative(x float64) (float64, error) {
	i, err := s.segment(x)
	if err != nil {
		return math.NaN(), err
	}

	return s.cum[i] + s.segmentIntegral(i, x-s.x[i]), nil
}

// Integral returns the definite integral over [a, b]. A reversed interval
// negates the result.
func (s *Spline) Integral(a, b float64) (float64, error) {
	fa, err := s.Antiderivative(a)
	if err != nil {
		return math.NaN(), err
	}

	fb, err := s.Antiderivative(b)
	if err != nil {
		return math.NaN(), err
	}

	return fb - fa, nil
}

// Resample interpolates (x, y) onto newX in one shot and returns the values.
// Every point of newX must lie inside [x[0], x[len(x)-1]].
func Resample(x, y, newX []float64) ([]float64, error) {
	s, err := NewSpline(x, y)
	if err != nil {
		return nil, err
	}

	return s.AtMany(newX)
}
