// Package window generates taper functions used to condition a waveform
// before spectral analysis.
//
// Besides the classic cosine windows it carries the Planck taper, which is
// the customary choice for gravitational-waveform conditioning because it
// is exactly flat over the untapered region.
package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeKaiser
	TypeTukey
	TypePlanck
)

// Option configures window generation.
type Option func(*config)

type config struct {
	alpha    float64
	periodic bool
}

func defaultConfig() config {
	return config{alpha: 0.5}
}

// WithAlpha configures the shape parameter of parametric windows: the
// tapered fraction for Tukey and Planck, beta for Kaiser.
func WithAlpha(v float64) Option {
	return func(c *config) {
		if v >= 0 {
			c.alpha = v
		}
	}
}

// WithPeriodic configures periodic form (FFT framing) instead of the
// symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Generate returns window coefficients of the given length.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)
	for i := range out {
		x := samplePosition(i, length, cfg.periodic)
		out[i] = evalWindow(t, x, cfg)
	}

	return out
}

// Apply multiplies buf in place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}

	coeffs := Generate(t, len(buf), opts...)

	vecmath.MulBlockInPlace(buf, coeffs)
}

// ApplyCoefficients multiplies samples with coefficients and returns a new
// slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

// Tukey returns Tukey window coefficients with tapered fraction alpha.
func Tukey(size int, alpha float64, opts ...Option) ([]float64, error) {
	if size <= 0 || alpha < 0 || alpha > 1 {
		return nil, validateTukey(size, alpha)
	}

	return Generate(TypeTukey, size, append(opts, WithAlpha(alpha))...), nil
}

// Planck returns Planck-taper window coefficients with tapered fraction
// epsilon at each edge.
func Planck(size int, epsilon float64, opts ...Option) ([]float64, error) {
	if size <= 0 || epsilon < 0 || epsilon > 0.5 {
		return nil, validatePlanck(size, epsilon)
	}

	return Generate(TypePlanck, size, append(opts, WithAlpha(epsilon))...), nil
}

// Hann returns Hann window coefficients.
func Hann(size int, opts ...Option) ([]float64, error) {
	return Generate(TypeHann, size, opts...), validateLength(size)
}

// Hamming returns Hamming window coefficients.
func Hamming(size int, opts ...Option) ([]float64, error) {
	return Generate(TypeHamming, size, opts...), validateLength(size)
}

// Blackman returns Blackman window coefficients.
func Blackman(size int, opts ...Option) ([]float64, error) {
	return Generate(TypeBlackman, size, opts...), validateLength(size)
}

// Kaiser returns Kaiser window coefficients with shape parameter beta.
func Kaiser(size int, beta float64, opts ...Option) ([]float64, error) {
	if size <= 0 || beta < 0 {
		return nil, validateKaiser(size, beta)
	}

	return Generate(TypeKaiser, size, append(opts, WithAlpha(beta))...), nil
}

func evalWindow(t Type, x float64, cfg config) float64 {
	if x < 0 {
		x = 0
	}

	if x > 1 {
		x = 1
	}

	switch t {
	case TypeRectangular:
		return 1
	case TypeHann:
		return 0.5 - 0.5*math.Cos(2*math.Pi*x)
	case TypeHamming:
		return 0.54 - 0.46*math.Cos(2*math.Pi*x)
	case TypeBlackman:
		return 0.42 - 0.5*math.Cos(2*math.Pi*x) + 0.08*math.Cos(4*math.Pi*x)
	case TypeKaiser:
		return kaiserAt(x, cfg.alpha)
	case TypeTukey:
		return tukeyAt(x, cfg.alpha)
	case TypePlanck:
		return planckAt(x, cfg.alpha)
	default:
		return 1
	}
}

func samplePosition(n, size int, periodic bool) float64 {
	if size <= 1 {
		return 0
	}

	den := float64(size - 1)
	if periodic {
		den = float64(size)
	}

	return float64(n) / den
}

func kaiserAt(x, beta float64) float64 {
	if beta <= 0 {
		return 1
	}

	r := 2*x - 1
	term := math.Sqrt(math.Max(0, 1-r*r))

	return besselI0(beta*term) / besselI0(beta)
}

func tukeyAt(x, alpha float64) float64 {
	if alpha <= 0 {
		return 1
	}

	if alpha >= 1 {
		return 0.5 - 0.5*math.Cos(2*math.Pi*x)
	}

	a := alpha / 2
	switch {
	case x < a:
		return 0.5 * (1 + math.Cos(math.Pi*(2*x/alpha-1)))
	case x <= 1-a:
		return 1
	default:
		return 0.5 * (1 + math.Cos(math.Pi*(2*x/alpha-2/alpha+1)))
	}
}

func planckAt(x, epsilon float64) float64 {
	if epsilon <= 0 {
		return 1
	}

	// Mirror the right half onto the left taper.
	if x > 0.5 {
		x = 1 - x
	}

	switch {
	case x <= 0:
		return 0
	case x >= epsilon:
		return 1
	default:
		z := epsilon * (1/x + 1/(x-epsilon))
		// Large z overflows exp; the window is numerically 0 there.
		if z > 700 {
			return 0
		}

		return 1 / (1 + math.Exp(z))
	}
}

// besselI0 returns a numerical approximation of the modified Bessel
// function I0.
func besselI0(x float64) float64 {
	ax := math.Abs(x)
	if ax < 3.75 {
		y := x / 3.75
		y *= y

		return 1.0 + y*(3.5156229+y*(3.0899424+y*(1.2067492+y*(0.2659732+y*(0.0360768+y*0.0045813)))))
	}

	y := 3.75 / ax

	return (math.Exp(ax) / math.Sqrt(ax)) *
		(0.39894228 + y*(0.01328592+y*(0.00225319+y*(-0.00157565+y*(0.00916281+y*(-0.02057706+y*(0.02635537+y*(-0.01647633+y*0.00392377))))))))
}
