package series

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/nrkit/relseries/peaks"
)

// ToFrequencyDomain applies a discrete Fourier transform over the
// uniformly sampled coordinate and returns a new series indexed by
// frequency, ascending from the most negative to the most positive
// frequency. Values are scaled by the sampling step so that amplitudes
// approximate the continuous transform.
//
// It fails with ErrNonUniformSampling when the coordinate grid is not
// uniform within tolerance and ErrMaskedData on a masked series.
func (s *Series) ToFrequencyDomain() (*Series, error) {
	if err := s.requireUnmasked("spectral transform"); err != nil {
		return nil, err
	}

	dt, err := s.DX()
	if err != nil {
		return nil, err
	}

	n := len(s.x)

	in := make([]complex128, n)
	for i := range in {
		in[i] = s.At(i)
	}

	spec, err := forwardDFT(in)
	if err != nil {
		return nil, fmt.Errorf("series: spectral transform: %w", err)
	}

	// Reorder to ascending frequency (zero frequency at index n/2) and
	// scale by dt.
	shift := n / 2
	out := &Series{
		x:  make([]float64, n),
		re: make([]float64, n),
		im: make([]float64, n),
	}

	for i := 0; i < n; i++ {
		k := i - shift
		v := spec[(k+n)%n]
		out.x[i] = float64(k) / (float64(n) * dt)
		out.re[i] = real(v) * dt
		out.im[i] = imag(v) * dt
	}

	return out, nil
}

// ToTimeDomain inverts ToFrequencyDomain: it maps a frequency series back
// to a uniformly sampled series starting at coordinate 0. Any coordinate
// offset of the original signal is carried by the spectral phases, not
// restored into the grid.
func (s *Series) ToTimeDomain() (*Series, error) {
	if err := s.requireUnmasked("inverse spectral transform"); err != nil {
		return nil, err
	}

	df, err := s.DX()
	if err != nil {
		return nil, err
	}

	n := len(s.x)
	dt := 1 / (float64(n) * df)
	shift := n / 2

	spec := make([]complex128, n)
	for i := 0; i < n; i++ {
		k := i - shift
		spec[(k+n)%n] = s.At(i) / complex(dt, 0)
	}

	vals, err := inverseDFT(spec)
	if err != nil {
		return nil, fmt.Errorf("series: inverse spectral transform: %w", err)
	}

	out := &Series{
		x:  make([]float64, n),
		re: make([]float64, n),
		im: make([]float64, n),
	}

	for i, v := range vals {
		out.x[i] = float64(i) * dt
		out.re[i] = real(v)
		out.im[i] = imag(v)
	}

	return out, nil
}

// PeaksFrequencies returns the local maxima of |value| with amplitude at
// least minAmplitude, each refined by quadratic interpolation around the
// maximum sample. It is intended for frequency-domain series; Peak.X is
// the refined frequency and Peak.Y the refined amplitude.
func (s *Series) PeaksFrequencies(minAmplitude float64, opts ...peaks.Option) ([]peaks.Peak, error) {
	if err := s.requireUnmasked("peak extraction"); err != nil {
		return nil, err
	}

	amp := make([]float64, len(s.re))
	if s.im == nil {
		for i, v := range s.re {
			amp[i] = math.Abs(v)
		}
	} else {
		vecmath.Magnitude(amp, s.re, s.im)
	}

	found, err := peaks.Find(s.x, amp, append(opts, peaks.WithMinHeight(minAmplitude))...)
	if err != nil {
		return nil, fmt.Errorf("series: frequency peaks: %w", err)
	}

	return found, nil
}

// FixedFrequencyIntegrated integrates the series order times with respect
// to the coordinate by dividing by (2*pi*i*f)^order in the frequency
// domain. Frequencies smaller in magnitude than 1/pcut are clamped to
// 1/pcut before dividing, which suppresses the unphysical low-frequency
// drift of direct time integration; pcut is the longest period expected
// in the signal.
func (s *Series) FixedFrequencyIntegrated(order int, pcut float64) (*Series, error) {
	if order < 1 {
		return nil, fmt.Errorf("%w: integration order must be >= 1: %d", ErrShapeMismatch, order)
	}

	if pcut <= 0 {
		return nil, fmt.Errorf("%w: pcut must be > 0: %g", ErrShapeMismatch, pcut)
	}

	freq, err := s.ToFrequencyDomain()
	if err != nil {
		return nil, err
	}

	fcut := 1 / pcut
	for i, f := range freq.x {
		ftilde := f
		if math.Abs(ftilde) < fcut {
			if math.Signbit(ftilde) {
				ftilde = -fcut
			} else {
				ftilde = fcut
			}
		}

		div := cmplx.Pow(complex(0, 2*math.Pi*ftilde), complex(float64(order), 0))

		v := complex(freq.re[i], freq.im[i]) / div
		freq.re[i], freq.im[i] = real(v), imag(v)
	}

	out, err := freq.ToTimeDomain()
	if err != nil {
		return nil, err
	}

	// The inverse transform rebuilds the grid from 0; restore the
	// original coordinates.
	copy(out.x, s.x)

	return out, nil
}

// forwardDFT computes the unnormalized forward transform, using an FFT
// plan when the backend supports the size and a direct transform
// otherwise.
func forwardDFT(in []complex128) ([]complex128, error) {
	out := make([]complex128, len(in))

	if plan, err := algofft.NewPlan64(len(in)); err == nil {
		if err := plan.Forward(out, in); err != nil {
			return nil, err
		}

		return out, nil
	}

	directDFT(out, in, -1)

	return out, nil
}

// inverseDFT computes the normalized inverse transform.
func inverseDFT(in []complex128) ([]complex128, error) {
	out := make([]complex128, len(in))

	if plan, err := algofft.NewPlan64(len(in)); err == nil {
		if err := plan.Inverse(out, in); err != nil {
			return nil, err
		}

		return out, nil
	}

	directDFT(out, in, 1)

	scale := complex(1/float64(len(in)), 0)
	for i := range out {
		out[i] *= scale
	}

	return out, nil
}

// directDFT evaluates the O(n^2) transform with the given exponent sign.
func directDFT(out, in []complex128, sign float64) {
	n := len(in)
	w := sign * 2 * math.Pi / float64(n)

	for k := 0; k < n; k++ {
		var sum complex128
		for j := 0; j < n; j++ {
			angle := w * float64(k) * float64(j)
			sum += in[j] * complex(math.Cos(angle), math.Sin(angle))
		}

		out[k] = sum
	}
}
