package series

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nrkit/relseries/signal"
)

// periodicGrid samples [0, span) with n points and no endpoint, so a
// signal with period span/m is exactly periodic on the grid.
func periodicGrid(n int, span float64) []float64 {
	dt := span / float64(n)
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i) * dt
	}

	return x
}

func TestToFrequencyDomain_Sine(t *testing.T) {
	// 4 full periods of a unit sine at 1 Hz on 128 samples.
	n := 128
	x := periodicGrid(n, 4)

	s, err := New(x, signal.Sine(x, 1, 2*math.Pi, 0))
	require.NoError(t, err)

	freq, err := s.ToFrequencyDomain()
	require.NoError(t, err)
	require.Equal(t, n, freq.Len())
	require.True(t, freq.IsComplex())

	// The grid ascends through zero frequency with spacing 1/span.
	require.Equal(t, 0.0, freq.X(n/2))
	dx, err := freq.DX()
	require.NoError(t, err)
	require.InDelta(t, 0.25, dx, 1e-12)

	// A sine over m full periods concentrates in the +/-f0 bins with
	// amplitude A*span/2; every other bin is numerically zero.
	amp := freq.Abs()
	for i := 0; i < n; i++ {
		f := freq.X(i)
		if math.Abs(math.Abs(f)-1) < 1e-9 {
			require.InDelta(t, 2, real(amp.At(i)), 1e-9, "f=%g", f)
		} else {
			require.InDelta(t, 0, real(amp.At(i)), 1e-9, "f=%g", f)
		}
	}
}

func TestToFrequencyDomain_Errors(t *testing.T) {
	irregular, err := New([]float64{0, 1, 3, 4}, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	_, err = irregular.ToFrequencyDomain()
	require.ErrorIs(t, err, ErrNonUniformSampling)
}

func TestCropNegativeFrequencies(t *testing.T) {
	n := 64
	x := periodicGrid(n, 2)

	s, err := New(x, signal.Sine(x, 1, 2*math.Pi*3, 0))
	require.NoError(t, err)

	freq, err := s.ToFrequencyDomain()
	require.NoError(t, err)
	require.Negative(t, freq.XMin())

	positive, err := freq.Cropped(0, 1e5)
	require.NoError(t, err)
	require.Equal(t, 0.0, positive.XMin())
	require.Equal(t, n/2, positive.Len())
	require.Equal(t, n, freq.Len(), "Cropped must not touch the original")
}

func TestSpectralRoundtrip(t *testing.T) {
	// Covers a power of two, a composite even length and an odd length.
	// The frequency reordering splits at n/2: even lengths carry one
	// extra negative bin, odd lengths are symmetric around zero.
	for _, n := range []int{64, 60, 63} {
		x := periodicGrid(n, 3)

		v, err := signal.DampedSinusoid(x, 1, 2*math.Pi*2, 0.8, 0.3)
		require.NoError(t, err)

		s, err := New(x, v)
		require.NoError(t, err)

		freq, err := s.ToFrequencyDomain()
		require.NoError(t, err)

		back, err := freq.ToTimeDomain()
		require.NoError(t, err)
		require.Equal(t, n, back.Len())

		dx, err := back.DX()
		require.NoError(t, err)
		require.InDelta(t, 3/float64(n), dx, 1e-12, "n=%d", n)
		require.Equal(t, 0.0, back.XMin())

		for i := 0; i < n; i++ {
			require.InDelta(t, real(s.At(i)), real(back.At(i)), 1e-9, "n=%d point %d", n, i)
			require.InDelta(t, 0, imag(back.At(i)), 1e-9, "n=%d point %d", n, i)
		}
	}
}

func TestPeaksFrequencies(t *testing.T) {
	// Two tones, amplitudes 1 at 2 Hz and 0.3 at 5 Hz, over full periods.
	n := 256
	x := periodicGrid(n, 4)

	strong := signal.Sine(x, 1, 2*math.Pi*2, 0)
	weak := signal.Sine(x, 0.3, 2*math.Pi*5, 0)
	for i := range strong {
		strong[i] += weak[i]
	}

	s, err := New(x, strong)
	require.NoError(t, err)

	freq, err := s.ToFrequencyDomain()
	require.NoError(t, err)

	found, err := freq.PeaksFrequencies(0.1)
	require.NoError(t, err)

	// |spectrum| is symmetric, so each tone appears at +/-f.
	var positive []float64
	for _, p := range found {
		if p.X > 0 {
			positive = append(positive, p.X)
		}
	}

	require.Len(t, positive, 2)
	require.InDelta(t, 2, positive[0], 1e-6)
	require.InDelta(t, 5, positive[1], 1e-6)

	// A higher floor keeps only the strong tone.
	found, err = freq.PeaksFrequencies(1)
	require.NoError(t, err)
	require.Len(t, found, 2)
	for _, p := range found {
		require.InDelta(t, 2, math.Abs(p.X), 1e-6)
		require.InDelta(t, 2, p.Y, 1e-6)
	}
}

func TestFixedFrequencyIntegrated(t *testing.T) {
	// The spectral antiderivative of sin(2*pi*t) is -cos(2*pi*t)/(2*pi),
	// exact for a tone on full periods when pcut excludes only the DC
	// bin.
	n := 128
	x := periodicGrid(n, 4)

	s, err := New(x, signal.Sine(x, 1, 2*math.Pi, 0))
	require.NoError(t, err)

	out, err := s.FixedFrequencyIntegrated(1, 2)
	require.NoError(t, err)
	require.Equal(t, s.Xs(), out.Xs(), "original coordinates restored")

	for i := 0; i < n; i++ {
		want := -math.Cos(2*math.Pi*x[i]) / (2 * math.Pi)
		require.InDelta(t, want, real(out.At(i)), 1e-9, "point %d", i)
	}
}

func TestFixedFrequencyIntegrated_SecondOrder(t *testing.T) {
	n := 128
	x := periodicGrid(n, 4)

	s, err := New(x, signal.Sine(x, 1, 2*math.Pi, 0))
	require.NoError(t, err)

	out, err := s.FixedFrequencyIntegrated(2, 2)
	require.NoError(t, err)

	w := 2 * math.Pi
	for i := 0; i < n; i++ {
		want := -math.Sin(w*x[i]) / (w * w)
		require.InDelta(t, want, real(out.At(i)), 1e-9, "point %d", i)
	}
}

func TestFixedFrequencyIntegrated_Validation(t *testing.T) {
	s := sineSeries(t, 0, 1, 16, 1)

	_, err := s.FixedFrequencyIntegrated(0, 1)
	require.ErrorIs(t, err, ErrShapeMismatch)

	_, err = s.FixedFrequencyIntegrated(1, -1)
	require.ErrorIs(t, err, ErrShapeMismatch)
}
