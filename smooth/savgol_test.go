package smooth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoefficients_ClassicQuadraticKernel(t *testing.T) {
	// Savitzky & Golay's published 5-point quadratic kernel.
	got, err := Coefficients(5, 2)
	require.NoError(t, err)

	want := []float64{-3.0 / 35, 12.0 / 35, 17.0 / 35, 12.0 / 35, -3.0 / 35}
	require.Len(t, got, 5)
	for i := range want {
		require.InDelta(t, want[i], got[i], 1e-12, "coefficient %d", i)
	}
}

func TestCoefficients_SumToOne(t *testing.T) {
	for _, tc := range []struct{ window, order int }{
		{5, 2}, {7, 2}, {9, 3}, {11, 4}, {21, 2},
	} {
		kern, err := Coefficients(tc.window, tc.order)
		require.NoError(t, err)

		sum := 0.0
		for _, c := range kern {
			sum += c
		}
		require.InDelta(t, 1.0, sum, 1e-10, "window %d order %d", tc.window, tc.order)
	}
}

func TestCoefficients_Validation(t *testing.T) {
	_, err := Coefficients(4, 2)
	require.ErrorIs(t, err, ErrEvenWindow)

	_, err = Coefficients(3, 3)
	require.ErrorIs(t, err, ErrWindowTooSmall)

	_, err = Coefficients(5, -1)
	require.ErrorIs(t, err, ErrBadOrder)
}

func TestFilter_WindowLargerThanData(t *testing.T) {
	_, err := Filter([]float64{1, 2, 3}, 5, 2)
	require.ErrorIs(t, err, ErrWindowTooLarge)
}

func TestFilter_PreservesPolynomial(t *testing.T) {
	// A filter of order p reproduces any polynomial of degree <= p
	// exactly, edges included.
	data := make([]float64, 50)
	for i := range data {
		x := float64(i)
		data[i] = 0.5*x*x - 3*x + 7
	}

	out, err := Filter(data, 9, 2)
	require.NoError(t, err)
	require.Len(t, out, len(data))

	for i := range data {
		require.InDelta(t, data[i], out[i], 1e-8, "sample %d", i)
	}
}

func TestFilter_ReducesNoise(t *testing.T) {
	// Deterministic high-frequency ripple on a smooth carrier: the
	// filtered signal must be closer to the carrier than the input.
	n := 200
	carrier := make([]float64, n)
	noisy := make([]float64, n)
	for i := range noisy {
		x := float64(i) / 20
		carrier[i] = math.Sin(x)
		noisy[i] = carrier[i] + 0.2*math.Cos(float64(i)*2.9)
	}

	out, err := Filter(noisy, 11, 2)
	require.NoError(t, err)

	var errIn, errOut float64
	for i := range carrier {
		din := noisy[i] - carrier[i]
		dout := out[i] - carrier[i]
		errIn += din * din
		errOut += dout * dout
	}

	require.Less(t, errOut, errIn/4, "smoothing should cut ripple energy")
}

func TestFilter_ConstantSignalUnchanged(t *testing.T) {
	data := make([]float64, 30)
	for i := range data {
		data[i] = 2.5
	}

	out, err := Filter(data, 7, 3)
	require.NoError(t, err)

	for i := range out {
		require.InDelta(t, 2.5, out[i], 1e-12, "sample %d", i)
	}
}
