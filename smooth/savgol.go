// Package smooth implements Savitzky-Golay polynomial smoothing.
//
// A Savitzky-Golay filter replaces each sample with the value of a
// least-squares polynomial fitted through the surrounding window. Interior
// samples use a single precomputed convolution kernel; boundary samples
// are handled by fitting the polynomial to the first (or last) full window
// and evaluating it at the boundary offsets, so no mirroring or padding
// artifacts are introduced.
package smooth

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEvenWindow indicates a window length that is not odd.
	ErrEvenWindow = errors.New("smooth: window length must be odd")
	// ErrWindowTooSmall indicates a window not larger than the polynomial order.
	ErrWindowTooSmall = errors.New("smooth: window length must exceed polynomial order")
	// ErrWindowTooLarge indicates a window longer than the data.
	ErrWindowTooLarge = errors.New("smooth: window length exceeds data length")
	// ErrBadOrder indicates a negative polynomial order.
	ErrBadOrder = errors.New("smooth: polynomial order must be >= 0")
)

// Coefficients returns the convolution kernel that evaluates the
// least-squares polynomial of the given order at the center of an odd
// window. The kernel is symmetric and sums to 1.
func Coefficients(window, order int) ([]float64, error) {
	if err := validate(window, order); err != nil {
		return nil, err
	}

	half := window / 2

	offsets := make([]float64, window)
	for i := range offsets {
		offsets[i] = float64(i - half)
	}

	return kernelAt(offsets, order, 0)
}

// Filter smooths data with a Savitzky-Golay filter of the given window
// length and polynomial order and returns a new slice of the same length.
func Filter(data []float64, window, order int) ([]float64, error) {
	if err := validate(window, order); err != nil {
		return nil, err
	}

	if window > len(data) {
		return nil, fmt.Errorf("%w: %d > %d", ErrWindowTooLarge, window, len(data))
	}

	half := window / 2
	n := len(data)
	out := make([]float64, n)

	center, err := Coefficients(window, order)
	if err != nil {
		return nil, err
	}

	for i := half; i < n-half; i++ {
		sum := 0.0
		for k, c := range center {
			sum += c * data[i-half+k]
		}

		out[i] = sum
	}

	// Boundary samples: evaluate the window polynomial off-center instead
	// of convolving with the symmetric kernel.
	offsets := make([]float64, window)
	for i := range offsets {
		offsets[i] = float64(i)
	}

	for p := 0; p < half; p++ {
		kern, err := kernelAt(offsets, order, float64(p))
		if err != nil {
			return nil, err
		}

		kernHi, err := kernelAt(offsets, order, float64(window-1-p))
		if err != nil {
			return nil, err
		}

		lo := 0.0
		hi := 0.0
		for k := 0; k < window; k++ {
			lo += kern[k] * data[k]
			hi += kernHi[k] * data[n-window+k]
		}

		out[p] = lo
		out[n-1-p] = hi
	}

	return out, nil
}

func validate(window, order int) error {
	if order < 0 {
		return fmt.Errorf("%w: %d", ErrBadOrder, order)
	}

	if window%2 == 0 {
		return fmt.Errorf("%w: %d", ErrEvenWindow, window)
	}

	if window <= order {
		return fmt.Errorf("%w: window %d, order %d", ErrWindowTooSmall, window, order)
	}

	return nil
}

// kernelAt returns weights w such that sum(w[i]*y[i]) evaluates the
// least-squares polynomial through (offsets[i], y[i]) at position at.
//
// The normal equations (A^T A) h = powers(at) are solved once; the
// weights follow as w = A h.
func kernelAt(offsets []float64, order int, at float64) ([]float64, error) {
	terms := order + 1

	// Normal matrix: N[j][k] = sum_i offsets[i]^(j+k).
	normal := make([][]float64, terms)
	for j := range normal {
		normal[j] = make([]float64, terms)
	}

	powerSums := make([]float64, 2*order+1)
	for _, o := range offsets {
		p := 1.0
		for k := range powerSums {
			powerSums[k] += p
			p *= o
		}
	}

	for j := 0; j < terms; j++ {
		for k := 0; k < terms; k++ {
			normal[j][k] = powerSums[j+k]
		}
	}

	rhs := make([]float64, terms)
	p := 1.0
	for k := range rhs {
		rhs[k] = p
		p *= at
	}

	h, err := solve(normal, rhs)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(offsets))
	for i, o := range offsets {
		p := 1.0
		for k := 0; k < terms; k++ {
			out[i] += h[k] * p
			p *= o
		}
	}

	return out, nil
}

// solve performs Gaussian elimination with partial pivoting on the small
// dense system a*x = b, destroying its inputs.
func solve(a [][]float64, b []float64) ([]float64, error) {
	n := len(b)

	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}

		if a[pivot][col] == 0 {
			return nil, fmt.Errorf("smooth: singular normal matrix at column %d", col)
		}

		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		for r := col + 1; r < n; r++ {
			m := a[r][col] / a[col][col]
			for c := col; c < n; c++ {
				a[r][c] -= m * a[col][c]
			}

			b[r] -= m * b[col]
		}
	}

	x := make([]float64, n)
	for r := n - 1; r >= 0; r-- {
		sum := b[r]
		for c := r + 1; c < n; c++ {
			sum -= a[r][c] * x[c]
		}

		x[r] = sum / a[r][r]
	}

	return x, nil
}
