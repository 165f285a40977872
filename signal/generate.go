// Package signal generates deterministic synthetic waveforms on explicit
// time grids, used by tests and the demo command.
package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// Linspace returns n evenly spaced points from start to stop inclusive.
func Linspace(start, stop float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("signal: linspace requires at least 2 points: %d", n)
	}

	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}

	// Land exactly on the endpoint despite accumulated rounding.
	out[n-1] = stop

	return out, nil
}

// Sine evaluates amplitude*sin(omega*t + phase) on the time grid t.
func Sine(t []float64, amplitude, omega, phase float64) []float64 {
	out := make([]float64, len(t))
	for i, v := range t {
		out[i] = amplitude * math.Sin(omega*v+phase)
	}

	return out
}

// DampedSinusoid evaluates a ringdown-like signal
// amplitude*exp(-t/tau)*sin(omega*t + phase) on the time grid t.
// tau must be > 0.
func DampedSinusoid(t []float64, amplitude, omega, tau, phase float64) ([]float64, error) {
	if tau <= 0 {
		return nil, fmt.Errorf("signal: damping time must be > 0: %f", tau)
	}

	out := make([]float64, len(t))
	for i, v := range t {
		out[i] = amplitude * math.Exp(-v/tau) * math.Sin(omega*v+phase)
	}

	return out, nil
}

// Gaussian evaluates amplitude*exp(-(t-t0)^2/(2*sigma^2)) on the time
// grid t. sigma must be > 0.
func Gaussian(t []float64, amplitude, t0, sigma float64) ([]float64, error) {
	if sigma <= 0 {
		return nil, fmt.Errorf("signal: gaussian width must be > 0: %f", sigma)
	}

	out := make([]float64, len(t))
	for i, v := range t {
		d := (v - t0) / sigma
		out[i] = amplitude * math.Exp(-d*d/2)
	}

	return out, nil
}

// Chirp evaluates a linear-frequency sweep from f0 at t[0] to f1 at the
// end of the grid, with unit amplitude scaled by amplitude.
func Chirp(t []float64, amplitude, f0, f1 float64) ([]float64, error) {
	if len(t) < 2 {
		return nil, fmt.Errorf("signal: chirp requires at least 2 points: %d", len(t))
	}

	t0 := t[0]
	span := t[len(t)-1] - t0
	if span <= 0 {
		return nil, fmt.Errorf("signal: chirp time grid must span a positive interval")
	}

	rate := (f1 - f0) / span

	out := make([]float64, len(t))
	for i, v := range t {
		dt := v - t0
		out[i] = amplitude * math.Sin(2*math.Pi*(f0*dt+rate*dt*dt/2))
	}

	return out, nil
}

// WhiteNoise returns n samples of deterministic uniform noise in
// [-amplitude, amplitude] from the given seed.
func WhiteNoise(n int, amplitude float64, seed int64) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("signal: noise samples must be > 0: %d", n)
	}

	if amplitude < 0 {
		return nil, fmt.Errorf("signal: noise amplitude must be >= 0: %f", amplitude)
	}

	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out, nil
}
