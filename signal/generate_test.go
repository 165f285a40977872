package signal

import (
	"math"
	"testing"
)

func TestLinspace(t *testing.T) {
	got, err := Linspace(0, 1, 5)
	if err != nil {
		t.Fatalf("Linspace: %v", err)
	}

	want := []float64{0, 0.25, 0.5, 0.75, 1}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-15 {
			t.Errorf("point %d: got %g, want %g", i, got[i], want[i])
		}
	}

	if _, err := Linspace(0, 1, 1); err == nil {
		t.Error("single point should fail")
	}
}

func TestLinspace_ExactEndpoint(t *testing.T) {
	got, err := Linspace(0, 20, 5000)
	if err != nil {
		t.Fatalf("Linspace: %v", err)
	}
	if got[len(got)-1] != 20 {
		t.Errorf("endpoint: got %g, want exactly 20", got[len(got)-1])
	}
}

func TestDampedSinusoid(t *testing.T) {
	grid, err := Linspace(0, 10, 1001)
	if err != nil {
		t.Fatalf("Linspace: %v", err)
	}

	y, err := DampedSinusoid(grid, 1, 2*math.Pi, 3, 0)
	if err != nil {
		t.Fatalf("DampedSinusoid: %v", err)
	}

	if y[0] != 0 {
		t.Errorf("start: got %g, want 0", y[0])
	}

	// Envelope decays: the late maximum amplitude must be well below the
	// early one.
	early, late := 0.0, 0.0
	for i, v := range y {
		a := math.Abs(v)
		if i < 100 && a > early {
			early = a
		}
		if i >= 900 && a > late {
			late = a
		}
	}
	if late >= early/10 {
		t.Errorf("envelope: early %g, late %g", early, late)
	}

	if _, err := DampedSinusoid(grid, 1, 1, 0, 0); err == nil {
		t.Error("zero damping time should fail")
	}
}

func TestGaussian_PeakAtCenter(t *testing.T) {
	grid, err := Linspace(-5, 5, 1001)
	if err != nil {
		t.Fatalf("Linspace: %v", err)
	}

	y, err := Gaussian(grid, 2, 1, 0.5)
	if err != nil {
		t.Fatalf("Gaussian: %v", err)
	}

	maxVal, maxPos := y[0], 0
	for i, v := range y {
		if v > maxVal {
			maxVal = v
			maxPos = i
		}
	}

	if math.Abs(grid[maxPos]-1) > 0.02 {
		t.Errorf("peak position: got %g, want 1", grid[maxPos])
	}
	if math.Abs(maxVal-2) > 1e-3 {
		t.Errorf("peak value: got %g, want 2", maxVal)
	}
}

func TestChirp_StartsAtZeroPhase(t *testing.T) {
	grid, err := Linspace(0, 1, 101)
	if err != nil {
		t.Fatalf("Linspace: %v", err)
	}

	y, err := Chirp(grid, 1, 5, 20)
	if err != nil {
		t.Fatalf("Chirp: %v", err)
	}
	if y[0] != 0 {
		t.Errorf("start: got %g, want 0", y[0])
	}
}

func TestWhiteNoise_Deterministic(t *testing.T) {
	a, err := WhiteNoise(64, 1, 7)
	if err != nil {
		t.Fatalf("WhiteNoise: %v", err)
	}
	b, err := WhiteNoise(64, 1, 7)
	if err != nil {
		t.Fatalf("WhiteNoise: %v", err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs across runs with same seed", i)
		}
		if a[i] < -1 || a[i] > 1 {
			t.Fatalf("sample %d out of range: %g", i, a[i])
		}
	}
}
