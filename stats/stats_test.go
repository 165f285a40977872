package stats

import (
	"math"
	"testing"
)

const tolerance = 1e-10

func almostEqual(a, b, tol float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return math.Abs(a-b) <= tol
}

func TestCalculate_Empty(t *testing.T) {
	s := Calculate(nil, nil)

	if s.Count != 0 {
		t.Errorf("Count: got %d, want 0", s.Count)
	}
	if !math.IsNaN(s.Mean) {
		t.Errorf("Mean: got %g, want NaN", s.Mean)
	}
	if s.MaxPos != -1 || s.MinPos != -1 {
		t.Errorf("positions: got %d, %d, want -1, -1", s.MaxPos, s.MinPos)
	}
}

func TestCalculate_Basics(t *testing.T) {
	s := Calculate([]float64{1, -2, 3, -4}, nil)

	if s.Count != 4 {
		t.Errorf("Count: got %d, want 4", s.Count)
	}
	if !almostEqual(s.Mean, -0.5, tolerance) {
		t.Errorf("Mean: got %g, want -0.5", s.Mean)
	}
	if s.Max != 3 || s.MaxPos != 2 {
		t.Errorf("Max: got %g at %d, want 3 at 2", s.Max, s.MaxPos)
	}
	if s.Min != -4 || s.MinPos != 3 {
		t.Errorf("Min: got %g at %d, want -4 at 3", s.Min, s.MinPos)
	}
	if !almostEqual(s.AbsMax, 4, tolerance) {
		t.Errorf("AbsMax: got %g, want 4", s.AbsMax)
	}
	if !almostEqual(s.Energy, 30, tolerance) {
		t.Errorf("Energy: got %g, want 30", s.Energy)
	}
	if !almostEqual(s.RMS, math.Sqrt(7.5), tolerance) {
		t.Errorf("RMS: got %g, want %g", s.RMS, math.Sqrt(7.5))
	}
}

func TestCalculate_MaskSkipsSamples(t *testing.T) {
	values := []float64{1, 100, 2, 3, -50}
	mask := []bool{false, true, false, false, true}

	s := Calculate(values, mask)

	if s.Count != 3 {
		t.Errorf("Count: got %d, want 3", s.Count)
	}
	if !almostEqual(s.Mean, 2, tolerance) {
		t.Errorf("Mean: got %g, want 2", s.Mean)
	}
	if s.Max != 3 || s.MaxPos != 3 {
		t.Errorf("Max: got %g at %d, want 3 at 3", s.Max, s.MaxPos)
	}
	if s.Min != 1 || s.MinPos != 0 {
		t.Errorf("Min: got %g at %d, want 1 at 0", s.Min, s.MinPos)
	}
}

func TestCalculate_FullyMasked(t *testing.T) {
	s := Calculate([]float64{1, 2}, []bool{true, true})

	if s.Count != 0 {
		t.Errorf("Count: got %d, want 0", s.Count)
	}
	if !math.IsNaN(s.Min) || !math.IsNaN(s.Max) {
		t.Errorf("extrema: got %g, %g, want NaN, NaN", s.Min, s.Max)
	}
}

func TestCalculate_MatchesTwoPassMoments(t *testing.T) {
	values := make([]float64, 1000)
	for i := range values {
		values[i] = math.Sin(float64(i)*0.37) + 0.3*math.Cos(float64(i)*1.7)
	}

	s := Calculate(values, nil)

	// Two-pass reference.
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	var m2, m3, m4 float64
	for _, v := range values {
		d := v - mean
		m2 += d * d
		m3 += d * d * d
		m4 += d * d * d * d
	}
	n := float64(len(values))
	variance := m2 / n
	skew := (m3 / n) / math.Pow(variance, 1.5)
	kurt := (m4/n)/(variance*variance) - 3

	if !almostEqual(s.Mean, mean, 1e-9) {
		t.Errorf("Mean: got %g, want %g", s.Mean, mean)
	}
	if !almostEqual(s.Variance, variance, 1e-9) {
		t.Errorf("Variance: got %g, want %g", s.Variance, variance)
	}
	if !almostEqual(s.Skewness, skew, 1e-7) {
		t.Errorf("Skewness: got %g, want %g", s.Skewness, skew)
	}
	if !almostEqual(s.Kurtosis, kurt, 1e-7) {
		t.Errorf("Kurtosis: got %g, want %g", s.Kurtosis, kurt)
	}
}

func TestMean_Masked(t *testing.T) {
	got := Mean([]float64{2, 4, 1000}, []bool{false, false, true})
	if !almostEqual(got, 3, tolerance) {
		t.Errorf("Mean: got %g, want 3", got)
	}

	if !math.IsNaN(Mean(nil, nil)) {
		t.Errorf("Mean of empty input should be NaN")
	}
}
