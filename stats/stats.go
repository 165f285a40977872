// Package stats computes single-pass descriptive statistics over sampled
// values, optionally skipping masked samples. Higher-order moments use
// Welford's online algorithm for numerical stability.
package stats

import "math"

// Stats holds descriptive statistics of a sample set.
type Stats struct {
	// Count is the number of samples that contributed (masked samples
	// are excluded).
	Count int
	Mean  float64
	RMS   float64
	Max   float64
	// MaxPos is the index of the maximum in the original slice.
	MaxPos int
	Min    float64
	MinPos int
	// AbsMax is max(|Max|, |Min|).
	AbsMax float64
	// Energy is the sum of squares.
	Energy   float64
	Variance float64
	Skewness float64
	Kurtosis float64
}

// empty returns the Stats reported for zero contributing samples.
func empty() Stats {
	return Stats{
		Mean:   math.NaN(),
		RMS:    math.NaN(),
		Max:    math.NaN(),
		MaxPos: -1,
		Min:    math.NaN(),
		MinPos: -1,
		AbsMax: math.NaN(),
	}
}

// Calculate computes all statistics in one pass over values. When mask is
// non-nil it must have the same length as values; samples with a true mask
// entry are skipped. A nil mask includes every sample.
func Calculate(values []float64, mask []bool) Stats {
	var (
		count int
		mean  float64
		m2    float64
		m3    float64
		m4    float64
		sumSq float64

		maxVal float64
		maxPos = -1
		minVal float64
		minPos = -1
	)

	for i, x := range values {
		if mask != nil && mask[i] {
			continue
		}

		count++
		ni := float64(count)

		// Welford update; M4 before M3 before M2.
		delta := x - mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(count-1)

		m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*m2 - 4*deltaN*m3
		m3 += term1*deltaN*(float64(count-1)-1) - 3*deltaN*m2
		m2 += term1
		mean += deltaN

		sumSq += x * x

		if maxPos < 0 || x > maxVal {
			maxVal = x
			maxPos = i
		}

		if minPos < 0 || x < minVal {
			minVal = x
			minPos = i
		}
	}

	if count == 0 {
		return empty()
	}

	nf := float64(count)
	variance := m2 / nf

	var skewness, kurtosis float64
	if variance > 0 {
		skewness = (m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (m4/nf)/(variance*variance) - 3
	}

	return Stats{
		Count:    count,
		Mean:     mean,
		RMS:      math.Sqrt(sumSq / nf),
		Max:      maxVal,
		MaxPos:   maxPos,
		Min:      minVal,
		MinPos:   minPos,
		AbsMax:   math.Max(math.Abs(maxVal), math.Abs(minVal)),
		Energy:   sumSq,
		Variance: variance,
		Skewness: skewness,
		Kurtosis: kurtosis,
	}
}

// Mean returns the arithmetic mean of the unmasked samples, or NaN when
// none contribute. Kahan summation keeps long sums stable.
func Mean(values []float64, mask []bool) float64 {
	var sum, comp float64
	count := 0

	for i, x := range values {
		if mask != nil && mask[i] {
			continue
		}

		count++
		y := x - comp
		t := sum + y
		comp = (t - sum) - y
		sum = t
	}

	if count == 0 {
		return math.NaN()
	}

	return sum / float64(count)
}
