// Package peaks locates local extrema in sampled data with optional
// height, prominence, and width filtering, refining interior peak
// positions by quadratic interpolation through the three samples
// around each maximum.
package peaks

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrLengthMismatch indicates coordinate and value slices of different lengths.
	ErrLengthMismatch = errors.New("peaks: coordinates and values must have same length")
	// ErrTooShort indicates input too short to contain an interior extremum.
	ErrTooShort = errors.New("peaks: input must contain at least 3 samples")
)

// Peak describes one detected local extremum.
type Peak struct {
	// X is the refined coordinate of the extremum.
	X float64
	// Y is the refined value at the extremum.
	Y float64
	// Index is the sample index of the unrefined extremum.
	Index int
	// Prominence is the height of the peak above the lowest contour line
	// isolating it from any higher peak.
	Prominence float64
	// Width is the peak width at half prominence, in coordinate units.
	Width float64
}

// Option configures peak detection.
type Option func(*config)

type config struct {
	minHeight     float64
	minProminence float64
	minWidth      float64
	hasMinHeight  bool
}

// WithMinHeight keeps only peaks whose value is at least h.
func WithMinHeight(h float64) Option {
	return func(c *config) {
		c.minHeight = h
		c.hasMinHeight = true
	}
}

// WithMinProminence keeps only peaks with prominence at least p.
func WithMinProminence(p float64) Option {
	return func(c *config) {
		if p >= 0 {
			c.minProminence = p
		}
	}
}

// WithMinWidth keeps only peaks whose width at half prominence is at
// least w, in coordinate units.
func WithMinWidth(w float64) Option {
	return func(c *config) {
		if w >= 0 {
			c.minWidth = w
		}
	}
}

// Find returns local maxima of y over coordinates x, sorted by ascending
// coordinate. Plateau maxima report their leftmost sample. Endpoints are
// never reported.
//
// x must be strictly increasing; this is not re-validated here since
// callers construct it from already validated series.
func Find(x, y []float64, opts ...Option) ([]Peak, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(x), len(y))
	}

	if len(y) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooShort, len(y))
	}

	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]Peak, 0, 4)

	for _, idx := range candidateMaxima(y) {
		if cfg.hasMinHeight && y[idx] < cfg.minHeight {
			continue
		}

		prom := prominence(y, idx)
		if prom < cfg.minProminence {
			continue
		}

		width := widthAt(x, y, idx, y[idx]-prom/2)
		if width < cfg.minWidth {
			continue
		}

		px, py := Refine(x, y, idx)
		out = append(out, Peak{
			X:          px,
			Y:          py,
			Index:      idx,
			Prominence: prom,
			Width:      width,
		})
	}

	return out, nil
}

// FindMinima returns local minima of y over x. Filters apply to the
// negated signal, so WithMinHeight(h) keeps minima with value <= -h.
func FindMinima(x, y []float64, opts ...Option) ([]Peak, error) {
	neg := make([]float64, len(y))
	for i, v := range y {
		neg[i] = -v
	}

	found, err := Find(x, neg, opts...)
	if err != nil {
		return nil, err
	}

	for i := range found {
		found[i].Y = -found[i].Y
	}

	return found, nil
}

// Refine fits a parabola through the samples at idx-1, idx, idx+1 and
// returns the refined extremum coordinate and value. Boundary indices
// and degenerate (collinear) neighborhoods are returned unrefined.
func Refine(x, y []float64, idx int) (float64, float64) {
	if idx <= 0 || idx >= len(y)-1 {
		return x[idx], y[idx]
	}

	ym, y0, yp := y[idx-1], y[idx], y[idx+1]

	den := ym - 2*y0 + yp
	if den == 0 {
		return x[idx], y[idx]
	}

	// Offset in sample units, clamped to half a sample either side.
	delta := (ym - yp) / (2 * den)
	if delta > 0.5 {
		delta = 0.5
	} else if delta < -0.5 {
		delta = -0.5
	}

	var step float64
	if delta >= 0 {
		step = x[idx+1] - x[idx]
	} else {
		step = x[idx] - x[idx-1]
	}

	return x[idx] + delta*step, y0 - 0.25*(ym-yp)*delta
}

// candidateMaxima returns indices of strict interior local maxima,
// treating plateaus as a single leftmost-sample maximum.
func candidateMaxima(y []float64) []int {
	out := make([]int, 0, 4)

	i := 1
	for i < len(y)-1 {
		if y[i] < y[i-1] {
			i++
			continue
		}

		if y[i] == y[i-1] {
			i++
			continue
		}

		// Rising edge found; walk any plateau.
		j := i
		for j < len(y)-1 && y[j+1] == y[j] {
			j++
		}

		if j < len(y)-1 && y[j+1] < y[j] {
			out = append(out, i)
		}

		i = j + 1
	}

	return out
}

// prominence returns the height of y[idx] above the higher of the two
// lowest valleys separating it from higher terrain (or the data edge).
func prominence(y []float64, idx int) float64 {
	peak := y[idx]

	leftBase := peak
	for i := idx - 1; i >= 0; i-- {
		if y[i] > peak {
			break
		}
		if y[i] < leftBase {
			leftBase = y[i]
		}
	}

	rightBase := peak
	for i := idx + 1; i < len(y); i++ {
		if y[i] > peak {
			break
		}
		if y[i] < rightBase {
			rightBase = y[i]
		}
	}

	return peak - math.Max(leftBase, rightBase)
}

// widthAt returns the coordinate distance between the two crossings of
// level around the peak at idx, linearly interpolated between samples.
// Crossings that run off the data are clamped to the edges.
func widthAt(x, y []float64, idx int, level float64) float64 {
	left := x[0]
	for i := idx; i > 0; i-- {
		if y[i-1] <= level && y[i] > level {
			left = crossing(x[i-1], x[i], y[i-1], y[i], level)
			break
		}
	}

	right := x[len(x)-1]
	for i := idx; i < len(y)-1; i++ {
		if y[i+1] <= level && y[i] > level {
			right = crossing(x[i], x[i+1], y[i], y[i+1], level)
			break
		}
	}

	return right - left
}

// crossing linearly interpolates the coordinate where the segment
// (x0,y0)-(x1,y1) crosses level.
func crossing(x0, x1, y0, y1, level float64) float64 {
	den := y1 - y0
	if den == 0 {
		return (x0 + x1) / 2
	}

	t := (level - y0) / den

	return x0 + t*(x1-x0)
}
