package series

import (
	"fmt"
	"math"
	"sort"
)

// Resampled returns a new series spline-interpolated onto newX, which
// must be strictly increasing and contained in the series domain.
func (s *Series) Resampled(newX []float64) (*Series, error) {
	reSpl, imSpl, err := s.splines("resampling")
	if err != nil {
		return nil, err
	}

	if err := validateArrays(len(newX), len(newX), newX); err != nil {
		return nil, err
	}

	if newX[0] < s.XMin() || newX[len(newX)-1] > s.XMax() {
		return nil, fmt.Errorf("%w: resampling grid [%g, %g] exceeds domain [%g, %g]",
			ErrOutOfBounds, newX[0], newX[len(newX)-1], s.XMin(), s.XMax())
	}

	out := &Series{
		x:  append([]float64(nil), newX...),
		re: make([]float64, len(newX)),
	}

	if imSpl != nil {
		out.im = make([]float64, len(newX))
	}

	for i, x := range newX {
		v, err := reSpl.At(x)
		if err != nil {
			return nil, fmt.Errorf("series: resampling: %w", err)
		}

		out.re[i] = v

		if imSpl != nil {
			v, err = imSpl.At(x)
			if err != nil {
				return nil, fmt.Errorf("series: resampling: %w", err)
			}

			out.im[i] = v
		}
	}

	return out, nil
}

// ResampleInPlace replaces the series content with its spline resampling
// onto newX.
func (s *Series) ResampleInPlace(newX []float64) error {
	out, err := s.Resampled(newX)
	if err != nil {
		return err
	}

	*s = *out

	return nil
}

// ResampleCommon aligns a set of series onto a single coordinate grid and
// returns them in input order.
//
// With resample false, the grid is the set intersection of all coordinate
// arrays: every series is restricted to the exactly shared coordinates
// and no interpolation happens, so masks survive. With resample true, the
// grid is the union of all coordinates inside the overlap of the domains
// and every series is spline-interpolated onto it (masked input is
// rejected).
//
// It fails with ErrEmptyIntersection when the domains do not overlap or,
// without resampling, when no coordinate is shared by every series.
func ResampleCommon(list []*Series, resample bool) ([]*Series, error) {
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: no series given", ErrEmptyIntersection)
	}

	if len(list) == 1 {
		return []*Series{list[0].Copy()}, nil
	}

	low := list[0].XMin()
	high := list[0].XMax()
	for _, s := range list[1:] {
		low = math.Max(low, s.XMin())
		high = math.Min(high, s.XMax())
	}

	if low > high {
		return nil, fmt.Errorf("%w: common interval is empty", ErrEmptyIntersection)
	}

	if resample {
		return resampleOntoUnion(list, low, high)
	}

	return restrictToShared(list)
}

// resampleOntoUnion builds the deduplicated union of all coordinates in
// [low, high] and spline-resamples every series onto it.
func resampleOntoUnion(list []*Series, low, high float64) ([]*Series, error) {
	var union []float64
	for _, s := range list {
		for _, x := range s.x {
			if x >= low && x <= high {
				union = append(union, x)
			}
		}
	}

	sort.Float64s(union)

	grid := union[:0]
	var last float64
	for i, x := range union {
		if i > 0 && x == last {
			continue
		}

		grid = append(grid, x)
		last = x
	}

	if len(grid) == 0 {
		return nil, fmt.Errorf("%w: no coordinates in common interval", ErrEmptyIntersection)
	}

	out := make([]*Series, len(list))
	for i, s := range list {
		r, err := s.Resampled(grid)
		if err != nil {
			return nil, err
		}

		out[i] = r
	}

	return out, nil
}

// restrictToShared keeps only the coordinates present in every series.
func restrictToShared(list []*Series) ([]*Series, error) {
	shared := append([]float64(nil), list[0].x...)
	for _, s := range list[1:] {
		shared = intersectSorted(shared, s.x)
		if len(shared) == 0 {
			return nil, fmt.Errorf("%w: no shared coordinates", ErrEmptyIntersection)
		}
	}

	out := make([]*Series, len(list))
	for i, s := range list {
		out[i] = s.selectCoords(shared)
	}

	return out, nil
}

// intersectSorted returns the values present in both sorted slices.
func intersectSorted(a, b []float64) []float64 {
	out := a[:0]

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}

// selectCoords returns a new series holding exactly the points whose
// coordinates appear in the sorted slice coords, which must be a subset
// of the series grid.
func (s *Series) selectCoords(coords []float64) *Series {
	out := &Series{
		x:  make([]float64, 0, len(coords)),
		re: make([]float64, 0, len(coords)),
	}

	if s.im != nil {
		out.im = make([]float64, 0, len(coords))
	}

	var mask []bool

	j := 0
	for i, x := range s.x {
		if j >= len(coords) {
			break
		}

		if x != coords[j] {
			continue
		}

		out.x = append(out.x, x)
		out.re = append(out.re, s.re[i])

		if s.im != nil {
			out.im = append(out.im, s.im[i])
		}

		if s.mask != nil {
			mask = append(mask, s.mask[i])
		}

		j++
	}

	if mask != nil {
		out.mask = mask
	}

	return out
}
