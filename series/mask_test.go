package series

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nrkit/relseries/window"
)

func TestMask_ReductionTransparency(t *testing.T) {
	s, err := New([]float64{0, 1, 2, 3, 4}, []float64{1, 2, 100, 3, 200})
	require.NoError(t, err)

	require.False(t, s.IsMasked())
	require.InDelta(t, 61.2, s.Mean(), 1e-12)

	s.MaskGreater(50)
	require.True(t, s.IsMasked())
	require.Equal(t, 2, s.MaskedCount())

	// Masking hides points from reductions but does not change the length.
	require.Equal(t, 5, s.Len())
	require.InDelta(t, 2, s.Mean(), 1e-14)
	require.Equal(t, 3.0, s.Max())
	require.Equal(t, complex128(6), s.Sum())
}

func TestMaskRemove_Shrinks(t *testing.T) {
	s, err := New([]float64{0, 1, 2, 3, 4}, []float64{1, 2, 100, 3, 200})
	require.NoError(t, err)
	s.MaskGreater(50)

	trimmed, err := s.MaskRemoved()
	require.NoError(t, err)
	require.Equal(t, 3, trimmed.Len())
	require.Equal(t, []float64{0, 1, 3}, trimmed.Xs())
	require.False(t, trimmed.IsMasked())
	require.Equal(t, 5, s.Len(), "MaskRemoved must not touch the original")

	require.NoError(t, s.MaskRemoveInPlace())
	require.Equal(t, 3, s.Len())
}

func TestMaskRemove_AllMasked(t *testing.T) {
	s, err := New([]float64{0, 1}, []float64{10, 20})
	require.NoError(t, err)
	s.MaskGreater(0)

	err = s.MaskRemoveInPlace()
	require.ErrorIs(t, err, ErrEmptyRange)
	require.Equal(t, 2, s.Len(), "series must be unchanged on error")
}

func TestMaskLessOutsideClear(t *testing.T) {
	s, err := New([]float64{0, 1, 2, 3}, []float64{-5, 1, 2, 8})
	require.NoError(t, err)

	s.MaskLess(0)
	require.Equal(t, 1, s.MaskedCount())

	s.MaskClear()
	require.False(t, s.IsMasked())

	s.MaskOutside(0, 5)
	require.Equal(t, 2, s.MaskedCount())
}

func TestMaskInvalid(t *testing.T) {
	// Only coordinates are validated at construction; values may carry
	// NaN or Inf and get cleaned up by masking.
	s, err := New([]float64{0, 1, 2, 3}, []float64{1, math.NaN(), math.Inf(1), 4})
	require.NoError(t, err)

	s.MaskInvalid()
	require.Equal(t, 2, s.MaskedCount())
	require.InDelta(t, 2.5, s.Mean(), 1e-14)
}

func TestMask_SurvivesCopyAndCrop(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5}
	s, err := New(x, []float64{0, 10, 0, 10, 0, 10})
	require.NoError(t, err)
	s.MaskGreater(5)

	c, err := s.Cropped(1, 4)
	require.NoError(t, err)
	require.Equal(t, 4, c.Len())
	require.Equal(t, []bool{true, false, true, false}, c.Mask())
}

func TestMaskedData_RejectedByAnalysis(t *testing.T) {
	s := sineSeries(t, 0, 10, 64, 1)
	s.MaskGreater(0.5)

	_, err := s.Eval(5)
	require.ErrorIs(t, err, ErrMaskedData)

	_, err = s.Differentiated()
	require.ErrorIs(t, err, ErrMaskedData)

	_, err = s.Integrated()
	require.ErrorIs(t, err, ErrMaskedData)

	_, err = s.Resampled([]float64{1, 2, 3})
	require.ErrorIs(t, err, ErrMaskedData)

	_, err = s.ToFrequencyDomain()
	require.ErrorIs(t, err, ErrMaskedData)

	err = s.SmoothInPlace(1, 2)
	require.ErrorIs(t, err, ErrMaskedData)

	_, err = s.Windowed(window.TypeHann)
	require.ErrorIs(t, err, ErrMaskedData)

	err = s.TukeyWindowInPlace(0.25)
	require.ErrorIs(t, err, ErrMaskedData)
}
