// SPDX-License-Identifier: MIT

package scale_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/draftheat/matrix"
	"github.com/katalvlaran/draftheat/scale"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// TestFindAnchor_TieBreakRowMajor: 45 and 55 are equally close to 50; the
// first one in row-major order must win even though it yields a different anchor.
func TestFindAnchor_TieBreakRowMajor(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]float64{
		{0, 10, 20, 30, 45},
		{100, 55, 90, 80, 70},
	})

	a, err := scale.FindAnchor(m)
	require.NoError(t, err)
	require.Equal(t, 45.0, a.Value)
	require.Equal(t, 0, a.Row)
	require.Equal(t, 4, a.Col)
	require.Equal(t, 5.0, a.Distance)
	require.Equal(t, 0.0, a.Min)
	require.Equal(t, 100.0, a.Max)
	require.InDelta(t, 0.45, a.Position, 1e-12)
	require.False(t, a.Degenerate)

	// Swapping the two cells moves the anchor to the other value.
	m2 := mustRows(t, [][]float64{
		{0, 10, 20, 30, 55},
		{100, 45, 90, 80, 70},
	})
	a2, err := scale.FindAnchor(m2)
	require.NoError(t, err)
	require.InDelta(t, 0.55, a2.Position, 1e-12)
}

func TestFindAnchor_Deterministic(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]float64{{50, 50, 40}, {60, 50, 50}})
	first, err := scale.FindAnchor(m)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := scale.FindAnchor(m)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
	require.Equal(t, 0, first.Row)
	require.Equal(t, 0, first.Col)
	require.Equal(t, 0.5, first.Position)
}

func TestFindAnchor_Degenerate(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]float64{{42, 42}, {42, 42}})

	a, err := scale.FindAnchor(m)
	require.NoError(t, err)
	require.True(t, a.Degenerate)
	require.Equal(t, scale.DegenerateAnchor, a.Position)
	require.False(t, math.IsNaN(a.Position))

	a, err = scale.FindAnchor(m, scale.WithStrictRange())
	require.ErrorIs(t, err, scale.ErrDegenerateRange)
	var dre *scale.DegenerateRangeError
	require.True(t, errors.As(err, &dre))
	require.Equal(t, 42.0, dre.Value)
	require.Equal(t, scale.DegenerateAnchor, a.Position)
}

func TestFindAnchor_EdgesAndReference(t *testing.T) {
	t.Parallel()

	// All values above 50: the minimum is the closest, anchor 0.
	m := mustRows(t, [][]float64{{60, 70}, {80, 90}})
	a, err := scale.FindAnchor(m)
	require.NoError(t, err)
	require.Equal(t, 0.0, a.Position)

	// All values below 50: the maximum is the closest, anchor 1.
	m = mustRows(t, [][]float64{{10, 20}, {30, 40}})
	a, err = scale.FindAnchor(m)
	require.NoError(t, err)
	require.Equal(t, 1.0, a.Position)

	a, err = scale.FindAnchor(m, scale.WithReference(20))
	require.NoError(t, err)
	require.Equal(t, 20.0, a.Value)
	require.InDelta(t, 1.0/3, a.Position, 1e-12)

	_, err = scale.FindAnchor(m, scale.WithReference(math.NaN()))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestFindAnchor_HugeRange: max - min overflows float64, the anchor must not.
func TestFindAnchor_HugeRange(t *testing.T) {
	t.Parallel()

	a, err := scale.FindAnchor(mustRows(t, [][]float64{{math.MaxFloat64, -math.MaxFloat64}}))
	require.NoError(t, err)
	require.Equal(t, 0, a.Col)
	require.Equal(t, 1.0, a.Position)

	s, err := scale.BuildScale(0.5)
	require.NoError(t, err)
	require.Equal(t, scale.Green, s.Map(math.MaxFloat64, -math.MaxFloat64, math.MaxFloat64))
	require.Equal(t, scale.White, s.Map(0, -math.MaxFloat64, math.MaxFloat64))
}

func TestFindAnchor_Nil(t *testing.T) {
	t.Parallel()

	_, err := scale.FindAnchor(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestBuildScale_Stops(t *testing.T) {
	t.Parallel()

	for _, anchor := range []float64{0, 0.25, 0.5, 1} {
		s, err := scale.BuildScale(anchor)
		require.NoError(t, err)
		stops := s.Stops()
		require.Len(t, stops, 3)
		require.Equal(t, 0.0, stops[0].Pos)
		require.Equal(t, 1.0, stops[2].Pos)
		require.Less(t, stops[0].Pos, stops[1].Pos)
		require.Less(t, stops[1].Pos, stops[2].Pos)
		require.Equal(t, scale.Red, stops[0].Color)
		require.Equal(t, scale.White, stops[1].Color)
		require.Equal(t, scale.Green, stops[2].Color)
	}

	s, err := scale.BuildScale(0)
	require.NoError(t, err)
	require.Equal(t, scale.StopEpsilon, s.Stops()[1].Pos)

	_, err = scale.BuildScale(math.NaN())
	require.ErrorIs(t, err, scale.ErrInvalidAnchor)
}

func TestColorScale_At(t *testing.T) {
	t.Parallel()

	s, err := scale.BuildScale(0.5)
	require.NoError(t, err)

	require.Equal(t, scale.Red, s.At(0))
	require.Equal(t, scale.Red, s.At(-3))
	require.Equal(t, scale.White, s.At(0.5))
	require.Equal(t, scale.Green, s.At(1))
	require.Equal(t, scale.Green, s.At(7))
	require.Equal(t, drawing.Color{R: 255, G: 128, B: 128, A: 255}, s.At(0.25))
	require.Equal(t, drawing.Color{R: 128, G: 255, B: 128, A: 255}, s.At(0.75))

	require.Equal(t, scale.White, s.Map(50, 40, 60))
	require.Equal(t, scale.Red, s.Map(40, 40, 60))
	require.Equal(t, scale.White, s.Map(10, 10, 10))

	var zero scale.ColorScale
	require.Equal(t, drawing.Color{}, zero.At(0.3))
}

// TestTitleColor_StrictBoundary: exactly 50 is red.
func TestTitleColor_StrictBoundary(t *testing.T) {
	t.Parallel()

	require.Equal(t, scale.Red, scale.TitleColor(50))
	require.Equal(t, scale.Red, scale.TitleColor(12))
	require.Equal(t, scale.Green, scale.TitleColor(50.01))
}
