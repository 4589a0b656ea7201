package resolution

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/outofforest/zorder/types"
)

func TestAnalyzeUnitSquare(t *testing.T) {
	requireT := require.New(t)

	res, err := Analyze([]float64{0, 1, 0, 1}, []float64{0, 0, 1, 1})
	requireT.NoError(err)
	requireT.Equal(types.Resolution{
		X: types.Spacing{Step: 1, Constrained: true},
		Y: types.Spacing{Step: 1, Constrained: true},
	}, res)
}

func TestAnalyzeFinestAcrossGroups(t *testing.T) {
	requireT := require.New(t)

	// Row y=0 has gap 4, row y=2 has gaps 1 and 3, column x=0 has gap 2.
	res, err := Analyze([]float64{0, 4, 0, 1, 4}, []float64{0, 0, 2, 2, 2})
	requireT.NoError(err)
	requireT.Equal(types.Spacing{Step: 1, Constrained: true}, res.X)
	requireT.Equal(types.Spacing{Step: 2, Constrained: true}, res.Y)
}

func TestAnalyzeUnsortedInput(t *testing.T) {
	requireT := require.New(t)

	res, err := Analyze([]float64{8, 2, 5}, []float64{1, 1, 1})
	requireT.NoError(err)
	requireT.Equal(types.Spacing{Step: 3, Constrained: true}, res.X)
	requireT.False(res.Y.Constrained)
}

func TestAnalyzeUnconstrained(t *testing.T) {
	requireT := require.New(t)

	res, err := Analyze([]float64{7}, []float64{3})
	requireT.NoError(err)
	requireT.False(res.X.Constrained)
	requireT.False(res.Y.Constrained)

	res, err = Analyze([]float64{0, 1, 2}, []float64{0, 1, 2})
	requireT.NoError(err)
	requireT.False(res.X.Constrained)
	requireT.False(res.Y.Constrained)
}

func TestAnalyzeCoincidentPoints(t *testing.T) {
	requireT := require.New(t)

	_, err := Analyze([]float64{0, 1, 0}, []float64{0, 0, 0})
	requireT.ErrorIs(err, types.ErrCoincidentPoints)
	requireT.ErrorContains(err, "points 0 and 2")
}

func TestAnalyzeInvalidInput(t *testing.T) {
	requireT := require.New(t)

	_, err := Analyze([]float64{0, 1}, []float64{0})
	requireT.ErrorIs(err, types.ErrInvalidInput)

	_, err = Analyze(nil, nil)
	requireT.ErrorIs(err, types.ErrInvalidInput)

	_, err = Analyze([]float64{0, math.NaN()}, []float64{0, 0})
	requireT.ErrorIs(err, types.ErrInvalidInput)

	_, err = Analyze([]float64{0, 1}, []float64{math.Inf(-1), 0})
	requireT.ErrorIs(err, types.ErrInvalidInput)
}
