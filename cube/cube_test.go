package cube_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cube-ml/cube/cube"
	"github.com/cube-ml/cube/tensor"
)

func TestPublicSurface(t *testing.T) {
	year, err := cube.Index("year", []int{2014, 2015})
	require.NoError(t, err)
	quarter, err := cube.Index("quarter", []string{"Q1", "Q2", "Q3", "Q4"})
	require.NoError(t, err)

	sales, err := cube.New([]float64{14, 16, 13, 20, 15, 15, 10, 19},
		tensor.Shape{2, 4}, year, quarter)
	require.NoError(t, err)

	prices, err := cube.New([]float64{1.50, 1.52, 1.53, 1.55},
		tensor.Shape{4}, quarter)
	require.NoError(t, err)

	revenue, err := sales.Mul(prices)
	require.NoError(t, err)

	assert.Equal(t, []string{"year", "quarter"}, revenue.Axes().Names())
	assert.InDeltaSlice(t,
		[]float64{21.0, 24.32, 19.89, 31.0, 22.5, 22.8, 15.3, 29.45},
		cube.Values[float64](revenue), 1e-9)

	byYear, err := revenue.SumKeep("year")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{96.21, 90.05}, cube.Values[float64](byYear), 1e-9)
}

func TestPublicErrorsAreTyped(t *testing.T) {
	left, err := cube.Index("k", []string{"a", "b", "c"})
	require.NoError(t, err)
	right, err := cube.Index("k", []string{"a", "b", "d"})
	require.NoError(t, err)

	p, err := cube.New([]int64{1, 2, 3}, tensor.Shape{3}, left)
	require.NoError(t, err)
	q, err := cube.New([]int64{1, 2, 3}, tensor.Shape{3}, right)
	require.NoError(t, err)

	_, err = p.Add(q)
	assert.ErrorIs(t, err, cube.ErrIncompatibleAxes)
}

func TestPublicAlign(t *testing.T) {
	x, err := cube.Index("x", []string{"x1", "x2"})
	require.NoError(t, err)
	y, err := cube.Index("y", []string{"y1"})
	require.NoError(t, err)

	left, err := cube.NewAxisList(x)
	require.NoError(t, err)
	right, err := cube.NewAxisList(y)
	require.NoError(t, err)

	p, err := cube.Align(left, right)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, p.Out.Names())
}
