package cube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cube-ml/cube/internal/tensor"
)

func TestGroupMean(t *testing.T) {
	subject := mustSeries(t, "subject", []string{"m", "b", "m", "p", "m", "b", "m", "p"})
	score := mustCube(t, []int64{65, 80, 95, 52, 35, 50, 89, 95}, tensor.Shape{8}, subject)

	grouped, err := score.Group("subject", "mean")
	require.NoError(t, err)

	ax := grouped.Axes().At(0)
	assert.Equal(t, KindIndex, ax.Kind())
	assert.Equal(t, []any{"m", "b", "p"}, ax.Labels().Values(),
		"distinct labels in first-occurrence order")
	assert.InDeltaSlice(t, []float64{71.0, 65.0, 73.5}, Values[float64](grouped), 1e-9)
}

func TestGroupSum(t *testing.T) {
	subject := mustSeries(t, "subject", []string{"a", "b", "a"})
	score := mustCube(t, []int64{1, 10, 2}, tensor.Shape{3}, subject)

	grouped, err := score.Group("subject", "sum")
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 10}, Values[int64](grouped))
}

func TestGroupAlongInnerAxis(t *testing.T) {
	year := mustIndex(t, "year", []int{2014, 2015})
	tag := mustSeries(t, "tag", []string{"x", "y", "x"})
	c := mustCube(t, []int64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, year, tag)

	grouped, err := c.Group("tag", "sum")
	require.NoError(t, err)
	assert.Equal(t, []string{"year", "tag"}, grouped.Axes().Names())
	assert.Equal(t, tensor.Shape{2, 2}, grouped.Shape())
	assert.Equal(t, []int64{4, 2, 10, 5}, Values[int64](grouped))
}

func TestGroupIndexAxisIsNoOp(t *testing.T) {
	k := mustIndex(t, "k", []string{"a", "b"})
	c := mustCube(t, []int64{1, 2}, tensor.Shape{2}, k)

	grouped, err := c.Group("k", "mean")
	require.NoError(t, err)
	assert.True(t, grouped.Equal(c), "index labels are already unique")
}

func TestGroupRejectsUnknownReducer(t *testing.T) {
	subject := mustSeries(t, "subject", []string{"a", "b"})
	c := mustCube(t, []int64{1, 2}, tensor.Shape{2}, subject)

	_, err := c.Group("subject", "first")
	assert.ErrorIs(t, err, ErrNonGroupableReducer)

	_, err = c.Group("subject", "median")
	assert.ErrorIs(t, err, ErrNonGroupableReducer)
}

func TestGroupUnknownAxis(t *testing.T) {
	subject := mustSeries(t, "subject", []string{"a", "b"})
	c := mustCube(t, []int64{1, 2}, tensor.Shape{2}, subject)

	_, err := c.Group("region", "sum")
	assert.ErrorIs(t, err, ErrAxisNotFound)
}
