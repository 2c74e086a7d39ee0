package cube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cube-ml/cube/internal/tensor"
)

func TestConcatenate(t *testing.T) {
	a := mustCube(t, []int64{1, 2}, tensor.Shape{2}, mustIndex(t, "quarter", []string{"Q1", "Q2"}))
	b := mustCube(t, []int64{3, 4}, tensor.Shape{2}, mustIndex(t, "quarter", []string{"Q3", "Q4"}))

	merged, err := Concatenate([]*Cube{a, b}, "quarter", true)
	require.NoError(t, err)

	ax, err := merged.Axis("quarter")
	require.NoError(t, err)
	assert.Equal(t, KindIndex, ax.Kind())
	assert.Equal(t, []any{"Q1", "Q2", "Q3", "Q4"}, ax.Labels().Values())
	assert.Equal(t, []int64{1, 2, 3, 4}, Values[int64](merged))
}

func TestConcatenateAlignsOtherAxes(t *testing.T) {
	quarter := mustIndex(t, "quarter", []string{"Q1", "Q2"})
	reversed := mustIndex(t, "quarter", []string{"Q2", "Q1"})

	a := mustCube(t, []int64{1, 2}, tensor.Shape{1, 2},
		mustIndex(t, "year", []int{2014}), quarter)
	b := mustCube(t, []int64{30, 40}, tensor.Shape{1, 2},
		mustIndex(t, "year", []int{2015}), reversed)

	merged, err := Concatenate([]*Cube{a, b}, "year", true)
	require.NoError(t, err)

	assert.Equal(t, []string{"year", "quarter"}, merged.Axes().Names())
	// The second operand realigns to the first operand's quarter order.
	assert.Equal(t, []int64{1, 2, 40, 30}, Values[int64](merged))
}

func TestConcatenateDuplicateLabelsFailAsIndex(t *testing.T) {
	k := mustIndex(t, "k", []string{"a", "b"})
	a := mustCube(t, []int64{1, 2}, tensor.Shape{2}, k)
	b := mustCube(t, []int64{3, 4}, tensor.Shape{2}, k)

	_, err := Concatenate([]*Cube{a, b}, "k", true)
	assert.ErrorIs(t, err, ErrUniquenessViolation)

	merged, err := Concatenate([]*Cube{a, b}, "k", false)
	require.NoError(t, err)
	ax, err := merged.Axis("k")
	require.NoError(t, err)
	assert.Equal(t, KindSeries, ax.Kind())
	assert.Equal(t, []int64{1, 2, 3, 4}, Values[int64](merged))
}

func TestConcatenateMissingAxis(t *testing.T) {
	a := mustCube(t, []int64{1}, tensor.Shape{1}, mustIndex(t, "k", []string{"a"}))
	b := mustCube(t, []int64{2}, tensor.Shape{1}, mustIndex(t, "m", []string{"b"}))

	_, err := Concatenate([]*Cube{a, b}, "k", true)
	assert.ErrorIs(t, err, ErrAxisNotFound)
}

func TestJoin(t *testing.T) {
	quarter := mustIndex(t, "quarter", []string{"Q1", "Q2"})
	low := mustCube(t, []int64{1, 2}, tensor.Shape{2}, quarter)
	high := mustCube(t, []int64{10, 20}, tensor.Shape{2}, quarter)

	scenario := mustIndex(t, "scenario", []string{"low", "high"})
	joined, err := Join([]*Cube{low, high}, scenario)
	require.NoError(t, err)

	assert.Equal(t, []string{"scenario", "quarter"}, joined.Axes().Names())
	assert.Equal(t, tensor.Shape{2, 2}, joined.Shape())
	assert.Equal(t, []int64{1, 2, 10, 20}, Values[int64](joined))
}

func TestJoinAxisLengthMismatch(t *testing.T) {
	quarter := mustIndex(t, "quarter", []string{"Q1"})
	c := mustCube(t, []int64{1}, tensor.Shape{1}, quarter)

	scenario := mustIndex(t, "scenario", []string{"low", "high"})
	_, err := Join([]*Cube{c}, scenario)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestJoinExistingAxisFails(t *testing.T) {
	quarter := mustIndex(t, "quarter", []string{"Q1"})
	c := mustCube(t, []int64{1}, tensor.Shape{1}, quarter)

	_, err := Join([]*Cube{c}, mustIndex(t, "quarter", []string{"x"}))
	assert.ErrorIs(t, err, ErrDuplicateAxis)
}
