package cube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanDisjointAxes(t *testing.T) {
	x := mustIndex(t, "x", []string{"x1", "x2"})
	y := mustIndex(t, "y", []string{"y1", "y2", "y3"})
	left, err := NewAxisList(x)
	require.NoError(t, err)
	right, err := NewAxisList(y)
	require.NoError(t, err)

	p, err := Align(left, right)
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "y"}, p.Out.Names())
	assert.Empty(t, p.Left.Gathers)
	assert.Equal(t, []int{0}, p.Left.Order)
	assert.Equal(t, []int{1}, p.Left.Inserts)
	assert.Empty(t, p.Right.Gathers)
	assert.Equal(t, []int{0}, p.Right.Order)
	assert.Equal(t, []int{0}, p.Right.Inserts)
}

func TestPlanPairedReorder(t *testing.T) {
	a := mustIndex(t, "k", []string{"a", "b", "c"})
	b := mustIndex(t, "k", []string{"c", "b", "a"})
	left, _ := NewAxisList(a)
	right, _ := NewAxisList(b)

	p, err := Align(left, right)
	require.NoError(t, err)

	assert.True(t, p.Out.At(0).Equal(a))
	assert.Empty(t, p.Left.Gathers)
	require.Len(t, p.Right.Gathers, 1)
	assert.Equal(t, 0, p.Right.Gathers[0].Dim)
	assert.Equal(t, []int{2, 1, 0}, p.Right.Gathers[0].Indices)
}

func TestPlanIndexSeriesGatherSide(t *testing.T) {
	index := mustIndex(t, "k", []string{"a", "b", "c", "d"})
	series := mustSeries(t, "k", []string{"b", "d", "b"})
	left, _ := NewAxisList(index)
	right, _ := NewAxisList(series)

	p, err := Align(left, right)
	require.NoError(t, err)

	// The series dictates the output; the index side gathers.
	assert.True(t, p.Out.At(0).Equal(series))
	require.Len(t, p.Left.Gathers, 1)
	assert.Equal(t, []int{1, 3, 1}, p.Left.Gathers[0].Indices)
	assert.Empty(t, p.Right.Gathers)
}

func TestPlanMixedRanks(t *testing.T) {
	year := mustIndex(t, "year", []int{2014, 2015})
	quarter := mustIndex(t, "quarter", []string{"Q1", "Q2", "Q3", "Q4"})
	region := mustIndex(t, "region", []string{"north", "south"})

	left, err := NewAxisList(year, quarter)
	require.NoError(t, err)
	right, err := NewAxisList(quarter, region)
	require.NoError(t, err)

	p, err := Align(left, right)
	require.NoError(t, err)

	// Left axes in left order, then unique-to-right axes in right order.
	assert.Equal(t, []string{"year", "quarter", "region"}, p.Out.Names())
	assert.Equal(t, []int{0, 1}, p.Left.Order)
	assert.Equal(t, []int{2}, p.Left.Inserts)
	assert.Equal(t, []int{0, 1}, p.Right.Order)
	assert.Equal(t, []int{0}, p.Right.Inserts)
}

func TestPlanDeterminism(t *testing.T) {
	year := mustIndex(t, "year", []int{2014, 2015})
	quarter := mustIndex(t, "quarter", []string{"Q1", "Q2", "Q3", "Q4"})
	flipped := mustIndex(t, "quarter", []string{"Q4", "Q3", "Q2", "Q1"})

	left, _ := NewAxisList(year, quarter)
	right, _ := NewAxisList(flipped)

	first, err := Align(left, right)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Align(left, right)
		require.NoError(t, err)
		assert.True(t, first.Out.Equal(again.Out))
		assert.Equal(t, first.Left, again.Left)
		assert.Equal(t, first.Right, again.Right)
	}
}

func TestPlanIncompatible(t *testing.T) {
	a := mustIndex(t, "k", []string{"a", "b", "c"})
	b := mustIndex(t, "k", []string{"a", "b", "d"})
	shorter := mustIndex(t, "k", []string{"a", "b"})

	left, _ := NewAxisList(a)
	for _, other := range []*Axis{b, shorter} {
		right, _ := NewAxisList(other)
		_, err := Align(left, right)
		assert.ErrorIs(t, err, ErrIncompatibleAxes)
	}
}

func TestPlanSeriesNotSubsetOfIndex(t *testing.T) {
	index := mustIndex(t, "k", []string{"a", "b"})
	series := mustSeries(t, "k", []string{"a", "z"})

	left, _ := NewAxisList(index)
	right, _ := NewAxisList(series)
	_, err := Align(left, right)
	assert.ErrorIs(t, err, ErrIncompatibleAxes)
}
