package cube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cube-ml/cube/internal/tensor"
)

func TestFilterByLabels(t *testing.T) {
	sales, _, _ := salesFixture(t)

	summer, err := sales.Filter("quarter", "Q3", "Q2")
	require.NoError(t, err)

	ax, err := summer.Axis("quarter")
	require.NoError(t, err)
	assert.Equal(t, []any{"Q2", "Q3"}, ax.Labels().Values(), "axis order preserved")
	assert.Equal(t, tensor.Shape{2, 2}, summer.Shape())
	assert.Equal(t, []int64{16, 13, 15, 10}, Values[int64](summer))
}

func TestFilterMissingLabelFails(t *testing.T) {
	sales, _, _ := salesFixture(t)
	_, err := sales.Filter("quarter", "Q5")
	assert.ErrorIs(t, err, ErrLabelNotFound)
}

func TestFilterIsIdempotent(t *testing.T) {
	sales, _, _ := salesFixture(t)

	once, err := sales.Filter("quarter", "Q1", "Q4")
	require.NoError(t, err)
	twice, err := once.Filter("quarter", "Q1", "Q4")
	require.NoError(t, err)

	assert.True(t, once.Equal(twice))
}

func TestTakeByPositions(t *testing.T) {
	sales, _, _ := salesFixture(t)

	flipped, err := sales.Take("quarter", 3, 2, 1, 0)
	require.NoError(t, err)

	ax, err := flipped.Axis("quarter")
	require.NoError(t, err)
	assert.Equal(t, []any{"Q4", "Q3", "Q2", "Q1"}, ax.Labels().Values())
	assert.Equal(t, KindIndex, ax.Kind())
	assert.Equal(t, []int64{20, 13, 16, 14, 19, 10, 15, 15}, Values[int64](flipped))
}

func TestTakeIdentityEqualsOriginal(t *testing.T) {
	sales, _, _ := salesFixture(t)

	same, err := sales.Take("quarter", 0, 1, 2, 3)
	require.NoError(t, err)
	assert.True(t, same.Equal(sales))
}

func TestTakeOutOfRange(t *testing.T) {
	sales, _, _ := salesFixture(t)
	_, err := sales.Take("quarter", 0, 4)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestTakeWithRepeatsDemotesIndex(t *testing.T) {
	sales, _, _ := salesFixture(t)

	doubled, err := sales.Take("quarter", 0, 0, 1)
	require.NoError(t, err)

	ax, err := doubled.Axis("quarter")
	require.NoError(t, err)
	assert.Equal(t, KindSeries, ax.Kind(), "duplicate labels demote the index")
	assert.Equal(t, []any{"Q1", "Q1", "Q2"}, ax.Labels().Values())
}

func TestCompress(t *testing.T) {
	sales, _, _ := salesFixture(t)

	odd, err := sales.Compress("quarter", []bool{true, false, true, false})
	require.NoError(t, err)

	ax, err := odd.Axis("quarter")
	require.NoError(t, err)
	assert.Equal(t, []any{"Q1", "Q3"}, ax.Labels().Values())
	assert.Equal(t, []int64{14, 13, 15, 10}, Values[int64](odd))
}

func TestCompressMaskLengthMismatch(t *testing.T) {
	sales, _, _ := salesFixture(t)
	_, err := sales.Compress("quarter", []bool{true, false})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestFilterUnknownAxis(t *testing.T) {
	sales, _, _ := salesFixture(t)
	_, err := sales.Filter("region", "north")
	assert.ErrorIs(t, err, ErrAxisNotFound)
}

func TestAlignTo(t *testing.T) {
	sales, _, _ := salesFixture(t)
	reversed := mustIndex(t, "quarter", []string{"Q4", "Q3", "Q2", "Q1"})

	aligned, err := sales.AlignTo(reversed)
	require.NoError(t, err)

	ax, err := aligned.Axis("quarter")
	require.NoError(t, err)
	assert.True(t, ax.Equal(reversed))
	assert.Equal(t, []int64{20, 13, 16, 14, 19, 10, 15, 15}, Values[int64](aligned))
}

func TestAlignToUnknownLabel(t *testing.T) {
	sales, _, _ := salesFixture(t)
	other := mustIndex(t, "quarter", []string{"Q1", "Q5"})

	_, err := sales.AlignTo(other)
	assert.ErrorIs(t, err, ErrLabelNotFound)
}
