package cube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cube-ml/cube/internal/tensor"
)

func TestTransposeByName(t *testing.T) {
	sales, _, _ := salesFixture(t)

	flipped, err := sales.Transpose("quarter", "year")
	require.NoError(t, err)

	assert.Equal(t, []string{"quarter", "year"}, flipped.Axes().Names())
	assert.Equal(t, tensor.Shape{4, 2}, flipped.Shape())
	assert.Equal(t, []int64{14, 15, 16, 15, 13, 10, 20, 19}, Values[int64](flipped))
}

func TestTransposeRoundTrip(t *testing.T) {
	sales, _, _ := salesFixture(t)

	flipped, err := sales.TransposeDims(1, 0)
	require.NoError(t, err)
	back, err := flipped.TransposeDims(1, 0)
	require.NoError(t, err)

	assert.True(t, back.Equal(sales))
}

func TestTransposeInvalidPermutation(t *testing.T) {
	sales, _, _ := salesFixture(t)

	_, err := sales.Transpose("quarter")
	assert.ErrorIs(t, err, ErrInvalidPermutation)
	_, err = sales.Transpose("quarter", "region")
	assert.ErrorIs(t, err, ErrInvalidPermutation)
	_, err = sales.Transpose("quarter", "quarter")
	assert.ErrorIs(t, err, ErrInvalidPermutation)
	_, err = sales.TransposeDims(0, 2)
	assert.ErrorIs(t, err, ErrInvalidPermutation)
}

func TestSwapAxes(t *testing.T) {
	sales, _, _ := salesFixture(t)

	swapped, err := sales.SwapAxes("year", "quarter")
	require.NoError(t, err)
	assert.Equal(t, []string{"quarter", "year"}, swapped.Axes().Names())
}

func TestRenameAxis(t *testing.T) {
	sales, _, _ := salesFixture(t)

	renamed, err := sales.RenameAxis("year", "fiscal")
	require.NoError(t, err)
	assert.Equal(t, []string{"fiscal", "quarter"}, renamed.Axes().Names())
	assert.Equal(t, Values[int64](sales), Values[int64](renamed))
}

func TestReplaceAxis(t *testing.T) {
	sales, _, _ := salesFixture(t)
	months := mustIndex(t, "quarter", []string{"jan", "apr", "jul", "oct"})

	replaced, err := sales.ReplaceAxis("quarter", months)
	require.NoError(t, err)
	ax, err := replaced.Axis("quarter")
	require.NoError(t, err)
	assert.True(t, ax.Equal(months))

	short := mustIndex(t, "quarter", []string{"jan"})
	_, err = sales.ReplaceAxis("quarter", short)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestInsertAxisRepeatsValues(t *testing.T) {
	quarter := mustIndex(t, "quarter", []string{"Q1", "Q2"})
	c := mustCube(t, []int64{3, 4}, tensor.Shape{2}, quarter)
	region := mustIndex(t, "region", []string{"north", "south", "west"})

	grown, err := c.InsertAxis(region, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"region", "quarter"}, grown.Axes().Names())
	assert.Equal(t, tensor.Shape{3, 2}, grown.Shape())
	assert.Equal(t, []int64{3, 4, 3, 4, 3, 4}, Values[int64](grown))
}
