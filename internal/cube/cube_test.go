package cube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cube-ml/cube/internal/tensor"
)

func TestNewCubeShapeAgreement(t *testing.T) {
	year := mustIndex(t, "year", []int{2014, 2015})
	quarter := mustIndex(t, "quarter", []string{"Q1", "Q2", "Q3", "Q4"})

	c := mustCube(t, []int64{1, 2, 3, 4, 5, 6, 7, 8}, tensor.Shape{2, 4}, year, quarter)
	assert.Equal(t, 2, c.Rank())
	assert.Equal(t, tensor.Shape{2, 4}, c.Shape())

	// Rank mismatch.
	_, err := FromSlice([]int64{1, 2}, tensor.Shape{2}, testBackend, year, quarter)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	// Length mismatch.
	_, err = FromSlice([]int64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, testBackend, year, quarter)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestNewCubeDuplicateAxes(t *testing.T) {
	a := mustIndex(t, "k", []string{"a", "b"})
	b := mustIndex(t, "k", []string{"c", "d"})

	_, err := FromSlice([]int64{1, 2, 3, 4}, tensor.Shape{2, 2}, testBackend, a, b)
	assert.ErrorIs(t, err, ErrDuplicateAxis)
}

func TestCubeAt(t *testing.T) {
	sales, _, _ := salesFixture(t)

	v, err := sales.At(1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(19), v)

	_, err = sales.At(1, 4)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = sales.At(1)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestScalarCube(t *testing.T) {
	s := Scalar(3.5, testBackend)
	assert.Equal(t, 0, s.Rank())

	v, err := s.Item()
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)
}

func TestCubeEqual(t *testing.T) {
	a, _, _ := salesFixture(t)
	b, _, _ := salesFixture(t)
	assert.True(t, a.Equal(b))

	c, err := b.Mul(2)
	require.NoError(t, err)
	assert.False(t, a.Equal(c))
}

func TestScalarOperandOnBothSides(t *testing.T) {
	s := Scalar(int64(10), testBackend)
	sales, _, _ := salesFixture(t)

	// A rank-0 cube aligns with anything: no paired axes, broadcast only.
	sum, err := s.Add(sales)
	require.NoError(t, err)
	assert.Equal(t, []string{"year", "quarter"}, sum.Axes().Names())
	assert.Equal(t, []int64{24, 26, 23, 30, 25, 25, 20, 29}, Values[int64](sum))

	mirrored, err := sales.Add(s)
	require.NoError(t, err)
	assert.Equal(t, []string{"year", "quarter"}, mirrored.Axes().Names())
	assert.Equal(t, []int64{24, 26, 23, 30, 25, 25, 20, 29}, Values[int64](mirrored))
}
