package cube

import (
	"testing"

	"github.com/stretchr/testify/require"

	cpubackend "github.com/cube-ml/cube/internal/backend/cpu"
	"github.com/cube-ml/cube/internal/tensor"
)

var testBackend = cpubackend.New()

func mustIndex[L Label](t *testing.T, name string, labels []L) *Axis {
	t.Helper()
	ax, err := NewIndex(name, labels)
	require.NoError(t, err)
	return ax
}

func mustSeries[L Label](t *testing.T, name string, labels []L) *Axis {
	t.Helper()
	ax, err := NewSeries(name, labels)
	require.NoError(t, err)
	return ax
}

func mustCube[T tensor.DType](t *testing.T, values []T, shape tensor.Shape, axes ...*Axis) *Cube {
	t.Helper()
	c, err := FromSlice(values, shape, testBackend, axes...)
	require.NoError(t, err)
	return c
}

// salesFixture builds the 2x4 year-by-quarter cube used across the
// arithmetic and reduction tests.
func salesFixture(t *testing.T) (*Cube, *Axis, *Axis) {
	t.Helper()
	year := mustIndex(t, "year", []int{2014, 2015})
	quarter := mustIndex(t, "quarter", []string{"Q1", "Q2", "Q3", "Q4"})
	sales := mustCube(t, []int64{14, 16, 13, 20, 15, 15, 10, 19}, tensor.Shape{2, 4}, year, quarter)
	return sales, year, quarter
}
