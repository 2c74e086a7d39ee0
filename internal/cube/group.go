package cube

import (
	"fmt"

	"github.com/cube-ml/cube/internal/tensor"
)

// groupReducers names the reducers whose result does not depend on the
// order of elements within a group. Only these may be used with Group:
// partitioning reorders elements, so an order-sensitive reducer would
// produce arbitrary results.
var groupReducers = map[string]reduceKind{
	"sum":  reduceSum,
	"mean": reduceMean,
	"min":  reduceMin,
	"max":  reduceMax,
	"all":  reduceAll,
	"any":  reduceAny,
}

// Group partitions positions along the named axis by label equality,
// reduces each group, and returns a cube whose corresponding axis is an
// Index with one entry per distinct label, in first-occurrence order.
//
// Grouping an axis that is already an Index is a no-op: every group is
// a singleton.
func (c *Cube) Group(axisName, reducer string) (*Cube, error) {
	kind, ok := groupReducers[reducer]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNonGroupableReducer, reducer)
	}

	dim := c.axes.Find(axisName)
	if dim < 0 {
		return nil, fmt.Errorf("%w: %q", ErrAxisNotFound, axisName)
	}
	ax := c.axes.At(dim)

	if ax.Kind() == KindIndex {
		return c, nil
	}

	values, err := c.reduceInput(kind)
	if err != nil {
		return nil, err
	}

	// Distinct labels in first-occurrence order, with the positions of
	// each label's occurrences.
	var order []any
	groups := make(map[any][]int)
	for i := 0; i < ax.Len(); i++ {
		label := ax.Labels().Value(i)
		if _, seen := groups[label]; !seen {
			order = append(order, label)
		}
		groups[label] = append(groups[label], i)
	}

	parts := make([]*tensor.RawTensor, len(order))
	for k, label := range order {
		sub := c.backend.Take(values, dim, groups[label])
		parts[k] = reduceDimKeep(c.backend, kind, sub, dim)
	}
	merged := c.backend.Cat(parts, dim)

	grouped, err := newIndexAxis(ax.Name(), labelsFromAny(order))
	if err != nil {
		return nil, err
	}
	axes, err := c.axes.Replace(axisName, grouped)
	if err != nil {
		return nil, err
	}
	return c.derive(merged, axes), nil
}

func reduceDimKeep(b tensor.Backend, kind reduceKind, x *tensor.RawTensor, dim int) *tensor.RawTensor {
	switch kind {
	case reduceSum:
		return b.SumDim(x, dim, true)
	case reduceMean:
		return b.MeanDim(x, dim, true)
	case reduceMin:
		return b.MinDim(x, dim, true)
	case reduceMax:
		return b.MaxDim(x, dim, true)
	case reduceAll:
		return b.AllDim(x, dim, true)
	case reduceAny:
		return b.AnyDim(x, dim, true)
	default:
		panic(fmt.Sprintf("unknown reducer %d", kind))
	}
}
