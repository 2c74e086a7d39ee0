package cube

import (
	"fmt"

	"github.com/cube-ml/cube/internal/tensor"
)

// Concatenate joins cubes along an axis every cube already carries. The
// concatenated axis collects the labels of all operands in order and
// becomes an Index (asIndex) or a Series. All remaining axes are
// matched and aligned across the operands, and each operand is
// broadcast over axes it lacks.
func Concatenate(cubes []*Cube, axisName string, asIndex bool) (*Cube, error) {
	if len(cubes) == 0 {
		return nil, fmt.Errorf("%w: at least one cube required", ErrShapeMismatch)
	}

	var mainLabels []any
	for _, c := range cubes {
		ax, err := c.Axis(axisName)
		if err != nil {
			return nil, err
		}
		mainLabels = append(mainLabels, ax.Labels().Values()...)
	}

	var mainAxis *Axis
	var err error
	if asIndex {
		mainAxis, err = newIndexAxis(axisName, labelsFromAny(mainLabels))
	} else {
		mainAxis, err = newSeriesAxis(axisName, labelsFromAny(mainLabels))
	}
	if err != nil {
		return nil, err
	}

	base := uniqueAxesFromCubes(cubes)
	others := base[:0:0]
	for _, ax := range base {
		if ax.Name() != axisName {
			others = append(others, ax)
		}
	}

	return alignBroadcastConcat(cubes, others, mainAxis)
}

// Join stacks cubes along a new axis. No cube may already contain the
// axis name, and the axis length must equal the number of cubes.
func Join(cubes []*Cube, ax *Axis) (*Cube, error) {
	if len(cubes) == 0 {
		return nil, fmt.Errorf("%w: at least one cube required", ErrShapeMismatch)
	}
	for _, c := range cubes {
		if c.axes.Contains(ax.Name()) {
			return nil, fmt.Errorf("%w: cube already contains axis %q", ErrDuplicateAxis, ax.Name())
		}
	}
	if len(cubes) != ax.Len() {
		return nil, fmt.Errorf("%w: axis %q has %d labels for %d cubes", ErrShapeMismatch, ax.Name(), ax.Len(), len(cubes))
	}

	return alignBroadcastConcat(cubes, uniqueAxesFromCubes(cubes), ax)
}

// uniqueAxesFromCubes collects one base axis per distinct name, in
// first-occurrence order. A Series takes priority over an Index of the
// same name: the Series dictates order and multiplicity, so every Index
// can be aligned to it but not the other way around.
func uniqueAxesFromCubes(cubes []*Cube) []*Axis {
	var axes []*Axis
	position := make(map[string]int)
	for _, c := range cubes {
		for _, ax := range c.axes.axes {
			i, seen := position[ax.Name()]
			if !seen {
				position[ax.Name()] = len(axes)
				axes = append(axes, ax)
				continue
			}
			if axes[i].Kind() == KindIndex && ax.Kind() == KindSeries {
				axes[i] = ax
			}
		}
	}
	return axes
}

// alignBroadcastConcat aligns every cube to the base axes, broadcasts
// each over axes it lacks, and concatenates along the main axis, which
// leads the result.
func alignBroadcastConcat(cubes []*Cube, baseAxes []*Axis, mainAxis *Axis) (*Cube, error) {
	b := cubes[0].backend

	outAxes, err := NewAxisList(append([]*Axis{mainAxis}, baseAxes...)...)
	if err != nil {
		return nil, err
	}

	dtype := cubes[0].DType()
	for _, c := range cubes[1:] {
		dtype = tensor.Promote(dtype, c.DType())
	}

	parts := make([]*tensor.RawTensor, len(cubes))
	for k, c := range cubes {
		arr := prepare(b, c.values, dtype)

		// Align each of the cube's axes to the base axis of the same name.
		for _, baseAx := range baseAxes {
			dim := c.axes.Find(baseAx.Name())
			if dim < 0 {
				continue
			}
			ax := c.axes.At(dim)
			if ax == baseAx || ax.Equal(baseAx) {
				continue
			}
			switch ax.Kind() {
			case KindIndex:
				indices, lookupErr := ax.positionsOf(baseAx.Labels())
				if lookupErr != nil {
					return nil, fmt.Errorf("%w: axis %q cannot be aligned", ErrIncompatibleAxes, ax.Name())
				}
				arr = b.Take(arr, dim, indices)
			default:
				if !ax.Labels().Equal(baseAx.Labels()) {
					return nil, fmt.Errorf("%w: series axes %q have different labels", ErrIncompatibleAxes, ax.Name())
				}
			}
		}

		// Broadcast to the output order: missing axes become trailing
		// unit dimensions, then everything is transposed into place.
		dims := make(map[string]int, c.Rank())
		for i := 0; i < c.Rank(); i++ {
			dims[c.axes.At(i).Name()] = i
		}
		rank := c.Rank()
		order := make([]int, 0, outAxes.Len())
		for i := 0; i < outAxes.Len(); i++ {
			name := outAxes.At(i).Name()
			if d, ok := dims[name]; ok {
				order = append(order, d)
			} else {
				arr = b.Unsqueeze(arr, rank)
				order = append(order, rank)
				rank++
			}
		}
		arr = b.Transpose(arr, order...)

		// Stretch unit dimensions to the base lengths so Cat sees equal
		// shapes everywhere except the leading (concatenation) axis.
		for i, baseAx := range baseAxes {
			dim := i + 1
			if arr.Shape()[dim] == 1 && baseAx.Len() > 1 {
				arr = b.Take(arr, dim, make([]int, baseAx.Len()))
			}
		}

		parts[k] = arr
	}

	merged := b.Cat(parts, 0)
	return newCube(merged, b, outAxes)
}
