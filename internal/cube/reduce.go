package cube

import (
	"fmt"

	"github.com/cube-ml/cube/internal/tensor"
)

// reduceKind enumerates the built-in reducers.
type reduceKind int

const (
	reduceSum reduceKind = iota
	reduceMean
	reduceMin
	reduceMax
	reduceAll
	reduceAny
)

func (k reduceKind) String() string {
	switch k {
	case reduceSum:
		return "sum"
	case reduceMean:
		return "mean"
	case reduceMin:
		return "min"
	case reduceMax:
		return "max"
	case reduceAll:
		return "all"
	case reduceAny:
		return "any"
	default:
		return "unknown"
	}
}

// Sum reduces along the named axes; with no names it reduces all axes
// to a rank-0 cube.
func (c *Cube) Sum(axes ...string) (*Cube, error) { return c.reduce(reduceSum, axes, false) }

// SumKeep reduces along every axis NOT named.
func (c *Cube) SumKeep(axes ...string) (*Cube, error) { return c.reduce(reduceSum, axes, true) }

// Mean reduces along the named axes. Integer cubes promote to float64.
func (c *Cube) Mean(axes ...string) (*Cube, error) { return c.reduce(reduceMean, axes, false) }

// MeanKeep reduces along every axis NOT named.
func (c *Cube) MeanKeep(axes ...string) (*Cube, error) { return c.reduce(reduceMean, axes, true) }

// Min reduces along the named axes.
func (c *Cube) Min(axes ...string) (*Cube, error) { return c.reduce(reduceMin, axes, false) }

// MinKeep reduces along every axis NOT named.
func (c *Cube) MinKeep(axes ...string) (*Cube, error) { return c.reduce(reduceMin, axes, true) }

// Max reduces along the named axes.
func (c *Cube) Max(axes ...string) (*Cube, error) { return c.reduce(reduceMax, axes, false) }

// MaxKeep reduces along every axis NOT named.
func (c *Cube) MaxKeep(axes ...string) (*Cube, error) { return c.reduce(reduceMax, axes, true) }

// All reduces a bool cube by conjunction along the named axes.
// Numeric cubes are first tested against zero.
func (c *Cube) All(axes ...string) (*Cube, error) { return c.reduce(reduceAll, axes, false) }

// AllKeep reduces by conjunction along every axis NOT named.
func (c *Cube) AllKeep(axes ...string) (*Cube, error) { return c.reduce(reduceAll, axes, true) }

// Any reduces a bool cube by disjunction along the named axes.
// Numeric cubes are first tested against zero.
func (c *Cube) Any(axes ...string) (*Cube, error) { return c.reduce(reduceAny, axes, false) }

// AnyKeep reduces by disjunction along every axis NOT named.
func (c *Cube) AnyKeep(axes ...string) (*Cube, error) { return c.reduce(reduceAny, axes, true) }

func (c *Cube) reduce(kind reduceKind, names []string, keep bool) (*Cube, error) {
	dims, err := c.reduceDims(names, keep)
	if err != nil {
		return nil, err
	}

	values, err := c.reduceInput(kind)
	if err != nil {
		return nil, err
	}

	// Reduce from the highest dimension down so lower dims keep their
	// positions while the loop runs.
	for i := len(dims) - 1; i >= 0; i-- {
		values = reduceDim(c.backend, kind, values, dims[i])
	}

	return c.derive(values, c.axes.removeDims(dims)), nil
}

// reduceDims resolves axis names into an ascending list of dimensions
// to reduce. With keep=false the named axes are reduced (all axes when
// none are named); with keep=true the complement is reduced.
func (c *Cube) reduceDims(names []string, keep bool) ([]int, error) {
	named := make([]bool, c.Rank())
	for _, name := range names {
		i := c.axes.Find(name)
		if i < 0 {
			return nil, fmt.Errorf("%w: %q", ErrAxisNotFound, name)
		}
		named[i] = true
	}

	dims := make([]int, 0, c.Rank())
	for i := range named {
		switch {
		case keep:
			if !named[i] {
				dims = append(dims, i)
			}
		case len(names) == 0:
			dims = append(dims, i)
		default:
			if named[i] {
				dims = append(dims, i)
			}
		}
	}
	return dims, nil
}

// reduceInput prepares the value tensor for the reducer: mean promotes
// integers to float64, all/any test numeric values against zero.
func (c *Cube) reduceInput(kind reduceKind) (*tensor.RawTensor, error) {
	values := c.values
	switch kind {
	case reduceMean:
		if values.DType() == tensor.Bool {
			return nil, fmt.Errorf("%w: mean requires a numeric cube", ErrUnsupportedDType)
		}
		if !values.DType().IsFloat() {
			values = c.backend.Cast(values, tensor.Float64)
		}
	case reduceAll, reduceAny:
		if values.DType() != tensor.Bool {
			zero := c.backend.Cast(tensor.FromScalar(int64(0)), values.DType())
			values = c.backend.NotEqual(values, zero)
		}
	default:
		if values.DType() == tensor.Bool {
			return nil, fmt.Errorf("%w: %s requires a numeric cube", ErrUnsupportedDType, kind)
		}
	}
	return values, nil
}

func reduceDim(b tensor.Backend, kind reduceKind, x *tensor.RawTensor, dim int) *tensor.RawTensor {
	switch kind {
	case reduceSum:
		return b.SumDim(x, dim, false)
	case reduceMean:
		return b.MeanDim(x, dim, false)
	case reduceMin:
		return b.MinDim(x, dim, false)
	case reduceMax:
		return b.MaxDim(x, dim, false)
	case reduceAll:
		return b.AllDim(x, dim, false)
	case reduceAny:
		return b.AnyDim(x, dim, false)
	default:
		panic(fmt.Sprintf("unknown reducer %d", kind))
	}
}

// Reduce applies a user function mapping a one-dimensional value vector
// to a scalar along the named axes (all axes when none are named). The
// cube's values are presented to the function as float64.
func (c *Cube) Reduce(fn func([]float64) float64, axes ...string) (*Cube, error) {
	if c.DType() == tensor.Bool {
		return nil, fmt.Errorf("%w: reduce requires a numeric cube", ErrUnsupportedDType)
	}
	dims, err := c.reduceDims(axes, false)
	if err != nil {
		return nil, err
	}
	if len(dims) == 0 {
		return nil, fmt.Errorf("%w: no axes to reduce", ErrAxisNotFound)
	}

	// Bring the kept dimensions to the front, the reduced ones to the
	// back, so every reduction lane is contiguous.
	reduced := make(map[int]bool, len(dims))
	for _, d := range dims {
		reduced[d] = true
	}
	order := make([]int, 0, c.Rank())
	for i := 0; i < c.Rank(); i++ {
		if !reduced[i] {
			order = append(order, i)
		}
	}
	order = append(order, dims...)

	values := c.values
	if values.DType() != tensor.Float64 {
		values = c.backend.Cast(values, tensor.Float64)
	}
	values = c.backend.Transpose(values, order...)

	outAxes := c.axes.removeDims(dims)
	outShape := outAxes.Shape()
	lane := values.NumElements() / outShape.NumElements()

	result, err := tensor.NewRaw(outShape, tensor.Float64)
	if err != nil {
		return nil, err
	}
	src := values.AsFloat64()
	dst := result.AsFloat64()
	for i := range dst {
		dst[i] = fn(src[i*lane : (i+1)*lane])
	}

	return c.derive(result, outAxes), nil
}
