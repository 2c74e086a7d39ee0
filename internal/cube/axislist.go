package cube

import (
	"fmt"

	"github.com/cube-ml/cube/internal/tensor"
)

// AxisList is an ordered collection of axes with pairwise-distinct
// names. The zero value is an empty list. Lists are immutable: every
// editing method returns a new list.
type AxisList struct {
	axes []*Axis
}

// NewAxisList builds a list from the given axes, rejecting duplicate
// names.
func NewAxisList(axes ...*Axis) (AxisList, error) {
	seen := make(map[string]struct{}, len(axes))
	for _, ax := range axes {
		if _, dup := seen[ax.name]; dup {
			return AxisList{}, fmt.Errorf("%w: %q", ErrDuplicateAxis, ax.name)
		}
		seen[ax.name] = struct{}{}
	}
	return AxisList{axes: append([]*Axis(nil), axes...)}, nil
}

// Len returns the number of axes.
func (l AxisList) Len() int {
	return len(l.axes)
}

// At returns the axis at position i.
func (l AxisList) At(i int) *Axis {
	return l.axes[i]
}

// Find returns the position of the axis with the given name, or -1.
func (l AxisList) Find(name string) int {
	for i, ax := range l.axes {
		if ax.name == name {
			return i
		}
	}
	return -1
}

// ByName returns the axis with the given name.
func (l AxisList) ByName(name string) (*Axis, error) {
	if i := l.Find(name); i >= 0 {
		return l.axes[i], nil
	}
	return nil, fmt.Errorf("%w: %q", ErrAxisNotFound, name)
}

// Contains reports whether the list carries an axis with the given name.
func (l AxisList) Contains(name string) bool {
	return l.Find(name) >= 0
}

// Names returns the axis names in order.
func (l AxisList) Names() []string {
	names := make([]string, len(l.axes))
	for i, ax := range l.axes {
		names[i] = ax.name
	}
	return names
}

// Axes returns a copy of the underlying axis slice.
func (l AxisList) Axes() []*Axis {
	return append([]*Axis(nil), l.axes...)
}

// Shape returns the tensor shape the list describes.
func (l AxisList) Shape() tensor.Shape {
	shape := make(tensor.Shape, len(l.axes))
	for i, ax := range l.axes {
		shape[i] = ax.Len()
	}
	return shape
}

// Insert returns a new list with the axis appended at the end.
func (l AxisList) Insert(ax *Axis) (AxisList, error) {
	return l.InsertAt(ax, len(l.axes))
}

// InsertAt returns a new list with the axis inserted at position i.
func (l AxisList) InsertAt(ax *Axis, i int) (AxisList, error) {
	if l.Contains(ax.name) {
		return AxisList{}, fmt.Errorf("%w: %q", ErrDuplicateAxis, ax.name)
	}
	if i < 0 || i > len(l.axes) {
		return AxisList{}, fmt.Errorf("%w: insert position %d for %d axes", ErrIndexOutOfRange, i, len(l.axes))
	}
	axes := make([]*Axis, 0, len(l.axes)+1)
	axes = append(axes, l.axes[:i]...)
	axes = append(axes, ax)
	axes = append(axes, l.axes[i:]...)
	return AxisList{axes: axes}, nil
}

// Remove returns a new list without the named axis.
func (l AxisList) Remove(name string) (AxisList, error) {
	i := l.Find(name)
	if i < 0 {
		return AxisList{}, fmt.Errorf("%w: %q", ErrAxisNotFound, name)
	}
	axes := make([]*Axis, 0, len(l.axes)-1)
	axes = append(axes, l.axes[:i]...)
	axes = append(axes, l.axes[i+1:]...)
	return AxisList{axes: axes}, nil
}

// removeDims returns a new list without the axes at the given positions.
// Positions must be valid and ascending.
func (l AxisList) removeDims(dims []int) AxisList {
	axes := make([]*Axis, 0, len(l.axes)-len(dims))
	next := 0
	for i, ax := range l.axes {
		if next < len(dims) && dims[next] == i {
			next++
			continue
		}
		axes = append(axes, ax)
	}
	return AxisList{axes: axes}
}

// Replace returns a new list with the named axis replaced. The new axis
// may carry a different name as long as it stays unique in the list.
func (l AxisList) Replace(name string, ax *Axis) (AxisList, error) {
	i := l.Find(name)
	if i < 0 {
		return AxisList{}, fmt.Errorf("%w: %q", ErrAxisNotFound, name)
	}
	if ax.name != name && l.Contains(ax.name) {
		return AxisList{}, fmt.Errorf("%w: %q", ErrDuplicateAxis, ax.name)
	}
	axes := append([]*Axis(nil), l.axes...)
	axes[i] = ax
	return AxisList{axes: axes}, nil
}

// Transpose returns a new list permuted by the given position order.
// The order must be a complete, duplicate-free permutation.
func (l AxisList) Transpose(order []int) (AxisList, error) {
	if len(order) != len(l.axes) {
		return AxisList{}, fmt.Errorf("%w: got %d positions for %d axes", ErrInvalidPermutation, len(order), len(l.axes))
	}
	seen := make([]bool, len(l.axes))
	axes := make([]*Axis, len(l.axes))
	for i, p := range order {
		if p < 0 || p >= len(l.axes) {
			return AxisList{}, fmt.Errorf("%w: position %d for %d axes", ErrInvalidPermutation, p, len(l.axes))
		}
		if seen[p] {
			return AxisList{}, fmt.Errorf("%w: position %d repeated", ErrInvalidPermutation, p)
		}
		seen[p] = true
		axes[i] = l.axes[p]
	}
	return AxisList{axes: axes}, nil
}

// Equal reports whether two lists hold pairwise-equal axes in the same
// order.
func (l AxisList) Equal(other AxisList) bool {
	if len(l.axes) != len(other.axes) {
		return false
	}
	for i := range l.axes {
		if !l.axes[i].Equal(other.axes[i]) {
			return false
		}
	}
	return true
}

func (l AxisList) String() string {
	return fmt.Sprintf("AxisList%v", l.Names())
}
