package cube

import (
	"fmt"
)

// Transpose permutes the cube's axes by name. The order must name every
// axis exactly once.
func (c *Cube) Transpose(names ...string) (*Cube, error) {
	if len(names) != c.Rank() {
		return nil, fmt.Errorf("%w: got %d names for %d axes", ErrInvalidPermutation, len(names), c.Rank())
	}
	order := make([]int, len(names))
	for i, name := range names {
		p := c.axes.Find(name)
		if p < 0 {
			return nil, fmt.Errorf("%w: unknown axis %q", ErrInvalidPermutation, name)
		}
		order[i] = p
	}
	return c.TransposeDims(order...)
}

// TransposeDims permutes the cube's axes by position. The order must be
// a complete, duplicate-free permutation.
func (c *Cube) TransposeDims(order ...int) (*Cube, error) {
	axes, err := c.axes.Transpose(order)
	if err != nil {
		return nil, err
	}
	return c.derive(c.backend.Transpose(c.values, order...), axes), nil
}

// SwapAxes exchanges two named axes.
func (c *Cube) SwapAxes(name1, name2 string) (*Cube, error) {
	i := c.axes.Find(name1)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrAxisNotFound, name1)
	}
	j := c.axes.Find(name2)
	if j < 0 {
		return nil, fmt.Errorf("%w: %q", ErrAxisNotFound, name2)
	}
	order := make([]int, c.Rank())
	for k := range order {
		order[k] = k
	}
	order[i], order[j] = j, i
	return c.TransposeDims(order...)
}

// RenameAxis returns a cube with the named axis renamed. Values are
// shared with the receiver.
func (c *Cube) RenameAxis(oldName, newName string) (*Cube, error) {
	ax, err := c.axes.ByName(oldName)
	if err != nil {
		return nil, err
	}
	renamed, err := ax.Rename(newName)
	if err != nil {
		return nil, err
	}
	return c.ReplaceAxis(oldName, renamed)
}

// ReplaceAxis returns a cube with the named axis replaced by the given
// one. The new axis must have the same length.
func (c *Cube) ReplaceAxis(oldName string, ax *Axis) (*Cube, error) {
	old, err := c.axes.ByName(oldName)
	if err != nil {
		return nil, err
	}
	if ax.Len() != old.Len() {
		return nil, fmt.Errorf("%w: replacement axis %q has %d labels, expected %d",
			ErrShapeMismatch, ax.Name(), ax.Len(), old.Len())
	}
	axes, err := c.axes.Replace(oldName, ax)
	if err != nil {
		return nil, err
	}
	return c.derive(c.values.Clone(), axes), nil
}

// InsertAxis adds a new axis at the given position and repeats the
// values along it to fill the larger cube.
func (c *Cube) InsertAxis(ax *Axis, pos int) (*Cube, error) {
	if ax.Len() == 0 {
		return nil, fmt.Errorf("%w: inserted axis %q must not be empty", ErrShapeMismatch, ax.Name())
	}
	axes, err := c.axes.InsertAt(ax, pos)
	if err != nil {
		return nil, err
	}
	values := c.backend.Unsqueeze(c.values, pos)
	if ax.Len() > 1 {
		repeats := make([]int, ax.Len())
		values = c.backend.Take(values, pos, repeats)
	}
	return c.derive(values, axes), nil
}
