package cube

import (
	"fmt"
)

// Filter restricts the named axis to the given labels, preserving the
// axis's own label order. Every requested label must be present.
func (c *Cube) Filter(axisName string, labels ...any) (*Cube, error) {
	dim := c.axes.Find(axisName)
	if dim < 0 {
		return nil, fmt.Errorf("%w: %q", ErrAxisNotFound, axisName)
	}

	newAxis, positions, err := c.axes.At(dim).Filter(labels...)
	if err != nil {
		return nil, err
	}
	if len(positions) == 0 {
		return nil, fmt.Errorf("%w: empty selection along axis %q", ErrShapeMismatch, axisName)
	}

	axes, err := c.axes.Replace(axisName, newAxis)
	if err != nil {
		return nil, err
	}
	return c.derive(c.backend.Take(c.values, dim, positions), axes), nil
}

// Take restricts the named axis to the given positions, in the given
// order. Positions may repeat; an Index axis whose selection repeats a
// label is demoted to a Series.
func (c *Cube) Take(axisName string, positions ...int) (*Cube, error) {
	dim := c.axes.Find(axisName)
	if dim < 0 {
		return nil, fmt.Errorf("%w: %q", ErrAxisNotFound, axisName)
	}
	if len(positions) == 0 {
		return nil, fmt.Errorf("%w: empty selection along axis %q", ErrShapeMismatch, axisName)
	}

	newAxis, err := c.axes.At(dim).takeDemoting(positions)
	if err != nil {
		return nil, err
	}

	axes, err := c.axes.Replace(axisName, newAxis)
	if err != nil {
		return nil, err
	}
	return c.derive(c.backend.Take(c.values, dim, positions), axes), nil
}

// Compress restricts the named axis to the positions where mask is
// true. The mask length must equal the axis length.
func (c *Cube) Compress(axisName string, mask []bool) (*Cube, error) {
	dim := c.axes.Find(axisName)
	if dim < 0 {
		return nil, fmt.Errorf("%w: %q", ErrAxisNotFound, axisName)
	}
	ax := c.axes.At(dim)
	if len(mask) != ax.Len() {
		return nil, fmt.Errorf("%w: mask length %d != axis %q length %d", ErrShapeMismatch, len(mask), axisName, ax.Len())
	}
	return c.Take(axisName, maskPositions(mask)...)
}

// AlignTo reorders the cube's values along the same-named axis so they
// follow the given axis's label order, and installs that axis in place
// of the old one. The existing axis must carry every label of the new
// axis; on a Series axis each label maps to its first occurrence.
func (c *Cube) AlignTo(ax *Axis) (*Cube, error) {
	dim := c.axes.Find(ax.Name())
	if dim < 0 {
		return nil, fmt.Errorf("%w: %q", ErrAxisNotFound, ax.Name())
	}
	if ax.Len() == 0 {
		return nil, fmt.Errorf("%w: empty selection along axis %q", ErrShapeMismatch, ax.Name())
	}

	positions, err := c.axes.At(dim).positionsOf(ax.Labels())
	if err != nil {
		return nil, err
	}

	axes, err := c.axes.Replace(ax.Name(), ax)
	if err != nil {
		return nil, err
	}
	return c.derive(c.backend.Take(c.values, dim, positions), axes), nil
}
