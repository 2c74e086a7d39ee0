package cube

import "errors"

// Failure modes are enumerated as sentinel errors. Operations wrap them
// with context via fmt.Errorf and %w; callers match with errors.Is.
var (
	// ErrDuplicateAxis reports two axes with the same name in one axis list.
	ErrDuplicateAxis = errors.New("cube: duplicate axis name")

	// ErrUniquenessViolation reports an Index axis acquiring a duplicate label.
	ErrUniquenessViolation = errors.New("cube: index labels must be unique")

	// ErrLabelNotFound reports a lookup for a label absent from the axis.
	ErrLabelNotFound = errors.New("cube: label not found")

	// ErrAxisNotFound reports an operation naming an axis the cube lacks.
	ErrAxisNotFound = errors.New("cube: axis not found")

	// ErrIncompatibleAxes reports paired axes whose labels cannot be aligned.
	ErrIncompatibleAxes = errors.New("cube: incompatible axes")

	// ErrShapeMismatch reports operand shapes that cannot be reconciled.
	ErrShapeMismatch = errors.New("cube: shape mismatch")

	// ErrIndexOutOfRange reports a positional selector exceeding axis length.
	ErrIndexOutOfRange = errors.New("cube: index out of range")

	// ErrInvalidPermutation reports a transpose order that is not a
	// complete, duplicate-free permutation of the cube's axes.
	ErrInvalidPermutation = errors.New("cube: invalid permutation")

	// ErrNonGroupableReducer reports a grouping request with a reducer
	// whose result may depend on element order.
	ErrNonGroupableReducer = errors.New("cube: reducer cannot be used for grouping")

	// ErrUnsupportedDType reports an operation applied to a value type it
	// is not defined for, e.g. arithmetic on booleans.
	ErrUnsupportedDType = errors.New("cube: unsupported data type for operation")
)
