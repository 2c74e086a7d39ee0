package cube

import (
	"fmt"
	"sync"
)

// Kind discriminates the two axis variants.
type Kind uint8

// Axis variants.
const (
	// KindIndex marks an axis with pairwise-distinct labels and hash lookup.
	KindIndex Kind = iota
	// KindSeries marks an axis with arbitrary labels and linear-scan lookup.
	KindSeries
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindIndex:
		return "Index"
	case KindSeries:
		return "Series"
	default:
		return "Unknown"
	}
}

// Axis is a named, labeled dimension of a cube. An axis is immutable
// after construction and may be shared across cubes.
//
// The Index variant guarantees unique labels and answers position
// queries through a hash map built lazily on the first lookup. The
// Series variant allows repeated labels and scans linearly.
type Axis struct {
	name   string
	kind   Kind
	labels Labels

	lookupOnce sync.Once
	lookup     map[any]int
}

// NewIndex creates an Index axis. The name must be non-empty and the
// labels pairwise distinct.
func NewIndex[L Label](name string, labels []L) (*Axis, error) {
	return newIndexAxis(name, newLabels(labels))
}

// NewSeries creates a Series axis. The name must be non-empty.
func NewSeries[L Label](name string, labels []L) (*Axis, error) {
	return newSeriesAxis(name, newLabels(labels))
}

func newIndexAxis(name string, labels Labels) (*Axis, error) {
	if name == "" {
		return nil, fmt.Errorf("cube: axis name must not be empty")
	}
	seen := make(map[any]struct{}, labels.Len())
	for _, v := range labels.values {
		if _, dup := seen[v]; dup {
			return nil, fmt.Errorf("%w: axis %q has duplicate label %v", ErrUniquenessViolation, name, v)
		}
		seen[v] = struct{}{}
	}
	return &Axis{name: name, kind: KindIndex, labels: labels}, nil
}

func newSeriesAxis(name string, labels Labels) (*Axis, error) {
	if name == "" {
		return nil, fmt.Errorf("cube: axis name must not be empty")
	}
	return &Axis{name: name, kind: KindSeries, labels: labels}, nil
}

// Name returns the axis name.
func (a *Axis) Name() string {
	return a.name
}

// Kind returns the axis variant.
func (a *Axis) Kind() Kind {
	return a.kind
}

// Len returns the number of labels.
func (a *Axis) Len() int {
	return a.labels.Len()
}

// Labels returns the axis's label vector.
func (a *Axis) Labels() Labels {
	return a.labels
}

// String returns a human-readable representation of the axis.
func (a *Axis) String() string {
	return fmt.Sprintf("%s(%q, %v)", a.kind, a.name, a.labels.values)
}

// Equal reports whether two axes have the same name, kind and labels.
func (a *Axis) Equal(other *Axis) bool {
	if a == other {
		return true
	}
	return a.name == other.name && a.kind == other.kind && a.labels.Equal(other.labels)
}

// lookupMap returns the memoized label-to-position map of an Index axis.
func (a *Axis) lookupMap() map[any]int {
	a.lookupOnce.Do(func() {
		m := make(map[any]int, a.labels.Len())
		for i, v := range a.labels.values {
			m[v] = i
		}
		a.lookup = m
	})
	return a.lookup
}

// IndexOf returns the position of the given label. Index axes answer
// through the hash map; Series axes scan for the first occurrence.
func (a *Axis) IndexOf(label any) (int, error) {
	label = normalizeLabel(label)
	if a.kind == KindIndex {
		if pos, ok := a.lookupMap()[label]; ok {
			return pos, nil
		}
		return 0, fmt.Errorf("%w: %v in axis %q", ErrLabelNotFound, label, a.name)
	}
	for i, v := range a.labels.values {
		if v == label {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %v in axis %q", ErrLabelNotFound, label, a.name)
}

// Positions returns one position per query label, failing on the first
// label the axis does not carry.
func (a *Axis) Positions(labels ...any) ([]int, error) {
	out := make([]int, len(labels))
	for i, label := range labels {
		pos, err := a.IndexOf(label)
		if err != nil {
			return nil, err
		}
		out[i] = pos
	}
	return out, nil
}

// positionsOf is Positions over a Labels vector, used by the aligner.
func (a *Axis) positionsOf(labels Labels) ([]int, error) {
	return a.Positions(labels.values...)
}

// Contains reports whether the axis carries the given label.
func (a *Axis) Contains(label any) bool {
	label = normalizeLabel(label)
	if a.kind == KindIndex {
		_, ok := a.lookupMap()[label]
		return ok
	}
	return a.labels.Contains(label)
}

// Filter returns a new axis restricted to the positions whose label is
// in the query set, preserving this axis's own order, together with the
// positional selector to apply to tensors. Every query label must be
// present.
func (a *Axis) Filter(labels ...any) (*Axis, []int, error) {
	want := make(map[any]struct{}, len(labels))
	for _, label := range labels {
		label = normalizeLabel(label)
		if !a.Contains(label) {
			return nil, nil, fmt.Errorf("%w: %v in axis %q", ErrLabelNotFound, label, a.name)
		}
		want[label] = struct{}{}
	}

	positions := make([]int, 0, len(labels))
	for i, v := range a.labels.values {
		if _, ok := want[v]; ok {
			positions = append(positions, i)
		}
	}
	return a.take(positions), positions, nil
}

// Take returns a new axis selecting the given positions in the given
// order. The kind is preserved; introducing a duplicate label into an
// Index fails.
func (a *Axis) Take(positions ...int) (*Axis, error) {
	if err := a.checkPositions(positions); err != nil {
		return nil, err
	}
	if a.kind == KindIndex {
		return newIndexAxis(a.name, a.labels.take(positions))
	}
	return a.take(positions), nil
}

// Compress returns a new axis keeping the positions where mask is true.
// The mask length must equal the axis length.
func (a *Axis) Compress(mask []bool) (*Axis, error) {
	if len(mask) != a.Len() {
		return nil, fmt.Errorf("%w: mask length %d != axis %q length %d", ErrShapeMismatch, len(mask), a.name, a.Len())
	}
	return a.Take(maskPositions(mask)...)
}

// Rename returns a new axis with the same kind and labels and a new name.
func (a *Axis) Rename(name string) (*Axis, error) {
	if a.kind == KindIndex {
		return newIndexAxis(name, a.labels)
	}
	return newSeriesAxis(name, a.labels)
}

// take builds a same-kind axis from valid positions without re-checking
// uniqueness. Callers must guarantee the selection cannot introduce
// duplicates into an Index.
func (a *Axis) take(positions []int) *Axis {
	return &Axis{name: a.name, kind: a.kind, labels: a.labels.take(positions)}
}

// takeDemoting selects positions and demotes an Index to a Series when
// the selection repeats a label.
func (a *Axis) takeDemoting(positions []int) (*Axis, error) {
	if err := a.checkPositions(positions); err != nil {
		return nil, err
	}
	if a.kind == KindIndex {
		if ax, err := newIndexAxis(a.name, a.labels.take(positions)); err == nil {
			return ax, nil
		}
		return newSeriesAxis(a.name, a.labels.take(positions))
	}
	return a.take(positions), nil
}

func (a *Axis) checkPositions(positions []int) error {
	for _, p := range positions {
		if p < 0 || p >= a.Len() {
			return fmt.Errorf("%w: position %d in axis %q of length %d", ErrIndexOutOfRange, p, a.name, a.Len())
		}
	}
	return nil
}

func maskPositions(mask []bool) []int {
	positions := make([]int, 0, len(mask))
	for i, keep := range mask {
		if keep {
			positions = append(positions, i)
		}
	}
	return positions
}
