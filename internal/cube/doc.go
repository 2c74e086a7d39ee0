// Package cube implements labeled n-dimensional arrays.
//
// A cube pairs a dense tensor with an ordered list of named, labeled
// axes. Binary operations match axes between operands by name, align
// the labels of paired axes by reordering or gather, and broadcast over
// axes unique to either operand. The matching and alignment rules are
// deterministic and never intersect label sets silently: incompatible
// axes fail instead of inner-joining.
//
// Axes come in two variants. An Index carries pairwise-distinct labels
// and answers position queries through a memoized hash map. A Series
// carries arbitrary labels and scans linearly. The variant decides how
// two same-named axes reconcile: Index/Index requires the same label
// multiset (the left order wins), Index/Series requires the series to
// be a subset of the index (the series wins and the index side
// gathers), and Series/Series requires identical label sequences.
//
// All values are immutable: every operation returns a new cube, and
// tensor buffers are shared between cubes only where that is
// indistinguishable from a copy.
package cube
