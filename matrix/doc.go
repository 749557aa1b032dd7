// Package matrix provides the dense, row-major container the rest of the
// engine pivots over, plus the elementwise algebra built on top of it:
// Matrix[T], Row[T] (an owning copy of one row), RowMut[T] (a mutable,
// aliasing view over one row's backing span), and the elementwise + − × ÷
// family on both matrices and rows.
//
// Matrix is generic over any numeric.Value[T]: the reference instantiation
// is numeric.Rat, kept reduced, so pivot arithmetic is exact and
// reproducible; numeric.Float64 is also a valid instantiation for callers
// willing to accept floating-point risk.
//
// All shape errors (dimension mismatch, out-of-range index, non-positive
// size) are fail-fast: constructors and mutators return a wrapped sentinel
// from this package's errors.go, never panic, so callers at a model
// boundary (see the model package) can report them cleanly. Internal
// invariant violations — indexing already validated by a caller — panic,
// per this module's "shape errors are programming errors" rule.
package matrix
