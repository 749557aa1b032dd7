// SPDX-License-Identifier: MIT
package matrix

import (
	"github.com/katalvlaran/linprog/numeric"
)

// Row is an owning copy of one matrix row. Mutating a Row never affects the
// matrix it was taken from.
type Row[T numeric.Value[T]] struct {
	data []T
}

// RowMut is a mutable, aliasing view over one row's backing span inside a
// Matrix's flat slice. Every mutating method writes straight through to the
// matrix — this is the view the pivot engine operates on, deliberately
// avoiding a copy per row per pivot.
type RowMut[T numeric.Value[T]] struct {
	data []T
}

// Row returns an owning copy of row r.
func (m *Matrix[T]) Row(r int) (Row[T], error) {
	if r < 0 || r >= m.r {
		return Row[T]{}, matrixErrorf("Row", ErrIndexOutOfBounds)
	}
	start := r * m.c
	cp := make([]T, m.c)
	copy(cp, m.data[start:start+m.c])
	return Row[T]{data: cp}, nil
}

// RowMut returns a mutable view aliasing row r's backing span.
func (m *Matrix[T]) RowMut(r int) (RowMut[T], error) {
	if r < 0 || r >= m.r {
		return RowMut[T]{}, matrixErrorf("RowMut", ErrIndexOutOfBounds)
	}
	start := r * m.c
	return RowMut[T]{data: m.data[start : start+m.c : start+m.c]}, nil
}

// RowFromSlice wraps an existing slice as a Row without copying; the Row
// aliases data.
// Used by the tableau package to present its z-row slices (which aren't
// backed by any Matrix) through the same Row API as a constraint row.
func RowFromSlice[T numeric.Value[T]](data []T) Row[T] {
	return Row[T]{data: data}
}

// RowMutFromSlice wraps an existing slice as a mutable RowMut view without
// copying. Used by the tableau package for its z-row, which lives in a
// plain slice rather than inside a Matrix.
func RowMutFromSlice[T numeric.Value[T]](data []T) RowMut[T] {
	return RowMut[T]{data: data}
}

// Len returns the row's element count.
func (r Row[T]) Len() int { return len(r.data) }

// Len returns the row's element count.
func (r RowMut[T]) Len() int { return len(r.data) }

// At returns the element at position i.
func (r Row[T]) At(i int) T { return r.data[i] }

// At returns the element at position i.
func (r RowMut[T]) At(i int) T { return r.data[i] }

// Set writes v at position i, visible through to the backing matrix.
func (r RowMut[T]) Set(i int, v T) { r.data[i] = v }

// Slice exposes the row's backing elements. Callers must not retain a
// reference past the pivot step that produced the view.
func (r Row[T]) Slice() []T { return r.data }

// Slice exposes the row's backing elements. Callers must not retain a
// reference past the pivot step that produced the view.
func (r RowMut[T]) Slice() []T { return r.data }

func rowLenMismatch(a, b int) error {
	if a != b {
		return ErrDimensionMismatch
	}
	return nil
}

// Add returns the elementwise sum of r and other as a new owning Row.
func (r Row[T]) Add(other Row[T]) (Row[T], error) {
	if err := rowLenMismatch(len(r.data), len(other.data)); err != nil {
		return Row[T]{}, matrixErrorf("Row.Add", err)
	}
	out := make([]T, len(r.data))
	for i := range r.data {
		out[i] = r.data[i].Add(other.data[i])
	}
	return Row[T]{data: out}, nil
}

// Sub returns the elementwise difference r - other as a new owning Row.
func (r Row[T]) Sub(other Row[T]) (Row[T], error) {
	if err := rowLenMismatch(len(r.data), len(other.data)); err != nil {
		return Row[T]{}, matrixErrorf("Row.Sub", err)
	}
	out := make([]T, len(r.data))
	for i := range r.data {
		out[i] = r.data[i].Sub(other.data[i])
	}
	return Row[T]{data: out}, nil
}

// ScaleBy returns a new Row with every element multiplied by k.
func (r Row[T]) ScaleBy(k T) Row[T] {
	out := make([]T, len(r.data))
	for i := range r.data {
		out[i] = r.data[i].Mul(k)
	}
	return Row[T]{data: out}
}

// AddAssign adds other into r in place.
func (r RowMut[T]) AddAssign(other RowMut[T]) error {
	if err := rowLenMismatch(len(r.data), len(other.data)); err != nil {
		return matrixErrorf("RowMut.AddAssign", err)
	}
	for i := range r.data {
		r.data[i] = r.data[i].Add(other.data[i])
	}
	return nil
}

// SubAssign subtracts other from r in place.
func (r RowMut[T]) SubAssign(other RowMut[T]) error {
	if err := rowLenMismatch(len(r.data), len(other.data)); err != nil {
		return matrixErrorf("RowMut.SubAssign", err)
	}
	for i := range r.data {
		r.data[i] = r.data[i].Sub(other.data[i])
	}
	return nil
}

// ScaleAssign multiplies every element of r by k in place.
func (r RowMut[T]) ScaleAssign(k T) {
	for i := range r.data {
		r.data[i] = r.data[i].Mul(k)
	}
}

// SubAssignScaled performs r[i] -= other[i]*k in a single fused pass. This
// is the pivot-critical primitive: every Gauss-Jordan elimination step
// (clearing a pivot column in every other row, and in the z-row) boils down
// to one call per row. It must never be assembled from ScaleBy+SubAssign —
// that would allocate a temporary row on every single row of every single
// pivot, where this method allocates nothing.
func (r RowMut[T]) SubAssignScaled(other RowMut[T], k T) error {
	if err := rowLenMismatch(len(r.data), len(other.data)); err != nil {
		return matrixErrorf("RowMut.SubAssignScaled", err)
	}
	for i := range r.data {
		r.data[i] = r.data[i].Sub(other.data[i].Mul(k))
	}
	return nil
}
