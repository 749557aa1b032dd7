// SPDX-License-Identifier: MIT
package matrix

import (
	"github.com/katalvlaran/linprog/numeric"
)

// Matrix is a dense, row-major rectangular container of length rows*cols.
// (r,c) addresses data[r*cols+c]. zero is a witness value this package asks
// for a canonical T.Zero() whenever it needs to manufacture new elements
// (e.g. PushEmptyRow) without already holding one — Go generics give no way
// to conjure "the" zero of an arbitrary type parameter, and for numeric.Rat
// the language's own zero value (a zero denominator) isn't a valid scalar.
//
// Stage 1 (Validate): every public constructor and mutator validates shape
// before touching data.
// Stage 2 (Execute): the operation itself, always over the flat slice.
// Stage 3 (Finalize): return the result or a wrapped sentinel error.
type Matrix[T numeric.Value[T]] struct {
	r, c int
	data []T
	zero T
}

// NewMatrix creates a rows×cols matrix filled with zero.Zero(). Stage 1
// (Validate): rows and cols must both be positive. Stage 2 (Prepare):
// allocate and fill the flat backing slice. Complexity: O(rows*cols).
func NewMatrix[T numeric.Value[T]](rows, cols int, zero T) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("NewMatrix", ErrInvalidDimensions)
	}

	z := zero.Zero()
	data := make([]T, rows*cols)
	for i := range data {
		data[i] = z
	}

	return &Matrix[T]{r: rows, c: cols, data: data, zero: z}, nil
}

// WithCapacity returns an empty (zero-row) matrix of the given width with
// its backing slice pre-sized for capRows additional rows. Used by the
// canonicalization pipeline, which builds a matrix one constraint row at a
// time via PushRow.
func WithCapacity[T numeric.Value[T]](capRows, cols int, zero T) (*Matrix[T], error) {
	if cols <= 0 {
		return nil, matrixErrorf("WithCapacity", ErrInvalidDimensions)
	}

	return &Matrix[T]{r: 0, c: cols, data: make([]T, 0, capRows*cols), zero: zero.Zero()}, nil
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.c }

func (m *Matrix[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrIndexOutOfBounds
	}
	return row*m.c + col, nil
}

// At returns the element at (row, col).
func (m *Matrix[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, matrixErrorf("At", err)
	}
	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Matrix[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return matrixErrorf("Set", err)
	}
	m.data[idx] = v
	return nil
}

// MustAt panics instead of erroring on out-of-range access; reserved for
// the pivot engine's own internal loops where the index always comes from
// a bound already checked against Rows()/Cols() in the same call frame.
func (m *Matrix[T]) MustAt(row, col int) T {
	v, err := m.At(row, col)
	if err != nil {
		panic(err)
	}
	return v
}

// SwapElements exchanges the two addressed elements in place.
func (m *Matrix[T]) SwapElements(r1, c1, r2, c2 int) error {
	i1, err := m.indexOf(r1, c1)
	if err != nil {
		return matrixErrorf("SwapElements", err)
	}
	i2, err := m.indexOf(r2, c2)
	if err != nil {
		return matrixErrorf("SwapElements", err)
	}
	m.data[i1], m.data[i2] = m.data[i2], m.data[i1]
	return nil
}

// SwapRows exchanges rows r1 and r2 elementwise. A no-op when r1 == r2.
func (m *Matrix[T]) SwapRows(r1, r2 int) error {
	if r1 < 0 || r1 >= m.r || r2 < 0 || r2 >= m.r {
		return matrixErrorf("SwapRows", ErrIndexOutOfBounds)
	}
	if r1 == r2 {
		return nil
	}
	for c := 0; c < m.c; c++ {
		o1 := r1*m.c + c
		o2 := r2*m.c + c
		m.data[o1], m.data[o2] = m.data[o2], m.data[o1]
	}
	return nil
}

// SwapColumns exchanges columns c1 and c2 via strided swaps.
func (m *Matrix[T]) SwapColumns(c1, c2 int) error {
	if c1 < 0 || c1 >= m.c || c2 < 0 || c2 >= m.c {
		return matrixErrorf("SwapColumns", ErrIndexOutOfBounds)
	}
	if c1 == c2 {
		return nil
	}
	for r := 0; r < m.r; r++ {
		base := r * m.c
		m.data[base+c1], m.data[base+c2] = m.data[base+c2], m.data[base+c1]
	}
	return nil
}

// PushRow appends row to the bottom of the matrix. row's length must equal
// Cols(); otherwise ErrRowLengthMismatch.
func (m *Matrix[T]) PushRow(row []T) error {
	if len(row) != m.c {
		return matrixErrorf("PushRow", ErrRowLengthMismatch)
	}
	m.data = append(m.data, row...)
	m.r++
	return nil
}

// PushEmptyRow appends a row of Cols() zeros.
func (m *Matrix[T]) PushEmptyRow() {
	for c := 0; c < m.c; c++ {
		m.data = append(m.data, m.zero)
	}
	m.r++
}

// PushColumn appends a column to the right of the matrix. When col is
// non-nil its length must equal Rows(); when nil, the new column is filled
// with zeros. This rewrites the entire backing slice (O(rows*cols)) and is
// used only during canonicalization, never in a hot pivot loop (spec §5).
func (m *Matrix[T]) PushColumn(col []T) error {
	if col != nil && len(col) != m.r {
		return matrixErrorf("PushColumn", ErrRowLengthMismatch)
	}

	newData := make([]T, 0, (m.c+1)*m.r)
	for r := 0; r < m.r; r++ {
		start := r * m.c
		newData = append(newData, m.data[start:start+m.c]...)
		if col != nil {
			newData = append(newData, col[r])
		} else {
			newData = append(newData, m.zero)
		}
	}
	m.c++
	m.data = newData
	return nil
}
