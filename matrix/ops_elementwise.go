// SPDX-License-Identifier: MIT
package matrix

func (m *Matrix[T]) sameShape(other *Matrix[T]) bool {
	return m.r == other.r && m.c == other.c
}

// Add returns the elementwise sum of m and other as a new Matrix.
func (m *Matrix[T]) Add(other *Matrix[T]) (*Matrix[T], error) {
	if !m.sameShape(other) {
		return nil, matrixErrorf("Add", ErrDimensionMismatch)
	}
	out := &Matrix[T]{r: m.r, c: m.c, data: make([]T, len(m.data)), zero: m.zero}
	for i := range m.data {
		out.data[i] = m.data[i].Add(other.data[i])
	}
	return out, nil
}

// Sub returns the elementwise difference m - other as a new Matrix.
func (m *Matrix[T]) Sub(other *Matrix[T]) (*Matrix[T], error) {
	if !m.sameShape(other) {
		return nil, matrixErrorf("Sub", ErrDimensionMismatch)
	}
	out := &Matrix[T]{r: m.r, c: m.c, data: make([]T, len(m.data)), zero: m.zero}
	for i := range m.data {
		out.data[i] = m.data[i].Sub(other.data[i])
	}
	return out, nil
}

// MulElem returns the elementwise (Hadamard) product of m and other.
func (m *Matrix[T]) MulElem(other *Matrix[T]) (*Matrix[T], error) {
	if !m.sameShape(other) {
		return nil, matrixErrorf("MulElem", ErrDimensionMismatch)
	}
	out := &Matrix[T]{r: m.r, c: m.c, data: make([]T, len(m.data)), zero: m.zero}
	for i := range m.data {
		out.data[i] = m.data[i].Mul(other.data[i])
	}
	return out, nil
}

// DivElem returns the elementwise quotient of m and other.
func (m *Matrix[T]) DivElem(other *Matrix[T]) (*Matrix[T], error) {
	if !m.sameShape(other) {
		return nil, matrixErrorf("DivElem", ErrDimensionMismatch)
	}
	out := &Matrix[T]{r: m.r, c: m.c, data: make([]T, len(m.data)), zero: m.zero}
	for i := range m.data {
		out.data[i] = m.data[i].Div(other.data[i])
	}
	return out, nil
}

// Scale returns a new Matrix with every element multiplied by k.
func (m *Matrix[T]) Scale(k T) *Matrix[T] {
	out := &Matrix[T]{r: m.r, c: m.c, data: make([]T, len(m.data)), zero: m.zero}
	for i := range m.data {
		out.data[i] = m.data[i].Mul(k)
	}
	return out
}

// Dot computes the matrix product m×other. m's column count must equal
// other's row count. Complexity: O(m.r * m.c * other.c); this is a
// canonicalization-time convenience (e.g. projecting a constraint set),
// never called from the pivot loop.
func (m *Matrix[T]) Dot(other *Matrix[T]) (*Matrix[T], error) {
	if m.c != other.r {
		return nil, matrixErrorf("Dot", ErrDimensionMismatch)
	}

	out := &Matrix[T]{r: m.r, c: other.c, data: make([]T, m.r*other.c), zero: m.zero}
	for i := range out.data {
		out.data[i] = m.zero
	}

	for i := 0; i < m.r; i++ {
		for k := 0; k < m.c; k++ {
			aik := m.data[i*m.c+k]
			if aik.IsZero() {
				continue
			}
			for j := 0; j < other.c; j++ {
				out.data[i*out.c+j] = out.data[i*out.c+j].Add(aik.Mul(other.data[k*other.c+j]))
			}
		}
	}
	return out, nil
}

// Clone returns a deep copy of m.
func (m *Matrix[T]) Clone() *Matrix[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)
	return &Matrix[T]{r: m.r, c: m.c, data: cp, zero: m.zero}
}

// Equal reports whether m and other have the same shape and elements equal
// per T.Equal.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if !m.sameShape(other) {
		return false
	}
	for i := range m.data {
		if !m.data[i].Equal(other.data[i]) {
			return false
		}
	}
	return true
}
