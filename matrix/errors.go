// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set. All algorithms in this package MUST
// return these sentinels (never panic) on caller-triggered error
// conditions, and tests check them via errors.Is. Panics remain reserved
// for invariant violations that only this package's own code could cause.
package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when requested rows or cols are <= 0.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds is returned by At/Set and row/column swaps when a
	// row or column index falls outside the matrix's bounds.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch is returned by elementwise binary operations
	// whose operands don't share a shape, and by Dot when inner dimensions
	// disagree.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRowLengthMismatch is returned by PushRow/PushColumn when the
	// supplied slice length doesn't match the matrix's current width/height.
	ErrRowLengthMismatch = errors.New("matrix: pushed row/column length mismatch")

	// ErrNilMatrix names the nil-*Matrix condition. No function in this
	// package returns it: methods called on or with a nil *Matrix panic.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// matrixErrorf wraps an underlying sentinel with the offending method name.
func matrixErrorf(method string, err error) error {
	return fmt.Errorf("matrix.%s: %w", method, err)
}
