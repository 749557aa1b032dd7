// SPDX-License-Identifier: MIT
// Package tableau: sentinel error set. Shape errors are fail-fast returns,
// never panics; an internal pivot on an already-validated index panics,
// since that can only mean this package's own invariant was violated.
package tableau

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch is returned by NewTableau when slack, rhs,
	// z_coeffs, or z_slack don't agree with the coefficients matrix shape.
	ErrDimensionMismatch = errors.New("tableau: dimension mismatch")

	// ErrNotSquareSlack is returned when the slack matrix isn't m×m.
	ErrNotSquareSlack = errors.New("tableau: slack matrix must be square")

	// ErrColumnOutOfBounds is returned by At/Set for a logical column index
	// past the rhs column.
	ErrColumnOutOfBounds = errors.New("tableau: logical column out of bounds")

	// ErrRowOutOfBounds is returned by At/Set/Row/RowMut for a row index
	// outside [0, rows).
	ErrRowOutOfBounds = errors.New("tableau: row out of bounds")

	// ErrSingularPivot is returned by Pivot when the chosen pivot element is
	// zero; FindPivotIndices/FindPivotIndicesBland never select such a
	// column/row pair, so this only fires on a caller-supplied pivot.
	ErrSingularPivot = errors.New("tableau: pivot element is zero")
)

func tableauErrorf(method string, err error) error {
	return fmt.Errorf("tableau.%s: %w", method, err)
}
