// SPDX-License-Identifier: MIT
package tableau

import (
	"github.com/katalvlaran/linprog/matrix"
	"github.com/katalvlaran/linprog/numeric"
)

// Tableau is the augmented simplex system: an m×n structural coefficient
// block, an m×m slack block, a length-m right-hand side, the current
// basis/nonbasis index sets, and a parallel z-row (objective) carrying the
// same coefficients/slack/rhs partition.
//
// basis[i] names the logical column (0..n+m) whose defining row is row i;
// nonbasis lists every other logical column. NewTableau seeds the canonical
// starting basis basis = [n, n+1, ..., n+m-1] (the slack columns) and
// nonbasis = [0, ..., n-1] (the structural columns) — callers that need a
// different starting basis must mutate Basis()/Nonbasis() after construction.
type Tableau[T numeric.Value[T]] struct {
	coefficients *matrix.Matrix[T]
	slack        *matrix.Matrix[T]
	rhs          []T

	basis    []int
	nonbasis []int

	zCoeffs []T
	zSlack  []T
	zRHS    T
}

// NewTableau validates shapes and builds a Tableau with the canonical
// starting basis. coefficients is m×n, slack must be m×m, rhs length m,
// zCoeffs length n, zSlack length m.
func NewTableau[T numeric.Value[T]](coefficients, slack *matrix.Matrix[T], rhs, zCoeffs, zSlack []T, zRHS T) (*Tableau[T], error) {
	m := coefficients.Rows()
	n := coefficients.Cols()

	if slack.Rows() != m {
		return nil, tableauErrorf("NewTableau", ErrDimensionMismatch)
	}
	if slack.Cols() != m {
		return nil, tableauErrorf("NewTableau", ErrNotSquareSlack)
	}
	if len(rhs) != m {
		return nil, tableauErrorf("NewTableau", ErrDimensionMismatch)
	}
	if len(zCoeffs) != n {
		return nil, tableauErrorf("NewTableau", ErrDimensionMismatch)
	}
	if len(zSlack) != m {
		return nil, tableauErrorf("NewTableau", ErrDimensionMismatch)
	}

	basis := make([]int, m)
	for i := 0; i < m; i++ {
		basis[i] = n + i
	}
	nonbasis := make([]int, n)
	for j := 0; j < n; j++ {
		nonbasis[j] = j
	}

	return &Tableau[T]{
		coefficients: coefficients,
		slack:        slack,
		rhs:          rhs,
		basis:        basis,
		nonbasis:     nonbasis,
		zCoeffs:      zCoeffs,
		zSlack:       zSlack,
		zRHS:         zRHS,
	}, nil
}

// Rows returns the number of constraint rows (m).
func (t *Tableau[T]) Rows() int { return t.coefficients.Rows() }

// NVars returns the number of structural variables (n).
func (t *Tableau[T]) NVars() int { return t.coefficients.Cols() }

// NSlack returns the number of slack/surplus/artificial columns (m).
func (t *Tableau[T]) NSlack() int { return t.slack.Cols() }

// Cols returns the total logical column count: structural + slack + 1 rhs.
func (t *Tableau[T]) Cols() int { return t.NVars() + t.NSlack() + 1 }

// Basis returns the basic-variable index for each row; Basis()[i] is the
// logical column whose defining row is row i.
func (t *Tableau[T]) Basis() []int { return t.basis }

// Nonbasis returns the current nonbasic logical column indices.
func (t *Tableau[T]) Nonbasis() []int { return t.nonbasis }

// ZRHS returns the z-row's constant term at the tableau's current basic
// feasible solution. With a Max problem's z-row (the negated objective)
// this is the objective value; with a Min problem's z-row (the objective
// as given) it is the objective value's negation.
func (t *Tableau[T]) ZRHS() T { return t.zRHS }

// SetZRHS overwrites the z-row constant. Used by solvers that swap the
// active objective (two-phase's d-to-c handoff).
func (t *Tableau[T]) SetZRHS(v T) { t.zRHS = v }

// ZCoeffs exposes the z-row's structural-column coefficients for direct
// mutation by solvers that reassign the active objective.
func (t *Tableau[T]) ZCoeffs() []T { return t.zCoeffs }

// ZSlack exposes the z-row's slack-column coefficients for direct mutation.
func (t *Tableau[T]) ZSlack() []T { return t.zSlack }

// RHS exposes the right-hand side vector (read-only by convention; callers
// needing to mutate a single entry should go through RowMut).
func (t *Tableau[T]) RHS() []T { return t.rhs }

// At returns the element at logical (row, col), routing through the
// coefficients/slack/rhs partition.
func (t *Tableau[T]) At(row, col int) (T, error) {
	var zero T
	if row < 0 || row >= t.Rows() {
		return zero, tableauErrorf("At", ErrRowOutOfBounds)
	}
	n, m := t.NVars(), t.NSlack()
	switch {
	case col < n:
		v, err := t.coefficients.At(row, col)
		if err != nil {
			return zero, tableauErrorf("At", err)
		}
		return v, nil
	case col < n+m:
		v, err := t.slack.At(row, col-n)
		if err != nil {
			return zero, tableauErrorf("At", err)
		}
		return v, nil
	case col == n+m:
		return t.rhs[row], nil
	default:
		return zero, tableauErrorf("At", ErrColumnOutOfBounds)
	}
}

// Set assigns v at logical (row, col).
func (t *Tableau[T]) Set(row, col int, v T) error {
	if row < 0 || row >= t.Rows() {
		return tableauErrorf("Set", ErrRowOutOfBounds)
	}
	n, m := t.NVars(), t.NSlack()
	switch {
	case col < n:
		if err := t.coefficients.Set(row, col, v); err != nil {
			return tableauErrorf("Set", err)
		}
		return nil
	case col < n+m:
		if err := t.slack.Set(row, col-n, v); err != nil {
			return tableauErrorf("Set", err)
		}
		return nil
	case col == n+m:
		t.rhs[row] = v
		return nil
	default:
		return tableauErrorf("Set", ErrColumnOutOfBounds)
	}
}

// HasNegativeRHS reports whether any row's right-hand side is negative —
// the initial-tableau infeasibility check every solver strategy runs in
// FindInitialBFS before stepping.
func (t *Tableau[T]) HasNegativeRHS() bool {
	for _, v := range t.rhs {
		if v.Sign() < 0 {
			return true
		}
	}
	return false
}

// CurrentVertex returns the primal point at the tableau's current basis, as
// a vector of length nVars: nonbasic structural variables are zero, basic
// ones take their defining row's rhs.
func (t *Tableau[T]) CurrentVertex(nVars int) []T {
	var zero T
	vertex := make([]T, nVars)
	z := zero.Zero()
	for i := range vertex {
		vertex[i] = z
	}
	for row, varIdx := range t.basis {
		if varIdx < nVars {
			vertex[varIdx] = t.rhs[row]
		}
	}
	return vertex
}
