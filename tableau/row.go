// SPDX-License-Identifier: MIT
package tableau

import (
	"github.com/katalvlaran/linprog/matrix"
	"github.com/katalvlaran/linprog/numeric"
)

// TableauRow is an owning snapshot of one row — structural coefficients,
// slack coefficients, and rhs — used where a row must outlive the mutation
// of the tableau it came from (e.g. the pivot engine's "normalized pivot
// row" kept around while every other row is eliminated against it).
type TableauRow[T numeric.Value[T]] struct {
	Coefficients matrix.Row[T]
	Slack        matrix.Row[T]
	RHS          T
}

// TableauRowMut is a mutable view aliasing one row's backing spans plus a
// pointer to its rhs slot. Mutations write straight through to the tableau.
type TableauRowMut[T numeric.Value[T]] struct {
	Coefficients matrix.RowMut[T]
	Slack        matrix.RowMut[T]
	rhs          *T
}

// RHS returns the aliased rhs value.
func (r TableauRowMut[T]) RHS() T { return *r.rhs }

// SetRHS writes through to the aliased rhs slot.
func (r TableauRowMut[T]) SetRHS(v T) { *r.rhs = v }

// Row returns an owning snapshot of constraint row r.
func (t *Tableau[T]) Row(r int) (TableauRow[T], error) {
	if r < 0 || r >= t.Rows() {
		return TableauRow[T]{}, tableauErrorf("Row", ErrRowOutOfBounds)
	}
	coeffRow, err := t.coefficients.Row(r)
	if err != nil {
		return TableauRow[T]{}, tableauErrorf("Row", err)
	}
	slackRow, err := t.slack.Row(r)
	if err != nil {
		return TableauRow[T]{}, tableauErrorf("Row", err)
	}
	return TableauRow[T]{Coefficients: coeffRow, Slack: slackRow, RHS: t.rhs[r]}, nil
}

// RowMut returns a mutable view aliasing constraint row r.
func (t *Tableau[T]) RowMut(r int) (TableauRowMut[T], error) {
	if r < 0 || r >= t.Rows() {
		return TableauRowMut[T]{}, tableauErrorf("RowMut", ErrRowOutOfBounds)
	}
	coeffRow, err := t.coefficients.RowMut(r)
	if err != nil {
		return TableauRowMut[T]{}, tableauErrorf("RowMut", err)
	}
	slackRow, err := t.slack.RowMut(r)
	if err != nil {
		return TableauRowMut[T]{}, tableauErrorf("RowMut", err)
	}
	return TableauRowMut[T]{Coefficients: coeffRow, Slack: slackRow, rhs: &t.rhs[r]}, nil
}

// ZRow returns the z-row (objective) as a TableauRow. Unlike Row, it does
// not copy: its Coefficients and Slack alias the tableau's z-row slices, so
// later mutations of the z-row show through; RHS is a copy.
func (t *Tableau[T]) ZRow() TableauRow[T] {
	return TableauRow[T]{
		Coefficients: matrix.RowFromSlice(t.zCoeffs),
		Slack:        matrix.RowFromSlice(t.zSlack),
		RHS:          t.zRHS,
	}
}

// ZRowMut returns a mutable view aliasing the z-row.
func (t *Tableau[T]) ZRowMut() TableauRowMut[T] {
	return TableauRowMut[T]{
		Coefficients: matrix.RowMutFromSlice(t.zCoeffs),
		Slack:        matrix.RowMutFromSlice(t.zSlack),
		rhs:          &t.zRHS,
	}
}

// At returns the element at logical column c within the row (coefficients,
// then slack, then rhs) — the same partition Tableau.At uses.
func (r TableauRow[T]) At(c int) T {
	a := r.Coefficients.Len()
	s := r.Slack.Len()
	switch {
	case c < a:
		return r.Coefficients.At(c)
	case c < a+s:
		return r.Slack.At(c - a)
	default:
		return r.RHS
	}
}

// At returns the element at logical column c within the row.
func (r TableauRowMut[T]) At(c int) T {
	a := r.Coefficients.Len()
	s := r.Slack.Len()
	switch {
	case c < a:
		return r.Coefficients.At(c)
	case c < a+s:
		return r.Slack.At(c - a)
	default:
		return r.RHS()
	}
}

// Add returns the elementwise sum of r and other as a new owning TableauRow.
func (r TableauRow[T]) Add(other TableauRow[T]) (TableauRow[T], error) {
	coeffs, err := r.Coefficients.Add(other.Coefficients)
	if err != nil {
		return TableauRow[T]{}, tableauErrorf("TableauRow.Add", err)
	}
	slack, err := r.Slack.Add(other.Slack)
	if err != nil {
		return TableauRow[T]{}, tableauErrorf("TableauRow.Add", err)
	}
	return TableauRow[T]{Coefficients: coeffs, Slack: slack, RHS: r.RHS.Add(other.RHS)}, nil
}

// Sub returns the elementwise difference r - other as a new owning TableauRow.
func (r TableauRow[T]) Sub(other TableauRow[T]) (TableauRow[T], error) {
	coeffs, err := r.Coefficients.Sub(other.Coefficients)
	if err != nil {
		return TableauRow[T]{}, tableauErrorf("TableauRow.Sub", err)
	}
	slack, err := r.Slack.Sub(other.Slack)
	if err != nil {
		return TableauRow[T]{}, tableauErrorf("TableauRow.Sub", err)
	}
	return TableauRow[T]{Coefficients: coeffs, Slack: slack, RHS: r.RHS.Sub(other.RHS)}, nil
}

// ScaleBy returns a new TableauRow with every element multiplied by k.
func (r TableauRow[T]) ScaleBy(k T) TableauRow[T] {
	return TableauRow[T]{
		Coefficients: r.Coefficients.ScaleBy(k),
		Slack:        r.Slack.ScaleBy(k),
		RHS:          r.RHS.Mul(k),
	}
}

// SubAssignScaled performs r -= other*k across all three partitions
// (coefficients, slack, rhs) in a single fused pass per partition. This is
// the pivot engine's core primitive: eliminating a pivot column from every
// other row, and from the z-row, is exactly one call per row.
func (r TableauRowMut[T]) SubAssignScaled(other TableauRow[T], k T) error {
	if err := r.Coefficients.SubAssignScaled(matrix.RowMutFromSlice(other.Coefficients.Slice()), k); err != nil {
		return tableauErrorf("TableauRowMut.SubAssignScaled", err)
	}
	if err := r.Slack.SubAssignScaled(matrix.RowMutFromSlice(other.Slack.Slice()), k); err != nil {
		return tableauErrorf("TableauRowMut.SubAssignScaled", err)
	}
	*r.rhs = r.RHS().Sub(other.RHS.Mul(k))
	return nil
}

// ScaleAssign multiplies every element of the row (coefficients, slack,
// rhs) by k in place.
func (r TableauRowMut[T]) ScaleAssign(k T) {
	r.Coefficients.ScaleAssign(k)
	r.Slack.ScaleAssign(k)
	*r.rhs = r.RHS().Mul(k)
}
