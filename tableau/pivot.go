// SPDX-License-Identifier: MIT
package tableau

// Outcome classifies what FindPivotIndices/FindPivotIndicesBland decided.
type Outcome int

const (
	// Optimal means no entering column improves the objective further.
	Optimal Outcome = iota
	// Unbounded means an entering column was found but the ratio test
	// admitted no leaving row: the feasible region is unbounded along it.
	Unbounded
	// Pivot means a (row, col) pair was found and Pivot can be applied.
	Pivot
)

// PivotResult is the outcome of one pivot-selection pass: Optimal,
// Unbounded, or Pivot(Row, Col).
type PivotResult struct {
	Outcome Outcome
	Row     int
	Col     int
}

// zRowEntries iterates the z-row's reduced costs across both partitions,
// numbering slack columns starting at NVars().
func (t *Tableau[T]) zRowEntries(yield func(col int, val T) bool) {
	for j, v := range t.zCoeffs {
		if !yield(j, v) {
			return
		}
	}
	n := len(t.zCoeffs)
	for j, v := range t.zSlack {
		if !yield(n+j, v) {
			return
		}
	}
}

// FindPivotColDantzig selects the column with the most negative reduced
// cost, or -1 if none is negative (the tableau is optimal).
func (t *Tableau[T]) FindPivotColDantzig() int {
	var zero T
	best := -1
	minVal := zero.Zero()
	t.zRowEntries(func(col int, val T) bool {
		if val.Sub(minVal).Sign() < 0 {
			minVal = val
			best = col
		}
		return true
	})
	return best
}

// FindPivotColBland selects the first column with a negative reduced cost
// (Bland's rule, anti-cycling), or -1 if none is negative.
func (t *Tableau[T]) FindPivotColBland() int {
	found := -1
	t.zRowEntries(func(col int, val T) bool {
		if val.Sign() < 0 {
			found = col
			return false
		}
		return true
	})
	return found
}

// RatioTest performs the minimum-ratio test for entering column col across
// every row with a strictly positive coefficient in that column. Returns
// -1 if no row qualifies (the entering variable is unbounded).
func (t *Tableau[T]) RatioTest(col int) int {
	best := -1
	var minRatio T
	haveMin := false

	for i := 0; i < t.Rows(); i++ {
		entry, err := t.At(i, col)
		if err != nil {
			panic(err)
		}
		if entry.Sign() <= 0 {
			continue
		}
		ratio := t.rhs[i].Div(entry)
		if !haveMin || ratio.Sub(minRatio).Sign() < 0 {
			minRatio = ratio
			haveMin = true
			best = i
		}
	}
	return best
}

// FindPivotIndices chooses a pivot using the Dantzig column rule.
func (t *Tableau[T]) FindPivotIndices() PivotResult {
	col := t.FindPivotColDantzig()
	if col < 0 {
		return PivotResult{Outcome: Optimal}
	}
	row := t.RatioTest(col)
	if row < 0 {
		return PivotResult{Outcome: Unbounded}
	}
	return PivotResult{Outcome: Pivot, Row: row, Col: col}
}

// FindPivotIndicesBland chooses a pivot using Bland's column rule, which
// guarantees termination (no cycling) at the cost of potentially more
// iterations than Dantzig.
func (t *Tableau[T]) FindPivotIndicesBland() PivotResult {
	col := t.FindPivotColBland()
	if col < 0 {
		return PivotResult{Outcome: Optimal}
	}
	row := t.RatioTest(col)
	if row < 0 {
		return PivotResult{Outcome: Unbounded}
	}
	return PivotResult{Outcome: Pivot, Row: row, Col: col}
}

// IsOptimal reports whether the current z-row has no negative reduced cost.
func (t *Tableau[T]) IsOptimal() bool {
	return t.FindPivotColDantzig() < 0
}

// Pivot performs Gauss-Jordan elimination at (rowIdx, colIdx): normalizes
// the pivot row so the pivot element becomes one, then eliminates colIdx
// from every other row (including the z-row) via the fused
// SubAssignScaled primitive, and records colIdx as row rowIdx's new basic
// variable, moving the previously basic variable into colIdx's slot in the
// nonbasis.
//
// Complexity: O(rows * cols) — one fused row operation per row.
func (t *Tableau[T]) Pivot(rowIdx, colIdx int) error {
	if rowIdx < 0 || rowIdx >= t.Rows() {
		return tableauErrorf("Pivot", ErrRowOutOfBounds)
	}
	if colIdx < 0 || colIdx >= t.NVars()+t.NSlack() {
		return tableauErrorf("Pivot", ErrColumnOutOfBounds)
	}

	pivotElement, err := t.At(rowIdx, colIdx)
	if err != nil {
		return tableauErrorf("Pivot", err)
	}
	if pivotElement.IsZero() {
		return tableauErrorf("Pivot", ErrSingularPivot)
	}

	zFactor := t.ZRow().At(colIdx)
	invPivot := pivotElement.One().Div(pivotElement)

	pRow, err := t.RowMut(rowIdx)
	if err != nil {
		return tableauErrorf("Pivot", err)
	}
	pRow.ScaleAssign(invPivot)

	norm, err := t.Row(rowIdx)
	if err != nil {
		return tableauErrorf("Pivot", err)
	}

	for i := 0; i < t.Rows(); i++ {
		if i == rowIdx {
			continue
		}
		factor, err := t.At(i, colIdx)
		if err != nil {
			return tableauErrorf("Pivot", err)
		}
		if factor.IsZero() {
			continue
		}
		current, err := t.RowMut(i)
		if err != nil {
			return tableauErrorf("Pivot", err)
		}
		if err := current.SubAssignScaled(norm, factor); err != nil {
			return tableauErrorf("Pivot", err)
		}
	}

	if !zFactor.IsZero() {
		if err := t.ZRowMut().SubAssignScaled(norm, zFactor); err != nil {
			return tableauErrorf("Pivot", err)
		}
	}

	leaving := t.basis[rowIdx]
	for j, v := range t.nonbasis {
		if v == colIdx {
			t.nonbasis[j] = leaving
			break
		}
	}
	t.basis[rowIdx] = colIdx
	return nil
}
