// SPDX-License-Identifier: MIT
package model

import (
	"github.com/katalvlaran/linprog/matrix"
	"github.com/katalvlaran/linprog/numeric"
	"github.com/katalvlaran/linprog/tableau"
)

// StandardForm is the shared-slack-pool canonical form: A is m×(n+S), b is
// length m, c is length n+S, and SlackIndices names the column each
// non-equality row claimed (in row order) — built by Problem.IntoStandardForm.
type StandardForm[T numeric.Value[T]] struct {
	A            *matrix.Matrix[T]
	B            []T
	C            []T
	Goal         Goal
	SlackIndices []int
}

// NewStandardForm validates shape (a.Rows()==len(b), a.Cols()==len(c)) and
// constructs a StandardForm.
func NewStandardForm[T numeric.Value[T]](a *matrix.Matrix[T], b, c []T, goal Goal, slackIndices []int) (*StandardForm[T], error) {
	if a.Rows() != len(b) {
		return nil, modelErrorf("NewStandardForm", ErrDimensionMismatch)
	}
	if a.Cols() != len(c) {
		return nil, modelErrorf("NewStandardForm", ErrDimensionMismatch)
	}
	return &StandardForm[T]{A: a, B: b, C: c, Goal: goal, SlackIndices: slackIndices}, nil
}

// NVars returns the number of structural variables: total columns minus
// the number of slack columns claimed.
func (sf *StandardForm[T]) NVars() int {
	return sf.A.Cols() - len(sf.SlackIndices)
}

// IntoTableau rebuilds a pivot-ready tableau.Tableau from this standard
// form. Precondition: every row must have claimed exactly one slack column
// (SlackIndices must have one entry per row) so a square m×m slack block
// and a canonical starting basis can be recovered — a StandardForm with an
// equality row, which claims no slack column, fails this precondition and
// returns ErrEqualityUnsupported rather than guessing a Phase-I setup.
func (sf *StandardForm[T]) IntoTableau() (*tableau.Tableau[T], error) {
	m := sf.A.Rows()
	if len(sf.SlackIndices) != m {
		return nil, modelErrorf("IntoTableau", ErrEqualityUnsupported)
	}

	n := sf.NVars()
	var zero T
	z := zero.Zero()

	coeffs, err := matrix.NewMatrix[T](m, n, z)
	if err != nil {
		return nil, modelErrorf("IntoTableau", err)
	}
	slack, err := matrix.NewMatrix[T](m, m, z)
	if err != nil {
		return nil, modelErrorf("IntoTableau", err)
	}

	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			v, err := sf.A.At(i, j)
			if err != nil {
				return nil, modelErrorf("IntoTableau", err)
			}
			if err := coeffs.Set(i, j, v); err != nil {
				return nil, modelErrorf("IntoTableau", err)
			}
		}
		slackCol := sf.SlackIndices[i]
		v, err := sf.A.At(i, slackCol)
		if err != nil {
			return nil, modelErrorf("IntoTableau", err)
		}
		if err := slack.Set(i, i, v); err != nil {
			return nil, modelErrorf("IntoTableau", err)
		}
	}

	zCoeffs := make([]T, n)
	copy(zCoeffs, sf.C[:n])
	zSlack := make([]T, m)
	for i := range zSlack {
		zSlack[i] = z
	}

	tab, err := tableau.NewTableau(coeffs, slack, sf.B, zCoeffs, zSlack, z)
	if err != nil {
		return nil, modelErrorf("IntoTableau", err)
	}
	return tab, nil
}
