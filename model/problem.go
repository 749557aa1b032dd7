// SPDX-License-Identifier: MIT
package model

import (
	"github.com/katalvlaran/linprog/matrix"
	"github.com/katalvlaran/linprog/numeric"
	"github.com/katalvlaran/linprog/tableau"
)

// Constraint is one row of a Problem: a linear combination of structural
// variables, a Relation, and a right-hand side.
type Constraint[T numeric.Value[T]] struct {
	Coefficients []T
	Relation     Relation
	RHS          T
}

// Normalise returns a copy of c with rhs made non-negative: if rhs < 0,
// every coefficient and rhs are negated and ≤/≥ are swapped (= is
// unchanged). This is purely a presentation transform — it preserves the
// feasible set — and is the first step both canonicalization paths apply
// to every constraint.
func (c Constraint[T]) Normalise() Constraint[T] {
	if c.RHS.Sign() >= 0 {
		return c
	}

	negated := make([]T, len(c.Coefficients))
	for i, v := range c.Coefficients {
		negated[i] = v.Neg()
	}

	rel := c.Relation
	switch rel {
	case LessEqual:
		rel = GreaterEqual
	case GreaterEqual:
		rel = LessEqual
	}

	return Constraint[T]{Coefficients: negated, Relation: rel, RHS: c.RHS.Neg()}
}

// Problem is a linear program in the user-facing form: maximize or
// minimize a linear objective subject to a list of Constraints.
type Problem[T numeric.Value[T]] struct {
	Objective   []T
	Goal        Goal
	Constraints []Constraint[T]
}

// NewProblem constructs a Problem with no constraints yet.
func NewProblem[T numeric.Value[T]](objective []T, goal Goal) (*Problem[T], error) {
	if len(objective) == 0 {
		return nil, modelErrorf("NewProblem", ErrEmptyObjective)
	}
	return &Problem[T]{Objective: objective, Goal: goal}, nil
}

// AddConstraint appends a constraint. coefficients must have the same width
// as the objective.
func (p *Problem[T]) AddConstraint(coefficients []T, relation Relation, rhs T) error {
	if len(coefficients) != len(p.Objective) {
		return modelErrorf("AddConstraint", ErrConstraintWidthMismatch)
	}
	p.Constraints = append(p.Constraints, Constraint[T]{Coefficients: coefficients, Relation: relation, RHS: rhs})
	return nil
}

func (p *Problem[T]) objectiveRowSign(v T) T {
	if p.Goal == Max {
		return v.Neg()
	}
	return v
}

// IntoStandardForm builds the shared-slack-pool standard form: total
// columns are n + S where S counts the non-equality constraints; each
// inequality claims the next slack column (+1 for ≤, −1 for ≥); equalities
// claim none.
func (p *Problem[T]) IntoStandardForm() (*StandardForm[T], error) {
	if len(p.Constraints) == 0 {
		return nil, modelErrorf("IntoStandardForm", ErrNoConstraints)
	}

	n := len(p.Objective)
	var zero T
	z := zero.Zero()
	one := zero.One()
	negOne := one.Neg()

	surplusSlack := 0
	for _, c := range p.Constraints {
		if c.Relation != Equal {
			surplusSlack++
		}
	}
	totalCols := n + surplusSlack

	a, err := matrix.WithCapacity[T](len(p.Constraints), totalCols, z)
	if err != nil {
		return nil, modelErrorf("IntoStandardForm", err)
	}

	b := make([]T, 0, len(p.Constraints))
	slackIndices := make([]int, 0, surplusSlack)
	slackIdx := n

	for _, raw := range p.Constraints {
		c := raw.Normalise()
		row := make([]T, totalCols)
		for i := range row {
			row[i] = z
		}
		copy(row, c.Coefficients)

		switch c.Relation {
		case LessEqual:
			row[slackIdx] = one
			slackIndices = append(slackIndices, slackIdx)
		case GreaterEqual:
			row[slackIdx] = negOne
			slackIndices = append(slackIndices, slackIdx)
		case Equal:
			// no slack column.
		}
		if c.Relation != Equal {
			slackIdx++
		}

		b = append(b, c.RHS)
		if err := a.PushRow(row); err != nil {
			return nil, modelErrorf("IntoStandardForm", err)
		}
	}

	cVec := make([]T, totalCols)
	for i := range cVec {
		cVec[i] = z
	}
	for i, v := range p.Objective {
		cVec[i] = p.objectiveRowSign(v)
	}

	return &StandardForm[T]{A: a, B: b, C: cVec, Goal: p.Goal, SlackIndices: slackIndices}, nil
}

// IntoTableauForm builds the pivot-ready tableau directly: an m×m square
// slack block (identity-like: +1 on the diagonal for ≤, −1 for ≥, zero row
// for =) and the canonical starting basis basis = [n, ..., n+m-1].
//
// Note: when any row is an equality or ≥, this starting basis is not
// feasible without a Phase-I procedure this engine does not run
// automatically — FindInitialBFS only detects negative RHS (see the solver
// package). Pure ≤-form problems are immediately feasible at the origin.
func (p *Problem[T]) IntoTableauForm() (*tableau.Tableau[T], error) {
	if len(p.Constraints) == 0 {
		return nil, modelErrorf("IntoTableauForm", ErrNoConstraints)
	}

	n := len(p.Objective)
	m := len(p.Constraints)
	var zero T
	z := zero.Zero()
	one := zero.One()
	negOne := one.Neg()

	aMat, err := matrix.WithCapacity[T](m, n, z)
	if err != nil {
		return nil, modelErrorf("IntoTableauForm", err)
	}
	sMat, err := matrix.WithCapacity[T](m, m, z)
	if err != nil {
		return nil, modelErrorf("IntoTableauForm", err)
	}
	rhs := make([]T, 0, m)

	for i, raw := range p.Constraints {
		c := raw.Normalise()
		if err := aMat.PushRow(c.Coefficients); err != nil {
			return nil, modelErrorf("IntoTableauForm", err)
		}
		rhs = append(rhs, c.RHS)

		slackRow := make([]T, m)
		for j := range slackRow {
			slackRow[j] = z
		}
		switch c.Relation {
		case LessEqual:
			slackRow[i] = one
		case GreaterEqual:
			slackRow[i] = negOne
		case Equal:
			// all zero.
		}
		if err := sMat.PushRow(slackRow); err != nil {
			return nil, modelErrorf("IntoTableauForm", err)
		}
	}

	zCoeffs := make([]T, n)
	for i, v := range p.Objective {
		zCoeffs[i] = p.objectiveRowSign(v)
	}
	zSlack := make([]T, m)
	for i := range zSlack {
		zSlack[i] = z
	}

	tab, err := tableau.NewTableau(aMat, sMat, rhs, zCoeffs, zSlack, z)
	if err != nil {
		return nil, modelErrorf("IntoTableauForm", err)
	}
	return tab, nil
}
