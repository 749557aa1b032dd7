// SPDX-License-Identifier: MIT
// Package model: sentinel error set.
package model

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownRelation is returned by ParseRelation for any spelling
	// outside {≤, ≥, =, leq, geq, eq, ==}.
	ErrUnknownRelation = errors.New("model: unknown relation")

	// ErrEmptyObjective is returned by NewProblem when the objective vector
	// is empty.
	ErrEmptyObjective = errors.New("model: objective must have at least one coefficient")

	// ErrConstraintWidthMismatch is returned by AddConstraint when the
	// constraint's coefficient count doesn't match the objective's width.
	ErrConstraintWidthMismatch = errors.New("model: constraint width must match objective width")

	// ErrNoConstraints is returned by IntoStandardForm/IntoTableauForm when
	// the problem has no constraints to canonicalize.
	ErrNoConstraints = errors.New("model: problem has no constraints")

	// ErrEqualityUnsupported is returned by StandardForm.IntoTableau when a
	// row has no slack column to seed the canonical starting basis — every
	// equality row, or any StandardForm built outside Problem.IntoStandardForm
	// without a one-slack-per-row convention.
	ErrEqualityUnsupported = errors.New("model: IntoTableau requires exactly one slack column per row")

	// ErrDimensionMismatch is returned by NewStandardForm when a, b, c don't
	// agree in shape.
	ErrDimensionMismatch = errors.New("model: dimension mismatch")
)

func modelErrorf(method string, err error) error {
	return fmt.Errorf("model.%s: %w", method, err)
}
