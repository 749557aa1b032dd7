// SPDX-License-Identifier: MIT
// Package solver: sentinel error set.
package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInitialized is returned by Step/FindInitialBFS when Init hasn't
	// been called yet or failed to build a tableau, and by Solve when its
	// own Init call failed.
	ErrNotInitialized = errors.New("solver: not initialized, call Init first")

	// ErrInfeasible is returned by FindInitialBFS when the initial tableau
	// has a negative right-hand side — the shared feasibility gate every
	// strategy runs before stepping.
	ErrInfeasible = errors.New("solver: infeasible, initial tableau has negative rhs")

	// ErrStoppedPrematurely is returned by Solve when the iteration cap is
	// hit before a terminal status (Optimal/Infeasible/Unbounded) is reached.
	ErrStoppedPrematurely = errors.New("solver: stopped prematurely, iteration cap reached")

	// ErrBadMaxIterations is returned by WithMaxIterations for a non-positive cap.
	ErrBadMaxIterations = errors.New("solver: MaxIterations must be positive")

	// ErrAuxiliaryObjectiveShape is returned by ShadowVertexSolver.
	// SetAuxiliaryObjective when d's lengths don't match the tableau the
	// solver was initialized with.
	ErrAuxiliaryObjectiveShape = errors.New("solver: auxiliary objective shape mismatch")
)

func solverErrorf(method string, err error) error {
	return fmt.Errorf("solver.%s: %w", method, err)
}
