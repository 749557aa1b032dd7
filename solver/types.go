// SPDX-License-Identifier: MIT
package solver

import (
	"errors"

	"github.com/katalvlaran/linprog/model"
	"github.com/katalvlaran/linprog/numeric"
	"github.com/katalvlaran/linprog/tableau"
)

// ErrEmptyInitSource is returned when an InitSource carries neither a
// Problem nor a StandardForm — only reachable via the zero value, which
// FromProblem/FromStandardForm never produce.
var ErrEmptyInitSource = errors.New("solver: InitSource carries neither a Problem nor a StandardForm")

// InitSource is the input to Solver.Init: either a model.Problem or a
// model.StandardForm. Build one with FromProblem or FromStandardForm.
type InitSource[T numeric.Value[T]] struct {
	problem      *model.Problem[T]
	standardForm *model.StandardForm[T]
}

// FromProblem wraps a Problem as an InitSource.
func FromProblem[T numeric.Value[T]](p *model.Problem[T]) InitSource[T] {
	return InitSource[T]{problem: p}
}

// FromStandardForm wraps a StandardForm as an InitSource.
func FromStandardForm[T numeric.Value[T]](sf *model.StandardForm[T]) InitSource[T] {
	return InitSource[T]{standardForm: sf}
}

// intoTableauAndNVars builds the tableau and the number of structural
// variables from whichever source this InitSource carries.
func (s InitSource[T]) intoTableauAndNVars() (int, *tableau.Tableau[T], error) {
	switch {
	case s.problem != nil:
		tab, err := s.problem.IntoTableauForm()
		if err != nil {
			return 0, nil, solverErrorf("Init", err)
		}
		return len(s.problem.Objective), tab, nil
	case s.standardForm != nil:
		tab, err := s.standardForm.IntoTableau()
		if err != nil {
			return 0, nil, solverErrorf("Init", err)
		}
		return s.standardForm.NVars(), tab, nil
	default:
		return 0, nil, solverErrorf("Init", ErrEmptyInitSource)
	}
}

// Status is a solver's termination state.
type Status int

const (
	// InProgress means the solver has not yet reached a terminal status.
	InProgress Status = iota
	// StatusOptimal means the current basis is optimal.
	StatusOptimal
	// StatusInfeasible means no feasible solution exists (or the shared
	// feasibility gate rejected the initial tableau).
	StatusInfeasible
	// StatusUnbounded means the objective is unbounded on the feasible region.
	StatusUnbounded
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in-progress"
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	default:
		return "unknown"
	}
}

// Step is a snapshot after one pivot: the iteration count, the primal point
// at the current basis, the objective value there, and the status.
type Step[T numeric.Value[T]] struct {
	Iteration      int
	Primal         []T
	ObjectiveValue T
	Status         Status
}

// Solution is a solver's final report.
type Solution[T numeric.Value[T]] struct {
	X         []T
	Objective T
	Status    Status
}

// Solver is the shared driver contract every strategy in this package
// implements: Init loads a Problem or StandardForm and builds the tableau
// without running any iterations; FindInitialBFS checks the shared
// feasibility gate; Step performs one pivot; Solve runs init, the
// feasibility check, then steps to completion.
type Solver[T numeric.Value[T]] interface {
	// Init ingests source, builds the tableau, and clears iteration state.
	Init(source InitSource[T])

	// FindInitialBFS checks the initial tableau for feasibility. Must be
	// called after Init and before Step.
	FindInitialBFS() (bool, error)

	// Step performs one pivot from the current basis.
	Step() (Step[T], error)

	// IsDone reports whether the solver has reached a terminal status.
	IsDone() bool

	// LastStep returns the most recent Step produced, if any.
	LastStep() (Step[T], bool)

	// Solve runs Init, FindInitialBFS, then Step until done, and reports
	// the final Solution.
	Solve(source InitSource[T]) (Solution[T], error)
}
