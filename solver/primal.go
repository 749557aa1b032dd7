// SPDX-License-Identifier: MIT
package solver

import (
	"errors"

	"github.com/katalvlaran/linprog/numeric"
	"github.com/katalvlaran/linprog/tableau"
)

// PrimalSolver runs primal simplex with Dantzig's most-negative-reduced-cost
// column rule. It converges quickly on well-behaved problems but offers no
// anti-cycling guarantee on degenerate ones — see TwoPhaseSolver for that.
type PrimalSolver[T numeric.Value[T]] struct {
	opts Options

	tableau   *tableau.Tableau[T]
	nVars     int
	iteration int
	done      bool
	lastStep  Step[T]
	haveLast  bool
}

// NewPrimalSolver constructs a PrimalSolver with the given options applied
// over the defaults.
func NewPrimalSolver[T numeric.Value[T]](opts ...Option) *PrimalSolver[T] {
	return &PrimalSolver[T]{opts: NewOptions(opts...)}
}

// Init loads source, builds the tableau, and clears iteration state.
func (s *PrimalSolver[T]) Init(source InitSource[T]) {
	nVars, tab, err := source.intoTableauAndNVars()
	if err != nil {
		s.opts.Logger.Error().Err(err).Msg("primal solver init failed")
		s.tableau = nil
		return
	}
	s.nVars = nVars
	s.tableau = tab
	s.iteration = 0
	s.done = false
	s.haveLast = false
}

// FindInitialBFS checks the initial tableau for negative RHS.
func (s *PrimalSolver[T]) FindInitialBFS() (bool, error) {
	if s.tableau == nil {
		return false, solverErrorf("FindInitialBFS", ErrNotInitialized)
	}
	if s.tableau.HasNegativeRHS() {
		return false, solverErrorf("FindInitialBFS", ErrInfeasible)
	}
	return true, nil
}

// IsDone reports whether a terminal status has been reached.
func (s *PrimalSolver[T]) IsDone() bool { return s.done }

// LastStep returns the most recent Step, if any.
func (s *PrimalSolver[T]) LastStep() (Step[T], bool) { return s.lastStep, s.haveLast }

// Step performs one pivot using the Dantzig column rule.
func (s *PrimalSolver[T]) Step() (Step[T], error) {
	if s.tableau == nil {
		return Step[T]{}, solverErrorf("Step", ErrNotInitialized)
	}

	status := InProgress
	switch result := s.tableau.FindPivotIndices(); result.Outcome {
	case tableau.Pivot:
		if err := s.tableau.Pivot(result.Row, result.Col); err != nil {
			return Step[T]{}, solverErrorf("Step", err)
		}
		s.iteration++
		s.opts.Logger.Debug().Int("iteration", s.iteration).Int("row", result.Row).Int("col", result.Col).Msg("pivot")
	case tableau.Optimal:
		s.done = true
		status = StatusOptimal
	case tableau.Unbounded:
		s.done = true
		status = StatusUnbounded
	}

	step := Step[T]{
		Iteration:      s.iteration,
		Primal:         s.tableau.CurrentVertex(s.nVars),
		ObjectiveValue: s.tableau.ZRHS(),
		Status:         status,
	}
	s.lastStep = step
	s.haveLast = true
	return step, nil
}

// Solve runs Init, FindInitialBFS, then steps to completion.
func (s *PrimalSolver[T]) Solve(source InitSource[T]) (Solution[T], error) {
	return runToCompletion[T](s, source, s.opts.MaxIterations)
}

// runToCompletion implements the shared Solve algorithm: init, feasibility
// gate, then step until a terminal status is reached or the iteration cap
// fires. Every strategy in this package delegates its Solve method here.
func runToCompletion[T numeric.Value[T]](s Solver[T], source InitSource[T], maxIter int) (Solution[T], error) {
	s.Init(source)
	if _, err := s.FindInitialBFS(); err != nil {
		if !errors.Is(err, ErrInfeasible) {
			return Solution[T]{}, err
		}
		var zero T
		return Solution[T]{X: nil, Objective: zero.Zero(), Status: StatusInfeasible}, nil
	}

	var last Step[T]
	for {
		step, err := s.Step()
		if err != nil {
			return Solution[T]{}, err
		}
		last = step
		if s.IsDone() {
			break
		}
		if step.Iteration >= maxIter {
			return Solution[T]{}, solverErrorf("Solve", ErrStoppedPrematurely)
		}
	}

	switch last.Status {
	case StatusOptimal:
		return Solution[T]{X: last.Primal, Objective: last.ObjectiveValue, Status: StatusOptimal}, nil
	case StatusUnbounded:
		var zero T
		return Solution[T]{X: nil, Objective: zero.Zero(), Status: StatusUnbounded}, nil
	default:
		var zero T
		return Solution[T]{X: nil, Objective: zero.Zero(), Status: StatusInfeasible}, nil
	}
}
