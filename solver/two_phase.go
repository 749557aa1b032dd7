// SPDX-License-Identifier: MIT
package solver

import (
	"github.com/katalvlaran/linprog/numeric"
	"github.com/katalvlaran/linprog/tableau"
)

type twoPhase int

const (
	phaseOptimizeD twoPhase = iota
	phaseOptimizeC
)

// TwoPhaseSolver runs a d-to-c auxiliary-objective sweep: phase one
// optimizes the auxiliary objective d = -c using Bland's rule (guaranteed
// to terminate even on a degenerate tableau), then the z-row is rebuilt as
// the true objective's reduced-cost row at the resulting basis and phase
// two continues, still under Bland's rule, to the true optimum.
//
// This is not the classical artificial-variable two-phase method — it
// never introduces artificial variables, relying instead on Bland's
// anti-cycling guarantee across both phases of the same auxiliary-to-true
// objective sweep.
type TwoPhaseSolver[T numeric.Value[T]] struct {
	opts Options

	tableau   *tableau.Tableau[T]
	nVars     int
	iteration int
	done      bool
	lastStep  Step[T]
	haveLast  bool
	phase     twoPhase

	cCoeffs []T
	cSlack  []T
	cRHS    T
}

// NewTwoPhaseSolver constructs a TwoPhaseSolver with the given options.
func NewTwoPhaseSolver[T numeric.Value[T]](opts ...Option) *TwoPhaseSolver[T] {
	return &TwoPhaseSolver[T]{opts: NewOptions(opts...)}
}

// setZToD sets the z-row to the auxiliary objective d = -c for phase one.
func (s *TwoPhaseSolver[T]) setZToD() {
	zCoeffs := s.tableau.ZCoeffs()
	for i := range zCoeffs {
		zCoeffs[i] = s.cCoeffs[i].Neg()
	}
	zSlack := s.tableau.ZSlack()
	for i := range zSlack {
		zSlack[i] = s.cSlack[i].Neg()
	}
	s.tableau.SetZRHS(s.cRHS.Neg())
}

// setZToC restores the z-row to the true objective c's reduced-cost row at
// the tableau's current basis, via the fused row-elimination primitive, and
// sets z_rhs directly to c_rhs - sum_i c_basis[i]*rhs[i] (c in its stored
// z-row form), the same constant term Pivot's elimination keeps: for a Max
// problem, the objective value at the current basic feasible solution. The
// fused elimination below already produces the correct reduced costs, and
// the constant term is simplest computed from its own definition.
func (s *TwoPhaseSolver[T]) setZToC() error {
	tab := s.tableau
	n := len(s.cCoeffs)
	m := tab.Rows()

	basis := tab.Basis()
	cBasis := make([]T, m)
	for i, varIdx := range basis {
		if varIdx < n {
			cBasis[i] = s.cCoeffs[varIdx]
		} else {
			cBasis[i] = s.cSlack[varIdx-n]
		}
	}

	copy(tab.ZCoeffs(), s.cCoeffs)
	copy(tab.ZSlack(), s.cSlack)

	zAtBFS := s.cRHS
	for i := 0; i < m; i++ {
		zAtBFS = zAtBFS.Sub(cBasis[i].Mul(tab.RHS()[i]))
	}

	for i := 0; i < m; i++ {
		if cBasis[i].IsZero() {
			continue
		}
		row, err := tab.Row(i)
		if err != nil {
			return err
		}
		if err := tab.ZRowMut().SubAssignScaled(row, cBasis[i]); err != nil {
			return err
		}
	}
	tab.SetZRHS(zAtBFS)
	return nil
}

func (s *TwoPhaseSolver[T]) tryPivotStep() tableau.PivotResult {
	return s.tableau.FindPivotIndicesBland()
}

// Init loads source, builds the tableau, remembers the true objective c,
// and sets the z-row to the phase-one auxiliary objective d = -c.
func (s *TwoPhaseSolver[T]) Init(source InitSource[T]) {
	nVars, tab, err := source.intoTableauAndNVars()
	if err != nil {
		s.opts.Logger.Error().Err(err).Msg("two-phase solver init failed")
		s.tableau = nil
		return
	}
	s.nVars = nVars
	s.tableau = tab
	s.cCoeffs = append([]T(nil), tab.ZCoeffs()...)
	s.cSlack = append([]T(nil), tab.ZSlack()...)
	s.cRHS = tab.ZRHS()
	s.iteration = 0
	s.done = false
	s.haveLast = false
	s.phase = phaseOptimizeD
	s.setZToD()
}

// FindInitialBFS checks the initial tableau for negative RHS.
func (s *TwoPhaseSolver[T]) FindInitialBFS() (bool, error) {
	if s.tableau == nil {
		return false, solverErrorf("FindInitialBFS", ErrNotInitialized)
	}
	if s.tableau.HasNegativeRHS() {
		return false, solverErrorf("FindInitialBFS", ErrInfeasible)
	}
	return true, nil
}

// IsDone reports whether a terminal status has been reached.
func (s *TwoPhaseSolver[T]) IsDone() bool { return s.done }

// LastStep returns the most recent Step, if any.
func (s *TwoPhaseSolver[T]) LastStep() (Step[T], bool) { return s.lastStep, s.haveLast }

// Step performs one Bland pivot in the current phase, switching from
// optimizing d to optimizing c once the d-phase terminates.
func (s *TwoPhaseSolver[T]) Step() (Step[T], error) {
	if s.tableau == nil {
		return Step[T]{}, solverErrorf("Step", ErrNotInitialized)
	}

	status := InProgress
	switch s.phase {
	case phaseOptimizeD:
		switch result := s.tryPivotStep(); result.Outcome {
		case tableau.Pivot:
			if err := s.tableau.Pivot(result.Row, result.Col); err != nil {
				return Step[T]{}, solverErrorf("Step", err)
			}
			s.iteration++
		case tableau.Optimal, tableau.Unbounded:
			if err := s.setZToC(); err != nil {
				return Step[T]{}, solverErrorf("Step", err)
			}
			s.phase = phaseOptimizeC
		}
	case phaseOptimizeC:
		switch result := s.tryPivotStep(); result.Outcome {
		case tableau.Pivot:
			if err := s.tableau.Pivot(result.Row, result.Col); err != nil {
				return Step[T]{}, solverErrorf("Step", err)
			}
			s.iteration++
		case tableau.Optimal:
			s.done = true
			status = StatusOptimal
		case tableau.Unbounded:
			s.done = true
			status = StatusUnbounded
		}
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
func (s *TwoPhaseSolver[T]) Solve(source InitSource[T]) (Solution[T], error) {
	return runToCompletion[T](s, source, s.opts.MaxIterations)
}
