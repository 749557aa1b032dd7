// SPDX-License-Identifier: MIT
package solver

import (
	"errors"

	"github.com/katalvlaran/linprog/numeric"
	"github.com/katalvlaran/linprog/tableau"
)

// ShadowSolveResult is SolveWithShadowHistory's report: the final Solution,
// the full per-pivot Step history, and the (d'x, c'x) points visited along
// the way — the trace of the shadow-vertex path through the (d, c)
// objective plane, useful for plotting the shadow polygon.
type ShadowSolveResult[T numeric.Value[T]] struct {
	Solution     Solution[T]
	History      []Step[T]
	ShadowPoints [][2]T
}

// ShadowVertexSolver runs the shadow-vertex parametric simplex method: the
// entering column is chosen by walking the parametric objective
// r(λ) = (1-λ)r_d + λ r_c for λ in (0, 1], picking the smallest λ at which
// some reduced cost under the auxiliary objective d first becomes
// attractive under the true objective c. With the default d = 0 this
// degenerates to plain Bland-on-c (see
// TestShadowVertexSolver_WithZeroDMatchesBlandBehavior), which is why d = 0 is ShadowVertexSolver's zero-value default
// rather than a special case this code has to branch on.
type ShadowVertexSolver[T numeric.Value[T]] struct {
	opts Options

	tableau   *tableau.Tableau[T]
	nVars     int
	iteration int
	done      bool
	lastStep  Step[T]
	haveLast  bool

	dCoeffs []T
	dSlack  []T
	dRHS    T
	haveD   bool

	cCoeffs []T
	cSlack  []T
	cRHS    T
}

// NewShadowVertexSolver constructs a ShadowVertexSolver with auxiliary
// objective d = 0 until SetAuxiliaryObjective overrides it.
func NewShadowVertexSolver[T numeric.Value[T]](opts ...Option) *ShadowVertexSolver[T] {
	return &ShadowVertexSolver[T]{opts: NewOptions(opts...)}
}

// SetAuxiliaryObjective sets the auxiliary objective d driving the
// parametric entering rule. Call after Init and before FindInitialBFS/Step.
// dCoeffs must have length NVars(), dSlack must have length equal to the
// tableau's slack column count.
func (s *ShadowVertexSolver[T]) SetAuxiliaryObjective(dCoeffs, dSlack []T, dRHS T) error {
	if s.tableau == nil {
		return solverErrorf("SetAuxiliaryObjective", ErrNotInitialized)
	}
	if len(dCoeffs) != s.tableau.NVars() || len(dSlack) != s.tableau.NSlack() {
		return solverErrorf("SetAuxiliaryObjective", ErrAuxiliaryObjectiveShape)
	}
	s.dCoeffs = dCoeffs
	s.dSlack = dSlack
	s.dRHS = dRHS
	s.haveD = true
	return nil
}

// Init loads source, builds the tableau, and remembers the true objective c
// for reduced-cost computation. If SetAuxiliaryObjective was never called,
// d defaults to the zero vector.
func (s *ShadowVertexSolver[T]) Init(source InitSource[T]) {
	nVars, tab, err := source.intoTableauAndNVars()
	if err != nil {
		s.opts.Logger.Error().Err(err).Msg("shadow vertex solver init failed")
		s.tableau = nil
		return
	}
	s.nVars = nVars
	s.tableau = tab
	s.cCoeffs = append([]T(nil), tab.ZCoeffs()...)
	s.cSlack = append([]T(nil), tab.ZSlack()...)
	s.cRHS = tab.ZRHS()

	if !s.haveD {
		var zero T
		z := zero.Zero()
		s.dCoeffs = make([]T, len(tab.ZCoeffs()))
		s.dSlack = make([]T, len(tab.ZSlack()))
		for i := range s.dCoeffs {
			s.dCoeffs[i] = z
		}
		for i := range s.dSlack {
			s.dSlack[i] = z
		}
		s.dRHS = z
	}

	s.iteration = 0
	s.done = false
	s.haveLast = false
}

// FindInitialBFS checks the initial tableau for negative RHS.
func (s *ShadowVertexSolver[T]) FindInitialBFS() (bool, error) {
	if s.tableau == nil {
		return false, solverErrorf("FindInitialBFS", ErrNotInitialized)
	}
	if s.tableau.HasNegativeRHS() {
		return false, solverErrorf("FindInitialBFS", ErrInfeasible)
	}
	return true, nil
}

// IsDone reports whether a terminal status has been reached.
func (s *ShadowVertexSolver[T]) IsDone() bool { return s.done }

// LastStep returns the most recent Step, if any.
func (s *ShadowVertexSolver[T]) LastStep() (Step[T], bool) { return s.lastStep, s.haveLast }

// reducedCosts computes the reduced-cost vector for objective (wCoeffs,
// wSlack) at the tableau's current basis: r_j = w_j - sum_i w_{B_i} * T[i][j].
func reducedCosts[T numeric.Value[T]](tab *tableau.Tableau[T], n int, wCoeffs, wSlack []T) []T {
	var zero T
	z := zero.Zero()
	m := tab.Rows()
	numCols := n + m

	wAt := func(idx int) T {
		if idx < n {
			return wCoeffs[idx]
		}
		return wSlack[idx-n]
	}

	r := make([]T, numCols)
	basis := tab.Basis()
	for j := 0; j < numCols; j++ {
		dot := z
		for i, varIdx := range basis {
			v, err := tab.At(i, j)
			if err != nil {
				panic(err)
			}
			dot = dot.Add(wAt(varIdx).Mul(v))
		}
		r[j] = wAt(j).Sub(dot)
	}
	return r
}

// findShadowPivotCol implements the shadow-vertex parametric entering
// rule: among columns with r_d[j] >= 0 (still optimal under d) and
// r_c[j] < 0 (improving under c), pick the one with the smallest
// λ_j = r_d[j] / (r_d[j] - r_c[j]) in (0, 1]. If no column qualifies
// parametrically, fall back to plain Bland-on-c.
func findShadowPivotCol[T numeric.Value[T]](rD, rC []T) int {
	var zero T
	z := zero.Zero()
	one := z.One()

	bestCol := -1
	var bestLambda T
	haveBest := false

	for j := range rD {
		rdj, rcj := rD[j], rC[j]
		if rdj.Sign() < 0 {
			continue
		}
		if rcj.Sign() >= 0 {
			continue
		}
		denom := rdj.Sub(rcj)
		if !denom.IsStrictlyPositive() {
			continue
		}
		lambda := rdj.Div(denom)
		if lambda.Sign() <= 0 || lambda.Sub(one).Sign() > 0 {
			continue
		}
		if !haveBest || lambda.Sub(bestLambda).Sign() < 0 {
			bestLambda = lambda
			bestCol = j
			haveBest = true
		}
	}
	if bestCol >= 0 {
		return bestCol
	}

	for j, v := range rC {
		if v.Sign() < 0 {
			return j
		}
	}
	return -1
}

func (s *ShadowVertexSolver[T]) tryPivotStep() tableau.PivotResult {
	tab := s.tableau
	n := tab.NVars()

	rD := reducedCosts[T](tab, n, s.dCoeffs, s.dSlack)
	rC := make([]T, 0, n+tab.NSlack())
	rC = append(rC, tab.ZCoeffs()...)
	rC = append(rC, tab.ZSlack()...)

	col := findShadowPivotCol[T](rD, rC)
	if col < 0 {
		return tableau.PivotResult{Outcome: tableau.Optimal}
	}
	row := tab.RatioTest(col)
	if row < 0 {
		return tableau.PivotResult{Outcome: tableau.Unbounded}
	}
	return tableau.PivotResult{Outcome: tableau.Pivot, Row: row, Col: col}
}

// currentShadowPoint returns (d'x, c'x) at the tableau's current basis.
func (s *ShadowVertexSolver[T]) currentShadowPoint() [2]T {
	tab := s.tableau
	n := tab.NVars()
	dVal := s.dRHS
	for i, varIdx := range tab.Basis() {
		var coef T
		if varIdx < n {
			coef = s.dCoeffs[varIdx]
		} else {
			coef = s.dSlack[varIdx-n]
		}
		dVal = dVal.Add(coef.Mul(tab.RHS()[i]))
	}
	return [2]T{dVal, tab.ZRHS()}
}

// Step performs one pivot using the shadow-vertex parametric entering rule.
func (s *ShadowVertexSolver[T]) Step() (Step[T], error) {
	if s.tableau == nil {
		return Step[T]{}, solverErrorf("Step", ErrNotInitialized)
	}

	status := InProgress
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
func (s *ShadowVertexSolver[T]) Solve(source InitSource[T]) (Solution[T], error) {
	return runToCompletion[T](s, source, s.opts.MaxIterations)
}

// SolveWithShadowHistory runs to completion like Solve, but additionally
// records every intermediate Step and the (d, c) shadow point visited at
// each one, for plotting the shadow-vertex path.
func (s *ShadowVertexSolver[T]) SolveWithShadowHistory(source InitSource[T]) (ShadowSolveResult[T], error) {
	s.Init(source)
	if _, err := s.FindInitialBFS(); err != nil {
		if !errors.Is(err, ErrInfeasible) {
			return ShadowSolveResult[T]{}, err
		}
		var zero T
		return ShadowSolveResult[T]{Solution: Solution[T]{Objective: zero.Zero(), Status: StatusInfeasible}}, nil
	}

	shadowPoints := [][2]T{s.currentShadowPoint()}
	last, err := s.Step()
	if err != nil {
		return ShadowSolveResult[T]{}, err
	}
	var history []Step[T]
	for !s.IsDone() {
		history = append(history, last)
		shadowPoints = append(shadowPoints, s.currentShadowPoint())

		if last.Iteration >= s.opts.MaxIterations {
			return ShadowSolveResult[T]{}, solverErrorf("SolveWithShadowHistory", ErrStoppedPrematurely)
		}

		last, err = s.Step()
		if err != nil {
			return ShadowSolveResult[T]{}, err
		}
	}
	history = append(history, last)
	shadowPoints = append(shadowPoints, s.currentShadowPoint())

	var sol Solution[T]
	switch last.Status {
	case StatusOptimal:
		sol = Solution[T]{X: last.Primal, Objective: last.ObjectiveValue, Status: StatusOptimal}
	case StatusUnbounded:
		var zero T
		sol = Solution[T]{Objective: zero.Zero(), Status: StatusUnbounded}
	default:
		var zero T
		sol = Solution[T]{Objective: zero.Zero(), Status: StatusInfeasible}
	}

	return ShadowSolveResult[T]{Solution: sol, History: history, ShadowPoints: shadowPoints}, nil
}
