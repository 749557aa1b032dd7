// SPDX-License-Identifier: MIT
package solver_test

import (
	"testing"

	"github.com/katalvlaran/linprog/numeric"
	"github.com/katalvlaran/linprog/solver"
	"github.com/stretchr/testify/require"
)

func TestShadowVertexSolver_WithZeroDMatchesBlandBehavior(t *testing.T) {
	t.Parallel()

	s := solver.NewShadowVertexSolver[numeric.Rat]()
	sol, err := s.Solve(solver.FromProblem(maxProblem(t)))
	require.NoError(t, err)
	require.Equal(t, solver.StatusOptimal, sol.Status)
	require.Equal(t, rat(1), sol.X[0])
	require.Equal(t, rat(3), sol.X[1])
	require.Equal(t, rat(9), sol.Objective)
}

func TestShadowVertexSolver_SolveWithShadowHistory(t *testing.T) {
	t.Parallel()

	s := solver.NewShadowVertexSolver[numeric.Rat]()
	result, err := s.SolveWithShadowHistory(solver.FromProblem(maxProblem(t)))
	require.NoError(t, err)
	require.Equal(t, solver.StatusOptimal, result.Solution.Status)
	require.Equal(t, rat(9), result.Solution.Objective)

	require.Len(t, result.ShadowPoints, len(result.History)+1)
	last := result.History[len(result.History)-1]
	lastPoint := result.ShadowPoints[len(result.ShadowPoints)-1]
	require.Equal(t, last.ObjectiveValue, lastPoint[1])
}

func TestShadowVertexSolver_SetAuxiliaryObjectiveRejectsBadShape(t *testing.T) {
	t.Parallel()

	s := solver.NewShadowVertexSolver[numeric.Rat]()
	s.Init(solver.FromProblem(maxProblem(t)))
	err := s.SetAuxiliaryObjective([]numeric.Rat{rat(1)}, []numeric.Rat{rat(0), rat(0)}, rat(0))
	require.ErrorIs(t, err, solver.ErrAuxiliaryObjectiveShape)
}

func TestShadowVertexSolver_SetAuxiliaryObjectiveBeforeInitErrors(t *testing.T) {
	t.Parallel()

	s := solver.NewShadowVertexSolver[numeric.Rat]()
	err := s.SetAuxiliaryObjective([]numeric.Rat{rat(1)}, []numeric.Rat{rat(0)}, rat(0))
	require.ErrorIs(t, err, solver.ErrNotInitialized)
}

func TestShadowVertexSolver_StepBeforeInitErrors(t *testing.T) {
	t.Parallel()

	s := solver.NewShadowVertexSolver[numeric.Rat]()
	_, err := s.Step()
	require.ErrorIs(t, err, solver.ErrNotInitialized)
}
