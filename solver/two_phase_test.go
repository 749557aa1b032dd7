// SPDX-License-Identifier: MIT
package solver_test

import (
	"testing"

	"github.com/katalvlaran/linprog/model"
	"github.com/katalvlaran/linprog/numeric"
	"github.com/katalvlaran/linprog/solver"
	"github.com/stretchr/testify/require"
)

func TestTwoPhaseSolver_SolvesMaxProblem(t *testing.T) {
	t.Parallel()

	s := solver.NewTwoPhaseSolver[numeric.Rat]()
	sol, err := s.Solve(solver.FromProblem(maxProblem(t)))
	require.NoError(t, err)
	require.Equal(t, solver.StatusOptimal, sol.Status)
	require.Equal(t, rat(1), sol.X[0])
	require.Equal(t, rat(3), sol.X[1])
	require.Equal(t, rat(9), sol.Objective)
}

func TestTwoPhaseSolver_StepwiseRunReachesOptimal(t *testing.T) {
	t.Parallel()

	s := solver.NewTwoPhaseSolver[numeric.Rat]()
	s.Init(solver.FromProblem(maxProblem(t)))
	ok, err := s.FindInitialBFS()
	require.NoError(t, err)
	require.True(t, ok)

	for !s.IsDone() {
		_, err := s.Step()
		require.NoError(t, err)
	}

	last, ok := s.LastStep()
	require.True(t, ok)
	require.Equal(t, solver.StatusOptimal, last.Status)
}

func TestTwoPhaseSolver_StepBeforeInitErrors(t *testing.T) {
	t.Parallel()

	s := solver.NewTwoPhaseSolver[numeric.Rat]()
	_, err := s.Step()
	require.ErrorIs(t, err, solver.ErrNotInitialized)
}

func TestTwoPhaseSolver_MinProblemAtOrigin(t *testing.T) {
	t.Parallel()

	p, err := model.NewProblem([]numeric.Rat{rat(1), rat(1)}, model.Min)
	require.NoError(t, err)
	require.NoError(t, p.AddConstraint([]numeric.Rat{rat(1), rat(0)}, model.LessEqual, rat(5)))
	require.NoError(t, p.AddConstraint([]numeric.Rat{rat(0), rat(1)}, model.LessEqual, rat(5)))

	sol, err := solver.NewTwoPhaseSolver[numeric.Rat]().Solve(solver.FromProblem(p))
	require.NoError(t, err)
	require.Equal(t, solver.StatusOptimal, sol.Status)
	require.Equal(t, rat(0), sol.X[0])
	require.Equal(t, rat(0), sol.X[1])
	require.Equal(t, rat(0), sol.Objective)
}
