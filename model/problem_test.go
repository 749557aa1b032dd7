package model_test

import (
	"testing"

	"github.com/katalvlaran/linprog/model"
	"github.com/katalvlaran/linprog/numeric"
	"github.com/stretchr/testify/require"
)

func rat(n int64) numeric.Rat { return numeric.RatFromInt(n) }

func TestConstraint_NormaliseFlipsNegativeRHS(t *testing.T) {
	t.Parallel()

	c := model.Constraint[numeric.Rat]{
		Coefficients: []numeric.Rat{rat(1), rat(-2)},
		Relation:     model.LessEqual,
		RHS:          rat(-5),
	}
	n := c.Normalise()
	require.True(t, n.RHS.Equal(rat(5)))
	require.True(t, n.Coefficients[0].Equal(rat(-1)))
	require.True(t, n.Coefficients[1].Equal(rat(2)))
	require.Equal(t, model.GreaterEqual, n.Relation)
}

func TestConstraint_NormaliseLeavesEqualityRelationAlone(t *testing.T) {
	t.Parallel()

	c := model.Constraint[numeric.Rat]{Coefficients: []numeric.Rat{rat(1)}, Relation: model.Equal, RHS: rat(-3)}
	n := c.Normalise()
	require.Equal(t, model.Equal, n.Relation)
	require.True(t, n.RHS.Equal(rat(3)))
}

func TestNewProblem_RejectsEmptyObjective(t *testing.T) {
	t.Parallel()

	_, err := model.NewProblem[numeric.Rat](nil, model.Max)
	require.ErrorIs(t, err, model.ErrEmptyObjective)
}

func TestAddConstraint_RejectsWidthMismatch(t *testing.T) {
	t.Parallel()

	p, err := model.NewProblem([]numeric.Rat{rat(1), rat(1)}, model.Max)
	require.NoError(t, err)

	err = p.AddConstraint([]numeric.Rat{rat(1)}, model.LessEqual, rat(5))
	require.ErrorIs(t, err, model.ErrConstraintWidthMismatch)
}

func TestIntoTableauForm_ObjectiveNegatedForMax(t *testing.T) {
	t.Parallel()

	p, err := model.NewProblem([]numeric.Rat{rat(3), rat(5)}, model.Max)
	require.NoError(t, err)
	require.NoError(t, p.AddConstraint([]numeric.Rat{rat(1), rat(1)}, model.LessEqual, rat(10)))

	tab, err := p.IntoTableauForm()
	require.NoError(t, err)

	v := tab.ZRow().At(0)
	require.True(t, v.Equal(rat(-3)))
	v = tab.ZRow().At(1)
	require.True(t, v.Equal(rat(-5)))
}

func TestIntoStandardForm_SurplusAndSlackColumns(t *testing.T) {
	t.Parallel()

	// Max 3x + 2y; 2x+y <= 10; x+y >= 4
	p, err := model.NewProblem([]numeric.Rat{rat(3), rat(2)}, model.Max)
	require.NoError(t, err)
	require.NoError(t, p.AddConstraint([]numeric.Rat{rat(2), rat(1)}, model.LessEqual, rat(10)))
	require.NoError(t, p.AddConstraint([]numeric.Rat{rat(1), rat(1)}, model.GreaterEqual, rat(4)))

	sf, err := p.IntoStandardForm()
	require.NoError(t, err)

	require.Equal(t, 4, sf.A.Cols())
	require.Equal(t, 2, sf.A.Rows())

	require.True(t, sf.C[0].Equal(rat(-3)))
	require.True(t, sf.C[1].Equal(rat(-2)))
	require.True(t, sf.C[2].IsZero())
	require.True(t, sf.C[3].IsZero())

	v, err := sf.A.At(1, 3)
	require.NoError(t, err)
	require.True(t, v.Equal(rat(-1)))
}

func TestIntoTableauForm_MixedRelationsBasisAndSlack(t *testing.T) {
	t.Parallel()

	p, err := model.NewProblem([]numeric.Rat{rat(1), rat(1)}, model.Max)
	require.NoError(t, err)
	require.NoError(t, p.AddConstraint([]numeric.Rat{rat(1), rat(0)}, model.LessEqual, rat(5)))
	require.NoError(t, p.AddConstraint([]numeric.Rat{rat(0), rat(1)}, model.GreaterEqual, rat(2)))
	require.NoError(t, p.AddConstraint([]numeric.Rat{rat(1), rat(1)}, model.Equal, rat(10)))

	tab, err := p.IntoTableauForm()
	require.NoError(t, err)

	require.Equal(t, 3, tab.Rows())
	require.Equal(t, 6, tab.Cols())

	require.Equal(t, []int{0, 1}, tab.Nonbasis())
	require.Equal(t, []int{2, 3, 4}, tab.Basis())
	require.True(t, tab.RHS()[2].Equal(rat(10)))

	slackRow1Col1, err := tab.At(1, tab.NVars()+1)
	require.NoError(t, err)
	require.True(t, slackRow1Col1.Equal(rat(-1)))
}

func TestIntoTableauForm_NoConstraints(t *testing.T) {
	t.Parallel()

	p, err := model.NewProblem([]numeric.Rat{rat(1)}, model.Min)
	require.NoError(t, err)

	_, err = p.IntoTableauForm()
	require.ErrorIs(t, err, model.ErrNoConstraints)
}
