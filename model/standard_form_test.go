package model_test

import (
	"testing"

	"github.com/katalvlaran/linprog/model"
	"github.com/katalvlaran/linprog/numeric"
	"github.com/stretchr/testify/require"
)

func TestStandardForm_IntoTableau_RoundTrip(t *testing.T) {
	t.Parallel()

	// Max 3x + 2y; 2x+y <= 10; x+y >= 4 (every row has exactly one slack).
	p, err := model.NewProblem([]numeric.Rat{rat(3), rat(2)}, model.Max)
	require.NoError(t, err)
	require.NoError(t, p.AddConstraint([]numeric.Rat{rat(2), rat(1)}, model.LessEqual, rat(10)))
	require.NoError(t, p.AddConstraint([]numeric.Rat{rat(1), rat(1)}, model.GreaterEqual, rat(4)))

	sf, err := p.IntoStandardForm()
	require.NoError(t, err)

	tab, err := sf.IntoTableau()
	require.NoError(t, err)

	require.Equal(t, 2, tab.NVars())
	require.Equal(t, 2, tab.NSlack())

	v, err := tab.At(0, 0)
	require.NoError(t, err)
	require.True(t, v.Equal(rat(2)))

	slackDiag, err := tab.At(1, tab.NVars()+1)
	require.NoError(t, err)
	require.True(t, slackDiag.Equal(rat(-1)))

	require.True(t, tab.RHS()[1].Equal(rat(4)))
}

func TestStandardForm_IntoTableau_RejectsEqualityRow(t *testing.T) {
	t.Parallel()

	p, err := model.NewProblem([]numeric.Rat{rat(1), rat(1)}, model.Min)
	require.NoError(t, err)
	require.NoError(t, p.AddConstraint([]numeric.Rat{rat(1), rat(1)}, model.Equal, rat(10)))
	require.NoError(t, p.AddConstraint([]numeric.Rat{rat(1), rat(0)}, model.LessEqual, rat(5)))

	sf, err := p.IntoStandardForm()
	require.NoError(t, err)

	_, err = sf.IntoTableau()
	require.ErrorIs(t, err, model.ErrEqualityUnsupported)
}

func TestNewStandardForm_DimensionMismatch(t *testing.T) {
	t.Parallel()

	p, err := model.NewProblem([]numeric.Rat{rat(1), rat(1)}, model.Max)
	require.NoError(t, err)
	require.NoError(t, p.AddConstraint([]numeric.Rat{rat(1), rat(1)}, model.LessEqual, rat(4)))
	sf, err := p.IntoStandardForm()
	require.NoError(t, err)

	_, err = model.NewStandardForm(sf.A, []numeric.Rat{rat(1), rat(2)}, sf.C, sf.Goal, sf.SlackIndices)
	require.ErrorIs(t, err, model.ErrDimensionMismatch)
}
