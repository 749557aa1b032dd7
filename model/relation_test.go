package model_test

import (
	"testing"

	"github.com/katalvlaran/linprog/model"
	"github.com/stretchr/testify/require"
)

func TestParseRelation_AcceptsAllSpellings(t *testing.T) {
	t.Parallel()

	cases := map[string]model.Relation{
		"≤":  model.LessEqual,
		"leq": model.LessEqual,
		"<=": model.LessEqual,
		"≥":  model.GreaterEqual,
		"geq": model.GreaterEqual,
		">=": model.GreaterEqual,
		"=":  model.Equal,
		"eq": model.Equal,
		"==": model.Equal,
	}
	for input, want := range cases {
		got, err := model.ParseRelation(input)
		require.NoError(t, err, "input %q", input)
		require.Equal(t, want, got, "input %q", input)
	}
}

func TestParseRelation_RejectsUnknown(t *testing.T) {
	t.Parallel()

	_, err := model.ParseRelation("!=")
	require.ErrorIs(t, err, model.ErrUnknownRelation)
}
