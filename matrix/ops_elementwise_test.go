package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linprog/matrix"
	"github.com/katalvlaran/linprog/numeric"
	"github.com/stretchr/testify/require"
)

func ratMatrix(t *testing.T, rows, cols int, vals ...int64) *matrix.Matrix[numeric.Rat] {
	t.Helper()
	require.Len(t, vals, rows*cols)
	m, err := matrix.NewMatrix[numeric.Rat](rows, cols, numeric.RatFromInt(0))
	require.NoError(t, err)
	for i, v := range vals {
		require.NoError(t, m.Set(i/cols, i%cols, numeric.RatFromInt(v)))
	}
	return m
}

func TestMatrix_AddSubDimensionMismatch(t *testing.T) {
	t.Parallel()

	a := ratMatrix(t, 2, 2, 1, 2, 3, 4)
	b := ratMatrix(t, 2, 3, 1, 2, 3, 4, 5, 6)

	_, err := a.Add(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = a.Sub(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMatrix_AddSubScale(t *testing.T) {
	t.Parallel()

	a := ratMatrix(t, 2, 2, 1, 2, 3, 4)
	b := ratMatrix(t, 2, 2, 4, 3, 2, 1)

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.True(t, sum.Equal(ratMatrix(t, 2, 2, 5, 5, 5, 5)))

	diff, err := a.Sub(b)
	require.NoError(t, err)
	require.True(t, diff.Equal(ratMatrix(t, 2, 2, -3, -1, 1, 3)))

	scaled := a.Scale(numeric.RatFromInt(2))
	require.True(t, scaled.Equal(ratMatrix(t, 2, 2, 2, 4, 6, 8)))
}

func TestMatrix_Dot(t *testing.T) {
	t.Parallel()

	// [1 2]   [5 6]   [1*5+2*7  1*6+2*8]   [19 22]
	// [3 4] x [7 8] = [3*5+4*7  3*6+4*8] = [43 50]
	a := ratMatrix(t, 2, 2, 1, 2, 3, 4)
	b := ratMatrix(t, 2, 2, 5, 6, 7, 8)

	got, err := a.Dot(b)
	require.NoError(t, err)
	require.True(t, got.Equal(ratMatrix(t, 2, 2, 19, 22, 43, 50)))
}

func TestMatrix_DotDimensionMismatch(t *testing.T) {
	t.Parallel()

	a := ratMatrix(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := ratMatrix(t, 2, 2, 1, 2, 3, 4)

	_, err := a.Dot(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMatrix_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	a := ratMatrix(t, 1, 2, 1, 2)
	b := a.Clone()
	require.NoError(t, b.Set(0, 0, numeric.RatFromInt(99)))

	v, err := a.At(0, 0)
	require.NoError(t, err)
	require.True(t, v.Equal(numeric.RatFromInt(1))) // clone mutation does not leak back
}
