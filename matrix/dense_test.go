package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linprog/matrix"
	"github.com/katalvlaran/linprog/numeric"
	"github.com/stretchr/testify/require"
)

func TestNewMatrix_InvalidDimensions(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewMatrix[numeric.Rat](0, 3, numeric.RatFromInt(0))
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // zero rows rejected

	_, err = matrix.NewMatrix[numeric.Rat](3, -1, numeric.RatFromInt(0))
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // negative cols rejected
}

func TestMatrix_AtSetRoundTrip(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewMatrix[numeric.Rat](2, 2, numeric.RatFromInt(0))
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, numeric.RatFromInt(7)))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.True(t, v.Equal(numeric.RatFromInt(7)))

	// untouched entries remain zero.
	z, err := m.At(1, 0)
	require.NoError(t, err)
	require.True(t, z.IsZero())
}

func TestMatrix_AtOutOfBounds(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewMatrix[numeric.Rat](2, 2, numeric.RatFromInt(0))
	require.NoError(t, err)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	_, err = m.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

func TestMatrix_SwapRowsAndColumns(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewMatrix[numeric.Rat](2, 2, numeric.RatFromInt(0))
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, numeric.RatFromInt(1)))
	require.NoError(t, m.Set(0, 1, numeric.RatFromInt(2)))
	require.NoError(t, m.Set(1, 0, numeric.RatFromInt(3)))
	require.NoError(t, m.Set(1, 1, numeric.RatFromInt(4)))

	require.NoError(t, m.SwapRows(0, 1))
	v, _ := m.At(0, 0)
	require.True(t, v.Equal(numeric.RatFromInt(3)))

	require.NoError(t, m.SwapColumns(0, 1))
	v, _ = m.At(0, 0)
	require.True(t, v.Equal(numeric.RatFromInt(4)))
}

func TestMatrix_PushRowLengthMismatch(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewMatrix[numeric.Rat](1, 3, numeric.RatFromInt(0))
	require.NoError(t, err)

	err = m.PushRow([]numeric.Rat{numeric.RatFromInt(1), numeric.RatFromInt(2)})
	require.ErrorIs(t, err, matrix.ErrRowLengthMismatch)
}

func TestMatrix_PushRowAndEmptyRow(t *testing.T) {
	t.Parallel()

	m, err := matrix.WithCapacity[numeric.Rat](2, 2, numeric.RatFromInt(0))
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())

	require.NoError(t, m.PushRow([]numeric.Rat{numeric.RatFromInt(1), numeric.RatFromInt(2)}))
	m.PushEmptyRow()
	require.Equal(t, 2, m.Rows())

	z, err := m.At(1, 0)
	require.NoError(t, err)
	require.True(t, z.IsZero())
}

func TestMatrix_PushColumn(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewMatrix[numeric.Rat](2, 1, numeric.RatFromInt(0))
	require.NoError(t, err)

	require.NoError(t, m.PushColumn([]numeric.Rat{numeric.RatFromInt(5), numeric.RatFromInt(6)}))
	require.Equal(t, 2, m.Cols())

	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.True(t, v.Equal(numeric.RatFromInt(6)))

	require.NoError(t, m.PushColumn(nil))
	z, err := m.At(0, 2)
	require.NoError(t, err)
	require.True(t, z.IsZero())

	err = m.PushColumn([]numeric.Rat{numeric.RatFromInt(1)})
	require.ErrorIs(t, err, matrix.ErrRowLengthMismatch)
}
