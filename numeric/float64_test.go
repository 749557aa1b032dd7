package numeric_test

import (
	"testing"

	"github.com/katalvlaran/linprog/numeric"
	"github.com/stretchr/testify/require"
)

func TestFloat64_Arithmetic(t *testing.T) {
	t.Parallel()

	a := numeric.Float64(1.5)
	b := numeric.Float64(0.5)

	require.Equal(t, numeric.Float64(2.0), a.Add(b))
	require.Equal(t, numeric.Float64(1.0), a.Sub(b))
	require.Equal(t, numeric.Float64(0.75), a.Mul(b))
	require.Equal(t, numeric.Float64(3.0), a.Div(b))
}

func TestFloat64_IsStrictlyPositiveEpsilon(t *testing.T) {
	t.Parallel()

	require.False(t, numeric.Float64(numeric.Float64Epsilon/2).IsStrictlyPositive())
	require.True(t, numeric.Float64(numeric.Float64Epsilon*10).IsStrictlyPositive())
	require.False(t, numeric.Float64(-1).IsStrictlyPositive())
}

func TestFloat64_DivByZeroPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		numeric.Float64(1).Div(numeric.Float64(0))
	})
}
