// SPDX-License-Identifier: MIT
package numeric

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Float64Epsilon is the tolerance used by Float64.IsStrictlyPositive. Spec
// §9 calls for "T::EPSILON for the two IEEE widths"; float64's machine
// epsilon is too tight to be useful against accumulated rounding in a
// chain of pivots, so this uses a looser, still-small, fixed tolerance in
// the same spirit.
const Float64Epsilon = 1e-9

// Float64 is a floating-point instantiation of Value[Float64]. It trades
// the exactness of Rat for host interoperability with plain float64 data;
// its IsStrictlyPositive is epsilon-aware specifically so the shadow-vertex
// solver's parametric denominator check (spec §4.H.3) isn't triggered by
// rounding noise straddling zero.
type Float64 float64

// String renders the underlying float64.
func (f Float64) String() string { return fmt.Sprintf("%g", float64(f)) }

// Zero returns 0.
func (f Float64) Zero() Float64 { return 0 }

// One returns 1.
func (f Float64) One() Float64 { return 1 }

// IsZero reports whether the value is exactly zero (no epsilon tolerance;
// use IsStrictlyPositive for tolerant comparisons against zero).
func (f Float64) IsZero() bool { return float64(f) == 0 }

// Sign returns -1, 0, or 1 by exact comparison against zero.
func (f Float64) Sign() int {
	switch {
	case f < 0:
		return -1
	case f > 0:
		return 1
	default:
		return 0
	}
}

// IsStrictlyPositive reports whether f exceeds Float64Epsilon, using
// gonum's floats.EqualWithinAbs to decide whether f is indistinguishable
// from zero before falling back to a plain sign check.
func (f Float64) IsStrictlyPositive() bool {
	if floats.EqualWithinAbs(float64(f), 0, Float64Epsilon) {
		return false
	}
	return f > 0
}

// Equal reports exact equality (no tolerance).
func (f Float64) Equal(other Float64) bool { return f == other }

// Neg returns -f.
func (f Float64) Neg() Float64 { return -f }

// Add returns f + other.
func (f Float64) Add(other Float64) Float64 { return f + other }

// Sub returns f - other.
func (f Float64) Sub(other Float64) Float64 { return f - other }

// Mul returns f * other.
func (f Float64) Mul(other Float64) Float64 { return f * other }

// Div returns f / other. Panics when other is zero, mirroring Rat.Div's
// contract: dividing by a zero scalar is always a caller error here, never
// a state pivot arithmetic can reach on its own.
func (f Float64) Div(other Float64) Float64 {
	if other == 0 {
		panic("numeric: division by zero float64")
	}
	return f / other
}

// FromFloat64Raw builds a Float64 with no scaling, unlike RatFromFloat64;
// the floating instantiation doesn't need the integer-interchange dance
// since it already speaks the host's native numeric type.
func FromFloat64Raw(f float64) Float64 { return Float64(f) }
