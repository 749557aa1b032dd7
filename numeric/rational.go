// SPDX-License-Identifier: MIT
package numeric

import (
	"errors"
	"fmt"
	"math"
)

// ErrZeroDenominator is returned by constructors and boundary conversions
// that would otherwise produce a rational with a zero denominator.
var ErrZeroDenominator = errors.New("numeric: zero denominator")

// interchangeScale is the scaling factor applied when a float arriving from
// a host is converted to an exact rational (spec §6): scale by 10^12 and
// round to the nearest integer pair.
const interchangeScale = 1_000_000_000_000

// ratErrorf wraps an underlying error with the offending constructor/method.
func ratErrorf(op string, err error) error {
	return fmt.Errorf("numeric.%s: %w", op, err)
}

// Rat is an exact rational kept reduced to lowest terms, with the
// denominator always held strictly positive. The zero value of Rat is not
// itself a valid rational (denominator 0); always construct via NewRat,
// RatFromInt, RatFromFloat64, or the Zero/One methods.
type Rat struct {
	num, den int64
}

var (
	ratZero = Rat{num: 0, den: 1}
	ratOne  = Rat{num: 1, den: 1}
)

// NewRat builds a reduced rational num/den. It fails fast with
// ErrZeroDenominator when den is zero; this is the one boundary at which
// the otherwise-panicking Rat arithmetic instead returns an error, because
// the denominator usually arrives from parsed or host-supplied data rather
// than from this package's own pivot arithmetic.
func NewRat(num, den int64) (Rat, error) {
	if den == 0 {
		return Rat{}, ratErrorf("NewRat", ErrZeroDenominator)
	}
	return reduceRat(num, den), nil
}

// RatFromInt builds the rational n/1.
func RatFromInt(n int64) Rat {
	return Rat{num: n, den: 1}
}

func gcdInt64(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func reduceRat(num, den int64) Rat {
	if den < 0 {
		num, den = -num, -den
	}
	if num == 0 {
		return Rat{num: 0, den: 1}
	}
	g := gcdInt64(num, den)
	return Rat{num: num / g, den: den / g}
}

// Numerator returns the reduced numerator.
func (r Rat) Numerator() int64 { return r.num }

// Denominator returns the reduced, strictly positive denominator.
func (r Rat) Denominator() int64 { return r.den }

// String renders "n/d", or a bare integer when the denominator is 1.
func (r Rat) String() string {
	if r.den == 1 {
		return fmt.Sprintf("%d", r.num)
	}
	return fmt.Sprintf("%d/%d", r.num, r.den)
}

// Zero returns 0/1, irrespective of the receiver's own value.
func (r Rat) Zero() Rat { return ratZero }

// One returns 1/1, irrespective of the receiver's own value.
func (r Rat) One() Rat { return ratOne }

// IsZero reports whether the receiver is exactly zero.
func (r Rat) IsZero() bool { return r.num == 0 }

// Sign returns -1, 0, or 1.
func (r Rat) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	default:
		return 0
	}
}

// IsStrictlyPositive is exact for Rat: equivalent to Sign() > 0.
func (r Rat) IsStrictlyPositive() bool { return r.num > 0 }

// Equal reports exact value equality (both sides are already reduced).
func (r Rat) Equal(other Rat) bool { return r.num == other.num && r.den == other.den }

// Neg returns -r.
func (r Rat) Neg() Rat { return Rat{num: -r.num, den: r.den} }

// Add returns r + other.
func (r Rat) Add(other Rat) Rat {
	return reduceRat(r.num*other.den+other.num*r.den, r.den*other.den)
}

// Sub returns r - other.
func (r Rat) Sub(other Rat) Rat {
	return reduceRat(r.num*other.den-other.num*r.den, r.den*other.den)
}

// Mul returns r * other.
func (r Rat) Mul(other Rat) Rat {
	return reduceRat(r.num*other.num, r.den*other.den)
}

// Div returns r / other. Panics if other is zero: a pivot never divides by
// a zero scalar (the ratio test and pivot-element inverse both guard this),
// so a zero divisor reaching here is a contract violation in caller code.
func (r Rat) Div(other Rat) Rat {
	if other.num == 0 {
		panic("numeric: division by zero rational")
	}
	return reduceRat(r.num*other.den, r.den*other.num)
}

// Int64Pair returns the (numerator, denominator) interchange form used at
// host boundaries (spec §6).
func (r Rat) Int64Pair() (int64, int64) { return r.num, r.den }

// RatFromFloat64 converts a float arriving from a host by scaling by 10^12
// and rounding to the nearest integer pair, per spec §6.
func RatFromFloat64(f float64) Rat {
	scaled := math.Round(f * interchangeScale)
	return reduceRat(int64(scaled), interchangeScale)
}

// Float64 renders the rational as the nearest float64, for display and for
// interoperating with float-only collaborators (formatting, plotting).
func (r Rat) Float64() float64 {
	return float64(r.num) / float64(r.den)
}
