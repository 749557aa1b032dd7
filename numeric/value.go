package numeric

// Value is the scalar algebra every generic component in this module is
// written against. Zero and One are instance methods rather than package
// functions because Go generics give us no way to ask a bare type parameter
// for "its" zero value when that zero value isn't the language's own zero
// value (Rat's zero value, for instance, has a zero denominator and is not
// itself a valid Rat) — callers hold an existing T and ask it to manufacture
// a canonical zero or one, ignoring the receiver's own value.
type Value[T any] interface {
	// Zero returns the additive identity of this scalar family.
	Zero() T
	// One returns the multiplicative identity of this scalar family.
	One() T

	// IsZero reports whether the receiver equals Zero().
	IsZero() bool
	// Sign returns -1, 0, or 1 according to the receiver's sign.
	Sign() int
	// IsStrictlyPositive reports strict positivity. For exact scalars this
	// is Sign() > 0; for floating scalars it goes through an epsilon
	// threshold so the shadow-vertex denominator check isn't fooled by
	// rounding error near a parametric breakpoint.
	IsStrictlyPositive() bool

	// Equal reports value equality with other.
	Equal(other T) bool

	Neg() T
	Add(other T) T
	Sub(other T) T
	Mul(other T) T
	// Div divides the receiver by other. Division by zero is a contract
	// violation (never produced by well-formed pivot arithmetic, since
	// divisors are always pivot elements already known to be nonzero) and
	// panics rather than returning an error, matching this module's
	// fail-fast treatment of shape and arithmetic contract violations.
	Div(other T) T
}
