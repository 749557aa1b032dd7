// Package numeric defines the scalar algebra the rest of the engine is
// written against.
//
// Every component above this package (matrix, tableau, model, solver) is
// generic over a type satisfying Value[T]: zero, one, negation, the four
// field operations, total comparison against zero, and a strictly-positive
// predicate. Rat is the reference instantiation — an exact rational kept
// reduced to lowest terms over int64 numerator/denominator — so that pivot
// arithmetic is reproducible and cycling detection is unambiguous. Float64
// is a convenience instantiation for callers that accept floating-point
// risk; its IsStrictlyPositive goes through an epsilon threshold so the
// shadow-vertex solver's parametric denominator check isn't tripped by
// rounding noise.
package numeric
