// Package model is the canonicalization pipeline from a user-facing linear
// program down to the pivot-ready tableau.Tableau: Problem (objective +
// Goal + Constraints) -> StandardForm (shared slack-pool matrix form) or
// directly -> tableau.Tableau (square slack, canonical basis).
//
// Relation accepts the mathematical symbols (≤, ≥, =) and their ASCII
// spellings (leq, geq, eq, ==); anything else is a value error caught at
// the boundary, never a panic.
package model
