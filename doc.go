// Package linprog is an exact-rational linear-programming engine: dense
// matrix/row primitives, a simplex tableau, a canonicalization pipeline
// from a user-facing Problem down to a pivot-ready Tableau, a pivot
// engine, and three simplex solver strategies built on top of it.
//
// Subpackages:
//
//	numeric/ — the Value[T] scalar constraint, the exact-rational Rat
//	           and the floating Float64 instantiations every other
//	           package is generic over.
//	matrix/  — Matrix[T], Row[T]/RowMut[T], elementwise arithmetic, and
//	           the fused SubAssignScaled primitive pivoting is built on.
//	tableau/ — Tableau[T], the logical coefficients/slack/rhs column
//	           partition, Dantzig and Bland pivot-column rules, the
//	           ratio test, and Pivot itself.
//	model/   — Problem[T] and Constraint[T] (the user-facing form),
//	           Relation/Goal, and the canonicalization pipeline down to
//	           StandardForm[T] and tableau.Tableau[T].
//	solver/  — the Solver[T] driver contract and three strategies:
//	           PrimalSolver (Dantzig), TwoPhaseSolver (Bland, a d-to-c
//	           auxiliary-objective sweep), and ShadowVertexSolver (the
//	           parametric shadow-vertex rule).
//
// A typical caller builds a Problem, adds constraints, and hands it to a
// solver:
//
//	p, _ := model.NewProblem([]numeric.Rat{...}, model.Max)
//	p.AddConstraint([]numeric.Rat{...}, model.LessEqual, rhs)
//	sol, err := solver.NewPrimalSolver[numeric.Rat]().Solve(solver.FromProblem(p))
//
// See DESIGN.md for how each package is grounded against its reference
// material.
package linprog
