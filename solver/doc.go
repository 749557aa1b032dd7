// Package solver runs a simplex strategy to completion over a
// tableau.Tableau: PrimalSolver (Dantzig's most-negative-reduced-cost
// rule), TwoPhaseSolver (an auxiliary-objective d-to-c Bland sweep that
// avoids cycling), and ShadowVertexSolver (the parametric shadow-vertex
// rule, walking the path traced by (1-λ)r_d + λr_c as λ goes from 0 to 1).
//
// Every strategy implements the same Solver[T] contract: Init loads a
// Problem or StandardForm and builds the tableau; FindInitialBFS checks
// feasibility before stepping; Step performs one pivot; Solve runs the
// whole thing and reports a Solution.
//
// Options are configured with the functional-options pattern: WithLogger
// attaches a zerolog.Logger (the package defaults to zerolog.Nop(), so a
// caller who never configures logging pays nothing), WithMaxIterations
// caps the pivot count against non-terminating degenerate inputs.
package solver
