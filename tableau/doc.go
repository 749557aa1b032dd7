// Package tableau implements the simplex tableau: the augmented system a
// pivot engine operates on directly, plus the pivot primitives (column
// rules, ratio test, Gauss-Jordan pivot) shared by every solver strategy in
// the solver package.
//
// A Tableau[T] partitions its logical columns into three physical pieces —
// structural coefficients (m×n), slack/surplus coefficients (m×m), and the
// right-hand side (length m) — with a parallel z-row carrying the same
// partition for the objective. Logical column j addresses coefficients when
// j < n, slack when n <= j < n+m, and rhs when j == n+m; At/Set route
// through that partition so callers can treat the tableau as one flat
// (row, col) grid.
//
// Tableau is generic over numeric.Value[T]; the reference instantiation is
// numeric.Rat for exact pivoting.
package tableau
