// Package lu implements the LU decomposition with partial (row) pivoting,
// delegating the factorization, permutation and solve work to the native
// LAPACK routine set registered for the scalar kind.
//
// A decomposition of an m×n matrix M has three parts:
//   - L, an m×min(m,n) lower-triangular matrix with unit diagonal,
//   - U, a  min(m,n)×n upper-triangular matrix,
//   - P, an m×m row-permutation matrix,
//
// such that M = P·L·U. The permutation is kept in the compact LAPACK form,
// a vector of one-based row-swap indices; the full matrix P is only
// materialized on request.
//
// Errors follow the two-tier convention of the module: shape violations
// (solving against a non-square factorization, mismatched right-hand-side
// rows) are programmer errors and panic with a structured error from
// pkg/errors, while numerical degeneracy (an exactly singular matrix) is
// reported through a false second return and never panics.
package lu
