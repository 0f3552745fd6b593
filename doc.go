// Package nalgebra provides dense linear-algebra decompositions for Go,
// backed by vendor-optimized LAPACK routines.
//
// The numerical heavy lifting — numerically stable factorization, pivot
// bookkeeping, triangular solves — is delegated to the native library; this
// module shapes inputs and outputs and dispatches to the routine variant for
// the scalar kind in use (float32, float64, complex64, complex128).
//
// # Packages
//
//   - dense: generic row-major dense matrices over the four scalar kinds
//   - lapack: the per-scalar routine contract and backend registry
//   - lu: LU decomposition with partial pivoting (solve, inverse, permutation)
//
// # Backends
//
// Built with cgo, all four scalar kinds are served by the system LAPACK
// through gonum.org/v1/netlib. Without cgo, float64 falls back to gonum's
// pure-Go implementation and the remaining kinds are unavailable.
//
// # Quick Start
//
//	m := dense.New(2, 2, []float64{
//		4, 3,
//		6, 3,
//	})
//	d := lu.New(m)
//
//	b := dense.New(2, 1, []float64{1, 2})
//	x, ok := d.Solve(b)
//	if !ok {
//		// the matrix is singular
//	}
package nalgebra
