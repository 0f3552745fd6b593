package lapack

import (
	"gonum.org/v1/gonum/blas"
	lapackgonum "gonum.org/v1/gonum/lapack/gonum"
)

// gonumFloat64 serves the float64 routine set from gonum's pure-Go LAPACK
// implementation. It is the default for float64 on every build, so the
// float64 path works without cgo; the lapacke backend replaces it when cgo
// is enabled.
//
// gonum uses zero-based pivot indices and row ranges where LAPACK uses
// one-based, so the adapter converts at the boundary.
type gonumFloat64 struct {
	impl lapackgonum.Implementation
}

func (g gonumFloat64) Getrf(m, n int, a []float64, lda int, ipiv []int32) bool {
	ip := make([]int, len(ipiv))
	ok := g.impl.Dgetrf(m, n, a, lda, ip)
	for i, v := range ip {
		ipiv[i] = int32(v) + 1 // Transform to one-indexed.
	}
	return ok
}

func (g gonumFloat64) Laswp(n int, a []float64, lda int, k1, k2 int, ipiv []int32, incX int) {
	ip := make([]int, len(ipiv))
	for i, v := range ipiv {
		ip[i] = int(v) - 1 // Transform to zero-indexed.
	}
	g.impl.Dlaswp(n, a, lda, k1-1, k2-1, ip, incX)
}

func (g gonumFloat64) Getrs(trans blas.Transpose, n, nrhs int, a []float64, lda int, ipiv []int32, b []float64, ldb int) {
	if trans == blas.ConjTrans {
		// The conjugate transpose of a real matrix is its transpose.
		trans = blas.Trans
	}
	ip := make([]int, len(ipiv))
	for i, v := range ipiv {
		ip[i] = int(v) - 1 // Transform to zero-indexed.
	}
	g.impl.Dgetrs(trans, n, nrhs, a, lda, ip, b, ldb)
}

func (g gonumFloat64) Getri(n int, a []float64, lda int, ipiv []int32, work []float64, lwork int) bool {
	ip := make([]int, len(ipiv))
	for i, v := range ipiv {
		ip[i] = int(v) - 1 // Transform to zero-indexed.
	}
	return g.impl.Dgetri(n, a, lda, ip, work, lwork)
}
