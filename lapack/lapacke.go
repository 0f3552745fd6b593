//go:build cgo

package lapack

import (
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/netlib/lapack/lapacke"
)

// This file installs the LAPACKE-backed routine sets, which use the system
// LAPACK (Accelerate on macOS, OpenBLAS or reference LAPACK on Linux) when
// CGO is available. The lapacke wrappers panic on illegal-argument
// diagnostics and return false for an exactly singular matrix, the same
// contract Routines documents.

func init() {
	float32Routines = lapackeFloat32{}
	float64Routines = lapackeFloat64{}
	complex64Routines = lapackeComplex64{}
	complex128Routines = lapackeComplex128{}
	log.Debug().Str("backend", "lapacke").Msg("native LAPACK routines installed")
}

type lapackeFloat32 struct{}

func (lapackeFloat32) Getrf(m, n int, a []float32, lda int, ipiv []int32) bool {
	return lapacke.Sgetrf(m, n, a, lda, ipiv)
}

func (lapackeFloat32) Laswp(n int, a []float32, lda int, k1, k2 int, ipiv []int32, incX int) {
	lapacke.Slaswp(n, a, lda, k1, k2, ipiv, incX)
}

func (lapackeFloat32) Getrs(trans blas.Transpose, n, nrhs int, a []float32, lda int, ipiv []int32, b []float32, ldb int) {
	lapacke.Sgetrs(trans, n, nrhs, a, lda, ipiv, b, ldb)
}

func (lapackeFloat32) Getri(n int, a []float32, lda int, ipiv []int32, work []float32, lwork int) bool {
	return lapacke.Sgetri(n, a, lda, ipiv, work, lwork)
}

type lapackeFloat64 struct{}

func (lapackeFloat64) Getrf(m, n int, a []float64, lda int, ipiv []int32) bool {
	return lapacke.Dgetrf(m, n, a, lda, ipiv)
}

func (lapackeFloat64) Laswp(n int, a []float64, lda int, k1, k2 int, ipiv []int32, incX int) {
	lapacke.Dlaswp(n, a, lda, k1, k2, ipiv, incX)
}

func (lapackeFloat64) Getrs(trans blas.Transpose, n, nrhs int, a []float64, lda int, ipiv []int32, b []float64, ldb int) {
	lapacke.Dgetrs(trans, n, nrhs, a, lda, ipiv, b, ldb)
}

func (lapackeFloat64) Getri(n int, a []float64, lda int, ipiv []int32, work []float64, lwork int) bool {
	return lapacke.Dgetri(n, a, lda, ipiv, work, lwork)
}

type lapackeComplex64 struct{}

func (lapackeComplex64) Getrf(m, n int, a []complex64, lda int, ipiv []int32) bool {
	return lapacke.Cgetrf(m, n, a, lda, ipiv)
}

func (lapackeComplex64) Laswp(n int, a []complex64, lda int, k1, k2 int, ipiv []int32, incX int) {
	lapacke.Claswp(n, a, lda, k1, k2, ipiv, incX)
}

func (lapackeComplex64) Getrs(trans blas.Transpose, n, nrhs int, a []complex64, lda int, ipiv []int32, b []complex64, ldb int) {
	lapacke.Cgetrs(trans, n, nrhs, a, lda, ipiv, b, ldb)
}

func (lapackeComplex64) Getri(n int, a []complex64, lda int, ipiv []int32, work []complex64, lwork int) bool {
	return lapacke.Cgetri(n, a, lda, ipiv, work, lwork)
}

type lapackeComplex128 struct{}

func (lapackeComplex128) Getrf(m, n int, a []complex128, lda int, ipiv []int32) bool {
	return lapacke.Zgetrf(m, n, a, lda, ipiv)
}

func (lapackeComplex128) Laswp(n int, a []complex128, lda int, k1, k2 int, ipiv []int32, incX int) {
	lapacke.Zlaswp(n, a, lda, k1, k2, ipiv, incX)
}

func (lapackeComplex128) Getrs(trans blas.Transpose, n, nrhs int, a []complex128, lda int, ipiv []int32, b []complex128, ldb int) {
	lapacke.Zgetrs(trans, n, nrhs, a, lda, ipiv, b, ldb)
}

func (lapackeComplex128) Getri(n int, a []complex128, lda int, ipiv []int32, work []complex128, lwork int) bool {
	return lapacke.Zgetri(n, a, lda, ipiv, work, lwork)
}
