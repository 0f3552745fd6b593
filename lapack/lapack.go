// Package lapack defines the per-scalar contract to the native LAPACK
// routines that the decompositions in this module delegate to, and a small
// registry mapping each scalar kind to an installed routine set.
//
// One routine set exists per scalar kind (float32, float64, complex64,
// complex128). When built with cgo every kind is backed by LAPACKE through
// gonum.org/v1/netlib; without cgo only float64 is available, served by the
// pure-Go gonum implementation. Implementations can be swapped with the Use
// functions, mirroring gonum's lapack64.Use.
//
// Index conventions are LAPACK's throughout the package boundary: pivot
// indices are one-based int32 and the k1, k2 row range of Laswp is
// one-based inclusive. Illegal-argument diagnostics from the underlying
// routines surface as panics; an exactly singular factorization is reported
// through the boolean return of Getrf and Getri, never as a panic.
package lapack

import (
	"gonum.org/v1/gonum/blas"

	"github.com/varphone/nalgebra/dense"
	"github.com/varphone/nalgebra/pkg/errors"
)

// Routines is the routine set the LU decomposition needs for one scalar
// kind. All matrices are row-major; lda and ldb are row strides. Buffer
// lengths must exactly match the dimensions passed, as the native routines
// perform no bounds checking.
type Routines[T dense.Number] interface {
	// Getrf computes the LU factorization with partial pivoting of the
	// m×n matrix a, in place. ipiv must have length min(m, n) and is
	// filled with one-based row-swap indices. The returned bool is false
	// when the factorization met an exact zero pivot; the factorization
	// is still complete in that case.
	Getrf(m, n int, a []T, lda int, ipiv []int32) bool

	// Laswp applies the row interchanges in ipiv[k1-1:k2] to the matrix a
	// with n columns. k1 and k2 are one-based inclusive. If incX is 1 the
	// swaps are applied in forward order, if -1 in reverse order.
	Laswp(n int, a []T, lda int, k1, k2 int, ipiv []int32, incX int)

	// Getrs solves op(A)·X = B from the factorization computed by Getrf,
	// overwriting b with the solution. trans selects op as the identity,
	// the transpose or the conjugate transpose.
	Getrs(trans blas.Transpose, n, nrhs int, a []T, lda int, ipiv []int32, b []T, ldb int)

	// Getri computes the inverse from the factorization computed by
	// Getrf, in place. With lwork == -1 the call is a workspace-size
	// probe: the optimal lwork is stored into work[0] and nothing is
	// computed. The returned bool is false when the matrix is singular.
	Getri(n int, a []T, lda int, ipiv []int32, work []T, lwork int) bool
}

var (
	float32Routines    Routines[float32]
	float64Routines    Routines[float64] = gonumFloat64{}
	complex64Routines  Routines[complex64]
	complex128Routines Routines[complex128]
)

// UseFloat32 installs the float32 routine set.
func UseFloat32(r Routines[float32]) { float32Routines = r }

// UseFloat64 installs the float64 routine set.
func UseFloat64(r Routines[float64]) { float64Routines = r }

// UseComplex64 installs the complex64 routine set.
func UseComplex64(r Routines[complex64]) { complex64Routines = r }

// UseComplex128 installs the complex128 routine set.
func UseComplex128(r Routines[complex128]) { complex128Routines = r }

// Available reports whether a routine set is installed for T.
func Available[T dense.Number]() bool {
	var zero T
	switch any(zero).(type) {
	case float32:
		return float32Routines != nil
	case float64:
		return float64Routines != nil
	case complex64:
		return complex64Routines != nil
	default:
		return complex128Routines != nil
	}
}

// For returns the installed routine set for T. Requesting a scalar kind with
// no installed routines is a programmer error and panics.
func For[T dense.Number]() Routines[T] {
	var zero T
	var rt any
	switch any(zero).(type) {
	case float32:
		if float32Routines != nil {
			rt = float32Routines
		}
	case float64:
		if float64Routines != nil {
			rt = float64Routines
		}
	case complex64:
		if complex64Routines != nil {
			rt = complex64Routines
		}
	default:
		if complex128Routines != nil {
			rt = complex128Routines
		}
	}
	if rt == nil {
		panic(errors.Wrapf(errors.ErrBackendUnavailable, "lapack.For[%T]", zero))
	}
	return rt.(Routines[T])
}

// RealPart extracts the real part of v as a float64. It is used to read
// workspace sizes out of the work array after a probe call, which stores the
// size in work[0] even for the complex routine variants.
func RealPart[T dense.Number](v T) float64 {
	switch v := any(v).(type) {
	case float32:
		return float64(v)
	case float64:
		return v
	case complex64:
		return float64(real(v))
	case complex128:
		return real(v)
	}
	return 0
}
