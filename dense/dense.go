// Package dense provides generic row-major dense matrices for the scalar
// kinds supported by LAPACK: float32, float64, complex64 and complex128.
//
// The container is a thin layer over a contiguous slice in the layout of
// gonum's blasXX.General types. It exists because the decompositions in this
// module are generic over the scalar kind, while gonum's mat package covers
// only float64 and complex128 and its four General types share no common
// type. All arithmetic on the containers is delegated to gonum BLAS.
package dense

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/blas/cblas64"

	"github.com/varphone/nalgebra/pkg/errors"
)

// Number enumerates the scalar kinds the library operates on. The set is
// closed: these are exactly the kinds the native routines exist for.
type Number interface {
	float32 | float64 | complex64 | complex128
}

// Dense is a row-major dense matrix. The underlying slice always satisfies
// len(data) >= (rows-1)*stride + cols, which is the contract the native
// LAPACK routines rely on; they perform no bounds checking of their own.
type Dense[T Number] struct {
	rows   int
	cols   int
	stride int
	data   []T
}

// New creates an r×c matrix backed by data, which is used directly, not
// copied. A nil data slice allocates a zeroed matrix. New panics if the
// dimensions are not positive or data is too short.
func New[T Number](r, c int, data []T) *Dense[T] {
	if r <= 0 || c <= 0 {
		panic(errors.NewValueError("dense.New", "dimensions must be positive"))
	}
	if data == nil {
		data = make([]T, r*c)
	}
	if len(data) < r*c {
		panic(errors.NewDimensionError("dense.New", r*c, len(data), 0))
	}
	return &Dense[T]{rows: r, cols: c, stride: c, data: data}
}

// Identity returns the n×n identity matrix.
func Identity[T Number](n int) *Dense[T] {
	m := New[T](n, n, nil)
	for i := 0; i < n; i++ {
		m.data[i*m.stride+i] = T(1)
	}
	return m
}

// Dims returns the row and column counts.
func (m *Dense[T]) Dims() (r, c int) {
	return m.rows, m.cols
}

// Stride returns the distance between the starts of adjacent rows in the
// underlying slice.
func (m *Dense[T]) Stride() int {
	return m.stride
}

// IsSquare reports whether the matrix has as many rows as columns.
func (m *Dense[T]) IsSquare() bool {
	return m.rows == m.cols
}

// At returns the element at row i, column j.
func (m *Dense[T]) At(i, j int) T {
	if i < 0 || i >= m.rows {
		panic(errors.NewDimensionError("dense.At", m.rows, i, 0))
	}
	if j < 0 || j >= m.cols {
		panic(errors.NewDimensionError("dense.At", m.cols, j, 1))
	}
	return m.data[i*m.stride+j]
}

// Set assigns v to the element at row i, column j.
func (m *Dense[T]) Set(i, j int, v T) {
	if i < 0 || i >= m.rows {
		panic(errors.NewDimensionError("dense.Set", m.rows, i, 0))
	}
	if j < 0 || j >= m.cols {
		panic(errors.NewDimensionError("dense.Set", m.cols, j, 1))
	}
	m.data[i*m.stride+j] = v
}

// RawData exposes the backing slice. Mutating it mutates the matrix.
func (m *Dense[T]) RawData() []T {
	return m.data
}

// Clone returns a deep copy of the matrix with a compact stride.
func (m *Dense[T]) Clone() *Dense[T] {
	out := New[T](m.rows, m.cols, nil)
	for i := 0; i < m.rows; i++ {
		copy(out.data[i*out.stride:i*out.stride+m.cols], m.data[i*m.stride:i*m.stride+m.cols])
	}
	return out
}

// Mul returns the product a·b. The multiplication is dispatched to the gonum
// BLAS Gemm implementation for the scalar kind; no kernels live here.
// Mul panics if the inner dimensions disagree.
func Mul[T Number](a, b *Dense[T]) *Dense[T] {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br {
		panic(errors.NewDimensionError("dense.Mul", ac, br, 0))
	}
	c := New[T](ar, bc, nil)

	switch ad := any(a.data).(type) {
	case []float32:
		blas32.Gemm(blas.NoTrans, blas.NoTrans, 1,
			blas32.General{Rows: ar, Cols: ac, Stride: a.stride, Data: ad},
			blas32.General{Rows: br, Cols: bc, Stride: b.stride, Data: any(b.data).([]float32)},
			0,
			blas32.General{Rows: ar, Cols: bc, Stride: c.stride, Data: any(c.data).([]float32)})
	case []float64:
		blas64.Gemm(blas.NoTrans, blas.NoTrans, 1,
			blas64.General{Rows: ar, Cols: ac, Stride: a.stride, Data: ad},
			blas64.General{Rows: br, Cols: bc, Stride: b.stride, Data: any(b.data).([]float64)},
			0,
			blas64.General{Rows: ar, Cols: bc, Stride: c.stride, Data: any(c.data).([]float64)})
	case []complex64:
		cblas64.Gemm(blas.NoTrans, blas.NoTrans, 1,
			cblas64.General{Rows: ar, Cols: ac, Stride: a.stride, Data: ad},
			cblas64.General{Rows: br, Cols: bc, Stride: b.stride, Data: any(b.data).([]complex64)},
			0,
			cblas64.General{Rows: ar, Cols: bc, Stride: c.stride, Data: any(c.data).([]complex64)})
	case []complex128:
		cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1,
			cblas128.General{Rows: ar, Cols: ac, Stride: a.stride, Data: ad},
			cblas128.General{Rows: br, Cols: bc, Stride: b.stride, Data: any(b.data).([]complex128)},
			0,
			cblas128.General{Rows: ar, Cols: bc, Stride: c.stride, Data: any(c.data).([]complex128)})
	}
	return c
}
