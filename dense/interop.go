package dense

import (
	"gonum.org/v1/gonum/mat"
)

// Interop with gonum/mat for the two scalar kinds it covers. The conversions
// always copy; the containers never alias gonum storage.

// FromMat64 copies a gonum matrix into a Dense[float64].
func FromMat64(src mat.Matrix) *Dense[float64] {
	r, c := src.Dims()
	out := New[float64](r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, src.At(i, j))
		}
	}
	return out
}

// ToMat64 copies m into a new gonum *mat.Dense.
func ToMat64(m *Dense[float64]) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, m.At(i, j))
		}
	}
	return out
}

// FromCMat128 copies a gonum complex matrix into a Dense[complex128].
func FromCMat128(src mat.CMatrix) *Dense[complex128] {
	r, c := src.Dims()
	out := New[complex128](r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, src.At(i, j))
		}
	}
	return out
}

// ToCMat128 copies m into a new gonum *mat.CDense.
func ToCMat128(m *Dense[complex128]) *mat.CDense {
	r, c := m.Dims()
	out := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, m.At(i, j))
		}
	}
	return out
}
