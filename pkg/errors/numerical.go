package errors

import (
	"math"
	"math/cmplx"
)

// scalar mirrors the scalar kinds handled by the dense containers.
// It is redeclared here to avoid an import cycle with the dense package.
type scalar interface {
	float32 | float64 | complex64 | complex128
}

// CheckFinite scans data for NaN or Inf entries and returns a
// NumericalInstabilityError when any are found. The native LAPACK routines do
// not inspect their inputs, so non-finite values propagate silently into the
// factorization; callers are expected to check (or at least warn) up front.
//
// For complex kinds the real parts of the offending entries are reported.
// At most 10 offending values are collected for the error message.
func CheckFinite[T scalar](operation string, data []T) error {
	var bad []float64

	switch data := any(data).(type) {
	case []float32:
		for _, v := range data {
			f := float64(v)
			if math.IsNaN(f) || math.IsInf(f, 0) {
				bad = append(bad, f)
			}
			if len(bad) >= 10 {
				break
			}
		}
	case []float64:
		for _, v := range data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				bad = append(bad, v)
			}
			if len(bad) >= 10 {
				break
			}
		}
	case []complex64:
		for _, v := range data {
			c := complex128(v)
			if cmplx.IsNaN(c) || cmplx.IsInf(c) {
				bad = append(bad, real(c))
			}
			if len(bad) >= 10 {
				break
			}
		}
	case []complex128:
		for _, v := range data {
			if cmplx.IsNaN(v) || cmplx.IsInf(v) {
				bad = append(bad, real(v))
			}
			if len(bad) >= 10 {
				break
			}
		}
	}

	if len(bad) > 0 {
		return NewNumericalInstabilityError(operation, bad)
	}
	return nil
}

// CheckScalar checks a single float64 value for numerical instability.
func CheckScalar(operation string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NewNumericalInstabilityError(operation, []float64{value})
	}
	return nil
}
