// Package log defines standard attribute keys for linear-algebra operations.
//
// This file contains predefined attribute keys that provide consistency across
// all logging operations in nalgebra. Using these standard keys enables better
// log analysis and debugging of numerical workflows.
//
// The keys follow a hierarchical naming convention (e.g., "matrix.rows",
// "lapack.backend") to enable structured log analysis and filtering.

package log

import "log/slog"

// Operation Context
// These attributes identify the decomposition and operation being performed.
const (
	// OperationKey specifies the linear-algebra operation being performed.
	// Standard values: "factorize", "solve", "inverse", "permute"
	OperationKey = "la.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "lu", "dense", "lapack"
	ComponentKey = "la.component"
)

// Matrix Shape and Backend
// These attributes describe the operands and the routine provider.
const (
	// RowsKey indicates the number of rows of the primary operand.
	RowsKey = "matrix.rows"

	// ColsKey indicates the number of columns of the primary operand.
	ColsKey = "matrix.cols"

	// RHSKey indicates the number of right-hand-side columns in a solve.
	RHSKey = "rhs.cols"

	// ScalarKey identifies the scalar kind of the operand.
	// Examples: "float32", "float64", "complex64", "complex128"
	ScalarKey = "matrix.scalar"

	// BackendKey identifies the LAPACK routine provider.
	// Examples: "lapacke", "gonum"
	BackendKey = "lapack.backend"
)

// Error Context
const (
	// ErrAttrKey is the attribute key carrying an error value. The
	// ErrFmtHandler extracts the cockroachdb stacktrace from it.
	ErrAttrKey = "error"

	// StacktraceAttrKey carries the extracted stack trace.
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr returns a slog attribute wrapping err under ErrAttrKey.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}
