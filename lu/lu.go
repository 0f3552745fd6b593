package lu

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/blas"

	"github.com/varphone/nalgebra/dense"
	"github.com/varphone/nalgebra/lapack"
	"github.com/varphone/nalgebra/pkg/errors"
	"github.com/varphone/nalgebra/pkg/log"
)

// LU holds the LU decomposition with partial pivoting of a matrix. The L and
// U factors share one storage block, factorized in place by Getrf, and the
// row permutation is kept as the one-based pivot vector the routine
// produced. The handle is immutable after New except for Inverse, which
// consumes it.
type LU[T dense.Number] struct {
	lu  *dense.Dense[T]
	piv []int32
	// nonsingular records whether Getrf completed without meeting an
	// exact zero pivot. Solve and Inverse report failure when it is
	// false; the factorization itself is still valid.
	nonsingular bool
	rt          lapack.Routines[T]
}

// New computes the LU decomposition with partial pivoting of m. The input
// storage is factorized in place and owned by the returned handle; the
// caller must not use m afterwards.
//
// An empty matrix panics. A matrix containing NaN or Inf entries is not an
// error for the native routines, so it is reported through the package
// warning handler and the factorization proceeds. Exact singularity is also
// only a warning here; it surfaces as a failed Solve or Inverse.
func New[T dense.Number](m *dense.Dense[T]) *LU[T] {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		panic(errors.Wrap(errors.ErrEmptyData, "lu.New"))
	}
	if err := errors.CheckFinite("lu.New", m.RawData()); err != nil {
		errors.Warn(err)
	}

	rt := lapack.For[T]()
	piv := make([]int32, min(r, c))
	ok := rt.Getrf(r, c, m.RawData(), m.Stride(), piv)
	if !ok {
		errors.Warn(errors.NewSingularMatrixWarning("lu.New", r, c))
	}

	slog.Debug("matrix factorized",
		slog.String(log.ComponentKey, "lu"),
		slog.String(log.OperationKey, "factorize"),
		slog.Int(log.RowsKey, r),
		slog.Int(log.ColsKey, c),
		slog.String(log.ScalarKey, scalarName[T]()),
		slog.Bool("nonsingular", ok),
	)

	return &LU[T]{lu: m, piv: piv, nonsingular: ok, rt: rt}
}

// L returns a copy of the lower-triangular factor, sized m×min(m,n), with
// unit diagonal and zeros strictly above it.
func (d *LU[T]) L() *dense.Dense[T] {
	r, c := d.lu.Dims()
	k := min(r, c)
	l := dense.New[T](r, k, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < k && j <= i; j++ {
			if i == j {
				l.Set(i, j, T(1))
			} else {
				l.Set(i, j, d.lu.At(i, j))
			}
		}
	}
	return l
}

// U returns a copy of the upper-triangular factor, sized min(m,n)×n, with
// zeros strictly below the diagonal.
func (d *LU[T]) U() *dense.Dense[T] {
	r, c := d.lu.Dims()
	k := min(r, c)
	u := dense.New[T](k, c, nil)
	for i := 0; i < k; i++ {
		for j := i; j < c; j++ {
			u.Set(i, j, d.lu.At(i, j))
		}
	}
	return u
}

// PivotIndices returns a copy of the one-based row-swap indices produced by
// the factorization. Index i records that row i was swapped with row
// PivotIndices()[i]-1 during elimination. This compact form is the preferred
// representation of the permutation; see P.
func (d *LU[T]) PivotIndices() []int32 {
	out := make([]int32, len(d.piv))
	copy(out, d.piv)
	return out
}

// Permute applies the row permutation P of the decomposition to rhs in
// place, so that rhs becomes P·rhs. The swaps recorded by partial pivoting
// compose P transposed, so they are applied in reverse order here. Permute
// panics if the row count of rhs differs from that of the decomposed matrix.
func (d *LU[T]) Permute(rhs *dense.Dense[T]) {
	r, _ := d.lu.Dims()
	rr, rc := rhs.Dims()
	if rr != r {
		panic(errors.NewDimensionError("lu.Permute", r, rr, 0))
	}
	d.rt.Laswp(rc, rhs.RawData(), rhs.Stride(), 1, len(d.piv), d.piv, -1)
}

// P materializes the full m×m row-permutation matrix by permuting an
// identity matrix. Building P explicitly is costly and usually unnecessary;
// prefer Permute or PivotIndices.
func (d *LU[T]) P() *dense.Dense[T] {
	r, _ := d.lu.Dims()
	id := dense.Identity[T](r)
	d.Permute(id)
	return id
}

// Solve solves the linear system M·x = b and returns the solution, or
// (nil, false) when the decomposed matrix is singular. The decomposed matrix
// must be square and b must have matching rows; violations panic.
func (d *LU[T]) Solve(b *dense.Dense[T]) (*dense.Dense[T], bool) {
	x := b.Clone()
	if !d.solveMut(blas.NoTrans, x) {
		return nil, false
	}
	return x, true
}

// SolveTranspose solves Mᵀ·x = b. See Solve for the failure and panic
// conventions.
func (d *LU[T]) SolveTranspose(b *dense.Dense[T]) (*dense.Dense[T], bool) {
	x := b.Clone()
	if !d.solveMut(blas.Trans, x) {
		return nil, false
	}
	return x, true
}

// SolveConjugateTranspose solves Mᴴ·x = b. See Solve for the failure and
// panic conventions.
func (d *LU[T]) SolveConjugateTranspose(b *dense.Dense[T]) (*dense.Dense[T], bool) {
	x := b.Clone()
	if !d.solveMut(blas.ConjTrans, x) {
		return nil, false
	}
	return x, true
}

// SolveMut solves M·x = b in place, overwriting b with the solution. It
// returns false, leaving b untouched, when the decomposed matrix is
// singular.
func (d *LU[T]) SolveMut(b *dense.Dense[T]) bool {
	return d.solveMut(blas.NoTrans, b)
}

// SolveTransposeMut solves Mᵀ·x = b in place. See SolveMut.
func (d *LU[T]) SolveTransposeMut(b *dense.Dense[T]) bool {
	return d.solveMut(blas.Trans, b)
}

// SolveConjugateTransposeMut solves Mᴴ·x = b in place. See SolveMut.
func (d *LU[T]) SolveConjugateTransposeMut(b *dense.Dense[T]) bool {
	return d.solveMut(blas.ConjTrans, b)
}

func (d *LU[T]) solveMut(trans blas.Transpose, b *dense.Dense[T]) bool {
	n, c := d.lu.Dims()
	if n != c {
		panic(errors.NewValueError("lu.Solve", "unable to solve a set of under/over-determined equations"))
	}
	br, bc := b.Dims()
	if br != n {
		panic(errors.NewDimensionError("lu.Solve", n, br, 0))
	}
	// LAPACK *getrs never reports singularity itself; an exact zero pivot
	// was already recorded by Getrf.
	if !d.nonsingular {
		return false
	}
	d.rt.Getrs(trans, n, bc, d.lu.RawData(), d.lu.Stride(), d.piv, b.RawData(), b.Stride())

	slog.Debug("system solved",
		slog.String(log.ComponentKey, "lu"),
		slog.String(log.OperationKey, "solve"),
		slog.Int(log.RowsKey, n),
		slog.Int(log.RHSKey, bc),
		slog.String(log.ScalarKey, scalarName[T]()),
	)
	return true
}

// Inverse computes the inverse of the decomposed matrix, which must be
// square. The native routine follows the LAPACK two-phase convention: a
// workspace-size probe first, then the computation with the allocated
// scratch. The handle is consumed; on success its storage holds the inverse
// and is returned, and the handle must not be used again. Inverse returns
// (nil, false) when the matrix is singular.
func (d *LU[T]) Inverse() (*dense.Dense[T], bool) {
	n, c := d.lu.Dims()
	if n != c {
		panic(errors.NewValueError("lu.Inverse", "unable to compute the inverse of a non-square matrix"))
	}
	if !d.nonsingular {
		return nil, false
	}

	var probe [1]T
	d.rt.Getri(n, d.lu.RawData(), d.lu.Stride(), d.piv, probe[:], -1)
	lwork := int(lapack.RealPart(probe[0]))
	if lwork < n {
		lwork = n
	}
	work := make([]T, lwork)

	ok := d.rt.Getri(n, d.lu.RawData(), d.lu.Stride(), d.piv, work, lwork)
	if !ok {
		return nil, false
	}

	inv := d.lu
	d.lu = nil
	d.piv = nil
	return inv, true
}

// IsNonsingular reports whether the factorization completed without an
// exact zero pivot. A false value means Solve and Inverse will fail.
func (d *LU[T]) IsNonsingular() bool {
	return d.nonsingular
}

func scalarName[T dense.Number]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}
