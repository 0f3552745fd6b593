package lu

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/varphone/nalgebra/dense"
	"github.com/varphone/nalgebra/lapack"
	"github.com/varphone/nalgebra/pkg/errors"
)

func approxEqual(t *testing.T, name string, got, want *dense.Dense[float64], tol float64) {
	t.Helper()
	gr, gc := got.Dims()
	wr, wc := want.Dims()
	if gr != wr || gc != wc {
		t.Fatalf("%s: dims (%d,%d), want (%d,%d)", name, gr, gc, wr, wc)
	}
	for i := 0; i < gr; i++ {
		for j := 0; j < gc; j++ {
			if math.Abs(got.At(i, j)-want.At(i, j)) > tol {
				t.Fatalf("%s: [%d][%d] = %g, want %g (tol %g)", name, i, j, got.At(i, j), want.At(i, j), tol)
			}
		}
	}
}

func transpose(m *dense.Dense[float64]) *dense.Dense[float64] {
	r, c := m.Dims()
	out := dense.New[float64](c, r, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(j, i, m.At(i, j))
		}
	}
	return out
}

func conjTranspose(m *dense.Dense[complex128]) *dense.Dense[complex128] {
	r, c := m.Dims()
	out := dense.New[complex128](c, r, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(j, i, cmplx.Conj(m.At(i, j)))
		}
	}
	return out
}

// reconstruct computes P·L·U from the decomposition.
func reconstruct(d *LU[float64]) *dense.Dense[float64] {
	lu := dense.Mul(d.L(), d.U())
	d.Permute(lu)
	return lu
}

func TestKnownExample(t *testing.T) {
	m := dense.New(2, 2, []float64{
		4, 3,
		6, 3,
	})
	d := New(m.Clone())

	if !d.IsNonsingular() {
		t.Fatal("nonsingular matrix reported singular")
	}

	piv := d.PivotIndices()
	if len(piv) != 2 || piv[0] != 2 || piv[1] != 2 {
		t.Errorf("pivot indices = %v, want [2 2]", piv)
	}

	// The first elimination step swaps in the 6, so U is exactly
	// [[6,3],[0,1]] and P swaps the two rows.
	u := d.U()
	wantU := dense.New(2, 2, []float64{
		6, 3,
		0, 1,
	})
	approxEqual(t, "U", u, wantU, 0)

	l := d.L()
	if l.At(0, 0) != 1 || l.At(1, 1) != 1 {
		t.Errorf("L diagonal = [%g %g], want unit", l.At(0, 0), l.At(1, 1))
	}
	if l.At(0, 1) != 0 {
		t.Errorf("L above diagonal = %g, want 0", l.At(0, 1))
	}

	p := d.P()
	wantP := dense.New(2, 2, []float64{
		0, 1,
		1, 0,
	})
	approxEqual(t, "P", p, wantP, 0)

	approxEqual(t, "P·L·U", reconstruct(d), m, 1e-14)
}

func TestReconstructionSquare(t *testing.T) {
	m := dense.New(3, 3, []float64{
		0, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	d := New(m.Clone())

	approxEqual(t, "P·L·U", reconstruct(d), m, 1e-12)

	// P applied to the identity and multiplied back in reconstructs M
	// from the factors as well.
	plu := dense.Mul(d.P(), dense.Mul(d.L(), d.U()))
	approxEqual(t, "P×(L·U)", plu, m, 1e-12)
}

func TestReconstructionRectangular(t *testing.T) {
	cases := []struct {
		name string
		r, c int
		data []float64
	}{
		{"wide", 2, 3, []float64{
			0, 2, 3,
			4, 5, 6,
		}},
		{"tall", 3, 2, []float64{
			1, 4,
			3, 2,
			5, 6,
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := dense.New(tc.r, tc.c, tc.data)
			d := New(m.Clone())

			k := tc.r
			if tc.c < k {
				k = tc.c
			}
			lr, lc := d.L().Dims()
			if lr != tc.r || lc != k {
				t.Errorf("L dims (%d,%d), want (%d,%d)", lr, lc, tc.r, k)
			}
			ur, uc := d.U().Dims()
			if ur != k || uc != tc.c {
				t.Errorf("U dims (%d,%d), want (%d,%d)", ur, uc, k, tc.c)
			}

			approxEqual(t, "P·L·U", reconstruct(d), m, 1e-12)
		})
	}
}

func TestSolve(t *testing.T) {
	m := dense.New(3, 3, []float64{
		2, 1, 1,
		1, 3, 2,
		1, 0, 0,
	})
	b := dense.New(3, 2, []float64{
		4, 1,
		5, 2,
		6, 3,
	})
	d := New(m.Clone())

	x, ok := d.Solve(b)
	if !ok {
		t.Fatal("Solve failed on a nonsingular system")
	}
	approxEqual(t, "M·x", dense.Mul(m, x), b, 1e-12)

	// The in-place variant must agree.
	bm := b.Clone()
	if !d.SolveMut(bm) {
		t.Fatal("SolveMut failed on a nonsingular system")
	}
	approxEqual(t, "SolveMut", bm, x, 1e-12)
}

func TestSolveTranspose(t *testing.T) {
	m := dense.New(3, 3, []float64{
		2, 1, 1,
		1, 3, 2,
		1, 0, 0,
	})
	b := dense.New(3, 1, []float64{1, 2, 3})
	d := New(m.Clone())

	x, ok := d.SolveTranspose(b)
	if !ok {
		t.Fatal("SolveTranspose failed on a nonsingular system")
	}
	approxEqual(t, "Mᵀ·x", dense.Mul(transpose(m), x), b, 1e-12)

	// For a real matrix the conjugate transpose solve must agree with
	// the transpose solve.
	xc, ok := d.SolveConjugateTranspose(b)
	if !ok {
		t.Fatal("SolveConjugateTranspose failed on a nonsingular system")
	}
	approxEqual(t, "Mᴴ·x (real)", xc, x, 1e-12)
}

func TestSolveSingular(t *testing.T) {
	// Rank-deficient: the second row is identically zero.
	m := dense.New(2, 2, []float64{
		1, 2,
		0, 0,
	})
	d := New(m)

	if d.IsNonsingular() {
		t.Fatal("matrix with a zero row reported nonsingular")
	}

	b := dense.New(2, 1, []float64{1, 1})
	if x, ok := d.Solve(b); ok || x != nil {
		t.Error("Solve on a singular matrix must return no result")
	}
	if d.SolveMut(b) {
		t.Error("SolveMut on a singular matrix must report failure")
	}
	if b.At(0, 0) != 1 || b.At(1, 0) != 1 {
		t.Error("failed SolveMut must leave b untouched")
	}
	if inv, ok := d.Inverse(); ok || inv != nil {
		t.Error("Inverse of a singular matrix must return no result")
	}
}

func TestSolveDimensionMismatchPanics(t *testing.T) {
	d := New(dense.New(3, 3, []float64{
		2, 1, 1,
		1, 3, 2,
		1, 0, 0,
	}))
	b := dense.New(2, 1, []float64{1, 2})

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for mismatched right-hand-side rows")
		}
		var dimErr *errors.DimensionError
		if err, ok := r.(error); !ok || !errors.As(err, &dimErr) {
			t.Fatalf("expected *DimensionError panic, got %v", r)
		}
	}()
	d.Solve(b)
}

func TestSolveNonSquarePanics(t *testing.T) {
	d := New(dense.New(2, 3, []float64{
		0, 2, 3,
		4, 5, 6,
	}))
	b := dense.New(2, 1, []float64{1, 2})

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for non-square solve")
		}
		var valErr *errors.ValueError
		if err, ok := r.(error); !ok || !errors.As(err, &valErr) {
			t.Fatalf("expected *ValueError panic, got %v", r)
		}
	}()
	d.Solve(b)
}

func TestPermuteDimensionMismatchPanics(t *testing.T) {
	d := New(dense.New(2, 2, []float64{
		4, 3,
		6, 3,
	}))

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for mismatched permute rows")
		}
	}()
	d.Permute(dense.New[float64](3, 1, nil))
}

func TestInverse(t *testing.T) {
	m := dense.New(3, 3, []float64{
		2, 1, 1,
		1, 3, 2,
		1, 0, 0,
	})
	d := New(m.Clone())

	inv, ok := d.Inverse()
	if !ok {
		t.Fatal("Inverse failed on a nonsingular matrix")
	}
	approxEqual(t, "M·M⁻¹", dense.Mul(m, inv), dense.Identity[float64](3), 1e-12)
}

func TestInverseNonSquarePanics(t *testing.T) {
	d := New(dense.New(2, 3, []float64{
		0, 2, 3,
		4, 5, 6,
	}))
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-square inverse")
		}
	}()
	d.Inverse()
}

func TestSingularWarning(t *testing.T) {
	var captured error
	errors.SetWarningHandler(func(w error) { captured = w })
	defer errors.SetWarningHandler(func(error) {})

	New(dense.New(2, 2, []float64{
		1, 2,
		0, 0,
	}))

	var sw *errors.SingularMatrixWarning
	if captured == nil || !errors.As(captured, &sw) {
		t.Fatalf("expected SingularMatrixWarning, got %v", captured)
	}
}

func TestNonFiniteWarning(t *testing.T) {
	var captured error
	errors.SetWarningHandler(func(w error) { captured = w })
	defer errors.SetWarningHandler(func(error) {})

	New(dense.New(2, 2, []float64{
		1, math.NaN(),
		0, 1,
	}))

	var nie *errors.NumericalInstabilityError
	if captured == nil || !errors.As(captured, &nie) {
		t.Fatalf("expected NumericalInstabilityError warning, got %v", captured)
	}
}

func TestComplex128(t *testing.T) {
	if !lapack.Available[complex128]() {
		t.Skip("no complex128 LAPACK backend in this build")
	}

	m := dense.New(2, 2, []complex128{
		0, 1i,
		2, 1 + 1i,
	})
	d := New(m.Clone())

	// Reconstruction.
	plu := dense.Mul(d.L(), d.U())
	d.Permute(plu)
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if cmplx.Abs(plu.At(i, j)-m.At(i, j)) > 1e-12 {
				t.Fatalf("P·L·U[%d][%d] = %v, want %v", i, j, plu.At(i, j), m.At(i, j))
			}
		}
	}

	// Conjugate-transpose solve: verify Mᴴ·x = b.
	b := dense.New(2, 1, []complex128{1, 1i})
	x, ok := d.SolveConjugateTranspose(b)
	if !ok {
		t.Fatal("SolveConjugateTranspose failed on a nonsingular system")
	}
	got := dense.Mul(conjTranspose(m), x)
	for i := 0; i < 2; i++ {
		if cmplx.Abs(got.At(i, 0)-b.At(i, 0)) > 1e-12 {
			t.Errorf("Mᴴ·x[%d] = %v, want %v", i, got.At(i, 0), b.At(i, 0))
		}
	}

	// Inverse.
	inv, ok := d.Inverse()
	if !ok {
		t.Fatal("Inverse failed on a nonsingular complex matrix")
	}
	prod := dense.Mul(m, inv)
	id := dense.Identity[complex128](2)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if cmplx.Abs(prod.At(i, j)-id.At(i, j)) > 1e-12 {
				t.Errorf("M·M⁻¹[%d][%d] = %v", i, j, prod.At(i, j))
			}
		}
	}
}

func TestFloat32(t *testing.T) {
	if !lapack.Available[float32]() {
		t.Skip("no float32 LAPACK backend in this build")
	}

	m := dense.New(2, 2, []float32{
		4, 3,
		6, 3,
	})
	d := New(m.Clone())

	plu := dense.Mul(d.L(), d.U())
	d.Permute(plu)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if diff := float64(plu.At(i, j) - m.At(i, j)); math.Abs(diff) > 1e-5 {
				t.Errorf("P·L·U[%d][%d] = %g, want %g", i, j, plu.At(i, j), m.At(i, j))
			}
		}
	}
}
