package spectrum_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/kvantor/spectra/cmatrix"
	"github.com/kvantor/spectra/spectrum"
)

// householderConjugate returns H·D·H for the 4×4 Householder reflector
// H = I − ½J (J all-ones), an exact orthogonal symmetric matrix. The result
// is symmetric with the diagonal of D as its eigenvalue multiset — a
// round-trip fixture that needs no eigensolver to construct.
func householderConjugate(t *testing.T, diag []complex128) cmatrix.Matrix {
	t.Helper()
	const n = 4
	require.Len(t, diag, n)

	hRows := make([][]complex128, n)
	dRows := make([][]complex128, n)
	for i := 0; i < n; i++ {
		hRows[i] = make([]complex128, n)
		dRows[i] = make([]complex128, n)
		for j := 0; j < n; j++ {
			if i == j {
				hRows[i][j] = 0.5
			} else {
				hRows[i][j] = -0.5
			}
		}
		dRows[i][i] = diag[i]
	}
	h := mustDense(t, hRows)
	d := mustDense(t, dRows)

	hd, err := cmatrix.Mul(h, d)
	require.NoError(t, err)
	a, err := cmatrix.Mul(hd, h)
	require.NoError(t, err)

	return a
}

// TestEigenvalues_DensityMatrixRoundTrip conjugates a known spectrum into a
// dense symmetric unit-trace matrix and recovers it through the full
// pipeline: matrix → traces → coefficients → roots.
func TestEigenvalues_DensityMatrixRoundTrip(t *testing.T) {
	want := []complex128{0.0502, 0.0784, 0.2793, 0.5921} // sums to 1
	a := householderConjugate(t, want)

	got, err := spectrum.Eigenvalues(a, nil)
	require.NoError(t, err)
	assertRootsMatch(t, want, got, 1e-8)

	// Σλ = Tr(A): the first Newton identity, end to end.
	var sum complex128
	for _, r := range got {
		sum += r
	}
	tr, err := cmatrix.Trace(a)
	require.NoError(t, err)
	assert.InDelta(t, real(tr), real(sum), 1e-9)
	assert.InDelta(t, imag(tr), imag(sum), 1e-9)
}

// TestEigenvalues_MatchesGonumReference cross-checks the characteristic
// polynomial route against an independent direct eigen-decomposition
// (gonum's symmetric QR) on seeded random PSD unit-trace matrices.
func TestEigenvalues_MatchesGonumReference(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const n = 5

	for trial := 0; trial < 3; trial++ {
		// A = BᵀB normalized to unit trace: symmetric PSD by construction.
		b := make([][]float64, n)
		for i := range b {
			b[i] = make([]float64, n)
			for j := range b[i] {
				b[i][j] = rng.NormFloat64()
			}
		}
		a := make([][]float64, n)
		var tr float64
		for i := 0; i < n; i++ {
			a[i] = make([]float64, n)
			for j := 0; j < n; j++ {
				for k := 0; k < n; k++ {
					a[i][j] += b[k][i] * b[k][j]
				}
			}
			tr += a[i][i]
		}

		rows := make([][]complex128, n)
		flat := make([]float64, 0, n*n)
		for i := 0; i < n; i++ {
			rows[i] = make([]complex128, n)
			for j := 0; j < n; j++ {
				a[i][j] /= tr
				rows[i][j] = complex(a[i][j], 0)
				flat = append(flat, a[i][j])
			}
		}
		m := mustDense(t, rows)

		got, err := spectrum.Eigenvalues(m, nil)
		require.NoError(t, err, "trial %d", trial)
		require.Len(t, got, n)

		// Independent reference decomposition.
		var es mat.EigenSym
		require.True(t, es.Factorize(mat.NewSymDense(n, flat), false), "reference must factorize")
		ref := es.Values(nil) // ascending

		gotRe := make([]float64, n)
		for i, r := range got {
			assert.InDelta(t, 0, imag(r), 1e-9, "trial %d: eigenvalue %d must be real", trial, i)
			gotRe[i] = real(r)
		}
		sort.Float64s(gotRe)

		for i := range ref {
			assert.InDelta(t, ref[i], gotRe[i], 1e-6, "trial %d: eigenvalue %d", trial, i)
		}
	}
}

// TestEigenvalues_HermitianComplex builds a genuinely complex Hermitian PSD
// unit-trace matrix (A = BᴴB / Tr) and checks the density-matrix properties:
// real non-negative spectrum summing to 1.
func TestEigenvalues_HermitianComplex(t *testing.T) {
	b := mustDense(t, [][]complex128{
		{complex(0.4, 0.1), complex(-0.2, 0.3), complex(0.1, 0)},
		{complex(0.0, -0.5), complex(0.6, 0.1), complex(-0.3, 0.2)},
		{complex(0.2, 0.2), complex(0.1, -0.4), complex(0.5, 0)},
	})
	bh, err := cmatrix.ConjTranspose(b)
	require.NoError(t, err)
	raw, err := cmatrix.Mul(bh, b)
	require.NoError(t, err)
	tr, err := cmatrix.Trace(raw)
	require.NoError(t, err)
	a, err := cmatrix.Scale(raw, 1/tr)
	require.NoError(t, err)

	require.NoError(t, cmatrix.ValidateHermitian(a, 1e-12), "fixture must be Hermitian")

	roots, err := spectrum.Eigenvalues(a, nil)
	require.NoError(t, err)
	require.Len(t, roots, 3)

	var sum float64
	for i, r := range roots {
		assert.InDelta(t, 0, imag(r), 1e-9, "eigenvalue %d must be real", i)
		assert.GreaterOrEqual(t, real(r), -1e-9, "eigenvalue %d must be non-negative", i)
		sum += real(r)
	}
	assert.InDelta(t, 1.0, sum, 1e-9, "unit trace must survive the round trip")
}

// TestEigenvalues_NonHermitian checks the algorithm is agnostic to structure:
// for an arbitrary complex matrix the eigenvalue sum still equals Tr(A)
// (first Newton identity), even though the roots are genuinely complex.
func TestEigenvalues_NonHermitian(t *testing.T) {
	a := mustDense(t, [][]complex128{
		{complex(0.3, 0.2), complex(1.0, 0), complex(0, -0.4)},
		{complex(0, 0), complex(-0.5, 0.1), complex(0.7, 0.3)},
		{complex(0.2, 0.6), complex(0, 0), complex(0.4, -0.2)},
	})

	roots, err := spectrum.Eigenvalues(a, nil)
	require.NoError(t, err)
	require.Len(t, roots, 3)

	var sum complex128
	for _, r := range roots {
		sum += r
	}
	tr, err := cmatrix.Trace(a)
	require.NoError(t, err)
	assert.InDelta(t, real(tr), real(sum), 1e-8, "Re Σλ = Re Tr(A)")
	assert.InDelta(t, imag(tr), imag(sum), 1e-8, "Im Σλ = Im Tr(A)")
}

// TestEigenvalues_DegreeOneBoundary: a 1×1 matrix round-trips to its lone
// element.
func TestEigenvalues_DegreeOneBoundary(t *testing.T) {
	m := mustDense(t, [][]complex128{{complex(0.42, 0)}})

	roots, err := spectrum.Eigenvalues(m, nil)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.InDelta(t, 0.42, real(roots[0]), 1e-15)
	assert.InDelta(t, 0.0, imag(roots[0]), 1e-15)
}

// TestEigenvalues_NilMatrix surfaces the nil sentinel from the facade.
func TestEigenvalues_NilMatrix(t *testing.T) {
	_, err := spectrum.Eigenvalues(nil, nil)
	assert.ErrorIs(t, err, cmatrix.ErrNilMatrix)
}

// TestEigenvalues_Deterministic: the pipeline is pure — two runs over the
// same matrix agree exactly.
func TestEigenvalues_Deterministic(t *testing.T) {
	a := householderConjugate(t, []complex128{0.1, 0.2, 0.3, 0.4})

	x, err := spectrum.Eigenvalues(a, nil)
	require.NoError(t, err)
	y, err := spectrum.Eigenvalues(a, nil)
	require.NoError(t, err)

	assert.Equal(t, x, y)
}
