package spectrum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvantor/spectra/spectrum"
)

// naiveAux is the textbook unmemoized recursion:
//
//	aux(0) = 1
//	aux(m) = -(1/m) · Σ_{k=1..m} aux(m-k) · traces[k-1]
//
// Exponential in m; used only as an independent oracle for small degrees.
func naiveAux(m int, traces []complex128) complex128 {
	if m == 0 {
		return 1
	}
	var sum complex128
	for k := 1; k <= m; k++ {
		sum += naiveAux(m-k, traces) * traces[k-1]
	}

	return -sum / complex(float64(m), 0)
}

// TestCoefficients_LeadingOneExact pins the contract that coeffs[0] is the
// exact literal 1, carrying no floating error, for every valid degree.
func TestCoefficients_LeadingOneExact(t *testing.T) {
	traces := []complex128{1, 0.5, 0.25, 0.125, 0.0625, 0.03125}
	for d := 1; d <= len(traces); d++ {
		coeffs, err := spectrum.Coefficients(d, traces)
		require.NoError(t, err, "d=%d", d)
		require.Len(t, coeffs, d+1, "d=%d", d)
		assert.Equal(t, complex(1, 0), coeffs[0], "leading coefficient must be exactly 1 at d=%d", d)
	}
}

// TestCoefficients_InvalidDimension covers d < 1 and a short trace vector.
func TestCoefficients_InvalidDimension(t *testing.T) {
	_, err := spectrum.Coefficients(0, []complex128{1})
	assert.ErrorIs(t, err, spectrum.ErrInvalidDimension, "d=0 must error")

	_, err = spectrum.Coefficients(-3, nil)
	assert.ErrorIs(t, err, spectrum.ErrInvalidDimension, "negative d must error")

	_, err = spectrum.Coefficients(3, []complex128{1, 0.5})
	assert.ErrorIs(t, err, spectrum.ErrInvalidDimension, "too few traces must error")
}

// TestCoefficients_DegreeOneBoundary checks d=1: p(x) = x - Tr(A).
func TestCoefficients_DegreeOneBoundary(t *testing.T) {
	coeffs, err := spectrum.Coefficients(1, []complex128{complex(0.7, 0)})
	require.NoError(t, err)
	require.Len(t, coeffs, 2)
	assert.Equal(t, complex(1, 0), coeffs[0])
	assert.InDelta(t, -0.7, real(coeffs[1]), 1e-15)
	assert.InDelta(t, 0.0, imag(coeffs[1]), 1e-15)
}

// TestCoefficients_DensityMatrixScenario reproduces a 4×4 Hermitian
// unit-trace case: trace powers [1, 0.4372, 0.2299, 0.1290] must yield
// coefficients ≈ [1, -1, 0.2814, -0.0247, 0.00065] (monic,
// highest-degree-first). Note the five-orders-of-magnitude spread between
// the leading and trailing coefficient at d as small as 4.
func TestCoefficients_DensityMatrixScenario(t *testing.T) {
	traces := []complex128{1.0, 0.4372, 0.2299, 0.1290}

	coeffs, err := spectrum.Coefficients(4, traces)
	require.NoError(t, err)
	require.Len(t, coeffs, 5)

	want := []float64{1, -1, 0.2814, -0.0247, 0.00065}
	for k := range want {
		assert.InDelta(t, want[k], real(coeffs[k]), 1e-4, "coefficient %d", k)
		assert.InDelta(t, 0.0, imag(coeffs[k]), 1e-12, "coefficient %d must stay real", k)
	}

	spread := spectrum.CoefficientSpread(coeffs)
	assert.Greater(t, spread, 1e3, "magnitude spread must be visible in the diagnostic")
}

// TestCoefficients_MatchesNaiveRecursion proves the bottom-up table computes
// exactly what the unmemoized recursion defines, for every m up to d=6.
func TestCoefficients_MatchesNaiveRecursion(t *testing.T) {
	traces := []complex128{
		complex(1.0, 0.1),
		complex(0.44, -0.2),
		complex(0.23, 0.05),
		complex(0.13, 0),
		complex(0.08, -0.01),
		complex(0.05, 0.02),
	}
	const d = 6

	coeffs, err := spectrum.Coefficients(d, traces)
	require.NoError(t, err)

	for m := 0; m <= d; m++ {
		want := naiveAux(m, traces)
		assert.InDelta(t, real(want), real(coeffs[m]), 1e-12, "Re aux(%d)", m)
		assert.InDelta(t, imag(want), imag(coeffs[m]), 1e-12, "Im aux(%d)", m)
	}
}

// TestCoefficients_IgnoresExtraTraces ensures only the first d entries are
// consumed.
func TestCoefficients_IgnoresExtraTraces(t *testing.T) {
	base := []complex128{1, 0.4, 0.2}
	padded := append(append([]complex128{}, base...), 99, -42)

	a, err := spectrum.Coefficients(3, base)
	require.NoError(t, err)
	b, err := spectrum.Coefficients(3, padded)
	require.NoError(t, err)

	assert.Equal(t, a, b, "extra traces must not change the result")
}

// TestCoefficientSpread covers the degenerate and typical diagnostic cases.
func TestCoefficientSpread(t *testing.T) {
	assert.Equal(t, 0.0, spectrum.CoefficientSpread(nil), "empty input")
	assert.Equal(t, 0.0, spectrum.CoefficientSpread([]complex128{0, 0}), "all-zero input")
	assert.Equal(t, 1.0, spectrum.CoefficientSpread([]complex128{complex(3, 0)}), "single nonzero")

	spread := spectrum.CoefficientSpread([]complex128{1, -1, 0.2814, -0.0247, 0.00065})
	assert.InDelta(t, 1/0.00065, spread, 1e-6, "largest over smallest nonzero magnitude")
}
