package spectrum

import (
	"fmt"
	"math/cmplx"
)

// Coefficients derives the d+1 characteristic-polynomial coefficients from
// the trace-power sequence via the Faddeev–LeVerrier specialization of
// Newton's identities.
//
// Convention (fixed, see package doc): monic highest-degree-first —
// coeffs[0] == 1 exactly (written as the literal, never computed), and
//
//	p(x) = x^d + coeffs[1]·x^(d-1) + … + coeffs[d].
//
// Algorithm Outline (bottom-up DP, memoization is part of the contract):
//  1. Allocate aux[0..d]; aux[0] = 1.
//  2. For m = 1..d:
//     aux[m] = −(1/m) · Σ_{k=1..m} aux[m−k] · traces[k−1]
//     (traces is 0-based: traces[0] = Tr(A¹)).
//  3. coeffs[k] = aux[k] for k = 0..d.
//
// The recursion is naturally exponential when evaluated naively; the fixed
// aux table makes every aux[m] computed exactly once, for O(d²) total work.
// Only the first d entries of traces are consumed; extras are ignored.
//
// Numeric stability: coefficient magnitudes span many orders as d grows
// (leading 1 vs trailing ~1e-4 already at d=4 for a density matrix). The
// values are returned as computed — never clipped or rounded. Use
// CoefficientSpread to inspect the spread before trusting roots at large d.
//
// Errors:
//   - ErrInvalidDimension — d < 1 or len(traces) < d.
//
// Complexity: Time O(d²), Space O(d).
func Coefficients(d int, traces []complex128) ([]complex128, error) {
	if d < 1 {
		return nil, fmt.Errorf("Coefficients: d=%d: %w", d, ErrInvalidDimension)
	}
	if len(traces) < d {
		return nil, fmt.Errorf("Coefficients: %d traces for d=%d: %w", len(traces), d, ErrInvalidDimension)
	}

	// Bottom-up table of auxiliary values; aux[m] is filled before any
	// aux[m'] with m' > m reads it.
	aux := make([]complex128, d+1)
	aux[0] = 1

	var m, k int
	var sum complex128
	for m = 1; m <= d; m++ {
		sum = 0
		for k = 1; k <= m; k++ {
			sum += aux[m-k] * traces[k-1]
		}
		aux[m] = -sum / complex(float64(m), 0)
	}

	return aux, nil
}

// CoefficientSpread reports the ratio of the largest to the smallest nonzero
// coefficient magnitude — the informational precision diagnostic for the
// Faddeev–LeVerrier route. A large spread (≫1e12 in float64) means the
// trailing coefficients carry few significant digits and the extracted roots
// degrade accordingly. This is a value, not an error: the computation
// proceeds regardless.
//
// Returns 0 when coeffs is empty or all-zero; 1 when a single magnitude
// dominates trivially (one nonzero coefficient).
func CoefficientSpread(coeffs []complex128) float64 {
	var largest, smallest float64
	var a float64
	for _, c := range coeffs {
		a = cmplx.Abs(c)
		if a == 0 {
			continue
		}
		if largest == 0 || a > largest {
			largest = a
		}
		if smallest == 0 || a < smallest {
			smallest = a
		}
	}
	if largest == 0 {
		return 0
	}

	return largest / smallest
}
