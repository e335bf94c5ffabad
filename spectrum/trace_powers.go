package spectrum

import (
	"fmt"

	"github.com/kvantor/spectra/cmatrix"
)

// TracePowers computes the ordered sequence Tr(A¹), Tr(A²), …, Tr(A^d) for a
// square matrix A of side length d.
//
// Algorithm Outline:
//  1. Validate: A non-nil, square, d ≥ 1, d == side length of A.
//  2. traces[0] = Tr(A).
//  3. For i = 2..d: P ← P·A (incremental power, never recomputed from
//     scratch), traces[i-1] = Tr(P).
//
// The output has exactly d entries and is independent of A's lifetime
// (freshly allocated, caller-owned). A is never mutated.
//
// Errors:
//   - ErrInvalidDimension — A not square, d < 1, or d != A's side length.
//   - cmatrix.ErrNilMatrix — A is nil.
//
// Complexity: Time O(d·d³) = O(d⁴) with the naive Mul kernel, Space O(d²)
// for the running power.
func TracePowers(m cmatrix.Matrix, d int) ([]complex128, error) {
	// Stage 1: validate input.
	if err := cmatrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("TracePowers: %w", err)
	}
	if m.Rows() != m.Cols() {
		return nil, fmt.Errorf("TracePowers: non-square %dx%d: %w", m.Rows(), m.Cols(), ErrInvalidDimension)
	}
	if d < 1 || d != m.Rows() {
		return nil, fmt.Errorf("TracePowers: d=%d for %dx%d matrix: %w", d, m.Rows(), m.Cols(), ErrInvalidDimension)
	}

	// Stage 2: first power is A itself.
	traces := make([]complex128, d)
	tr, err := cmatrix.Trace(m)
	if err != nil {
		return nil, fmt.Errorf("TracePowers: %w", err)
	}
	traces[0] = tr

	// Stage 3: incremental powers P ← P·A, tracing each.
	power := m
	for i := 2; i <= d; i++ {
		power, err = cmatrix.Mul(power, m)
		if err != nil {
			return nil, fmt.Errorf("TracePowers: power %d: %w", i, err)
		}
		tr, err = cmatrix.Trace(power)
		if err != nil {
			return nil, fmt.Errorf("TracePowers: power %d: %w", i, err)
		}
		traces[i-1] = tr
	}

	return traces, nil
}
