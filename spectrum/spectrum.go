package spectrum

import (
	"fmt"

	"github.com/kvantor/spectra/cmatrix"
)

// Eigenvalues runs the full pipeline on a square matrix A of side length d:
// trace powers → characteristic-polynomial coefficients → roots. The result
// is the complete multiset of A's eigenvalues, exactly d values, in the
// (deterministic but otherwise unspecified) order of the root solver.
//
// For a density matrix — Hermitian, positive semidefinite, unit trace — the
// eigenvalues are real within solver noise (|imag| ≲ 1e-12 relative) and
// non-negative, and they sum to 1. Nothing enforces that structure here;
// non-Hermitian inputs simply yield genuinely complex eigenvalues.
//
// opts configures the root solver only; nil means DefaultOptions().
//
// Errors: ErrInvalidDimension, cmatrix.ErrNilMatrix, ErrDegenerateInput,
// ErrSolverDivergence — all surfaced immediately, none recovered internally.
func Eigenvalues(m cmatrix.Matrix, opts *Options) ([]complex128, error) {
	if err := cmatrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("Eigenvalues: %w", err)
	}
	d := m.Rows()

	traces, err := TracePowers(m, d)
	if err != nil {
		return nil, fmt.Errorf("Eigenvalues: %w", err)
	}

	coeffs, err := Coefficients(d, traces)
	if err != nil {
		return nil, fmt.Errorf("Eigenvalues: %w", err)
	}

	roots, err := Roots(coeffs, opts)
	if err != nil {
		return nil, fmt.Errorf("Eigenvalues: %w", err)
	}

	return roots, nil
}
