// Package spectrum: sentinel error set. All stages return these sentinels
// (possibly wrapped with stage context via %w); tests match with errors.Is.

package spectrum

import "errors"

var (
	// ErrInvalidDimension is returned when the input matrix is not square,
	// the declared dimension d does not match the matrix side length or the
	// trace-vector length, or d < 1. Raised eagerly at stage entry; never
	// recovered internally.
	ErrInvalidDimension = errors.New("spectrum: invalid dimension")

	// ErrDegenerateInput is returned when the effective leading coefficient
	// of the polynomial is zero, collapsing its degree. Coefficients()
	// always emits a monic polynomial, so this guards hand-built input.
	ErrDegenerateInput = errors.New("spectrum: degenerate polynomial (zero leading coefficient)")

	// ErrSolverDivergence is returned when the root solver fails to converge
	// within Options.MaxIter sweeps at Options.Tol. Surfaced to the caller
	// rather than returning partial roots; retrying is pointless — the
	// computation is deterministic.
	ErrSolverDivergence = errors.New("spectrum: root solver did not converge")

	// ErrComplexCoefficients is returned when MethodCompanion is forced on a
	// coefficient vector with imaginary parts above Options.ImagTol; the
	// companion backend is real-valued.
	ErrComplexCoefficients = errors.New("spectrum: companion solver requires real coefficients")
)
