// Package spectrum defines options for the root-extraction stage.

package spectrum

// Method selects the polynomial root-finding backend used by Roots.
//
//   - MethodAuto         — Companion when every coefficient is real within
//     Options.ImagTol, Durand–Kerner otherwise. The sensible default.
//   - MethodDurandKerner — simultaneous Weierstrass iteration on the monic
//     polynomial. Handles arbitrary complex coefficients; convergence is
//     governed by Options.Tol and Options.MaxIter.
//   - MethodCompanion    — eigenvalues of the real companion matrix,
//     delegated to gonum. Requires real coefficients (within ImagTol).
type Method int

const (
	// MethodAuto picks Companion for real coefficients, Durand–Kerner otherwise.
	MethodAuto Method = iota

	// MethodDurandKerner forces the Weierstrass simultaneous iteration.
	MethodDurandKerner

	// MethodCompanion forces the companion-matrix eigenvalue route.
	MethodCompanion
)

// Default solver parameters. Exposed so callers can reason about (and tests
// can pin) the convergence contract.
const (
	// DefaultTol is the convergence threshold on the maximum root
	// displacement per Durand–Kerner sweep.
	DefaultTol = 1e-12

	// DefaultMaxIter caps the number of Durand–Kerner sweeps before the
	// solver reports ErrSolverDivergence.
	DefaultMaxIter = 500

	// DefaultImagTol is the per-coefficient |imag| threshold under which a
	// coefficient vector counts as real for backend selection.
	DefaultImagTol = 1e-12
)

// Options configures the Roots stage.
//
// Fields:
//   - Method  — root-finding backend (see Method).
//   - Tol     — Durand–Kerner convergence threshold; values <= 0 fall back
//     to DefaultTol.
//   - MaxIter — Durand–Kerner sweep cap; values <= 0 fall back to
//     DefaultMaxIter.
//   - ImagTol — realness threshold for MethodAuto/MethodCompanion; values
//     <= 0 fall back to DefaultImagTol.
//
// A nil *Options anywhere in the package means DefaultOptions().
type Options struct {
	Method  Method
	Tol     float64
	MaxIter int
	ImagTol float64
}

// DefaultOptions returns the canonical solver configuration.
func DefaultOptions() Options {
	return Options{
		Method:  MethodAuto,
		Tol:     DefaultTol,
		MaxIter: DefaultMaxIter,
		ImagTol: DefaultImagTol,
	}
}

// normalized resolves nil and non-positive fields to defaults, returning a
// value copy safe to use without further guards.
func (o *Options) normalized() Options {
	out := DefaultOptions()
	if o == nil {
		return out
	}
	out.Method = o.Method
	if o.Tol > 0 {
		out.Tol = o.Tol
	}
	if o.MaxIter > 0 {
		out.MaxIter = o.MaxIter
	}
	if o.ImagTol > 0 {
		out.ImagTol = o.ImagTol
	}

	return out
}
