package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// dkSeed is the base of the deterministic Durand–Kerner starting points:
// root i is initialized to dkSeed^i. The value is the conventional choice —
// neither real nor a root of unity, so the initial estimates are distinct
// and asymmetric.
const dkSeed = complex(0.4, 0.9)

// Roots extracts all d roots (with multiplicity) of the degree-d polynomial
// whose coefficients are given monic-style, highest degree first:
//
//	p(x) = coeffs[0]·x^d + coeffs[1]·x^(d-1) + … + coeffs[d], d = len(coeffs)-1.
//
// The leading coefficient must be nonzero; vectors produced by Coefficients
// always have coeffs[0] == 1. The input is normalized to monic internally
// and never mutated. Any reordering a backend needs happens inside its
// adapter — callers only ever see the highest-degree-first convention.
//
// The result carries no ordering guarantee beyond determinism: identical
// input (and Options) yields an identical slice. Callers needing a canonical
// order must sort as a presentation step.
//
// Errors:
//   - ErrInvalidDimension    — fewer than two coefficients (degree < 1).
//   - ErrDegenerateInput     — leading coefficient is zero.
//   - ErrComplexCoefficients — MethodCompanion forced on complex input.
//   - ErrSolverDivergence    — backend failed to converge.
//
// Complexity: O(d²) per Durand–Kerner sweep; O(d³) for the companion route.
func Roots(coeffs []complex128, opts *Options) ([]complex128, error) {
	o := opts.normalized()

	d := len(coeffs) - 1
	if d < 1 {
		return nil, fmt.Errorf("Roots: %d coefficients: %w", len(coeffs), ErrInvalidDimension)
	}
	lead := coeffs[0]
	if lead == 0 {
		return nil, fmt.Errorf("Roots: %w", ErrDegenerateInput)
	}

	// Normalize to monic into a private copy (the usual no-op for vectors
	// coming out of Coefficients, where the lead is exactly 1).
	monic := make([]complex128, d+1)
	if lead == 1 {
		copy(monic, coeffs)
	} else {
		for i, c := range coeffs {
			monic[i] = c / lead
		}
	}

	// Degree 1 solves in closed form; no backend involved.
	if d == 1 {
		return []complex128{-monic[1]}, nil
	}

	switch o.Method {
	case MethodCompanion:
		if !realWithin(monic, o.ImagTol) {
			return nil, fmt.Errorf("Roots: %w", ErrComplexCoefficients)
		}

		return companionRoots(monic)
	case MethodDurandKerner:
		return durandKernerRoots(monic, o.Tol, o.MaxIter)
	default: // MethodAuto
		if realWithin(monic, o.ImagTol) {
			return companionRoots(monic)
		}

		return durandKernerRoots(monic, o.Tol, o.MaxIter)
	}
}

// realWithin reports whether every coefficient has |imag| <= tol.
func realWithin(coeffs []complex128, tol float64) bool {
	for _, c := range coeffs {
		if math.Abs(imag(c)) > tol {
			return false
		}
	}

	return true
}

// horner evaluates the monic highest-degree-first polynomial at z.
func horner(monic []complex128, z complex128) complex128 {
	acc := monic[0]
	for i := 1; i < len(monic); i++ {
		acc = acc*z + monic[i]
	}

	return acc
}

// durandKernerRoots runs the Weierstrass simultaneous iteration on a monic
// polynomial: every root estimate is refined by
//
//	z_i ← z_i − p(z_i) / Π_{j≠i}(z_i − z_j)
//
// with deterministic starting points dkSeed^i and in-place (Gauss–Seidel
// style) updates in fixed index order. A sweep whose maximum displacement
// drops below tol is converged; exhausting maxIter sweeps is
// ErrSolverDivergence. A collided denominator skips that root for the sweep
// (the neighbours' updates separate the estimates on the next pass).
//
// Complexity: O(d²) per sweep, O(maxIter·d²) worst case; Space O(d).
func durandKernerRoots(monic []complex128, tol float64, maxIter int) ([]complex128, error) {
	d := len(monic) - 1

	// Deterministic initial estimates: powers of the seed.
	roots := make([]complex128, d)
	z := complex(1, 0)
	for i := 0; i < d; i++ {
		roots[i] = z
		z *= dkSeed
	}

	var (
		iter, i, j int
		maxDelta   float64
		num, den   complex128
		delta      complex128
	)
	for iter = 0; iter < maxIter; iter++ {
		maxDelta = 0
		for i = 0; i < d; i++ {
			num = horner(monic, roots[i])
			den = 1
			for j = 0; j < d; j++ {
				if j == i {
					continue
				}
				den *= roots[i] - roots[j]
			}
			if den == 0 {
				continue // collided estimates; let the other updates separate them
			}
			delta = num / den
			roots[i] -= delta
			if a := cmplx.Abs(delta); a > maxDelta {
				maxDelta = a
			}
		}
		if maxDelta < tol {
			return roots, nil
		}
		if math.IsNaN(maxDelta) || math.IsInf(maxDelta, 0) {
			break // numeric blow-up; report divergence rather than garbage
		}
	}

	return nil, fmt.Errorf("Roots: Durand-Kerner after %d sweeps: %w", maxIter, ErrSolverDivergence)
}

// companionRoots returns the eigenvalues of the companion matrix of a monic
// real-coefficient polynomial, delegating the eigenproblem to gonum.
//
// For p(x) = x^d + a_{d-1}·x^(d-1) + … + a_0 the companion matrix carries
// ones on the subdiagonal and −a_0…−a_{d-1} in the last column; its
// eigenvalues are exactly the roots of p. With the highest-degree-first
// input convention, a_k = monic[d−k].
//
// Complexity: O(d³) (general real eigenproblem), Space O(d²).
func companionRoots(monic []complex128) ([]complex128, error) {
	d := len(monic) - 1

	c := mat.NewDense(d, d, nil)
	for i := 1; i < d; i++ {
		c.Set(i, i-1, 1) // subdiagonal ones
	}
	for i := 0; i < d; i++ {
		c.Set(i, d-1, -real(monic[d-i])) // last column: -a_i, a_i = coeff of x^i
	}

	var eig mat.Eigen
	if ok := eig.Factorize(c, mat.EigenNone); !ok {
		return nil, fmt.Errorf("Roots: companion eigensolve: %w", ErrSolverDivergence)
	}

	return eig.Values(nil), nil
}
