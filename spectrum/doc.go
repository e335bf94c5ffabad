// Package spectrum computes the eigenvalues of a square complex matrix
// without a general eigen-decomposition, via the characteristic polynomial:
//
//  1. TracePowers   — Tr(A¹), Tr(A²), …, Tr(A^d)             (matrix → traces)
//  2. Coefficients  — Faddeev–LeVerrier / Newton's identities (traces → coefficients)
//  3. Roots         — polynomial root extraction              (coefficients → eigenvalues)
//
// Data flows strictly one way; each stage is a pure function over
// exclusively-owned slices, with no shared state between invocations.
// Eigenvalues() chains the three stages for the common case.
//
// The intended workload is density matrices (Hermitian, positive
// semidefinite, unit trace — quantum states), whose eigenvalues are real and
// non-negative, but nothing in the pipeline requires that structure: any
// square matrix works, the roots are simply complex in general.
//
// Coefficient convention (fixed, see Coefficients): the returned slice is
// monic highest-degree-first, coeffs[0] == 1 exactly, so
//
//	p(x) = x^d + coeffs[1]·x^(d-1) + … + coeffs[d].
//
// Numeric-stability caveat: the Faddeev–LeVerrier recursion produces
// coefficients whose magnitudes span many orders as d grows (for a 4×4
// density matrix the trailing coefficient is already ~1e-4 while the leading
// one is 1). This precision loss is inherent to the algorithm — the package
// surfaces it via CoefficientSpread instead of hiding it. For large d prefer
// a direct eigen-decomposition.
package spectrum
