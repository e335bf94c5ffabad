// Package spectra computes the spectrum of a density matrix — or any square
// complex matrix — without calling a general eigen-decomposition.
//
// 🚀 What is spectra?
//
//	A small, deterministic, pure-Go pipeline built from three stages:
//		• Trace powers: Tr(A¹), Tr(A²), …, Tr(A^d)
//		• Characteristic polynomial: Faddeev–LeVerrier / Newton's identities
//		• Roots: Durand–Kerner or companion-matrix extraction
//
// ✨ Why choose spectra?
//
//   - Minimal API – three pure functions plus one convenience facade
//   - Predictable – fixed loop orders, sentinel errors, no panics, no I/O
//   - Honest about precision – coefficient-spread diagnostics instead of
//     silently degrading results at large dimension
//
// Everything is organized under two subpackages:
//
//	cmatrix/  — complex dense matrices: storage, kernels (Mul, Trace, …), validators
//	spectrum/ — the pipeline: TracePowers, Coefficients, Roots, Eigenvalues
//
// Quick sketch:
//
//	rho, _ := cmatrix.FromRows([][]complex128{
//		{0.50, 0.25},
//		{0.25, 0.50},
//	})
//	eigs, _ := spectrum.Eigenvalues(rho, nil) // {0.25, 0.75}
//
// The intended workload is quantum density matrices (Hermitian, positive
// semidefinite, unit trace), whose eigenvalues are the mixture
// probabilities of the state — but no stage enforces that structure, and
// arbitrary square matrices yield their (complex) spectra just as well.
package spectra
