// SPDX-License-Identifier: MIT

// Package cmatrix provides a small, deterministic complex-valued dense
// matrix layer: row-major storage, safe accessors, and the handful of
// linear-algebra kernels (Mul, Trace, ConjTranspose, ...) required by
// spectral routines built on top of it.
//
// Design rules:
//   - Public surface never panics on user errors; every failure is one of
//     the package sentinels (errors.go) matched via errors.Is.
//   - All kernels run in fixed loop orders — identical inputs always yield
//     bit-identical outputs.
//   - Hot paths special-case *Dense and index the flat backing slice
//     directly; any other Matrix implementation falls back to At/Set.
//   - A per-instance numeric policy (on by default) rejects NaN/±Inf
//     components at Set/Apply time, keeping garbage out of downstream
//     algorithms.
//
// The element type is complex128 throughout. Real-valued callers simply
// pass values with zero imaginary parts; nothing in the package assumes
// Hermiticity or any other structure unless a validator is invoked
// explicitly (ValidateHermitian).
package cmatrix
