// SPDX-License-Identifier: MIT
// Package cmatrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the cmatrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package cmatrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "cmatrix: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) at the
// outer boundary when context is essential — callers still match with
// errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("cmatrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("cmatrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub with different shapes, Mul where a.Cols != b.Rows, or a
	// square matrix required but not supplied.
	ErrDimensionMismatch = errors.New("cmatrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("cmatrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf component (real or imaginary) where
	// finite values are required by the numeric policy (Set/Apply).
	ErrNaNInf = errors.New("cmatrix: NaN or Inf encountered")

	// ErrNotHermitian signals that a matrix expected to be Hermitian violated
	// A[i,j] == conj(A[j,i]) beyond the configured tolerance.
	ErrNotHermitian = errors.New("cmatrix: matrix is not Hermitian within tol")

	// ErrRaggedRows signals that FromRows received rows of unequal length.
	ErrRaggedRows = errors.New("cmatrix: ragged row lengths")
)
