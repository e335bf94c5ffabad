// SPDX-License-Identifier: MIT
// Package cmatrix: public Matrix contract.

package cmatrix

// Matrix is the minimal complex matrix contract consumed by the kernels in
// this package and by the spectral pipeline built on top of it.
//
// Implementations must keep At/Set safe (sentinel errors, no panics) and
// Clone must return a fully independent deep copy.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At returns the element at (row, col) or ErrOutOfRange.
	At(row, col int) (complex128, error)

	// Set stores v at (row, col); returns ErrOutOfRange on bad indices or
	// ErrNaNInf when the implementation enforces a finite-only policy.
	Set(row, col int, v complex128) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}

// DefaultValidateNaNInf is the package-wide default for the finite-only
// numeric policy applied by constructors. Instances created by NewDense,
// FromRows and Identity reject NaN/±Inf components on Set unless the flag
// is overridden per instance.
const DefaultValidateNaNInf = true
