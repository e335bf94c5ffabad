// SPDX-License-Identifier: MIT
// Package: cmatrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating shape/nil/Hermiticity checks here.
//   - Return sentinel errors wrapped with the validator tag so call sites can
//     wrap uniformly and callers can still match with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - The Hermiticity check runs O(n²) on the upper triangle only.

package cmatrix

import (
	"fmt"
	"math/cmplx"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure). Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil → NotNil → SameShape check
// used by the elementwise kernels.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil. Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols == b.Rows.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and has exactly length n.
// Complexity: O(1).
func ValidateVecLen(x []complex128, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse the "nil argument" sentinel
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateHermitian checks that m is square and A[i,j] == conj(A[j,i]) within
// tol (absolute, per entry), including |Im(A[i,i])| <= tol on the diagonal.
//
// Spectral callers that require real eigenvalues should fail fast with this
// validator; the pipeline itself never invokes it (the characteristic
// polynomial route works for any square matrix).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNotHermitian.
//
// Complexity: Time O(n²), Space O(1).
func ValidateHermitian(m Matrix, tol float64) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateSquare(m); err != nil {
		return err
	}

	n := m.Rows()
	var i, j int
	var aij, aji complex128
	var err error
	for i = 0; i < n; i++ {
		// Diagonal entries of a Hermitian matrix are real.
		aij, err = m.At(i, i)
		if err != nil {
			return validatorErrorf("ValidateHermitian", err)
		}
		if abs1(imag(aij)) > tol {
			return validatorErrorf("ValidateHermitian", ErrNotHermitian)
		}
		for j = i + 1; j < n; j++ {
			aij, err = m.At(i, j)
			if err != nil {
				return validatorErrorf("ValidateHermitian", err)
			}
			aji, err = m.At(j, i)
			if err != nil {
				return validatorErrorf("ValidateHermitian", err)
			}
			if cmplx.Abs(aij-cmplx.Conj(aji)) > tol {
				return validatorErrorf("ValidateHermitian", ErrNotHermitian)
			}
		}
	}

	return nil
}

// abs1 is a tiny float64 absolute value helper (avoids a math import here).
func abs1(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
