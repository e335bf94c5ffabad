// SPDX-License-Identifier: MIT

// Package cmatrix: linear-algebra kernels over any Matrix implementation —
// elementwise addition/subtraction, scalar scaling, matrix multiplication,
// conjugate transpose, trace, and matrix-vector products. All kernels perform
// strict fail-fast validation and return sentinel errors on dimension
// mismatches; operands are never mutated.

package cmatrix

import (
	"fmt"
	"math/cmplx"
)

// ZeroSum is the initial accumulator value for dot-product style loops.
const ZeroSum = complex(0, 0)

// Operation name constants for unified error wrapping (no magic strings).
const (
	opAdd           = "Add"
	opSub           = "Sub"
	opMul           = "Mul"
	opScale         = "Scale"
	opConjTranspose = "ConjTranspose"
	opTrace         = "Trace"
	opMatVec        = "MatVec"
)

// kernelErrorf wraps err with an operation tag, preserving the sentinel via
// %w. Use only when err != nil.
func kernelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Shared validation/allocation/fast-path for Add and Sub.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b); allocate result Dense.
//   - Stage 2: fast path if both are *Dense — single flat loop 0..n-1;
//     otherwise At/Set fallback with fixed i→j order.
//
// Complexity: Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sign complex128, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, kernelErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, kernelErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv complex128
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return nil, kernelErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return nil, kernelErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, av+sign*bv); err != nil {
				return nil, kernelErrorf(opTag, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Add computes the elementwise sum C = A + B into a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the elementwise difference C = A - B into a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Scale returns a new matrix whose elements are alpha * m[i,j].
// The original matrix is never mutated; NaN/Inf in alpha propagates through
// the result policy of the fresh Dense.
//
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha complex128) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, kernelErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, kernelErrorf(opScale, err)
	}

	// Fast path for *Dense.
	if dm, ok := m.(*Dense); ok {
		n := rows * cols
		for idx := 0; idx < n; idx++ {
			res.data[idx] = dm.data[idx] * alpha
		}

		return res, nil
	}

	// Fallback: generic interface loop.
	var i, j int
	var v complex128
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, kernelErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, v*alpha); err != nil {
				return nil, kernelErrorf(opScale, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate C.
//   - Stage 2: if A and B are *Dense, use i→k→j with row-major strides and
//     skip zero A[i,k]; otherwise i→j→k via At/Set in fixed order.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, kernelErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, kernelErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current complex128
	)
	// Fast path for two Dense matrices: row-major multiplication into res.data.
	// da.data layout: i*aCols + k; db.data layout: k*bCols + j.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple loop (i→j→k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, kernelErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, kernelErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, kernelErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// ConjTranspose returns a new matrix with Aᴴ[j,i] = conj(A[i,j]).
// For real-valued inputs this is the plain transpose.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func ConjTranspose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, kernelErrorf(opConjTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, kernelErrorf(opConjTranspose, err)
	}

	var i, j int
	// Fast path: data[i*cols + j] → res.data[j*rows + i].
	if dm, ok := m.(*Dense); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = cmplx.Conj(dm.data[baseSrc+j])
			}
		}

		return res, nil
	}

	// Fallback: generic interface loop.
	var v complex128
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, kernelErrorf(opConjTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, cmplx.Conj(v)); err != nil {
				return nil, kernelErrorf(opConjTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return res, nil
}

// Trace returns the sum of diagonal entries of a square matrix.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
// Complexity: Time O(n), Space O(1).
func Trace(m Matrix) (complex128, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, kernelErrorf(opTrace, err)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, kernelErrorf(opTrace, err)
	}

	n := m.Rows()
	sum := ZeroSum

	// Fast path: stride directly over the diagonal of the flat buffer.
	if dm, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			sum += dm.data[i*n+i]
		}

		return sum, nil
	}

	// Fallback via At.
	var v complex128
	var err error
	for i := 0; i < n; i++ {
		v, err = m.At(i, i)
		if err != nil {
			return 0, kernelErrorf(opTrace, fmt.Errorf("At(%d,%d): %w", i, i, err))
		}
		sum += v
	}

	return sum, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []complex128) ([]complex128, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, kernelErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, kernelErrorf(opMatVec, err)
	}

	rows, cols := m.Rows(), m.Cols()
	y := make([]complex128, rows)

	// Fast path: *Dense allows flat, row-major dot products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc, xv complex128
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				xv = x[j]
				if xv != 0 { // skip zero multiplications
					acc += d.data[base+j] * xv
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot products via At.
	var i, j int
	var mv complex128
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, kernelErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}
