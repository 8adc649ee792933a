/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package data

import (
	"math"

	uq "github.com/uqlab-project/uqlab/internal"
	"github.com/uqlab-project/uqlab/sample"
)

// Matrix wraps a slice of Vector elements. It represents a row-major
// matrix: the i-th element of a matrix is its i-th row.
type Matrix []Vector

// NewMatrix accepts a slice of Vector elements and returns
// a new Matrix instance. It returns an error if the rows
// differ in length.
func NewMatrix(rows []Vector) (Matrix, error) {
	l := -1
	newRows := make([]Vector, len(rows))
	for i, v := range rows {
		if l >= 0 && len(v) != l {
			return nil, uq.DimensionMismatch
		}
		l = len(v)
		newRows[i] = v.Copy()
	}

	return Matrix(newRows), nil
}

// NewRandomMatrix returns a new Matrix instance
// with random elements sampled by the provided sample.Sampler.
// Returns an error in case of sampling failure.
func NewRandomMatrix(rows, cols int, sampler sample.Sampler) (Matrix, error) {
	mat := make([]Vector, rows)
	for i := 0; i < rows; i++ {
		vec, err := NewRandomVector(cols, sampler)
		if err != nil {
			return nil, err
		}
		mat[i] = vec
	}

	return Matrix(mat), nil
}

// NewConstantMatrix returns a new Matrix instance
// with all elements set to constant c.
func NewConstantMatrix(rows, cols int, c float64) Matrix {
	mat := make([]Vector, rows)
	for i := 0; i < rows; i++ {
		mat[i] = NewConstantVector(cols, c)
	}

	return mat
}

// NewIdentityMatrix returns the identity matrix of the given dimension.
func NewIdentityMatrix(n int) Matrix {
	mat := NewConstantMatrix(n, n, 0)
	for i := 0; i < n; i++ {
		mat[i][i] = 1
	}

	return mat
}

// Rows returns the number of rows of matrix m.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns of matrix m.
func (m Matrix) Cols() int {
	if len(m) != 0 {
		return len(m[0])
	}

	return 0
}

// DimsMatch returns a bool indicating whether matrices
// m and other have the same dimensions.
func (m Matrix) DimsMatch(other Matrix) bool {
	return m.Rows() == other.Rows() && m.Cols() == other.Cols()
}

// CheckDims returns a bool indicating whether matrix m has
// the given dimensions.
func (m Matrix) CheckDims(rows, cols int) bool {
	return m.Rows() == rows && m.Cols() == cols
}

// GetCol returns i-th column of matrix m as a vector.
// It returns an error if i >= the number of m's columns.
func (m Matrix) GetCol(i int) (Vector, error) {
	if i >= m.Cols() {
		return nil, uq.DimensionMismatch
	}

	column := make([]float64, m.Rows())
	for j, row := range m {
		column[j] = row[i]
	}

	return NewVector(column), nil
}

// Transpose transposes matrix m and returns
// the result in a new Matrix.
func (m Matrix) Transpose() Matrix {
	transposed := make([]Vector, m.Cols())
	for i := 0; i < m.Cols(); i++ {
		transposed[i], _ = m.GetCol(i)
	}

	return Matrix(transposed)
}

// Copy creates a new matrix with the same values of the entries.
func (m Matrix) Copy() Matrix {
	mat := make([]Vector, m.Rows())
	for i, row := range m {
		mat[i] = row.Copy()
	}

	return Matrix(mat)
}

// Apply applies an element-wise function f to matrix m.
// The result is returned in a new Matrix.
func (m Matrix) Apply(f func(float64) float64) Matrix {
	res := make([]Vector, len(m))

	for i, row := range m {
		res[i] = row.Apply(f)
	}

	return Matrix(res)
}

// Add adds matrices m and other.
// The result is returned in a new Matrix.
// Error is returned if m and other have different dimensions.
func (m Matrix) Add(other Matrix) (Matrix, error) {
	if !m.DimsMatch(other) {
		return nil, uq.DimensionMismatch
	}

	rows := make([]Vector, m.Rows())
	for i, row := range m {
		rows[i] = row.Add(other[i])
	}

	return Matrix(rows), nil
}

// Sub subtracts matrices m and other.
// The result is returned in a new Matrix.
// Error is returned if m and other have different dimensions.
func (m Matrix) Sub(other Matrix) (Matrix, error) {
	if !m.DimsMatch(other) {
		return nil, uq.DimensionMismatch
	}

	rows := make([]Vector, m.Rows())
	for i, row := range m {
		rows[i] = row.Sub(other[i])
	}

	return Matrix(rows), nil
}

// Mul multiplies matrices m and other.
// The result is returned in a new Matrix.
// Error is returned if m and other have different dimensions.
func (m Matrix) Mul(other Matrix) (Matrix, error) {
	if m.Cols() != other.Rows() {
		return nil, uq.DimensionMismatch
	}

	prod := NewConstantMatrix(m.Rows(), other.Cols(), 0)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < other.Cols(); j++ {
			for k := 0; k < m.Cols(); k++ {
				prod[i][j] += m[i][k] * other[k][j]
			}
		}
	}

	return prod, nil
}

// MulScalar multiplies matrix m by a given scalar x.
// The result is returned in a new Matrix.
func (m Matrix) MulScalar(x float64) Matrix {
	rows := make([]Vector, m.Rows())
	for i, row := range m {
		rows[i] = row.MulScalar(x)
	}

	return Matrix(rows)
}

// MulVec multiplies matrix m and vector v.
// It returns the resulting vector.
// Error is returned if mismatching dimensions.
func (m Matrix) MulVec(v Vector) (Vector, error) {
	if m.Cols() != len(v) {
		return nil, uq.DimensionMismatch
	}

	res := make(Vector, m.Rows())
	for i, row := range m {
		res[i], _ = row.Dot(v)
	}

	return res, nil
}

// GaussianEliminationSolver solves a matrix vector equation
// mat * x = v and returns x in a new Vector. The system is solved by
// Gaussian elimination with partial pivoting. An error is returned if
// the dimensions mismatch or the matrix is singular to working
// precision.
func GaussianEliminationSolver(mat Matrix, v Vector) (Vector, error) {
	if mat.Rows() != len(v) || mat.Rows() != mat.Cols() {
		return nil, uq.DimensionMismatch
	}

	n := mat.Rows()
	a := mat.Copy()
	b := v.Copy()

	for k := 0; k < n; k++ {
		// pivot on the largest remaining entry in column k
		pivot := k
		for i := k + 1; i < n; i++ {
			if math.Abs(a[i][k]) > math.Abs(a[pivot][k]) {
				pivot = i
			}
		}
		if a[pivot][k] == 0 {
			return nil, uq.InvalidParameter
		}
		a[k], a[pivot] = a[pivot], a[k]
		b[k], b[pivot] = b[pivot], b[k]

		for i := k + 1; i < n; i++ {
			f := a[i][k] / a[k][k]
			for j := k; j < n; j++ {
				a[i][j] -= f * a[k][j]
			}
			b[i] -= f * b[k]
		}
	}

	x := make(Vector, n)
	for i := n - 1; i >= 0; i-- {
		s := b[i]
		for j := i + 1; j < n; j++ {
			s -= a[i][j] * x[j]
		}
		x[i] = s / a[i][i]
	}

	return x, nil
}
