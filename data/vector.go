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
	"fmt"
	"math"
	"strings"

	uq "github.com/uqlab-project/uqlab/internal"
	"github.com/uqlab-project/uqlab/sample"
)

// Vector wraps a slice of float64 elements.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewRandomVector returns a new Vector instance
// with random elements sampled by the provided sample.Sampler.
// Returns an error in case of sampling failure.
func NewRandomVector(len int, sampler sample.Sampler) (Vector, error) {
	vec := make([]float64, len)
	var err error

	for i := 0; i < len; i++ {
		vec[i], err = sampler.Sample()
		if err != nil {
			return nil, err
		}
	}

	return NewVector(vec), nil
}

// NewConstantVector returns a new Vector instance
// with all elements set to constant c.
func NewConstantVector(len int, c float64) Vector {
	vec := make([]float64, len)
	for i := 0; i < len; i++ {
		vec[i] = c
	}

	return vec
}

// Linspace returns a new Vector of n evenly spaced values
// from a to b inclusive. It requires n >= 2.
func Linspace(a, b float64, n int) (Vector, error) {
	if n < 2 {
		return nil, uq.InvalidParameter
	}

	vec := make([]float64, n)
	step := (b - a) / float64(n-1)
	for i := 0; i < n; i++ {
		vec[i] = a + float64(i)*step
	}
	vec[n-1] = b

	return vec, nil
}

// Copy creates a new vector with the same values
// of the entries.
func (v Vector) Copy() Vector {
	newVec := make(Vector, len(v))
	copy(newVec, v)

	return newVec
}

// MulScalar multiplies vector v by a given scalar x.
// The result is returned in a new Vector.
func (v Vector) MulScalar(x float64) Vector {
	res := make(Vector, len(v))
	for i, vi := range v {
		res[i] = x * vi
	}

	return res
}

// Apply applies an element-wise function f to vector v.
// The result is returned in a new Vector.
func (v Vector) Apply(f func(float64) float64) Vector {
	res := make(Vector, len(v))

	for i, vi := range v {
		res[i] = f(vi)
	}

	return res
}

// Add adds vectors v and other, which must have the same number
// of elements. The result is returned in a new Vector.
func (v Vector) Add(other Vector) Vector {
	sum := make(Vector, len(v))

	for i, vi := range v {
		sum[i] = vi + other[i]
	}

	return sum
}

// Sub subtracts vectors v and other, which must have the same number
// of elements. The result is returned in a new Vector.
func (v Vector) Sub(other Vector) Vector {
	sub := make(Vector, len(v))

	for i, vi := range v {
		sub[i] = vi - other[i]
	}

	return sub
}

// Dot calculates the dot product (inner product) of vectors v and other.
// It returns an error if vectors have different numbers of elements.
func (v Vector) Dot(other Vector) (float64, error) {
	if len(v) != len(other) {
		return 0, uq.DimensionMismatch
	}

	prod := 0.0
	for i, vi := range v {
		prod += vi * other[i]
	}

	return prod, nil
}

// Norm returns the Euclidean norm of vector v.
func (v Vector) Norm() float64 {
	sum := 0.0
	for _, vi := range v {
		sum += vi * vi
	}

	return math.Sqrt(sum)
}

// Sum returns the sum of the elements of vector v.
func (v Vector) Sum() float64 {
	sum := 0.0
	for _, vi := range v {
		sum += vi
	}

	return sum
}

// Mean returns the arithmetic mean of the elements of vector v.
// The mean of an empty vector is zero.
func (v Vector) Mean() float64 {
	if len(v) == 0 {
		return 0
	}

	return v.Sum() / float64(len(v))
}

// String produces a string representation of a vector.
func (v Vector) String() string {
	parts := make([]string, len(v))
	for i, vi := range v {
		parts[i] = fmt.Sprintf("%g", vi)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
