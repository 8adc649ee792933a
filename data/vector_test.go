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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uqlab-project/uqlab/prng"
	"github.com/uqlab-project/uqlab/sample"
)

func TestVector(t *testing.T) {
	l := 3
	var key [32]byte
	key[0] = 1
	sampler := sample.NewUniform(prng.NewKeystream(&key))

	x, err := NewRandomVector(l, sampler)
	if err != nil {
		t.Fatalf("Error during random generation: %v", err)
	}

	y, err := NewRandomVector(l, sampler)
	if err != nil {
		t.Fatalf("Error during random generation: %v", err)
	}

	add := x.Add(y)
	sub := x.Sub(y)
	mul, err := x.Dot(y)

	if err != nil {
		t.Fatalf("Error during vector multiplication: %v", err)
	}

	innerProd := 0.0
	for i := 0; i < l; i++ {
		assert.Equal(t, x[i]+y[i], add[i], "coordinates should sum correctly")
		assert.Equal(t, x[i]-y[i], sub[i], "coordinates should subtract correctly")
		innerProd += x[i] * y[i]
	}

	assert.Equal(t, innerProd, mul, "inner product should calculate correctly")

	_, err = x.Dot(NewConstantVector(l+1, 0))
	assert.Error(t, err, "dot product of mismatched vectors should fail")
}

func TestVector_Linspace(t *testing.T) {
	v, err := Linspace(0, 1, 5)
	if err != nil {
		t.Fatalf("Error during construction: %v", err)
	}

	assert.Equal(t, Vector{0, 0.25, 0.5, 0.75, 1}, v)

	_, err = Linspace(0, 1, 1)
	assert.Error(t, err, "fewer than two points should be rejected")
}

func TestVector_Statistics(t *testing.T) {
	v := NewVector([]float64{3, 4, 5})

	assert.Equal(t, 12.0, v.Sum())
	assert.Equal(t, 4.0, v.Mean())
	assert.InDelta(t, 7.0710678, v.Norm(), 1e-6)
	assert.Equal(t, 0.0, Vector{}.Mean(), "mean of an empty vector should be zero")
}
