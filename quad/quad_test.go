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

package quad_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uqlab-project/uqlab/data"
	"github.com/uqlab-project/uqlab/quad"
)

func TestGaussLegendre(t *testing.T) {
	r, err := quad.GaussLegendre(5)
	if err != nil {
		t.Fatalf("Error during rule construction: %v", err)
	}

	assert.Equal(t, 5, len(r.Nodes))
	assert.InDelta(t, 2, r.Weights.Sum(), 1e-12, "weights should sum to the interval length")

	// exact for polynomials up to degree 2n-1 = 9
	assert.InDelta(t, 2.0/5, r.Integrate(func(x float64) float64 { return x * x * x * x }), 1e-12)
	assert.InDelta(t, 2.0/9, r.Integrate(func(x float64) float64 { return math.Pow(x, 8) }), 1e-12)
	assert.InDelta(t, 0, r.Integrate(func(x float64) float64 { return math.Pow(x, 9) }), 1e-12)

	_, err = quad.GaussLegendre(0)
	assert.Error(t, err, "empty rule should be rejected")
}

func TestGaussHermite(t *testing.T) {
	r, err := quad.GaussHermite(8)
	if err != nil {
		t.Fatalf("Error during rule construction: %v", err)
	}

	sqrtPi := math.Sqrt(math.Pi)
	assert.InDelta(t, sqrtPi, r.Weights.Sum(), 1e-10, "weights should sum to sqrt(pi)")
	// moments of the weight exp(-x^2)
	assert.InDelta(t, sqrtPi/2, r.Integrate(func(x float64) float64 { return x * x }), 1e-10)
	assert.InDelta(t, 3*sqrtPi/4, r.Integrate(func(x float64) float64 { return math.Pow(x, 4) }), 1e-10)
	assert.InDelta(t, 0, r.Integrate(func(x float64) float64 { return x * x * x }), 1e-10)
}

func TestClenshawCurtis(t *testing.T) {
	r, err := quad.ClenshawCurtis(0)
	if err != nil {
		t.Fatalf("Error during rule construction: %v", err)
	}
	assert.Equal(t, data.Vector{0}, r.Nodes)
	assert.Equal(t, data.Vector{2}, r.Weights)

	for level := 1; level <= 5; level++ {
		r, err = quad.ClenshawCurtis(level)
		if err != nil {
			t.Fatalf("Error during rule construction: %v", err)
		}
		assert.Equal(t, 1<<uint(level)+1, len(r.Nodes))
		assert.InDelta(t, 2, r.Weights.Sum(), 1e-12, "weights should sum to the interval length")
		assert.InDelta(t, 2.0/3, r.Integrate(func(x float64) float64 { return x * x }), 1e-12,
			"quadratics should integrate exactly from level 1 up")
	}

	r, _ = quad.ClenshawCurtis(4)
	assert.InDelta(t, math.Exp(1)-math.Exp(-1), r.Integrate(math.Exp), 1e-8,
		"smooth integrands should converge fast")
}

func TestClenshawCurtis_Nested(t *testing.T) {
	coarse, _ := quad.ClenshawCurtis(2)
	fine, _ := quad.ClenshawCurtis(3)

	for i, x := range coarse.Nodes {
		assert.Equal(t, x, fine.Nodes[2*i], "coarse nodes should reappear in the fine rule")
	}
}

func TestTrapezoid(t *testing.T) {
	r, err := quad.Trapezoid(100, 0, 1)
	if err != nil {
		t.Fatalf("Error during rule construction: %v", err)
	}

	assert.InDelta(t, 1, r.Weights.Sum(), 1e-12)
	assert.InDelta(t, 1.0/3, r.Integrate(func(x float64) float64 { return x * x }), 1e-4)

	_, err = quad.Trapezoid(0, 0, 1)
	assert.Error(t, err, "zero subintervals should be rejected")
	_, err = quad.Trapezoid(10, 1, 0)
	assert.Error(t, err, "inverted interval should be rejected")
}

func TestShifted(t *testing.T) {
	r, _ := quad.GaussLegendre(6)
	s := r.Shifted(0, 2)

	assert.InDelta(t, 2, s.Weights.Sum(), 1e-12)
	assert.InDelta(t, 8.0/3, s.Integrate(func(x float64) float64 { return x * x }), 1e-12)
}

func TestTensor(t *testing.T) {
	r, _ := quad.GaussLegendre(4)
	g, err := quad.Tensor(r, r)
	if err != nil {
		t.Fatalf("Error during grid construction: %v", err)
	}

	assert.Equal(t, 16, g.Points.Rows())
	assert.Equal(t, 2, g.Dim())
	assert.InDelta(t, 4, g.Weights.Sum(), 1e-12, "weights should sum to the square's area")
	assert.InDelta(t, 4.0/9, g.Integrate(func(p data.Vector) float64 { return p[0] * p[0] * p[1] * p[1] }), 1e-12)

	_, err = quad.Tensor()
	assert.Error(t, err, "empty rule list should be rejected")
}

func TestSmolyak(t *testing.T) {
	g, err := quad.Smolyak(2, 3)
	if err != nil {
		t.Fatalf("Error during grid construction: %v", err)
	}

	assert.InDelta(t, 4, g.Weights.Sum(), 1e-10, "weights should sum to the square's area")
	assert.InDelta(t, 4.0/9, g.Integrate(func(p data.Vector) float64 { return p[0] * p[0] * p[1] * p[1] }), 1e-10)

	// the sparse grid stays far below the tensor grid of the same level
	full, _ := quad.ClenshawCurtis(3)
	tensor, _ := quad.Tensor(full, full)
	assert.Less(t, g.Points.Rows(), tensor.Points.Rows(), "sparse grid should use fewer nodes")

	smooth := func(p data.Vector) float64 { return math.Exp(p[0] + p[1]) }
	want := (math.E - 1/math.E) * (math.E - 1/math.E)
	assert.InDelta(t, want, g.Integrate(smooth), 1e-3, "smooth integrands should converge fast")

	_, err = quad.Smolyak(0, 1)
	assert.Error(t, err, "non-positive dimension should be rejected")
	_, err = quad.Smolyak(2, -1)
	assert.Error(t, err, "negative level should be rejected")
}

func TestSmolyak_MatchesOneDimensionalRule(t *testing.T) {
	g, err := quad.Smolyak(1, 4)
	if err != nil {
		t.Fatalf("Error during grid construction: %v", err)
	}
	r, _ := quad.ClenshawCurtis(4)

	assert.Equal(t, len(r.Nodes), g.Points.Rows(), "d = 1 sparse grid should equal the 1-D rule")
	assert.InDelta(t, r.Integrate(math.Exp),
		g.Integrate(func(p data.Vector) float64 { return math.Exp(p[0]) }), 1e-12)
}
