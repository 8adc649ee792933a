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

package sample_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uqlab-project/uqlab/prng"
	"github.com/uqlab-project/uqlab/sample"
)

// testSource returns a deterministic, well-mixed source so that the
// statistical assertions below are stable across runs.
func testSource() prng.Source {
	var key [32]byte
	for i := range key {
		key[i] = byte(3*i + 1)
	}
	return prng.NewKeystream(&key)
}

func mean(vec []float64) float64 {
	sum := 0.0
	for i := 0; i < len(vec); i++ {
		sum += vec[i]
	}
	return sum / float64(len(vec))
}

func variance(vec []float64) float64 {
	m := mean(vec)
	sum := 0.0
	for i := 0; i < len(vec); i++ {
		d := vec[i] - m
		sum += d * d
	}
	return sum / float64(len(vec))
}

func TestSample_Uniform(t *testing.T) {
	u := sample.NewUniform(testSource())
	vec := make([]float64, 10000)
	for i := 0; i < len(vec); i++ {
		vec[i], _ = u.Sample()
		assert.True(t, vec[i] >= 0 && vec[i] < 1, "sample outside the unit interval")
	}
	// mean should be around 1/2 and variance around 1/12
	assert.InDelta(t, 0.5, mean(vec), 0.05, "mean of uniform samples is off")
	assert.InDelta(t, 1.0/12, variance(vec), 0.01, "variance of uniform samples is off")

	r, err := sample.NewUniformRange(testSource(), 2, 5)
	if err != nil {
		t.Fatalf("Error during sampler construction: %v", err)
	}
	for i := 0; i < len(vec); i++ {
		vec[i], _ = r.Sample()
		assert.True(t, vec[i] >= 2 && vec[i] < 5, "sample outside the requested range")
	}
	assert.InDelta(t, 3.5, mean(vec), 0.1, "mean of range samples is off")

	_, err = sample.NewUniformRange(testSource(), 1, 1)
	assert.Error(t, err, "empty range should be rejected")
}

func TestSample_Bernoulli(t *testing.T) {
	for _, theta := range []float64{0.1, 0.5, 0.9} {
		b, err := sample.NewBernoulli(testSource(), theta)
		if err != nil {
			t.Fatalf("Error during sampler construction: %v", err)
		}

		n := 10000
		sum := 0
		for i := 0; i < n; i++ {
			x, _ := b.Sample()
			assert.True(t, x == 0 || x == 1, "draw is not an indicator value")
			sum += x
		}
		assert.InDelta(t, theta, float64(sum)/float64(n), 0.05, "empirical mean should converge to theta")
	}
}

func TestSample_BernoulliBoundary(t *testing.T) {
	zero, err := sample.NewBernoulli(testSource(), 0)
	if err != nil {
		t.Fatalf("Error during sampler construction: %v", err)
	}
	one, err := sample.NewBernoulli(testSource(), 1)
	if err != nil {
		t.Fatalf("Error during sampler construction: %v", err)
	}

	for i := 0; i < 1000; i++ {
		x, _ := zero.Sample()
		assert.Equal(t, 0, x, "theta = 0 should never succeed")
		x, _ = one.Sample()
		assert.Equal(t, 1, x, "theta = 1 should always succeed")
	}

	_, err = sample.NewBernoulli(testSource(), -0.1)
	assert.Error(t, err, "negative probability should be rejected")
	_, err = sample.NewBernoulli(testSource(), 1.1)
	assert.Error(t, err, "probability above one should be rejected")
}

func TestSample_Categorical(t *testing.T) {
	p := []float64{0.2, 0.5, 0.3}
	c, err := sample.NewCategorical(testSource(), p)
	if err != nil {
		t.Fatalf("Error during sampler construction: %v", err)
	}

	n := 10000
	counts := make([]int, len(p))
	for i := 0; i < n; i++ {
		j, _ := c.Sample()
		assert.True(t, j >= 0 && j < len(p), "index out of range")
		counts[j]++
	}
	for j := range p {
		assert.InDelta(t, p[j], float64(counts[j])/float64(n), 0.05,
			"empirical frequency should converge to the probability")
	}
}

func TestSample_CategoricalBoundary(t *testing.T) {
	c, err := sample.NewCategorical(testSource(), []float64{1.0})
	if err != nil {
		t.Fatalf("Error during sampler construction: %v", err)
	}
	for i := 0; i < 1000; i++ {
		j, _ := c.Sample()
		assert.Equal(t, 0, j, "single-category distribution should always yield index 0")
	}

	_, err = sample.NewCategorical(testSource(), nil)
	assert.Error(t, err, "empty distribution should be rejected")
	_, err = sample.NewCategorical(testSource(), []float64{0.5, -0.5, 1.0})
	assert.Error(t, err, "negative probabilities should be rejected")
	_, err = sample.NewCategorical(testSource(), []float64{0.5, 0.4})
	assert.Error(t, err, "probabilities not summing to one should be rejected")
}

func TestSample_Exponential(t *testing.T) {
	rate := 2.5
	e, err := sample.NewExponential(testSource(), rate)
	if err != nil {
		t.Fatalf("Error during sampler construction: %v", err)
	}

	vec := make([]float64, 10000)
	for i := 0; i < len(vec); i++ {
		vec[i], _ = e.Sample()
		assert.True(t, vec[i] >= 0, "exponential draws must be non-negative")
	}
	assert.InDelta(t, 1/rate, mean(vec), 0.05, "empirical mean should converge to 1/rate")

	_, err = sample.NewExponential(testSource(), 0)
	assert.Error(t, err, "zero rate should be rejected")
	_, err = sample.NewExponential(testSource(), -1)
	assert.Error(t, err, "negative rate should be rejected")
}

func TestSample_Normal(t *testing.T) {
	c, err := sample.NewNormal(testSource(), 1, 3)
	if err != nil {
		t.Fatalf("Error during sampler construction: %v", err)
	}

	vec := make([]float64, 10000)
	for i := 0; i < len(vec); i++ {
		vec[i], _ = c.Sample()
	}
	// mean should be around 1 and variance around 9
	me := mean(vec)
	v := variance(vec)
	assert.True(t, me < 1.15, "mean value of the normal distribution is too big")
	assert.True(t, me > 0.85, "mean value of the normal distribution is too small")
	assert.True(t, v < 9.9, "variance of the normal distribution is too big")
	assert.True(t, v > 8.1, "variance of the normal distribution is too small")

	_, err = sample.NewNormal(testSource(), 0, 0)
	assert.Error(t, err, "zero standard deviation should be rejected")
}

func TestSample_Determinism(t *testing.T) {
	mk := func() *sample.Exponential {
		src, err := prng.NewCongruential(123456, 978564, 6012119, 123456)
		if err != nil {
			t.Fatalf("Error during generator construction: %v", err)
		}
		e, err := sample.NewExponential(src, 1)
		if err != nil {
			t.Fatalf("Error during sampler construction: %v", err)
		}
		return e
	}

	e1, e2 := mk(), mk()
	for i := 0; i < 1000; i++ {
		x1, _ := e1.Sample()
		x2, _ := e2.Sample()
		assert.Equal(t, x1, x2, "equally seeded samplers should agree element-wise")
	}
}
