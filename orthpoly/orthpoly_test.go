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

package orthpoly_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uqlab-project/uqlab/orthpoly"
	"github.com/uqlab-project/uqlab/quad"
)

func TestLegendre_Eval(t *testing.T) {
	leg := orthpoly.Legendre()

	for _, x := range []float64{-1, -0.3, 0, 0.5, 1} {
		assert.Equal(t, 1.0, leg.Eval(0, x))
		assert.Equal(t, x, leg.Eval(1, x))
		assert.InDelta(t, (3*x*x-1)/2, leg.Eval(2, x), 1e-14)
		assert.InDelta(t, (5*x*x*x-3*x)/2, leg.Eval(3, x), 1e-14)
	}

	// P_n(1) = 1 for all n
	for n := 0; n <= 10; n++ {
		assert.InDelta(t, 1, leg.Eval(n, 1), 1e-12)
	}

	vals := leg.EvalAll(3, 0.5)
	assert.Equal(t, 4, len(vals))
	for n := 0; n <= 3; n++ {
		assert.Equal(t, leg.Eval(n, 0.5), vals[n], "EvalAll should agree with Eval")
	}
}

func TestHermite_Eval(t *testing.T) {
	her := orthpoly.Hermite()

	for _, x := range []float64{-2, -0.5, 0, 1, 3} {
		assert.Equal(t, 1.0, her.Eval(0, x))
		assert.Equal(t, 2*x, her.Eval(1, x))
		assert.InDelta(t, 4*x*x-2, her.Eval(2, x), 1e-12)
		assert.InDelta(t, 8*x*x*x-12*x, her.Eval(3, x), 1e-12)
	}
}

func TestLaguerre_Eval(t *testing.T) {
	lag := orthpoly.Laguerre()

	for _, x := range []float64{0, 0.5, 1, 4} {
		assert.Equal(t, 1.0, lag.Eval(0, x))
		assert.InDelta(t, 1-x, lag.Eval(1, x), 1e-14)
		assert.InDelta(t, (x*x-4*x+2)/2, lag.Eval(2, x), 1e-13)
	}
}

func TestLegendre_Orthogonality(t *testing.T) {
	leg := orthpoly.Legendre()
	n := 5
	rule, err := quad.GaussLegendre(n + 1)
	if err != nil {
		t.Fatalf("Error during rule construction: %v", err)
	}

	gram, err := leg.GramMatrix(n, rule)
	if err != nil {
		t.Fatalf("Error during Gram matrix computation: %v", err)
	}

	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			if i == j {
				assert.InDelta(t, leg.NormSquared(i), gram[i][j], 1e-12,
					"diagonal should carry the squared norms")
			} else {
				assert.InDelta(t, 0, gram[i][j], 1e-12,
					"distinct degrees should be orthogonal")
			}
		}
	}
}

func TestHermite_Orthogonality(t *testing.T) {
	her := orthpoly.Hermite()
	n := 4
	rule, err := quad.GaussHermite(n + 1)
	if err != nil {
		t.Fatalf("Error during rule construction: %v", err)
	}

	gram, err := her.GramMatrix(n, rule)
	if err != nil {
		t.Fatalf("Error during Gram matrix computation: %v", err)
	}

	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			if i == j {
				assert.InDelta(t, her.NormSquared(i), gram[i][j], her.NormSquared(i)*1e-10,
					"diagonal should carry the squared norms")
			} else {
				assert.InDelta(t, 0, gram[i][j], 1e-8,
					"distinct degrees should be orthogonal")
			}
		}
	}

	_, err = her.GramMatrix(-1, rule)
	assert.Error(t, err, "negative degree should be rejected")
}
