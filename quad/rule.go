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

package quad

import (
	"github.com/pkg/errors"

	"github.com/uqlab-project/uqlab/data"
	uq "github.com/uqlab-project/uqlab/internal"
)

// Rule is a one-dimensional quadrature rule: integration against the
// rule's weight function is approximated by the weighted sum of the
// integrand's values at the nodes.
type Rule struct {
	Nodes   data.Vector
	Weights data.Vector
}

// Integrate approximates the integral of f with the rule.
func (r Rule) Integrate(f func(float64) float64) float64 {
	sum := 0.0
	for i, x := range r.Nodes {
		sum += r.Weights[i] * f(x)
	}

	return sum
}

// Shifted maps a rule on [-1, 1] to the interval [a, b] by the affine
// substitution, scaling the weights accordingly.
func (r Rule) Shifted(a, b float64) Rule {
	scale := (b - a) / 2
	mid := (a + b) / 2

	nodes := make(data.Vector, len(r.Nodes))
	weights := make(data.Vector, len(r.Weights))
	for i, x := range r.Nodes {
		nodes[i] = mid + scale*x
		weights[i] = scale * r.Weights[i]
	}

	return Rule{Nodes: nodes, Weights: weights}
}

// Trapezoid returns the composite trapezoid rule with n subintervals
// on [a, b]. It serves as the baseline in convergence comparisons.
func Trapezoid(n int, a, b float64) (Rule, error) {
	if n < 1 {
		return Rule{}, errors.Wrap(uq.InvalidParameter, "at least one subinterval is required")
	}
	if b <= a {
		return Rule{}, errors.Wrap(uq.InvalidParameter, "upper bound must exceed lower bound")
	}

	h := (b - a) / float64(n)
	nodes, _ := data.Linspace(a, b, n+1)
	weights := data.NewConstantVector(n+1, h)
	weights[0] = h / 2
	weights[n] = h / 2

	return Rule{Nodes: nodes, Weights: weights}, nil
}
