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
	"math"

	"github.com/pkg/errors"

	"github.com/uqlab-project/uqlab/data"
	uq "github.com/uqlab-project/uqlab/internal"
)

const (
	newtonTol     = 1e-14
	newtonMaxIter = 100
)

// GaussLegendre returns the n-point Gauss-Legendre rule on [-1, 1]
// with weight function 1. The nodes are the roots of the n-th Legendre
// polynomial, located by Newton iteration on the three-term
// recurrence; the rule integrates polynomials up to degree 2n-1
// exactly.
func GaussLegendre(n int) (Rule, error) {
	if n < 1 {
		return Rule{}, errors.Wrap(uq.InvalidParameter, "at least one node is required")
	}

	nodes := make(data.Vector, n)
	weights := make(data.Vector, n)

	// The roots are symmetric about zero, so only half need locating.
	m := (n + 1) / 2
	for i := 0; i < m; i++ {
		z := math.Cos(math.Pi * (float64(i) + 0.75) / (float64(n) + 0.5))

		var pp float64
		converged := false
		for it := 0; it < newtonMaxIter; it++ {
			p0, p1 := 1.0, 0.0
			for j := 0; j < n; j++ {
				p2 := p1
				p1 = p0
				p0 = ((2*float64(j)+1)*z*p1 - float64(j)*p2) / float64(j+1)
			}
			// p0 = P_n(z), p1 = P_{n-1}(z)
			pp = float64(n) * (z*p0 - p1) / (z*z - 1)
			dz := p0 / pp
			z -= dz
			if math.Abs(dz) <= newtonTol {
				converged = true
				break
			}
		}
		if !converged {
			return Rule{}, errors.Wrap(uq.ConvergenceFailure, "Newton iteration for a Legendre root")
		}

		nodes[i] = -z
		nodes[n-1-i] = z
		w := 2 / ((1 - z*z) * pp * pp)
		weights[i] = w
		weights[n-1-i] = w
	}
	if n%2 == 1 {
		nodes[n/2] = 0
	}

	return Rule{Nodes: nodes, Weights: weights}, nil
}

// GaussHermite returns the n-point Gauss-Hermite rule on the real line
// with weight function exp(-x^2). The recurrence is evaluated in its
// orthonormal form to keep the iterates in floating range.
func GaussHermite(n int) (Rule, error) {
	if n < 1 {
		return Rule{}, errors.Wrap(uq.InvalidParameter, "at least one node is required")
	}

	nodes := make(data.Vector, n)
	weights := make(data.Vector, n)

	pim4 := 1 / math.Pow(math.Pi, 0.25)
	m := (n + 1) / 2

	// roots in descending order as they are located
	roots := make([]float64, m)
	for i := 0; i < m; i++ {
		var z float64
		switch i {
		case 0:
			z = math.Sqrt(float64(2*n+1)) - 1.85575*math.Pow(float64(2*n+1), -1.0/6)
		case 1:
			z = roots[0] - 1.14*math.Pow(float64(n), 0.426)/roots[0]
		case 2:
			z = 1.86*roots[1] - 0.86*roots[0]
		case 3:
			z = 1.91*roots[2] - 0.91*roots[1]
		default:
			z = 2*roots[i-1] - roots[i-2]
		}

		var pp float64
		converged := false
		for it := 0; it < newtonMaxIter; it++ {
			p1 := pim4
			p2 := 0.0
			for j := 1; j <= n; j++ {
				p3 := p2
				p2 = p1
				p1 = z*math.Sqrt(2/float64(j))*p2 - math.Sqrt(float64(j-1)/float64(j))*p3
			}
			pp = math.Sqrt(2*float64(n)) * p2
			dz := p1 / pp
			z -= dz
			if math.Abs(dz) <= newtonTol {
				converged = true
				break
			}
		}
		if !converged {
			return Rule{}, errors.Wrap(uq.ConvergenceFailure, "Newton iteration for a Hermite root")
		}

		roots[i] = z
		nodes[n-1-i] = z
		nodes[i] = -z
		w := 2 / (pp * pp)
		weights[n-1-i] = w
		weights[i] = w
	}
	if n%2 == 1 {
		nodes[n/2] = 0
	}

	return Rule{Nodes: nodes, Weights: weights}, nil
}
