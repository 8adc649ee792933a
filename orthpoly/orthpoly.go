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

// Package orthpoly evaluates the classical families of orthogonal
// polynomials through their three-term recurrences. Together with a
// matching quadrature rule from package quad it verifies the defining
// orthogonality relations and provides the one-dimensional building
// blocks of polynomial chaos expansions.
package orthpoly

import (
	"math"

	"github.com/pkg/errors"

	"github.com/uqlab-project/uqlab/data"
	uq "github.com/uqlab-project/uqlab/internal"
	"github.com/uqlab-project/uqlab/quad"
)

// Family is a family of orthogonal polynomials defined by the
// three-term recurrence
//
//	p_{n+1}(x) = (a(n)*x + b(n)) * p_n(x) - c(n) * p_{n-1}(x)
//
// with p_0 = 1 and p_{-1} = 0.
type Family struct {
	name   string
	a      func(n int) float64
	b      func(n int) float64
	c      func(n int) float64
	normSq func(n int) float64
}

// Legendre returns the Legendre family, orthogonal on [-1, 1] with
// weight function 1.
func Legendre() Family {
	return Family{
		name: "legendre",
		a:    func(n int) float64 { return float64(2*n+1) / float64(n+1) },
		b:    func(n int) float64 { return 0 },
		c:    func(n int) float64 { return float64(n) / float64(n+1) },
		normSq: func(n int) float64 {
			return 2 / float64(2*n+1)
		},
	}
}

// Hermite returns the physicists' Hermite family, orthogonal on the
// real line with weight function exp(-x^2).
func Hermite() Family {
	return Family{
		name: "hermite",
		a:    func(n int) float64 { return 2 },
		b:    func(n int) float64 { return 0 },
		c:    func(n int) float64 { return 2 * float64(n) },
		normSq: func(n int) float64 {
			v := math.Sqrt(math.Pi)
			for i := 1; i <= n; i++ {
				v *= 2 * float64(i)
			}
			return v
		},
	}
}

// Laguerre returns the Laguerre family, orthogonal on [0, inf) with
// weight function exp(-x).
func Laguerre() Family {
	return Family{
		name: "laguerre",
		a:    func(n int) float64 { return -1 / float64(n+1) },
		b:    func(n int) float64 { return float64(2*n+1) / float64(n+1) },
		c:    func(n int) float64 { return float64(n) / float64(n+1) },
		normSq: func(n int) float64 {
			return 1
		},
	}
}

// Name returns the family's name.
func (f Family) Name() string {
	return f.name
}

// Eval evaluates the degree-n polynomial of the family at x.
func (f Family) Eval(n int, x float64) float64 {
	if n < 0 {
		return 0
	}

	prev, cur := 0.0, 1.0
	for k := 0; k < n; k++ {
		prev, cur = cur, (f.a(k)*x+f.b(k))*cur-f.c(k)*prev
	}

	return cur
}

// EvalAll evaluates the polynomials of degrees 0 through n at x,
// sharing a single pass over the recurrence.
func (f Family) EvalAll(n int, x float64) data.Vector {
	vals := make(data.Vector, n+1)
	prev, cur := 0.0, 1.0
	for k := 0; k <= n; k++ {
		vals[k] = cur
		prev, cur = cur, (f.a(k)*x+f.b(k))*cur-f.c(k)*prev
	}

	return vals
}

// NormSquared returns the squared weighted L2 norm of the degree-n
// polynomial.
func (f Family) NormSquared(n int) float64 {
	return f.normSq(n)
}

// GramMatrix returns the matrix of pairwise weighted inner products of
// the polynomials of degrees 0 through n, computed with the given
// quadrature rule. Under a rule matching the family's weight function
// and exact to degree 2n, the result is diagonal with the squared
// norms on the diagonal.
func (f Family) GramMatrix(n int, rule quad.Rule) (data.Matrix, error) {
	if n < 0 {
		return nil, errors.Wrap(uq.InvalidParameter, "degree must be non-negative")
	}

	gram := data.NewConstantMatrix(n+1, n+1, 0)
	for k, x := range rule.Nodes {
		vals := f.EvalAll(n, x)
		w := rule.Weights[k]
		for i := 0; i <= n; i++ {
			for j := 0; j <= n; j++ {
				gram[i][j] += w * vals[i] * vals[j]
			}
		}
	}

	return gram, nil
}
