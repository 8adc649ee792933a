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

// Grid is a multi-dimensional quadrature node set. Each row of Points
// is one node; Weights holds the matching quadrature weights.
type Grid struct {
	Points  data.Matrix
	Weights data.Vector
}

// Dim returns the dimension of the grid's nodes.
func (g Grid) Dim() int {
	return g.Points.Cols()
}

// Integrate approximates the integral of f with the grid.
func (g Grid) Integrate(f func(data.Vector) float64) float64 {
	sum := 0.0
	for i, pt := range g.Points {
		sum += g.Weights[i] * f(pt)
	}

	return sum
}

// Tensor builds the full tensor product of one-dimensional rules, one
// per dimension. The node count is the product of the rules' sizes,
// so the construction is only viable in low dimensions.
func Tensor(rules ...Rule) (Grid, error) {
	if len(rules) == 0 {
		return Grid{}, errors.Wrap(uq.InvalidParameter, "at least one rule is required")
	}

	total := 1
	for _, r := range rules {
		if len(r.Nodes) == 0 {
			return Grid{}, errors.Wrap(uq.InvalidParameter, "empty rule")
		}
		total *= len(r.Nodes)
	}

	d := len(rules)
	points := make([]data.Vector, total)
	weights := make(data.Vector, total)

	idx := make([]int, d)
	for i := 0; i < total; i++ {
		pt := make(data.Vector, d)
		w := 1.0
		for k := 0; k < d; k++ {
			pt[k] = rules[k].Nodes[idx[k]]
			w *= rules[k].Weights[idx[k]]
		}
		points[i] = pt
		weights[i] = w

		for k := d - 1; k >= 0; k-- {
			idx[k]++
			if idx[k] < len(rules[k].Nodes) {
				break
			}
			idx[k] = 0
		}
	}

	return Grid{Points: data.Matrix(points), Weights: weights}, nil
}
