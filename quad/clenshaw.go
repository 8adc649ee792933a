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

// ClenshawCurtis returns the Clenshaw-Curtis rule of the given level
// on [-1, 1]: 2^level + 1 Chebyshev extrema as nodes, with level 0
// degenerating to the single-node midpoint rule. Consecutive levels
// are nested, which makes the family the natural building block of
// Smolyak sparse grids.
func ClenshawCurtis(level int) (Rule, error) {
	if level < 0 {
		return Rule{}, errors.Wrap(uq.InvalidParameter, "level must be non-negative")
	}
	if level == 0 {
		return Rule{Nodes: data.Vector{0}, Weights: data.Vector{2}}, nil
	}

	n := 1 << uint(level) // number of subintervals, n+1 nodes
	nodes := make(data.Vector, n+1)
	weights := make(data.Vector, n+1)

	for j := 0; j <= n; j++ {
		nodes[j] = -math.Cos(math.Pi * float64(j) / float64(n))

		c := 2.0
		if j == 0 || j == n {
			c = 1
		}
		sum := 0.0
		for k := 1; k <= n/2; k++ {
			b := 2.0
			if 2*k == n {
				b = 1
			}
			sum += b / float64(4*k*k-1) * math.Cos(2*math.Pi*float64(k)*float64(j)/float64(n))
		}
		weights[j] = c / float64(n) * (1 - sum)
	}
	// cos carries rounding residuals at the symmetry points; the
	// endpoints and the midpoint are exact
	nodes[0] = -1
	nodes[n] = 1
	nodes[n/2] = 0

	return Rule{Nodes: nodes, Weights: weights}, nil
}
