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

package sample

import (
	"math"
	"sort"

	"github.com/pkg/errors"

	uq "github.com/uqlab-project/uqlab/internal"
	"github.com/uqlab-project/uqlab/prng"
)

// sumTolerance is the allowed floating deviation of the probability
// vector from summing to one.
const sumTolerance = 1e-9

// Categorical samples indices of a finite distribution given by a
// probability vector. The cumulative sums are precomputed when the
// sampler is constructed, so that Sample merely performs a binary
// search.
type Categorical struct {
	src prng.Source
	cum []float64
}

// NewCategorical returns an instance of the Categorical sampler over
// the probability vector p. All entries must be non-negative and sum
// to one within a floating tolerance.
func NewCategorical(src prng.Source, p []float64) (*Categorical, error) {
	if len(p) == 0 {
		return nil, errors.Wrap(uq.InvalidDistribution, "probability vector is empty")
	}

	cum := make([]float64, len(p))
	sum := 0.0
	for i, pi := range p {
		if pi < 0 || math.IsNaN(pi) {
			return nil, errors.Wrap(uq.InvalidDistribution, "probabilities must be non-negative")
		}
		sum += pi
		cum[i] = sum
	}
	if math.Abs(sum-1) > sumTolerance {
		return nil, errors.Wrap(uq.InvalidDistribution, "probabilities must sum to one")
	}
	// Absorb rounding so that every draw from [0, 1) lands in the table.
	cum[len(cum)-1] = 1

	return &Categorical{
		src: src,
		cum: cum,
	}, nil
}

// Sample draws u uniformly from [0, 1) and returns the smallest index
// whose cumulative probability reaches u.
func (c *Categorical) Sample() (int, error) {
	u := c.src.Float64()
	return sort.Search(len(c.cum), func(i int) bool { return c.cum[i] >= u }), nil
}

// K returns the number of categories.
func (c *Categorical) K() int {
	return len(c.cum)
}
