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

	"github.com/pkg/errors"

	uq "github.com/uqlab-project/uqlab/internal"
	"github.com/uqlab-project/uqlab/prng"
)

// Normal samples random values from the Normal (Gaussian) probability
// distribution with mean mu and standard deviation sigma, using the
// Box-Muller transform. Each transform produces a pair of values; the
// second one is cached and returned by the next call.
type Normal struct {
	src      prng.Source
	mu       float64
	sigma    float64
	spare    float64
	hasSpare bool
}

// NewNormal returns an instance of the Normal sampler.
// It requires sigma > 0.
func NewNormal(src prng.Source, mu, sigma float64) (*Normal, error) {
	if sigma <= 0 || math.IsNaN(sigma) {
		return nil, errors.Wrap(uq.InvalidParameter, "standard deviation must be positive")
	}

	return &Normal{
		src:   src,
		mu:    mu,
		sigma: sigma,
	}, nil
}

func (n *Normal) Sample() (float64, error) {
	if n.hasSpare {
		n.hasSpare = false
		return n.mu + n.sigma*n.spare, nil
	}

	// 1-u keeps the argument of the logarithm in (0, 1].
	u1 := 1 - n.src.Float64()
	u2 := n.src.Float64()
	r := math.Sqrt(-2 * math.Log(u1))
	n.spare = r * math.Sin(2*math.Pi*u2)
	n.hasSpare = true

	return n.mu + n.sigma*r*math.Cos(2*math.Pi*u2), nil
}
