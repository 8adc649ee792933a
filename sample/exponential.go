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

// Exponential samples random values from the exponential distribution
// with the given rate, using inverse-CDF sampling.
type Exponential struct {
	src  prng.Source
	rate float64
}

// NewExponential returns an instance of the Exponential sampler.
// It requires rate > 0.
func NewExponential(src prng.Source, rate float64) (*Exponential, error) {
	if rate <= 0 || math.IsNaN(rate) {
		return nil, errors.Wrap(uq.InvalidParameter, "rate must be positive")
	}

	return &Exponential{
		src:  src,
		rate: rate,
	}, nil
}

// Sample draws u uniformly from [0, 1) and returns -ln(1-u)/rate.
func (e *Exponential) Sample() (float64, error) {
	u := e.src.Float64()
	return -math.Log1p(-u) / e.rate, nil
}
