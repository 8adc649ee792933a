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
	"github.com/pkg/errors"

	uq "github.com/uqlab-project/uqlab/internal"
	"github.com/uqlab-project/uqlab/prng"
)

// Bernoulli samples 0/1 values, returning 1 with probability theta.
type Bernoulli struct {
	src   prng.Source
	theta float64
}

// NewBernoulli returns an instance of the Bernoulli sampler with
// success probability theta. It requires 0 <= theta <= 1.
func NewBernoulli(src prng.Source, theta float64) (*Bernoulli, error) {
	if theta < 0 || theta > 1 {
		return nil, errors.Wrap(uq.InvalidParameter, "success probability must be in [0, 1]")
	}

	return &Bernoulli{
		src:   src,
		theta: theta,
	}, nil
}

// Sample draws u uniformly from [0, 1) and returns 1 when u <= theta.
// theta = 0 always yields 0 even if the source emits exactly zero.
func (b *Bernoulli) Sample() (int, error) {
	if b.theta == 0 {
		return 0, nil
	}
	if b.src.Float64() <= b.theta {
		return 1, nil
	}
	return 0, nil
}
