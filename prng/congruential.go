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

package prng

import (
	"github.com/pkg/errors"

	uq "github.com/uqlab-project/uqlab/internal"
)

// maxModulus bounds the modulus so that a*x + b cannot overflow uint64.
const maxModulus = 1 << 32

// Congruential is a linear congruential generator with state update
//
//	x' = (a*x + b) mod m.
//
// Float64 maps the state to [0, 1) by dividing by m. Identical
// (a, b, m, seed) parameters reproduce an identical sequence.
type Congruential struct {
	a, b, m uint64
	state   uint64
}

// NewCongruential returns a generator with multiplier a, increment b,
// modulus m and initial state seed. It requires 2 <= m <= 2^32,
// 1 <= a < m, b < m and seed < m.
func NewCongruential(a, b, m, seed uint64) (*Congruential, error) {
	if m < 2 || m > maxModulus {
		return nil, errors.Wrap(uq.InvalidParameter, "modulus must be in [2, 2^32]")
	}
	if a == 0 || a >= m {
		return nil, errors.Wrap(uq.InvalidParameter, "multiplier must be in [1, m)")
	}
	if b >= m {
		return nil, errors.Wrap(uq.InvalidParameter, "increment must be in [0, m)")
	}
	if seed >= m {
		return nil, errors.Wrap(uq.InvalidParameter, "seed must be in [0, m)")
	}

	return &Congruential{
		a:     a,
		b:     b,
		m:     m,
		state: seed,
	}, nil
}

// Uint64 advances the state and returns it.
func (c *Congruential) Uint64() uint64 {
	c.state = (c.a*c.state + c.b) % c.m
	return c.state
}

// Float64 advances the state and returns state/m.
func (c *Congruential) Float64() float64 {
	return float64(c.Uint64()) / float64(c.m)
}

// State returns the current state without advancing the generator.
func (c *Congruential) State() uint64 {
	return c.state
}
