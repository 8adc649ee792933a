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

// MiddleSquare is von Neumann's middle-square generator: the state is
// squared and the middle digits of the square become the next state.
// It collapses quickly into short cycles or the fixed point zero and
// is provided for demonstration, not for use as a random source.
type MiddleSquare struct {
	digits uint64 // number of decimal digits in the state
	mod    uint64 // 10^digits
	half   uint64 // 10^(digits/2)
	state  uint64
}

// NewMiddleSquare returns a middle-square generator over states of the
// given even number of decimal digits (at most 8) seeded with seed.
func NewMiddleSquare(digits int, seed uint64) (*MiddleSquare, error) {
	if digits < 2 || digits > 8 || digits%2 != 0 {
		return nil, errors.Wrap(uq.InvalidParameter, "digit width must be even and in [2, 8]")
	}

	mod := uint64(1)
	for i := 0; i < digits; i++ {
		mod *= 10
	}
	half := uint64(1)
	for i := 0; i < digits/2; i++ {
		half *= 10
	}
	if seed >= mod {
		return nil, errors.Wrap(uq.InvalidParameter, "seed has more digits than the state width")
	}

	return &MiddleSquare{
		digits: uint64(digits),
		mod:    mod,
		half:   half,
		state:  seed,
	}, nil
}

// Uint64 squares the state and keeps its middle digits.
func (m *MiddleSquare) Uint64() uint64 {
	sq := m.state * m.state
	m.state = sq / m.half % m.mod
	return m.state
}

// Float64 returns the next state scaled to [0, 1).
func (m *MiddleSquare) Float64() float64 {
	return float64(m.Uint64()) / float64(m.mod)
}
