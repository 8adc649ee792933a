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

// SplitMix is a 64-bit generator with a single word of state, used as
// the output type of Derive. The update and finalizer constants are
// the canonical SplitMix64 ones (Vigna 2014).
type SplitMix struct {
	state uint64
}

// NewSplitMix returns a SplitMix generator with the given seed.
func NewSplitMix(seed uint64) *SplitMix {
	return &SplitMix{state: seed}
}

// Uint64 advances the state and returns the mixed output.
func (s *SplitMix) Uint64() uint64 {
	s.state += 0x9e3779b97f4a7c15
	x := s.state
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// Float64 returns the next value from [0, 1) with 53 bits of precision.
func (s *SplitMix) Float64() float64 {
	return float64(s.Uint64()>>11) / (1 << 53)
}

// Derive creates an independent substream from a parent source and a
// stream identifier. The parent is advanced once so that reusing the
// same identifier by mistake still yields distinct children.
func Derive(parent Source, stream uint64) Source {
	seed := parent.Uint64() ^ (stream + 0x9e3779b97f4a7c15)
	return NewSplitMix(seed)
}
