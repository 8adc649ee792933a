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
	"math/rand"
	"time"
)

type system struct {
	r *rand.Rand
}

// System returns a time-seeded source for non-reproducible use. All
// reproducible work should construct an explicit generator instead.
func System() Source {
	return &system{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *system) Uint64() uint64 {
	return s.r.Uint64()
}

func (s *system) Float64() float64 {
	return s.r.Float64()
}
