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

// Uniform samples random values from the interval [0, 1).
type Uniform struct {
	src prng.Source
}

// NewUniform returns an instance of the Uniform sampler drawing from src.
func NewUniform(src prng.Source) *Uniform {
	return &Uniform{src: src}
}

func (u *Uniform) Sample() (float64, error) {
	return u.src.Float64(), nil
}

// UniformRange samples random values from the interval [low, high).
type UniformRange struct {
	src       prng.Source
	low, high float64
}

// NewUniformRange returns an instance of the UniformRange sampler.
// It accepts lower and upper bounds on the sampled values.
func NewUniformRange(src prng.Source, low, high float64) (*UniformRange, error) {
	if high <= low {
		return nil, errors.Wrap(uq.InvalidParameter, "upper bound must exceed lower bound")
	}

	return &UniformRange{
		src:  src,
		low:  low,
		high: high,
	}, nil
}

func (u *UniformRange) Sample() (float64, error) {
	return u.low + (u.high-u.low)*u.src.Float64(), nil
}
