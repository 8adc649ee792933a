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

package prng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uqlab-project/uqlab/prng"
)

func TestCongruential_FirstState(t *testing.T) {
	c, err := prng.NewCongruential(123456, 978564, 6012119, 123456)
	if err != nil {
		t.Fatalf("Error during generator construction: %v", err)
	}

	want := (uint64(123456)*123456 + 978564) % 6012119
	assert.Equal(t, want, c.Uint64(), "first state should follow the congruential update")
}

func TestCongruential_Determinism(t *testing.T) {
	c1, err := prng.NewCongruential(123456, 978564, 6012119, 42)
	if err != nil {
		t.Fatalf("Error during generator construction: %v", err)
	}
	c2, err := prng.NewCongruential(123456, 978564, 6012119, 42)
	if err != nil {
		t.Fatalf("Error during generator construction: %v", err)
	}

	for i := 0; i < 1000; i++ {
		assert.Equal(t, c1.Uint64(), c2.Uint64(), "equally seeded generators should agree")
	}
}

func TestCongruential_Float64Range(t *testing.T) {
	c, err := prng.NewCongruential(123456, 978564, 6012119, 1)
	if err != nil {
		t.Fatalf("Error during generator construction: %v", err)
	}

	for i := 0; i < 10000; i++ {
		u := c.Float64()
		assert.True(t, u >= 0, "value below the unit interval")
		assert.True(t, u < 1, "value above the unit interval")
	}
}

func TestCongruential_InvalidParams(t *testing.T) {
	_, err := prng.NewCongruential(0, 1, 10, 0)
	assert.Error(t, err, "zero multiplier should be rejected")

	_, err = prng.NewCongruential(3, 1, 1, 0)
	assert.Error(t, err, "modulus below 2 should be rejected")

	_, err = prng.NewCongruential(3, 1, 10, 10)
	assert.Error(t, err, "seed outside [0, m) should be rejected")

	_, err = prng.NewCongruential(3, 11, 10, 0)
	assert.Error(t, err, "increment outside [0, m) should be rejected")
}
