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
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
)

const keystreamBlock = 64

// Keystream is a deterministic source backed by the salsa20 keystream.
// The 32-byte key plays the role of the seed: equal keys reproduce
// equal streams, while the output remains statistically well mixed.
type Keystream struct {
	key   [32]byte
	block uint64
	buf   [keystreamBlock]byte
	off   int
}

// NewKeystream returns a source generating the keystream of the given key.
func NewKeystream(key *[32]byte) *Keystream {
	k := &Keystream{key: *key}
	k.refill()
	return k
}

func (k *Keystream) refill() {
	var nonce [8]byte
	binary.LittleEndian.PutUint64(nonce[:], k.block)
	var in [keystreamBlock]byte // zeros, so the output is the raw keystream
	salsa20.XORKeyStream(k.buf[:], in[:], nonce[:], &k.key)
	k.block++
	k.off = 0
}

// Uint64 returns the next 8 keystream bytes as a little-endian value.
func (k *Keystream) Uint64() uint64 {
	if k.off == keystreamBlock {
		k.refill()
	}
	v := binary.LittleEndian.Uint64(k.buf[k.off : k.off+8])
	k.off += 8
	return v
}

// Float64 returns the next value from [0, 1) with 53 bits of precision.
func (k *Keystream) Float64() float64 {
	return float64(k.Uint64()>>11) / (1 << 53)
}
