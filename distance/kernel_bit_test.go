// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package distance

import (
	"math/rand"
	"testing"

	"github.com/ReganEva/sqlite-vector/distance/internal/fixtures"
)

// packBits packs 0/1 values LSB-first into bytes. The convention is
// arbitrary as long as it is applied consistently to both operands:
// Hamming distance only depends on agreement, not on which bit maps to
// which position.
func packBits(vals []int) []byte {
	out := make([]byte, Bit.ByteLen(len(vals)))
	for i, v := range vals {
		if v != 0 {
			out[i/8] |= 1 << uint(i%8)
		}
	}
	return out
}

var bitQuery = []int{1, 0, 1, 0, 1, 0, 1, 0}
var bitVecs = [][]int{
	{1, 0, 0, 0, 0, 0, 0, 0},
	{0, 1, 0, 0, 0, 0, 0, 0},
	{0, 0, 1, 0, 0, 0, 0, 0},
	{0, 0, 0, 1, 0, 0, 0, 0},
	{1, 1, 0, 0, 0, 0, 0, 0},
	{0, 1, 1, 0, 0, 0, 0, 0},
	{0, 0, 1, 1, 0, 0, 0, 0},
	{1, 1, 1, 0, 0, 0, 0, 0},
	{0, 1, 1, 1, 0, 0, 0, 0},
	{1, 1, 1, 1, 0, 0, 0, 0},
}
var wantHamming = []float32{3, 5, 3, 5, 4, 4, 4, 3, 5, 4}

func TestBitHammingFixtures(t *testing.T) {
	q := packBits(bitQuery)
	for i, row := range bitVecs {
		v := packBits(row)
		got := scalarBitHamming(ptrOf(v), ptrOf(q), 8)
		if got != wantHamming[i] {
			t.Errorf("row %d: got %v, want %v", i, got, wantHamming[i])
		}
	}
}

func TestBitHammingIdentityAndSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for _, n := range fixtures.Lengths() {
		bytes := fixtures.Bytes(rng, 2, Bit.ByteLen(n))
		a, b := bytes[0], bytes[1]
		if got := scalarBitHamming(ptrOf(a), ptrOf(a), n); got != 0 {
			t.Errorf("n=%d: self-distance = %v, want 0", n, got)
		}
		ab := scalarBitHamming(ptrOf(a), ptrOf(b), n)
		ba := scalarBitHamming(ptrOf(b), ptrOf(a), n)
		if ab != ba {
			t.Errorf("n=%d: not symmetric, ab=%v ba=%v", n, ab, ba)
		}
		// The kernel counts every bit of the ceil(n/8) covering bytes.
		if maxBits := 8 * Bit.ByteLen(n); ab < 0 || float64(ab) > float64(maxBits) {
			t.Errorf("n=%d: hamming %v out of range [0,%d]", n, ab, maxBits)
		}
	}
}

func TestBitHammingZeroLength(t *testing.T) {
	var a, b []byte
	if got := scalarBitHamming(ptrOf(a), ptrOf(b), 0); got != 0 {
		t.Errorf("got %v, want 0", got)
	}
}

func TestBitHammingTailBits(t *testing.T) {
	// n=9 covers 2 bytes and both are read. The second byte is identical
	// in a and b, so only the 8 differing bits of the first byte count.
	a := []byte{0xFF, 0x01}
	b := []byte{0x00, 0x01}
	got := scalarBitHamming(ptrOf(a), ptrOf(b), 9)
	if got != 8 {
		t.Errorf("got %v, want 8", got)
	}
}
