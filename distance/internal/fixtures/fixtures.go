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

// Package fixtures generates synthetic vectors for distance-kernel
// property tests. It is test-only infrastructure shared across the
// distance package's _test.go files.
package fixtures

import (
	"math/rand"

	"github.com/samber/lo"
)

// Float32s builds n random float32 vectors of length dim using rng,
// using lo.Times for the bounded-repetition construction.
func Float32s(rng *rand.Rand, n, dim int) [][]float32 {
	return lo.Times(n, func(int) []float32 {
		return lo.Times(dim, func(int) float32 {
			return float32(rng.NormFloat64())
		})
	})
}

// Bytes builds n random byte vectors of length dim.
func Bytes(rng *rand.Rand, n, dim int) [][]byte {
	return lo.Times(n, func(int) []byte {
		return lo.Times(dim, func(int) byte {
			return byte(rng.Intn(256))
		})
	})
}

// Int8s builds n random int8 vectors of length dim.
func Int8s(rng *rand.Rand, n, dim int) [][]int8 {
	return lo.Times(n, func(int) []int8 {
		return lo.Times(dim, func(int) int8 {
			return int8(rng.Intn(256) - 128)
		})
	})
}

// Lengths returns a small spread of vector lengths, including edge cases
// (0, 1) and lengths that are not multiples of the RVV simulated lane
// count or any common SIMD width, to exercise tail handling.
func Lengths() []int {
	return []int{0, 1, 2, 3, 4, 7, 8, 9, 15, 16, 17, 31, 32, 33, 63, 64, 65, 100, 257}
}
