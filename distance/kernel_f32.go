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
	"math"
	"unsafe"
)

// f32Slice reinterprets a raw buffer as a []float32 of n elements. Callers
// guarantee a and b point to n*4 readable bytes each; alignment is not
// required by the contract, but unsafe.Slice itself requires no more than
// the pointer's natural alignment, which float32 buffers already satisfy
// on every architecture this package targets.
func f32Slice(p unsafe.Pointer, n int) []float32 {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*float32)(p), n)
}

// scalarF32SquaredL2 computes sum((a[i]-b[i])^2), grounded on the
// teacher's BaseL2SquaredDistance (hwy/contrib/vec/distance_base.go),
// generalized from a generic slice parameter to a raw pointer + length
// pair per the kernel contract.
func scalarF32SquaredL2(ap, bp unsafe.Pointer, n int) float32 {
	a, b := f32Slice(ap, n), f32Slice(bp, n)
	var sum0, sum1, sum2, sum3 float32
	i := 0
	for ; i+4 <= n; i += 4 {
		d0 := a[i] - b[i]
		d1 := a[i+1] - b[i+1]
		d2 := a[i+2] - b[i+2]
		d3 := a[i+3] - b[i+3]
		sum0 += d0 * d0
		sum1 += d1 * d1
		sum2 += d2 * d2
		sum3 += d3 * d3
	}
	sum := (sum0 + sum1) + (sum2 + sum3)
	for ; i < n; i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// scalarF32L2 computes sqrt(sum((a[i]-b[i])^2)).
func scalarF32L2(ap, bp unsafe.Pointer, n int) float32 {
	return float32(math.Sqrt(float64(scalarF32SquaredL2(ap, bp, n))))
}

// scalarF32L1 computes sum(|a[i]-b[i]|).
func scalarF32L1(ap, bp unsafe.Pointer, n int) float32 {
	a, b := f32Slice(ap, n), f32Slice(bp, n)
	var sum0, sum1, sum2, sum3 float32
	i := 0
	for ; i+4 <= n; i += 4 {
		sum0 += float32(math.Abs(float64(a[i] - b[i])))
		sum1 += float32(math.Abs(float64(a[i+1] - b[i+1])))
		sum2 += float32(math.Abs(float64(a[i+2] - b[i+2])))
		sum3 += float32(math.Abs(float64(a[i+3] - b[i+3])))
	}
	sum := (sum0 + sum1) + (sum2 + sum3)
	for ; i < n; i++ {
		sum += float32(math.Abs(float64(a[i] - b[i])))
	}
	return sum
}

// scalarF32Dot computes -sum(a[i]*b[i]), grounded on the teacher's
// BaseDot (hwy/contrib/vec/dot_base.go), negated per spec so that
// "closer" stays smaller.
func scalarF32Dot(ap, bp unsafe.Pointer, n int) float32 {
	a, b := f32Slice(ap, n), f32Slice(bp, n)
	var sum0, sum1, sum2, sum3 float32
	i := 0
	for ; i+4 <= n; i += 4 {
		sum0 += a[i] * b[i]
		sum1 += a[i+1] * b[i+1]
		sum2 += a[i+2] * b[i+2]
		sum3 += a[i+3] * b[i+3]
	}
	sum := (sum0 + sum1) + (sum2 + sum3)
	for ; i < n; i++ {
		sum += a[i] * b[i]
	}
	return -sum
}

// scalarF32Cosine computes 1 - clamp(dot/(||a||*||b||), -1, 1). If either
// norm is zero, or the ratio is non-finite, the result is exactly 1.0.
func scalarF32Cosine(ap, bp unsafe.Pointer, n int) float32 {
	a, b := f32Slice(ap, n), f32Slice(bp, n)
	var dot, magA, magB float32
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}
	normA := float32(math.Sqrt(float64(magA)))
	normB := float32(math.Sqrt(float64(magB)))
	if normA == 0 || normB == 0 {
		return 1.0
	}
	ratio := dot / (normA * normB)
	if math.IsNaN(float64(ratio)) || math.IsInf(float64(ratio), 0) {
		return 1.0
	}
	if ratio > 1 {
		ratio = 1
	} else if ratio < -1 {
		ratio = -1
	}
	return 1 - ratio
}
