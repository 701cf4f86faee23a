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

// Integer kernels widen before arithmetic to dodge the two classic byte
// hazards: subtracting in u8 wraps, and subtracting in i8 overflows at
// -128-127. Differences are computed in int16 (the widest type that still
// can't overflow for any pair of byte-range operands), squared into
// int32, and accumulated into int32/uint32. Callers guarantee
// n * max_square <= 2^31 (n <= 2^20), per spec.

func u8Slice(p unsafe.Pointer, n int) []uint8 {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*uint8)(p), n)
}

func i8Slice(p unsafe.Pointer, n int) []int8 {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*int8)(p), n)
}

// scalarU8SquaredL2 computes sum((a[i]-b[i])^2) over unsigned bytes.
func scalarU8SquaredL2(ap, bp unsafe.Pointer, n int) float32 {
	a, b := u8Slice(ap, n), u8Slice(bp, n)
	var sum int32
	for i := 0; i < n; i++ {
		d := int16(a[i]) - int16(b[i])
		sum += int32(d) * int32(d)
	}
	return float32(sum)
}

func scalarU8L2(ap, bp unsafe.Pointer, n int) float32 {
	return float32(math.Sqrt(float64(scalarU8SquaredL2(ap, bp, n))))
}

// scalarU8L1 computes sum(|a[i]-b[i]|) via max-min: each pair is ordered
// first, so the unsigned subtraction never wraps and no signed subtraction
// is needed.
func scalarU8L1(ap, bp unsafe.Pointer, n int) float32 {
	a, b := u8Slice(ap, n), u8Slice(bp, n)
	var sum uint32
	for i := 0; i < n; i++ {
		hi, lo := a[i], b[i]
		if lo > hi {
			hi, lo = lo, hi
		}
		sum += uint32(hi) - uint32(lo)
	}
	return float32(sum)
}

func scalarU8Dot(ap, bp unsafe.Pointer, n int) float32 {
	a, b := u8Slice(ap, n), u8Slice(bp, n)
	var sum uint32
	for i := 0; i < n; i++ {
		sum += uint32(a[i]) * uint32(b[i])
	}
	return -float32(sum)
}

func scalarU8Cosine(ap, bp unsafe.Pointer, n int) float32 {
	a, b := u8Slice(ap, n), u8Slice(bp, n)
	var dot, magA, magB uint32
	for i := 0; i < n; i++ {
		dot += uint32(a[i]) * uint32(b[i])
		magA += uint32(a[i]) * uint32(a[i])
		magB += uint32(b[i]) * uint32(b[i])
	}
	return cosineFromSums(float64(dot), float64(magA), float64(magB))
}

// scalarI8SquaredL2 computes sum((a[i]-b[i])^2) over signed bytes.
func scalarI8SquaredL2(ap, bp unsafe.Pointer, n int) float32 {
	a, b := i8Slice(ap, n), i8Slice(bp, n)
	var sum int32
	for i := 0; i < n; i++ {
		d := int16(a[i]) - int16(b[i])
		sum += int32(d) * int32(d)
	}
	return float32(sum)
}

func scalarI8L2(ap, bp unsafe.Pointer, n int) float32 {
	return float32(math.Sqrt(float64(scalarI8SquaredL2(ap, bp, n))))
}

func scalarI8L1(ap, bp unsafe.Pointer, n int) float32 {
	a, b := i8Slice(ap, n), i8Slice(bp, n)
	var sum uint32
	for i := 0; i < n; i++ {
		hi, lo := int16(a[i]), int16(b[i])
		if lo > hi {
			hi, lo = lo, hi
		}
		sum += uint32(hi - lo)
	}
	return float32(sum)
}

func scalarI8Dot(ap, bp unsafe.Pointer, n int) float32 {
	a, b := i8Slice(ap, n), i8Slice(bp, n)
	var sum int32
	for i := 0; i < n; i++ {
		sum += int32(a[i]) * int32(b[i])
	}
	return -float32(sum)
}

func scalarI8Cosine(ap, bp unsafe.Pointer, n int) float32 {
	a, b := i8Slice(ap, n), i8Slice(bp, n)
	var dot, magA, magB int32
	for i := 0; i < n; i++ {
		dot += int32(a[i]) * int32(b[i])
		magA += int32(a[i]) * int32(a[i])
		magB += int32(b[i]) * int32(b[i])
	}
	return cosineFromSums(float64(dot), float64(magA), float64(magB))
}

// cosineFromSums applies the shared clamp-and-zero-norm discipline of
// spec section 4.2 to an already-accumulated dot product and squared
// norms, regardless of the integer width they were accumulated in.
func cosineFromSums(dot, sqMagA, sqMagB float64) float32 {
	normA := math.Sqrt(sqMagA)
	normB := math.Sqrt(sqMagB)
	if normA == 0 || normB == 0 {
		return 1.0
	}
	ratio := dot / (normA * normB)
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return 1.0
	}
	if ratio > 1 {
		ratio = 1
	} else if ratio < -1 {
		ratio = -1
	}
	return float32(1 - ratio)
}
