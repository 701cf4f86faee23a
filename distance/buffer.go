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

import "unsafe"

// ptrOf returns the address of a slice's backing array, or nil for an
// empty slice. It never escapes past the duration of the caller's use of
// the returned pointer, matching the kernel contract's "borrow for the
// call only" lifetime.
func ptrOf[T any](s []T) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Pointer(&s[0])
}

// Float32 computes the given distance kind between two float32 vectors.
// It is a thin, typed convenience over Get + the raw pointer contract for
// callers who already hold Go slices; kernels themselves still operate on
// unsafe.Pointer per the kernel contract (spec section 4.4).
func Float32(k Kind, a, b []float32) float32 {
	Init()
	n := min(len(a), len(b))
	fn, _ := Get(k, F32)
	return fn(ptrOf(a), ptrOf(b), n)
}

// Uint8 computes the given distance kind between two U8-encoded vectors.
func Uint8(k Kind, a, b []uint8) float32 {
	Init()
	n := min(len(a), len(b))
	fn, _ := Get(k, U8)
	return fn(ptrOf(a), ptrOf(b), n)
}

// Int8 computes the given distance kind between two I8-encoded vectors.
func Int8(k Kind, a, b []int8) float32 {
	Init()
	n := min(len(a), len(b))
	fn, _ := Get(k, I8)
	return fn(ptrOf(a), ptrOf(b), n)
}

// Float16Raw computes the given distance kind between two F16-encoded
// vectors, given as their raw uint16 bit patterns.
func Float16Raw(k Kind, a, b []uint16) float32 {
	Init()
	n := min(len(a), len(b))
	fn, _ := Get(k, F16)
	return fn(ptrOf(a), ptrOf(b), n)
}

// BFloat16Raw computes the given distance kind between two BF16-encoded
// vectors, given as their raw uint16 bit patterns.
func BFloat16Raw(k Kind, a, b []uint16) float32 {
	Init()
	n := min(len(a), len(b))
	fn, _ := Get(k, BF16)
	return fn(ptrOf(a), ptrOf(b), n)
}

// Bits computes the Hamming distance between two bit-packed vectors. n is
// the logical number of bits; a and b must each contain at least
// Bit.ByteLen(n) bytes.
func Bits(a, b []byte, n int) float32 {
	Init()
	fn, _ := Get(Hamming, Bit)
	return fn(ptrOf(a), ptrOf(b), n)
}
