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
	"math/bits"
	"unsafe"
)

// scalarBitHamming computes popcount(a XOR b) over the ceil(n/8) bytes
// covering n bits. Bit-ordering within a byte is irrelevant: popcount is
// order-independent, per spec section 9.
//
// Grounded on the teacher's hwy/bitops.go PopCount, which likewise
// delegates to math/bits for the scalar case; there is no native vector
// popcount available here so this is the scalar baseline every backend
// is checked against.
func scalarBitHamming(ap, bp unsafe.Pointer, n int) float32 {
	byteLen := Bit.ByteLen(n)
	if byteLen == 0 {
		return 0
	}
	a := unsafe.Slice((*byte)(ap), byteLen)
	b := unsafe.Slice((*byte)(bp), byteLen)

	var count int
	for i := 0; i < byteLen; i++ {
		count += bits.OnesCount8(a[i] ^ b[i])
	}
	return float32(count)
}
