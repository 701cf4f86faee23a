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

// halfLane is a single F16 or BF16 lane widened to float64, carrying just
// enough of its original classification (NaN, and the sign of infinity if
// it is one) to apply the masking rules of spec section 4.2 without
// re-decoding the raw bits.
type halfLane struct {
	v       float64
	nan     bool
	infSign int8 // -1, 0 (finite), or +1
}

func decodeF16Lane(bits uint16) halfLane {
	h := float16(bits)
	if h.isNaN() {
		return halfLane{nan: true}
	}
	lane := halfLane{v: float64(float16ToFloat32(h))}
	if h.isInf() {
		if h.negative() {
			lane.infSign = -1
		} else {
			lane.infSign = 1
		}
	}
	return lane
}

func decodeBF16Lane(bits uint16) halfLane {
	b := bfloat16(bits)
	if b.isNaN() {
		return halfLane{nan: true}
	}
	lane := halfLane{v: float64(bfloat16ToFloat32(b))}
	if b.isInf() {
		if b.negative() {
			lane.infSign = -1
		} else {
			lane.infSign = 1
		}
	}
	return lane
}

func u16Slice(p unsafe.Pointer, n int) []uint16 {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*uint16)(p), n)
}

// infMismatch reports whether two lanes are an "infinity mismatch" per
// spec section 4.2: one side is infinite and the other finite, or both
// are infinite with different signs. Two infinities of the same sign are
// treated as equal (zero contribution), not a mismatch: they represent
// the same degenerate point rather than a divergence.
func infMismatch(la, lb halfLane) bool {
	return (la.infSign != 0 || lb.infSign != 0) && la.infSign != lb.infSign
}

// halfSquaredL2 implements the widen-skip-NaN-propagate-Inf discipline
// shared by L2 and SQUARED_L2 for half-precision encodings.
func halfSquaredL2(ap, bp unsafe.Pointer, n int, decode func(uint16) halfLane) float32 {
	a, b := u16Slice(ap, n), u16Slice(bp, n)
	var sum float64
	for i := 0; i < n; i++ {
		la, lb := decode(a[i]), decode(b[i])
		if la.nan || lb.nan {
			continue
		}
		if infMismatch(la, lb) {
			return float32(math.Inf(1))
		}
		if la.infSign != 0 {
			// Same-sign infinities: equal values, zero contribution.
			continue
		}
		d := la.v - lb.v
		sum += d * d
	}
	return float32(sum)
}

func halfL2(ap, bp unsafe.Pointer, n int, decode func(uint16) halfLane) float32 {
	return float32(math.Sqrt(float64(halfSquaredL2(ap, bp, n, decode))))
}

func halfL1(ap, bp unsafe.Pointer, n int, decode func(uint16) halfLane) float32 {
	a, b := u16Slice(ap, n), u16Slice(bp, n)
	var sum float64
	for i := 0; i < n; i++ {
		la, lb := decode(a[i]), decode(b[i])
		if la.nan || lb.nan {
			continue
		}
		if infMismatch(la, lb) {
			return float32(math.Inf(1))
		}
		if la.infSign != 0 {
			continue
		}
		sum += math.Abs(la.v - lb.v)
	}
	return float32(sum)
}

// halfDot implements spec's DOT special-value rule: when an infinite product
// exists, the accumulated (un-negated) sum is discarded; instead the
// sign of the result is decided by whether the first +Inf product in
// iteration order precedes the first -Inf product.
func halfDot(ap, bp unsafe.Pointer, n int, decode func(uint16) halfLane) float32 {
	a, b := u16Slice(ap, n), u16Slice(bp, n)
	var sum float64
	firstPos, firstNeg := -1, -1
	for i := 0; i < n; i++ {
		la, lb := decode(a[i]), decode(b[i])
		if la.nan || lb.nan {
			continue
		}
		p := la.v * lb.v
		if math.IsInf(p, 1) && firstPos == -1 {
			firstPos = i
		}
		if math.IsInf(p, -1) && firstNeg == -1 {
			firstNeg = i
		}
		sum += p
	}
	if firstPos != -1 || firstNeg != -1 {
		if firstPos != -1 && (firstNeg == -1 || firstPos < firstNeg) {
			return float32(math.Inf(-1))
		}
		return float32(math.Inf(1))
	}
	return float32(-sum)
}

func halfCosine(ap, bp unsafe.Pointer, n int, decode func(uint16) halfLane) float32 {
	a, b := u16Slice(ap, n), u16Slice(bp, n)
	var dot, magA, magB float64
	for i := 0; i < n; i++ {
		la, lb := decode(a[i]), decode(b[i])
		if la.nan || lb.nan {
			continue
		}
		if la.infSign != 0 || lb.infSign != 0 {
			return 1.0
		}
		dot += la.v * lb.v
		magA += la.v * la.v
		magB += lb.v * lb.v
	}
	return cosineFromSums(dot, magA, magB)
}

func scalarF16SquaredL2(ap, bp unsafe.Pointer, n int) float32 {
	return halfSquaredL2(ap, bp, n, decodeF16Lane)
}
func scalarF16L2(ap, bp unsafe.Pointer, n int) float32 { return halfL2(ap, bp, n, decodeF16Lane) }
func scalarF16L1(ap, bp unsafe.Pointer, n int) float32 { return halfL1(ap, bp, n, decodeF16Lane) }
func scalarF16Dot(ap, bp unsafe.Pointer, n int) float32 { return halfDot(ap, bp, n, decodeF16Lane) }
func scalarF16Cosine(ap, bp unsafe.Pointer, n int) float32 {
	return halfCosine(ap, bp, n, decodeF16Lane)
}

func scalarBF16SquaredL2(ap, bp unsafe.Pointer, n int) float32 {
	return halfSquaredL2(ap, bp, n, decodeBF16Lane)
}
func scalarBF16L2(ap, bp unsafe.Pointer, n int) float32 { return halfL2(ap, bp, n, decodeBF16Lane) }
func scalarBF16L1(ap, bp unsafe.Pointer, n int) float32 { return halfL1(ap, bp, n, decodeBF16Lane) }
func scalarBF16Dot(ap, bp unsafe.Pointer, n int) float32 {
	return halfDot(ap, bp, n, decodeBF16Lane)
}
func scalarBF16Cosine(ap, bp unsafe.Pointer, n int) float32 {
	return halfCosine(ap, bp, n, decodeBF16Lane)
}
