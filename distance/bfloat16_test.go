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
	"testing"
)

func TestBFloat16ToFloat32(t *testing.T) {
	tests := []struct {
		name string
		bits uint16
		want float32
	}{
		{"PositiveZero", 0x0000, 0.0},
		{"One", 0x3F80, 1.0},
		{"NegOne", 0xBF80, -1.0},
		{"Two", 0x4000, 2.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bfloat16ToFloat32(bfloat16(tt.bits))
			if got != tt.want {
				t.Errorf("bfloat16ToFloat32(0x%04x) = %v, want %v", tt.bits, got, tt.want)
			}
		})
	}

	t.Run("IsBitShiftOfFloat32", func(t *testing.T) {
		// bfloat16 is exactly the upper 16 bits of a float32 whose lower
		// mantissa bits are all zero, so the conversion is lossless here.
		f := float32(3.25)
		bits := math.Float32bits(f)
		b := bfloat16(bits >> 16)
		got := bfloat16ToFloat32(b)
		if got != f {
			t.Errorf("got %v, want %v", got, f)
		}
	})

	t.Run("Infinity", func(t *testing.T) {
		b := bfloat16(0x7F80)
		if !b.isInf() {
			t.Fatal("expected isInf")
		}
		got := bfloat16ToFloat32(b)
		if !math.IsInf(float64(got), 1) {
			t.Errorf("got %v, want +Inf", got)
		}
	})

	t.Run("NaN", func(t *testing.T) {
		b := bfloat16(0x7FC0)
		if !b.isNaN() {
			t.Fatal("expected isNaN")
		}
		got := bfloat16ToFloat32(b)
		if !math.IsNaN(float64(got)) {
			t.Errorf("got %v, want NaN", got)
		}
	})
}

func TestFloat32ToBFloat16RoundTrip(t *testing.T) {
	// Values whose mantissa fits in 7 bits round-trip exactly.
	values := []float32{0, 1, -1, 2, 0.5, -0.5, 100, -100}
	for _, v := range values {
		b := float32ToBFloat16(v)
		got := bfloat16ToFloat32(b)
		if got != v {
			t.Errorf("round trip %v: got %v", v, got)
		}
	}
}

func TestFloat32ToBFloat16RoundingTruncatesHighPrecision(t *testing.T) {
	// pi has far more mantissa bits than bfloat16 can carry; the
	// round-tripped value must differ from, but be close to, the input.
	b := float32ToBFloat16(math.Pi)
	got := float64(bfloat16ToFloat32(b))
	if got == math.Pi {
		t.Fatal("expected precision loss converting pi to bfloat16")
	}
	if math.Abs(got-math.Pi) > 0.02 {
		t.Errorf("got %v, too far from pi", got)
	}
}

func TestFloat32ToBFloat16NaN(t *testing.T) {
	b := float32ToBFloat16(float32(math.NaN()))
	if !b.isNaN() {
		t.Error("expected NaN to convert to a bfloat16 NaN")
	}
}
