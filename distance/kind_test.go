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

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{L2, "L2"},
		{SquaredL2, "SQUARED_L2"},
		{L1, "L1"},
		{Dot, "DOT"},
		{Cosine, "COSINE"},
		{Hamming, "HAMMING"},
		{Kind(99), "UNKNOWN_KIND"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestEncodingString(t *testing.T) {
	tests := []struct {
		enc  Encoding
		want string
	}{
		{F32, "F32"},
		{F16, "F16"},
		{BF16, "BF16"},
		{U8, "U8"},
		{I8, "I8"},
		{Bit, "BIT"},
		{Encoding(99), "UNKNOWN_ENCODING"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.enc.String(); got != tt.want {
				t.Errorf("Encoding(%d).String() = %q, want %q", tt.enc, got, tt.want)
			}
		})
	}
}

func TestEncodingByteLen(t *testing.T) {
	tests := []struct {
		enc  Encoding
		n    int
		want int
	}{
		{F32, 4, 16},
		{F16, 4, 8},
		{BF16, 4, 8},
		{U8, 5, 5},
		{I8, 5, 5},
		{Bit, 8, 1},
		{Bit, 9, 2},
		{Bit, 0, 0},
	}
	for _, tt := range tests {
		if got := tt.enc.ByteLen(tt.n); got != tt.want {
			t.Errorf("%s.ByteLen(%d) = %d, want %d", tt.enc, tt.n, got, tt.want)
		}
	}
}
