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

// Package distance implements a typed, multi-backend distance dispatch
// engine for vector similarity search: one kernel per (distance kind,
// element encoding) pair, selected once at init time and called without
// further branching.
package distance

// Kind identifies a distance or similarity measure.
type Kind int

const (
	// L2 is the Euclidean distance: sqrt(sum((a[i]-b[i])^2)).
	L2 Kind = iota
	// SquaredL2 is the squared Euclidean distance: sum((a[i]-b[i])^2).
	SquaredL2
	// L1 is the Manhattan distance: sum(|a[i]-b[i]|).
	L1
	// Dot is the negated inner product: -sum(a[i]*b[i]).
	Dot
	// Cosine is one minus the clamped cosine similarity.
	Cosine
	// Hamming is the population count of a[i] XOR b[i], defined only for Bit.
	Hamming

	// KindCount is the number of distinct Kind values.
	KindCount
)

// String returns a human-readable name for the distance kind.
func (k Kind) String() string {
	switch k {
	case L2:
		return "L2"
	case SquaredL2:
		return "SQUARED_L2"
	case L1:
		return "L1"
	case Dot:
		return "DOT"
	case Cosine:
		return "COSINE"
	case Hamming:
		return "HAMMING"
	default:
		return "UNKNOWN_KIND"
	}
}
