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

// installScalarKernels populates every (kind, encoding) pair the scalar
// backend supports. This step always runs first during Init, so a
// vector backend that only implements some pairs can leave the rest
// exactly as the scalar table left them.
func installScalarKernels(t *table) {
	t[L2][F32] = scalarF32L2
	t[SquaredL2][F32] = scalarF32SquaredL2
	t[L1][F32] = scalarF32L1
	t[Dot][F32] = scalarF32Dot
	t[Cosine][F32] = scalarF32Cosine

	t[L2][F16] = scalarF16L2
	t[SquaredL2][F16] = scalarF16SquaredL2
	t[L1][F16] = scalarF16L1
	t[Dot][F16] = scalarF16Dot
	t[Cosine][F16] = scalarF16Cosine

	t[L2][BF16] = scalarBF16L2
	t[SquaredL2][BF16] = scalarBF16SquaredL2
	t[L1][BF16] = scalarBF16L1
	t[Dot][BF16] = scalarBF16Dot
	t[Cosine][BF16] = scalarBF16Cosine

	t[L2][U8] = scalarU8L2
	t[SquaredL2][U8] = scalarU8SquaredL2
	t[L1][U8] = scalarU8L1
	t[Dot][U8] = scalarU8Dot
	t[Cosine][U8] = scalarU8Cosine

	t[L2][I8] = scalarI8L2
	t[SquaredL2][I8] = scalarI8SquaredL2
	t[L1][I8] = scalarI8L1
	t[Dot][I8] = scalarI8Dot
	t[Cosine][I8] = scalarI8Cosine

	t[Hamming][Bit] = scalarBitHamming
}
