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

//go:build riscv64

package distance

import "golang.org/x/sys/cpu"

// hasRVV reports whether the RISC-V Vector extension is available,
// following the teacher's existing pattern of probing golang.org/x/sys/cpu
// feature bits (e.g. cpu.ARM64.HasSVE in hwy/sve_detect_linux_arm64.go).
var hasRVV = cpu.RISCV64.HasV

// installVectorKernels overwrites the scalar entries for every pair the
// RVV backend implements, mirroring init_distance_functions_rvv in the
// original distance-rvv.c: populate table entries, then publish the
// backend name.
func installVectorKernels(t *table) (string, bool) {
	if simdModeEnv() != simdForce && !hasRVV {
		return "", false
	}

	t[L2][F32] = vectorF32L2
	t[SquaredL2][F32] = vectorF32SquaredL2
	t[L1][F32] = vectorF32L1
	t[Dot][F32] = vectorF32Dot
	t[Cosine][F32] = vectorF32Cosine

	t[Hamming][Bit] = vectorBitHamming

	return "RVV", true
}
