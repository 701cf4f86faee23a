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

//go:build !riscv64

package distance

// installVectorKernels is a no-op on every architecture other than
// riscv64: per spec, the only non-scalar backend in this snapshot is the
// RISC-V Vector backend. Grounded on the teacher's hwy/dispatch_other.go,
// which likewise falls back to scalar on every architecture it has not
// added a dedicated backend for.
func installVectorKernels(*table) (string, bool) {
	return "", false
}
