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
	"sync"
	"sync/atomic"
	"unsafe"
)

// Kernel computes one distance for one element encoding. a and b point to
// n-element buffers of the declared encoding (or, for Bit, n bits packed
// into ceil(n/8) bytes). Kernels are pure: no allocation, no I/O, no
// mutation of the inputs.
type Kernel func(a, b unsafe.Pointer, n int) float32

// table is the (kind x encoding) dispatch matrix. A nil entry means the
// pair is not supported on any backend.
type table [KindCount][EncodingCount]Kernel

var (
	initOnce     sync.Once
	globalTable  table
	backendNamep atomic.Pointer[string]
)

// Init populates the dispatch table. It is idempotent and safe to call
// from multiple goroutines; only the first call has effect. After it
// returns, the table is immutable and Get may be called concurrently
// from any number of goroutines without synchronization.
func Init() {
	initOnce.Do(initTable)
}

func initTable() {
	installScalarKernels(&globalTable)

	mode := simdModeEnv()
	var vecName string
	var vecOk bool
	if mode != simdOff {
		vecName, vecOk = installVectorKernels(&globalTable)
	}
	name := selectBackendName(mode, vecName, vecOk)

	override, overrideOk := backendNameOverrideEnv()
	name = applyBackendOverride(name, override, overrideOk)
	backendNamep.Store(&name)
}

// selectBackendName picks the pre-override backend name: "SCALAR" unless
// SIMD is not disabled and the vector backend reports it installed
// something, in which case its name wins. Pulled out of initTable as a
// pure function so it can be unit-tested independently of the one-shot
// sync.Once global state in Init.
func selectBackendName(mode simdMode, vecName string, vecOk bool) string {
	if mode != simdOff && vecOk {
		return vecName
	}
	return "SCALAR"
}

// applyBackendOverride returns override in place of name when overrideOk,
// mirroring SQLITEVECTOR_BACKEND_OVERRIDE's effect in initTable. Pulled
// out as a pure function for the same reason as selectBackendName.
func applyBackendOverride(name, override string, overrideOk bool) string {
	if overrideOk {
		return override
	}
	return name
}

// Get returns the kernel registered for (kind, enc), or (nil, false) if
// the pair is not supported. Init must have been called first; calling
// Get before Init returns (nil, false) for every pair.
func Get(k Kind, enc Encoding) (Kernel, bool) {
	if k < 0 || k >= KindCount || enc < 0 || enc >= EncodingCount {
		assertSupported(k, enc)
		return nil, false
	}
	fn := globalTable[k][enc]
	if fn == nil {
		assertSupported(k, enc)
		return nil, false
	}
	return fn, true
}

// CurrentBackend returns the name of the active backend ("SCALAR", "RVV",
// or an override string set via SQLITEVECTOR_BACKEND_OVERRIDE). Returns
// "" if Init has not yet been called.
func CurrentBackend() string {
	p := backendNamep.Load()
	if p == nil {
		return ""
	}
	return *p
}
