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

import "os"

// simdMode mirrors spec's enable_simd gate: auto probes the hardware,
// off forces the scalar table, force asserts the backend is compiled in.
type simdMode int

const (
	simdAuto simdMode = iota
	simdOff
	simdForce
)

// simdModeEnv reads SQLITEVECTOR_SIMD, following the same os.Getenv
// convention the teacher uses for HWY_NO_SIMD / HWY_ENABLE_F16.
func simdModeEnv() simdMode {
	switch os.Getenv("SQLITEVECTOR_SIMD") {
	case "off":
		return simdOff
	case "force":
		return simdForce
	default:
		return simdAuto
	}
}

// backendNameOverrideEnv reads SQLITEVECTOR_BACKEND_OVERRIDE, the Go
// rendition of spec's backend_name_override testing hook.
func backendNameOverrideEnv() (string, bool) {
	v, ok := os.LookupEnv("SQLITEVECTOR_BACKEND_OVERRIDE")
	return v, ok && v != ""
}
