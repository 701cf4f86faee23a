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

//go:build debug

package distance

import "fmt"

// assertSupported panics naming the offending (kind, encoding) pair.
// Only compiled in with `go build -tags debug`; release builds treat
// an unsupported pair as a programmer error the caller must avoid,
// per spec's "no runtime validation on the hot path" requirement.
func assertSupported(k Kind, e Encoding) {
	panic(fmt.Sprintf("distance: unsupported pair (%s, %s)", k, e))
}
