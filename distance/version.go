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

// version is the Go rendition of the original extension's vector_version()
// SQL function: a short, stable identifier for introspection. The SQL
// binding itself is out of scope (spec's Non-goals), but the value it
// would report is part of this package's public surface.
const version = "0.1.0"

// Version returns the package version string.
func Version() string {
	return version
}
