/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

import "reflect"

// Namer derives type identifiers. A Registry uses TypeName to turn factory
// names into identifiers; type tables use TypeOf to name Go types.
type Namer interface {
	// TypeName returns the canonical identifier for a factory name.
	TypeName(name string) string
	// TypeOf returns the identifier of a Go type, or "" if it has no name.
	TypeOf(t reflect.Type) string
}
