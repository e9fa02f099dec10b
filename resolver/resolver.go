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

package resolver

import (
	"dirpx.dev/facteur/apis"
)

// New constructs an apis.Resolver that consults the given tables in order.
// Nil tables are ignored. The returned resolver is safe for concurrent use
// provided tables themselves are safe for concurrent Lookup calls.
func New(tables ...apis.TypeTable) apis.Resolver {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.TypeTable, 0, len(tables))
	for _, t := range tables {
		if t != nil {
			out = append(out, t)
		}
	}
	return chain{tables: out}
}

// chain is an immutable, order-preserving resolver over a set of tables.
type chain struct {
	tables []apis.TypeTable
}

// Resolve returns the constructor of the first table knowing identifier.
func (r chain) Resolve(identifier string) (apis.Constructor, bool) {
	for _, t := range r.tables {
		if ctor, ok := t.Lookup(identifier); ok {
			return ctor, true
		}
	}
	return nil, false
}
