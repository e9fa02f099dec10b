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

package strategy

import (
	"reflect"
	"sync"

	uref "dirpx.dev/facteur/utils/reflect"
)

// reflectNamer names Go types for type tables: the pointer-unwrapped type
// name without package qualifier or type parameters ("*pkg.G[int]" -> "G").
type reflectNamer struct{}

// typeNameCache caches resolved identifiers by type.
var typeNameCache sync.Map // key: reflect.Type, val: string

// TypeOf returns the identifier of t, or "" when t has no name.
func (reflectNamer) TypeOf(t reflect.Type) string {
	return TypeOf(t)
}

// TypeOf returns the identifier of t with memoization.
func TypeOf(t reflect.Type) string {
	if t == nil {
		return ""
	}
	if v, ok := typeNameCache.Load(t); ok {
		return v.(string)
	}

	name := ""
	if base, err := uref.Normalize(t, 0); err == nil {
		name = uref.StripTypeParams(base.Name())
	}

	typeNameCache.Store(t, name)
	return name
}
