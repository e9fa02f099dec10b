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

package types

import (
	"fmt"
	"reflect"

	"dirpx.dev/facteur/apis"
)

// Func adapts a typed constructor to apis.Constructor.
func Func[T any](fn func(args ...any) (T, error)) apis.Constructor {
	return func(args ...any) (any, error) {
		return fn(args...)
	}
}

// Zero returns a constructor producing new(T) that accepts no arguments,
// the equivalent of a type without an explicit initializer.
func Zero[T any]() func(args ...any) (*T, error) {
	return func(args ...any) (*T, error) {
		if len(args) != 0 {
			return nil, fmt.Errorf("%s: wrong number of arguments (given %d, expected 0)", reflect.TypeFor[T](), len(args))
		}
		return new(T), nil
	}
}

// Nullary adapts a constructor without arguments and without error.
func Nullary[T any](fn func() T) func(args ...any) (T, error) {
	return func(args ...any) (T, error) {
		if len(args) != 0 {
			var zero T
			return zero, fmt.Errorf("%s: wrong number of arguments (given %d, expected 0)", reflect.TypeFor[T](), len(args))
		}
		return fn(), nil
	}
}
