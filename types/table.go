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
	"reflect"
	"sync"

	"dirpx.dev/facteur/apis"
	ferrors "dirpx.dev/facteur/errors"
	"dirpx.dev/facteur/strategy"
)

// New constructs an empty TypeTable.
func New() apis.TypeTable {
	return &table{}
}

// table is a simple TypeTable implementation backed by sync.Map.
type table struct {
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps identifiers to constructors.
	m sync.Map // map[string]apis.Constructor
	// count tracks the number of registered entries.
	count int
}

// Register associates identifier with ctor. Registering an identifier twice
// fails with ErrConflictingType, constructors are not comparable.
func (t *table) Register(identifier string, ctor apis.Constructor) error {
	// Validate inputs early.
	if identifier == "" {
		return ferrors.ErrEmptyName
	}
	if ctor == nil {
		return ferrors.ErrNilConstructor
	}

	// Fast read path: conflict check without locking.
	if _, ok := t.m.Load(identifier); ok {
		return ferrors.ErrConflictingType
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if _, ok := t.m.Load(identifier); ok {
		return ferrors.ErrConflictingType
	}

	t.m.Store(identifier, ctor)
	t.count++
	return nil
}

// Lookup returns the constructor registered under identifier.
func (t *table) Lookup(identifier string) (apis.Constructor, bool) {
	if identifier == "" {
		return nil, false
	}
	if v, ok := t.m.Load(identifier); ok {
		return v.(apis.Constructor), true
	}
	return nil, false
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (t *table) Entries() []apis.TypeEntry {
	entries := make([]apis.TypeEntry, 0, t.Count())
	t.m.Range(func(key, value any) bool {
		entries = append(entries, apis.TypeEntry{
			Identifier:  key.(string),
			Constructor: value.(apis.Constructor),
		})
		return true
	})
	return entries
}

// Count returns the number of registered entries.
func (t *table) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}

// Reset clears all registered entries.
func (t *table) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.m.Range(func(key, _ any) bool {
		t.m.Delete(key)
		return true
	})
	t.count = 0
}

// RegisterType registers ctor in tbl under the Go name of T, so that a factory
// named after T resolves to it. T must be a named type (pointers are unwrapped).
func RegisterType[T any](tbl apis.TypeTable, ctor func(args ...any) (T, error)) error {
	id := strategy.TypeOf(reflect.TypeFor[T]())
	if id == "" {
		return ferrors.ErrEmptyName
	}
	if ctor == nil {
		return ferrors.ErrNilConstructor
	}
	return tbl.Register(id, Func(ctor))
}

// MustRegisterType panics on registration error. Useful from init() blocks.
func MustRegisterType[T any](tbl apis.TypeTable, ctor func(args ...any) (T, error)) {
	if err := RegisterType(tbl, ctor); err != nil {
		panic(err)
	}
}
