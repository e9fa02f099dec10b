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

package types_test

import (
	"errors"
	"runtime"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/facteur/apis"
	ferrors "dirpx.dev/facteur/errors"
	"dirpx.dev/facteur/types"
)

type Widget struct{ Label string }
type Gadget[T any] struct{ V T }

func newWidget(args ...any) (*Widget, error) {
	w := &Widget{}
	if len(args) > 0 {
		w.Label, _ = args[0].(string)
	}
	return w, nil
}

func TestRegister_AndLookup(t *testing.T) {
	tbl := types.New()

	require.NoError(t, tbl.Register("Widget", types.Func(newWidget)))

	ctor, ok := tbl.Lookup("Widget")
	require.True(t, ok)
	obj, err := ctor("blue")
	require.NoError(t, err)
	assert.Equal(t, &Widget{Label: "blue"}, obj)

	_, ok = tbl.Lookup("Gadget")
	assert.False(t, ok)
	_, ok = tbl.Lookup("")
	assert.False(t, ok)
	assert.Equal(t, 1, tbl.Count())
}

func TestRegister_Errors(t *testing.T) {
	tbl := types.New()

	assert.ErrorIs(t, tbl.Register("", types.Func(newWidget)), ferrors.ErrEmptyName)
	assert.ErrorIs(t, tbl.Register("Widget", nil), ferrors.ErrNilConstructor)

	require.NoError(t, tbl.Register("Widget", types.Func(newWidget)))
	assert.ErrorIs(t, tbl.Register("Widget", types.Func(newWidget)), ferrors.ErrConflictingType)
	assert.Equal(t, 1, tbl.Count())
}

func TestRegisterType_UsesGoTypeName(t *testing.T) {
	tbl := types.New()

	require.NoError(t, types.RegisterType(tbl, newWidget))
	require.NoError(t, types.RegisterType(tbl, types.Zero[Gadget[int]]()))

	_, ok := tbl.Lookup("Widget")
	assert.True(t, ok)
	_, ok = tbl.Lookup("Gadget")
	assert.True(t, ok)

	err := types.RegisterType(tbl, func(args ...any) ([]Widget, error) { return nil, nil })
	assert.ErrorIs(t, err, ferrors.ErrEmptyName)

	assert.Panics(t, func() { types.MustRegisterType(tbl, newWidget) })
}

func TestZero(t *testing.T) {
	ctor := types.Zero[Widget]()

	w, err := ctor()
	require.NoError(t, err)
	assert.Equal(t, &Widget{}, w)

	_, err = ctor("unexpected")
	assert.EqualError(t, err, "types_test.Widget: wrong number of arguments (given 1, expected 0)")
}

func TestNullary(t *testing.T) {
	ctor := types.Nullary(func() Widget { return Widget{Label: "fixed"} })

	w, err := ctor()
	require.NoError(t, err)
	assert.Equal(t, Widget{Label: "fixed"}, w)

	_, err = ctor(1, 2)
	assert.Error(t, err)
}

func TestFunc_PassesErrorsThrough(t *testing.T) {
	boom := errors.New("boom")
	ctor := types.Func(func(args ...any) (*Widget, error) { return nil, boom })

	_, err := ctor()
	assert.Same(t, boom, err)
}

func TestEntriesAndReset(t *testing.T) {
	tbl := types.New()
	require.NoError(t, tbl.Register("A", types.Func(newWidget)))
	require.NoError(t, tbl.Register("B", types.Func(newWidget)))

	ids := map[string]bool{}
	for _, e := range tbl.Entries() {
		ids[e.Identifier] = e.Constructor != nil
	}
	assert.Equal(t, map[string]bool{"A": true, "B": true}, ids)

	tbl.Reset()
	assert.Equal(t, 0, tbl.Count())
	assert.Empty(t, tbl.Entries())
	_, ok := tbl.Lookup("A")
	assert.False(t, ok)

	// Identifiers are free again after Reset.
	assert.NoError(t, tbl.Register("A", types.Func(newWidget)))
}

// TestConcurrentRegisterAndLookup verifies that Register/Lookup/Entries/Count
// are race-free and that exactly one registration per identifier wins.
func TestConcurrentRegisterAndLookup(t *testing.T) {
	tbl := types.New()
	const ids = 16

	workers := runtime.GOMAXPROCS(0) * 4
	wins := make([]int, ids)
	var mu sync.Mutex
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < ids; i++ {
				if err := tbl.Register("T"+strconv.Itoa(i), types.Func(newWidget)); err == nil {
					mu.Lock()
					wins[i]++
					mu.Unlock()
				}
				_, _ = tbl.Lookup("T" + strconv.Itoa(i))
				_ = tbl.Count()
				_ = tbl.Entries()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, ids, tbl.Count())
	for i, n := range wins {
		assert.Equal(t, 1, n, "identifier T%d registered %d times", i, n)
	}
}

// This ensures the interface is satisfied; not a test but a compile-time check.
var _ apis.TypeTable = types.New()
