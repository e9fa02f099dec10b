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

package facteur

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"dirpx.dev/facteur/apis"
	"dirpx.dev/facteur/builder"
	"dirpx.dev/facteur/config"
	ferrors "dirpx.dev/facteur/errors"
	"dirpx.dev/facteur/logger"
	"dirpx.dev/facteur/types"
	uref "dirpx.dev/facteur/utils/reflect"
)

// init initializes the global state.
func init() {
	tbl := types.New()
	st.Store(newState(config.DefaultConfig(), tbl, logger.NopLogger{}, apis.NopObserver{}))
}

// ErrNilRegistry is returned when a builder returns a nil registry.
var ErrNilRegistry = errors.New("facteur: builder returned nil registry")

// For returns the registry bound to the consumer type T, creating it on first
// use. T and *T share one registry; distinct types never share.
func For[T any]() apis.Registry {
	return ForType(reflect.TypeFor[T]())
}

// ForType is For for a reflect.Type.
func ForType(t reflect.Type) apis.Registry {
	key := hostKey(t)
	if v, ok := hosts.Load(key); ok {
		return v.(apis.Registry)
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if v, ok := hosts.Load(key); ok {
		return v.(apis.Registry)
	}
	s := st.Load()
	reg := s.bld.BuildRegistry(s.cfg, s.res, nil)
	if reg == nil {
		panic(ErrNilRegistry)
	}
	hosts.Store(key, reg)
	return reg
}

// hostKey normalizes t to its nearest named type; unnamed types are used as-is.
func hostKey(t reflect.Type) reflect.Type {
	if n, err := uref.Normalize(t, 0); err == nil {
		return n
	}
	return t
}

// Types returns the global type table consulted by every host registry.
func Types() apis.TypeTable {
	return st.Load().types
}

// RegisterType registers ctor in the global type table under the Go name of T.
func RegisterType[T any](ctor func(args ...any) (T, error)) error {
	return types.RegisterType(Types(), ctor)
}

// RegisterConstructor registers ctor in the global type table under identifier.
func RegisterConstructor(identifier string, ctor apis.Constructor) error {
	return Types().Register(identifier, ctor)
}

// As converts the result of a build to T. When the build failed after the
// object was created (a failing trait), the converted object is returned
// together with the error.
func As[T any](obj any, err error) (T, error) {
	var zero T
	if obj == nil {
		return zero, err
	}
	v, ok := obj.(T)
	if !ok {
		if err != nil {
			return zero, err
		}
		return zero, ferrors.NewTypeMismatchError(reflect.TypeFor[T]().String(), reflect.TypeOf(obj).String())
	}
	return v, err
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global configuration and reconfigures every host
// registry in place. Registries obtained earlier from For stay bound to
// their host type.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(newState(cfg, old.types, old.log, old.obs))
	hosts.Range(func(_, v any) bool {
		v.(apis.Registry).Configure(cfg)
		return true
	})
}

// SetLogger sets the logger of every host registry, existing ones included.
func SetLogger(l logger.Logger) {
	if l == nil {
		l = logger.NopLogger{}
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(newState(old.cfg, old.types, l, old.obs))
}

// SetObserver sets the observer of every host registry, existing ones
// included.
func SetObserver(o apis.Observer) {
	if o == nil {
		o = apis.NopObserver{}
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(newState(old.cfg, old.types, old.log, o))
}

// Reset drops every host registry and type registration and restores the
// default configuration, logger and observer. Mainly used by tests.
func Reset() {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	old.types.Reset()
	hosts.Range(func(k, _ any) bool {
		hosts.Delete(k)
		return true
	})
	st.Store(newState(config.DefaultConfig(), old.types, logger.NopLogger{}, apis.NopObserver{}))
}

// newState builds a snapshot. Host registries get forwarders to the logger
// and observer of whichever snapshot is current when they log or observe.
func newState(cfg apis.Config, tbl apis.TypeTable, l logger.Logger, o apis.Observer) *state {
	bld := builder.New(builder.WithLogger(stateLogger{}), builder.WithObserver(stateObserver{}))
	return &state{
		cfg:   cfg,
		types: tbl,
		res:   bld.BuildResolver(cfg, tbl),
		bld:   bld,
		log:   l,
		obs:   o,
	}
}

// stateLogger forwards to the logger of the current snapshot.
type stateLogger struct{}

func (stateLogger) Debugf(format string, args ...any) { st.Load().log.Debugf(format, args...) }
func (stateLogger) Debugw(msg string, fields map[string]any) {
	st.Load().log.Debugw(msg, fields)
}
func (stateLogger) Infof(format string, args ...any) { st.Load().log.Infof(format, args...) }
func (stateLogger) Warnf(format string, args ...any) { st.Load().log.Warnf(format, args...) }
func (stateLogger) Errorf(format string, args ...any) { st.Load().log.Errorf(format, args...) }

// stateObserver forwards to the observer of the current snapshot.
type stateObserver struct{}

func (stateObserver) ObserveBuild(factory string, elapsed time.Duration, err error) {
	st.Load().obs.ObserveBuild(factory, elapsed, err)
}

func (stateObserver) ObserveTrait(trait string, err error) {
	st.Load().obs.ObserveTrait(trait, err)
}

// buildMu serializes writers (reconfigurations and registry creation) so we
// never publish partially-built snapshots.
var buildMu sync.Mutex

// st is the global state.
var st atomic.Pointer[state]

// hosts maps normalized consumer types to their registries.
var hosts sync.Map // map[reflect.Type]apis.Registry

// state is the global state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// types is the global type table. It survives every rebuild.
	types apis.TypeTable
	// res resolves identifiers through types.
	res apis.Resolver
	// bld builds host registries.
	bld apis.Builder
	// log is handed to host registries.
	log logger.Logger
	// obs is handed to host registries.
	obs apis.Observer
}

// MustRegisterType panics on registration error. Useful from init() blocks.
func MustRegisterType[T any](ctor func(args ...any) (T, error)) {
	if err := RegisterType(ctor); err != nil {
		panic(err)
	}
}
