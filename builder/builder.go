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

package builder

import (
	"dirpx.dev/facteur/apis"
	"dirpx.dev/facteur/logger"
	"dirpx.dev/facteur/registry"
	"dirpx.dev/facteur/resolver"
)

// Option configures the registries produced by a builder.
type Option func(*builder)

// WithLogger sets the logger handed to every built registry.
func WithLogger(l logger.Logger) Option {
	return func(b *builder) { b.log = l }
}

// WithObserver sets the observer handed to every built registry.
func WithObserver(o apis.Observer) Option {
	return func(b *builder) { b.obs = o }
}

// New creates and returns a new instance of an apis.Builder.
func New(opts ...Option) apis.Builder {
	b := &builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// builder carries the ambient dependencies of the registries it builds.
type builder struct {
	log logger.Logger
	obs apis.Observer
}

// BuildResolver builds a resolver consulting tables in order.
func (b *builder) BuildResolver(_ apis.Config, tables ...apis.TypeTable) apis.Resolver {
	return resolver.New(tables...)
}

// BuildRegistry builds and returns a new apis.Registry for cfg and res. If a
// previous registry is provided, its factories and traits are redeclared into
// the new registry in their original order. Keys are recomputed, so changing
// cfg.FoldCase may merge previously distinct names (last declaration wins).
func (b *builder) BuildRegistry(cfg apis.Config, res apis.Resolver, prev apis.Registry) apis.Registry {
	nreg := registry.New(cfg, res, registry.WithLogger(b.log), registry.WithObserver(b.obs))
	if prev != nil {
		for _, def := range prev.Factories() {
			_, _ = nreg.DeclareFactory(def.Name(), def.Options(), def.Customizer())
		}
		for _, e := range prev.TraitEntries() {
			_ = nreg.DeclareTrait(e.Key, e.Trait)
		}
	}
	return nreg
}
