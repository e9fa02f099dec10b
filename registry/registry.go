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

package registry

import (
	"strings"
	"sync"
	"time"

	"dirpx.dev/facteur/apis"
	"dirpx.dev/facteur/definition"
	ferrors "dirpx.dev/facteur/errors"
	"dirpx.dev/facteur/logger"
	"dirpx.dev/facteur/selector"
	"dirpx.dev/facteur/strategy"
)

// Option modifies a registry during construction.
type Option func(*registry)

// WithLogger sets the logger used for declaration events.
func WithLogger(l logger.Logger) Option {
	return func(r *registry) {
		if l != nil {
			r.log = l
		}
	}
}

// WithObserver sets the observer notified about builds and trait applications.
func WithObserver(o apis.Observer) Option {
	return func(r *registry) {
		if o != nil {
			r.obs = o
		}
	}
}

// WithNamer overrides the naming strategy selected by cfg.Naming. The
// override survives Configure.
func WithNamer(n apis.Namer) Option {
	return func(r *registry) {
		if n != nil {
			r.namer = n
			r.fixedNamer = true
		}
	}
}

// New constructs an empty Registry resolving target types through res.
func New(cfg apis.Config, res apis.Resolver, opts ...Option) apis.Registry {
	r := &registry{
		cfg:       cfg,
		res:       res,
		namer:     strategy.ForConfig(cfg),
		log:       logger.NopLogger{},
		obs:       apis.NopObserver{},
		factories: make(map[string]apis.Definition),
		traits:    make(map[string]apis.Trait),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// registry is the default apis.Registry implementation.
type registry struct {
	res apis.Resolver
	log logger.Logger
	obs apis.Observer

	// mu guards the configuration, the maps and their order slices.
	mu         sync.RWMutex
	cfg        apis.Config
	namer      apis.Namer
	fixedNamer bool
	factories  map[string]apis.Definition
	forder     []string
	traits     map[string]apis.Trait
	torder     []string
}

// Ensure registry implements apis.Registry.
var _ apis.Registry = (*registry)(nil)

// Key trims name and folds its case when cfg.FoldCase is set.
func (r *registry) Key(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.key(name)
}

// key is Key for callers holding mu.
func (r *registry) key(name string) string {
	k := strings.TrimSpace(name)
	if r.cfg.FoldCase {
		k = strings.ToLower(k)
	}
	return k
}

// DeclareFactory inserts or replaces the factory stored under name.
// The definition keeps name as given; only its key is trimmed.
func (r *registry) DeclareFactory(name string, opts apis.Options, customizer apis.Customizer) (apis.Definition, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ferrors.ErrEmptyName
	}

	r.mu.Lock()
	key := r.key(name)
	def := definition.New(name, key, opts, customizer, r.namer, r.res)
	replaced := r.putFactory(def)
	r.mu.Unlock()

	r.log.Debugw("factory declared", map[string]any{
		"factory":  key,
		"type":     def.TypeName(),
		"replaced": replaced,
	})
	return def, nil
}

// DeclareTrait inserts or replaces the trait stored under name.
func (r *registry) DeclareTrait(name string, trait apis.Trait) error {
	if strings.TrimSpace(name) == "" {
		return ferrors.ErrEmptyName
	}
	if trait == nil {
		return ferrors.ErrNilTrait
	}

	r.mu.Lock()
	key := r.key(name)
	replaced := r.putTrait(key, trait)
	r.mu.Unlock()

	r.log.Debugw("trait declared", map[string]any{
		"trait":    key,
		"replaced": replaced,
	})
	return nil
}

// putFactory stores def, keeping the position of a replaced key. Callers hold mu.
func (r *registry) putFactory(def apis.Definition) bool {
	_, replaced := r.factories[def.Key()]
	if !replaced {
		r.forder = append(r.forder, def.Key())
	}
	r.factories[def.Key()] = def
	return replaced
}

// putTrait stores trait under key, keeping the position of a replaced key.
// Callers hold mu.
func (r *registry) putTrait(key string, trait apis.Trait) bool {
	_, replaced := r.traits[key]
	if !replaced {
		r.torder = append(r.torder, key)
	}
	r.traits[key] = trait
	return replaced
}

// Configure switches the registry to cfg in place. Declarations are re-keyed
// in declaration order; names that now fold together keep the first position
// and the last declaration.
func (r *registry) Configure(cfg apis.Config) {
	r.mu.Lock()
	factories, forder := r.factories, r.forder
	traits, torder := r.traits, r.torder

	r.cfg = cfg
	if !r.fixedNamer {
		r.namer = strategy.ForConfig(cfg)
	}
	r.factories, r.forder = make(map[string]apis.Definition, len(forder)), nil
	r.traits, r.torder = make(map[string]apis.Trait, len(torder)), nil

	for _, k := range forder {
		d := factories[k]
		r.putFactory(definition.New(d.Name(), r.key(d.Name()), d.Options(), d.Customizer(), r.namer, r.res))
	}
	for _, k := range torder {
		r.putTrait(r.key(k), traits[k])
	}
	nf, nt := len(r.forder), len(r.torder)
	r.mu.Unlock()

	r.log.Debugw("registry reconfigured", map[string]any{
		"fold_case":     cfg.FoldCase,
		"strict_traits": cfg.StrictTraits,
		"naming":        cfg.Naming.String(),
		"factories":     nf,
		"traits":        nt,
	})
}

// Build builds the named factory without applying traits. A failed build
// returns a nil object.
func (r *registry) Build(name string, args ...any) (any, error) {
	def, err := r.FetchFactory(name)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	obj, err := def.Build(args...)
	r.obs.ObserveBuild(def.Key(), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return obj, nil
}

// Traits returns a selector applying only the named traits.
func (r *registry) Traits(names ...string) apis.Selector {
	return selector.New(r, names...)
}

// LookupFactory returns the factory declared under name, if any.
func (r *registry) LookupFactory(name string) (apis.Definition, bool) {
	r.mu.RLock()
	def, ok := r.factories[r.key(name)]
	r.mu.RUnlock()
	return def, ok
}

// LookupTrait returns the trait declared under name, if any.
func (r *registry) LookupTrait(name string) (apis.Trait, bool) {
	r.mu.RLock()
	trait, ok := r.traits[r.key(name)]
	r.mu.RUnlock()
	return trait, ok
}

// FetchFactory returns the factory declared under name or a KeyNotFoundError.
func (r *registry) FetchFactory(name string) (apis.Definition, error) {
	def, ok := r.LookupFactory(name)
	if !ok {
		return nil, ferrors.NewKeyNotFoundError(ferrors.KindFactory, r.Key(name))
	}
	return def, nil
}

// FetchTrait returns the trait declared under name or a KeyNotFoundError.
func (r *registry) FetchTrait(name string) (apis.Trait, error) {
	trait, ok := r.LookupTrait(name)
	if !ok {
		return nil, ferrors.NewKeyNotFoundError(ferrors.KindTrait, r.Key(name))
	}
	return trait, nil
}

// Factories returns a snapshot of the declared factories in declaration order.
func (r *registry) Factories() []apis.Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]apis.Definition, 0, len(r.forder))
	for _, k := range r.forder {
		out = append(out, r.factories[k])
	}
	return out
}

// TraitEntries returns a snapshot of the declared traits in declaration order.
func (r *registry) TraitEntries() []apis.TraitEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]apis.TraitEntry, 0, len(r.torder))
	for _, k := range r.torder {
		out = append(out, apis.TraitEntry{Key: k, Trait: r.traits[k]})
	}
	return out
}

// Config returns the current configuration.
func (r *registry) Config() apis.Config {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cfg
}

// Observer returns the observer notified about builds and traits.
func (r *registry) Observer() apis.Observer { return r.obs }

// Reset drops every declaration.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories = make(map[string]apis.Definition)
	r.forder = nil
	r.traits = make(map[string]apis.Trait)
	r.torder = nil
}
