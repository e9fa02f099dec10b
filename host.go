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

import "dirpx.dev/facteur/apis"

// Host gives the embedding type T factory and trait declaration and build
// capability through the registry returned by For[T]:
//
//	type Users struct{ facteur.Host[Users] }
//
//	var users Users
//	_, _ = users.Factory("admin_user", apis.Options{"role": "admin"}, nil)
//	_ = users.Trait("confirmed", confirm)
//	u, err := users.Traits("confirmed").Build("admin_user", "alice")
//
// Host is zero-sized and carries no state; every value of T shares the one
// registry of T.
type Host[T any] struct{}

// Registry returns the registry bound to T.
func (Host[T]) Registry() apis.Registry { return For[T]() }

// Factory declares a factory on T's registry.
func (Host[T]) Factory(name string, opts apis.Options, customizer apis.Customizer) (apis.Definition, error) {
	return For[T]().DeclareFactory(name, opts, customizer)
}

// Trait declares a trait on T's registry.
func (Host[T]) Trait(name string, trait apis.Trait) error {
	return For[T]().DeclareTrait(name, trait)
}

// Build builds the named factory without traits.
func (Host[T]) Build(name string, args ...any) (any, error) {
	return For[T]().Build(name, args...)
}

// Traits returns a selector applying only the named traits.
func (Host[T]) Traits(names ...string) apis.Selector {
	return For[T]().Traits(names...)
}

// FactoriesDictionary returns the declared factories keyed by canonical name.
func (Host[T]) FactoriesDictionary() map[string]apis.Definition {
	defs := For[T]().Factories()
	out := make(map[string]apis.Definition, len(defs))
	for _, d := range defs {
		out[d.Key()] = d
	}
	return out
}

// TraitsDictionary returns the declared traits keyed by canonical name.
func (Host[T]) TraitsDictionary() map[string]apis.Trait {
	entries := For[T]().TraitEntries()
	out := make(map[string]apis.Trait, len(entries))
	for _, e := range entries {
		out[e.Key] = e.Trait
	}
	return out
}
