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

// Registry stores the factories and traits declared by one host.
// Implementations keep declaration order and are safe for concurrent use.
type Registry interface {
	// DeclareFactory inserts or replaces the factory stored under name.
	DeclareFactory(name string, opts Options, customizer Customizer) (Definition, error)
	// DeclareTrait inserts or replaces the trait stored under name.
	DeclareTrait(name string, trait Trait) error
	// Build builds the named factory without applying traits.
	Build(name string, args ...any) (any, error)
	// Traits returns a selector that applies only the named traits.
	Traits(names ...string) Selector

	// LookupFactory returns the factory declared under name, if any.
	LookupFactory(name string) (Definition, bool)
	// LookupTrait returns the trait declared under name, if any.
	LookupTrait(name string) (Trait, bool)
	// FetchFactory is LookupFactory failing with a key-not-found error.
	FetchFactory(name string) (Definition, error)
	// FetchTrait is LookupTrait failing with a key-not-found error.
	FetchTrait(name string) (Trait, error)

	// Factories returns the declared factories in declaration order.
	Factories() []Definition
	// TraitEntries returns the declared traits in declaration order.
	TraitEntries() []TraitEntry

	// Key returns the canonical form of name.
	Key(name string) string
	// Config returns the current configuration.
	Config() Config
	// Configure switches the registry to cfg in place, re-keying existing
	// declarations.
	Configure(cfg Config)
	// Observer returns the observer notified about builds and traits.
	Observer() Observer
	// Reset drops every declaration.
	Reset()
}

// Selector builds through a factory and applies a subset of declared traits.
type Selector interface {
	// Build builds the named factory and applies the selected traits in
	// declaration order.
	Build(name string, args ...any) (any, error)
	// Selected returns the requested trait keys in request order, deduplicated.
	Selected() []string
}
