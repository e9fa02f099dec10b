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

// Options is the open key/value configuration captured with a factory
// declaration. The build path never reads it.
type Options map[string]any

// Constructor builds one instance of a target type from positional arguments.
type Constructor func(args ...any) (any, error)

// Customizer is the optional callback captured with a factory declaration.
// It is stored for consumers and never invoked by the build path.
type Customizer func(args ...any)

// Trait mutates or annotates an already built object. A non-nil error aborts
// the application of the remaining traits.
type Trait func(obj any) error

// Definition is an immutable factory declaration.
type Definition interface {
	// Name returns the name as declared.
	Name() string
	// Key returns the canonical registry key of the factory.
	Key() string
	// Options returns the options captured at declaration time.
	Options() Options
	// Customizer returns the customizer captured at declaration time, or nil.
	Customizer() Customizer
	// TypeName returns the identifier of the target type.
	TypeName() string
	// Build resolves the target type and invokes its constructor with args.
	Build(args ...any) (any, error)
	// DecodeOptions decodes Options into out (a pointer to a struct).
	DecodeOptions(out any) error
}

// TraitEntry is a single (key, trait) association in a Registry snapshot.
type TraitEntry struct {
	// Key is the canonical trait name.
	Key string
	// Trait is the declared callback.
	Trait Trait
}
