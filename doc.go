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

// Package facteur provides a declarative object-construction registry.
//
// A host type declares named factories (recipes for building objects of a
// target type) and named traits (post-construction mutation hooks), then
// builds objects on demand by name, optionally applying a subset of traits.
//
// # Design
//
// facteur is split into small layers, each behind an interface in apis:
//
//   - TypeTable: an explicit mapping from type identifiers ("Widget") to
//     constructors. It replaces implicit lookup in a global type namespace.
//     The package keeps one global table (Types, RegisterType).
//
//   - Namer: the strategy turning a factory name into a type identifier.
//     The default camel strategy maps "admin_user" to "AdminUser".
//
//   - Definition: the immutable record of one factory declaration (name,
//     options, customizer). Options and customizer are stored for consumers
//     and never applied by the build path.
//
//   - Registry: the per-host store of factory and trait declarations, in
//     declaration order.
//
//   - Selector: a transient view over a Registry that builds a factory and
//     applies only the requested traits, in declaration order.
//
//   - Builder: composes Resolver and Registry from a Config and migrates
//     declarations when the configuration changes.
//
// # Host binding
//
// Any type opts in by composition, not inheritance. Either embed Host:
//
//	type Users struct{ facteur.Host[Users] }
//
//	func init() {
//	    facteur.MustRegisterType(func(args ...any) (*AdminUser, error) {
//	        return &AdminUser{Name: args[0].(string)}, nil
//	    })
//
//	    var u Users
//	    _, _ = u.Factory("admin_user", nil, nil)
//	    _ = u.Trait("confirmed", func(obj any) error {
//	        obj.(*AdminUser).Confirmed = true
//	        return nil
//	    })
//	}
//
//	admin, err := facteur.As[*AdminUser](Users{}.Traits("confirmed").Build("admin_user", "alice"))
//
// or use the registry directly through For[Users](). Every consumer type
// gets its own registry, created lazily and shared by all values of the type.
//
// # Errors
//
// Unknown factory names fail with *errors.KeyNotFoundError, identifiers
// missing from the type table with *errors.TypeResolutionError. Errors
// returned by constructors and traits are passed through unchanged. A failing
// trait aborts the remaining traits without rolling back earlier ones.
//
// # Concurrency model
//
// Registries returned by For stay bound to their host type for the life of
// the process (until Reset); SetConfig reconfigures them in place and
// SetLogger/SetObserver take effect on them immediately.
//
// Reads of the global state are lock-free; writers (SetConfig, SetLogger,
// SetObserver, Reset and first use of a host type) serialize on a build mutex
// and publish a new snapshot atomically. Registries and type tables are safe
// for concurrent use. Constructors and traits run without any facteur lock
// held.
package facteur
