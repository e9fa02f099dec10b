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

// Package registry implements apis.Registry: the per-host store of factory
// and trait declarations.
//
// Both mappings are keyed by the canonical form of the declared name and keep
// declaration order. Redeclaring a name replaces the previous entry in place
// (last write wins, original position kept) without error.
//
//	reg := registry.New(config.DefaultConfig(), resolver.New(tbl))
//	_, _ = reg.DeclareFactory("foo", apis.Options{"color": "red"}, nil)
//	_ = reg.DeclareTrait("shiny", func(obj any) error { obj.(*Foo).Shiny = true; return nil })
//
//	foo, err := reg.Build("foo")                    // no traits
//	foo, err = reg.Traits("shiny").Build("foo")     // with the "shiny" trait
//
// Constructors and trait callbacks are always invoked outside the registry
// lock, so they may declare or build against the same registry.
package registry
