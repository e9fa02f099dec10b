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

// TypeTable maps type identifiers to constructors. It replaces implicit
// lookup in a global type namespace with explicit registration.
type TypeTable interface {
	// Register associates identifier with ctor. Identifiers are unique.
	Register(identifier string, ctor Constructor) error
	// Lookup returns the constructor registered under identifier.
	Lookup(identifier string) (Constructor, bool)
	// Entries returns a snapshot for diagnostics (order is unspecified).
	Entries() []TypeEntry
	// Count returns the number of registered entries.
	Count() int
	// Reset clears all registered entries.
	Reset()
}

// TypeEntry is a single (identifier, constructor) association.
type TypeEntry struct {
	Identifier  string
	Constructor Constructor
}

// Resolver answers which constructor builds a type identifier.
type Resolver interface {
	// Resolve returns the constructor for identifier, or false if none is known.
	Resolve(identifier string) (Constructor, bool)
}
