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

// Naming selects the strategy that turns a factory name into the identifier
// of its target type.
type Naming int

const (
	// NamingCamel upper-cases the first letter of every whitespace, underscore
	// or hyphen delimited segment and joins them: "admin_user" -> "AdminUser".
	NamingCamel Naming = iota
	// NamingCapitalize upper-cases the first letter and lower-cases the rest:
	// "admin_user" -> "Admin_user".
	NamingCapitalize
)

// String returns the configuration spelling of n.
func (n Naming) String() string {
	switch n {
	case NamingCamel:
		return "camel"
	case NamingCapitalize:
		return "capitalize"
	default:
		return "unknown"
	}
}

// Config carries read-only knobs that influence declaration and build.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// FoldCase makes registry keys case-insensitive ("Foo" and "foo" are the
	// same factory). Surrounding whitespace is always trimmed.
	FoldCase bool

	// StrictTraits makes a selector fail with a key-not-found error when a
	// requested trait was never declared. When false unknown names are ignored.
	StrictTraits bool

	// Naming selects how factory names map to type identifiers.
	Naming Naming
}
