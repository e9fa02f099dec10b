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

package strategy

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"dirpx.dev/facteur/apis"
)

// ForConfig returns the apis.Namer selected by cfg.Naming.
// Unknown values fall back to the camel strategy.
func ForConfig(cfg apis.Config) apis.Namer {
	if cfg.Naming == apis.NamingCapitalize {
		return NewCapitalizeStrategy()
	}
	return NewCamelStrategy()
}

// NewCamelStrategy creates an apis.Namer that upper-cases the first letter of
// every segment and drops the delimiters: "admin_user" -> "AdminUser".
func NewCamelStrategy() apis.Namer {
	return camelStrategy{}
}

// NewCapitalizeStrategy creates an apis.Namer performing single-word
// capitalization: "admin_user" -> "Admin_user", "FOO" -> "Foo".
func NewCapitalizeStrategy() apis.Namer {
	return capitalizeStrategy{}
}

// camelStrategy splits on whitespace, '_' and '-'.
type camelStrategy struct{ reflectNamer }

// Ensure camelStrategy implements apis.Namer.
var _ apis.Namer = camelStrategy{}

// TypeName joins the segments of name with their first letter upper-cased.
func (camelStrategy) TypeName(name string) string {
	segs := strings.FieldsFunc(name, isDelimiter)
	var b strings.Builder
	b.Grow(len(name))
	for _, s := range segs {
		r, size := utf8.DecodeRuneInString(s)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(s[size:])
	}
	return b.String()
}

// capitalizeStrategy keeps delimiters and lower-cases everything but the first rune.
type capitalizeStrategy struct{ reflectNamer }

// Ensure capitalizeStrategy implements apis.Namer.
var _ apis.Namer = capitalizeStrategy{}

// TypeName upper-cases the first rune of name and lower-cases the rest.
func (capitalizeStrategy) TypeName(name string) string {
	if name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + strings.ToLower(name[size:])
}

func isDelimiter(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}
