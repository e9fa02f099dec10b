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

package config

import (
	"fmt"
	"strings"

	"dirpx.dev/facteur/apis"
)

const (
	// DefaultFoldCase represents the default for FoldCase.
	// Keys are case-sensitive unless requested otherwise.
	DefaultFoldCase = false
	// DefaultStrictTraits represents the default for StrictTraits.
	// When false, selecting an undeclared trait is a no-op.
	DefaultStrictTraits = false
	// DefaultNaming represents the default for Naming. Camel upper-cases every
	// segment and drops the delimiters ("admin_user" -> "AdminUser") to match
	// Go type names; it departs from single-word capitalization
	// ("Admin_user"), which stays available as apis.NamingCapitalize.
	DefaultNaming = apis.NamingCamel
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		FoldCase:     DefaultFoldCase,
		StrictTraits: DefaultStrictTraits,
		Naming:       DefaultNaming,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithFoldCase sets the FoldCase option.
func WithFoldCase(fold bool) Option {
	return func(c *apis.Config) {
		c.FoldCase = fold
	}
}

// WithStrictTraits sets the StrictTraits option.
func WithStrictTraits(strict bool) Option {
	return func(c *apis.Config) {
		c.StrictTraits = strict
	}
}

// WithNaming sets the Naming option.
// Unknown values reset to the default.
func WithNaming(n apis.Naming) Option {
	return func(c *apis.Config) {
		switch n {
		case apis.NamingCamel, apis.NamingCapitalize:
			c.Naming = n
		default:
			c.Naming = DefaultNaming
		}
	}
}

// ParseNaming parses the configuration spelling of a naming strategy.
// The empty string selects the default.
func ParseNaming(s string) (apis.Naming, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultNaming, nil
	case "camel":
		return apis.NamingCamel, nil
	case "capitalize":
		return apis.NamingCapitalize, nil
	default:
		return DefaultNaming, fmt.Errorf("unknown naming strategy %q", s)
	}
}
