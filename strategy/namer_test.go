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

package strategy_test

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"dirpx.dev/facteur/apis"
	"dirpx.dev/facteur/strategy"
)

func TestCamelStrategy_TypeName(t *testing.T) {
	s := strategy.NewCamelStrategy()

	cases := []struct {
		in   string
		want string
	}{
		{"foo", "Foo"},
		{"Foo", "Foo"},
		{"admin_user", "AdminUser"},
		{"admin user", "AdminUser"},
		{"admin-user", "AdminUser"},
		{"fooBar", "FooBar"},
		{"__foo__bar", "FooBar"},
		{"élan", "Élan"},
		{"", ""},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, s.TypeName(tc.in))
		})
	}
}

func TestCapitalizeStrategy_TypeName(t *testing.T) {
	s := strategy.NewCapitalizeStrategy()

	cases := []struct {
		in   string
		want string
	}{
		{"foo", "Foo"},
		{"FOO", "Foo"},
		{"admin_user", "Admin_user"},
		{"fooBar", "Foobar"},
		{"", ""},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, s.TypeName(tc.in))
		})
	}
}

func TestForConfig(t *testing.T) {
	camel := strategy.ForConfig(apis.Config{Naming: apis.NamingCamel})
	assert.Equal(t, "AdminUser", camel.TypeName("admin_user"))

	capitalize := strategy.ForConfig(apis.Config{Naming: apis.NamingCapitalize})
	assert.Equal(t, "Admin_user", capitalize.TypeName("admin_user"))

	fallback := strategy.ForConfig(apis.Config{Naming: apis.Naming(42)})
	assert.Equal(t, "AdminUser", fallback.TypeName("admin_user"))
}

func TestCamelStrategy_Properties(t *testing.T) {
	s := strategy.NewCamelStrategy()

	rapid.Check(t, func(rt *rapid.T) {
		name := rapid.StringMatching(`[a-z][a-z0-9]{0,6}([_ -][a-z][a-z0-9]{0,6}){0,3}`).Draw(rt, "name")
		got := s.TypeName(name)

		if strings.ContainsAny(got, "_- ") {
			rt.Fatalf("TypeName(%q) = %q still contains delimiters", name, got)
		}
		if got == "" || !unicode.IsUpper([]rune(got)[0]) {
			rt.Fatalf("TypeName(%q) = %q does not start upper-case", name, got)
		}
		if again := s.TypeName(got); again != got {
			rt.Fatalf("TypeName not idempotent: %q -> %q -> %q", name, got, again)
		}
	})
}
