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

package manifest

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"dirpx.dev/facteur/apis"
	"dirpx.dev/facteur/config"
	ferrors "dirpx.dev/facteur/errors"
)

// EnvPrefix prefixes environment overrides.
const EnvPrefix = "FACTEUR_"

// ErrUnsupportedFormat is returned for files that are neither YAML nor JSON.
var ErrUnsupportedFormat = errors.New("manifest: unsupported format")

// Manifest is the file representation of a registry.
type Manifest struct {
	Config    Settings  `json:"config"`
	Factories []Factory `json:"factories"`
}

// Settings mirrors apis.Config with a textual naming strategy.
type Settings struct {
	FoldCase     bool   `json:"fold_case"`
	StrictTraits bool   `json:"strict_traits"`
	Naming       string `json:"naming"`
}

// Factory is a single factory declaration.
type Factory struct {
	Name    string         `json:"name"`
	Options map[string]any `json:"options"`
}

// Load reads the manifest at path, applies environment overrides and
// validates the result.
func Load(path string) (*Manifest, error) {
	k := koanf.New(".")

	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("manifest: load %s: %w", path, err)
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("manifest: env overrides: %w", err)
	}

	var m Manifest
	if err := k.UnmarshalWithConf("", &m, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("manifest: decode %s: %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the naming strategy and that every factory is named.
func (m *Manifest) Validate() error {
	if _, err := config.ParseNaming(m.Config.Naming); err != nil {
		return fmt.Errorf("manifest: %w", err)
	}
	for i, f := range m.Factories {
		if strings.TrimSpace(f.Name) == "" {
			return fmt.Errorf("manifest: factory #%d: %w", i, ferrors.ErrEmptyName)
		}
	}
	return nil
}

// ApisConfig converts the settings section to an apis.Config.
func (m *Manifest) ApisConfig() (apis.Config, error) {
	naming, err := config.ParseNaming(m.Config.Naming)
	if err != nil {
		return apis.Config{}, fmt.Errorf("manifest: %w", err)
	}
	return config.NewConfig(
		config.WithFoldCase(m.Config.FoldCase),
		config.WithStrictTraits(m.Config.StrictTraits),
		config.WithNaming(naming),
	), nil
}

// Apply declares every factory of m on reg, in file order. It stops at the
// first failing declaration; factories declared before it stay declared.
func (m *Manifest) Apply(reg apis.Registry) error {
	for _, f := range m.Factories {
		if _, err := reg.DeclareFactory(f.Name, f.Options, nil); err != nil {
			return fmt.Errorf("manifest: factory %q: %w", f.Name, err)
		}
	}
	return nil
}
