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

package definition

import (
	"maps"
	"strings"
	"sync"

	"github.com/mitchellh/mapstructure"

	"dirpx.dev/facteur/apis"
	ferrors "dirpx.dev/facteur/errors"
)

// Definition is the default apis.Definition implementation.
type Definition struct {
	name       string
	key        string
	opts       apis.Options
	customizer apis.Customizer
	namer      apis.Namer
	res        apis.Resolver

	// typeName memoizes namer.TypeName(name); name never changes.
	typeOnce sync.Once
	typeName string
}

// Ensure Definition implements apis.Definition.
var _ apis.Definition = (*Definition)(nil)

// New creates a Definition. opts is copied; a nil opts yields empty Options.
func New(name, key string, opts apis.Options, customizer apis.Customizer, namer apis.Namer, res apis.Resolver) *Definition {
	cp := make(apis.Options, len(opts))
	maps.Copy(cp, opts)
	return &Definition{
		name:       name,
		key:        key,
		opts:       cp,
		customizer: customizer,
		namer:      namer,
		res:        res,
	}
}

// Name returns the name as declared.
func (d *Definition) Name() string { return d.name }

// Key returns the canonical registry key.
func (d *Definition) Key() string { return d.key }

// Options returns the options captured at declaration time. Callers must not
// mutate the returned map.
func (d *Definition) Options() apis.Options { return d.opts }

// Customizer returns the customizer captured at declaration time, or nil.
func (d *Definition) Customizer() apis.Customizer { return d.customizer }

// TypeName returns the identifier of the target type, derived from the
// trimmed name.
func (d *Definition) TypeName() string {
	d.typeOnce.Do(func() {
		d.typeName = d.namer.TypeName(strings.TrimSpace(d.name))
	})
	return d.typeName
}

// Build resolves the target type and invokes its constructor with args.
// Constructor errors are returned as-is.
func (d *Definition) Build(args ...any) (any, error) {
	id := d.TypeName()
	if d.res == nil {
		return nil, ferrors.NewTypeResolutionError(d.name, id)
	}
	ctor, ok := d.res.Resolve(id)
	if !ok {
		return nil, ferrors.NewTypeResolutionError(d.name, id)
	}
	return ctor(args...)
}

// DecodeOptions fills out the provided struct using json tags.
func (d *Definition) DecodeOptions(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: "json", Result: out})
	if err != nil {
		return err
	}
	return dec.Decode(map[string]any(d.opts))
}
