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

package selector

import (
	"time"

	"dirpx.dev/facteur/apis"
	ferrors "dirpx.dev/facteur/errors"
)

// New creates an apis.Selector over reg applying only the named traits.
// Names are canonicalized with reg.Key; duplicates are harmless.
func New(reg apis.Registry, names ...string) apis.Selector {
	s := &selector{
		reg:  reg,
		keys: make([]string, 0, len(names)),
		set:  make(map[string]struct{}, len(names)),
	}
	for _, n := range names {
		k := reg.Key(n)
		if _, dup := s.set[k]; dup {
			continue
		}
		s.set[k] = struct{}{}
		s.keys = append(s.keys, k)
	}
	return s
}

// selector is immutable after New and may be reused across builds.
type selector struct {
	reg  apis.Registry
	keys []string
	set  map[string]struct{}
}

// Ensure selector implements apis.Selector.
var _ apis.Selector = (*selector)(nil)

// Selected returns the requested trait keys in request order.
func (s *selector) Selected() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Build builds the named factory, then applies the selected traits in the
// order they were declared on the registry, not the order they were
// requested in. The first failing trait aborts the remaining ones; its error
// is returned unchanged together with the object as mutated so far.
func (s *selector) Build(name string, args ...any) (any, error) {
	def, err := s.reg.FetchFactory(name)
	if err != nil {
		return nil, err
	}

	if s.reg.Config().StrictTraits {
		for _, k := range s.keys {
			if _, ok := s.reg.LookupTrait(k); !ok {
				return nil, ferrors.NewKeyNotFoundError(ferrors.KindTrait, k)
			}
		}
	}

	obs := s.reg.Observer()
	start := time.Now()
	obj, err := def.Build(args...)
	obs.ObserveBuild(def.Key(), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	for _, e := range s.reg.TraitEntries() {
		if _, ok := s.set[e.Key]; !ok {
			continue
		}
		err := e.Trait(obj)
		obs.ObserveTrait(e.Key, err)
		if err != nil {
			return obj, err
		}
	}
	return obj, nil
}
