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

// Package selector implements apis.Selector, the transient view used by
// Registry.Traits to build an object and apply a subset of declared traits.
//
// Selection is a filter, not a requirement: requested names that were never
// declared are ignored unless the registry runs with Config.StrictTraits.
// Application order is the registry's declaration order intersected with the
// requested set.
package selector
