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

// Package manifest loads factory declarations and registry settings from
// YAML or JSON files. Values may be overridden from the environment with the
// FACTEUR_ prefix, using "__" as the key separator:
//
//	FACTEUR_CONFIG__FOLD_CASE=true
//	FACTEUR_CONFIG__NAMING=capitalize
//
// Traits are functions and cannot be declared from a manifest.
package manifest
