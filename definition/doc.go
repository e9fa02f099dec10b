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

// Package definition implements apis.Definition, the immutable record
// created by a factory declaration.
//
// A Definition knows its declared name, the options and customizer captured
// at declaration time, and how to find and invoke the constructor of its
// target type:
//
//	def := definition.New("admin_user", "admin_user", opts, nil, namer, res)
//	def.TypeName()   // "AdminUser"
//	obj, err := def.Build("alice")
//
// Options and Customizer are stored verbatim and never applied by Build.
// They are declared-but-dormant metadata for consumers; DecodeOptions turns
// the options into a typed struct.
package definition
