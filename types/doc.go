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

// Package types holds the type table: an explicit mapping from type
// identifiers to constructors.
//
// A factory named "widget" builds whatever constructor is registered as
// "Widget". Registration happens once, usually from init():
//
//	tbl := types.New()
//	types.MustRegisterType(tbl, types.Zero[Widget]())
//	types.MustRegisterType(tbl, func(args ...any) (*Gadget, error) {
//	    return NewGadget(args...)
//	})
package types
