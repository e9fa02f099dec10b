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

package apis

import "time"

// Observer is notified about builds and trait applications. Implementations
// must be safe for concurrent use and must not block.
type Observer interface {
	// ObserveBuild reports one factory build and its outcome.
	ObserveBuild(factory string, elapsed time.Duration, err error)
	// ObserveTrait reports one trait application and its outcome.
	ObserveTrait(trait string, err error)
}

// NopObserver discards every observation.
type NopObserver struct{}

func (NopObserver) ObserveBuild(string, time.Duration, error) {}
func (NopObserver) ObserveTrait(string, error)                {}
