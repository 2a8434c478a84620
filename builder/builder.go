/*
   Copyright 2026 The CMSFX Authors.

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

package builder

import (
	"cmsfx.dev/psfx/apis"
	"cmsfx.dev/psfx/registry"
	"cmsfx.dev/psfx/resolver"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildPipeline builds and returns a new apis.Pipeline. If a pre-existing
// pipeline is provided, its entries are migrated into the new pipeline at
// their registered priorities.
func (b *builder) BuildPipeline(prev apis.Pipeline) apis.Pipeline {
	np := registry.New()
	if prev != nil {
		for _, e := range prev.Entries() {
			_ = np.Register(e.Name, e.Augmenter, e.Priority)
		}
	}
	return np
}

// BuildAugmenter builds the label-resolution augmenter for a validated
// configuration.
func (b *builder) BuildAugmenter(cfg apis.Config) apis.Augmenter {
	return resolver.New(cfg)
}
