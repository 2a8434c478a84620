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

package apis

// Builder composes the render pipeline and the augmenters registered into it.
// Implementations may migrate entries from previous instances (prev), or ignore them.
type Builder interface {
	// BuildPipeline constructs a Pipeline. May migrate entries from a previous pipeline.
	BuildPipeline(prev Pipeline) Pipeline
	// BuildAugmenter constructs the label-resolution augmenter for a validated Config.
	BuildAugmenter(cfg Config) Augmenter
}
