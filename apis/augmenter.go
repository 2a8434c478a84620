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

// Augmenter is one step of the host's render pipeline: given the state set
// accumulated so far and the item being rendered, it returns the (possibly
// augmented) set. Implementations must not mutate the item and must be
// stateless across calls beyond their immutable configuration.
//
// A resolver failure inside an Augmenter propagates through the returned
// error; augmenters perform no error handling of their own at render time.
type Augmenter interface {
	// Augment returns states with any applicable entries added.
	Augment(states *StateSet, item Item) (*StateSet, error)
}
