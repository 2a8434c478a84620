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

// Label is a single (option-key, display text) pair in a label mapping.
type Label struct {
	// Key identifies one configuration slot in the host's option store.
	Key string
	// Text is the human-readable label shown next to a matching item.
	Text string
}

// Config carries a validated label mapping and the resolver used to
// answer "what value is currently stored under this option-key?".
// It is passed by value and must be treated as immutable after
// construction; the Labels slice must not be mutated by implementations.
type Config struct {
	// Labels is the validated mapping, in caller-supplied order.
	// Every entry has a non-empty Key and Text; keys are unique.
	Labels []Label

	// Resolver answers option-key lookups. Never nil in a validated Config.
	Resolver ValueResolver
}
