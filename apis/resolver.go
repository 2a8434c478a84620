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

// ValueResolver answers "what value is currently stored under this
// option-key?". It is the single capability a label mapping needs from its
// host: the default implementation wraps the host's option store, and
// callers may substitute their own at construction time.
//
// ResolveValue may perform host-defined I/O; errors propagate unwrapped to
// the render path. A missing key should resolve to (nil, nil), which never
// matches any item. Implementations must be safe for concurrent reads.
type ValueResolver interface {
	// ResolveValue returns the value stored under key, or nil if absent.
	ResolveValue(key string) (any, error)
}
