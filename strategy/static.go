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

package strategy

import (
	"cmsfx.dev/psfx/apis"
)

// NewStaticResolver creates an apis.ValueResolver over a fixed key -> value
// map. Useful for tests and for hosts whose option values are known up
// front. The map is copied; later mutation of the argument has no effect.
func NewStaticResolver(values map[string]any) apis.ValueResolver {
	m := make(map[string]any, len(values))
	for k, v := range values {
		m[k] = v
	}
	return staticResolver(m)
}

// staticResolver is an immutable map-backed resolver.
type staticResolver map[string]any

// Ensure staticResolver implements apis.ValueResolver.
var _ apis.ValueResolver = (staticResolver)(nil)

// ResolveValue returns the fixed value for key, or nil if absent.
func (r staticResolver) ResolveValue(key string) (any, error) {
	v, ok := r[key]
	if !ok {
		return nil, nil
	}
	return v, nil
}
