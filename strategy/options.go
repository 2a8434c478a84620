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
	"cmsfx.dev/psfx/options"
)

// NewOptionsResolver creates the default apis.ValueResolver: a thin adapter
// over the host's option lookup. A missing key resolves to nil, which never
// matches any item identifier.
func NewOptionsResolver(src options.Getter) apis.ValueResolver {
	return &optionsResolver{src: src}
}

// optionsResolver wraps an options.Getter.
type optionsResolver struct {
	src options.Getter
}

// Ensure optionsResolver implements apis.ValueResolver.
var _ apis.ValueResolver = (*optionsResolver)(nil)

// ResolveValue looks up key in the host option store.
func (r *optionsResolver) ResolveValue(key string) (any, error) {
	if r.src == nil {
		return nil, nil
	}
	v, ok := r.src.Option(key)
	if !ok {
		return nil, nil
	}
	return v, nil
}
