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

// ResolverFunc adapts a plain function to apis.ValueResolver.
type ResolverFunc func(key string) (any, error)

// Ensure ResolverFunc implements apis.ValueResolver.
var _ apis.ValueResolver = (ResolverFunc)(nil)

// ResolveValue invokes the function.
func (f ResolverFunc) ResolveValue(key string) (any, error) { return f(key) }
