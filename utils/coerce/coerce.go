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

package coerce

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Int64 coerces v to an int64 identifier, reporting whether the coercion
// succeeded.
//
// Coercion policy:
//   - nil -> failure.
//   - signed/unsigned integer kinds (including named types) pass through;
//     unsigned values above math.MaxInt64 fail.
//   - float kinds truncate toward zero; NaN/Inf fail.
//   - bool maps to 0/1.
//   - string kinds parse as decimal integers, then as decimal floats
//     (truncated); surrounding whitespace is tolerated.
//   - everything else fails.
//
// Option stores frequently hold identifiers as strings or floats (decoded
// YAML/JSON scalars), so the resolver compares through this helper rather
// than through type assertions.
func Int64(v any) (int64, bool) {
	if v == nil {
		return 0, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true

	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return int64(f), true

	case reflect.Bool:
		if rv.Bool() {
			return 1, true
		}
		return 0, true

	case reflect.String:
		s := strings.TrimSpace(rv.String())
		if s == "" {
			return 0, false
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return int64(f), true
		}
		return 0, false

	default:
		return 0, false
	}
}
