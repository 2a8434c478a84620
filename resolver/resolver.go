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

package resolver

import (
	"fmt"

	"cmsfx.dev/psfx/apis"
	"cmsfx.dev/psfx/utils/coerce"
)

// New constructs the label-resolution augmenter for a validated apis.Config.
// The returned augmenter is immutable and safe for concurrent use provided
// the config's ValueResolver is safe for concurrent ResolveValue calls.
//
// Callers are expected to pass a config produced by the config package; a
// nil resolver here would only arise from a hand-rolled Config and panics
// at the first Augment call rather than being re-validated.
func New(cfg apis.Config) apis.Augmenter {
	labels := make([]apis.Label, len(cfg.Labels))
	copy(labels, cfg.Labels)
	return labelAugmenter{labels: labels, res: cfg.Resolver}
}

// labelAugmenter is an immutable, order-preserving pass over a label mapping.
type labelAugmenter struct {
	labels []apis.Label
	res    apis.ValueResolver
}

// Ensure labelAugmenter implements apis.Augmenter.
var _ apis.Augmenter = labelAugmenter{}

// Augment resolves each mapping entry's stored value, coerces it to an
// integer, and attaches the entry's label when it equals the item's
// identifier. Exactly one resolver invocation per entry per call; no
// caching. A resolver error aborts the pass and propagates.
func (a labelAugmenter) Augment(states *apis.StateSet, item apis.Item) (*apis.StateSet, error) {
	if states == nil {
		states = apis.NewStateSet()
	}
	if item == nil {
		return states, nil
	}

	id := item.ItemID()
	for _, l := range a.labels {
		v, err := a.res.ResolveValue(l.Key)
		if err != nil {
			return states, fmt.Errorf("psfx(resolver): resolve %q: %w", l.Key, err)
		}
		n, ok := coerce.Int64(v)
		if !ok {
			continue
		}
		if n == id {
			states.Set(l.Key, l.Text)
		}
	}
	return states, nil
}
