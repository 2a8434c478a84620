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

// StateSet is the ordered key -> label collection attached to one rendered
// item. The host creates a fresh set per render call, hands it through the
// pipeline, and displays whatever comes back. Entries are added or
// overwritten, never removed.
//
// StateSet is not safe for concurrent mutation; each render call owns its
// own instance.
type StateSet struct {
	keys []string
	vals map[string]string
}

// NewStateSet returns an empty StateSet.
func NewStateSet() *StateSet {
	return &StateSet{vals: make(map[string]string)}
}

// Set inserts or overwrites the label stored under key. A new key is
// appended; overwriting an existing key keeps its original position.
// Empty keys are ignored.
func (s *StateSet) Set(key, label string) {
	if key == "" {
		return
	}
	if s.vals == nil {
		s.vals = make(map[string]string)
	}
	if _, ok := s.vals[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.vals[key] = label
}

// Get returns the label stored under key, if present.
func (s *StateSet) Get(key string) (label string, ok bool) {
	if s.vals == nil {
		return "", false
	}
	label, ok = s.vals[key]
	return label, ok
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (s *StateSet) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Pairs returns the entries in insertion order. The returned slice is a copy.
func (s *StateSet) Pairs() []Label {
	out := make([]Label, 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, Label{Key: k, Text: s.vals[k]})
	}
	return out
}

// Len returns the number of entries.
func (s *StateSet) Len() int { return len(s.keys) }
