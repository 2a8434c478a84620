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

// Package options provides the host-side option store behind the default
// value resolver: a key -> value map of configuration slots, seeded in
// memory or from a YAML document. It is a lookup primitive, not a storage
// engine; there is no persistence.
package options

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrEmptyDocument is returned when a YAML source decodes to no options.
var ErrEmptyDocument = errors.New("psfx(options): empty options document")

// Getter is the host's lookup-by-key primitive. The second result reports
// whether the key is present at all.
type Getter interface {
	// Option returns the value stored under key.
	Option(key string) (value any, ok bool)
}

// Store is an in-memory Getter safe for concurrent use. The zero value is
// ready to use.
type Store struct {
	mu sync.RWMutex
	m  map[string]any
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{m: make(map[string]any)}
}

// Option returns the value stored under key.
func (s *Store) Option(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.m == nil {
		s.m = make(map[string]any)
	}
	s.m[key] = value
}

// SetAll stores every entry of values. Existing keys are replaced.
func (s *Store) SetAll(values map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.m == nil {
		s.m = make(map[string]any, len(values))
	}
	for k, v := range values {
		s.m[k] = v
	}
}

// Keys returns the stored keys, sorted for deterministic diagnostics.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.m))
	for k := range s.m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of stored options.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

// Reset removes all stored options.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m = make(map[string]any)
}

// FromYAML seeds a Store from a YAML mapping of option keys to values,
// e.g.:
//
//	landing_page: 42
//	signup_page: "17"
//
// An empty or non-mapping document fails with ErrEmptyDocument.
func FromYAML(data []byte) (*Store, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("psfx(options): decode yaml: %w", err)
	}
	if len(m) == 0 {
		return nil, ErrEmptyDocument
	}
	s := NewStore()
	s.SetAll(m)
	return s, nil
}

// FromFile seeds a Store from a YAML file. See FromYAML.
func FromFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("psfx(options): read %s: %w", path, err)
	}
	return FromYAML(data)
}
