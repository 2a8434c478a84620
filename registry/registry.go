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

package registry

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"cmsfx.dev/psfx/apis"
)

var (
	// ErrNilAugmenter is returned when a nil augmenter is provided.
	ErrNilAugmenter = errors.New("psfx(registry): nil augmenter provided")
	// ErrEmptyName is returned when an empty registration name is provided.
	ErrEmptyName = errors.New("psfx(registry): empty name provided")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a name with a different augmenter.
	ErrConflictingRegistration = errors.New("psfx(registry): conflicting augmenter registration")
)

// New constructs an empty Pipeline. Augmenters run ordered by priority
// (lower first), registration order within a priority class.
func New() apis.Pipeline {
	return &pipeline{}
}

// pipeline is a Pipeline guarded by a copy-on-write entry list: Register
// swaps in a new slice under the mutex, Apply iterates a snapshot, so
// renders in flight never observe a half-updated list.
type pipeline struct {
	mu sync.Mutex
	// entries is the invocation-ordered list. Treated as immutable once
	// published; Register replaces the slice rather than mutating it.
	entries atomic.Pointer[[]apis.Entry]
}

// Register adds an augmenter under name at priority p, keeping entries
// ordered by priority then insertion. It is idempotent for the same
// (name, augmenter, priority) triple.
func (r *pipeline) Register(name string, a apis.Augmenter, p apis.Priority) error {
	if name == "" {
		return ErrEmptyName
	}
	if a == nil {
		return ErrNilAugmenter
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cur := r.snapshot()
	for _, e := range cur {
		if e.Name == name {
			if e.Priority == p && sameAugmenter(e.Augmenter, a) {
				return nil // idempotent re-registration
			}
			return ErrConflictingRegistration
		}
	}

	// Insert after the last entry whose priority is <= p.
	pos := len(cur)
	for i := len(cur) - 1; i >= 0; i-- {
		if cur[i].Priority <= p {
			break
		}
		pos = i
	}

	next := make([]apis.Entry, 0, len(cur)+1)
	next = append(next, cur[:pos]...)
	next = append(next, apis.Entry{Name: name, Priority: p, Augmenter: a})
	next = append(next, cur[pos:]...)
	r.entries.Store(&next)
	return nil
}

// Apply runs every registered augmenter in invocation order, stopping at
// the first error. A nil states set is replaced by a fresh one so hosts can
// call Apply(nil, item) directly.
func (r *pipeline) Apply(states *apis.StateSet, item apis.Item) (*apis.StateSet, error) {
	if states == nil {
		states = apis.NewStateSet()
	}
	var err error
	for _, e := range r.snapshot() {
		states, err = e.Augmenter.Augment(states, item)
		if err != nil {
			return states, err
		}
		if states == nil {
			// The chain invariant is a non-nil set between steps.
			states = apis.NewStateSet()
		}
	}
	return states, nil
}

// Entries returns a snapshot in invocation order.
func (r *pipeline) Entries() []apis.Entry {
	cur := r.snapshot()
	out := make([]apis.Entry, len(cur))
	copy(out, cur)
	return out
}

// Count returns the number of registered augmenters.
func (r *pipeline) Count() int {
	return len(r.snapshot())
}

// Reset removes all registered augmenters.
func (r *pipeline) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries.Store(nil)
}

func (r *pipeline) snapshot() []apis.Entry {
	if p := r.entries.Load(); p != nil {
		return *p
	}
	return nil
}

// sameAugmenter reports whether two augmenters are the same registration.
// Uncomparable implementations (struct values holding slices, funcs) are
// never considered the same, so the check cannot panic on ==.
func sameAugmenter(x, y apis.Augmenter) bool {
	tx := reflect.TypeOf(x)
	if tx != reflect.TypeOf(y) || !tx.Comparable() {
		return false
	}
	return x == y
}
