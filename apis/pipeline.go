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

import "strconv"

// Priority orders augmenters within a Pipeline. Lower values run first;
// augmenters sharing a priority run in registration order.
type Priority int

const (
	// PriorityEarly runs before default-priority augmenters.
	PriorityEarly Priority = -10
	// PriorityDefault is the priority used when a component declares no
	// ordering preference.
	PriorityDefault Priority = 0
	// PriorityLate runs after default-priority augmenters.
	PriorityLate Priority = 10
)

// String returns a stable name for well-known priorities and a numeric
// form otherwise.
func (p Priority) String() string {
	switch p {
	case PriorityEarly:
		return "early"
	case PriorityDefault:
		return "default"
	case PriorityLate:
		return "late"
	}
	return "priority(" + strconv.Itoa(int(p)) + ")"
}

// Pipeline is an explicit, ordered list of augmenters the host invokes for
// every rendered item. It replaces an implicit process-wide hook table:
// the host constructs (or accepts) a Pipeline and calls Apply per item.
// Implementations must allow concurrent Apply calls while Register is in
// progress.
type Pipeline interface {
	// Register adds an augmenter under a unique name at the given priority.
	// Registering the same (name, augmenter) pair again is a no-op;
	// re-registering a name with a different augmenter is an error.
	Register(name string, a Augmenter, p Priority) error
	// Apply runs all registered augmenters in priority order, stopping at
	// the first error.
	Apply(states *StateSet, item Item) (*StateSet, error)
	// Entries returns a snapshot in invocation order, for diagnostics.
	Entries() []Entry
	// Count returns the number of registered augmenters.
	Count() int
	// Reset removes all registered augmenters.
	Reset()
}

// Entry is a single named augmenter in a Pipeline snapshot.
type Entry struct {
	// Name is the registration name.
	Name string
	// Priority is the registered priority class.
	Priority Priority
	// Augmenter is the registered augmenter.
	Augmenter Augmenter
}
