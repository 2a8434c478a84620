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

package registry_test

import (
	"runtime"
	"strconv"
	"sync"
	"testing"

	"cmsfx.dev/psfx/apis"
	"cmsfx.dev/psfx/registry"
)

// TestConcurrentApplyAndRegister verifies that Apply/Entries/Count stay
// race-free and consistent while registrations are in flight.
func TestConcurrentApplyAndRegister(t *testing.T) {
	p := registry.New()

	// Register a baseline augmenter so every Apply observes at least one.
	base := &markerAugmenter{key: "base"}
	if err := p.Register("base", base, apis.PriorityEarly); err != nil {
		t.Fatalf("register base: %v", err)
	}

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	// Readers: render items against whatever is registered right now.
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				states, err := p.Apply(apis.NewStateSet(), apis.ItemID(int64(i)))
				if err != nil {
					t.Errorf("apply: %v", err)
					return
				}
				if _, ok := states.Get("base"); !ok {
					t.Errorf("apply missed baseline augmenter")
					return
				}
				_ = p.Count()
				_ = p.Entries()
			}
		}()
	}

	// Writers: new names plus idempotent re-registrations of the baseline.
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				name := "aug-" + strconv.Itoa(w) + "-" + strconv.Itoa(i)
				if err := p.Register(name, &markerAugmenter{key: name}, apis.PriorityDefault); err != nil {
					t.Errorf("register %s: %v", name, err)
					return
				}
				if err := p.Register("base", base, apis.PriorityEarly); err != nil {
					t.Errorf("re-register base: %v", err)
					return
				}
			}
		}(w)
	}

	wg.Wait()

	wantCount := 1 + workers*200
	if got := p.Count(); got != wantCount {
		t.Fatalf("Count() = %d, want %d", got, wantCount)
	}

	// Invocation order invariant: the early-priority baseline stays first.
	entries := p.Entries()
	if len(entries) == 0 {
		t.Fatalf("Entries() = empty")
	}
	if entries[0].Name != "base" {
		t.Fatalf("Entries()[0].Name = %q, want base", entries[0].Name)
	}
}
