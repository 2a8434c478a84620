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

package apis_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"cmsfx.dev/psfx/apis"
)

func TestStateSet_InsertionOrder(t *testing.T) {
	s := apis.NewStateSet()
	s.Set("draft", "Draft")
	s.Set("landing_page", "Landing Page")
	s.Set("sticky", "Sticky")

	want := []apis.Label{
		{Key: "draft", Text: "Draft"},
		{Key: "landing_page", Text: "Landing Page"},
		{Key: "sticky", Text: "Sticky"},
	}
	if diff := cmp.Diff(want, s.Pairs()); diff != "" {
		t.Fatalf("Pairs() mismatch (-want +got):\n%s", diff)
	}
}

func TestStateSet_OverwriteKeepsPosition(t *testing.T) {
	s := apis.NewStateSet()
	s.Set("a", "A")
	s.Set("b", "B")
	s.Set("a", "A2")

	want := []apis.Label{
		{Key: "a", Text: "A2"},
		{Key: "b", Text: "B"},
	}
	if diff := cmp.Diff(want, s.Pairs()); diff != "" {
		t.Fatalf("Pairs() mismatch (-want +got):\n%s", diff)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
}

func TestStateSet_EmptyKeyIgnored(t *testing.T) {
	s := apis.NewStateSet()
	s.Set("", "ghost")
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
}

func TestStateSet_Get(t *testing.T) {
	s := apis.NewStateSet()
	s.Set("a", "A")

	if v, ok := s.Get("a"); !ok || v != "A" {
		t.Fatalf("Get(a) = (%q, %v), want (A, true)", v, ok)
	}
	if _, ok := s.Get("missing"); ok {
		t.Fatalf("Get(missing) = present, want absent")
	}
}

func TestStateSet_ZeroValueUsable(t *testing.T) {
	var s apis.StateSet
	if _, ok := s.Get("a"); ok {
		t.Fatalf("zero-value Get = present, want absent")
	}
	s.Set("a", "A")
	if v, ok := s.Get("a"); !ok || v != "A" {
		t.Fatalf("Get(a) = (%q, %v), want (A, true)", v, ok)
	}
}

func TestStateSet_KeysReturnsCopy(t *testing.T) {
	s := apis.NewStateSet()
	s.Set("a", "A")
	s.Set("b", "B")

	keys := s.Keys()
	keys[0] = "mutated"

	if got := s.Keys()[0]; got != "a" {
		t.Fatalf("Keys()[0] = %q after external mutation, want %q", got, "a")
	}
}

func TestPriority_String(t *testing.T) {
	cases := []struct {
		p    apis.Priority
		want string
	}{
		{apis.PriorityEarly, "early"},
		{apis.PriorityDefault, "default"},
		{apis.PriorityLate, "late"},
		{apis.Priority(5), "priority(5)"},
	}
	for _, c := range cases {
		if got := c.p.String(); got != c.want {
			t.Fatalf("Priority(%d).String() = %q, want %q", int(c.p), got, c.want)
		}
	}
}

func TestItemID(t *testing.T) {
	var it apis.Item = apis.ItemID(42)
	if it.ItemID() != 42 {
		t.Fatalf("ItemID() = %d, want 42", it.ItemID())
	}
}
