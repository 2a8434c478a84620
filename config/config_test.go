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

package config_test

import (
	"errors"
	"testing"

	"cmsfx.dev/psfx/apis"
	"cmsfx.dev/psfx/config"
	"cmsfx.dev/psfx/strategy"
)

var noopResolver = strategy.ResolverFunc(func(string) (any, error) { return nil, nil })

func TestNew_FiltersInvalidEntries(t *testing.T) {
	cfg, err := config.New(
		[]apis.Label{
			{Key: "landing_page", Text: "Landing Page"},
			{Key: "", Text: "No Key"},
			{Key: "no_text", Text: ""},
			{Key: "signup_page", Text: "Signup Page"},
		},
		config.WithResolver(noopResolver),
	)
	if err != nil {
		t.Fatalf("New() error = %v, want nil", err)
	}

	want := []apis.Label{
		{Key: "landing_page", Text: "Landing Page"},
		{Key: "signup_page", Text: "Signup Page"},
	}
	if len(cfg.Labels) != len(want) {
		t.Fatalf("Labels = %+v, want %+v", cfg.Labels, want)
	}
	for i := range want {
		if cfg.Labels[i] != want[i] {
			t.Fatalf("Labels[%d] = %+v, want %+v", i, cfg.Labels[i], want[i])
		}
	}
}

func TestNew_DuplicateKeys_FirstWins(t *testing.T) {
	cfg, err := config.New(
		[]apis.Label{
			{Key: "landing_page", Text: "Landing Page"},
			{Key: "landing_page", Text: "Shadowed"},
		},
		config.WithResolver(noopResolver),
	)
	if err != nil {
		t.Fatalf("New() error = %v, want nil", err)
	}
	if len(cfg.Labels) != 1 {
		t.Fatalf("len(Labels) = %d, want 1", len(cfg.Labels))
	}
	if cfg.Labels[0].Text != "Landing Page" {
		t.Fatalf("Labels[0].Text = %q, want %q", cfg.Labels[0].Text, "Landing Page")
	}
}

func TestNew_EmptyMapping(t *testing.T) {
	_, err := config.New(nil, config.WithResolver(noopResolver))
	if !errors.Is(err, config.ErrEmptyMapping) {
		t.Fatalf("New(nil) error = %v, want ErrEmptyMapping", err)
	}
}

func TestNew_FullyInvalidMapping(t *testing.T) {
	_, err := config.New(
		[]apis.Label{
			{Key: "", Text: "A"},
			{Key: "b", Text: ""},
		},
		config.WithResolver(noopResolver),
	)
	if !errors.Is(err, config.ErrEmptyMapping) {
		t.Fatalf("New() error = %v, want ErrEmptyMapping", err)
	}
}

func TestNew_NoResolverNoDefault(t *testing.T) {
	_, err := config.New([]apis.Label{{Key: "a", Text: "A"}})
	if !errors.Is(err, config.ErrUnusableResolver) {
		t.Fatalf("New() error = %v, want ErrUnusableResolver", err)
	}
}

func TestNew_ExplicitNilResolver_NoFallback(t *testing.T) {
	// An explicitly supplied nil resolver is a construction error even when
	// a default is available; it must not be silently substituted.
	_, err := config.New(
		[]apis.Label{{Key: "a", Text: "A"}},
		config.WithDefault(noopResolver),
		config.WithResolver(nil),
	)
	if !errors.Is(err, config.ErrUnusableResolver) {
		t.Fatalf("New() error = %v, want ErrUnusableResolver", err)
	}

	_, err = config.New(
		[]apis.Label{{Key: "a", Text: "A"}},
		config.WithDefault(noopResolver),
		config.WithResolverFunc(nil),
	)
	if !errors.Is(err, config.ErrUnusableResolver) {
		t.Fatalf("New() with nil func error = %v, want ErrUnusableResolver", err)
	}
}

func TestNew_DefaultApplies_WhenNoResolverSupplied(t *testing.T) {
	cfg, err := config.New(
		[]apis.Label{{Key: "a", Text: "A"}},
		config.WithDefault(noopResolver),
	)
	if err != nil {
		t.Fatalf("New() error = %v, want nil", err)
	}
	if cfg.Resolver == nil {
		t.Fatalf("Resolver = nil, want default")
	}
}

func TestNew_ExplicitResolver_WinsOverDefault(t *testing.T) {
	called := false
	own := strategy.ResolverFunc(func(string) (any, error) {
		called = true
		return nil, nil
	})

	cfg, err := config.New(
		[]apis.Label{{Key: "a", Text: "A"}},
		config.WithDefault(noopResolver),
		config.WithResolver(own),
	)
	if err != nil {
		t.Fatalf("New() error = %v, want nil", err)
	}
	if _, err := cfg.Resolver.ResolveValue("a"); err != nil {
		t.Fatalf("ResolveValue error = %v, want nil", err)
	}
	if !called {
		t.Fatalf("explicit resolver not used")
	}
}

func TestNew_OptionsOrder_LastWins(t *testing.T) {
	first := strategy.ResolverFunc(func(string) (any, error) { return 1, nil })
	second := strategy.ResolverFunc(func(string) (any, error) { return 2, nil })

	cfg, err := config.New(
		[]apis.Label{{Key: "a", Text: "A"}},
		config.WithResolver(first),
		config.WithResolver(second),
	)
	if err != nil {
		t.Fatalf("New() error = %v, want nil", err)
	}
	v, err := cfg.Resolver.ResolveValue("a")
	if err != nil {
		t.Fatalf("ResolveValue error = %v, want nil", err)
	}
	if v != 2 {
		t.Fatalf("ResolveValue = %v, want 2 (last option wins)", v)
	}
}

func TestErrorHandler_Extraction(t *testing.T) {
	if h := config.ErrorHandler(); h != nil {
		t.Fatalf("ErrorHandler() = %p, want nil", h)
	}

	var got error
	h := config.ErrorHandler(
		config.WithResolver(noopResolver),
		config.WithErrorHandler(func(err error) { got = err }),
	)
	if h == nil {
		t.Fatalf("ErrorHandler() = nil, want handler")
	}
	h(config.ErrEmptyMapping)
	if !errors.Is(got, config.ErrEmptyMapping) {
		t.Fatalf("handler received %v, want ErrEmptyMapping", got)
	}
}
