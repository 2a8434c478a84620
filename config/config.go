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

package config

import (
	"errors"

	"cmsfx.dev/psfx/apis"
)

var (
	// ErrEmptyMapping is returned when the label mapping is empty after
	// entries with an empty key or empty text have been discarded.
	ErrEmptyMapping = errors.New("psfx(config): empty or fully-invalid label mapping")
	// ErrUnusableResolver is returned when no usable value resolver is
	// available: the caller supplied a nil resolver explicitly, or supplied
	// none and no default was provided.
	ErrUnusableResolver = errors.New("psfx(config): no usable value resolver")
)

// New validates a raw label mapping into an apis.Config.
//
// Entries with an empty key or empty text are discarded; duplicate keys keep
// their first occurrence. An empty surviving mapping fails with
// ErrEmptyMapping.
//
// Resolver selection: a resolver supplied via WithResolver/WithResolverFunc
// is used as-is, and an explicitly supplied nil fails with
// ErrUnusableResolver rather than silently falling back. When no resolver
// option is given, the WithDefault resolver applies; if that is also absent
// or nil, construction fails with ErrUnusableResolver.
//
// Both error conditions are detected here, at construction, never at render
// time.
func New(labels []apis.Label, opts ...Option) (apis.Config, error) {
	s := apply(opts...)

	filtered := make([]apis.Label, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if l.Key == "" || l.Text == "" {
			continue
		}
		if _, dup := seen[l.Key]; dup {
			continue
		}
		seen[l.Key] = struct{}{}
		filtered = append(filtered, l)
	}
	if len(filtered) == 0 {
		return apis.Config{}, ErrEmptyMapping
	}

	res := s.fallback
	if s.explicit {
		res = s.resolver
	}
	if res == nil {
		return apis.Config{}, ErrUnusableResolver
	}

	return apis.Config{Labels: filtered, Resolver: res}, nil
}

// ErrorHandler returns the handler configured via WithErrorHandler, or nil.
// Registration entry points use it to route construction errors back to the
// caller instead of propagating them.
func ErrorHandler(opts ...Option) func(error) {
	return apply(opts...).onError
}

// settings collects construction inputs before validation.
type settings struct {
	// resolver is the caller-supplied resolver, meaningful only when
	// explicit is set. A nil explicit resolver is a validation error.
	resolver apis.ValueResolver
	explicit bool
	// fallback is the host-provided default resolver.
	fallback apis.ValueResolver
	// onError receives construction errors at registration entry points.
	onError func(error)
}

func apply(opts ...Option) *settings {
	s := &settings{}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Option is a functional option that adjusts construction inputs.
type Option func(*settings)

// WithResolver supplies the value resolver explicitly. Passing nil is a
// deliberate construction error, not a request for the default.
func WithResolver(r apis.ValueResolver) Option {
	return func(s *settings) {
		s.resolver = r
		s.explicit = true
	}
}

// WithResolverFunc supplies the value resolver as a plain function.
func WithResolverFunc(f func(key string) (any, error)) Option {
	return func(s *settings) {
		if f == nil {
			s.resolver = nil
		} else {
			s.resolver = resolverFunc(f)
		}
		s.explicit = true
	}
}

// WithDefault supplies the host's default resolver, used only when the
// caller supplies no resolver of their own.
func WithDefault(r apis.ValueResolver) Option {
	return func(s *settings) {
		s.fallback = r
	}
}

// WithErrorHandler supplies a handler invoked with construction errors by
// registration entry points. It does not change validation outcomes.
func WithErrorHandler(h func(error)) Option {
	return func(s *settings) {
		s.onError = h
	}
}

// resolverFunc adapts a bare function to apis.ValueResolver.
type resolverFunc func(key string) (any, error)

func (f resolverFunc) ResolveValue(key string) (any, error) { return f(key) }
