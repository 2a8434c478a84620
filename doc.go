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

// Package psfx annotates entries in a CMS admin post listing with
// post-state labels.
//
// A host configures a mapping from option-keys to display labels, e.g.
// "landing_page" -> "Landing Page". While rendering its post list, the host
// asks psfx once per entry whether any configured option currently points at
// that entry; when an option's stored value equals the entry's identifier,
// the mapped label is attached to the entry's state set and shown next to
// its title.
//
// # Design
//
// The core of psfx is a read-mostly global snapshot (state). The snapshot
// holds five things:
//
//   - Builder: a pluggable factory that constructs the render pipeline and
//     the label-resolution augmenters registered into it.
//
//   - Pipeline: an explicit, ordered list of augmenters. The host calls
//     Apply once per rendered item; each augmenter receives the state set
//     accumulated so far and returns it augmented. Ordering is by priority
//     class, then registration order.
//
//   - Options store: the host's key -> value configuration slots. It backs
//     the default value resolver and can be seeded in memory or from YAML.
//
//   - Default ValueResolver: the resolver used when a mapping is attached
//     without one of its own. It is a thin adapter over the option store.
//
//   - Logger: a zap logger recording registration activity. Defaults to a
//     no-op logger so the library is silent unless the host opts in.
//
// All of these live inside a single immutable struct called state. The
// package holds an atomic pointer to the current state. Readers load that
// pointer, use it, and never mutate it. Writers build a brand-new state and
// atomically swap it in, so render calls are lock-free on the hot path and
// concurrent callers always see a consistent snapshot.
//
// # Validation
//
// Label mappings are validated once, at attach time, never during
// rendering. Entries with an empty key or empty label are discarded; a
// mapping that ends up empty is rejected with config.ErrEmptyMapping, and a
// mapping without a usable value resolver is rejected with
// config.ErrUnusableResolver. Attach forwards either error to the handler
// supplied via config.WithErrorHandler and reports an absent result (false)
// instead of propagating.
//
// # Resolution
//
// At render time the augmenter walks its validated mapping in order. For
// each (key, label) pair it asks the configured ValueResolver for the value
// currently stored under key, coerces that value to an integer, and
// compares it against the item's identifier. On equality the label is set
// into the item's state set, overwriting any previous entry under that key
// but keeping its position. There is no caching and no deduplication: every
// mapping entry triggers exactly one resolver invocation per render call.
//
// Failures inside the ValueResolver are the one render-time error source.
// They propagate to the host unhandled; psfx performs error handling only
// at construction time.
//
// # Usage pattern in a host
//
// A typical host does:
//
//  1. Seed the option store at startup:
//
//     psfx.SetOption("landing_page", 42)
//
//     or replace it wholesale from a YAML document via options.FromYAML and
//     psfx.SetOptions.
//
//  2. Attach one or more label mappings:
//
//     psfx.Attach("page-states", []apis.Label{
//     {Key: "landing_page", Text: "Landing Page"},
//     {Key: "signup_page", Text: "Signup Page"},
//     })
//
//     Callers with their own value source pass config.WithResolver or
//     config.WithResolverFunc; callers that care about rejection pass
//     config.WithErrorHandler.
//
//  3. In the render loop, once per listed entry:
//
//     states, err := psfx.Render(states, item)
//
//  4. In tests, call psfx.Reset or psfx.SetAll to get deterministic
//     snapshots and to inject fakes.
//
// Hosts that prefer explicit dependency passing over the process-wide
// snapshot can skip this package's globals entirely: build a pipeline with
// registry.New, validate with config.New, construct augmenters with
// resolver.New, and call Apply on their own pipeline instance.
//
// # Concurrency model
//
// Reads (Render, Pipeline, Options, DefaultResolver, Builder) are
// wait-free: they load the current *state atomically and never take locks.
// Writes (Attach's registration, SetOptions, SetPipeline, SetBuilder,
// SetLogger, SetAll, Reset) either mutate a concurrency-safe component or
// take a short build mutex, assemble a brand-new state struct, and publish
// it via an atomic pointer swap.
//
// A validated mapping is immutable after construction; there is no runtime
// reconfiguration of an attached augmenter. To change labels, attach under
// a new name or rebuild the pipeline.
//
// # Scope
//
// psfx is intentionally small. It does not try to be a rendering framework
// or a settings store. It only solves one job:
//
//	"Given a rendered item and a validated option-key -> label mapping,
//	 attach each label whose stored option value equals the item's
//	 identifier."
//
// Everything else (display markup, settings persistence, admin routing)
// belongs to the host.
package psfx
