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

package psfx

import (
	"errors"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"cmsfx.dev/psfx/apis"
	"cmsfx.dev/psfx/builder"
	"cmsfx.dev/psfx/config"
	"cmsfx.dev/psfx/options"
	"cmsfx.dev/psfx/strategy"
)

// init initializes the global pipeline state.
func init() {
	store := options.NewStore()
	b := builder.New()
	st.Store(
		&state{
			bld:   b,
			pipe:  b.BuildPipeline(nil),
			store: store,
			def:   strategy.NewOptionsResolver(store),
			log:   zap.NewNop(),
		},
	)
}

// ErrNilPipeline is returned when a builder returns a nil pipeline.
var ErrNilPipeline = errors.New("psfx: builder returned nil pipeline")

// Attach validates a label mapping and registers the resulting augmenter
// into the global pipeline under name, at default priority.
//
// On a configuration error (empty mapping, unusable resolver) or a
// registration conflict, the error is forwarded to the handler supplied via
// config.WithErrorHandler, if any, and Attach returns false. Construction
// errors never propagate to the caller.
//
// When the caller supplies no resolver option, the global default resolver
// (an adapter over the global option store) is used.
func Attach(name string, labels []apis.Label, opts ...config.Option) bool {
	s := st.Load()

	withDefault := make([]config.Option, 0, len(opts)+1)
	withDefault = append(withDefault, config.WithDefault(s.def))
	withDefault = append(withDefault, opts...)

	cfg, err := config.New(labels, withDefault...)
	if err != nil {
		reject(s, name, err, opts)
		return false
	}

	if err := s.pipe.Register(name, s.bld.BuildAugmenter(cfg), apis.PriorityDefault); err != nil {
		reject(s, name, err, opts)
		return false
	}

	s.log.Info("augmenter attached",
		zap.String("augmenter", name),
		zap.Int("labels", len(cfg.Labels)),
	)
	return true
}

// reject routes a construction error to the caller's handler and the log.
func reject(s *state, name string, err error, opts []config.Option) {
	s.log.Warn("augmenter rejected",
		zap.String("augmenter", name),
		zap.Error(err),
	)
	if h := config.ErrorHandler(opts...); h != nil {
		h(err)
	}
}

// Render runs the global pipeline for one rendered item. The host calls it
// once per item with that item's fresh state set; a nil states set is
// replaced by an empty one. Resolver failures propagate to the caller.
func Render(states *apis.StateSet, item apis.Item) (*apis.StateSet, error) {
	return st.Load().pipe.Apply(states, item)
}

// Options returns the global host option store backing the default resolver.
func Options() *options.Store {
	return st.Load().store
}

// SetOption stores an option value in the global store.
// This is a convenience wrapper around Options().Set.
func SetOption(key string, value any) {
	st.Load().store.Set(key, value)
}

// SetOptions replaces the global option store and repoints the default
// resolver at it. Augmenters already attached keep the resolver they were
// constructed with.
func SetOptions(store *options.Store) {
	if store == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(
		&state{
			bld:   old.bld,
			pipe:  old.pipe,
			store: store,
			def:   strategy.NewOptionsResolver(store),
			log:   old.log,
		},
	)
}

// DefaultResolver returns the global default value resolver.
func DefaultResolver() apis.ValueResolver {
	return st.Load().def
}

// SetDefaultResolver replaces the global default value resolver used by
// subsequent Attach calls that supply no resolver of their own.
func SetDefaultResolver(res apis.ValueResolver) {
	if res == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(
		&state{
			bld:   old.bld,
			pipe:  old.pipe,
			store: old.store,
			def:   res,
			log:   old.log,
		},
	)
}

// Pipeline returns the global render pipeline.
func Pipeline() apis.Pipeline {
	return st.Load().pipe
}

// SetPipeline sets the global render pipeline to pipe.
func SetPipeline(pipe apis.Pipeline) {
	if pipe == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(
		&state{
			bld:   old.bld,
			pipe:  pipe,
			store: old.store,
			def:   old.def,
			log:   old.log,
		},
	)
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global builder to b and rebuilds the pipeline with it,
// migrating already-registered augmenters.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	npipe := b.BuildPipeline(old.pipe)
	if npipe == nil {
		panic(ErrNilPipeline)
	}

	st.Store(
		&state{
			bld:   b,
			pipe:  npipe,
			store: old.store,
			def:   old.def,
			log:   old.log,
		},
	)
}

// SetLogger sets the logger recorded in the global snapshot. A nil logger
// restores the no-op logger.
func SetLogger(log *zap.Logger) {
	buildMu.Lock()
	defer buildMu.Unlock()

	if log == nil {
		log = zap.NewNop()
	}

	old := st.Load()
	st.Store(
		&state{
			bld:   old.bld,
			pipe:  old.pipe,
			store: old.store,
			def:   old.def,
			log:   log,
		},
	)
}

// SetAll explicitly sets all global state components. Nil arguments leave
// the corresponding component unchanged. This is mainly used by tests to
// get a clean deterministic state between test cases.
func SetAll(bld apis.Builder, pipe apis.Pipeline, store *options.Store, res apis.ValueResolver, log *zap.Logger) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()

	n := &state{
		bld:   old.bld,
		pipe:  old.pipe,
		store: old.store,
		def:   old.def,
		log:   old.log,
	}
	if bld != nil {
		n.bld = bld
	}
	if pipe != nil {
		n.pipe = pipe
	}
	if store != nil {
		n.store = store
	}
	if res != nil {
		n.def = res
	}
	if log != nil {
		n.log = log
	}

	st.Store(n)
}

// Reset restores the initial global state: default builder, empty pipeline,
// empty option store, default resolver over that store, no-op logger.
func Reset() {
	buildMu.Lock()
	defer buildMu.Unlock()

	store := options.NewStore()
	b := builder.New()
	npipe := b.BuildPipeline(nil)
	if npipe == nil {
		panic(ErrNilPipeline)
	}

	st.Store(
		&state{
			bld:   b,
			pipe:  npipe,
			store: store,
			def:   strategy.NewOptionsResolver(store),
			log:   zap.NewNop(),
		},
	)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global psfx state.
var st atomic.Pointer[state]

// state is the global psfx state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// bld constructs pipelines and augmenters.
	bld apis.Builder
	// pipe is the global render pipeline.
	pipe apis.Pipeline
	// store is the host option store backing the default resolver.
	store *options.Store
	// def is the default value resolver for Attach calls without one.
	def apis.ValueResolver
	// log records registration activity; defaults to a no-op logger.
	log *zap.Logger
}
