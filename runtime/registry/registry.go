/*
   Copyright 2025 The kvx Authors.

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

// Package registry is a generic, concurrency-safe Kind/Name builder
// registry, shared by runtime/source and runtime/sink to resolve a closed
// variant kind to the concrete constructor registered for it at init time.
package registry

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Key names one builder slot. Name lets a single Kind carry more than one
// named implementation (unused today, kept for parity with the teacher's
// sink registry shape).
type Key struct {
	Kind string
	Name string
}

func (k Key) String() string {
	if k.Name == "" {
		return k.Kind
	}
	return k.Kind + "/" + k.Name
}

// Builder constructs a T from a Spec.
type Builder[T any, Spec any] func(ctx context.Context, spec Spec) (T, error)

// Registry holds builders keyed by Key. Safe for concurrent use; intended
// to be populated from package init() functions before Build is ever
// called, then optionally Sealed.
type Registry[T any, Spec any] struct {
	mu       sync.RWMutex
	builders map[Key]Builder[T, Spec]
	foldCase bool
	sealed   bool
}

// Option configures a Registry at construction.
type Option func(*options)

type options struct {
	foldCase bool
}

// WithCaseFoldLower lower-cases Kind and Name on both registration and
// lookup, so callers need not agree on case.
func WithCaseFoldLower() Option {
	return func(o *options) { o.foldCase = true }
}

// New constructs an empty Registry.
func New[T any, Spec any](opts ...Option) *Registry[T, Spec] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry[T, Spec]{
		builders: make(map[Key]Builder[T, Spec]),
		foldCase: o.foldCase,
	}
}

func (r *Registry[T, Spec]) normalize(k Key) Key {
	if !r.foldCase {
		return k
	}
	return Key{Kind: strings.ToLower(k.Kind), Name: strings.ToLower(k.Name)}
}

// Register installs b under key. It returns an error if key is already
// registered or the registry is sealed.
func (r *Registry[T, Spec]) Register(key Key, b Builder[T, Spec]) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return fmt.Errorf("registry: sealed, cannot register %s", key)
	}
	key = r.normalize(key)
	if _, exists := r.builders[key]; exists {
		return fmt.Errorf("registry: duplicate registration for %s", key)
	}
	r.builders[key] = b
	return nil
}

// MustRegister registers b under key, panicking on error. Intended for use
// from package init() functions, where a registration conflict is a
// programmer error that should fail fast at process startup.
func MustRegister[T any, Spec any](r *Registry[T, Spec], key Key, b Builder[T, Spec]) {
	if err := r.Register(key, b); err != nil {
		panic(err)
	}
}

// Build looks up the builder for key and invokes it with spec.
func (r *Registry[T, Spec]) Build(ctx context.Context, key Key, spec Spec) (T, error) {
	r.mu.RLock()
	b, ok := r.builders[r.normalize(key)]
	r.mu.RUnlock()

	var zero T
	if !ok {
		return zero, fmt.Errorf("registry: no builder registered for %s", key)
	}
	return b(ctx, spec)
}

// Seal prevents further registrations. Calling it is optional; it exists to
// catch accidental late registrations (e.g. from a plugin loaded after
// startup) as a hard error instead of a silent race.
func (r *Registry[T, Spec]) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = true
}
