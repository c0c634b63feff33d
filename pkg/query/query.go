// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package query

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Keyer is implemented by fetch parameters. Key must be stable for equal
// parameter tuples and distinct for different ones.
type Keyer interface {
	Key() string
}

// Fetcher loads data for a parameter tuple.
type Fetcher[P Keyer, T any] func(ctx context.Context, params P) (T, error)

// Result is the state of a query for one parameter tuple.
type Result[T any] struct {
	Data      T
	IsLoading bool
	IsError   bool
	Err       error
}

type entry[T any] struct {
	data      T
	err       error
	done      bool
	settledAt time.Time
}

// Query caches the latest result per parameter key and runs fetches in the
// background. It never retries a failed fetch on its own.
type Query[P Keyer, T any] struct {
	name    string
	fetch   Fetcher[P, T]
	ttl     time.Duration
	timeout time.Duration
	base    context.Context
	now     func() time.Time

	group singleflight.Group

	mu      sync.Mutex
	entries map[string]*entry[T]
	gen     uint64
	changed chan struct{}
}

// Option configures a Query.
type Option func(*options)

type options struct {
	ttl     time.Duration
	timeout time.Duration
	base    context.Context
	now     func() time.Time
}

// WithTTL expires settled entries after d. Zero keeps them until Invalidate.
func WithTTL(d time.Duration) Option {
	return func(o *options) {
		o.ttl = d
	}
}

// WithTimeout bounds each background fetch.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithContext sets the parent context of background fetches. Cancelling it
// cancels in-flight fetches.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		o.base = ctx
	}
}

// WithClock overrides the time source used for TTL expiry.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// New returns a Query named name that loads data with fetch.
func New[P Keyer, T any](name string, fetch Fetcher[P, T], opts ...Option) *Query[P, T] {
	o := options{
		base: context.Background(),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Query[P, T]{
		name:    name,
		fetch:   fetch,
		ttl:     o.ttl,
		timeout: o.timeout,
		base:    o.base,
		now:     o.now,
		entries: make(map[string]*entry[T]),
		changed: make(chan struct{}),
	}
}

// Name returns the query name used in logs and metrics.
func (q *Query[P, T]) Name() string {
	return q.name
}

// Use returns the current result for params. When enabled is false the
// fetcher is never called and the zero Result is returned. The first use of
// a parameter tuple starts a background fetch and reports IsLoading.
func (q *Query[P, T]) Use(ctx context.Context, params P, enabled bool) Result[T] {
	if !enabled {
		return Result[T]{}
	}

	key := params.Key()

	q.mu.Lock()
	defer q.mu.Unlock()

	if e, ok := q.entries[key]; ok && !q.expired(e) {
		if !e.done {
			return Result[T]{IsLoading: true}
		}
		queryCacheHits.WithLabelValues(q.name).Inc()
		return Result[T]{Data: e.data, IsError: e.err != nil, Err: e.err}
	}

	q.prune()
	e := &entry[T]{}
	q.entries[key] = e
	go q.load(ctx, key, q.gen, params, e)

	return Result[T]{IsLoading: true}
}

// Fetch loads params synchronously, sharing an in-flight request for the same
// key, and stores the outcome. Unlike Use it blocks until the data arrives.
// A cached failure is not returned; it is fetched again.
func (q *Query[P, T]) Fetch(ctx context.Context, params P) (T, error) {
	key := params.Key()

	q.mu.Lock()
	gen := q.gen
	e, ok := q.entries[key]
	if ok && e.done && e.err == nil && !q.expired(e) {
		q.mu.Unlock()
		queryCacheHits.WithLabelValues(q.name).Inc()
		return e.data, nil
	}
	if !ok || e.done {
		e = &entry[T]{}
		q.entries[key] = e
	}
	q.mu.Unlock()

	data, err := q.do(ctx, key, gen, params)
	q.settle(key, e, data, err)
	return data, err
}

// Retry drops the entry for params when its fetch failed, so the next Use
// starts a new fetch. It reports whether an entry was dropped. Successful and
// in-flight entries are left alone.
func (q *Query[P, T]) Retry(params P) bool {
	key := params.Key()

	q.mu.Lock()
	defer q.mu.Unlock()

	e, ok := q.entries[key]
	if !ok || !e.done || e.err == nil {
		return false
	}
	delete(q.entries, key)
	queryRetries.WithLabelValues(q.name).Inc()
	return true
}

// Invalidate drops every entry so the next Use refetches. Results of fetches
// still in flight are discarded.
func (q *Query[P, T]) Invalidate() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.entries = make(map[string]*entry[T])
	q.gen++
	queryInvalidations.WithLabelValues(q.name).Inc()
	q.notifyLocked()
}

// Changed returns a channel that is closed the next time an entry settles or
// the query is invalidated. Call it again after each notification.
func (q *Query[P, T]) Changed() <-chan struct{} {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.changed
}

func (q *Query[P, T]) load(ctx context.Context, key string, gen uint64, params P, e *entry[T]) {
	// Background fetches outlive the render that started them but keep its
	// values (request ID, logger).
	fctx := context.WithoutCancel(ctx)
	if q.base != nil {
		var cancel context.CancelFunc
		fctx, cancel = mergeCancel(fctx, q.base)
		defer cancel()
	}

	data, err := q.do(fctx, key, gen, params)
	q.settle(key, e, data, err)
}

func (q *Query[P, T]) do(ctx context.Context, key string, gen uint64, params P) (T, error) {
	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}

	v, err, shared := q.group.Do(fmt.Sprintf("%d/%s", gen, key), func() (any, error) {
		start := time.Now()
		data, err := q.fetch(ctx, params)
		queryFetchDuration.WithLabelValues(q.name).Observe(time.Since(start).Seconds())

		result := "success"
		if err != nil {
			result = "error"
			slog.Debug("query fetch failed", "query", q.name, "key", key, "error", err)
		}
		queryFetchTotal.WithLabelValues(q.name, result).Inc()
		return data, err
	})

	if shared {
		slog.Debug("query fetch shared", "query", q.name, "key", key)
	}

	data, _ := v.(T)
	return data, err
}

func (q *Query[P, T]) settle(key string, e *entry[T], data T, err error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.entries[key] != e {
		// invalidated or replaced while in flight
		return
	}
	e.data = data
	e.err = err
	e.done = true
	e.settledAt = q.now()
	q.notifyLocked()
}

func (q *Query[P, T]) notifyLocked() {
	close(q.changed)
	q.changed = make(chan struct{})
}

func (q *Query[P, T]) expired(e *entry[T]) bool {
	return q.ttl > 0 && e.done && q.now().Sub(e.settledAt) > q.ttl
}

// prune drops expired entries. Caller holds q.mu.
func (q *Query[P, T]) prune() {
	if q.ttl <= 0 {
		return
	}
	for k, e := range q.entries {
		if q.expired(e) {
			delete(q.entries, k)
		}
	}
}

// mergeCancel returns a context carrying the values of ctx that is also
// cancelled when parent is done.
func mergeCancel(ctx, parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(parent, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}
