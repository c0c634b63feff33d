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
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type params string

func (p params) Key() string { return string(p) }

func waitChanged(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for query to settle")
	}
}

func TestUseDisabledNeverFetches(t *testing.T) {
	var calls atomic.Int32
	q := New("list", func(ctx context.Context, p params) ([]string, error) {
		calls.Add(1)
		return []string{"x"}, nil
	})

	res := q.Use(t.Context(), params("a"), false)
	assert.False(t, res.IsLoading)
	assert.False(t, res.IsError)
	assert.Nil(t, res.Data)

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestUseLoadsThenSettles(t *testing.T) {
	release := make(chan struct{})
	q := New("list", func(ctx context.Context, p params) ([]string, error) {
		<-release
		return []string{string(p)}, nil
	})

	changed := q.Changed()
	res := q.Use(t.Context(), params("soup"), true)
	assert.True(t, res.IsLoading)

	res = q.Use(t.Context(), params("soup"), true)
	assert.True(t, res.IsLoading)

	close(release)
	waitChanged(t, changed)

	res = q.Use(t.Context(), params("soup"), true)
	assert.False(t, res.IsLoading)
	assert.Equal(t, []string{"soup"}, res.Data)
}

func TestUseKeysResultsByParams(t *testing.T) {
	q := New("search", func(ctx context.Context, p params) (string, error) {
		return "result:" + string(p), nil
	})

	changed := q.Changed()
	q.Use(t.Context(), params("a"), true)
	waitChanged(t, changed)

	res := q.Use(t.Context(), params("b"), true)
	assert.True(t, res.IsLoading, "a new tuple must not show the previous result")
	assert.Empty(t, res.Data)

	assert.Equal(t, "result:a", q.Use(t.Context(), params("a"), true).Data)
}

func TestUseReportsError(t *testing.T) {
	boom := errors.New("boom")
	q := New("list", func(ctx context.Context, p params) (int, error) {
		return 0, boom
	})

	changed := q.Changed()
	q.Use(t.Context(), params("a"), true)
	waitChanged(t, changed)

	res := q.Use(t.Context(), params("a"), true)
	assert.True(t, res.IsError)
	assert.ErrorIs(t, res.Err, boom)
	assert.False(t, res.IsLoading)
}

func TestInvalidateRefetches(t *testing.T) {
	var calls atomic.Int32
	q := New("list", func(ctx context.Context, p params) (int32, error) {
		return calls.Add(1), nil
	})

	changed := q.Changed()
	q.Use(t.Context(), params("a"), true)
	waitChanged(t, changed)
	assert.Equal(t, int32(1), q.Use(t.Context(), params("a"), true).Data)

	q.Invalidate()
	changed = q.Changed()
	assert.True(t, q.Use(t.Context(), params("a"), true).IsLoading)
	waitChanged(t, changed)
	assert.Equal(t, int32(2), q.Use(t.Context(), params("a"), true).Data)
}

func TestInvalidateDiscardsInFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	q := New("list", func(ctx context.Context, p params) (int32, error) {
		n := calls.Add(1)
		if n == 1 {
			close(started)
			<-release
		}
		return n, nil
	})

	q.Use(t.Context(), params("a"), true)
	<-started
	q.Invalidate()

	changed := q.Changed()
	q.Use(t.Context(), params("a"), true)
	waitChanged(t, changed)
	close(release)

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(2), q.Use(t.Context(), params("a"), true).Data)
}

func TestFetchSharesInFlight(t *testing.T) {
	release := make(chan struct{})
	var calls atomic.Int32
	q := New("get", func(ctx context.Context, p params) (string, error) {
		calls.Add(1)
		<-release
		return "ok", nil
	})

	var wg sync.WaitGroup
	results := make([]string, 4)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := q.Fetch(context.Background(), params("k"))
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		assert.Equal(t, "ok", r)
	}

	res := q.Use(t.Context(), params("k"), true)
	require.False(t, res.IsLoading)
	assert.Equal(t, "ok", res.Data)
}

func TestTTLExpiry(t *testing.T) {
	now := time.Unix(1000, 0)
	var mu sync.Mutex
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}

	var calls atomic.Int32
	q := New("list", func(ctx context.Context, p params) (int32, error) {
		return calls.Add(1), nil
	}, WithTTL(time.Minute), WithClock(clock))

	_, err := q.Fetch(t.Context(), params("a"))
	require.NoError(t, err)
	assert.Equal(t, int32(1), q.Use(t.Context(), params("a"), true).Data)

	mu.Lock()
	now = now.Add(2 * time.Minute)
	mu.Unlock()

	v, err := q.Fetch(t.Context(), params("a"))
	require.NoError(t, err)
	assert.Equal(t, int32(2), v)
}

func TestBaseContextCancelsFetch(t *testing.T) {
	base, cancel := context.WithCancel(context.Background())
	q := New("list", func(ctx context.Context, p params) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	}, WithContext(base))

	changed := q.Changed()
	q.Use(t.Context(), params("a"), true)
	cancel()
	waitChanged(t, changed)

	res := q.Use(t.Context(), params("a"), true)
	assert.True(t, res.IsError)
	assert.ErrorIs(t, res.Err, context.Canceled)
}

func TestRetryDropsOnlyFailedEntries(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)
	var calls atomic.Int32
	q := New("search", func(ctx context.Context, p params) (int32, error) {
		n := calls.Add(1)
		if fail.Load() {
			return 0, errors.New("down")
		}
		return n, nil
	}, WithTTL(time.Minute))

	changed := q.Changed()
	q.Use(t.Context(), params("a"), true)
	waitChanged(t, changed)
	require.True(t, q.Use(t.Context(), params("a"), true).IsError)
	assert.Equal(t, int32(1), calls.Load())

	fail.Store(false)
	assert.True(t, q.Retry(params("a")))

	changed = q.Changed()
	assert.True(t, q.Use(t.Context(), params("a"), true).IsLoading)
	waitChanged(t, changed)

	res := q.Use(t.Context(), params("a"), true)
	assert.False(t, res.IsError)
	assert.Equal(t, int32(2), res.Data)

	assert.False(t, q.Retry(params("a")))
	assert.False(t, q.Retry(params("missing")))
	assert.Equal(t, int32(2), q.Use(t.Context(), params("a"), true).Data)
}

func TestFetchDoesNotReturnCachedError(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)
	var calls atomic.Int32
	q := New("get", func(ctx context.Context, p params) (int32, error) {
		n := calls.Add(1)
		if fail.Load() {
			return 0, errors.New("down")
		}
		return n, nil
	}, WithTTL(time.Minute))

	_, err := q.Fetch(t.Context(), params("a"))
	require.Error(t, err)

	fail.Store(false)
	v, err := q.Fetch(t.Context(), params("a"))
	require.NoError(t, err)
	assert.Equal(t, int32(2), v)

	v, err = q.Fetch(t.Context(), params("a"))
	require.NoError(t, err)
	assert.Equal(t, int32(2), v)
}
