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

package home

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitchenware/recipebook/pkg/defaults"
	"github.com/kitchenware/recipebook/pkg/query"
	"github.com/kitchenware/recipebook/pkg/recipe"
	"github.com/kitchenware/recipebook/pkg/urlstate"
)

type fakeSource struct {
	listCalls   atomic.Int32
	searchCalls atomic.Int32

	mu         sync.Mutex
	lastList   recipe.ListParams
	lastSearch recipe.SearchParams
	gate       chan struct{}
	recipes    []recipe.Recipe
	err        error
}

func (f *fakeSource) wait() {
	f.mu.Lock()
	gate := f.gate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
}

func (f *fakeSource) ListRecipes(ctx context.Context, p recipe.ListParams) ([]recipe.Recipe, error) {
	f.listCalls.Add(1)
	f.mu.Lock()
	f.lastList = p
	recipes, err := f.recipes, f.err
	f.mu.Unlock()
	f.wait()
	return recipes, err
}

func (f *fakeSource) SearchRecipes(ctx context.Context, p recipe.SearchParams) ([]recipe.Recipe, error) {
	f.searchCalls.Add(1)
	f.mu.Lock()
	f.lastSearch = p
	recipes, err := f.recipes, f.err
	f.mu.Unlock()
	f.wait()
	return recipes, err
}

func newVM(t *testing.T, raw string, src *fakeSource) (*ViewModel, *urlstate.History) {
	t.Helper()
	v, err := url.ParseQuery(raw)
	require.NoError(t, err)
	h := urlstate.NewHistory(v)
	return New(h, NewQueries(src)), h
}

func settle(t *testing.T, vm *ViewModel) View {
	t.Helper()
	v, err := WaitSettled(t.Context(), vm, 2*time.Second)
	require.NoError(t, err)
	return v
}

func TestListModeWhenNoQuery(t *testing.T) {
	for _, raw := range []string{"", "q=", "include_ingredients=egg"} {
		t.Run(raw, func(t *testing.T) {
			src := &fakeSource{}
			vm, _ := newVM(t, raw, src)

			v := settle(t, vm)
			assert.False(t, v.IsSearching)
			assert.Equal(t, int32(1), src.listCalls.Load())
			assert.Equal(t, int32(0), src.searchCalls.Load())

			src.mu.Lock()
			defer src.mu.Unlock()
			assert.Equal(t, 100, src.lastList.Limit)
			assert.Equal(t, 0, src.lastList.Skip)
		})
	}
}

func TestSearchModeWhenQuery(t *testing.T) {
	src := &fakeSource{}
	vm, _ := newVM(t, "q=soup&exclude_ingredients=nuts", src)

	v := settle(t, vm)
	assert.True(t, v.IsSearching)
	assert.Equal(t, "soup", v.SubmittedSearch)
	assert.Equal(t, int32(0), src.listCalls.Load())
	assert.Equal(t, int32(1), src.searchCalls.Load())

	src.mu.Lock()
	defer src.mu.Unlock()
	assert.Equal(t, "soup", src.lastSearch.Q)
	assert.Nil(t, src.lastSearch.IncludeIngredients)
	assert.Equal(t, []string{"nuts"}, src.lastSearch.ExcludeIngredients)
}

func TestHandleSearchTrims(t *testing.T) {
	src := &fakeSource{}
	vm, h := newVM(t, "include_ingredients=tomato", src)

	vm.SetSearchTerm("  pasta  ")
	assert.Equal(t, "", h.Values().Get("q"), "typing must not commit")

	vm.HandleSearch()
	assert.Equal(t, "pasta", h.Values().Get("q"))
	assert.Equal(t, "tomato", h.Values().Get("include_ingredients"))
	assert.Equal(t, "pasta", vm.SearchTerm())
}

func TestHandleSearchBlankRemovesQuery(t *testing.T) {
	for _, term := range []string{"", "   \t"} {
		src := &fakeSource{}
		vm, h := newVM(t, "q=soup&include_ingredients=egg", src)

		vm.SetSearchTerm(term)
		vm.HandleSearch()

		_, ok := h.Values()["q"]
		assert.False(t, ok, "term %q should remove q", term)
		assert.Equal(t, "egg", h.Values().Get("include_ingredients"))
	}
}

func TestOnKeyDown(t *testing.T) {
	src := &fakeSource{}
	vm, h := newVM(t, "", src)

	vm.SetSearchTerm("curry")
	vm.OnKeyDown("a")
	assert.Equal(t, "", h.Values().Get("q"))

	vm.OnKeyDown(KeyEnter)
	assert.Equal(t, "curry", h.Values().Get("q"))
}

func TestHandleClear(t *testing.T) {
	src := &fakeSource{}
	vm, h := newVM(t, "q=soup&include_ingredients=a&exclude_ingredients=b", src)

	vm.SetSearchTerm("soup and more")
	vm.HandleClear()

	assert.Empty(t, h.Values())
	assert.Equal(t, "", vm.SearchTerm())

	v := settle(t, vm)
	assert.False(t, v.IsSearching)
	assert.False(t, v.HasActiveFilters)
	assert.Equal(t, HeadingDefault, v.Heading)
}

func TestSetIngredients(t *testing.T) {
	src := &fakeSource{}
	vm, h := newVM(t, "", src)

	vm.SetIncludeIngredients([]string{"chicken", "rice"})
	assert.Equal(t, "chicken,rice", h.Values().Get("include_ingredients"))

	vm.SetExcludeIngredients([]string{"nuts"})
	assert.Equal(t, "nuts", h.Values().Get("exclude_ingredients"))

	vm.SetIncludeIngredients([]string{})
	_, ok := h.Values()["include_ingredients"]
	assert.False(t, ok)
	assert.Equal(t, "nuts", h.Values().Get("exclude_ingredients"))

	vm.SetExcludeIngredients(nil)
	assert.Empty(t, h.Values())
}

func TestHeadingWhileSearching(t *testing.T) {
	src := &fakeSource{gate: make(chan struct{})}
	vm, _ := newVM(t, "q=soup&include_ingredients=tomato", src)

	loading := vm.View(t.Context())
	require.True(t, loading.IsLoading)
	assert.Contains(t, loading.Heading, "soup")
	assert.False(t, loading.IsEmpty, "empty must be false while loading")

	close(src.gate)
	loaded := settle(t, vm)
	assert.Contains(t, loaded.Heading, "soup")
	assert.NotEqual(t, loading.Heading, loaded.Heading)
	assert.True(t, loaded.IsEmpty)
}

func TestFilteredHeading(t *testing.T) {
	src := &fakeSource{recipes: []recipe.Recipe{{ID: 1, Title: "Omelette"}}}
	vm, _ := newVM(t, "include_ingredients=egg", src)

	v := settle(t, vm)
	assert.True(t, v.HasActiveFilters)
	assert.Equal(t, HeadingFiltered, v.Heading)
	assert.NotEqual(t, HeadingDefault, v.Heading)
	assert.False(t, v.IsEmpty)
	assert.Len(t, v.Recipes, 1)
}

func TestIsEmptyFalseOnError(t *testing.T) {
	src := &fakeSource{err: errors.New("down")}
	vm, _ := newVM(t, "", src)

	v := settle(t, vm)
	assert.True(t, v.IsError)
	assert.False(t, v.IsEmpty)
	assert.Error(t, v.Err)
}

func (f *fakeSource) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func TestFailedSearchRetriedOnResubmit(t *testing.T) {
	src := &fakeSource{err: errors.New("down")}
	vm := New(urlstate.NewHistory(nil), NewQueries(src, query.WithTTL(defaults.HomeCacheTTL)))

	vm.SetSearchTerm("soup")
	vm.HandleSearch()
	require.True(t, settle(t, vm).IsError)

	// renders without a commit keep showing the failure
	v := vm.View(t.Context())
	assert.True(t, v.IsError)
	assert.Equal(t, int32(1), src.searchCalls.Load())

	src.setErr(nil)
	vm.OnKeyDown(KeyEnter)

	v = settle(t, vm)
	assert.False(t, v.IsError)
	assert.Equal(t, int32(2), src.searchCalls.Load())
}

func TestFailedSearchRetriedAfterClear(t *testing.T) {
	src := &fakeSource{err: errors.New("down")}
	vm := New(urlstate.NewHistory(nil), NewQueries(src, query.WithTTL(defaults.HomeCacheTTL)))

	vm.SetSearchTerm("soup")
	vm.HandleSearch()
	require.True(t, settle(t, vm).IsError)

	src.setErr(nil)
	vm.HandleClear()
	settle(t, vm)

	vm.SetSearchTerm("soup")
	vm.HandleSearch()

	v := settle(t, vm)
	assert.False(t, v.IsError)
	assert.Equal(t, int32(2), src.searchCalls.Load())
}

func TestFailedListRetriedOnNavigation(t *testing.T) {
	src := &fakeSource{err: errors.New("down")}
	vm, h := newVM(t, "", src)
	require.True(t, settle(t, vm).IsError)

	src.setErr(nil)
	vm.SetIncludeIngredients([]string{"egg"})
	require.False(t, settle(t, vm).IsError)

	require.True(t, h.Back())
	v := settle(t, vm)
	assert.False(t, v.IsError)
	assert.Equal(t, int32(3), src.listCalls.Load())
}

func TestNilResultIsEmpty(t *testing.T) {
	src := &fakeSource{}
	vm, _ := newVM(t, "", src)

	v := settle(t, vm)
	assert.NotNil(t, v.Recipes)
	assert.True(t, v.IsEmpty)
}

func TestIsEmptyFalseWhileReloading(t *testing.T) {
	src := &fakeSource{}
	vm, _ := newVM(t, "", src)

	v := settle(t, vm)
	require.True(t, v.IsEmpty)

	src.mu.Lock()
	src.gate = make(chan struct{})
	src.mu.Unlock()

	vm.SetIncludeIngredients([]string{"egg"})
	v = vm.View(t.Context())
	assert.True(t, v.IsLoading)
	assert.False(t, v.IsEmpty)

	close(src.gate)
}

func TestSearchTermResyncsOnNavigation(t *testing.T) {
	src := &fakeSource{}
	vm, h := newVM(t, "q=soup", src)
	assert.Equal(t, "soup", vm.SearchTerm())

	vm.SetSearchTerm("pasta")
	vm.HandleSearch()
	assert.Equal(t, "pasta", vm.SearchTerm())

	vm.SetSearchTerm("half typed")
	require.True(t, h.Back())
	assert.Equal(t, "soup", vm.SearchTerm())

	require.True(t, h.Forward())
	assert.Equal(t, "pasta", vm.SearchTerm())
}

func TestSearchTermKeptWhenOtherParamsChange(t *testing.T) {
	src := &fakeSource{}
	vm, _ := newVM(t, "q=soup", src)

	vm.SetSearchTerm("soup with")
	vm.SetIncludeIngredients([]string{"leek"})
	assert.Equal(t, "soup with", vm.SearchTerm())
}

func TestModeSwitchNeverShowsStaleResults(t *testing.T) {
	src := &fakeSource{recipes: []recipe.Recipe{{ID: 1}}}
	vm, _ := newVM(t, "", src)
	settle(t, vm)

	vm.SetSearchTerm("new")
	vm.HandleSearch()

	src.mu.Lock()
	src.gate = make(chan struct{})
	src.mu.Unlock()

	v := vm.View(t.Context())
	assert.True(t, v.IsLoading)
	assert.Empty(t, v.Recipes)
	close(src.gate)
}

func TestStateRoundTrip(t *testing.T) {
	s := State{
		Q:                  "soup",
		IncludeIngredients: []string{"tomato", "basil"},
		ExcludeIngredients: []string{"cream"},
	}
	assert.Equal(t, s, ParseState(s.Encode()))
	assert.Empty(t, State{}.Encode())
}

func TestHeadingPrecedence(t *testing.T) {
	tests := []struct {
		name    string
		state   State
		loading bool
		want    string
	}{
		{"searching loading", State{Q: "soup"}, true, `Searching for "soup"...`},
		{"searching loaded", State{Q: "soup", IncludeIngredients: []string{"a"}}, false, `Results for "soup"`},
		{"filtered", State{ExcludeIngredients: []string{"a"}}, true, HeadingFiltered},
		{"default", State{}, false, HeadingDefault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Heading(tt.state, tt.loading)
			assert.Equal(t, tt.want, got)
			assert.False(t, strings.Contains(got, "%"))
		})
	}
}

func TestWaitSettledTimeout(t *testing.T) {
	src := &fakeSource{gate: make(chan struct{})}
	defer close(src.gate)
	vm, _ := newVM(t, "", src)

	v, err := WaitSettled(t.Context(), vm, 50*time.Millisecond)
	require.Error(t, err)
	assert.True(t, v.IsLoading)
}
