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
	"net/url"
	"strings"
	"sync"

	"github.com/kitchenware/recipebook/pkg/recipe"
	"github.com/kitchenware/recipebook/pkg/urlstate"
)

// KeyEnter is the key name that submits the search.
const KeyEnter = "enter"

// View is the derived state rendered by the presentation layer.
type View struct {
	Recipes            []recipe.Recipe `json:"recipes" yaml:"recipes"`
	IsLoading          bool            `json:"isLoading" yaml:"isLoading"`
	IsError            bool            `json:"isError" yaml:"isError"`
	IsEmpty            bool            `json:"isEmpty" yaml:"isEmpty"`
	HasActiveFilters   bool            `json:"hasActiveFilters" yaml:"hasActiveFilters"`
	Heading            string          `json:"heading" yaml:"heading"`
	IsSearching        bool            `json:"isSearching" yaml:"isSearching"`
	SubmittedSearch    string          `json:"submittedSearch" yaml:"submittedSearch"`
	SearchTerm         string          `json:"searchTerm" yaml:"searchTerm"`
	IncludeIngredients []string        `json:"includeIngredients" yaml:"includeIngredients"`
	ExcludeIngredients []string        `json:"excludeIngredients" yaml:"excludeIngredients"`

	// Err is the error of the active fetch, if any.
	Err error `json:"-" yaml:"-"`
}

// ViewModel derives the home view from URL query parameters. The URL is the
// source of truth for committed state; the view model owns only the search
// text being edited.
type ViewModel struct {
	store   urlstate.Store
	queries *Queries

	mu         sync.Mutex
	searchTerm string
	seenQ      string
	// observed is the key of the active fetch at the last View. It is reset
	// on every commit so that re-submitting retries a failed fetch.
	observed string
}

// New returns a view model over store. The search text starts as the
// committed query.
func New(store urlstate.Store, queries *Queries) *ViewModel {
	q := store.Values().Get(recipe.ParamQuery)
	return &ViewModel{
		store:      store,
		queries:    queries,
		searchTerm: q,
		seenQ:      q,
	}
}

// State returns the committed state.
func (vm *ViewModel) State() State {
	return ParseState(vm.store.Values())
}

// SearchTerm returns the search text being edited.
func (vm *ViewModel) SearchTerm() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.resyncLocked(vm.State().Q)
	return vm.searchTerm
}

// SetSearchTerm updates the search text without committing it.
func (vm *ViewModel) SetSearchTerm(text string) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.resyncLocked(vm.State().Q)
	vm.searchTerm = text
}

// HandleSearch commits the trimmed search text as q, or removes q when the
// text is blank. Other parameters are kept.
func (vm *ViewModel) HandleSearch() {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	v := vm.store.Values()
	vm.resyncLocked(v.Get(recipe.ParamQuery))

	if term := strings.TrimSpace(vm.searchTerm); term != "" {
		v.Set(recipe.ParamQuery, term)
	} else {
		v.Del(recipe.ParamQuery)
	}
	vm.observed = ""
	vm.store.Replace(v)
}

// HandleClear resets the search text and removes every URL parameter.
func (vm *ViewModel) HandleClear() {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	vm.searchTerm = ""
	vm.seenQ = ""
	vm.observed = ""
	vm.store.Replace(url.Values{})
}

// SetIncludeIngredients commits the include filter. An empty list removes it.
func (vm *ViewModel) SetIncludeIngredients(items []string) {
	vm.setList(recipe.ParamIncludeIngredients, items)
}

// SetExcludeIngredients commits the exclude filter. An empty list removes it.
func (vm *ViewModel) SetExcludeIngredients(items []string) {
	vm.setList(recipe.ParamExcludeIngredients, items)
}

// OnKeyDown submits the search when key is KeyEnter.
func (vm *ViewModel) OnKeyDown(key string) {
	if key == KeyEnter {
		vm.HandleSearch()
	}
}

// View derives the current view. Only the query for the active mode is
// enabled; the other one is never fetched.
func (vm *ViewModel) View(ctx context.Context) View {
	st := vm.State()
	searching := st.IsSearching()
	vm.retryOnEnter(st)

	listRes := vm.queries.List.Use(ctx, st.ListParams(), !searching)
	searchRes := vm.queries.Search.Use(ctx, st.SearchParams(), searching)

	active := listRes
	if searching {
		active = searchRes
	}

	// A nil body counts as an empty result, not as missing data.
	recipes := active.Data
	if recipes == nil {
		recipes = []recipe.Recipe{}
	}

	vm.mu.Lock()
	vm.resyncLocked(st.Q)
	term := vm.searchTerm
	vm.mu.Unlock()

	return View{
		Recipes:            recipes,
		IsLoading:          active.IsLoading,
		IsError:            active.IsError,
		IsEmpty:            !active.IsLoading && !active.IsError && len(recipes) == 0,
		HasActiveFilters:   st.HasActiveFilters(),
		Heading:            Heading(st, active.IsLoading),
		IsSearching:        searching,
		SubmittedSearch:    st.Q,
		SearchTerm:         term,
		IncludeIngredients: nonNil(st.IncludeIngredients),
		ExcludeIngredients: nonNil(st.ExcludeIngredients),
		Err:                active.Err,
	}
}

// retryOnEnter drops a failed result for the active fetch the first time it
// is viewed after a commit or a URL change, so coming back to a failed search
// asks the backend again while repeated renders keep showing the error.
func (vm *ViewModel) retryOnEnter(st State) {
	key := st.ListParams().Key()
	if st.IsSearching() {
		key = st.SearchParams().Key()
	}

	vm.mu.Lock()
	entered := key != vm.observed
	vm.observed = key
	vm.mu.Unlock()

	if !entered {
		return
	}
	if st.IsSearching() {
		vm.queries.Search.Retry(st.SearchParams())
	} else {
		vm.queries.List.Retry(st.ListParams())
	}
}

func (vm *ViewModel) setList(key string, items []string) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	v := vm.store.Values()
	setList(v, key, items)
	vm.observed = ""
	vm.store.Replace(v)
}

// resyncLocked snaps the search text to q whenever the committed query has
// changed since the last read. Caller holds vm.mu.
func (vm *ViewModel) resyncLocked(q string) {
	if q != vm.seenQ {
		vm.searchTerm = q
		vm.seenQ = q
	}
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
