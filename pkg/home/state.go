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
	"net/url"

	"github.com/kitchenware/recipebook/pkg/defaults"
	"github.com/kitchenware/recipebook/pkg/recipe"
)

// State is the committed search and filter state carried by the URL.
type State struct {
	Q                  string   `json:"q,omitempty" yaml:"q,omitempty"`
	IncludeIngredients []string `json:"includeIngredients,omitempty" yaml:"includeIngredients,omitempty"`
	ExcludeIngredients []string `json:"excludeIngredients,omitempty" yaml:"excludeIngredients,omitempty"`
}

// ParseState reads the state from URL query parameters.
func ParseState(v url.Values) State {
	return State{
		Q:                  v.Get(recipe.ParamQuery),
		IncludeIngredients: recipe.ParseList(v.Get(recipe.ParamIncludeIngredients)),
		ExcludeIngredients: recipe.ParseList(v.Get(recipe.ParamExcludeIngredients)),
	}
}

// Encode renders the state as URL query parameters, omitting empty values.
func (s State) Encode() url.Values {
	v := url.Values{}
	if s.Q != "" {
		v.Set(recipe.ParamQuery, s.Q)
	}
	setList(v, recipe.ParamIncludeIngredients, s.IncludeIngredients)
	setList(v, recipe.ParamExcludeIngredients, s.ExcludeIngredients)
	return v
}

// IsSearching reports whether search mode is active.
func (s State) IsSearching() bool {
	return s.Q != ""
}

// HasActiveFilters reports whether either ingredient filter is non-empty.
func (s State) HasActiveFilters() bool {
	return len(s.IncludeIngredients) > 0 || len(s.ExcludeIngredients) > 0
}

// ListParams returns the list request for this state.
func (s State) ListParams() recipe.ListParams {
	return recipe.ListParams{
		Limit:              defaults.ListPageSize,
		Skip:               defaults.ListOffset,
		IncludeIngredients: s.IncludeIngredients,
		ExcludeIngredients: s.ExcludeIngredients,
	}
}

// SearchParams returns the search request for this state.
func (s State) SearchParams() recipe.SearchParams {
	return recipe.SearchParams{
		Q:                  s.Q,
		IncludeIngredients: s.IncludeIngredients,
		ExcludeIngredients: s.ExcludeIngredients,
	}
}

func setList(v url.Values, key string, items []string) {
	if s := recipe.JoinList(items); s != "" {
		v.Set(key, s)
	} else {
		v.Del(key)
	}
}
