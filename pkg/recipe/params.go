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

package recipe

import (
	"net/url"
	"strconv"
)

// Query parameter names shared by the recipe API and the home view URL.
const (
	ParamQuery              = "q"
	ParamIncludeIngredients = "include_ingredients"
	ParamExcludeIngredients = "exclude_ingredients"
	ParamLimit              = "limit"
	ParamSkip               = "skip"
)

// ListParams are the parameters of the list endpoint.
type ListParams struct {
	Limit              int
	Skip               int
	IncludeIngredients []string
	ExcludeIngredients []string
}

// Query encodes the parameters. Empty filters are omitted.
func (p ListParams) Query() url.Values {
	v := url.Values{}
	v.Set(ParamLimit, strconv.Itoa(p.Limit))
	v.Set(ParamSkip, strconv.Itoa(p.Skip))
	setList(v, ParamIncludeIngredients, p.IncludeIngredients)
	setList(v, ParamExcludeIngredients, p.ExcludeIngredients)
	return v
}

// Key identifies the parameter tuple.
func (p ListParams) Key() string {
	return "list?" + p.Query().Encode()
}

// SearchParams are the parameters of the search endpoint.
type SearchParams struct {
	Q                  string
	IncludeIngredients []string
	ExcludeIngredients []string
}

// Query encodes the parameters. Empty filters are omitted.
func (p SearchParams) Query() url.Values {
	v := url.Values{}
	v.Set(ParamQuery, p.Q)
	setList(v, ParamIncludeIngredients, p.IncludeIngredients)
	setList(v, ParamExcludeIngredients, p.ExcludeIngredients)
	return v
}

// Key identifies the parameter tuple.
func (p SearchParams) Key() string {
	return "search?" + p.Query().Encode()
}

func setList(v url.Values, key string, items []string) {
	if s := JoinList(items); s != "" {
		v.Set(key, s)
	}
}
