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

	"github.com/kitchenware/recipebook/pkg/query"
	"github.com/kitchenware/recipebook/pkg/recipe"
)

// Source loads recipes for the two fetch modes.
type Source interface {
	ListRecipes(ctx context.Context, p recipe.ListParams) ([]recipe.Recipe, error)
	SearchRecipes(ctx context.Context, p recipe.SearchParams) ([]recipe.Recipe, error)
}

// Queries holds the list and search queries shared by view models.
type Queries struct {
	List   *query.Query[recipe.ListParams, []recipe.Recipe]
	Search *query.Query[recipe.SearchParams, []recipe.Recipe]
}

// NewQueries builds the list and search queries over src.
func NewQueries(src Source, opts ...query.Option) *Queries {
	return &Queries{
		List:   query.New("list", src.ListRecipes, opts...),
		Search: query.New("search", src.SearchRecipes, opts...),
	}
}

// Invalidate drops cached results of both queries.
func (q *Queries) Invalidate() {
	q.List.Invalidate()
	q.Search.Invalidate()
}

// Changed returns a channel closed when either query settles or is invalidated.
func (q *Queries) Changed(ctx context.Context) <-chan struct{} {
	list, search := q.List.Changed(), q.Search.Changed()
	ch := make(chan struct{})
	go func() {
		defer close(ch)
		select {
		case <-list:
		case <-search:
		case <-ctx.Done():
		}
	}()
	return ch
}
