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

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/kitchenware/recipebook/pkg/client"
	"github.com/kitchenware/recipebook/pkg/defaults"
	"github.com/kitchenware/recipebook/pkg/home"
	"github.com/kitchenware/recipebook/pkg/query"
	"github.com/kitchenware/recipebook/pkg/recipe"
)

// Route paths served by Handler.
const (
	HomePath        = "/v1/home"
	HomeSearchPath  = "/v1/home/search"
	HomeFiltersPath = "/v1/home/filters"
	HomeClearPath   = "/v1/home/clear"
	RecipesPath     = "/v1/recipes"
)

// Backend is the recipe API the handlers proxy to. *client.Client satisfies it.
type Backend interface {
	home.Source
	GetRecipe(ctx context.Context, id int) (*recipe.Recipe, error)
	CreateRecipe(ctx context.Context, in recipe.Input) (*recipe.Recipe, error)
	UpdateRecipe(ctx context.Context, id int, in recipe.Input) (*recipe.Recipe, error)
	DeleteRecipe(ctx context.Context, id int) error
	UploadImages(ctx context.Context, id int, images []client.Image) (*recipe.Recipe, error)
}

// Handler serves the home view and the recipe endpoints. The list and search
// queries are shared by all requests and invalidated after every successful
// mutation.
type Handler struct {
	backend       Backend
	queries       *home.Queries
	version       string
	settleTimeout time.Duration
}

// HandlerOption configures a Handler.
type HandlerOption func(*handlerOptions)

type handlerOptions struct {
	version       string
	settleTimeout time.Duration
	queryOpts     []query.Option
}

// WithVersion sets the version recorded in response headers.
func WithVersion(version string) HandlerOption {
	return func(o *handlerOptions) {
		o.version = version
	}
}

// WithSettleTimeout bounds how long GET /v1/home waits for recipes.
func WithSettleTimeout(d time.Duration) HandlerOption {
	return func(o *handlerOptions) {
		if d > 0 {
			o.settleTimeout = d
		}
	}
}

// WithQueryOptions replaces the options of the list and search queries.
func WithQueryOptions(opts ...query.Option) HandlerOption {
	return func(o *handlerOptions) {
		o.queryOpts = opts
	}
}

// NewHandler returns a Handler over backend.
func NewHandler(backend Backend, opts ...HandlerOption) *Handler {
	o := handlerOptions{
		settleTimeout: defaults.HomeSettleTimeout,
		queryOpts: []query.Option{
			query.WithTTL(defaults.HomeCacheTTL),
			query.WithTimeout(defaults.HTTPClientTimeout),
		},
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Handler{
		backend:       backend,
		queries:       home.NewQueries(backend, o.queryOpts...),
		version:       o.version,
		settleTimeout: o.settleTimeout,
	}
}

// Routes returns the application routes keyed by ServeMux pattern.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"GET " + HomePath:                      h.HandleHome,
		"POST " + HomeSearchPath:               h.HandleSearch,
		"POST " + HomeFiltersPath:              h.HandleFilters,
		"POST " + HomeClearPath:                h.HandleClear,
		"POST " + RecipesPath:                  h.HandleCreateRecipe,
		"GET " + RecipesPath + "/{id}":         h.HandleGetRecipe,
		"PUT " + RecipesPath + "/{id}":         h.HandleUpdateRecipe,
		"DELETE " + RecipesPath + "/{id}":      h.HandleDeleteRecipe,
		"POST " + RecipesPath + "/{id}/images": h.HandleUploadImages,
	}
}
