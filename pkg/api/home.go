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
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/kitchenware/recipebook/pkg/defaults"
	rberrors "github.com/kitchenware/recipebook/pkg/errors"
	"github.com/kitchenware/recipebook/pkg/home"
	"github.com/kitchenware/recipebook/pkg/serializer"
	"github.com/kitchenware/recipebook/pkg/server"
	"github.com/kitchenware/recipebook/pkg/urlstate"
)

// SearchRequest is the body of POST /v1/home/search. Current is the home URL
// the search was typed on; its filters are preserved.
type SearchRequest struct {
	Term    string `json:"term"`
	Current string `json:"current,omitempty"`
}

// FiltersRequest is the body of POST /v1/home/filters. A nil list leaves that
// filter unchanged; an empty list removes it.
type FiltersRequest struct {
	Include *[]string `json:"include,omitempty"`
	Exclude *[]string `json:"exclude,omitempty"`
	Current string    `json:"current,omitempty"`
}

// HandleHome returns the settled home view for the filters in the request URL.
// A failed fetch is reported in the view (isError) rather than as an HTTP error.
func (h *Handler) HandleHome(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.HomeHandlerTimeout)
	defer cancel()

	vm := home.New(urlstate.FromRequest(r), h.queries)

	view, err := home.WaitSettled(ctx, vm, h.settleTimeout)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to load recipes", nil)
		return
	}

	if view.IsError {
		slog.Warn("home fetch failed",
			"requestID", server.RequestID(r.Context()),
			"query", r.URL.RawQuery,
			"error", view.Err)
	}

	w.Header().Set("Cache-Control", "no-cache")
	serializer.RespondJSON(w, http.StatusOK, home.NewDocument(view, h.version))
}

// HandleSearch commits the submitted search term and redirects to the
// resulting home URL.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	store, ok := currentStore(w, r, req.Current)
	if !ok {
		return
	}

	vm := home.New(store, h.queries)
	vm.SetSearchTerm(req.Term)
	vm.OnKeyDown(home.KeyEnter)

	http.Redirect(w, r, store.Location(), http.StatusSeeOther)
}

// HandleFilters commits ingredient filters and redirects to the resulting
// home URL. The submitted search is kept.
func (h *Handler) HandleFilters(w http.ResponseWriter, r *http.Request) {
	var req FiltersRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	store, ok := currentStore(w, r, req.Current)
	if !ok {
		return
	}

	vm := home.New(store, h.queries)
	if req.Include != nil {
		vm.SetIncludeIngredients(*req.Include)
	}
	if req.Exclude != nil {
		vm.SetExcludeIngredients(*req.Exclude)
	}

	http.Redirect(w, r, store.Location(), http.StatusSeeOther)
}

// HandleClear removes the search and all filters.
func (h *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	store := urlstate.NewRequest(HomePath, nil)
	home.New(store, h.queries).HandleClear()
	http.Redirect(w, r, store.Location(), http.StatusSeeOther)
}

// currentStore parses the caller's current home URL. Only its query is used;
// the redirect always targets HomePath.
func currentStore(w http.ResponseWriter, r *http.Request, current string) (*urlstate.Request, bool) {
	if current == "" {
		return urlstate.NewRequest(HomePath, nil), true
	}
	parsed, err := urlstate.Parse(current)
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, rberrors.ErrCodeInvalidRequest,
			"Invalid current URL", false, map[string]any{
				"current": current,
				"error":   err.Error(),
			})
		return nil, false
	}
	return urlstate.NewRequest(HomePath, parsed.Values()), true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	defer r.Body.Close()

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		server.WriteError(w, r, http.StatusBadRequest, rberrors.ErrCodeInvalidRequest,
			"Invalid request body", false, map[string]any{
				"error": err.Error(),
			})
		return false
	}
	return true
}
