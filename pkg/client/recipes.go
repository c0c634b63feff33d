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

package client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"k8s.io/apimachinery/pkg/util/wait"

	"github.com/kitchenware/recipebook/pkg/defaults"
	rberrors "github.com/kitchenware/recipebook/pkg/errors"
	"github.com/kitchenware/recipebook/pkg/recipe"
)

const recipesPath = "/recipes/"

func recipePath(id int) string {
	return fmt.Sprintf("/recipes/%d", id)
}

func checkID(op string, id int) error {
	if id <= 0 {
		return rberrors.NewWithContext(rberrors.ErrCodeInvalidRequest,
			"recipe id must be a positive integer", map[string]any{"operation": op, "id": id})
	}
	return nil
}

// ListRecipes returns a page of recipes, optionally filtered by ingredients.
func (c *Client) ListRecipes(ctx context.Context, p recipe.ListParams) ([]recipe.Recipe, error) {
	var out []recipe.Recipe
	if err := c.do(ctx, "list", http.MethodGet, recipesPath, p.Query(), nil, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchRecipes returns recipes matching a free-text query.
func (c *Client) SearchRecipes(ctx context.Context, p recipe.SearchParams) ([]recipe.Recipe, error) {
	var out []recipe.Recipe
	if err := c.do(ctx, "search", http.MethodGet, "/recipes/search", p.Query(), nil, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRecipe returns a single recipe. A failure with a retryable code is
// retried once after defaults.GetRetryDelay.
func (c *Client) GetRecipe(ctx context.Context, id int) (*recipe.Recipe, error) {
	if err := checkID("get", id); err != nil {
		return nil, err
	}

	var (
		out     recipe.Recipe
		lastErr error
	)
	backoff := wait.Backoff{Steps: defaults.GetAttempts, Duration: defaults.GetRetryDelay, Factor: 1}
	err := wait.ExponentialBackoffWithContext(ctx, backoff, func(ctx context.Context) (bool, error) {
		err := c.do(ctx, "get", http.MethodGet, recipePath(id), nil, nil, "", &out)
		switch {
		case err == nil:
			return true, nil
		case rberrors.IsRetryable(rberrors.CodeOf(err)):
			lastErr = err
			slog.Debug("retrying recipe fetch", "id", id, "error", err)
			return false, nil
		default:
			return false, err
		}
	})
	if err != nil {
		if !wait.Interrupted(err) {
			return nil, err
		}
		if lastErr != nil {
			return nil, lastErr
		}
		return nil, rberrors.WrapWithContext(rberrors.ErrCodeTimeout, "get cancelled", err,
			map[string]any{"operation": "get", "id": id})
	}
	return &out, nil
}

// CreateRecipe creates a recipe and returns it with its assigned ID.
// Image URLs are not part of a create request; upload files afterwards.
func (c *Client) CreateRecipe(ctx context.Context, in recipe.Input) (*recipe.Recipe, error) {
	in.ImageURLs = nil
	var out recipe.Recipe
	if err := c.doJSON(ctx, "create", http.MethodPost, recipesPath, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRecipe replaces a recipe. ImageURLs carries the retained images in
// display order.
func (c *Client) UpdateRecipe(ctx context.Context, id int, in recipe.Input) (*recipe.Recipe, error) {
	if err := checkID("update", id); err != nil {
		return nil, err
	}
	var out recipe.Recipe
	if err := c.doJSON(ctx, "update", http.MethodPut, recipePath(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRecipe removes a recipe.
func (c *Client) DeleteRecipe(ctx context.Context, id int) error {
	if err := checkID("delete", id); err != nil {
		return err
	}
	return c.do(ctx, "delete", http.MethodDelete, recipePath(id), nil, nil, "", nil)
}
