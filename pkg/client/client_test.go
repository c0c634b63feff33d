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
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	rberrors "github.com/kitchenware/recipebook/pkg/errors"
	"github.com/kitchenware/recipebook/pkg/recipe"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := New(WithBaseURL(srv.URL + "/"))
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func codeOf(t *testing.T, err error) rberrors.ErrorCode {
	t.Helper()
	var se *rberrors.StructuredError
	require.True(t, errors.As(err, &se), "expected StructuredError, got %T", err)
	return se.Code
}

func TestNewRejectsBadURL(t *testing.T) {
	for _, u := range []string{"", "localhost", "://bad"} {
		_, err := New(WithBaseURL(u))
		assert.Error(t, err, "url %q", u)
	}
}

func TestBaseURLFromEnv(t *testing.T) {
	t.Setenv(EnvAPIURL, "")
	assert.Equal(t, "http://localhost:8001", BaseURLFromEnv())

	t.Setenv(EnvAPIURL, "https://api.example.com")
	assert.Equal(t, "https://api.example.com", BaseURLFromEnv())
}

func TestListRecipesOmitsEmptyFilters(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "100", q.Get("limit"))
		assert.Equal(t, "0", q.Get("skip"))
		assert.Equal(t, "egg,milk", q.Get("include_ingredients"))
		_, ok := q["exclude_ingredients"]
		assert.False(t, ok)
		writeJSON(w, http.StatusOK, []recipe.Recipe{{ID: 1, Title: "Crepes"}})
	})

	got, err := c.ListRecipes(t.Context(), recipe.ListParams{
		Limit:              100,
		IncludeIngredients: []string{"egg", "milk"},
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Crepes", got[0].Title)
}

func TestSearchRecipes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/search", r.URL.Path)
		assert.Equal(t, "soup", r.URL.Query().Get("q"))
		assert.Equal(t, "cream", r.URL.Query().Get("exclude_ingredients"))
		writeJSON(w, http.StatusOK, []recipe.Recipe{})
	})

	got, err := c.SearchRecipes(t.Context(), recipe.SearchParams{
		Q:                  "soup",
		ExcludeIngredients: []string{"cream"},
	})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetRecipeRejectsInvalidID(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	for _, id := range []int{0, -3} {
		_, err := c.GetRecipe(t.Context(), id)
		assert.Equal(t, rberrors.ErrCodeInvalidRequest, codeOf(t, err))
	}
	assert.False(t, called)
}

func TestGetRecipeRetriesOnce(t *testing.T) {
	tests := []struct {
		name     string
		statuses []int
		wantErr  rberrors.ErrorCode
		calls    int32
	}{
		{"recovers after one failure", []int{http.StatusBadGateway, http.StatusOK}, "", 2},
		{"gives up after second failure", []int{http.StatusServiceUnavailable, http.StatusServiceUnavailable}, rberrors.ErrCodeUnavailable, 2},
		{"not found is not retried", []int{http.StatusNotFound}, rberrors.ErrCodeNotFound, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				n := calls.Add(1)
				status := tt.statuses[min(int(n), len(tt.statuses))-1]
				if status != http.StatusOK {
					writeJSON(w, status, map[string]string{"detail": http.StatusText(status)})
					return
				}
				writeJSON(w, status, recipe.Recipe{ID: 4, Title: "Stew"})
			})

			r, err := c.GetRecipe(t.Context(), 4)
			assert.Equal(t, tt.calls, calls.Load())
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, codeOf(t, err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Stew", r.Title)
		})
	}
}

func TestCreateRecipe(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/recipes/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Soup", body["title"])
		_, hasImages := body["image_urls"]
		assert.False(t, hasImages)

		writeJSON(w, http.StatusCreated, recipe.Recipe{ID: 42, Title: "Soup"})
	})

	out, err := c.CreateRecipe(t.Context(), recipe.Input{
		Title:       "Soup",
		Difficulty:  recipe.DifficultyEasy,
		Cuisine:     ptr.To("french"),
		Ingredients: []string{"leek"},
		ImageURLs:   []string{"ignored.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, 42, out.ID)
}

func TestUpdateRecipeSendsEmptyImageList(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []any{}, body["image_urls"])
		writeJSON(w, http.StatusOK, recipe.Recipe{ID: 7, ImageURLs: []string{}})
	})

	_, err := c.UpdateRecipe(t.Context(), 7, recipe.Input{Title: "Soup", ImageURLs: []string{}})
	require.NoError(t, err)
}

func TestUpdateAndDeleteRecipe(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/7", r.URL.Path)
		switch r.Method {
		case http.MethodPut:
			var in recipe.Input
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			assert.Equal(t, []string{"b.jpg", "a.jpg"}, in.ImageURLs)
			writeJSON(w, http.StatusOK, recipe.Recipe{ID: 7, ImageURLs: in.ImageURLs})
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	})

	out, err := c.UpdateRecipe(t.Context(), 7, recipe.Input{ImageURLs: []string{"b.jpg", "a.jpg"}})
	require.NoError(t, err)
	assert.Equal(t, "b.jpg", out.CoverImage())

	require.NoError(t, c.DeleteRecipe(t.Context(), 7))
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		code    rberrors.ErrorCode
		message string
	}{
		{
			name:    "validation list",
			status:  http.StatusUnprocessableEntity,
			body:    `{"detail":[{"loc":["body","title"],"msg":"field required","type":"missing"}]}`,
			code:    rberrors.ErrCodeInvalidRequest,
			message: "title: field required",
		},
		{
			name:    "validation numeric loc",
			status:  http.StatusUnprocessableEntity,
			body:    `{"detail":[{"loc":["body","ingredients",0],"msg":"empty","type":"value_error"}]}`,
			code:    rberrors.ErrCodeInvalidRequest,
			message: "0: empty",
		},
		{
			name:    "validation string",
			status:  http.StatusUnprocessableEntity,
			body:    `{"detail":"too many images"}`,
			code:    rberrors.ErrCodeInvalidRequest,
			message: "too many images",
		},
		{
			name:    "validation empty list",
			status:  http.StatusUnprocessableEntity,
			body:    `{"detail":[]}`,
			code:    rberrors.ErrCodeInvalidRequest,
			message: "Validation failed",
		},
		{
			name:    "not found",
			status:  http.StatusNotFound,
			body:    `{"detail":"Recipe not found"}`,
			code:    rberrors.ErrCodeNotFound,
			message: "Recipe not found",
		},
		{
			name:    "rate limited",
			status:  http.StatusTooManyRequests,
			body:    ``,
			code:    rberrors.ErrCodeRateLimitExceeded,
			message: "get failed: Too Many Requests",
		},
		{
			name:    "server error",
			status:  http.StatusBadGateway,
			body:    `<html>bad gateway</html>`,
			code:    rberrors.ErrCodeUnavailable,
			message: "get failed: Bad Gateway",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := c.GetRecipe(t.Context(), 1)
			require.Error(t, err)

			var se *rberrors.StructuredError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.code, se.Code)
			assert.Equal(t, tt.message, se.Message)
			assert.Equal(t, tt.status, se.Context["status"])
		})
	}
}

func TestTransportErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c, err := New(WithBaseURL(srv.URL))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
	defer cancel()
	_, err = c.ListRecipes(ctx, recipe.ListParams{Limit: 100})
	assert.Equal(t, rberrors.ErrCodeTimeout, codeOf(t, err))

	down, err := New(WithBaseURL("http://127.0.0.1:1"))
	require.NoError(t, err)
	_, err = down.ListRecipes(t.Context(), recipe.ListParams{})
	assert.Equal(t, rberrors.ErrCodeUnavailable, codeOf(t, err))
}

func TestUploadImages(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/3/images", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		files := r.MultipartForm.File[UploadField]
		require.Len(t, files, 2)
		assert.Equal(t, "a.png", files[0].Filename)
		writeJSON(w, http.StatusOK, recipe.Recipe{ID: 3, ImageURLs: []string{"/a.png", "/b.png"}})
	})

	out, err := c.UploadImages(t.Context(), 3, []Image{
		{Name: "a.png", ContentType: "image/png", Data: []byte("a")},
		{Name: "b.png", Data: []byte("b")},
	})
	require.NoError(t, err)
	assert.Len(t, out.ImageURLs, 2)
}

func TestUploadImagesLimits(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := c.UploadImages(t.Context(), 3, nil)
	assert.Equal(t, rberrors.ErrCodeInvalidRequest, codeOf(t, err))

	_, err = c.UploadImages(t.Context(), 3, make([]Image, 6))
	assert.Equal(t, rberrors.ErrCodeInvalidRequest, codeOf(t, err))
}

func TestLoadImages(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "cover.txt")
	require.NoError(t, os.WriteFile(p, []byte("plain text"), 0o600))

	imgs, err := LoadImages(t.Context(), []string{p})
	require.NoError(t, err)
	require.Len(t, imgs, 1)
	assert.Equal(t, "cover.txt", imgs[0].Name)
	assert.True(t, strings.HasPrefix(imgs[0].ContentType, "text/plain"))

	_, err = LoadImages(t.Context(), []string{filepath.Join(dir, "missing.jpg")})
	assert.Error(t, err)
}
