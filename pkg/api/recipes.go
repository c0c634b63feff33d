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
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/kitchenware/recipebook/pkg/client"
	"github.com/kitchenware/recipebook/pkg/defaults"
	rberrors "github.com/kitchenware/recipebook/pkg/errors"
	"github.com/kitchenware/recipebook/pkg/recipe"
	"github.com/kitchenware/recipebook/pkg/serializer"
	"github.com/kitchenware/recipebook/pkg/server"
)

// maxBodyBytes bounds JSON and YAML request bodies.
const maxBodyBytes = 1 << 20

// HandleGetRecipe returns a single recipe.
func (h *Handler) HandleGetRecipe(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.RecipeHandlerTimeout)
	defer cancel()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	rec, err := h.backend.GetRecipe(ctx, id)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to get recipe", map[string]any{"id": id})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, rec)
}

// HandleCreateRecipe validates a recipe (JSON or YAML body) and creates it.
func (h *Handler) HandleCreateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.RecipeHandlerTimeout)
	defer cancel()

	in, ok := decodeInput(w, r)
	if !ok {
		return
	}

	rec, err := h.backend.CreateRecipe(ctx, *in)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to create recipe", nil)
		return
	}
	h.queries.Invalidate()

	w.Header().Set("Location", fmt.Sprintf("%s/%d", RecipesPath, rec.ID))
	serializer.RespondJSON(w, http.StatusCreated, rec)
}

// HandleUpdateRecipe validates a recipe and replaces the stored one.
func (h *Handler) HandleUpdateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.RecipeHandlerTimeout)
	defer cancel()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	in, ok := decodeInput(w, r)
	if !ok {
		return
	}

	rec, err := h.backend.UpdateRecipe(ctx, id, *in)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to update recipe", map[string]any{"id": id})
		return
	}
	h.queries.Invalidate()

	serializer.RespondJSON(w, http.StatusOK, rec)
}

// HandleDeleteRecipe deletes a recipe.
func (h *Handler) HandleDeleteRecipe(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.RecipeHandlerTimeout)
	defer cancel()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.backend.DeleteRecipe(ctx, id); err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to delete recipe", map[string]any{"id": id})
		return
	}
	h.queries.Invalidate()

	w.WriteHeader(http.StatusNoContent)
}

// HandleUploadImages forwards multipart image files to the recipe API. The
// total number of images on the recipe may not exceed the image cap.
func (h *Handler) HandleUploadImages(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.UploadHandlerTimeout)
	defer cancel()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, defaults.MaxUploadBytes)
	if err := r.ParseMultipartForm(defaults.MaxUploadBytes); err != nil {
		server.WriteError(w, r, http.StatusBadRequest, rberrors.ErrCodeInvalidRequest,
			"Invalid multipart body", false, map[string]any{"error": err.Error()})
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	files := r.MultipartForm.File[client.UploadField]
	if len(files) == 0 {
		server.WriteError(w, r, http.StatusBadRequest, rberrors.ErrCodeInvalidRequest,
			"No images provided", false, map[string]any{"field": client.UploadField})
		return
	}

	existing, err := h.backend.GetRecipe(ctx, id)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to get recipe", map[string]any{"id": id})
		return
	}
	if _, dropped := recipe.CapImages(len(existing.ImageURLs), len(files), defaults.MaxRecipeImages); dropped {
		server.WriteError(w, r, http.StatusBadRequest, rberrors.ErrCodeInvalidRequest,
			fmt.Sprintf("Max %d images allowed", defaults.MaxRecipeImages), false, map[string]any{
				"existing": len(existing.ImageURLs),
				"uploaded": len(files),
			})
		return
	}

	images := make([]client.Image, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			server.WriteErrorFromErr(w, r, err, "Failed to read upload", nil)
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			server.WriteErrorFromErr(w, r, err, "Failed to read upload", nil)
			return
		}
		contentType := fh.Header.Get("Content-Type")
		if contentType == "" || contentType == "application/octet-stream" {
			contentType = http.DetectContentType(data)
		}
		images = append(images, client.Image{
			Name:        fh.Filename,
			ContentType: contentType,
			Data:        data,
		})
	}

	rec, err := h.backend.UploadImages(ctx, id, images)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to upload images", map[string]any{"id": id})
		return
	}
	h.queries.Invalidate()

	serializer.RespondJSON(w, http.StatusOK, rec)
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.PathValue("id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		server.WriteError(w, r, http.StatusBadRequest, rberrors.ErrCodeInvalidRequest,
			"Invalid recipe id", false, map[string]any{"id": raw})
		return 0, false
	}
	return id, true
}

// decodeInput reads a recipe from the body in the format named by
// Content-Type, normalizes it and validates it.
func decodeInput(w http.ResponseWriter, r *http.Request) (*recipe.Input, bool) {
	defer r.Body.Close()

	reader, err := serializer.NewReader(serializer.FormatFromContentType(r.Header.Get("Content-Type")),
		http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Unsupported content type", nil)
		return nil, false
	}

	var in recipe.Input
	if err := reader.Deserialize(&in); err != nil {
		server.WriteError(w, r, http.StatusBadRequest, rberrors.ErrCodeInvalidRequest,
			"Invalid recipe body", false, map[string]any{"error": err.Error()})
		return nil, false
	}

	in.Normalize()
	if err := in.Validate(); err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid recipe", nil)
		return nil, false
	}
	return &in, true
}
