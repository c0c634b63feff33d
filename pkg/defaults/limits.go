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

package defaults

// Recipe listing and form limits.
const (
	// ListPageSize is the fixed page size used when listing recipes.
	// Pagination is not implemented, so the offset is always zero.
	ListPageSize = 100

	// ListOffset is the fixed offset used when listing recipes.
	ListOffset = 0

	// MaxRecipeImages is the maximum number of images a recipe may carry,
	// counting both existing URLs and newly uploaded files.
	MaxRecipeImages = 5

	// MaxIngredients is the maximum number of ingredients per recipe.
	MaxIngredients = 100

	// MaxUploadBytes caps the multipart body accepted for image uploads.
	MaxUploadBytes = 32 << 20
)

// APIBaseURL is the recipe API address used when nothing else is configured.
const APIBaseURL = "http://localhost:8001"
