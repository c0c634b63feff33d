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

// Package client is a typed client for the recipe REST API.
//
// The root URL defaults to http://localhost:8001 and can be overridden with
// the RECIPEBOOK_API_URL environment variable or WithBaseURL.
//
// Endpoints:
//
//	GET    /recipes/             ListRecipes
//	GET    /recipes/search       SearchRecipes
//	GET    /recipes/{id}         GetRecipe
//	POST   /recipes/             CreateRecipe
//	PUT    /recipes/{id}         UpdateRecipe
//	DELETE /recipes/{id}         DeleteRecipe
//	POST   /recipes/{id}/images  UploadImages (multipart field "files")
//
// Failures are returned as *errors.StructuredError. Validation errors (422)
// carry the first reported field as "field: message".
package client
