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

// Package api wires the recipebookd routes onto pkg/server.
//
// Handler serves the home view over the recipe API and proxies recipe
// edits to it. The home view is driven entirely by URL parameters, so any
// search or filter combination is a bookmarkable GET:
//
//	GET    /v1/home?q=&include_ingredients=&exclude_ingredients=
//	POST   /v1/home/search        {"term": "...", "current": "/v1/home?..."}
//	POST   /v1/home/filters       {"include": [...], "exclude": [...], "current": "..."}
//	POST   /v1/home/clear
//	POST   /v1/recipes            recipe body, JSON or YAML
//	GET    /v1/recipes/{id}
//	PUT    /v1/recipes/{id}
//	DELETE /v1/recipes/{id}
//	POST   /v1/recipes/{id}/images  multipart "files", at most 5 images per recipe
//
// The POST /v1/home/* routes answer 303 See Other with the committed home
// URL. GET /v1/home waits for the active list or search query to settle and
// returns a HomeView document. When q is set only the search endpoint is
// queried; otherwise only the list endpoint is.
//
// Successful creates, updates, deletes and uploads invalidate the cached
// list and search results.
//
// Configuration:
//   - RECIPEBOOK_API_URL: recipe API base URL (default http://localhost:8001)
//   - PORT, RATE_LIMIT, SHUTDOWN_TIMEOUT_SECONDS: see pkg/server
//   - LOG_LEVEL: debug, info, warn, error
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/kitchenware/recipebook/pkg/api.version=1.0.0'"
package api
