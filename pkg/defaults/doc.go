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

// Package defaults provides centralized configuration constants for recipebook.
//
// This package defines timeout values, listing limits, and other configuration
// defaults used across the codebase. Centralizing these values ensures consistency
// and makes tuning easier.
//
// # Categories
//
//   - Handler timeouts: For HTTP request processing
//   - Server timeouts: For HTTP server configuration
//   - HTTP client timeouts: For outbound calls to the recipe API
//   - Limits: Page size, image and ingredient caps
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/kitchenware/recipebook/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.HomeHandlerTimeout)
//	defer cancel()
//
// # Timeout Guidelines
//
//   - HTTP handlers: 30s for views and CRUD, 60s for uploads
//   - Settling a view: always shorter than its handler timeout
//   - Server shutdown: 30s for graceful shutdown
package defaults
