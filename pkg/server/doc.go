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

// Package server provides the HTTP server used by recipebookd.
//
// Application routes are supplied as a map of ServeMux patterns to handlers
// and are wrapped with a shared middleware chain:
//
//   - Prometheus request metrics (recipebook_http_*)
//   - API version negotiation via "application/vnd.recipebook.v1+json"
//   - request IDs (X-Request-Id, generated when missing or not a UUID)
//   - panic recovery
//   - token bucket rate limiting (golang.org/x/time/rate)
//   - debug request logging
//
// System endpoints are registered without the chain:
//
//	GET /         server name, version and routes
//	GET /health   liveness
//	GET /ready    readiness, 503 until the server is serving
//	GET /metrics  Prometheus metrics
//
// Errors are returned as ErrorResponse bodies. WriteErrorFromErr maps a
// pkg/errors StructuredError to its HTTP status.
//
// Usage:
//
//	s := server.New(
//	    server.WithName("recipebookd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "GET /v1/home": api.HandleHome,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// PORT, RATE_LIMIT and SHUTDOWN_TIMEOUT_SECONDS override the defaults.
package server
