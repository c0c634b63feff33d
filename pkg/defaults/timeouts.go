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

import "time"

// Handler timeouts for HTTP request processing.
const (
	// HomeHandlerTimeout is the timeout for rendering a home view, including
	// the time spent waiting for the active recipe query to settle.
	HomeHandlerTimeout = 30 * time.Second

	// HomeSettleTimeout is the internal wait for the active query.
	// Should be less than HomeHandlerTimeout to allow error handling.
	HomeSettleTimeout = 25 * time.Second

	// HomeSettlePollInterval is how often a settling view is re-read.
	HomeSettlePollInterval = 20 * time.Millisecond

	// RecipeHandlerTimeout is the timeout for single recipe CRUD requests.
	RecipeHandlerTimeout = 30 * time.Second

	// UploadHandlerTimeout is the timeout for image uploads.
	// Longer than recipe CRUD due to multipart bodies.
	UploadHandlerTimeout = 60 * time.Second

	// HomeCacheTTL is how long a settled list or search result is reused.
	HomeCacheTTL = 30 * time.Second
)

// Single recipe fetches are retried once on a retryable failure.
const (
	GetAttempts   = 2
	GetRetryDelay = 200 * time.Millisecond
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 60 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// HTTP client timeouts for outbound requests.
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second

	// HTTPExpectContinueTimeout is the timeout for Expect: 100-continue.
	HTTPExpectContinueTimeout = 1 * time.Second
)

// CLI timeouts for command-line operations.
const (
	// CLIRequestTimeout bounds a single CLI command against the recipe API.
	CLIRequestTimeout = 2 * time.Minute
)
