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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kitchenware/recipebook/pkg/defaults"
	rberrors "github.com/kitchenware/recipebook/pkg/errors"
)

const (
	// EnvAPIURL overrides the recipe API root URL.
	EnvAPIURL = "RECIPEBOOK_API_URL"

	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = "recipebook/1.0"

	maxErrorBody = 64 << 10
)

// Client calls the recipe REST API.
type Client struct {
	baseURL            string
	userAgent          string
	timeout            time.Duration
	insecureSkipVerify bool
	http               *http.Client
}

// BaseURLFromEnv returns the API URL from the environment or the default.
func BaseURLFromEnv() string {
	if v := strings.TrimSpace(os.Getenv(EnvAPIURL)); v != "" {
		return v
	}
	return defaults.APIBaseURL
}

// New returns a Client. Without options it talks to BaseURLFromEnv.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:   BaseURLFromEnv(),
		userAgent: DefaultUserAgent,
		timeout:   defaults.HTTPClientTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	u, err := url.Parse(strings.TrimRight(c.baseURL, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, rberrors.NewWithContext(rberrors.ErrCodeInvalidRequest,
			"invalid recipe API URL", map[string]any{"url": c.baseURL})
	}
	c.baseURL = u.String()

	if c.http == nil {
		c.http = &http.Client{
			Timeout:   c.timeout,
			Transport: newTransport(c.insecureSkipVerify),
		}
	}

	return c, nil
}

// BaseURL returns the API root URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) endpoint(path string, query url.Values) string {
	s := c.baseURL + path
	if len(query) > 0 {
		s += "?" + query.Encode()
	}
	return s
}

// do sends a request and decodes a JSON response into out when out is non-nil.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values,
	body io.Reader, contentType string, out any) error {

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), body)
	if err != nil {
		return rberrors.Wrap(rberrors.ErrCodeInternal, fmt.Sprintf("%s: failed to build request", op), err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	clientRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		clientRequestsTotal.WithLabelValues(op, "error").Inc()
		slog.Debug("recipe API request failed", "operation", op, "url", req.URL.String(), "error", err)
		return transportError(op, err)
	}
	defer resp.Body.Close()

	clientRequestsTotal.WithLabelValues(op, strconv.Itoa(resp.StatusCode)).Inc()
	slog.Debug("recipe API response",
		"operation", op,
		"method", method,
		"url", req.URL.String(),
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return statusError(op, resp.StatusCode, data)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return rberrors.Wrap(rberrors.ErrCodeInternal, fmt.Sprintf("%s: failed to decode response", op), err)
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, op, method, path string, in, out any) error {
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return rberrors.Wrap(rberrors.ErrCodeInternal, fmt.Sprintf("%s: failed to encode request", op), err)
	}
	return c.do(ctx, op, method, path, nil, buf, "application/json", out)
}
