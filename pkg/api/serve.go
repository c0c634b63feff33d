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
	"log/slog"

	"github.com/kitchenware/recipebook/pkg/client"
	"github.com/kitchenware/recipebook/pkg/logging"
	"github.com/kitchenware/recipebook/pkg/server"
)

const (
	name           = "recipebookd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/kitchenware/recipebook/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// The recipe API location is read from RECIPEBOOK_API_URL.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	c, err := client.New(
		client.WithBaseURL(client.BaseURLFromEnv()),
		client.WithUserAgent(name+"/"+version),
	)
	if err != nil {
		slog.Error("invalid recipe API configuration", "error", err)
		return err
	}
	slog.Info("recipe API", "url", c.BaseURL())

	h := NewHandler(c, WithVersion(version))

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(h.Routes()),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
