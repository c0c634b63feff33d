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

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/kitchenware/recipebook/pkg/client"
	"github.com/kitchenware/recipebook/pkg/config"
	"github.com/kitchenware/recipebook/pkg/defaults"
	"github.com/kitchenware/recipebook/pkg/home"
	"github.com/kitchenware/recipebook/pkg/query"
	"github.com/kitchenware/recipebook/pkg/serializer"
)

// Flags are built per command; urfave flags keep parse state.
func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "format",
		Usage: "Output format (json, yaml, table); defaults to the config file value or table",
	}
}

// settings are the global options after applying the config file.
type settings struct {
	apiURL   string
	logLevel string
	format   serializer.Format
}

// resolveSettings merges flags and environment with the config file. An
// explicitly set flag or env var wins over the file.
func resolveSettings(cmd *cli.Command) (*settings, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	s := &settings{
		apiURL:   cmd.String("api-url"),
		logLevel: cmd.String("log-level"),
		format:   serializer.FormatTable,
	}
	if !cmd.IsSet("api-url") && cfg.APIURL != "" {
		s.apiURL = cfg.APIURL
	}
	if !cmd.IsSet("log-level") && cfg.LogLevel != "" {
		s.logLevel = cfg.LogLevel
	}
	if cfg.Format != "" {
		s.format = serializer.Format(cfg.Format)
	}
	return s, nil
}

// parseOutputFormat returns the --format value, falling back to def.
func parseOutputFormat(cmd *cli.Command, def serializer.Format) (serializer.Format, error) {
	f := cmd.String("format")
	if f == "" {
		return def, nil
	}
	return serializer.ParseFormat(f)
}

func newClient(s *settings) (*client.Client, error) {
	return client.New(
		client.WithBaseURL(s.apiURL),
		client.WithUserAgent(name+"/"+version),
	)
}

func newQueries(ctx context.Context, c *client.Client) *home.Queries {
	return home.NewQueries(c,
		query.WithContext(ctx),
		query.WithTTL(defaults.HomeCacheTTL),
		query.WithTimeout(defaults.HTTPClientTimeout),
	)
}

type settingsKey struct{}

func withSettings(ctx context.Context, s *settings) context.Context {
	return context.WithValue(ctx, settingsKey{}, s)
}

// setup returns the settings resolved by the root command, resolving them
// again when the action runs without it, and builds the client.
func setup(ctx context.Context, cmd *cli.Command) (*settings, *client.Client, error) {
	s, ok := ctx.Value(settingsKey{}).(*settings)
	if !ok {
		var err error
		if s, err = resolveSettings(cmd); err != nil {
			return nil, nil, err
		}
	}
	c, err := newClient(s)
	if err != nil {
		return nil, nil, err
	}
	return s, c, nil
}

func writeOutput(ctx context.Context, cmd *cli.Command, def serializer.Format, v any) error {
	format, err := parseOutputFormat(cmd, def)
	if err != nil {
		return err
	}

	var w *serializer.Writer
	if path := cmd.String("output"); path != "" {
		w = serializer.NewFileWriterOrStdout(format, path)
	} else {
		w = serializer.NewWriter(format, cmd.Root().Writer)
	}
	defer w.Close()
	return w.Serialize(ctx, v)
}
