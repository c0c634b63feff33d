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
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/kitchenware/recipebook/pkg/client"
	"github.com/kitchenware/recipebook/pkg/logging"
)

const (
	name           = "recipebook"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the recipebook CLI with os.Args and exits non-zero on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Search, browse and edit recipes",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api-url",
				Usage:   "Recipe API base URL",
				Value:   client.BaseURLFromEnv(),
				Sources: cli.EnvVars(client.EnvAPIURL),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars(logging.EnvVarLogLevel),
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Config file (default $XDG_CONFIG_HOME/recipebook/config.yaml)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			s, err := resolveSettings(cmd)
			if err != nil {
				return ctx, err
			}
			logging.SetDefaultStructuredLoggerWithLevel(name, version, s.logLevel)
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date,
				"apiURL", s.apiURL)
			return withSettings(ctx, s), nil
		},
		Commands: []*cli.Command{
			browseCmd(),
			listCmd(),
			getCmd(),
			createCmd(),
			updateCmd(),
			deleteCmd(),
			uploadCmd(),
			versionCmd(),
		},
	}
}

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print version information",
		Action: func(_ context.Context, cmd *cli.Command) error {
			_, err := fmt.Fprintf(cmd.Root().Writer, "%s %s (commit: %s, built: %s)\n", name, version, commit, date)
			return err
		},
	}
}
