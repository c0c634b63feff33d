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
	"net/url"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/urfave/cli/v3"

	"github.com/kitchenware/recipebook/pkg/defaults"
	"github.com/kitchenware/recipebook/pkg/home"
	"github.com/kitchenware/recipebook/pkg/logging"
	"github.com/kitchenware/recipebook/pkg/recipe"
	"github.com/kitchenware/recipebook/pkg/serializer"
	"github.com/kitchenware/recipebook/pkg/tui"
	"github.com/kitchenware/recipebook/pkg/urlstate"
)

func homeFlags(extra ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		&cli.StringFlag{
			Name:  "q",
			Usage: "Search text; when set, recipes are searched instead of listed",
		},
		&cli.StringFlag{
			Name:  "include",
			Usage: "Comma-separated ingredients recipes must contain (e.g. egg,milk)",
		},
		&cli.StringFlag{
			Name:  "exclude",
			Usage: "Comma-separated ingredients recipes must not contain",
		},
	}, extra...)
}

// homeValues builds the home URL parameters from the --q, --include and
// --exclude flags.
func homeValues(cmd *cli.Command) url.Values {
	st := home.State{
		Q:                  cmd.String("q"),
		IncludeIngredients: recipe.ParseList(cmd.String("include")),
		ExcludeIngredients: recipe.ParseList(cmd.String("exclude")),
	}
	return st.Encode()
}

func browseCmd() *cli.Command {
	return &cli.Command{
		Name:  "browse",
		Usage: "Browse recipes interactively",
		Description: `Open the interactive recipe browser.

Type to edit the search and press enter to run it. Use tab to move between the
search box and the include/exclude ingredient inputs, enter to add an
ingredient and backspace on an empty input to remove the last one. esc clears
the search and all filters; alt+left and alt+right step through previous
searches.`,
		Flags: homeFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, c, err := setup(ctx, cmd)
			if err != nil {
				return err
			}

			// log lines would corrupt the alternate screen
			logPath, err := xdg.StateFile(filepath.Join(name, "browse.log"))
			if err != nil {
				return fmt.Errorf("failed to resolve log file: %w", err)
			}
			logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
			if err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			defer logFile.Close()
			slog.SetDefault(logging.NewStructuredLoggerWithWriter(logFile, name, version, s.logLevel))

			history := urlstate.NewHistory(homeValues(cmd))
			return tui.Run(ctx, history, newQueries(ctx, c))
		},
	}
}

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List or search recipes",
		Description: `Print the recipes of the home view for the given search and filters.

With --q the search endpoint is queried; otherwise the list endpoint is. The
output is a HomeView document with the heading and flags the web page shows.

Examples:
  recipebook list
  recipebook list --q "tomato soup" --format json
  recipebook list --include egg,milk --exclude nuts -o recipes.yaml --format yaml`,
		Flags: homeFlags(outputFlag(), formatFlag()),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, c, err := setup(ctx, cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.CLIRequestTimeout)
			defer cancel()

			vm := home.New(urlstate.NewMemory(homeValues(cmd)), newQueries(ctx, c))
			view, err := home.WaitSettled(ctx, vm, defaults.HomeSettleTimeout)
			if err != nil {
				return err
			}
			if view.IsError {
				return view.Err
			}

			return writeOutput(ctx, cmd, s.format, home.NewDocument(view, version))
		},
	}
}

var _ serializer.Tabular = home.Document{}
