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
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/kitchenware/recipebook/pkg/client"
	"github.com/kitchenware/recipebook/pkg/defaults"
	rberrors "github.com/kitchenware/recipebook/pkg/errors"
	"github.com/kitchenware/recipebook/pkg/header"
	"github.com/kitchenware/recipebook/pkg/recipe"
	"github.com/kitchenware/recipebook/pkg/serializer"
)

// recipeDocument is a single recipe with a resource header.
type recipeDocument struct {
	header.Header `json:",inline" yaml:",inline"`
	recipe.Recipe `json:",inline" yaml:",inline"`
}

func newRecipeDocument(r *recipe.Recipe) recipeDocument {
	return recipeDocument{
		Header: *header.New(header.WithKind(header.KindRecipe), header.WithVersion(version)),
		Recipe: *r,
	}
}

func idFlag() cli.Flag {
	return &cli.IntFlag{
		Name:     "id",
		Usage:    "Recipe ID",
		Required: true,
	}
}

func imageFlag(required bool) cli.Flag {
	return &cli.StringSliceFlag{
		Name:     "image",
		Usage:    fmt.Sprintf("Image file to upload (repeatable, at most %d per recipe)", defaults.MaxRecipeImages),
		Required: required,
	}
}

func fileFlag(required bool) cli.Flag {
	return &cli.StringFlag{
		Name:     "file",
		Aliases:  []string{"f"},
		Usage:    "Recipe file (JSON or YAML by extension, local path or http(s) URL)",
		Required: required,
	}
}

func getCmd() *cli.Command {
	return &cli.Command{
		Name:  "get",
		Usage: "Show a recipe",
		Flags: []cli.Flag{idFlag(), outputFlag(), formatFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, c, err := setup(ctx, cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.CLIRequestTimeout)
			defer cancel()

			r, err := c.GetRecipe(ctx, cmd.Int("id"))
			if err != nil {
				return err
			}
			return writeOutput(ctx, cmd, s.format, newRecipeDocument(r))
		},
	}
}

func deleteCmd() *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "Delete a recipe",
		Flags: []cli.Flag{idFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, c, err := setup(ctx, cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.CLIRequestTimeout)
			defer cancel()

			id := cmd.Int("id")
			if err := c.DeleteRecipe(ctx, id); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.Root().Writer, "deleted recipe %d\n", id)
			return err
		},
	}
}

func createCmd() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create a recipe from a file",
		Description: `Create a recipe from a JSON or YAML file and optionally attach images.

Example recipe.yaml:

  title: Pancakes
  cooking_time_in_minutes: 20
  difficulty: Easy
  cuisine: american
  instructions: Mix the batter and fry in a hot pan.
  ingredients:
    - flour
    - milk
    - egg

  recipebook create -f recipe.yaml --image cover.jpg --image stack.jpg`,
		Flags: []cli.Flag{fileFlag(true), imageFlag(false), outputFlag(), formatFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, c, err := setup(ctx, cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.CLIRequestTimeout)
			defer cancel()

			in, err := readInput(ctx, cmd.String("file"), len(cmd.StringSlice("image")))
			if err != nil {
				return err
			}

			r, err := c.CreateRecipe(ctx, *in)
			if err != nil {
				return err
			}
			slog.Info("recipe created", "id", r.ID, "title", r.Title)

			r, err = attachImages(ctx, c, r, cmd.StringSlice("image"))
			if err != nil {
				return err
			}
			return writeOutput(ctx, cmd, s.format, newRecipeDocument(r))
		},
	}
}

func updateCmd() *cli.Command {
	return &cli.Command{
		Name:  "update",
		Usage: "Edit a recipe",
		Description: `Replace a recipe with the contents of a JSON or YAML file, or edit the
current recipe in place when --file is omitted.

image_urls in the file lists the existing images to keep, in display order;
the first one is the cover. Omitted images are removed. --remove-image drops
an existing image and --cover moves one to the front. New files given with
--image are uploaded afterwards and count towards the image limit.

Examples:
  recipebook update --id 3 -f recipe.yaml
  recipebook update --id 3 --cover https://cdn.example.com/3/b.jpg
  recipebook update --id 3 --remove-image https://cdn.example.com/3/a.jpg --image new.jpg`,
		Flags: []cli.Flag{
			idFlag(),
			fileFlag(false),
			imageFlag(false),
			&cli.StringFlag{
				Name:  "cover",
				Usage: "Existing image URL to make the cover",
			},
			&cli.StringSliceFlag{
				Name:  "remove-image",
				Usage: "Existing image URL to remove (repeatable)",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, c, err := setup(ctx, cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.CLIRequestTimeout)
			defer cancel()

			in, err := updateInput(ctx, c, cmd)
			if err != nil {
				return err
			}

			r, err := c.UpdateRecipe(ctx, cmd.Int("id"), *in)
			if err != nil {
				return err
			}
			slog.Info("recipe updated", "id", r.ID, "title", r.Title)

			r, err = attachImages(ctx, c, r, cmd.StringSlice("image"))
			if err != nil {
				return err
			}
			return writeOutput(ctx, cmd, s.format, newRecipeDocument(r))
		},
	}
}

// updateInput loads the edited recipe from --file, or from the current recipe
// when no file is given, then applies --remove-image and --cover.
func updateInput(ctx context.Context, c *client.Client, cmd *cli.Command) (*recipe.Input, error) {
	var in recipe.Input
	if path := cmd.String("file"); path != "" {
		fromFile, err := serializer.FromFile[recipe.Input](ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to read recipe %s: %w", path, err)
		}
		in = *fromFile
	} else {
		r, err := c.GetRecipe(ctx, cmd.Int("id"))
		if err != nil {
			return nil, err
		}
		in = recipe.InputFromRecipe(r)
	}
	if in.ImageURLs == nil {
		in.ImageURLs = []string{}
	}

	for _, u := range cmd.StringSlice("remove-image") {
		if !slices.Contains(in.ImageURLs, u) {
			return nil, unknownImage(u)
		}
		in.ImageURLs = recipe.RemoveImage(in.ImageURLs, u)
	}
	if cover := cmd.String("cover"); cover != "" {
		if !slices.Contains(in.ImageURLs, cover) {
			return nil, unknownImage(cover)
		}
		in.ImageURLs = recipe.PromoteImage(in.ImageURLs, cover)
	}

	in.Normalize()
	if err := in.ValidateWithFiles(len(cmd.StringSlice("image"))); err != nil {
		return nil, err
	}
	return &in, nil
}

func unknownImage(u string) error {
	return rberrors.NewWithContext(rberrors.ErrCodeInvalidRequest,
		"image is not attached to the recipe", map[string]any{"url": u})
}

func uploadCmd() *cli.Command {
	return &cli.Command{
		Name:  "upload",
		Usage: "Attach images to a recipe",
		Flags: []cli.Flag{idFlag(), imageFlag(true), outputFlag(), formatFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, c, err := setup(ctx, cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.CLIRequestTimeout)
			defer cancel()

			r, err := c.GetRecipe(ctx, cmd.Int("id"))
			if err != nil {
				return err
			}

			paths := cmd.StringSlice("image")
			if _, dropped := recipe.CapImages(len(r.ImageURLs), len(paths), defaults.MaxRecipeImages); dropped {
				return rberrors.NewWithContext(rberrors.ErrCodeInvalidRequest,
					fmt.Sprintf("Max %d images allowed", defaults.MaxRecipeImages), map[string]any{
						"id":       r.ID,
						"existing": len(r.ImageURLs),
						"uploaded": len(paths),
					})
			}

			r, err = attachImages(ctx, c, r, paths)
			if err != nil {
				return err
			}
			return writeOutput(ctx, cmd, s.format, newRecipeDocument(r))
		},
	}
}

// readInput loads, normalizes and validates a recipe file. newFiles is the
// number of images that will be uploaded with it.
func readInput(ctx context.Context, path string, newFiles int) (*recipe.Input, error) {
	in, err := serializer.FromFile[recipe.Input](ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe %s: %w", path, err)
	}
	in.Normalize()
	if err := in.ValidateWithFiles(newFiles); err != nil {
		return nil, err
	}
	return in, nil
}

// attachImages uploads image files to r after it has been saved. With no
// paths r is returned unchanged.
func attachImages(ctx context.Context, c *client.Client, r *recipe.Recipe, paths []string) (*recipe.Recipe, error) {
	if len(paths) == 0 {
		return r, nil
	}
	images, err := client.LoadImages(ctx, paths)
	if err != nil {
		return nil, err
	}
	updated, err := c.UploadImages(ctx, r.ID, images)
	if err != nil {
		return nil, fmt.Errorf("recipe %d saved but image upload failed: %w", r.ID, err)
	}
	slog.Info("images uploaded", "id", r.ID, "count", len(images))
	return updated, nil
}
