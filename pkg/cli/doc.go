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

// Package cli implements the recipebook command-line interface.
//
// # Commands
//
//	recipebook browse [--q TEXT] [--include a,b] [--exclude c]
//	recipebook list   [--q TEXT] [--include a,b] [--exclude c] [--format json|yaml|table] [--output FILE]
//	recipebook get    --id N
//	recipebook create --file recipe.yaml [--image PATH ...]
//	recipebook update --id N [--file recipe.yaml] [--cover URL] [--remove-image URL ...] [--image PATH ...]
//	recipebook delete --id N
//	recipebook upload --id N --image PATH [--image PATH ...]
//	recipebook version
//
// browse opens the interactive browser. list prints the same view
// non-interactively: with --q it searches, otherwise it lists recipes
// filtered by ingredients.
//
// Recipe files are read as JSON or YAML based on their extension and are
// validated before anything is sent. Images given with --image are uploaded
// after the recipe is saved; a recipe holds at most five images.
//
// # Global flags
//
//	--api-url    recipe API base URL (env RECIPEBOOK_API_URL)
//	--log-level  debug, info, warn or error (env LOG_LEVEL)
//	--config     config file, default $XDG_CONFIG_HOME/recipebook/config.yaml
//
// The config file may set api_url, format and log_level. Flags and
// environment variables take precedence.
package cli
