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

// Package home implements the search and filter view model of the recipe
// home page.
//
// The URL query parameters q, include_ingredients and exclude_ingredients
// are the single source of truth for committed state. The view model reads
// them on every call and owns only the search text being edited, which snaps
// back to q whenever q changes (back/forward navigation, clear, external
// writes).
//
// Exactly one of two fetch modes is active:
//
//   - q non-empty: search mode, the list query is disabled
//   - otherwise: list mode (limit 100, skip 0), the search query is disabled
//
// Ingredient filters apply in both modes and are omitted when empty.
//
// Usage:
//
//	store := urlstate.NewHistory(nil)
//	vm := home.New(store, home.NewQueries(apiClient))
//	vm.SetSearchTerm("  pasta ")
//	vm.OnKeyDown(home.KeyEnter) // commits q=pasta
//	view, err := home.WaitSettled(ctx, vm, 5*time.Second)
package home
