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

// Package recipe defines the recipe entity served by the recipe API and the
// payload used to create and edit recipes.
//
// A Recipe is identified by an integer ID and carries a title, cooking time,
// difficulty (Easy, Medium, Hard), an optional cuisine, instructions, an
// ordered ingredient list and an ordered list of image URLs whose first entry
// is the cover image.
//
// Input mirrors the recipe form. Validate enforces the same limits the web
// form applies before submission:
//
//   - title: 2 to 255 characters
//   - cooking time: at least 1 minute
//   - instructions: 10 to 50000 characters
//   - ingredients: 1 to 100 non-empty entries
//   - images: at most 5, counting retained URLs and new uploads
//
// Ingredient filter lists travel as comma-joined strings; ParseList and
// JoinList convert between the two forms.
package recipe
