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

package recipe

import (
	"strings"

	"k8s.io/utils/ptr"
)

// Difficulty is the enumerated effort level of a recipe.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// String returns the string representation of the difficulty.
func (d Difficulty) String() string {
	return string(d)
}

// IsValid reports whether d is one of the supported difficulties.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// SupportedDifficulties returns the difficulties accepted by the recipe API.
func SupportedDifficulties() []string {
	return []string{
		string(DifficultyEasy),
		string(DifficultyMedium),
		string(DifficultyHard),
	}
}

// ParseDifficulty matches s case-insensitively against the supported values.
// The boolean is false when s is not a known difficulty.
func ParseDifficulty(s string) (Difficulty, bool) {
	for _, d := range SupportedDifficulties() {
		if strings.EqualFold(strings.TrimSpace(s), d) {
			return Difficulty(d), true
		}
	}
	return "", false
}

// Recipe is a recipe as returned by the recipe API.
type Recipe struct {
	ID                   int        `json:"id" yaml:"id"`
	Title                string     `json:"title" yaml:"title"`
	CookingTimeInMinutes int        `json:"cooking_time_in_minutes" yaml:"cooking_time_in_minutes"`
	Difficulty           Difficulty `json:"difficulty" yaml:"difficulty"`
	Cuisine              *string    `json:"cuisine,omitempty" yaml:"cuisine,omitempty"`
	Instructions         string     `json:"instructions" yaml:"instructions"`
	Ingredients          []string   `json:"ingredients" yaml:"ingredients"`
	ImageURLs            []string   `json:"image_urls" yaml:"image_urls"`
}

// CoverImage returns the first image URL, or "" when the recipe has no images.
func (r *Recipe) CoverImage() string {
	if r == nil || len(r.ImageURLs) == 0 {
		return ""
	}
	return r.ImageURLs[0]
}

// CuisineLabel returns the display form of the cuisine, or "" when unset.
func (r *Recipe) CuisineLabel() string {
	if r == nil {
		return ""
	}
	return Capitalize(ptr.Deref(r.Cuisine, ""))
}
