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
	"fmt"
	"strings"
	"unicode/utf8"

	"k8s.io/utils/ptr"

	"github.com/kitchenware/recipebook/pkg/defaults"
	rberrors "github.com/kitchenware/recipebook/pkg/errors"
)

// Field limits enforced before a recipe is sent to the API.
const (
	MinTitleLength        = 2
	MaxTitleLength        = 255
	MinCookingTime        = 1
	MinInstructionsLength = 10
	MaxInstructionsLength = 50000
)

// Input is the payload used to create or update a recipe.
// ImageURLs is only sent on update; it carries the retained existing images
// in display order (first = cover).
type Input struct {
	Title                string     `json:"title" yaml:"title"`
	CookingTimeInMinutes int        `json:"cooking_time_in_minutes" yaml:"cooking_time_in_minutes"`
	Difficulty           Difficulty `json:"difficulty" yaml:"difficulty"`
	Cuisine              *string    `json:"cuisine,omitempty" yaml:"cuisine,omitempty"`
	Instructions         string     `json:"instructions" yaml:"instructions"`
	Ingredients          []string   `json:"ingredients" yaml:"ingredients"`
	ImageURLs            []string   `json:"image_urls,omitzero" yaml:"image_urls,omitempty"`
}

// Violation describes a single field that failed validation.
type Violation struct {
	Field   string `json:"field" yaml:"field"`
	Message string `json:"message" yaml:"message"`
}

// String returns the violation as "field: message".
func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// Validate checks the input with no new image files attached.
func (in *Input) Validate() error {
	return in.ValidateWithFiles(0)
}

// ValidateWithFiles checks the input, counting newFiles images that will be
// uploaded alongside the retained ImageURLs against the image cap.
// The returned error is a StructuredError with code INVALID_REQUEST whose
// message is the first violation and whose context lists all of them.
func (in *Input) ValidateWithFiles(newFiles int) error {
	if in == nil {
		return rberrors.New(rberrors.ErrCodeInvalidRequest, "recipe input is required")
	}

	var vs []Violation
	add := func(field, format string, args ...any) {
		vs = append(vs, Violation{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	switch n := utf8.RuneCountInString(in.Title); {
	case n < MinTitleLength:
		add("title", "must be at least %d characters", MinTitleLength)
	case n > MaxTitleLength:
		add("title", "is too long (max %d characters)", MaxTitleLength)
	}

	if in.CookingTimeInMinutes < MinCookingTime {
		add("cooking_time_in_minutes", "must be at least %d minute", MinCookingTime)
	}

	if !in.Difficulty.IsValid() {
		add("difficulty", "must be one of %s", strings.Join(SupportedDifficulties(), ", "))
	}

	switch n := utf8.RuneCountInString(in.Instructions); {
	case n < MinInstructionsLength:
		add("instructions", "must be at least %d characters", MinInstructionsLength)
	case n > MaxInstructionsLength:
		add("instructions", "is too long (max %d characters)", MaxInstructionsLength)
	}

	switch n := len(in.Ingredients); {
	case n == 0:
		add("ingredients", "add at least one ingredient")
	case n > defaults.MaxIngredients:
		add("ingredients", "too many ingredients added (max %d)", defaults.MaxIngredients)
	}
	for i, ing := range in.Ingredients {
		if strings.TrimSpace(ing) == "" {
			add(fmt.Sprintf("ingredients[%d]", i), "ingredient cannot be empty")
		}
	}

	if total := len(in.ImageURLs) + newFiles; total > defaults.MaxRecipeImages {
		add("images", "max %d images allowed, got %d", defaults.MaxRecipeImages, total)
	}

	if len(vs) == 0 {
		return nil
	}

	return rberrors.NewWithContext(rberrors.ErrCodeInvalidRequest, vs[0].String(), map[string]any{
		"violations": vs,
	})
}

// InputFromRecipe returns the editable form of an existing recipe.
// Unknown difficulties fall back to Medium and a recipe without ingredients
// gets a single blank entry to fill in.
func InputFromRecipe(r *Recipe) Input {
	if r == nil {
		return NewInput()
	}

	difficulty := r.Difficulty
	if d, ok := ParseDifficulty(string(difficulty)); ok {
		difficulty = d
	} else {
		difficulty = DifficultyMedium
	}

	ingredients := append([]string(nil), r.Ingredients...)
	if len(ingredients) == 0 {
		ingredients = []string{""}
	}

	return Input{
		Title:                r.Title,
		CookingTimeInMinutes: r.CookingTimeInMinutes,
		Difficulty:           difficulty,
		Cuisine:              ptr.To(ptr.Deref(r.Cuisine, "")),
		Instructions:         r.Instructions,
		Ingredients:          ingredients,
		ImageURLs:            append([]string{}, r.ImageURLs...),
	}
}

// NewInput returns the defaults of an empty recipe form.
func NewInput() Input {
	return Input{
		CookingTimeInMinutes: 30,
		Difficulty:           DifficultyMedium,
		Ingredients:          []string{""},
	}
}

// Normalize trims surrounding whitespace from text fields and drops an empty
// cuisine so it is omitted from the request body.
func (in *Input) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Instructions = strings.TrimSpace(in.Instructions)
	if in.Cuisine != nil {
		c := strings.TrimSpace(*in.Cuisine)
		if c == "" {
			in.Cuisine = nil
		} else {
			in.Cuisine = ptr.To(c)
		}
	}
	for i := range in.Ingredients {
		in.Ingredients[i] = strings.TrimSpace(in.Ingredients[i])
	}
	if d, ok := ParseDifficulty(string(in.Difficulty)); ok {
		in.Difficulty = d
	}
}
