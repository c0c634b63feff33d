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

package home

import "github.com/kitchenware/recipebook/pkg/recipe"

// TableHeader returns the columns used to print the view's recipes.
func (v View) TableHeader() []string {
	return recipe.List(v.Recipes).TableHeader()
}

// TableRows returns one row per recipe in the view.
func (v View) TableRows() [][]string {
	return recipe.List(v.Recipes).TableRows()
}
