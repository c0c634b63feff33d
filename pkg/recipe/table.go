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
	"strconv"
	"strings"
)

var tableHeader = []string{"ID", "TITLE", "MINUTES", "DIFFICULTY", "CUISINE", "INGREDIENTS", "IMAGES"}

// List is an ordered set of recipes as returned by list and search.
type List []Recipe

// TableHeader returns the column names of the recipe table.
func (l List) TableHeader() []string {
	return tableHeader
}

// TableRows returns one row per recipe.
func (l List) TableRows() [][]string {
	rows := make([][]string, 0, len(l))
	for i := range l {
		rows = append(rows, l[i].tableRow())
	}
	return rows
}

// TableHeader returns the column names of the recipe table.
func (r Recipe) TableHeader() []string {
	return tableHeader
}

// TableRows returns the recipe as a single row.
func (r Recipe) TableRows() [][]string {
	return [][]string{r.tableRow()}
}

func (r *Recipe) tableRow() []string {
	return []string{
		strconv.Itoa(r.ID),
		r.Title,
		strconv.Itoa(r.CookingTimeInMinutes),
		r.Difficulty.String(),
		r.CuisineLabel(),
		strings.Join(r.Ingredients, ", "),
		strconv.Itoa(len(r.ImageURLs)),
	}
}
