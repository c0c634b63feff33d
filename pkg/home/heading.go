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

import "fmt"

// Headings shown above the recipe grid.
const (
	HeadingFiltered = "Filtered Recipes"
	HeadingDefault  = "Find your dream meal"
)

// Heading picks the display heading for the given state.
func Heading(s State, loading bool) string {
	switch {
	case s.IsSearching() && loading:
		return fmt.Sprintf("Searching for %q...", s.Q)
	case s.IsSearching():
		return fmt.Sprintf("Results for %q", s.Q)
	case s.HasActiveFilters():
		return HeadingFiltered
	default:
		return HeadingDefault
	}
}
