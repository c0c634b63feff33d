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

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const listSeparator = ","

// ParseList splits a comma-joined ingredient list, dropping empty segments.
// Segments are not trimmed: "a, b" yields "a" and " b", matching how the
// value was committed.
func ParseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, listSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// JoinList is the inverse of ParseList for lists without empty entries.
// It returns "" for an empty list so callers can omit the parameter.
func JoinList(items []string) string {
	return strings.Join(items, listSeparator)
}

// AppendUnique appends item to items unless it is blank or already present
// (case-insensitive). Tag inputs use it so a filter never repeats.
func AppendUnique(items []string, item string) []string {
	item = strings.TrimSpace(item)
	if item == "" {
		return items
	}
	for _, existing := range items {
		if strings.EqualFold(existing, item) {
			return items
		}
	}
	return append(items, item)
}

// Capitalize upper-cases the first letter of each word for display, leaving
// the rest of each word unchanged.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return cases.Title(language.English, cases.NoLower).String(s)
}
