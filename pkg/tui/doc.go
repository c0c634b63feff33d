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

// Package tui implements the interactive recipe browser started by
// "recipebook browse".
//
// The browser drives a home.ViewModel over an in-memory URL history, so the
// search box, the ingredient filters and back/forward navigation behave like
// the web home page: typing edits the search text, enter commits it, esc
// clears everything and alt+left/alt+right walk the history.
package tui
