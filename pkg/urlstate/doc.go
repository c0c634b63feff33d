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

// Package urlstate holds URL query parameters as the single source of truth
// for committed view state.
//
// History backs the terminal browser and supports back/forward navigation.
// Request backs HTTP handlers: it is seeded from the request URL and exposes
// the committed location so the handler can answer with a redirect.
package urlstate
