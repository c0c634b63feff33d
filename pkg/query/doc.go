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

// Package query provides the data-fetch capability used by the home view.
//
// A Query wraps a Fetcher and remembers the latest result for each parameter
// tuple. Use is non-blocking: the first read of a tuple starts a background
// fetch and reports IsLoading, later reads return the settled result. A
// disabled Use never calls the fetcher. Concurrent fetches of the same tuple
// share one request.
//
// Usage:
//
//	q := query.New("search", func(ctx context.Context, p SearchParams) ([]recipe.Recipe, error) {
//	    return c.SearchRecipes(ctx, p)
//	})
//	res := q.Use(ctx, params, params.Q != "")
//	<-q.Changed() // wait for the next settle
//
// There is no retry, batching or backoff. Invalidate drops all entries after
// a mutation so the next read refetches.
package query
