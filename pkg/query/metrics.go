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

package query

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	queryFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipebook_query_fetch_duration_seconds",
			Help:    "Duration of query fetches in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"query"},
	)

	queryFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipebook_query_fetch_total",
			Help: "Total number of query fetches by result",
		},
		[]string{"query", "result"},
	)

	queryCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipebook_query_cache_hits_total",
			Help: "Total number of reads answered from a settled entry",
		},
		[]string{"query"},
	)

	queryRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipebook_query_retries_total",
			Help: "Total number of failed entries dropped for a new fetch",
		},
		[]string{"query"},
	)

	queryInvalidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipebook_query_invalidations_total",
			Help: "Total number of query invalidations",
		},
		[]string{"query"},
	)
)
