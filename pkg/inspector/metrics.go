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

package inspector

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type collectionMetrics struct {
	registry *prometheus.Registry

	duration  prometheus.Histogram
	collector *prometheus.HistogramVec
	total     *prometheus.CounterVec
}

func newCollectionMetrics() *collectionMetrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &collectionMetrics{
		registry: reg,

		duration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "envinspect_collection_duration_seconds",
				Help:    "Time taken to collect a complete report",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
			},
		),

		collector: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "envinspect_collector_duration_seconds",
				Help:    "Time taken by individual collectors",
				Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 5},
			},
			[]string{"collector"}, // system, process, environment
		),

		total: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "envinspect_collection_total",
				Help: "Total number of report collection attempts",
			},
			[]string{"status"}, // success or error
		),
	}
}
