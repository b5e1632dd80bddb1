// Copyright (c) 2026, pkgsnap authors.  All rights reserved.
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

package snapshot

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Snapshot assembly metrics
	assemblyDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pkgsnap_assembly_duration_seconds",
			Help:    "Time taken to assemble a complete package snapshot",
			Buckets: []float64{0.01, 0.1, 1, 5, 10, 30, 60, 120},
		},
	)

	snapshotPackages = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pkgsnap_snapshot_packages",
			Help: "Number of packages in the last assembled snapshot",
		},
	)

	detailFetchFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pkgsnap_detail_fetch_failures_total",
			Help: "Total number of absorbed per-package detail fetch failures",
		},
		[]string{"manager"}, // apt, yum, pacman
	)
)
