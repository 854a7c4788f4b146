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

package lifecycle

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusFailed  = "failed"
)

var (
	phaseDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "graphle_recipe_phase_duration_seconds",
			Help:    "Time taken by each lifecycle phase",
			Buckets: []float64{0.01, 0.1, 1, 10, 60, 300, 900},
		},
		[]string{"phase"}, // configure, build, test, package, identify
	)

	runsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphle_recipe_runs_total",
			Help: "Total number of recipe runs",
		},
		[]string{"status"}, // success or failed
	)

	packagedFiles = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "graphle_recipe_packaged_files",
			Help: "Number of files in the last created package",
		},
	)
)
