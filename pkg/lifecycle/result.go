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
	"time"

	"github.com/NVIDIA/graphle-recipe/pkg/artifact"
	"github.com/NVIDIA/graphle-recipe/pkg/header"
)

const (
	phaseConfigure = "configure"
	phaseBuild     = "build"
	phaseTest      = "test"
	phasePackage   = "package"
	phaseIdentify  = "identify"
)

// Result is the record of one recipe run.
type Result struct {
	header.Header `json:",inline" yaml:",inline"`

	RunID     string            `json:"runId" yaml:"runId"`
	Reference string            `json:"reference" yaml:"reference"`
	State     State             `json:"state" yaml:"state"`
	Trace     []State           `json:"trace" yaml:"trace"`
	Settings  map[string]string `json:"settings" yaml:"settings"`
	Options   map[string]string `json:"options" yaml:"options"`
	PackageID string            `json:"packageId,omitempty" yaml:"packageId,omitempty"`

	// Package is nil when the run failed before packaging.
	Package *artifact.Artifact `json:"package,omitempty" yaml:"package,omitempty"`

	// Phases holds the duration of each phase that ran, in seconds.
	Phases map[string]float64 `json:"phases" yaml:"phases"`

	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

func (r *Result) observe(phase string, d time.Duration) {
	r.Phases[phase] = d.Seconds()
	phaseDuration.WithLabelValues(phase).Observe(d.Seconds())
}

// Succeeded reports whether the run reached StateDone.
func (r *Result) Succeeded() bool {
	return r.State == StateDone
}
