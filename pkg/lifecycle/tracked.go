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
	"context"
	"time"

	"github.com/NVIDIA/graphle-recipe/pkg/native"
)

// trackedBuildSystem moves the machine into the matching state before each
// native step and records how long the step took.
type trackedBuildSystem struct {
	inner   native.BuildSystem
	machine *Machine
	result  *Result
}

func (t *trackedBuildSystem) Configure(ctx context.Context, definitions map[string]string) error {
	return t.step(StateConfiguring, phaseConfigure, func() error {
		return t.inner.Configure(ctx, definitions)
	})
}

func (t *trackedBuildSystem) Build(ctx context.Context) error {
	return t.step(StateBuilding, phaseBuild, func() error {
		return t.inner.Build(ctx)
	})
}

func (t *trackedBuildSystem) Test(ctx context.Context) error {
	return t.step(StateTesting, phaseTest, func() error {
		return t.inner.Test(ctx)
	})
}

func (t *trackedBuildSystem) step(state State, phase string, fn func() error) error {
	if err := t.machine.Transition(state); err != nil {
		return err
	}
	start := time.Now()
	err := fn()
	t.result.observe(phase, time.Since(start))
	return err
}
