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

package native

import "context"

// BuildSystem is the native build system contract consumed by the recipe.
// Each step may fail; implementations return the failure as produced by the
// underlying tool.
type BuildSystem interface {
	// Configure generates the native project with the given cache definitions.
	Configure(ctx context.Context, definitions map[string]string) error

	// Build compiles the configured project.
	Build(ctx context.Context) error

	// Test runs the project's test target.
	Test(ctx context.Context) error
}
