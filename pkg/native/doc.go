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

// Package native wraps the native build system invoked by the recipe.
//
// BuildSystem is the three-step contract (Configure, Build, Test). CMake
// implements it by shelling out to the cmake binary:
//
//	cmake -S <source> -B <build> -DCMAKE_BUILD_TYPE=Release -DGRAPHLE_TESTS=ON
//	cmake --build <build> --config Release
//	cmake --build <build> --config Release --target test
//
// A failing subprocess is returned as the *exec.ExitError produced by os/exec.
// Only a missing cmake binary is reported as a structured UNAVAILABLE error.
package native
