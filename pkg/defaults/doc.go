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

// Package defaults provides centralized layout constants for the recipe tooling.
//
// # Categories
//
//   - Source layout: where headers and test sources live, which patterns select them
//   - Package layout: the include directory and the package info file
//   - Working directories: CLI defaults for build, package and export directories
//   - File modes: permissions for created directories and files
//
// # Usage
//
//	dst := filepath.Join(packageDir, defaults.IncludeDir)
//	if err := os.MkdirAll(dst, defaults.DirMode); err != nil {
//	    return err
//	}
package defaults
