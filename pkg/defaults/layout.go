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

package defaults

import "os"

// Source tree layout of the packaged library.
const (
	// LibrarySourceDir is the directory, relative to the source root, holding
	// the library headers.
	LibrarySourceDir = "graphle"

	// HeaderPattern selects the headers that are always packaged.
	HeaderPattern = "*.hpp"

	// TestSourcePattern selects the test sources packaged with build_tests.
	TestSourcePattern = "*.cpp"

	// TestsDefinition is the CMake cache variable enabling the test target.
	TestsDefinition = "GRAPHLE_TESTS"
)

// Package layout.
const (
	// IncludeDir receives the headers inside the package directory.
	IncludeDir = "include"

	// PackageInfoFileName holds the rendered package info and its id.
	PackageInfoFileName = "pkginfo.txt"
)

// Working directories used by the CLI when none are given.
const (
	BuildDir   = "build"
	PackageDir = "package"
	ExportDir  = "export"
)

// File modes for everything the tooling writes.
const (
	DirMode  os.FileMode = 0o755
	FileMode os.FileMode = 0o644
)
