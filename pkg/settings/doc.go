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

// Package settings models the build settings a package is sensitive to:
// os, compiler, compiler.version, build_type and arch.
//
// Settings start from the running host (Detect), then a profile and
// command-line overrides are layered on top:
//
//	s := settings.Detect()
//	if err := profile.ApplyTo(&s); err != nil {
//	    return err
//	}
//	if err := s.Apply([]string{"build_type=debug"}); err != nil {
//	    return err
//	}
//	// s.BuildType == "Debug"
//
// Values are normalized to their canonical spelling: operating systems and
// build types are title cased, architectures and compilers lower cased, and
// Go's GOOS/GOARCH names map to the conventional ones (darwin becomes Macos,
// amd64 becomes x86_64).
package settings
