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

package recipe

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/NVIDIA/graphle-recipe/pkg/artifact"
	"github.com/NVIDIA/graphle-recipe/pkg/defaults"
	"github.com/NVIDIA/graphle-recipe/pkg/identity"
	"github.com/NVIDIA/graphle-recipe/pkg/native"
	"github.com/NVIDIA/graphle-recipe/pkg/settings"
)

// BuildContext is what the host hands to Build.
type BuildContext struct {
	Settings settings.Settings
	Options  Options

	// Tools is the native build system. It is not used when tests are
	// disabled and may be nil in that case.
	Tools native.BuildSystem
}

// PackageContext is what the host hands to Package.
type PackageContext struct {
	Options Options

	// SourceDir is the exported project root, containing graphle/.
	SourceDir string

	// PackageDir receives the package content.
	PackageDir string

	// BuildDir is the native build directory. Its content is never
	// packaged, even when it lies inside SourceDir.
	BuildDir string

	// Copier is optional; the zero value is used when nil.
	Copier *artifact.Copier
}

// Recipe is the graphle package recipe.
type Recipe struct {
	meta Metadata
}

// New returns the graphle recipe.
func New() *Recipe {
	return &Recipe{meta: Graphle()}
}

// Metadata returns the package metadata.
func (r *Recipe) Metadata() Metadata {
	return r.meta
}

// Build configures, builds and runs the test suite when tests are enabled.
// With tests disabled it does nothing: the library is header-only.
// Errors from the build system are returned as-is.
func (r *Recipe) Build(ctx context.Context, bc BuildContext) error {
	if !bc.Options.BuildTests {
		slog.Debug("tests disabled, skipping native build")
		return nil
	}

	if err := bc.Tools.Configure(ctx, map[string]string{defaults.TestsDefinition: "ON"}); err != nil {
		return err
	}
	if err := bc.Tools.Build(ctx); err != nil {
		return err
	}
	return bc.Tools.Test(ctx)
}

// Package copies the deliverables into PackageDir: test sources at their
// relative paths when tests are enabled, and the library headers from
// graphle/ into include/. Nothing under BuildDir is copied.
func (r *Recipe) Package(ctx context.Context, pc PackageContext) (*artifact.Artifact, error) {
	var c artifact.Copier
	if pc.Copier != nil {
		c = *pc.Copier
	}
	c.Exclude = append(append([]string(nil), c.Exclude...), pc.BuildDir)
	a := artifact.New(pc.PackageDir)

	if pc.Options.BuildTests {
		if err := c.CopyInto(ctx, a, defaults.TestSourcePattern, pc.SourceDir, ""); err != nil {
			return a, err
		}
	}

	headers := filepath.Join(pc.SourceDir, defaults.LibrarySourceDir)
	if err := c.CopyInto(ctx, a, defaults.HeaderPattern, headers, defaults.IncludeDir); err != nil {
		return a, err
	}

	if a.Count() == 0 {
		slog.Warn("package is empty", "source", pc.SourceDir)
	}
	return a, nil
}

// PackageID clears the package info: one package serves every setting and
// option combination.
func (r *Recipe) PackageID(info *identity.Info) {
	info.Clear()
}
