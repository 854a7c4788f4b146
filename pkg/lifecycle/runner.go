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
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/NVIDIA/graphle-recipe/pkg/artifact"
	"github.com/NVIDIA/graphle-recipe/pkg/checksum"
	"github.com/NVIDIA/graphle-recipe/pkg/defaults"
	"github.com/NVIDIA/graphle-recipe/pkg/errors"
	"github.com/NVIDIA/graphle-recipe/pkg/header"
	"github.com/NVIDIA/graphle-recipe/pkg/identity"
	"github.com/NVIDIA/graphle-recipe/pkg/native"
	"github.com/NVIDIA/graphle-recipe/pkg/recipe"
	"github.com/NVIDIA/graphle-recipe/pkg/settings"
)

// Request describes one recipe run.
type Request struct {
	Settings settings.Settings
	Options  recipe.Options

	// SourceDir is the exported project root.
	SourceDir string

	// BuildDir is where the native build system writes its output.
	BuildDir string

	// PackageDir receives the package.
	PackageDir string

	// Tools overrides the native build system. When nil and tests are
	// enabled, CMake is used with SourceDir and BuildDir.
	Tools native.BuildSystem
}

// Runner drives the recipe callbacks in the fixed host order:
// build (configure, build, test), package, package id.
type Runner struct {
	// Recipe is the recipe to run. If nil, recipe.New() is used.
	Recipe *recipe.Recipe

	// Version is the tool version stamped into results.
	Version string
}

// Run executes the recipe. A failure of the native build system ends the run
// in StateFailed, skips packaging and returns the build system's error value
// unchanged. The returned Result is never nil.
func (r *Runner) Run(ctx context.Context, req Request) (*Result, error) {
	rec := r.Recipe
	if rec == nil {
		rec = recipe.New()
	}

	m := NewMachine()
	res := &Result{
		RunID:     uuid.New().String(),
		Reference: rec.Metadata().Reference(),
		Settings:  req.Settings.Map(),
		Options:   req.Options.Map(),
		Phases:    make(map[string]float64),
	}
	res.Init(header.KindRun, r.Version)

	log := slog.With("run_id", res.RunID, "reference", res.Reference)
	log.Info("recipe run started", "options", res.Options, "settings", res.Settings)

	err := r.run(ctx, log, rec, m, req, res)

	res.State = m.Current()
	res.Trace = m.Trace()
	if err != nil {
		res.Error = err.Error()
		runsTotal.WithLabelValues(statusFailed).Inc()
		log.Error("recipe run failed", "state", res.State, "error", err)
		return res, err
	}

	runsTotal.WithLabelValues(statusSuccess).Inc()
	log.Info("recipe run completed", "package_id", res.PackageID, "package", res.Package.Summary())
	return res, nil
}

func (r *Runner) run(ctx context.Context, log *slog.Logger, rec *recipe.Recipe, m *Machine, req Request, res *Result) error {
	bc := recipe.BuildContext{Settings: req.Settings, Options: req.Options}
	if req.Options.BuildTests {
		tools := req.Tools
		if tools == nil {
			tools = native.NewCMake(req.SourceDir, req.BuildDir, req.Settings)
		}
		bc.Tools = &trackedBuildSystem{inner: tools, machine: m, result: res}
	}

	if err := rec.Build(ctx, bc); err != nil {
		m.Fail()
		return err
	}

	if err := m.Transition(StatePackaging); err != nil {
		return err
	}

	art, err := r.pack(ctx, rec, req, res)
	if err != nil {
		m.Fail()
		return err
	}
	res.Package = art
	packagedFiles.Set(float64(art.Count()))
	log.Info("package created", "files", art.Count(), "size", art.TotalSize())

	start := time.Now()
	info := identity.NewInfo(req.Settings, req.Options.Map())
	rec.PackageID(info)
	res.PackageID = info.ID()
	if _, err := info.Write(req.PackageDir); err != nil {
		m.Fail()
		return err
	}
	res.observe(phaseIdentify, time.Since(start))

	if err := m.Transition(StateIdentified); err != nil {
		return err
	}
	return m.Transition(StateDone)
}

func (r *Runner) pack(ctx context.Context, rec *recipe.Recipe, req Request, res *Result) (*artifact.Artifact, error) {
	start := time.Now()
	defer func() {
		res.observe(phasePackage, time.Since(start))
	}()

	if err := os.MkdirAll(req.PackageDir, defaults.DirMode); err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInternal, "failed to create package directory", err,
			map[string]any{"dir": req.PackageDir})
	}

	art, err := rec.Package(ctx, recipe.PackageContext{
		Options:    req.Options,
		SourceDir:  req.SourceDir,
		PackageDir: req.PackageDir,
		BuildDir:   req.BuildDir,
	})
	if err != nil {
		return nil, err
	}

	if err := checksum.Generate(ctx, req.PackageDir, art.Paths()); err != nil {
		return nil, err
	}
	return art, nil
}
