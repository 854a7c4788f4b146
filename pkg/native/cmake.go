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

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"sort"

	"github.com/NVIDIA/graphle-recipe/pkg/defaults"
	"github.com/NVIDIA/graphle-recipe/pkg/errors"
	"github.com/NVIDIA/graphle-recipe/pkg/settings"
)

const cmakeBinary = "cmake"

// Runner executes a command in dir. Implementations must return the command's
// error unchanged.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner runs commands as subprocesses, streaming their output.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return cmd.Run()
}

// CMake drives a CMake project out of source: configure into BuildDir, build,
// then run the test target.
type CMake struct {
	SourceDir string
	BuildDir  string
	Settings  settings.Settings

	// Generator is passed as -G when set.
	Generator string

	runner   Runner
	lookPath func(string) (string, error)
}

// Option configures a CMake instance.
type Option func(*CMake)

// WithRunner replaces the subprocess runner.
func WithRunner(r Runner) Option {
	return func(c *CMake) {
		if r != nil {
			c.runner = r
		}
	}
}

// WithGenerator selects a CMake generator.
func WithGenerator(g string) Option {
	return func(c *CMake) {
		c.Generator = g
	}
}

// WithLookPath replaces the PATH lookup used to locate cmake.
func WithLookPath(fn func(string) (string, error)) Option {
	return func(c *CMake) {
		if fn != nil {
			c.lookPath = fn
		}
	}
}

// NewCMake returns a CMake build system for sourceDir building into buildDir.
func NewCMake(sourceDir, buildDir string, s settings.Settings, opts ...Option) *CMake {
	c := &CMake{
		SourceDir: sourceDir,
		BuildDir:  buildDir,
		Settings:  s,
		runner:    &ExecRunner{Stdout: os.Stderr, Stderr: os.Stderr},
		lookPath:  exec.LookPath,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configure implements BuildSystem.
func (c *CMake) Configure(ctx context.Context, definitions map[string]string) error {
	if err := os.MkdirAll(c.BuildDir, defaults.DirMode); err != nil {
		return errors.WrapWithContext(errors.ErrCodeInternal,
			"failed to create build directory", err, map[string]any{"dir": c.BuildDir})
	}
	return c.run(ctx, c.ConfigureArgs(definitions))
}

// Build implements BuildSystem.
func (c *CMake) Build(ctx context.Context) error {
	return c.run(ctx, c.BuildArgs(""))
}

// Test implements BuildSystem.
func (c *CMake) Test(ctx context.Context) error {
	return c.run(ctx, c.BuildArgs(c.TestTarget()))
}

// ConfigureArgs returns the cmake arguments for the configure step.
// Definitions are emitted in sorted key order.
func (c *CMake) ConfigureArgs(definitions map[string]string) []string {
	args := []string{"-S", c.SourceDir, "-B", c.BuildDir}
	if c.Generator != "" {
		args = append(args, "-G", c.Generator)
	}
	if bt := c.Settings.BuildType; bt != "" {
		args = append(args, "-DCMAKE_BUILD_TYPE="+bt)
	}

	keys := make([]string, 0, len(definitions))
	for k := range definitions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, "-D"+k+"="+definitions[k])
	}
	return args
}

// BuildArgs returns the cmake arguments for building target, or the default
// target when target is empty.
func (c *CMake) BuildArgs(target string) []string {
	args := []string{"--build", c.BuildDir}
	if bt := c.Settings.BuildType; bt != "" {
		args = append(args, "--config", bt)
	}
	if target != "" {
		args = append(args, "--target", target)
	}
	return args
}

// TestTarget is RUN_TESTS for Visual Studio generators and test elsewhere.
func (c *CMake) TestTarget() string {
	if c.Settings.IsVisualStudio() {
		return "RUN_TESTS"
	}
	return "test"
}

func (c *CMake) run(ctx context.Context, args []string) error {
	bin, err := c.lookPath(cmakeBinary)
	if err != nil {
		return errors.WrapWithContext(errors.ErrCodeUnavailable,
			"cmake not found in PATH", err, map[string]any{"binary": cmakeBinary})
	}

	slog.Info("running native build command", "command", bin, "args", args)
	return c.runner.Run(ctx, c.BuildDir, bin, args...)
}
