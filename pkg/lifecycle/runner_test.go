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
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/graphle-recipe/pkg/checksum"
	"github.com/NVIDIA/graphle-recipe/pkg/header"
	"github.com/NVIDIA/graphle-recipe/pkg/identity"
	"github.com/NVIDIA/graphle-recipe/pkg/recipe"
	"github.com/NVIDIA/graphle-recipe/pkg/settings"
)

type fakeTools struct {
	calls  []string
	failOn string
	err    error

	// buildDir, when set, receives a CMake compiler-id source on Configure.
	buildDir string
}

func (f *fakeTools) step(name string) error {
	f.calls = append(f.calls, name)
	if name == f.failOn {
		return f.err
	}
	return nil
}

func (f *fakeTools) Configure(context.Context, map[string]string) error {
	if f.buildDir != "" {
		path := filepath.Join(f.buildDir, "CMakeFiles", "3.28", "CompilerIdCXX", "CMakeCXXCompilerId.cpp")
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte("int main() {}"), 0o644); err != nil {
			return err
		}
	}
	return f.step("configure")
}

func (f *fakeTools) Build(context.Context) error { return f.step("build") }
func (f *fakeTools) Test(context.Context) error  { return f.step("test") }

func newProject(t *testing.T) string {
	t.Helper()
	src := t.TempDir()
	for _, rel := range []string{
		"graphle/graphle.hpp",
		"graphle/graph/graph.hpp",
		"graphle_test/main.cpp",
		"CMakeLists.txt",
	} {
		path := filepath.Join(src, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(rel), 0o644))
	}
	return src
}

func linux() settings.Settings {
	return settings.Settings{OS: "Linux", Compiler: "gcc", CompilerVersion: "13", BuildType: "Release", Arch: "x86_64"}
}

func TestRunner_TestsDisabled(t *testing.T) {
	tools := &fakeTools{}
	pkg := filepath.Join(t.TempDir(), "package")
	before := testutil.ToFloat64(runsTotal.WithLabelValues(statusSuccess))

	r := &Runner{Version: "v0.1.0"}
	res, err := r.Run(context.Background(), Request{
		Settings:   linux(),
		Options:    recipe.DefaultOptions(),
		SourceDir:  newProject(t),
		BuildDir:   t.TempDir(),
		PackageDir: pkg,
		Tools:      tools,
	})
	require.NoError(t, err)

	assert.Empty(t, tools.calls)
	assert.Equal(t, []State{StateDefined, StatePackaging, StateIdentified, StateDone}, res.Trace)
	assert.True(t, res.Succeeded())
	assert.Equal(t, []string{"include/graph/graph.hpp", "include/graphle.hpp"}, res.Package.Paths())
	assert.Equal(t, header.KindRun, res.Kind)
	assert.Equal(t, "graphle/1.0.0", res.Reference)
	assert.Equal(t, "False", res.Options["build_tests"])
	assert.NotContains(t, res.Phases, phaseConfigure)
	assert.Contains(t, res.Phases, phasePackage)

	_, err = uuid.Parse(res.RunID)
	assert.NoError(t, err)

	assert.Equal(t, before+1, testutil.ToFloat64(runsTotal.WithLabelValues(statusSuccess)))
	assert.Equal(t, float64(2), testutil.ToFloat64(packagedFiles))

	require.NoError(t, checksum.Verify(context.Background(), pkg))
	_, err = os.Stat(filepath.Join(pkg, "pkginfo.txt"))
	assert.NoError(t, err)
}

func TestRunner_TestsEnabled(t *testing.T) {
	tools := &fakeTools{}
	pkg := t.TempDir()

	opts, err := recipe.ParseOptions([]string{"build_tests=True"})
	require.NoError(t, err)

	res, err := (&Runner{}).Run(context.Background(), Request{
		Settings:   linux(),
		Options:    opts,
		SourceDir:  newProject(t),
		BuildDir:   t.TempDir(),
		PackageDir: pkg,
		Tools:      tools,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"configure", "build", "test"}, tools.calls)
	assert.Equal(t, []State{
		StateDefined, StateConfiguring, StateBuilding, StateTesting,
		StatePackaging, StateIdentified, StateDone,
	}, res.Trace)
	assert.Equal(t, []string{
		"graphle_test/main.cpp",
		"include/graph/graph.hpp",
		"include/graphle.hpp",
	}, res.Package.Paths())
	for _, phase := range []string{phaseConfigure, phaseBuild, phaseTest, phasePackage, phaseIdentify} {
		assert.Contains(t, res.Phases, phase)
	}
}

func TestRunner_BuildFailure(t *testing.T) {
	tests := []struct {
		failOn string
		trace  []State
	}{
		{"configure", []State{StateDefined, StateConfiguring, StateFailed}},
		{"build", []State{StateDefined, StateConfiguring, StateBuilding, StateFailed}},
		{"test", []State{StateDefined, StateConfiguring, StateBuilding, StateTesting, StateFailed}},
	}

	for _, tt := range tests {
		t.Run(tt.failOn, func(t *testing.T) {
			boom := errors.New("native step failed")
			tools := &fakeTools{failOn: tt.failOn, err: boom}
			pkg := filepath.Join(t.TempDir(), "package")
			before := testutil.ToFloat64(runsTotal.WithLabelValues(statusFailed))

			res, err := (&Runner{}).Run(context.Background(), Request{
				Settings:   linux(),
				Options:    recipe.Options{BuildTests: true},
				SourceDir:  newProject(t),
				BuildDir:   t.TempDir(),
				PackageDir: pkg,
				Tools:      tools,
			})

			assert.Same(t, boom, err)
			require.NotNil(t, res)
			assert.Equal(t, StateFailed, res.State)
			assert.Equal(t, tt.trace, res.Trace)
			assert.Nil(t, res.Package)
			assert.Empty(t, res.PackageID)
			assert.Equal(t, "native step failed", res.Error)
			assert.Equal(t, before+1, testutil.ToFloat64(runsTotal.WithLabelValues(statusFailed)))

			_, statErr := os.Stat(pkg)
			assert.True(t, os.IsNotExist(statErr))
		})
	}
}

func TestRunner_PackageIDIgnoresInputs(t *testing.T) {
	windows := settings.Settings{OS: "Windows", Compiler: "Visual Studio", BuildType: "Debug", Arch: "x86"}

	var ids []string
	for _, s := range []settings.Settings{linux(), windows} {
		for _, o := range []recipe.Options{{BuildTests: false}, {BuildTests: true}} {
			res, err := (&Runner{}).Run(context.Background(), Request{
				Settings:   s,
				Options:    o,
				SourceDir:  newProject(t),
				BuildDir:   t.TempDir(),
				PackageDir: t.TempDir(),
				Tools:      &fakeTools{},
			})
			require.NoError(t, err)
			ids = append(ids, res.PackageID)
		}
	}

	empty := &identity.Info{}
	for _, id := range ids {
		assert.Equal(t, empty.ID(), id)
	}
}

func TestRunner_PackagingFailure(t *testing.T) {
	// a regular file where the package directory should be
	blocker := filepath.Join(t.TempDir(), "package")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	res, err := (&Runner{}).Run(context.Background(), Request{
		Settings:   linux(),
		Options:    recipe.DefaultOptions(),
		SourceDir:  newProject(t),
		PackageDir: blocker,
	})
	require.Error(t, err)
	assert.Equal(t, StateFailed, res.State)
	assert.Equal(t, []State{StateDefined, StatePackaging, StateFailed}, res.Trace)
}

func TestRunner_BuildDirInsideSourceIsNotPackaged(t *testing.T) {
	src := newProject(t)
	buildDir := filepath.Join(src, "build")
	pkg := filepath.Join(src, "package")
	tools := &fakeTools{buildDir: buildDir}

	res, err := (&Runner{}).Run(context.Background(), Request{
		Settings:   linux(),
		Options:    recipe.Options{BuildTests: true},
		SourceDir:  src,
		BuildDir:   buildDir,
		PackageDir: pkg,
		Tools:      tools,
	})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(buildDir, "CMakeFiles", "3.28", "CompilerIdCXX", "CMakeCXXCompilerId.cpp"))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"graphle_test/main.cpp",
		"include/graph/graph.hpp",
		"include/graphle.hpp",
	}, res.Package.Paths())
	_, err = os.Stat(filepath.Join(pkg, "build"))
	assert.True(t, os.IsNotExist(err))
}
