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

package identity

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/graphle-recipe/pkg/settings"
)

func linuxGCC() settings.Settings {
	return settings.Settings{OS: "Linux", Compiler: "gcc", CompilerVersion: "13", BuildType: "Release", Arch: "x86_64"}
}

func TestInfo_String(t *testing.T) {
	info := NewInfo(linuxGCC(), map[string]string{"build_tests": "False"})

	want := "[settings]\n" +
		"arch=x86_64\n" +
		"build_type=Release\n" +
		"compiler=gcc\n" +
		"compiler.version=13\n" +
		"os=Linux\n" +
		"[options]\n" +
		"build_tests=False\n" +
		"[requires]\n"
	assert.Equal(t, want, info.String())
}

func TestInfo_IDDependsOnInputs(t *testing.T) {
	a := NewInfo(linuxGCC(), map[string]string{"build_tests": "False"})
	b := NewInfo(linuxGCC(), map[string]string{"build_tests": "True"})

	debug := linuxGCC()
	debug.BuildType = "Debug"
	c := NewInfo(debug, map[string]string{"build_tests": "False"})

	assert.NotEqual(t, a.ID(), b.ID())
	assert.NotEqual(t, a.ID(), c.ID())
	assert.Len(t, a.ID(), 40)
}

func TestInfo_ClearedIDIsConstant(t *testing.T) {
	windows := settings.Settings{OS: "Windows", Compiler: "Visual Studio", BuildType: "Debug", Arch: "armv8"}

	infos := []*Info{
		NewInfo(linuxGCC(), map[string]string{"build_tests": "False"}),
		NewInfo(linuxGCC(), map[string]string{"build_tests": "True"}),
		NewInfo(windows, nil),
		{},
	}

	empty := "[settings]\n[options]\n[requires]\n"
	var first string
	for i, info := range infos {
		info.Clear()
		require.True(t, info.IsEmpty())
		assert.Equal(t, empty, info.String())
		if i == 0 {
			first = info.ID()
			continue
		}
		assert.Equal(t, first, info.ID())
	}
}

func TestNewInfo_CopiesOptions(t *testing.T) {
	opts := map[string]string{"build_tests": "False"}
	info := NewInfo(linuxGCC(), opts)
	opts["build_tests"] = "True"

	assert.Equal(t, "False", info.Options["build_tests"])
	assert.False(t, info.IsEmpty())
}

func TestInfo_Write(t *testing.T) {
	dir := t.TempDir()
	info := NewInfo(linuxGCC(), nil)
	info.Clear()

	path, err := info.Write(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "pkginfo.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, "[package_id]", lines[len(lines)-2])
	assert.Equal(t, info.ID(), lines[len(lines)-1])
}

func TestInfo_WriteMissingDir(t *testing.T) {
	info := &Info{}
	_, err := info.Write(filepath.Join(t.TempDir(), "missing", "dir"))
	assert.Error(t, err)
}
