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

package settings

import (
	"fmt"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/NVIDIA/graphle-recipe/pkg/errors"
)

// Recognized setting names.
const (
	NameOS              = "os"
	NameCompiler        = "compiler"
	NameCompilerVersion = "compiler.version"
	NameBuildType       = "build_type"
	NameArch            = "arch"
)

// DefaultBuildType is used when no build_type is given.
const DefaultBuildType = "Release"

// Settings is the build context handed to each lifecycle call. The recipe
// treats it as opaque; only the native build system reads it.
type Settings struct {
	OS              string `json:"os,omitempty" yaml:"os,omitempty"`
	Compiler        string `json:"compiler,omitempty" yaml:"compiler,omitempty"`
	CompilerVersion string `json:"compiler.version,omitempty" yaml:"compiler.version,omitempty"`
	BuildType       string `json:"build_type,omitempty" yaml:"build_type,omitempty"`
	Arch            string `json:"arch,omitempty" yaml:"arch,omitempty"`
}

var (
	osNames = map[string]string{
		"linux":   "Linux",
		"darwin":  "Macos",
		"macos":   "Macos",
		"windows": "Windows",
		"freebsd": "FreeBSD",
	}

	archNames = map[string]string{
		"amd64":   "x86_64",
		"x86_64":  "x86_64",
		"386":     "x86",
		"x86":     "x86",
		"arm64":   "armv8",
		"aarch64": "armv8",
		"armv8":   "armv8",
		"arm":     "armv7",
	}

	buildTypes = map[string]string{
		"debug":          "Debug",
		"release":        "Release",
		"relwithdebinfo": "RelWithDebInfo",
		"minsizerel":     "MinSizeRel",
	}

	defaultCompilers = map[string]string{
		"Linux":   "gcc",
		"Macos":   "apple-clang",
		"Windows": "Visual Studio",
		"FreeBSD": "clang",
	}
)

// Detect returns settings describing the running host.
func Detect() Settings {
	s := Settings{
		OS:        normalizeOS(runtime.GOOS),
		Arch:      normalizeArch(runtime.GOARCH),
		BuildType: DefaultBuildType,
	}
	s.Compiler = defaultCompilers[s.OS]
	return s
}

// Names returns the recognized setting names in sorted order.
func Names() []string {
	names := []string{NameOS, NameCompiler, NameCompilerVersion, NameBuildType, NameArch}
	sort.Strings(names)
	return names
}

// Set assigns a single setting by name, normalizing the value.
func (s *Settings) Set(name, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("setting %q requires a value", name),
			map[string]any{"setting": name})
	}

	switch strings.TrimSpace(name) {
	case NameOS:
		s.OS = normalizeOS(value)
	case NameCompiler:
		s.Compiler = normalizeCompiler(value)
	case NameCompilerVersion:
		s.CompilerVersion = value
	case NameBuildType:
		s.BuildType = normalizeBuildType(value)
	case NameArch:
		s.Arch = normalizeArch(value)
	default:
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown setting %q (supported: %s)", name, strings.Join(Names(), ", ")),
			map[string]any{"setting": name})
	}
	return nil
}

// Apply parses name=value overrides and sets them in order.
func (s *Settings) Apply(overrides []string) error {
	for _, o := range overrides {
		name, value, err := SplitAssignment(o)
		if err != nil {
			return err
		}
		if err := s.Set(name, value); err != nil {
			return err
		}
	}
	return nil
}

// Merge sets every entry of m, in sorted key order.
func (s *Settings) Merge(m map[string]string) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := s.Set(k, m[k]); err != nil {
			return err
		}
	}
	return nil
}

// Map returns the non-empty settings keyed by name.
func (s Settings) Map() map[string]string {
	m := make(map[string]string, 5)
	for k, v := range map[string]string{
		NameOS:              s.OS,
		NameCompiler:        s.Compiler,
		NameCompilerVersion: s.CompilerVersion,
		NameBuildType:       s.BuildType,
		NameArch:            s.Arch,
	} {
		if v != "" {
			m[k] = v
		}
	}
	return m
}

// IsVisualStudio reports whether the compiler is an MSVC flavour, which
// changes the name of the CMake test target.
func (s Settings) IsVisualStudio() bool {
	return s.Compiler == "Visual Studio" || s.Compiler == "msvc"
}

// SplitAssignment splits "name=value" around the first '='.
func SplitAssignment(s string) (string, string, error) {
	name, value, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", "", errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid assignment %q (format: name=value)", s),
			map[string]any{"assignment": s})
	}
	return name, strings.TrimSpace(value), nil
}

func normalizeOS(v string) string {
	if n, ok := osNames[lower(v)]; ok {
		return n
	}
	return title(v)
}

func normalizeArch(v string) string {
	l := lower(v)
	if n, ok := archNames[l]; ok {
		return n
	}
	return l
}

func normalizeBuildType(v string) string {
	if n, ok := buildTypes[lower(v)]; ok {
		return n
	}
	return title(v)
}

func normalizeCompiler(v string) string {
	l := lower(v)
	if l == "visual studio" {
		return "Visual Studio"
	}
	return l
}

// Casers carry state and must not be shared between goroutines.
func lower(v string) string {
	return cases.Lower(language.Und).String(v)
}

func title(v string) string {
	return cases.Title(language.Und).String(v)
}
