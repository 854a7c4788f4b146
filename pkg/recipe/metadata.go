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
	"fmt"

	"github.com/NVIDIA/graphle-recipe/pkg/defaults"
	"github.com/NVIDIA/graphle-recipe/pkg/errors"
	"github.com/NVIDIA/graphle-recipe/pkg/header"
	"github.com/NVIDIA/graphle-recipe/pkg/settings"
	"github.com/NVIDIA/graphle-recipe/pkg/version"
)

// Metadata describes the package. It is immutable; slice accessors return copies.
type Metadata struct {
	name         string
	version      string
	license      string
	url          string
	description  string
	exports      []string
	noCopySource bool
	settingNames []string
	generators   []string
}

// Graphle returns the metadata of the graphle package.
func Graphle() Metadata {
	return Metadata{
		name:        "graphle",
		version:     "1.0.0",
		license:     "MIT",
		url:         "https://github.com/ClawmanCat/Graphle",
		description: "A C++20 header-only graph library.",
		exports: []string{
			defaults.LibrarySourceDir + "/*",
			defaults.LibrarySourceDir + "_test/*",
			"LICENSE",
			"CMakeLists.txt",
		},
		noCopySource: true,
		settingNames: []string{
			settings.NameOS,
			settings.NameCompiler,
			settings.NameBuildType,
			settings.NameArch,
		},
		generators: []string{"cmake"},
	}
}

func (m Metadata) Name() string        { return m.name }
func (m Metadata) Version() string     { return m.version }
func (m Metadata) License() string     { return m.license }
func (m Metadata) URL() string         { return m.url }
func (m Metadata) Description() string { return m.description }

// NoCopySource reports that the build reads sources in place instead of
// copying them into the build directory.
func (m Metadata) NoCopySource() bool { return m.noCopySource }

// ExportsSources returns the patterns of project files shipped with the recipe.
func (m Metadata) ExportsSources() []string { return append([]string(nil), m.exports...) }

// Settings returns the names of the settings the package declares.
func (m Metadata) Settings() []string { return append([]string(nil), m.settingNames...) }

// Generators returns the build file generators the recipe requests.
func (m Metadata) Generators() []string { return append([]string(nil), m.generators...) }

// Reference returns "name/version".
func (m Metadata) Reference() string {
	return m.name + "/" + m.version
}

// Validate checks that the metadata is complete and the version is semver.
func (m Metadata) Validate() error {
	for field, v := range map[string]string{
		"name":        m.name,
		"license":     m.license,
		"url":         m.url,
		"description": m.description,
	} {
		if v == "" {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("package %s is required", field), map[string]any{"field": field})
		}
	}
	if _, err := version.ParseVersion(m.version); err != nil {
		return errors.WrapWithContext(errors.ErrCodeInvalidRequest, "invalid package version", err,
			map[string]any{"version": m.version})
	}
	if len(m.exports) == 0 {
		return errors.New(errors.ErrCodeInvalidRequest, "package exports no sources")
	}
	return nil
}

// Document is the serializable form of Metadata.
type Document struct {
	header.Header `json:",inline" yaml:",inline"`

	Name           string            `json:"name" yaml:"name"`
	Version        string            `json:"version" yaml:"version"`
	License        string            `json:"license" yaml:"license"`
	URL            string            `json:"url" yaml:"url"`
	Description    string            `json:"description" yaml:"description"`
	ExportsSources []string          `json:"exportsSources" yaml:"exportsSources"`
	NoCopySource   bool              `json:"noCopySource" yaml:"noCopySource"`
	Settings       []string          `json:"settings" yaml:"settings"`
	Options        map[string][]bool `json:"options" yaml:"options"`
	DefaultOptions map[string]string `json:"defaultOptions" yaml:"defaultOptions"`
	Generators     []string          `json:"generators" yaml:"generators"`
}

// Document returns the serializable description of the recipe, stamped with
// the tool version.
func (m Metadata) Document(toolVersion string) *Document {
	d := &Document{
		Name:           m.name,
		Version:        m.version,
		License:        m.license,
		URL:            m.url,
		Description:    m.description,
		ExportsSources: m.ExportsSources(),
		NoCopySource:   m.noCopySource,
		Settings:       m.Settings(),
		Options:        map[string][]bool{OptionBuildTests: {true, false}},
		DefaultOptions: DefaultOptions().Map(),
		Generators:     m.Generators(),
	}
	d.Init(header.KindRecipe, toolVersion)
	return d
}
