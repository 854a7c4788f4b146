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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/graphle-recipe/pkg/header"
)

func TestGraphle(t *testing.T) {
	m := Graphle()

	assert.Equal(t, "graphle", m.Name())
	assert.Equal(t, "1.0.0", m.Version())
	assert.Equal(t, "MIT", m.License())
	assert.Equal(t, "https://github.com/ClawmanCat/Graphle", m.URL())
	assert.Equal(t, "A C++20 header-only graph library.", m.Description())
	assert.Equal(t, "graphle/1.0.0", m.Reference())
	assert.True(t, m.NoCopySource())
	assert.Equal(t, []string{"graphle/*", "graphle_test/*", "LICENSE", "CMakeLists.txt"}, m.ExportsSources())
	assert.Equal(t, []string{"os", "compiler", "build_type", "arch"}, m.Settings())
	assert.Equal(t, []string{"cmake"}, m.Generators())
	assert.NoError(t, m.Validate())
}

func TestMetadata_AccessorsReturnCopies(t *testing.T) {
	m := Graphle()
	exports := m.ExportsSources()
	exports[0] = "changed"

	assert.Equal(t, "graphle/*", m.ExportsSources()[0])
}

func TestMetadata_Validate(t *testing.T) {
	m := Graphle()
	m.version = "1.0"
	assert.Error(t, m.Validate())

	m = Graphle()
	m.license = ""
	assert.Error(t, m.Validate())

	m = Graphle()
	m.exports = nil
	assert.Error(t, m.Validate())
}

func TestMetadata_Document(t *testing.T) {
	d := Graphle().Document("v0.3.0")
	require.NotNil(t, d)

	assert.Equal(t, header.KindRecipe, d.Kind)
	assert.Equal(t, header.APIVersion, d.APIVersion)
	assert.Equal(t, "v0.3.0", d.Metadata["recipe-version"])
	assert.Equal(t, "graphle", d.Name)
	assert.Equal(t, map[string][]bool{"build_tests": {true, false}}, d.Options)
	assert.Equal(t, map[string]string{"build_tests": "False"}, d.DefaultOptions)
}
