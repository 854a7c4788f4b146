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
	"crypto/sha1" //nolint:gosec // package ids are fingerprints, not security boundaries
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/NVIDIA/graphle-recipe/pkg/defaults"
	"github.com/NVIDIA/graphle-recipe/pkg/errors"
	"github.com/NVIDIA/graphle-recipe/pkg/settings"
)

const (
	sectionSettings = "settings"
	sectionOptions  = "options"
	sectionRequires = "requires"
	sectionID       = "package_id"
)

// Info is the record of inputs that determine a package's identity.
type Info struct {
	Settings map[string]string `json:"settings" yaml:"settings"`
	Options  map[string]string `json:"options" yaml:"options"`
	Requires map[string]string `json:"requires" yaml:"requires"`
}

// NewInfo returns the info record for a build with the given settings and
// options. Requirements start empty; graphle has none.
func NewInfo(s settings.Settings, options map[string]string) *Info {
	opts := make(map[string]string, len(options))
	for k, v := range options {
		opts[k] = v
	}
	return &Info{
		Settings: s.Map(),
		Options:  opts,
		Requires: map[string]string{},
	}
}

// Clear removes every input from the record.
func (i *Info) Clear() {
	i.Settings = map[string]string{}
	i.Options = map[string]string{}
	i.Requires = map[string]string{}
}

// IsEmpty reports whether the record carries no inputs.
func (i *Info) IsEmpty() bool {
	return len(i.Settings) == 0 && len(i.Options) == 0 && len(i.Requires) == 0
}

// String renders the record canonically: one section per input kind,
// keys sorted, one "name=value" line each.
func (i *Info) String() string {
	var b strings.Builder
	writeSection(&b, sectionSettings, i.Settings)
	writeSection(&b, sectionOptions, i.Options)
	writeSection(&b, sectionRequires, i.Requires)
	return b.String()
}

// ID returns the lowercase hex SHA-1 of the canonical rendering.
func (i *Info) ID() string {
	sum := sha1.Sum([]byte(i.String())) //nolint:gosec
	return hex.EncodeToString(sum[:])
}

// Write stores the canonical rendering and the id in dir/pkginfo.txt.
func (i *Info) Write(dir string) (string, error) {
	path := filepath.Join(dir, defaults.PackageInfoFileName)
	id := i.ID()

	content := i.String() + "[" + sectionID + "]\n" + id + "\n"
	if err := os.WriteFile(path, []byte(content), defaults.FileMode); err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeInternal, "failed to write package info", err,
			map[string]any{"path": path})
	}

	slog.Debug("package info written", "path", path, "package_id", id)
	return path, nil
}

func writeSection(b *strings.Builder, name string, values map[string]string) {
	b.WriteString("[" + name + "]\n")

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		b.WriteString(k + "=" + values[k] + "\n")
	}
}
