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

package artifact

import (
	"fmt"
	"sort"
	"strings"
)

// File is one file of the artifact.
type File struct {
	// Path is slash-separated and relative to the artifact directory.
	Path string `json:"path" yaml:"path"`

	// Source is the host path the file was copied from.
	Source string `json:"source" yaml:"source"`

	Size int64 `json:"size" yaml:"size"`
}

// Artifact is the set of files delivered into a directory.
type Artifact struct {
	Dir   string `json:"dir" yaml:"dir"`
	Files []File `json:"files" yaml:"files"`
}

// New returns an empty artifact rooted at dir.
func New(dir string) *Artifact {
	return &Artifact{Dir: dir, Files: []File{}}
}

// Add records files. A file whose Path is already present replaces the
// earlier entry, mirroring the overwrite on disk.
func (a *Artifact) Add(files ...File) {
	for _, f := range files {
		replaced := false
		for i := range a.Files {
			if a.Files[i].Path == f.Path {
				a.Files[i] = f
				replaced = true
				break
			}
		}
		if !replaced {
			a.Files = append(a.Files, f)
		}
	}
}

// Count returns the number of files.
func (a *Artifact) Count() int {
	return len(a.Files)
}

// TotalSize returns the sum of file sizes in bytes.
func (a *Artifact) TotalSize() int64 {
	var total int64
	for _, f := range a.Files {
		total += f.Size
	}
	return total
}

// Paths returns the sorted relative paths.
func (a *Artifact) Paths() []string {
	paths := make([]string, 0, len(a.Files))
	for _, f := range a.Files {
		paths = append(paths, f.Path)
	}
	sort.Strings(paths)
	return paths
}

// HasSuffix reports whether any file path ends with suffix.
func (a *Artifact) HasSuffix(suffix string) bool {
	for _, f := range a.Files {
		if strings.HasSuffix(f.Path, suffix) {
			return true
		}
	}
	return false
}

// Summary returns a human-readable one-line summary.
func (a *Artifact) Summary() string {
	return fmt.Sprintf("%d files (%s) in %s", a.Count(), formatBytes(a.TotalSize()), a.Dir)
}

// formatBytes formats bytes into human-readable format.
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
