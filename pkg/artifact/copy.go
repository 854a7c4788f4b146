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
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/NVIDIA/graphle-recipe/pkg/defaults"
	"github.com/NVIDIA/graphle-recipe/pkg/errors"
)

// Copier copies files selected by a pattern from one tree into another.
// The zero value is ready to use.
type Copier struct {
	// Exclude lists directories that are never descended into, such as a
	// build directory inside the source tree.
	Exclude []string
}

// Copy walks src and copies every regular file whose relative path matches
// pattern to dst, keeping the relative path. Existing destination files are
// overwritten. A missing src yields no files and no error. The destination
// and every Exclude directory are skipped when they lie inside src.
func (c *Copier) Copy(ctx context.Context, pattern, src, dst string) ([]File, error) {
	p, err := CompilePattern(pattern)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "invalid copy pattern", err)
	}

	info, statErr := os.Stat(src)
	if statErr != nil {
		if os.IsNotExist(statErr) {
			slog.Debug("copy source missing, nothing to copy", "pattern", pattern, "src", src)
			return nil, nil
		}
		return nil, errors.WrapWithContext(errors.ErrCodeInternal, "failed to stat copy source", statErr,
			map[string]any{"src": src})
	}
	if !info.IsDir() {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest, "copy source is not a directory",
			map[string]any{"src": src})
	}

	skip := make(map[string]bool)
	for _, dir := range append([]string{dst}, c.Exclude...) {
		if dir == "" {
			continue
		}
		if nested := nestedDir(src, dir); nested != "" {
			skip[nested] = true
		}
	}
	var files []File

	walkErr := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			if skip[path] {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if !p.Match(rel) {
			return nil
		}

		target := filepath.Join(dst, filepath.FromSlash(rel))
		size, err := copyFile(path, target)
		if err != nil {
			return errors.WrapWithContext(errors.ErrCodeInternal, "failed to copy file", err,
				map[string]any{"src": path, "dst": target})
		}

		slog.Debug("copy", "src", path, "dst", target, "bytes", size)
		files = append(files, File{Path: rel, Source: path, Size: size})
		return nil
	})
	if walkErr != nil {
		if errors.CodeOf(walkErr) != "" {
			return files, walkErr
		}
		return files, errors.WrapWithContext(errors.ErrCodeInternal, "failed to walk copy source", walkErr,
			map[string]any{"src": src, "pattern": pattern})
	}

	return files, nil
}

// CopyInto is Copy followed by recording the files in a under prefix, the
// path of dst relative to the artifact directory.
func (c *Copier) CopyInto(ctx context.Context, a *Artifact, pattern, src, prefix string) error {
	files, err := c.Copy(ctx, pattern, src, filepath.Join(a.Dir, filepath.FromSlash(prefix)))
	for i := range files {
		if prefix != "" {
			files[i].Path = strings.TrimSuffix(prefix, "/") + "/" + files[i].Path
		}
	}
	a.Add(files...)
	return err
}

func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), defaults.DirMode); err != nil {
		return 0, err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, defaults.FileMode)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(out, in)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	return n, err
}

// nestedDir returns dst when it lies strictly inside src, so the walk does not
// descend into its own output.
func nestedDir(src, dst string) string {
	absSrc, err1 := filepath.Abs(src)
	absDst, err2 := filepath.Abs(dst)
	if err1 != nil || err2 != nil {
		return ""
	}
	rel, err := filepath.Rel(absSrc, absDst)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ""
	}
	return filepath.Join(src, rel)
}
