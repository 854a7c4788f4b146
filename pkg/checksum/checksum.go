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

package checksum

import (
	"bufio"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/graphle-recipe/pkg/defaults"
	"github.com/NVIDIA/graphle-recipe/pkg/errors"
)

// FileName is the standard name for checksum files.
const FileName = "checksums.txt"

// Entry is one line of a checksum file.
type Entry struct {
	Sum  string
	Path string
}

// Generate writes a checksums.txt file into dir containing the SHA256 sum of
// each file. Files are slash-separated paths relative to dir and are written
// in sorted order. Files are hashed concurrently.
func Generate(ctx context.Context, dir string, files []string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(errors.ErrCodeUnavailable, "context cancelled", err)
	}

	sorted := append([]string(nil), files...)
	sort.Strings(sorted)

	sums := make([]string, len(sorted))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, rel := range sorted {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sum, err := fileSum(filepath.Join(dir, filepath.FromSlash(rel)))
			if err != nil {
				return errors.WrapWithContext(errors.ErrCodeInternal, "failed to checksum file", err,
					map[string]any{"file": rel})
			}
			sums[i] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var b strings.Builder
	for i, rel := range sorted {
		fmt.Fprintf(&b, "%s  %s\n", sums[i], rel)
	}

	path := FilePath(dir)
	if err := os.WriteFile(path, []byte(b.String()), defaults.FileMode); err != nil {
		return errors.WrapWithContext(errors.ErrCodeInternal, "failed to write checksums", err,
			map[string]any{"path": path})
	}

	slog.Debug("checksums generated",
		"file_count", len(sorted),
		"path", path,
	)

	return nil
}

// Read parses the checksums.txt file in dir.
func Read(dir string) ([]Entry, error) {
	path := FilePath(dir)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeNotFound, "checksums file not found", err)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to open checksums file", err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for line := 1; scanner.Scan(); line++ {
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		sum, rel, ok := strings.Cut(text, "  ")
		if !ok || len(sum) != hex.EncodedLen(sha256.Size) || rel == "" {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest, "malformed checksum line",
				map[string]any{"path": path, "line": line})
		}
		entries = append(entries, Entry{Sum: sum, Path: rel})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to read checksums file", err)
	}
	return entries, nil
}

// Verify re-computes every sum listed in dir's checksums.txt. The returned
// error lists all files that are missing or whose content changed.
func Verify(ctx context.Context, dir string) error {
	entries, err := Read(dir)
	if err != nil {
		return err
	}

	var mismatched []string
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(errors.ErrCodeUnavailable, "context cancelled", err)
		}
		sum, err := fileSum(filepath.Join(dir, filepath.FromSlash(e.Path)))
		if err != nil || sum != e.Sum {
			mismatched = append(mismatched, e.Path)
		}
	}

	if len(mismatched) > 0 {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest, "checksum verification failed",
			map[string]any{"files": mismatched})
	}

	slog.Debug("checksums verified", "file_count", len(entries), "dir", dir)
	return nil
}

// FilePath returns the full path to the checksums.txt file in dir.
func FilePath(dir string) string {
	return filepath.Join(dir, FileName)
}

func fileSum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
