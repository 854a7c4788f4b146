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
	"log/slog"
)

// Export copies the files selected by patterns from projectDir into exportDir.
// Patterns are applied in order; later matches overwrite earlier ones.
func Export(ctx context.Context, projectDir, exportDir string, patterns []string) (*Artifact, error) {
	var c Copier
	a := New(exportDir)

	for _, pattern := range patterns {
		if err := c.CopyInto(ctx, a, pattern, projectDir, ""); err != nil {
			return a, err
		}
	}

	slog.Info("sources exported",
		"project", projectDir,
		"export", exportDir,
		"files", a.Count(),
	)
	return a, nil
}
