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

// Package serializer provides encoding and decoding of documents in multiple formats.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, indented output
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable; the format profiles are written in
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - Flattened FIELD/VALUE rows for terminal viewing
//   - Write-only (no deserialization support)
//
// # Usage - Encoding
//
//	w, err := serializer.NewFileWriterOrStdout(serializer.FormatYAML, "")
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//	if err := w.Serialize(ctx, result); err != nil {
//	    return err
//	}
//
// # Usage - Decoding
//
//	profile, err := serializer.FromFile[settings.Profile]("gcc13.yaml")
//	if err != nil {
//	    return err
//	}
//
// Decoding rejects unknown fields, so a misspelled key in a profile is an error
// rather than a silently ignored setting.
package serializer
