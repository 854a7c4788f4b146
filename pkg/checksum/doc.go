/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package checksum provides SHA256 checksum generation for package verification.
//
// The lifecycle driver calls Generate after packaging so every delivered file
// is listed in checksums.txt next to the package content:
//
//	err := checksum.Generate(ctx, "/path/to/package", artifact.Paths())
//	if err != nil {
//	    return err
//	}
//
// The checksums.txt file format is compatible with sha256sum:
//
//	sha256sum -c checksums.txt
//
// Verify re-reads the file and reports every path whose content changed.
package checksum
