/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/graphle-recipe/pkg/checksum"
	"github.com/NVIDIA/graphle-recipe/pkg/defaults"
)

func verifyCmd() *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "Check a package against its checksums",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "package",
				Value: defaults.PackageDir,
				Usage: "Package directory containing " + checksum.FileName,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir := cmd.String("package")
			if err := checksum.Verify(ctx, dir); err != nil {
				return err
			}
			slog.Info("package verified", "dir", dir)
			return nil
		},
	}
}
