/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/graphle-recipe/pkg/artifact"
	"github.com/NVIDIA/graphle-recipe/pkg/defaults"
	"github.com/NVIDIA/graphle-recipe/pkg/recipe"
)

func exportCmd() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Copy the recipe's exported sources out of a project",
		Description: `Copy the files matched by the recipe's exports_sources patterns
(graphle/*, graphle_test/*, LICENSE, CMakeLists.txt) from the project
directory into the export directory, keeping relative paths.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "project",
				Value: ".",
				Usage: "Project root directory",
			},
			&cli.StringFlag{
				Name:  "dir",
				Value: defaults.ExportDir,
				Usage: "Export directory",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			patterns := recipe.New().Metadata().ExportsSources()
			a, err := artifact.Export(ctx, cmd.String("project"), cmd.String("dir"), patterns)
			if err != nil {
				return err
			}
			return writeOutput(ctx, cmd, a)
		},
	}
}
