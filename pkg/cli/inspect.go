/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/graphle-recipe/pkg/recipe"
)

func inspectCmd() *cli.Command {
	return &cli.Command{
		Name:  "inspect",
		Usage: "Print the recipe metadata",
		Description: `Print the package metadata, exported sources, declared settings and
options of the recipe.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			m := recipe.New().Metadata()
			if err := m.Validate(); err != nil {
				return err
			}
			return writeOutput(ctx, cmd, m.Document(version))
		},
	}
}
