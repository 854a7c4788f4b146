/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/graphle-recipe/pkg/identity"
	"github.com/NVIDIA/graphle-recipe/pkg/recipe"
)

// packageIDOutput is the package-id command's document.
type packageIDOutput struct {
	Reference string         `json:"reference" yaml:"reference"`
	PackageID string         `json:"packageId" yaml:"packageId"`
	Info      *identity.Info `json:"info" yaml:"info"`
}

func packageIDCmd() *cli.Command {
	return &cli.Command{
		Name:  "package-id",
		Usage: "Print the package id for a configuration",
		Description: `Compute the package id the recipe assigns to the given settings and
options. graphle is header-only, so every configuration yields the same id.`,
		Flags: []cli.Flag{
			optionFlag(),
			settingFlag(),
			profileFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, opts, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			r := recipe.New()
			info := identity.NewInfo(s, opts.Map())
			r.PackageID(info)

			return writeOutput(ctx, cmd, &packageIDOutput{
				Reference: r.Metadata().Reference(),
				PackageID: info.ID(),
				Info:      info,
			})
		},
	}
}
