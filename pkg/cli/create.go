/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/graphle-recipe/pkg/defaults"
	"github.com/NVIDIA/graphle-recipe/pkg/lifecycle"
	"github.com/NVIDIA/graphle-recipe/pkg/native"
)

func createCmd() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Build, test and package the library",
		Description: `Run the recipe lifecycle against a project directory:

  1. build    - with build_tests=True, configure with GRAPHLE_TESTS=ON,
                build and run the tests through CMake; otherwise skipped.
  2. package  - copy graphle/**.hpp into include/, plus the *.cpp test
                sources when build_tests=True.
  3. identify - compute the package id and write pkginfo.txt.

Settings are detected from the host and can be changed with a profile
and -s overrides. Options default to build_tests=False.`,
		Flags: []cli.Flag{
			optionFlag(),
			settingFlag(),
			profileFlag(),
			&cli.StringFlag{
				Name:  "source",
				Value: ".",
				Usage: "Project root directory containing graphle/",
			},
			&cli.StringFlag{
				Name:  "build",
				Value: defaults.BuildDir,
				Usage: "Native build directory",
			},
			&cli.StringFlag{
				Name:  "package",
				Value: defaults.PackageDir,
				Usage: "Package output directory",
			},
			&cli.StringFlag{
				Name:  "generator",
				Usage: "CMake generator (e.g. Ninja)",
			},
			&cli.StringFlag{
				Name:  "metrics-file",
				Usage: "Write run metrics in Prometheus text format to this file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, opts, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			if path := cmd.String("metrics-file"); path != "" {
				defer func() {
					if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
						slog.Warn("failed to write metrics", "path", path, "error", err)
					}
				}()
			}

			req := lifecycle.Request{
				Settings:   s,
				Options:    opts,
				SourceDir:  cmd.String("source"),
				BuildDir:   cmd.String("build"),
				PackageDir: cmd.String("package"),
			}
			if opts.BuildTests {
				req.Tools = native.NewCMake(req.SourceDir, req.BuildDir, s,
					native.WithGenerator(cmd.String("generator")))
			}

			runner := &lifecycle.Runner{Version: version}
			res, err := runner.Run(ctx, req)
			if err != nil {
				return err
			}
			return writeOutput(ctx, cmd, res)
		},
	}
}
