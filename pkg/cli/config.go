/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/graphle-recipe/pkg/recipe"
	"github.com/NVIDIA/graphle-recipe/pkg/settings"
)

func optionFlag() *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:    "option",
		Aliases: []string{"o"},
		Usage: fmt.Sprintf("Option override as name=value, repeatable (supported options: %s)",
			strings.Join(recipe.OptionNames(), ", ")),
	}
}

func settingFlag() *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:    "setting",
		Aliases: []string{"s"},
		Usage: fmt.Sprintf("Setting override as name=value, repeatable (supported settings: %s)",
			strings.Join(settings.Names(), ", ")),
	}
}

func profileFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "profile",
		Usage: "Path to a YAML or JSON profile with settings and options",
	}
}

// resolveConfig builds the settings and options of a run. Precedence, lowest
// first: detected host and option defaults, profile, command-line overrides.
func resolveConfig(cmd *cli.Command) (settings.Settings, recipe.Options, error) {
	s := settings.Detect()
	opts := recipe.DefaultOptions()

	if path := cmd.String("profile"); path != "" {
		p, err := settings.LoadProfile(path)
		if err != nil {
			return s, opts, err
		}
		if err := p.ApplyTo(&s); err != nil {
			return s, opts, err
		}
		values, err := p.OptionValues()
		if err != nil {
			return s, opts, err
		}
		if err := opts.Merge(values); err != nil {
			return s, opts, err
		}
		slog.Debug("profile applied", "profile", path)
	}

	if err := s.Apply(cmd.StringSlice("setting")); err != nil {
		return s, opts, err
	}
	for _, ov := range cmd.StringSlice("option") {
		n, v, err := settings.SplitAssignment(ov)
		if err != nil {
			return s, opts, err
		}
		if err := opts.Set(n, v); err != nil {
			return s, opts, err
		}
	}

	return s, opts, nil
}
