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

package recipe

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/NVIDIA/graphle-recipe/pkg/errors"
	"github.com/NVIDIA/graphle-recipe/pkg/settings"
)

// OptionBuildTests is the only option the recipe declares.
const OptionBuildTests = "build_tests"

// Options is the recipe's option set.
type Options struct {
	// BuildTests enables configuring, building and running the test suite,
	// and ships the test sources with the package.
	BuildTests bool `json:"build_tests" yaml:"build_tests"`
}

// DefaultOptions returns the option values used when the host overrides nothing.
func DefaultOptions() Options {
	return Options{BuildTests: false}
}

// OptionNames returns the recognized option names.
func OptionNames() []string {
	return []string{OptionBuildTests}
}

// ParseOptions applies "name=value" overrides on top of the defaults.
func ParseOptions(overrides []string) (Options, error) {
	o := DefaultOptions()
	for _, ov := range overrides {
		name, value, err := settings.SplitAssignment(ov)
		if err != nil {
			return o, err
		}
		if err := o.Set(name, value); err != nil {
			return o, err
		}
	}
	return o, nil
}

// Merge applies a name to value map, in sorted name order.
func (o *Options) Merge(m map[string]string) error {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := o.Set(name, m[name]); err != nil {
			return err
		}
	}
	return nil
}

// Set assigns a single option. Unknown names and values outside the
// option's domain are rejected.
func (o *Options) Set(name, value string) error {
	switch strings.TrimSpace(name) {
	case OptionBuildTests:
		b, err := parseBool(value)
		if err != nil {
			return errors.WrapWithContext(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("invalid value %q for option %s (allowed: True, False)", value, OptionBuildTests),
				err, map[string]any{"option": OptionBuildTests, "value": value})
		}
		o.BuildTests = b
		return nil
	default:
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown option %q (supported: %s)", name, strings.Join(OptionNames(), ", ")),
			map[string]any{"option": name})
	}
}

// Map renders the options the way a package info record stores them.
func (o Options) Map() map[string]string {
	return map[string]string{OptionBuildTests: formatBool(o.BuildTests)}
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "on":
		return true, nil
	case "false", "0", "off":
		return false, nil
	default:
		return false, strconv.ErrSyntax
	}
}

func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
