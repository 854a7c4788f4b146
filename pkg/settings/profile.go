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

package settings

import (
	"fmt"
	"os"
	"strconv"

	"github.com/NVIDIA/graphle-recipe/pkg/errors"
	"github.com/NVIDIA/graphle-recipe/pkg/header"
	"github.com/NVIDIA/graphle-recipe/pkg/serializer"
)

// Profile is a reusable set of setting and option overrides.
//
//	kind: Profile
//	apiVersion: graphle.recipe/v1
//	settings:
//	  os: Linux
//	  compiler: gcc
//	  compiler.version: "13"
//	  build_type: Debug
//	options:
//	  build_tests: True
//
// Values may be strings, booleans or numbers in either format.
type Profile struct {
	header.Header `json:",inline" yaml:",inline"`

	Settings map[string]any `json:"settings,omitempty" yaml:"settings,omitempty"`
	Options  map[string]any `json:"options,omitempty" yaml:"options,omitempty"`
}

// LoadProfile reads a profile from a YAML or JSON file.
func LoadProfile(path string) (*Profile, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeNotFound,
			"profile not found", err, map[string]any{"profile": path})
	}

	p, err := serializer.FromFile[Profile](path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"failed to read profile", err, map[string]any{"profile": path})
	}

	if err := p.Check(header.KindProfile); err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"invalid profile header", err, map[string]any{"profile": path})
	}
	return p, nil
}

// ApplyTo merges the profile's settings into s.
func (p *Profile) ApplyTo(s *Settings) error {
	if p == nil {
		return nil
	}
	values, err := stringValues(p.Settings)
	if err != nil {
		return err
	}
	return s.Merge(values)
}

// OptionValues returns the profile's options as name=value strings.
// Booleans render as True and False.
func (p *Profile) OptionValues() (map[string]string, error) {
	if p == nil {
		return map[string]string{}, nil
	}
	return stringValues(p.Options)
}

func stringValues(in map[string]any) (map[string]string, error) {
	out := make(map[string]string, len(in))
	for k, v := range in {
		switch val := v.(type) {
		case string:
			out[k] = val
		case bool:
			if val {
				out[k] = "True"
			} else {
				out[k] = "False"
			}
		case int:
			out[k] = strconv.Itoa(val)
		case float64:
			out[k] = strconv.FormatFloat(val, 'f', -1, 64)
		default:
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("profile value for %q must be a string, boolean or number", k),
				map[string]any{"name": k, "type": fmt.Sprintf("%T", v)})
		}
	}
	return out, nil
}
