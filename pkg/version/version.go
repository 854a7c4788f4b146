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

package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error types for version parsing failures
var (
	ErrEmptyVersion       = errors.New("version string is empty")
	ErrComponentCount     = errors.New("version must have exactly 3 components")
	ErrNonNumeric         = errors.New("version component is not numeric")
	ErrLeadingZero        = errors.New("version component has a leading zero")
	ErrInvalidPreRelease  = errors.New("pre-release identifier is invalid")
	ErrInvalidBuildSuffix = errors.New("build metadata is invalid")
)

// Version is a semantic version: MAJOR.MINOR.PATCH with optional pre-release
// identifiers and build metadata ("1.0.0-rc.1+sha.5114f85").
type Version struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor" yaml:"minor"`
	Patch int `json:"patch" yaml:"patch"`

	// PreRelease holds the dot-separated identifiers after '-'.
	PreRelease string `json:"preRelease,omitempty" yaml:"preRelease,omitempty"`

	// Build holds the dot-separated metadata after '+'. It never affects ordering.
	Build string `json:"build,omitempty" yaml:"build,omitempty"`
}

// NewVersion creates a release Version with the given components.
func NewVersion(major, minor, patch int) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// String returns the canonical form, including pre-release and build metadata.
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.PreRelease != "" {
		s += "-" + v.PreRelease
	}
	if v.Build != "" {
		s += "+" + v.Build
	}
	return s
}

// ParseVersion parses a semantic version string.
// A leading "v" is accepted and dropped.
func ParseVersion(s string) (Version, error) {
	if s == "" {
		return Version{}, ErrEmptyVersion
	}
	s = strings.TrimPrefix(s, "v")

	var v Version
	if i := strings.IndexByte(s, '+'); i >= 0 {
		v.Build = s[i+1:]
		s = s[:i]
		if !validIdentifiers(v.Build, false) {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidBuildSuffix, v.Build)
		}
	}
	if i := strings.IndexByte(s, '-'); i >= 0 {
		v.PreRelease = s[i+1:]
		s = s[:i]
		if !validIdentifiers(v.PreRelease, true) {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidPreRelease, v.PreRelease)
		}
	}

	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("%w: %q", ErrComponentCount, s)
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, err := parseNumeric(part)
		if err != nil {
			return Version{}, err
		}
		nums[i] = n
	}
	v.Major, v.Minor, v.Patch = nums[0], nums[1], nums[2]
	return v, nil
}

// MustParseVersion parses a version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseVersion: %v", err))
	}
	return v
}

// IsValid reports whether s parses as a semantic version.
func IsValid(s string) bool {
	_, err := ParseVersion(s)
	return err == nil
}

// Compare returns -1, 0 or 1 following semver precedence.
// Build metadata is ignored.
func (v Version) Compare(other Version) int {
	if c := compareInt(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, other.Minor); c != 0 {
		return c
	}
	if c := compareInt(v.Patch, other.Patch); c != 0 {
		return c
	}
	return comparePreRelease(v.PreRelease, other.PreRelease)
}

// IsPreRelease reports whether v carries pre-release identifiers.
func (v Version) IsPreRelease() bool {
	return v.PreRelease != ""
}

func parseNumeric(part string) (int, error) {
	if part == "" {
		return 0, fmt.Errorf("%w: empty component", ErrNonNumeric)
	}
	for _, ch := range part {
		if ch < '0' || ch > '9' {
			return 0, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
	}
	if len(part) > 1 && part[0] == '0' {
		return 0, fmt.Errorf("%w: %q", ErrLeadingZero, part)
	}
	n, err := strconv.Atoi(part)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNonNumeric, part)
	}
	return n, nil
}

// validIdentifiers checks dot-separated [0-9A-Za-z-] identifiers.
// Numeric pre-release identifiers must not carry leading zeros.
func validIdentifiers(s string, preRelease bool) bool {
	if s == "" {
		return false
	}
	for _, id := range strings.Split(s, ".") {
		if id == "" {
			return false
		}
		numeric := true
		for _, ch := range id {
			switch {
			case ch >= '0' && ch <= '9':
			case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch == '-':
				numeric = false
			default:
				return false
			}
		}
		if preRelease && numeric && len(id) > 1 && id[0] == '0' {
			return false
		}
	}
	return true
}

func comparePreRelease(a, b string) int {
	switch {
	case a == b:
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	}

	as, bs := strings.Split(a, "."), strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := compareIdentifier(as[i], bs[i]); c != 0 {
			return c
		}
	}
	return compareInt(len(as), len(bs))
}

func compareIdentifier(a, b string) int {
	an, aErr := strconv.Atoi(a)
	bn, bErr := strconv.Atoi(b)
	switch {
	case aErr == nil && bErr == nil:
		return compareInt(an, bn)
	case aErr == nil:
		return -1
	case bErr == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
