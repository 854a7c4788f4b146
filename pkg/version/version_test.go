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
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Version
		wantErr error
	}{
		{
			name:  "release",
			input: "1.0.0",
			want:  Version{Major: 1},
		},
		{
			name:  "v prefix",
			input: "v2.13.4",
			want:  Version{Major: 2, Minor: 13, Patch: 4},
		},
		{
			name:  "pre-release",
			input: "1.0.0-rc.1",
			want:  Version{Major: 1, PreRelease: "rc.1"},
		},
		{
			name:  "pre-release with hyphen",
			input: "1.0.0-x-y.2",
			want:  Version{Major: 1, PreRelease: "x-y.2"},
		},
		{
			name:  "build metadata",
			input: "1.2.3-beta+exp.sha.5114f85",
			want:  Version{Major: 1, Minor: 2, Patch: 3, PreRelease: "beta", Build: "exp.sha.5114f85"},
		},
		{name: "empty", input: "", wantErr: ErrEmptyVersion},
		{name: "two components", input: "1.0", wantErr: ErrComponentCount},
		{name: "four components", input: "1.0.0.0", wantErr: ErrComponentCount},
		{name: "non numeric", input: "1.a.0", wantErr: ErrNonNumeric},
		{name: "empty component", input: "1..0", wantErr: ErrNonNumeric},
		{name: "negative", input: "1.-1.0", wantErr: ErrComponentCount},
		{name: "leading zero", input: "01.0.0", wantErr: ErrLeadingZero},
		{name: "empty pre-release", input: "1.0.0-", wantErr: ErrInvalidPreRelease},
		{name: "pre-release leading zero", input: "1.0.0-01", wantErr: ErrInvalidPreRelease},
		{name: "bad build", input: "1.0.0+a..b", wantErr: ErrInvalidBuildSuffix},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVersion(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseVersion(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseVersion(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseVersion(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestVersion_String(t *testing.T) {
	for _, s := range []string{"1.0.0", "0.1.2-alpha.1", "3.2.1+build.7", "1.0.0-rc.1+sha.abc"} {
		if got := MustParseVersion(s).String(); got != s {
			t.Errorf("String() = %q, want %q", got, s)
		}
	}
	if got := NewVersion(1, 2, 3).String(); got != "1.2.3" {
		t.Errorf("NewVersion().String() = %q", got)
	}
}

func TestVersion_Compare(t *testing.T) {
	// Ascending precedence from semver.org section 11.
	ordered := []string{
		"1.0.0-alpha",
		"1.0.0-alpha.1",
		"1.0.0-alpha.beta",
		"1.0.0-beta",
		"1.0.0-beta.2",
		"1.0.0-beta.11",
		"1.0.0-rc.1",
		"1.0.0",
		"1.0.1",
		"1.1.0",
		"2.0.0",
	}

	for i := 0; i < len(ordered)-1; i++ {
		a, b := MustParseVersion(ordered[i]), MustParseVersion(ordered[i+1])
		if a.Compare(b) != -1 {
			t.Errorf("%s should sort before %s", a, b)
		}
		if b.Compare(a) != 1 {
			t.Errorf("%s should sort after %s", b, a)
		}
	}

	if c := MustParseVersion("1.0.0+a").Compare(MustParseVersion("1.0.0+b")); c != 0 {
		t.Errorf("build metadata must not affect ordering, got %d", c)
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid("1.0.0") {
		t.Error("1.0.0 should be valid")
	}
	if IsValid("latest") {
		t.Error("latest should be invalid")
	}
}

func TestMustParseVersion_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustParseVersion("not-a-version")
}
