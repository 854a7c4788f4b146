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

package artifact

import (
	"fmt"
	"regexp"
	"strings"
)

// Pattern matches slash-separated relative paths with fnmatch semantics:
// '*' matches any run of characters including '/', '?' matches one
// character, and '[...]' is a character class ('!' or '^' negates).
type Pattern struct {
	raw string
	re  *regexp.Regexp
}

// CompilePattern translates an fnmatch pattern into a Pattern.
func CompilePattern(pattern string) (*Pattern, error) {
	var b strings.Builder
	b.WriteString("^")

	for i := 0; i < len(pattern); i++ {
		ch := pattern[i]
		switch ch {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		case '[':
			end := strings.IndexByte(pattern[i+1:], ']')
			if end < 0 {
				return nil, fmt.Errorf("unterminated character class in %q", pattern)
			}
			class := pattern[i+1 : i+1+end]
			if class == "" {
				return nil, fmt.Errorf("empty character class in %q", pattern)
			}
			b.WriteString("[")
			if class[0] == '!' || class[0] == '^' {
				b.WriteString("^")
				class = class[1:]
			}
			b.WriteString(strings.ReplaceAll(class, `\`, `\\`))
			b.WriteString("]")
			i += end + 1
		default:
			b.WriteString(regexp.QuoteMeta(string(ch)))
		}
	}
	b.WriteString("$")

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	return &Pattern{raw: pattern, re: re}, nil
}

// Match reports whether the slash-separated relative path matches.
func (p *Pattern) Match(rel string) bool {
	return p.re.MatchString(rel)
}

// String returns the original pattern.
func (p *Pattern) String() string {
	return p.raw
}
