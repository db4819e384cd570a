// Copyright 2025 Arieditya Pramadyana Deha <arieditya.prdh@live.com>
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

package driver

import (
	"regexp"
	"strings"
)

// matchesExclusion reports whether fqn matches pattern under the glob
// dialect of spec §4.6: "**" matches any dot-separated segment sequence
// (possibly empty), "*" matches any run of characters within a segment;
// patterns are anchored. No third-party glob library in the retrieval
// corpus implements this dot-segment dialect (see DESIGN.md), so matching
// is hand-rolled over dot-split segments plus a per-segment regexp for "*".
func matchesExclusion(pattern, fqn string) bool {
	return matchSegments(strings.Split(pattern, "."), strings.Split(fqn, "."))
}

func matchSegments(pattern, subject []string) bool {
	if len(pattern) == 0 {
		return len(subject) == 0
	}
	if pattern[0] == "**" {
		for i := 0; i <= len(subject); i++ {
			if matchSegments(pattern[1:], subject[i:]) {
				return true
			}
		}
		return false
	}
	if len(subject) == 0 {
		return false
	}
	if !segmentMatch(pattern[0], subject[0]) {
		return false
	}
	return matchSegments(pattern[1:], subject[1:])
}

func segmentMatch(pattern, segment string) bool {
	re := regexp.MustCompile("^" + wildcardToRegexp(pattern) + "$")
	return re.MatchString(segment)
}

func wildcardToRegexp(pattern string) string {
	var b strings.Builder
	for _, r := range pattern {
		if r == '*' {
			b.WriteString(".*")
			continue
		}
		b.WriteString(regexp.QuoteMeta(string(r)))
	}
	return b.String()
}

// matchesAnyExclusion reports whether fqn matches any pattern in patterns.
func matchesAnyExclusion(patterns []string, fqn string) bool {
	for _, p := range patterns {
		if matchesExclusion(p, fqn) {
			return true
		}
	}
	return false
}
