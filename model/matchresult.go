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

package model

// MatchResult is what a Criterion's Evaluate returns: either NoMatch, or a
// Match carrying a confidence, a non-empty justification, and supporting
// evidence. The invariant is enforced at construction: Match always has
// both a confidence and a justification; NoMatch has neither.
type MatchResult struct {
	matched       bool
	confidence    ConfidenceLevel
	justification string
	evidence      []Evidence
}

// NoMatch reports that a criterion did not match its subject.
func NoMatch() MatchResult {
	return MatchResult{}
}

// Match reports a criterion match. justification must be non-empty; a
// criterion author violating this is a programming error, and the decision
// policy's recovery of criterion panics (spec §7.3) is the backstop for it,
// so this panics rather than silently accepting a useless result.
func Match(confidence ConfidenceLevel, justification string, evidence ...Evidence) MatchResult {
	if justification == "" {
		panic("model: Match requires a non-empty justification")
	}
	return MatchResult{
		matched:       true,
		confidence:    confidence,
		justification: justification,
		evidence:      append([]Evidence(nil), evidence...),
	}
}

// Matched reports whether this is a Match (true) or a NoMatch (false).
func (m MatchResult) Matched() bool { return m.matched }

// Confidence returns the match's confidence level. Meaningless on NoMatch.
func (m MatchResult) Confidence() ConfidenceLevel { return m.confidence }

// Justification returns the match's human-readable rationale. Empty on
// NoMatch.
func (m MatchResult) Justification() string { return m.justification }

// Evidence returns the match's supporting evidence. Empty on NoMatch.
func (m MatchResult) Evidence() []Evidence {
	return append([]Evidence(nil), m.evidence...)
}
