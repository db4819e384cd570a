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

// ConfidenceLevel is the engine's self-assessment of how certain a
// criterion is that its match is correct. The zero value is ConfidenceLow.
// Levels are totally ordered LOW < MEDIUM < HIGH < EXPLICIT; only their
// relative order is a public contract, not their numeric values.
type ConfidenceLevel int

const (
	ConfidenceLow ConfidenceLevel = iota
	ConfidenceMedium
	ConfidenceHigh
	ConfidenceExplicit
)

// String renders a human-readable confidence name.
func (c ConfidenceLevel) String() string {
	switch c {
	case ConfidenceLow:
		return "LOW"
	case ConfidenceMedium:
		return "MEDIUM"
	case ConfidenceHigh:
		return "HIGH"
	case ConfidenceExplicit:
		return "EXPLICIT"
	default:
		return "UNKNOWN"
	}
}
