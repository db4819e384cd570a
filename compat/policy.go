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

// Package compat implements the per-domain CompatibilityPolicy (spec §4.3):
// a symmetric predicate over kind pairs deciding whether two candidate
// kinds may both "truthfully" describe one subject.
package compat

import "github.com/hexaglue/hexaglue/criteria"

// Policy decides whether two candidate kinds are compatible: losing matches
// compatible with the winner are absorbed into its evidence rather than
// reported as conflicts (spec §4.3, §4.4).
type Policy[K criteria.Kind] interface {
	Compatible(a, b K) bool
}

// Func adapts a plain symmetric function into a Policy.
type Func[K criteria.Kind] func(a, b K) bool

func (f Func[K]) Compatible(a, b K) bool { return f(a, b) }

// Identity is the strictest policy: a kind is only compatible with itself.
// Used as the Port classifier's default (spec §4.3: "For Port, only
// identity is compatible").
func Identity[K criteria.Kind]() Policy[K] {
	return Func[K](func(a, b K) bool { return a == b })
}
