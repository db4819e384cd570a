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

// Modifier is a single language-level modifier (public, abstract, final, ...).
type Modifier string

const (
	ModifierPublic    Modifier = "public"
	ModifierAbstract  Modifier = "abstract"
	ModifierFinal     Modifier = "final"
	ModifierStatic    Modifier = "static"
	ModifierPrivate   Modifier = "private"
	ModifierProtected Modifier = "protected"
)

// Modifiers is an immutable set of Modifier values.
type Modifiers struct {
	set map[Modifier]struct{}
}

// NewModifiers builds a Modifiers set from zero or more values.
func NewModifiers(mods ...Modifier) Modifiers {
	set := make(map[Modifier]struct{}, len(mods))
	for _, m := range mods {
		set[m] = struct{}{}
	}
	return Modifiers{set: set}
}

// Has reports whether m is present in the set.
func (s Modifiers) Has(m Modifier) bool {
	if s.set == nil {
		return false
	}
	_, ok := s.set[m]
	return ok
}

// Len returns the number of modifiers in the set.
func (s Modifiers) Len() int { return len(s.set) }
