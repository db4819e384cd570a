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

package criteria

import (
	"github.com/hexaglue/hexaglue/graph"
	"github.com/hexaglue/hexaglue/model"
)

// LegacyCriterion is a criterion that only advertises itself by Name(),
// not by a stable ID — the shape spec §9's first open question describes
// as present in the source system alongside newer IdentifiedCriteria.
type LegacyCriterion[K Kind] interface {
	Name() string
	Priority() int
	TargetKind() K
	Evaluate(model.TypeNode, graph.Query) model.MatchResult
}

type identified[K Kind] struct {
	LegacyCriterion[K]
	id string
}

// Identify adapts a LegacyCriterion into a Criterion. Pass an empty id to
// signal that no stable id is available for this criterion: EffectivePriority
// then falls back to Name() for profile lookups, preserving the source
// system's id-then-name resolution order until every shipped criterion has
// an id (spec §9).
func Identify[K Kind](c LegacyCriterion[K], id string) Criterion[K] {
	return identified[K]{LegacyCriterion: c, id: id}
}

func (i identified[K]) ID() string { return i.id }

// PriorityOverride is the read side of a criteria profile (spec §4.2):
// looking up an override for a given key, id or name.
type PriorityOverride interface {
	Override(key string) (int, bool)
}

// EffectivePriority resolves a criterion's priority for this run:
// profile.Override(c.ID()) when the id is non-empty, falling back to
// profile.Override(name) when c only advertises a Name(), falling back to
// c.Priority() when the profile has no override for either key.
func EffectivePriority[K Kind](c Criterion[K], profile PriorityOverride) int {
	key := c.ID()
	if key == "" {
		if named, ok := any(c).(interface{ Name() string }); ok {
			key = named.Name()
		}
	}
	if profile != nil {
		if p, ok := profile.Override(key); ok {
			return p
		}
	}
	return c.Priority()
}
