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

package domain

import (
	"fmt"
	"strings"

	"github.com/hexaglue/hexaglue/criteria"
	"github.com/hexaglue/hexaglue/graph"
	"github.com/hexaglue/hexaglue/model"
)

// RepositoryDominant matches a type referenced as a method return type or
// parameter of any type classified — by the port classifier in the same
// run via graph.PortIndexQuery, or by a naming heuristic when no port
// index is available — as a Repository (spec §4.1). Priority 80, HIGH,
// target AggregateRoot.
func RepositoryDominant() criteria.Criterion[model.DomainKind] {
	return criteria.New("domain.structural.repositoryDominant", 80, model.KindAggregateRoot, func(n model.TypeNode, q graph.Query) model.MatchResult {
		portIndex, hasPortIndex := q.(graph.PortIndexQuery)
		for _, candidate := range q.AllTypes() {
			if candidate.Kind() != model.TypeKindInterface {
				continue
			}
			if !isRepositoryLike(candidate, hasPortIndex, portIndex) {
				continue
			}
			for _, referenced := range q.ReferencedTypesOfType(candidate.FQN()) {
				if referenced == n.FQN() {
					return model.Match(
						model.ConfidenceHigh,
						fmt.Sprintf("referenced by repository %s", candidate.FQN()),
						model.RelationshipEvidence(
							fmt.Sprintf("appears in the signature of repository %s", candidate.SimpleName()),
							model.TypeNodeID(candidate.FQN()),
						),
					)
				}
			}
		}
		return model.NoMatch()
	})
}

func isRepositoryLike(t model.TypeNode, hasPortIndex bool, portIndex graph.PortIndexQuery) bool {
	if hasPortIndex {
		if kind, ok := portIndex.PortKindOf(t.FQN()); ok {
			return kind == string(model.KindRepository)
		}
	}
	return strings.HasSuffix(t.SimpleName(), "Repository")
}

// CollectionElementEntity matches a type appearing as the element type of a
// collection-valued field of an aggregate-root-like type (spec §4.1).
// Priority 65, HIGH, target Entity.
func CollectionElementEntity() criteria.Criterion[model.DomainKind] {
	return criteria.New("domain.structural.collectionElementEntity", 65, model.KindEntity, func(n model.TypeNode, q graph.Query) model.MatchResult {
		for _, candidate := range q.AllTypes() {
			if !looksLikeAggregateRootCandidate(candidate) {
				continue
			}
			for _, f := range candidate.Fields() {
				elem, ok := collectionElementFQN(f.TypeFQN)
				if !ok || elem != n.FQN() {
					continue
				}
				return model.Match(
					model.ConfidenceHigh,
					fmt.Sprintf("element type of collection field %s.%s", candidate.SimpleName(), f.Name),
					model.RelationshipEvidence(
						fmt.Sprintf("collection field %q of %s", f.Name, candidate.SimpleName()),
						model.TypeNodeID(candidate.FQN()),
					),
				)
			}
		}
		return model.NoMatch()
	})
}

// EmbeddedValueObject matches a type appearing as a non-collection field of
// an aggregate-root-like type and itself immutable (record-kind; spec
// §4.1). Priority 65, MEDIUM, target ValueObject.
func EmbeddedValueObject() criteria.Criterion[model.DomainKind] {
	return criteria.New("domain.structural.embeddedValueObject", 65, model.KindValueObject, func(n model.TypeNode, q graph.Query) model.MatchResult {
		if n.Kind() != model.TypeKindRecord {
			return model.NoMatch()
		}
		for _, candidate := range q.AllTypes() {
			if !looksLikeAggregateRootCandidate(candidate) {
				continue
			}
			for _, f := range candidate.Fields() {
				if _, isCollection := collectionElementFQN(f.TypeFQN); isCollection {
					continue
				}
				if f.TypeFQN != n.FQN() {
					continue
				}
				return model.Match(
					model.ConfidenceMedium,
					fmt.Sprintf("embedded as field %s.%s", candidate.SimpleName(), f.Name),
					model.RelationshipEvidence(
						fmt.Sprintf("embedded field %q of %s", f.Name, candidate.SimpleName()),
						model.TypeNodeID(candidate.FQN()),
					),
				)
			}
		}
		return model.NoMatch()
	})
}
