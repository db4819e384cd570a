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

// RecordSingleId matches a record-like type whose name ends with "Id" and
// which declares exactly one component of a primitive/string/UUID type
// (spec §4.1).
func RecordSingleId() criteria.Criterion[model.DomainKind] {
	return criteria.New("domain.naming.recordSingleId", 80, model.KindIdentifier, func(n model.TypeNode, _ graph.Query) model.MatchResult {
		if n.Kind() != model.TypeKindRecord {
			return model.NoMatch()
		}
		if !strings.HasSuffix(n.SimpleName(), "Id") {
			return model.NoMatch()
		}
		fields := n.Fields()
		if len(fields) != 1 || !looksLikeIdentifierType(fields[0].TypeFQN) {
			return model.NoMatch()
		}
		return model.Match(
			model.ConfidenceHigh,
			fmt.Sprintf("record %s ends with Id and wraps a single %s component", n.SimpleName(), fields[0].TypeFQN),
			model.NamingEvidence(fmt.Sprintf("type name %q ends with Id", n.SimpleName())),
			model.StructureEvidence(fmt.Sprintf("single component of type %s", fields[0].TypeFQN)),
		)
	})
}

// ImmutableNoId matches a record-like type whose name does not carry the
// single-Id-suffix shape RecordSingleId recognizes (spec §4.1).
func ImmutableNoId() criteria.Criterion[model.DomainKind] {
	return criteria.New("domain.structural.immutableNoId", 60, model.KindValueObject, func(n model.TypeNode, q graph.Query) model.MatchResult {
		if n.Kind() != model.TypeKindRecord {
			return model.NoMatch()
		}
		if RecordSingleId().Evaluate(n, q).Matched() {
			return model.NoMatch()
		}
		return model.Match(
			model.ConfidenceMedium,
			fmt.Sprintf("record %s has no single-Id-suffix identifier shape", n.SimpleName()),
			model.StructureEvidence("record type without an identifier-shaped single component"),
		)
	})
}

// HasIdentity matches a class-like type with a field literally named "id",
// or one annotated as an identifier (spec §4.1).
func HasIdentity() criteria.Criterion[model.DomainKind] {
	return criteria.New("domain.structural.hasIdentity", 65, model.KindEntity, func(n model.TypeNode, _ graph.Query) model.MatchResult {
		if n.Kind() != model.TypeKindClass {
			return model.NoMatch()
		}
		if f, ok := n.FieldNamed("id"); ok {
			return model.Match(
				model.ConfidenceMedium,
				fmt.Sprintf("class %s declares a field literally named id", n.SimpleName()),
				model.StructureEvidence(fmt.Sprintf("field %q of type %s", f.Name, f.TypeFQN)),
			)
		}
		if n.HasAnnotation(AnnotationIdentifier) {
			return model.Match(
				model.ConfidenceMedium,
				fmt.Sprintf("class %s carries the Identifier annotation", n.SimpleName()),
				model.AnnotationEvidence(fmt.Sprintf("annotation %s present", AnnotationIdentifier)),
			)
		}
		return model.NoMatch()
	})
}
