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

// DomainEvent matches a type whose name ends with "Event" and whose
// structure is immutable (record kind, per this port's immutability
// convention; see domain.structural.immutableNoId). Priority 40 (spec §4.1).
func DomainEvent() criteria.Criterion[model.DomainKind] {
	return criteria.New("domain.naming.domainEvent", 40, model.KindDomainEvent, func(n model.TypeNode, _ graph.Query) model.MatchResult {
		if !strings.HasSuffix(n.SimpleName(), "Event") {
			return model.NoMatch()
		}
		if n.Kind() != model.TypeKindRecord {
			return model.NoMatch()
		}
		return model.Match(
			model.ConfidenceMedium,
			fmt.Sprintf("record %s ends with Event", n.SimpleName()),
			model.NamingEvidence(fmt.Sprintf("type name %q ends with Event", n.SimpleName())),
		)
	})
}

// DomainEnum matches any enum-kind type. Priority is low-positive (spec
// §4.1 leaves the exact value unspecified; 20 is this port's choice, see
// the design notes).
func DomainEnum() criteria.Criterion[model.DomainKind] {
	return criteria.New("domain.semantic.domainEnum", 20, model.KindValueObject, func(n model.TypeNode, _ graph.Query) model.MatchResult {
		if n.Kind() != model.TypeKindEnum {
			return model.NoMatch()
		}
		return model.Match(
			model.ConfidenceMedium,
			fmt.Sprintf("%s is an enum type", n.SimpleName()),
			model.StructureEvidence("enum-kind type"),
		)
	})
}
