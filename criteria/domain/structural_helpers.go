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
	"strings"

	"github.com/hexaglue/hexaglue/model"
)

// collectionPrefixes are the container type FQNs recognized as single-element
// collections when parsing a field's declared type (spec §4.1
// collectionElementEntity/embeddedValueObject leave the collection-type
// vocabulary unspecified; this mirrors a conventional generics container
// vocabulary and is recorded as a design decision).
var collectionPrefixes = []string{
	"java.util.List",
	"java.util.Set",
	"java.util.Collection",
	"java.util.SortedSet",
}

// collectionElementFQN reports the single type parameter of a
// declared collection field type such as "java.util.List<com.x.Item>", or
// false if typeFQN does not look like one of collectionPrefixes.
func collectionElementFQN(typeFQN string) (string, bool) {
	open := strings.IndexByte(typeFQN, '<')
	close := strings.LastIndexByte(typeFQN, '>')
	if open < 0 || close < 0 || close < open {
		return "", false
	}
	container := typeFQN[:open]
	for _, p := range collectionPrefixes {
		if container == p {
			return strings.TrimSpace(typeFQN[open+1 : close]), true
		}
	}
	return "", false
}

// looksLikeIdentifierType reports whether a field's declared type is a
// plausible identifier shape: a string, a UUID, or a primitive wrapper.
func looksLikeIdentifierType(typeFQN string) bool {
	switch typeFQN {
	case "java.lang.String", "java.util.UUID",
		"java.lang.Long", "java.lang.Integer", "long", "int":
		return true
	}
	return false
}

// looksLikeAggregateRootCandidate is the syntactic stand-in this port uses
// for "classified as aggregate root in this run" when evaluating
// collectionElementEntity/embeddedValueObject: those criteria inspect a
// *different* type's fields while the subject type is itself mid-evaluation,
// so consulting the decision policy's own output would be circular. Instead
// they use a syntactic signal — the AggregateRoot annotation, or a
// class-kind type with an "id" field (the field shape
// domain.structural.hasIdentity also matches).
func looksLikeAggregateRootCandidate(n model.TypeNode) bool {
	if n.HasAnnotation(AnnotationAggregateRoot) {
		return true
	}
	if n.Kind() != model.TypeKindClass {
		return false
	}
	_, ok := n.FieldNamed("id")
	return ok
}
