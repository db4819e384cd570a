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

// EvidenceCategory classifies why a criterion matched.
type EvidenceCategory string

const (
	EvidenceCategoryAnnotation   EvidenceCategory = "annotation"
	EvidenceCategoryNaming       EvidenceCategory = "naming"
	EvidenceCategoryStructure    EvidenceCategory = "structure"
	EvidenceCategoryRelationship EvidenceCategory = "relationship"
	EvidenceCategoryPackage      EvidenceCategory = "package"
)

// Evidence is an immutable record explaining why a criterion matched.
type Evidence struct {
	Category    EvidenceCategory
	Description string
	Related     []NodeId
}

// dedupeKey is the (category, description) tuple used to de-duplicate
// evidence when merging a winner's evidence with compatible matches (spec
// §4.4 step 6).
func (e Evidence) dedupeKey() [2]string {
	return [2]string{string(e.Category), e.Description}
}

// DedupeKey exposes the merge key used by the decision policy.
func (e Evidence) DedupeKey() [2]string { return e.dedupeKey() }

// AnnotationEvidence builds Evidence for an observed annotation match.
func AnnotationEvidence(description string, related ...NodeId) Evidence {
	return Evidence{Category: EvidenceCategoryAnnotation, Description: description, Related: related}
}

// NamingEvidence builds Evidence for a name-pattern match.
func NamingEvidence(description string, related ...NodeId) Evidence {
	return Evidence{Category: EvidenceCategoryNaming, Description: description, Related: related}
}

// StructureEvidence builds Evidence for a structural observation (fields,
// supertypes, method shapes).
func StructureEvidence(description string, related ...NodeId) Evidence {
	return Evidence{Category: EvidenceCategoryStructure, Description: description, Related: related}
}

// RelationshipEvidence builds Evidence that cites a related node, e.g. a
// neighbouring repository discovered via the graph.
func RelationshipEvidence(description string, related ...NodeId) Evidence {
	return Evidence{Category: EvidenceCategoryRelationship, Description: description, Related: related}
}

// PackageEvidence builds Evidence for a package-path observation.
func PackageEvidence(description string, related ...NodeId) Evidence {
	return Evidence{Category: EvidenceCategoryPackage, Description: description, Related: related}
}
