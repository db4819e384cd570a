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

// Package model holds the read-only data types the classification engine
// reads and emits: NodeId, TypeNode, Evidence, MatchResult, and the
// ClassificationResult(s) produced by a run. Everything here is immutable
// once constructed.
package model

import "fmt"

// NodeKind tags what kind of graph entity a NodeId refers to.
type NodeKind string

const (
	NodeKindType    NodeKind = "type"
	NodeKindField   NodeKind = "field"
	NodeKindMethod  NodeKind = "method"
	NodeKindPackage NodeKind = "package"
)

// NodeId is a stable identifier for a graph entity. Equality is by the full
// string form; ordering is lexicographic on that same form.
type NodeId struct {
	kind  NodeKind
	value string
}

// NewNodeId builds a NodeId from a kind tag and a textual value, e.g.
// NewNodeId(NodeKindType, "com.example.Order").
func NewNodeId(kind NodeKind, value string) NodeId {
	return NodeId{kind: kind, value: value}
}

// TypeNodeID is a convenience constructor for the common case of a type-kind
// NodeId, e.g. TypeNodeID("com.example.Order").
func TypeNodeID(fqn string) NodeId {
	return NewNodeId(NodeKindType, fqn)
}

// Kind returns the node's kind tag.
func (id NodeId) Kind() NodeKind { return id.kind }

// Value returns the node's textual value (e.g. a fully qualified name).
func (id NodeId) Value() string { return id.value }

// String renders the canonical "kind:value" form used for equality and
// ordering, e.g. "type:com.example.Order".
func (id NodeId) String() string {
	return fmt.Sprintf("%s:%s", id.kind, id.value)
}

// Less reports whether id sorts before other under lexicographic order on
// the canonical string form.
func (id NodeId) Less(other NodeId) bool {
	return id.String() < other.String()
}

// Equal reports whether id and other refer to the same entity.
func (id NodeId) Equal(other NodeId) bool {
	return id.kind == other.kind && id.value == other.value
}

// IsZero reports whether id is the zero value (never a valid identifier).
func (id NodeId) IsZero() bool {
	return id.kind == "" && id.value == ""
}
