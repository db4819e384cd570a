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

import "sort"

// TypeKind enumerates the language-level shapes a TypeNode may have.
type TypeKind string

const (
	TypeKindClass      TypeKind = "class"
	TypeKindInterface  TypeKind = "interface"
	TypeKindRecord     TypeKind = "record"
	TypeKindEnum       TypeKind = "enum"
	TypeKindAnnotation TypeKind = "annotation"
)

// TypeNodeSpec is the plain-data shape passed to NewTypeNode. It mirrors
// TypeNode's fields but stays mutable while the caller assembles it.
type TypeNodeSpec struct {
	FQN              string
	SimpleName       string
	Package          string
	Kind             TypeKind
	Modifiers        Modifiers
	Fields           []FieldDescriptor
	Methods          []MethodDescriptor
	Annotations      []string
	Supertype        *string
	InterfaceFQNs    []string
}

// TypeNode is a read-only view of a type entity. All slices and maps are
// defensively copied at construction time and never mutated afterward.
type TypeNode struct {
	fqn           string
	simpleName    string
	pkg           string
	kind          TypeKind
	modifiers     Modifiers
	fields        []FieldDescriptor
	methods       []MethodDescriptor
	annotations   map[string]struct{}
	annotationsOrdered []string
	supertype     *string
	interfaceFQNs []string
}

// NewTypeNode validates and constructs a TypeNode. FQN is required: an empty
// FQN is a programming error by the caller's graph builder and fails fast
// (spec §7 rule 6).
func NewTypeNode(spec TypeNodeSpec) (TypeNode, error) {
	if spec.FQN == "" {
		return TypeNode{}, &InvalidNodeError{Field: "FQN", Value: "must not be empty"}
	}
	if spec.Kind == "" {
		return TypeNode{}, &InvalidNodeError{Field: "Kind", Value: "must not be empty"}
	}

	annotations := make(map[string]struct{}, len(spec.Annotations))
	annotationsOrdered := make([]string, 0, len(spec.Annotations))
	for _, a := range spec.Annotations {
		if _, dup := annotations[a]; dup {
			continue
		}
		annotations[a] = struct{}{}
		annotationsOrdered = append(annotationsOrdered, a)
	}

	return TypeNode{
		fqn:                spec.FQN,
		simpleName:         spec.SimpleName,
		pkg:                spec.Package,
		kind:               spec.Kind,
		modifiers:          spec.Modifiers,
		fields:             append([]FieldDescriptor(nil), spec.Fields...),
		methods:            append([]MethodDescriptor(nil), spec.Methods...),
		annotations:        annotations,
		annotationsOrdered: annotationsOrdered,
		supertype:          spec.Supertype,
		interfaceFQNs:      append([]string(nil), spec.InterfaceFQNs...),
	}, nil
}

// MustNewTypeNode is NewTypeNode but panics on error; useful for fixtures and
// tests where the input is known-good.
func MustNewTypeNode(spec TypeNodeSpec) TypeNode {
	n, err := NewTypeNode(spec)
	if err != nil {
		panic(err)
	}
	return n
}

func (t TypeNode) FQN() string                          { return t.fqn }
func (t TypeNode) SimpleName() string                   { return t.simpleName }
func (t TypeNode) Package() string                       { return t.pkg }
func (t TypeNode) Kind() TypeKind                        { return t.kind }
func (t TypeNode) Modifiers() Modifiers                  { return t.modifiers }
func (t TypeNode) Supertype() (string, bool) {
	if t.supertype == nil {
		return "", false
	}
	return *t.supertype, true
}

// Fields returns the declared fields in declaration order. The returned
// slice is a copy; callers may not mutate the node through it.
func (t TypeNode) Fields() []FieldDescriptor {
	return append([]FieldDescriptor(nil), t.fields...)
}

// Methods returns the declared methods in declaration order.
func (t TypeNode) Methods() []MethodDescriptor {
	return append([]MethodDescriptor(nil), t.methods...)
}

// Interfaces returns the FQNs of directly implemented interfaces, in
// declaration order.
func (t TypeNode) Interfaces() []string {
	return append([]string(nil), t.interfaceFQNs...)
}

// Annotations returns the FQNs of directly present annotations, sorted for
// deterministic iteration.
func (t TypeNode) Annotations() []string {
	out := append([]string(nil), t.annotationsOrdered...)
	sort.Strings(out)
	return out
}

// HasAnnotation reports whether the annotation with the given FQN is
// directly present on this type.
func (t TypeNode) HasAnnotation(fqn string) bool {
	_, ok := t.annotations[fqn]
	return ok
}

// HasAnnotationSimpleName reports whether any directly-present annotation's
// simple name (the FQN segment after the last '.') equals name. Used to
// detect generation markers such as "@Generated" regardless of origin
// package (spec §4.6 step 2).
func (t TypeNode) HasAnnotationSimpleName(name string) bool {
	for _, a := range t.annotationsOrdered {
		if simpleNameOf(a) == name {
			return true
		}
	}
	return false
}

// FieldNamed returns the field named name, if present.
func (t TypeNode) FieldNamed(name string) (FieldDescriptor, bool) {
	for _, f := range t.fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDescriptor{}, false
}

func simpleNameOf(fqn string) string {
	for i := len(fqn) - 1; i >= 0; i-- {
		if fqn[i] == '.' {
			return fqn[i+1:]
		}
	}
	return fqn
}
