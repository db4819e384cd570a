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

// Package graph defines the read-only view of an application graph that
// criteria and drivers consult (spec §3, §6). The engine never constructs
// or mutates a real ApplicationGraph: source parsing and semantic-model
// construction are an external collaborator's job (spec §1). This package
// also ships a small in-memory reference implementation used by tests, the
// CLI fixture loader, and anyone wiring the engine up without a full
// semantic model.
package graph

import "github.com/hexaglue/hexaglue/model"

// Query is the abstract, read-only capability set a GraphQuery must provide
// (spec §3). Implementations must be deterministic and must never mutate
// the underlying graph.
type Query interface {
	// Lookup finds a type by its fully qualified name.
	Lookup(fqn string) (model.TypeNode, bool)

	// AllTypes returns every type node in a fixed, deterministic order.
	AllTypes() []model.TypeNode

	// DirectSubtypes returns the types whose declared supertype is fqn.
	DirectSubtypes(fqn string) []model.TypeNode

	// ReferencedTypes returns the FQNs referenced in a single method's
	// signature (return type, then parameter types, in declaration order).
	ReferencedTypes(method model.MethodDescriptor) []string

	// ReferencedTypesOfType returns the FQNs referenced across every method
	// of the type named fqn — i.e. every type fqn "uses" ("X is used by Y"
	// relationships are read off this from the other side: if T appears
	// here for X, then X uses T, so T is used by X).
	ReferencedTypesOfType(fqn string) []string
}
