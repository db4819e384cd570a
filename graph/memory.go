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

package graph

import "github.com/hexaglue/hexaglue/model"

// Memory is a small, indexed, in-memory Query implementation. It is a
// reference collaborator for tests, fixtures, and the CLI — the production
// semantic model is an external collaborator per spec §1.
type Memory struct {
	order     []string
	byFQN     map[string]model.TypeNode
	subtypes  map[string][]string
}

// NewMemory builds a Memory graph from type nodes, preserving the order
// they are given in for AllTypes (spec §3: "iterate all types in
// deterministic order").
func NewMemory(types ...model.TypeNode) *Memory {
	g := &Memory{
		byFQN:    make(map[string]model.TypeNode, len(types)),
		subtypes: make(map[string][]string),
	}
	for _, t := range types {
		g.order = append(g.order, t.FQN())
		g.byFQN[t.FQN()] = t
	}
	for _, t := range types {
		if super, ok := t.Supertype(); ok {
			g.subtypes[super] = append(g.subtypes[super], t.FQN())
		}
	}
	return g
}

func (g *Memory) Lookup(fqn string) (model.TypeNode, bool) {
	t, ok := g.byFQN[fqn]
	return t, ok
}

func (g *Memory) AllTypes() []model.TypeNode {
	out := make([]model.TypeNode, 0, len(g.order))
	for _, fqn := range g.order {
		out = append(out, g.byFQN[fqn])
	}
	return out
}

func (g *Memory) DirectSubtypes(fqn string) []model.TypeNode {
	names := g.subtypes[fqn]
	out := make([]model.TypeNode, 0, len(names))
	for _, n := range names {
		out = append(out, g.byFQN[n])
	}
	return out
}

func (g *Memory) ReferencedTypes(method model.MethodDescriptor) []string {
	return method.ReferencedTypeFQNs()
}

func (g *Memory) ReferencedTypesOfType(fqn string) []string {
	t, ok := g.byFQN[fqn]
	if !ok {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, m := range t.Methods() {
		for _, ref := range m.ReferencedTypeFQNs() {
			if _, dup := seen[ref]; dup {
				continue
			}
			seen[ref] = struct{}{}
			out = append(out, ref)
		}
	}
	return out
}

var _ Query = (*Memory)(nil)
