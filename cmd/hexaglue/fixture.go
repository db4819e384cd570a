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

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hexaglue/hexaglue/graph"
	"github.com/hexaglue/hexaglue/model"
)

// fieldFixture and methodFixture mirror model.FieldDescriptor /
// model.MethodDescriptor with plain string modifier lists, since
// model.Modifiers keeps its set unexported and isn't itself JSON-decodable.
type fieldFixture struct {
	Name      string   `json:"name"`
	TypeFQN   string   `json:"typeFQN"`
	Modifiers []string `json:"modifiers"`
}

type methodFixture struct {
	Name              string   `json:"name"`
	ReturnTypeFQN     *string  `json:"returnTypeFQN"`
	ParameterTypeFQNs []string `json:"parameterTypeFQNs"`
	Modifiers         []string `json:"modifiers"`
	RoleTags          []string `json:"roleTags"`
}

// typeFixture is the on-disk JSON shape for one TypeNode.
type typeFixture struct {
	FQN           string          `json:"fqn"`
	SimpleName    string          `json:"simpleName"`
	Package       string          `json:"package"`
	Kind          string          `json:"kind"`
	Modifiers     []string        `json:"modifiers"`
	Fields        []fieldFixture  `json:"fields"`
	Methods       []methodFixture `json:"methods"`
	Annotations   []string        `json:"annotations"`
	Supertype     string          `json:"supertype"`
	InterfaceFQNs []string        `json:"interfaces"`
}

// loadGraph reads a JSON array of typeFixture from path and builds a
// graph.Memory from it.
func loadGraph(path string) (*graph.Memory, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading graph fixture: %w", err)
	}

	var fixtures []typeFixture
	if err := json.Unmarshal(raw, &fixtures); err != nil {
		return nil, fmt.Errorf("parsing graph fixture: %w", err)
	}

	nodes := make([]model.TypeNode, 0, len(fixtures))
	for _, f := range fixtures {
		node, err := model.NewTypeNode(toSpec(f))
		if err != nil {
			return nil, fmt.Errorf("building type node %q: %w", f.FQN, err)
		}
		nodes = append(nodes, node)
	}
	return graph.NewMemory(nodes...), nil
}

func toSpec(f typeFixture) model.TypeNodeSpec {
	fields := make([]model.FieldDescriptor, 0, len(f.Fields))
	for _, ff := range f.Fields {
		fields = append(fields, model.FieldDescriptor{
			Name:      ff.Name,
			TypeFQN:   ff.TypeFQN,
			Modifiers: toModifiers(ff.Modifiers),
		})
	}

	methods := make([]model.MethodDescriptor, 0, len(f.Methods))
	for _, mf := range f.Methods {
		methods = append(methods, model.MethodDescriptor{
			Name:              mf.Name,
			ReturnTypeFQN:     mf.ReturnTypeFQN,
			ParameterTypeFQNs: mf.ParameterTypeFQNs,
			Modifiers:         toModifiers(mf.Modifiers),
			RoleTags:          mf.RoleTags,
		})
	}

	var supertype *string
	if f.Supertype != "" {
		supertype = &f.Supertype
	}

	return model.TypeNodeSpec{
		FQN:           f.FQN,
		SimpleName:    f.SimpleName,
		Package:       f.Package,
		Kind:          model.TypeKind(f.Kind),
		Modifiers:     toModifiers(f.Modifiers),
		Fields:        fields,
		Methods:       methods,
		Annotations:   f.Annotations,
		Supertype:     supertype,
		InterfaceFQNs: f.InterfaceFQNs,
	}
}

func toModifiers(names []string) model.Modifiers {
	mods := make([]model.Modifier, 0, len(names))
	for _, n := range names {
		mods = append(mods, model.Modifier(n))
	}
	return model.NewModifiers(mods...)
}
