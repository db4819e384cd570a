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

// Package criteria defines the Criterion capability (spec §4.1): a single
// named, priority-bearing predicate over a type node. The source system's
// polymorphic criteria hierarchy (interface inheritance plus marker
// interfaces) collapses here into one generic interface; any per-criterion
// data a concrete criterion needs is captured via closures or small structs
// (spec §9).
package criteria

import (
	"github.com/hexaglue/hexaglue/graph"
	"github.com/hexaglue/hexaglue/model"
)

// Kind constrains the enumeration a Criterion argues for: model.DomainKind
// or model.PortKind.
type Kind interface {
	~string
}

// Criterion is a pure, deterministic predicate over a TypeNode. Evaluate
// must never mutate the graph and must never throw for expected domain
// cases — it returns model.NoMatch() instead (spec §4.1).
type Criterion[K Kind] interface {
	// ID is the stable, globally-unique identifier, shaped
	// "{target}.{category}.{name}" (spec §6).
	ID() string
	// Priority is the default priority; negative means disabled by
	// default (spec §4.1).
	Priority() int
	// TargetKind is the kind this criterion argues for.
	TargetKind() K
	// Evaluate inspects node against query and reports a match or not.
	Evaluate(node model.TypeNode, q graph.Query) model.MatchResult
}

// Func adapts a plain function plus static metadata into a Criterion,
// the common case for the reference criteria in criteria/domain and
// criteria/port.
type Func[K Kind] struct {
	id       string
	priority int
	target   K
	eval     func(model.TypeNode, graph.Query) model.MatchResult
}

// New builds a Func-backed Criterion.
func New[K Kind](id string, priority int, target K, eval func(model.TypeNode, graph.Query) model.MatchResult) Func[K] {
	return Func[K]{id: id, priority: priority, target: target, eval: eval}
}

func (f Func[K]) ID() string       { return f.id }
func (f Func[K]) Priority() int    { return f.priority }
func (f Func[K]) TargetKind() K    { return f.target }
func (f Func[K]) Evaluate(n model.TypeNode, q graph.Query) model.MatchResult {
	return f.eval(n, q)
}

var _ Criterion[model.DomainKind] = Func[model.DomainKind]{}
