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

// PortIndexQuery augments Query with a lookup into the Port classifier's
// already-decided winners for this run. This makes the dependency spec §9
// calls out — "repository-dominant depends on another classification
// having already happened" — explicit rather than implicit: the
// single-pass driver classifies Port before Domain and threads the result
// through via WithPortIndex, instead of relying on map/slice iteration
// order to happen to visit the repository first.
type PortIndexQuery interface {
	Query
	// PortKindOf returns the winning Port kind name for fqn, if the Port
	// classifier reached a Classified or Conflict result for it.
	PortKindOf(fqn string) (kind string, ok bool)
}

type withPortIndex struct {
	Query
	index map[string]string
}

// WithPortIndex decorates q with a FQN -> winning-port-kind-name index,
// so domain criteria such as repositoryDominant can consult it via a type
// assertion to PortIndexQuery.
func WithPortIndex(q Query, index map[string]string) PortIndexQuery {
	return &withPortIndex{Query: q, index: index}
}

func (w *withPortIndex) PortKindOf(fqn string) (string, bool) {
	kind, ok := w.index[fqn]
	return kind, ok
}
