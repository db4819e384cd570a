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

// ClassificationResults is an insertion-ordered NodeId -> ClassificationResult
// mapping with convenience views. Insertion order matches the driver's
// iteration order over types (spec §3).
//
// A given subject may have up to two entries: one per Target. Add replaces
// an existing entry for the same (subject, target) key in place, so each
// distinct key keeps its first-seen position.
type ClassificationResults struct {
	order []resultKey
	byKey map[resultKey]ClassificationResult
}

type resultKey struct {
	subject NodeId
	target  Target
}

// NewClassificationResults builds an empty result set.
func NewClassificationResults() *ClassificationResults {
	return &ClassificationResults{byKey: make(map[resultKey]ClassificationResult)}
}

// Add inserts or replaces the result for (res.Subject, res.Target),
// preserving the original insertion position on replace.
func (r *ClassificationResults) Add(res ClassificationResult) {
	key := resultKey{subject: res.Subject, target: res.Target}
	if _, exists := r.byKey[key]; !exists {
		r.order = append(r.order, key)
	}
	r.byKey[key] = res
}

// Get looks up the result for subject/target.
func (r *ClassificationResults) Get(subject NodeId, target Target) (ClassificationResult, bool) {
	res, ok := r.byKey[resultKey{subject: subject, target: target}]
	return res, ok
}

// All returns every result in insertion order.
func (r *ClassificationResults) All() []ClassificationResult {
	out := make([]ClassificationResult, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.byKey[k])
	}
	return out
}

// Domain returns only Domain-target results, in insertion order.
func (r *ClassificationResults) Domain() []ClassificationResult {
	return r.filter(func(res ClassificationResult) bool { return res.Target == TargetDomain })
}

// Port returns only Port-target results, in insertion order.
func (r *ClassificationResults) Port() []ClassificationResult {
	return r.filter(func(res ClassificationResult) bool { return res.Target == TargetPort })
}

// Conflicts returns only results with Status == StatusConflict, in
// insertion order.
func (r *ClassificationResults) Conflicts() []ClassificationResult {
	return r.filter(func(res ClassificationResult) bool { return res.Status == StatusConflict })
}

// Len returns the number of entries.
func (r *ClassificationResults) Len() int { return len(r.order) }

func (r *ClassificationResults) filter(keep func(ClassificationResult) bool) []ClassificationResult {
	out := make([]ClassificationResult, 0, len(r.order))
	for _, k := range r.order {
		res := r.byKey[k]
		if keep(res) {
			out = append(out, res)
		}
	}
	return out
}
