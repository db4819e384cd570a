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

// Package classifier assembles a Target Classifier (spec §4.5): a bundle
// of a target tag, a criterion set, a compatibility policy, and the
// decision policy from package decision. Two are built in — Domain and
// Port — but new ones are just a different Catalog/Policy pairing.
package classifier

import (
	"github.com/hexaglue/hexaglue/compat"
	"github.com/hexaglue/hexaglue/criteria"
	"github.com/hexaglue/hexaglue/decision"
	"github.com/hexaglue/hexaglue/diag"
	"github.com/hexaglue/hexaglue/graph"
	"github.com/hexaglue/hexaglue/model"
)

// Classifier is a target classifier over kind K: a criterion set plus a
// compatibility policy, ready to decide any subject.
type Classifier[K criteria.Kind] struct {
	target    model.Target
	criteria  []criteria.Criterion[K]
	policy    compat.Policy[K]
	profile   criteria.PriorityOverride
	reporter  diag.Reporter
	applies   func(model.TypeNode) bool
}

// New builds a Classifier. profile may be nil (no overrides); reporter may
// be nil (diagnostics are dropped). applies gates which subjects this
// classifier evaluates at all — subjects it rejects are Unclassified
// without ever invoking a criterion (spec §4.5's "applies only to
// interface-kind types" rule for Port).
func New[K criteria.Kind](
	target model.Target,
	catalog []criteria.Criterion[K],
	policy compat.Policy[K],
	profile criteria.PriorityOverride,
	reporter diag.Reporter,
	applies func(model.TypeNode) bool,
) *Classifier[K] {
	return &Classifier[K]{
		target:   target,
		criteria: catalog,
		policy:   policy,
		profile:  profile,
		reporter: reporter,
		applies:  applies,
	}
}

// Classify decides subject's kind, producing a ClassificationResult ready
// for insertion into a ClassificationResults.
func (c *Classifier[K]) Classify(subject model.TypeNode, subjectID model.NodeId, q graph.Query) model.ClassificationResult {
	if c.applies != nil && !c.applies(subject) {
		return model.Unclassified(subjectID, c.target)
	}

	effectivePriority := func(crit criteria.Criterion[K]) int {
		return criteria.EffectivePriority(crit, c.profile)
	}
	outcome := decision.Decide(subject, subjectID, q, c.criteria, effectivePriority, c.policy, c.reporter)

	if outcome.Status == model.StatusUnclassified {
		return model.Unclassified(subjectID, c.target)
	}

	criterionID := outcome.CriterionID
	priority := outcome.Priority
	confidence := outcome.Confidence
	justification := outcome.Justification

	return model.ClassificationResult{
		Subject:       subjectID,
		Target:        c.target,
		Status:        outcome.Status,
		Kind:          string(outcome.Kind),
		Confidence:    &confidence,
		CriterionID:   &criterionID,
		Priority:      &priority,
		Justification: &justification,
		Evidence:      outcome.Evidence,
		Conflicts:     outcome.Conflicts,
		PortDirection: portDirectionFor(c.target, string(outcome.Kind)),
	}
}

func portDirectionFor(target model.Target, kind string) model.PortDirection {
	if target != model.TargetPort {
		return model.PortDirectionNone
	}
	return model.DirectionOf(model.PortKind(kind))
}
