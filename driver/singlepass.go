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

// Package driver implements the Single-Pass Driver (spec §4.6) and the
// optional Progressive/Two-Pass Driver (spec §4.7): orchestration that
// walks every type node in a graph and dispatches it to the Domain and
// Port classifiers, honouring exclusion patterns, the generated-type
// filter, and explicit per-FQN overrides.
package driver

import (
	"github.com/hexaglue/hexaglue/classifier"
	"github.com/hexaglue/hexaglue/criteria/domain"
	"github.com/hexaglue/hexaglue/diag"
	"github.com/hexaglue/hexaglue/graph"
	"github.com/hexaglue/hexaglue/model"
)

// SinglePassDriver implements spec §4.6's classify(graph, config) contract.
type SinglePassDriver struct {
	domainClassifier *classifier.Classifier[model.DomainKind]
	portClassifier   *classifier.Classifier[model.PortKind]
	reporter         diag.Reporter
}

// NewSinglePassDriver builds a driver wrapping the given Domain and Port
// classifiers.
func NewSinglePassDriver(domainClassifier *classifier.Classifier[model.DomainKind], portClassifier *classifier.Classifier[model.PortKind], reporter diag.Reporter) *SinglePassDriver {
	if reporter == nil {
		reporter = diag.NoOp()
	}
	return &SinglePassDriver{domainClassifier: domainClassifier, portClassifier: portClassifier, reporter: reporter}
}

// Config is the subset of config.Config the driver consults. Declared
// locally (rather than importing package config) to keep driver free of a
// dependency on the configuration-loading concern; config.Config satisfies
// this interface structurally.
type Config interface {
	Exclusions() []string
	ExplicitClassificationFor(fqn string) (string, bool)
	ShouldIncludeGenerated() bool
}

// Classify runs the single-pass algorithm of spec §4.6 over every type in
// q, in the graph's deterministic iteration order.
func (d *SinglePassDriver) Classify(q graph.Query, cfg Config) *model.ClassificationResults {
	results := model.NewClassificationResults()

	portIndex := d.buildPortIndex(q, cfg)
	indexed := graph.WithPortIndex(q, portIndex)

	for _, t := range q.AllTypes() {
		fqn := t.FQN()
		if matchesAnyExclusion(cfg.Exclusions(), fqn) {
			continue
		}
		if !cfg.ShouldIncludeGenerated() && t.HasAnnotationSimpleName(domain.GeneratedAnnotationSimpleName) {
			continue
		}

		subjectID := model.TypeNodeID(fqn)

		if kind, ok := cfg.ExplicitClassificationFor(fqn); ok {
			results.Add(explicitResult(subjectID, kind))
			continue
		}

		results.Add(d.domainClassifier.Classify(t, subjectID, indexed))
		results.Add(d.portClassifier.Classify(t, subjectID, indexed))
	}

	return results
}

// buildPortIndex runs the Port classifier over every interface-kind type up
// front, so domain.structural.repositoryDominant can consult the result via
// graph.PortIndexQuery instead of relying on iteration order (spec §9,
// second open question).
func (d *SinglePassDriver) buildPortIndex(q graph.Query, cfg Config) map[string]string {
	index := make(map[string]string)
	for _, t := range q.AllTypes() {
		if t.Kind() != model.TypeKindInterface {
			continue
		}
		fqn := t.FQN()
		if matchesAnyExclusion(cfg.Exclusions(), fqn) {
			continue
		}
		if kind, ok := cfg.ExplicitClassificationFor(fqn); ok {
			if model.TargetForKind(kind) == model.TargetPort {
				index[fqn] = kind
			}
			continue
		}
		result := d.portClassifier.Classify(t, model.TypeNodeID(fqn), q)
		if result.Status == model.StatusUnclassified {
			continue
		}
		index[fqn] = result.Kind
	}
	return index
}

// explicitResult builds the Classified result for an explicit-override
// subject (spec §4.6 step 3): criterion id ExplicitConfiguration, priority
// 100, confidence EXPLICIT, empty conflict list, a single Annotation
// evidence describing the override.
func explicitResult(subjectID model.NodeId, kind string) model.ClassificationResult {
	confidence := model.ConfidenceExplicit
	criterionID := model.ExplicitConfigurationCriterionID
	priority := 100
	justification := "classified via explicit configuration override"

	return model.ClassificationResult{
		Subject:       subjectID,
		Target:        model.TargetForKind(kind),
		Status:        model.StatusClassified,
		Kind:          kind,
		Confidence:    &confidence,
		CriterionID:   &criterionID,
		Priority:      &priority,
		Justification: &justification,
		Evidence: []model.Evidence{
			model.AnnotationEvidence("classification overridden by explicit configuration"),
		},
		PortDirection: portDirectionForExplicit(kind),
	}
}

func portDirectionForExplicit(kind string) model.PortDirection {
	if model.TargetForKind(kind) != model.TargetPort {
		return model.PortDirectionNone
	}
	return model.DirectionOf(model.PortKind(kind))
}
