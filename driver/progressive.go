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

package driver

import (
	"strings"
	"time"

	"github.com/hexaglue/hexaglue/classifier"
	"github.com/hexaglue/hexaglue/compat"
	"github.com/hexaglue/hexaglue/criteria"
	"github.com/hexaglue/hexaglue/criteria/domain"
	"github.com/hexaglue/hexaglue/criteria/port"
	"github.com/hexaglue/hexaglue/diag"
	"github.com/hexaglue/hexaglue/graph"
	"github.com/hexaglue/hexaglue/model"
)

// Pass names an evaluation-cost tier (spec §4.7).
type Pass int

const (
	PassSyntactic Pass = iota
	PassStructural
	PassBody
)

// PassClassifier assigns a criterion id to a Pass. DefaultPassClassifier
// is used when the caller supplies none.
type PassClassifier func(criterionID string) Pass

// DefaultPassClassifier places explicit/naming/package/semantic criteria in
// PassSyntactic, structural/relationship/signature criteria in
// PassStructural, and anything else in PassBody (spec §4.7: "purely
// syntactic", "structural", "body-level").
func DefaultPassClassifier(criterionID string) Pass {
	parts := strings.SplitN(criterionID, ".", 3)
	if len(parts) < 2 {
		return PassBody
	}
	switch parts[1] {
	case "explicit", "naming", "package", "semantic":
		return PassSyntactic
	case "structural", "relationship", "signature", "pattern":
		return PassStructural
	default:
		return PassBody
	}
}

// PassStats records per-pass bookkeeping (spec §4.7).
type PassStats struct {
	Pass            Pass
	Duration        time.Duration
	Evaluated       int
	SkippedExplicit int
}

// PassBudget bounds the wall-clock time spent in a single pass.
type PassBudget time.Duration

// ProgressiveDriver implements the optional Two-Pass Driver (spec §4.7):
// criteria are run in increasing cost order, each pass bounded by a time
// budget; subjects already classified at EXPLICIT confidence are not
// re-evaluated in a later pass.
type ProgressiveDriver struct {
	passOf   PassClassifier
	budgets  map[Pass]PassBudget
	profile  criteria.PriorityOverride
	reporter diag.Reporter
}

// NewProgressiveDriver builds a ProgressiveDriver. A nil passOf defaults to
// DefaultPassClassifier; a nil/empty budgets map means "unbounded".
func NewProgressiveDriver(passOf PassClassifier, budgets map[Pass]PassBudget, profile criteria.PriorityOverride, reporter diag.Reporter) *ProgressiveDriver {
	if passOf == nil {
		passOf = DefaultPassClassifier
	}
	if reporter == nil {
		reporter = diag.NoOp()
	}
	return &ProgressiveDriver{passOf: passOf, budgets: budgets, profile: profile, reporter: reporter}
}

// Classify runs the progressive algorithm over q, honouring cfg's
// exclusion/explicit/generated rules the same way SinglePassDriver does.
// It returns the results plus one PassStats per pass actually run.
func (d *ProgressiveDriver) Classify(q graph.Query, cfg Config) (*model.ClassificationResults, []PassStats) {
	results := model.NewClassificationResults()
	var stats []PassStats

	subjects := d.eligibleSubjects(q, cfg, results)

	domainByPass := splitByPass(domain.Catalog(), d.passOf)
	portByPass := splitByPass(port.Catalog(), d.passOf)

	for pass := PassSyntactic; pass <= PassBody; pass++ {
		start := time.Now()
		budget, hasBudget := d.budgets[pass]

		domainClassifier := classifier.New(model.TargetDomain, domainByPass[pass], compat.Domain(), d.profile, d.reporter, func(model.TypeNode) bool { return true })
		portClassifier := classifier.New(model.TargetPort, portByPass[pass], compat.Port(), d.profile, d.reporter, func(n model.TypeNode) bool { return n.Kind() == model.TypeKindInterface })

		evaluated := 0
		skipped := 0
		for _, fqn := range subjects {
			if hasBudget && time.Since(start) > time.Duration(budget) {
				break
			}
			t, ok := q.Lookup(fqn)
			if !ok {
				continue
			}
			subjectID := model.TypeNodeID(fqn)

			if existing, ok := results.Get(subjectID, model.TargetDomain); !ok || existing.Confidence == nil || *existing.Confidence != model.ConfidenceExplicit {
				merged := mergeOutcome(existing, domainClassifier.Classify(t, subjectID, q))
				results.Add(merged)
				evaluated++
			} else {
				skipped++
			}

			if existing, ok := results.Get(subjectID, model.TargetPort); !ok || existing.Confidence == nil || *existing.Confidence != model.ConfidenceExplicit {
				merged := mergeOutcome(existing, portClassifier.Classify(t, subjectID, q))
				results.Add(merged)
				evaluated++
			} else {
				skipped++
			}
		}

		stats = append(stats, PassStats{Pass: pass, Duration: time.Since(start), Evaluated: evaluated, SkippedExplicit: skipped})
	}

	return results, stats
}

// eligibleSubjects applies exclusion/generated-filter/explicit-override
// handling once, up front, the same way SinglePassDriver does, and seeds
// results with any explicit overrides.
func (d *ProgressiveDriver) eligibleSubjects(q graph.Query, cfg Config, results *model.ClassificationResults) []string {
	var fqns []string
	for _, t := range q.AllTypes() {
		fqn := t.FQN()
		if matchesAnyExclusion(cfg.Exclusions(), fqn) {
			continue
		}
		if !cfg.ShouldIncludeGenerated() && t.HasAnnotationSimpleName(domain.GeneratedAnnotationSimpleName) {
			continue
		}
		if kind, ok := cfg.ExplicitClassificationFor(fqn); ok {
			results.Add(explicitResult(model.TypeNodeID(fqn), kind))
			continue
		}
		fqns = append(fqns, fqn)
	}
	return fqns
}

// mergeOutcome keeps the earlier result if the new one is Unclassified and
// an earlier pass already produced something — a later pass must never
// downgrade an earlier classification to Unclassified.
func mergeOutcome(existing model.ClassificationResult, next model.ClassificationResult) model.ClassificationResult {
	if next.Status == model.StatusUnclassified && existing.Status != "" && existing.Status != model.StatusUnclassified {
		return existing
	}
	return next
}

func splitByPass[K criteria.Kind](catalog []criteria.Criterion[K], passOf PassClassifier) map[Pass][]criteria.Criterion[K] {
	out := map[Pass][]criteria.Criterion[K]{PassSyntactic: nil, PassStructural: nil, PassBody: nil}
	cumulative := map[Pass][]criteria.Criterion[K]{}
	for pass := PassSyntactic; pass <= PassBody; pass++ {
		var acc []criteria.Criterion[K]
		for _, c := range catalog {
			if passOf(c.ID()) <= pass {
				acc = append(acc, c)
			}
		}
		cumulative[pass] = acc
	}
	for pass := PassSyntactic; pass <= PassBody; pass++ {
		out[pass] = cumulative[pass]
	}
	return out
}
