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

// Package decision implements the Decision Policy (spec §4.4), also called
// the Criteria Engine: the deterministic, priority- and confidence-weighted
// total order that picks a winner among the criteria that matched a
// subject. This is the determinism contract of the whole engine — the
// algorithm here must be reproduced verbatim, not merely "equivalently".
package decision

import (
	"fmt"
	"sort"

	"github.com/hexaglue/hexaglue/compat"
	"github.com/hexaglue/hexaglue/criteria"
	"github.com/hexaglue/hexaglue/diag"
	"github.com/hexaglue/hexaglue/graph"
	"github.com/hexaglue/hexaglue/model"
)

// Outcome is the result of deciding among a subject's matches, target-kind
// agnostic of whatever Domain/Port wrapping a classifier wants to do with
// it.
type Outcome[K criteria.Kind] struct {
	Status        model.ClassificationStatus
	Kind          K
	CriterionID   string
	Priority      int
	Confidence    model.ConfidenceLevel
	Justification string
	Evidence      []model.Evidence
	Conflicts     []model.Conflict
}

type candidate[K criteria.Kind] struct {
	criterionID   string
	priority      int
	confidence    model.ConfidenceLevel
	kind          K
	justification string
	evidence      []model.Evidence
}

// Decide runs the algorithm of spec §4.4 over subject using every criterion
// in order, an effective-priority function (normally
// criteria.EffectivePriority against a profile.Profile), and a
// compatibility policy. reporter receives a diagnostic whenever a criterion
// panics during evaluation (spec §7.3); pass diag.NoOp() if none is wired.
func Decide[K criteria.Kind](
	subject model.TypeNode,
	subjectID model.NodeId,
	q graph.Query,
	crit []criteria.Criterion[K],
	effectivePriority func(criteria.Criterion[K]) int,
	policy compat.Policy[K],
	reporter diag.Reporter,
) Outcome[K] {
	candidates := evaluateAll(subject, subjectID, q, crit, effectivePriority, reporter)
	if len(candidates) == 0 {
		return Outcome[K]{Status: model.StatusUnclassified}
	}

	sort.Slice(candidates, func(i, j int) bool {
		ci, cj := candidates[i], candidates[j]
		if ci.priority != cj.priority {
			return ci.priority > cj.priority // primary key: priority, descending
		}
		if ci.confidence != cj.confidence {
			return ci.confidence > cj.confidence // secondary key: confidence, descending
		}
		return ci.criterionID < cj.criterionID // tertiary key: id, ascending
	})

	winner := candidates[0]
	evidence := append([]model.Evidence(nil), winner.evidence...)
	seen := make(map[[2]string]struct{}, len(evidence))
	for _, e := range evidence {
		seen[e.DedupeKey()] = struct{}{}
	}

	var conflicts []model.Conflict
	equalPriorityIncompatible := false
	for _, c := range candidates[1:] {
		if policy.Compatible(winner.kind, c.kind) {
			for _, e := range c.evidence {
				key := e.DedupeKey()
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				evidence = append(evidence, e)
			}
			continue
		}
		conflicts = append(conflicts, model.Conflict{
			CompetingKind:        string(c.kind),
			CompetingCriterionID: c.criterionID,
			CompetingConfidence:  c.confidence,
			CompetingPriority:    c.priority,
			Rationale:            fmt.Sprintf("incompatible with winning kind %s (criterion %s)", winner.kind, winner.criterionID),
		})
		if c.priority == winner.priority {
			equalPriorityIncompatible = true
		}
	}

	status := model.StatusClassified
	if equalPriorityIncompatible {
		status = model.StatusConflict
	}

	return Outcome[K]{
		Status:        status,
		Kind:          winner.kind,
		CriterionID:   winner.criterionID,
		Priority:      winner.priority,
		Confidence:    winner.confidence,
		Justification: winner.justification,
		Evidence:      evidence,
		Conflicts:     conflicts,
	}
}

func evaluateAll[K criteria.Kind](
	subject model.TypeNode,
	subjectID model.NodeId,
	q graph.Query,
	crit []criteria.Criterion[K],
	effectivePriority func(criteria.Criterion[K]) int,
	reporter diag.Reporter,
) []candidate[K] {
	var out []candidate[K]
	for _, c := range crit {
		mr := safeEvaluate(c, subject, subjectID, q, reporter)
		if !mr.Matched() {
			continue
		}
		priority := effectivePriority(c)
		if priority < 0 {
			// Disabled: evaluated, but the match is discarded entirely —
			// no evidence, no conflict (spec §4.4 step 1, §9 third open
			// question).
			continue
		}
		out = append(out, candidate[K]{
			criterionID:   c.ID(),
			priority:      priority,
			confidence:    mr.Confidence(),
			kind:          c.TargetKind(),
			justification: mr.Justification(),
			evidence:      mr.Evidence(),
		})
	}
	return out
}

// safeEvaluate recovers a panicking criterion (spec §7.3: "criterion
// evaluation failure ... the criterion's contribution is discarded, an
// error diagnostic is emitted naming the criterion id and subject,
// classification continues").
func safeEvaluate[K criteria.Kind](
	c criteria.Criterion[K],
	subject model.TypeNode,
	subjectID model.NodeId,
	q graph.Query,
	reporter diag.Reporter,
) (result model.MatchResult) {
	defer func() {
		if r := recover(); r != nil {
			if reporter != nil {
				reporter.Error(
					fmt.Sprintf("criterion %s failed evaluating subject %s", c.ID(), subjectID),
					fmt.Errorf("%v", r),
				)
			}
			result = model.NoMatch()
		}
	}()
	return c.Evaluate(subject, q)
}
