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

package decision_test

import (
	"testing"

	"github.com/hexaglue/hexaglue/compat"
	"github.com/hexaglue/hexaglue/criteria"
	"github.com/hexaglue/hexaglue/decision"
	"github.com/hexaglue/hexaglue/diag"
	"github.com/hexaglue/hexaglue/graph"
	"github.com/hexaglue/hexaglue/model"
)

type testKind string

const (
	kindA testKind = "A"
	kindB testKind = "B"
)

func alwaysMatch(id string, priority int, target testKind, confidence model.ConfidenceLevel) criteria.Criterion[testKind] {
	return criteria.New(id, priority, target, func(model.TypeNode, graph.Query) model.MatchResult {
		return model.Match(confidence, "matched "+id)
	})
}

func defaultPriority(c criteria.Criterion[testKind]) int { return c.Priority() }

func subject() (model.TypeNode, model.NodeId) {
	n := model.MustNewTypeNode(model.TypeNodeSpec{FQN: "x.Y", Kind: model.TypeKindClass})
	return n, model.TypeNodeID("x.Y")
}

func identityCompat() compat.Policy[testKind] {
	return compat.Func[testKind](func(a, b testKind) bool { return a == b })
}

func TestDecideUnclassifiedWhenNoMatch(t *testing.T) {
	n, id := subject()
	out := decision.Decide[testKind](n, id, graph.NewMemory(), nil, defaultPriority, identityCompat(), diag.NoOp())
	if out.Status != model.StatusUnclassified {
		t.Fatalf("expected Unclassified, got %v", out.Status)
	}
}

func TestDecidePriorityDominatesConfidence(t *testing.T) {
	n, id := subject()
	crit := []criteria.Criterion[testKind]{
		alwaysMatch("b.low-prio-high-conf", 10, kindB, model.ConfidenceExplicit),
		alwaysMatch("a.high-prio-low-conf", 90, kindA, model.ConfidenceLow),
	}
	out := decision.Decide[testKind](n, id, graph.NewMemory(), crit, defaultPriority, identityCompat(), diag.NoOp())
	if out.CriterionID != "a.high-prio-low-conf" || out.Kind != kindA {
		t.Fatalf("expected higher priority to win regardless of confidence, got %+v", out)
	}
}

func TestDecideConfidenceBreaksPriorityTies(t *testing.T) {
	n, id := subject()
	crit := []criteria.Criterion[testKind]{
		alwaysMatch("b.same-prio-low-conf", 50, kindB, model.ConfidenceLow),
		alwaysMatch("a.same-prio-high-conf", 50, kindA, model.ConfidenceHigh),
	}
	out := decision.Decide[testKind](n, id, graph.NewMemory(), crit, defaultPriority, identityCompat(), diag.NoOp())
	if out.CriterionID != "a.same-prio-high-conf" {
		t.Fatalf("expected higher confidence to break the tie, got %+v", out)
	}
}

func TestDecideIdBreaksRemainingTies(t *testing.T) {
	n, id := subject()
	crit := []criteria.Criterion[testKind]{
		alwaysMatch("z-criteria", 80, kindA, model.ConfidenceHigh),
		alwaysMatch("a-criteria", 80, kindA, model.ConfidenceHigh),
	}
	out := decision.Decide[testKind](n, id, graph.NewMemory(), crit, defaultPriority, identityCompat(), diag.NoOp())
	if out.CriterionID != "a-criteria" {
		t.Fatalf("expected lexicographically smaller id to win, got %s", out.CriterionID)
	}
	if out.Status != model.StatusClassified {
		t.Fatalf("expected Classified (same kind is always compatible), got %v", out.Status)
	}
	if len(out.Conflicts) != 0 {
		t.Fatalf("expected no conflicts for a same-kind tie, got %v", out.Conflicts)
	}
}

func TestDecideOrderIndependence(t *testing.T) {
	n, id := subject()
	c1 := []criteria.Criterion[testKind]{
		alwaysMatch("a", 80, kindA, model.ConfidenceHigh),
		alwaysMatch("b", 60, kindB, model.ConfidenceExplicit),
		alwaysMatch("c", 80, kindB, model.ConfidenceLow),
	}
	c2 := []criteria.Criterion[testKind]{c1[2], c1[0], c1[1]}

	out1 := decision.Decide[testKind](n, id, graph.NewMemory(), c1, defaultPriority, identityCompat(), diag.NoOp())
	out2 := decision.Decide[testKind](n, id, graph.NewMemory(), c2, defaultPriority, identityCompat(), diag.NoOp())
	if out1.CriterionID != out2.CriterionID || out1.Status != out2.Status {
		t.Fatalf("expected winner independent of input order, got %+v vs %+v", out1, out2)
	}
}

func TestDecideCompatibilitySuppressesConflict(t *testing.T) {
	n, id := subject()
	crit := []criteria.Criterion[testKind]{
		alwaysMatch("winner", 90, kindA, model.ConfidenceHigh),
		alwaysMatch("loser", 10, kindA, model.ConfidenceLow),
	}
	out := decision.Decide[testKind](n, id, graph.NewMemory(), crit, defaultPriority, identityCompat(), diag.NoOp())
	if len(out.Conflicts) != 0 {
		t.Fatalf("expected compatible (same-kind) loser to not appear as a conflict, got %v", out.Conflicts)
	}
}

func TestDecideEqualPriorityIncompatibleIsConflict(t *testing.T) {
	n, id := subject()
	crit := []criteria.Criterion[testKind]{
		alwaysMatch("a", 100, kindA, model.ConfidenceExplicit),
		alwaysMatch("b", 100, kindB, model.ConfidenceExplicit),
	}
	out := decision.Decide[testKind](n, id, graph.NewMemory(), crit, defaultPriority, identityCompat(), diag.NoOp())
	if out.Status != model.StatusConflict {
		t.Fatalf("expected Conflict status, got %v", out.Status)
	}
	if len(out.Conflicts) != 1 {
		t.Fatalf("expected exactly one conflict entry, got %v", out.Conflicts)
	}
}

func TestDecideDisabledCriterionIsDiscarded(t *testing.T) {
	n, id := subject()
	crit := []criteria.Criterion[testKind]{
		alwaysMatch("disabled", -1, kindA, model.ConfidenceExplicit),
		alwaysMatch("enabled", 10, kindB, model.ConfidenceLow),
	}
	out := decision.Decide[testKind](n, id, graph.NewMemory(), crit, defaultPriority, identityCompat(), diag.NoOp())
	if out.CriterionID != "enabled" {
		t.Fatalf("expected the disabled criterion's match to be discarded, got %+v", out)
	}
	if len(out.Conflicts) != 0 {
		t.Fatalf("disabled matches must not contribute conflicts, got %v", out.Conflicts)
	}
}

func TestDecideRecoversPanickingCriterion(t *testing.T) {
	n, id := subject()
	panicking := criteria.New("panics", 100, kindA, func(model.TypeNode, graph.Query) model.MatchResult {
		panic("boom")
	})
	fallback := alwaysMatch("fallback", 5, kindB, model.ConfidenceLow)
	collector := diag.NewCollector()

	out := decision.Decide[testKind](n, id, graph.NewMemory(), []criteria.Criterion[testKind]{panicking, fallback}, defaultPriority, identityCompat(), collector)
	if out.CriterionID != "fallback" {
		t.Fatalf("expected the panicking criterion's contribution discarded, got %+v", out)
	}
	entries := collector.Entries()
	if len(entries) != 1 || entries[0].Severity != diag.SeverityError {
		t.Fatalf("expected exactly one error diagnostic, got %v", entries)
	}
}
