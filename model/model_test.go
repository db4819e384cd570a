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

package model_test

import (
	"testing"

	"github.com/hexaglue/hexaglue/model"
)

func TestNodeIdOrderingAndEquality(t *testing.T) {
	a := model.TypeNodeID("com.example.Order")
	b := model.TypeNodeID("com.example.OrderRepository")

	if !a.Less(b) {
		t.Fatalf("expected %q < %q", a, b)
	}
	if a.Equal(b) {
		t.Fatalf("did not expect %q == %q", a, b)
	}
	if a.String() != "type:com.example.Order" {
		t.Fatalf("unexpected string form: %s", a.String())
	}
}

func TestNewTypeNodeRejectsEmptyFQN(t *testing.T) {
	_, err := model.NewTypeNode(model.TypeNodeSpec{Kind: model.TypeKindClass})
	if err == nil {
		t.Fatal("expected an error for an empty FQN")
	}
	var invalid *model.InvalidNodeError
	if !asInvalidNodeError(err, &invalid) {
		t.Fatalf("expected *model.InvalidNodeError, got %T", err)
	}
}

func asInvalidNodeError(err error, target **model.InvalidNodeError) bool {
	e, ok := err.(*model.InvalidNodeError)
	if ok {
		*target = e
	}
	return ok
}

func TestMatchRequiresJustification(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Match with empty justification to panic")
		}
	}()
	model.Match(model.ConfidenceHigh, "")
}

func TestClassificationResultsPreservesInsertionOrder(t *testing.T) {
	results := model.NewClassificationResults()
	order := model.TypeNodeID("com.example.Order")
	repo := model.TypeNodeID("com.example.OrderRepository")

	results.Add(model.Unclassified(repo, model.TargetDomain))
	results.Add(model.Unclassified(order, model.TargetDomain))

	all := results.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 results, got %d", len(all))
	}
	if !all[0].Subject.Equal(repo) || !all[1].Subject.Equal(order) {
		t.Fatalf("expected insertion order preserved, got %v then %v", all[0].Subject, all[1].Subject)
	}
}

func TestClassificationResultsAddSameKeyReplacesInPlace(t *testing.T) {
	results := model.NewClassificationResults()
	subj := model.TypeNodeID("com.example.Order")

	results.Add(model.Unclassified(subj, model.TargetDomain))
	classified := model.Unclassified(subj, model.TargetDomain)
	classified.Status = model.StatusClassified
	classified.Kind = string(model.KindAggregateRoot)
	results.Add(classified)

	if got := results.Len(); got != 1 {
		t.Fatalf("expected a single entry after replace, got %d", got)
	}
	res, ok := results.Get(subj, model.TargetDomain)
	if !ok || res.Kind != string(model.KindAggregateRoot) {
		t.Fatalf("expected replaced result, got %+v (ok=%v)", res, ok)
	}
}

func TestTargetForKindFamily(t *testing.T) {
	if model.TargetForKind(string(model.KindRepository)) != model.TargetPort {
		t.Fatal("expected REPOSITORY to resolve to Port target")
	}
	if model.TargetForKind(string(model.KindValueObject)) != model.TargetDomain {
		t.Fatal("expected VALUE_OBJECT to resolve to Domain target")
	}
}

func TestDirectionOf(t *testing.T) {
	cases := map[model.PortKind]model.PortDirection{
		model.KindUseCase:    model.PortDirectionDriving,
		model.KindCommand:    model.PortDirectionDriving,
		model.KindRepository: model.PortDirectionDriven,
		model.KindGateway:    model.PortDirectionDriven,
	}
	for kind, want := range cases {
		if got := model.DirectionOf(kind); got != want {
			t.Fatalf("DirectionOf(%s) = %s, want %s", kind, got, want)
		}
	}
}
