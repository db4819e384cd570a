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

package classifier_test

import (
	"testing"

	"github.com/hexaglue/hexaglue/classifier"
	"github.com/hexaglue/hexaglue/diag"
	"github.com/hexaglue/hexaglue/graph"
	"github.com/hexaglue/hexaglue/model"
)

func strPtr(s string) *string { return &s }

// TestOrderAndOrderRepository reproduces spec §8 end-to-end scenario 1.
func TestOrderAndOrderRepository(t *testing.T) {
	order := model.MustNewTypeNode(model.TypeNodeSpec{
		FQN: "com.example.Order", SimpleName: "Order", Kind: model.TypeKindClass,
		Fields: []model.FieldDescriptor{{Name: "id", TypeFQN: "java.lang.String"}},
	})
	orderRepository := model.MustNewTypeNode(model.TypeNodeSpec{
		FQN: "com.example.OrderRepository", SimpleName: "OrderRepository", Kind: model.TypeKindInterface,
		Methods: []model.MethodDescriptor{
			{Name: "findById", ReturnTypeFQN: strPtr("com.example.Order"), ParameterTypeFQNs: []string{"java.lang.String"}},
			{Name: "save", ParameterTypeFQNs: []string{"com.example.Order"}},
		},
	})
	q := graph.NewMemory(order, orderRepository)

	domainClassifier := classifier.NewDomain(nil, diag.NoOp())
	portClassifier := classifier.NewPort(nil, diag.NoOp())

	orderResult := domainClassifier.Classify(order, model.TypeNodeID(order.FQN()), q)
	if orderResult.Status != model.StatusClassified {
		t.Fatalf("expected Order classified, got status %v", orderResult.Status)
	}
	if orderResult.Kind != string(model.KindAggregateRoot) {
		t.Errorf("expected AGGREGATE_ROOT, got %s", orderResult.Kind)
	}
	if orderResult.CriterionID == nil || *orderResult.CriterionID != "domain.structural.repositoryDominant" {
		t.Errorf("expected winning criterion repositoryDominant, got %v", orderResult.CriterionID)
	}
	if orderResult.Confidence == nil || *orderResult.Confidence != model.ConfidenceHigh {
		t.Errorf("expected HIGH confidence, got %v", orderResult.Confidence)
	}
	if orderResult.Priority == nil || *orderResult.Priority != 80 {
		t.Errorf("expected priority 80, got %v", orderResult.Priority)
	}

	foundEntityConflict := false
	for _, conflict := range orderResult.Conflicts {
		if conflict.CompetingKind == string(model.KindEntity) && conflict.CompetingCriterionID == "domain.structural.hasIdentity" {
			foundEntityConflict = true
		}
	}
	if !foundEntityConflict {
		t.Errorf("expected a conflict entry for ENTITY/hasIdentity, got %+v", orderResult.Conflicts)
	}

	repoResult := portClassifier.Classify(orderRepository, model.TypeNodeID(orderRepository.FQN()), q)
	if repoResult.Kind != string(model.KindRepository) {
		t.Errorf("expected REPOSITORY, got %s", repoResult.Kind)
	}
	if repoResult.PortDirection != model.PortDirectionDriven {
		t.Errorf("expected driven direction, got %v", repoResult.PortDirection)
	}
}

// TestExplicitValueObjectOverIdentityHeuristic reproduces spec §8 scenario 2.
func TestExplicitValueObjectOverIdentityHeuristic(t *testing.T) {
	money := model.MustNewTypeNode(model.TypeNodeSpec{
		FQN: "com.example.Money", SimpleName: "Money", Kind: model.TypeKindClass,
		Fields:      []model.FieldDescriptor{{Name: "id", TypeFQN: "java.lang.String"}},
		Annotations: []string{"ddd.annotation.ValueObject"},
	})
	q := graph.NewMemory(money)

	domainClassifier := classifier.NewDomain(nil, diag.NoOp())
	result := domainClassifier.Classify(money, model.TypeNodeID(money.FQN()), q)

	if result.Kind != string(model.KindValueObject) {
		t.Fatalf("expected VALUE_OBJECT, got %s", result.Kind)
	}
	if result.Confidence == nil || *result.Confidence != model.ConfidenceExplicit {
		t.Errorf("expected EXPLICIT confidence, got %v", result.Confidence)
	}
	if result.Status != model.StatusClassified {
		t.Errorf("expected Classified (priorities differ, 100 vs 65), got %v", result.Status)
	}

	foundEntityConflict := false
	for _, conflict := range result.Conflicts {
		if conflict.CompetingKind == string(model.KindEntity) {
			foundEntityConflict = true
		}
	}
	if !foundEntityConflict {
		t.Errorf("expected ENTITY to be listed as a conflicting match")
	}
}

// TestPortClassifierOnlyEvaluatesInterfaces exercises spec §8's
// "interface-only port classification" universal property.
func TestPortClassifierOnlyEvaluatesInterfaces(t *testing.T) {
	orderClass := model.MustNewTypeNode(model.TypeNodeSpec{
		FQN: "com.example.Order", SimpleName: "Order", Kind: model.TypeKindClass,
	})
	q := graph.NewMemory(orderClass)

	portClassifier := classifier.NewPort(nil, diag.NoOp())
	result := portClassifier.Classify(orderClass, model.TypeNodeID(orderClass.FQN()), q)

	if result.Status != model.StatusUnclassified {
		t.Fatalf("expected Unclassified for non-interface type, got %v", result.Status)
	}
	if result.Kind != model.UnclassifiedKind {
		t.Errorf("expected sentinel kind, got %s", result.Kind)
	}
}
