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

package domain

import (
	"fmt"

	"github.com/hexaglue/hexaglue/criteria"
	"github.com/hexaglue/hexaglue/graph"
	"github.com/hexaglue/hexaglue/model"
)

func explicitAnnotationCriterion(id string, annotationFQN string, kind model.DomainKind) criteria.Criterion[model.DomainKind] {
	return criteria.New(id, 100, kind, func(n model.TypeNode, _ graph.Query) model.MatchResult {
		if !n.HasAnnotation(annotationFQN) {
			return model.NoMatch()
		}
		return model.Match(
			model.ConfidenceExplicit,
			fmt.Sprintf("annotated with %s", annotationFQN),
			model.AnnotationEvidence(fmt.Sprintf("annotation %s present", annotationFQN)),
		)
	})
}

// AggregateRoot matches types carrying the AggregateRoot marker annotation.
func AggregateRoot() criteria.Criterion[model.DomainKind] {
	return explicitAnnotationCriterion("domain.explicit.aggregateRoot", AnnotationAggregateRoot, model.KindAggregateRoot)
}

// Entity matches types carrying the Entity marker annotation.
func Entity() criteria.Criterion[model.DomainKind] {
	return explicitAnnotationCriterion("domain.explicit.entity", AnnotationEntity, model.KindEntity)
}

// ValueObject matches types carrying the ValueObject marker annotation.
func ValueObject() criteria.Criterion[model.DomainKind] {
	return explicitAnnotationCriterion("domain.explicit.valueObject", AnnotationValueObject, model.KindValueObject)
}
