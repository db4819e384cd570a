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

package port

import (
	"fmt"

	"github.com/hexaglue/hexaglue/criteria"
	"github.com/hexaglue/hexaglue/graph"
	"github.com/hexaglue/hexaglue/model"
)

func explicitAnnotationCriterion(id string, annotationFQN string, kind model.PortKind) criteria.Criterion[model.PortKind] {
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

// Repository matches interface types carrying the Repository marker
// annotation (secondary port, spec §4.1).
func Repository() criteria.Criterion[model.PortKind] {
	return explicitAnnotationCriterion("port.explicit.repository", AnnotationRepository, model.KindRepository)
}

// UseCase matches interface types carrying the UseCase marker annotation
// (primary port, spec §4.1).
func UseCase() criteria.Criterion[model.PortKind] {
	return explicitAnnotationCriterion("port.explicit.useCase", AnnotationUseCase, model.KindUseCase)
}

// Gateway matches interface types carrying the Gateway marker annotation
// (secondary port, spec §4.1).
func Gateway() criteria.Criterion[model.PortKind] {
	return explicitAnnotationCriterion("port.explicit.gateway", AnnotationGateway, model.KindGateway)
}
