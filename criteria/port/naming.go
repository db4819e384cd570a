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
	"strings"

	"github.com/hexaglue/hexaglue/criteria"
	"github.com/hexaglue/hexaglue/graph"
	"github.com/hexaglue/hexaglue/model"
)

func namingSuffixCriterion(id string, suffix string, kind model.PortKind) criteria.Criterion[model.PortKind] {
	return criteria.New(id, 50, kind, func(n model.TypeNode, _ graph.Query) model.MatchResult {
		if !strings.HasSuffix(n.SimpleName(), suffix) {
			return model.NoMatch()
		}
		return model.Match(
			model.ConfidenceHigh,
			fmt.Sprintf("%s ends with %s", n.SimpleName(), suffix),
			model.NamingEvidence(fmt.Sprintf("type name %q ends with %s", n.SimpleName(), suffix)),
		)
	})
}

// NamingRepository matches interfaces named "*Repository".
func NamingRepository() criteria.Criterion[model.PortKind] {
	return namingSuffixCriterion("port.naming.repository", "Repository", model.KindRepository)
}

// NamingUseCase matches interfaces named "*UseCase".
func NamingUseCase() criteria.Criterion[model.PortKind] {
	return namingSuffixCriterion("port.naming.useCase", "UseCase", model.KindUseCase)
}

// NamingGateway matches interfaces named "*Gateway".
func NamingGateway() criteria.Criterion[model.PortKind] {
	return namingSuffixCriterion("port.naming.gateway", "Gateway", model.KindGateway)
}
