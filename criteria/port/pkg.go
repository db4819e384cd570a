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

func packagePathCriterion(id string, segment string, kind model.PortKind) criteria.Criterion[model.PortKind] {
	return criteria.New(id, 60, kind, func(n model.TypeNode, _ graph.Query) model.MatchResult {
		if !strings.Contains(n.Package(), segment) {
			return model.NoMatch()
		}
		return model.Match(
			model.ConfidenceMedium,
			fmt.Sprintf("package %s contains %s", n.Package(), segment),
			model.PackageEvidence(fmt.Sprintf("package path contains %q", segment)),
		)
	})
}

// PackageDriving matches interfaces declared under a "ports.in" package
// segment (spec §4.1). Target: UseCase, the driving-direction default.
func PackageDriving() criteria.Criterion[model.PortKind] {
	return packagePathCriterion("port.package.driving", "ports.in", model.KindUseCase)
}

// PackageDriven matches interfaces declared under a "ports.out" package
// segment (spec §4.1). Target: Gateway, the driven-direction default.
func PackageDriven() criteria.Criterion[model.PortKind] {
	return packagePathCriterion("port.package.driven", "ports.out", model.KindGateway)
}
