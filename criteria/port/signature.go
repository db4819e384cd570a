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

// CommandPattern matches an interface with a method whose name matches one
// of the command verbs and whose return type is void or an identifier-like
// type (spec §4.1). Priority 75, HIGH, target Command.
func CommandPattern() criteria.Criterion[model.PortKind] {
	return criteria.New("port.signature.commandPattern", 75, model.KindCommand, func(n model.TypeNode, _ graph.Query) model.MatchResult {
		for _, m := range n.Methods() {
			verb, ok := matchesCommandVerb(m.Name)
			if !ok {
				continue
			}
			if !isVoidOrIdentifierReturn(m.ReturnTypeFQN) {
				continue
			}
			return model.Match(
				model.ConfidenceHigh,
				fmt.Sprintf("method %s matches command verb %q", m.Name, verb),
				model.StructureEvidence(fmt.Sprintf("method %q returns %s", m.Name, returnDescription(m.ReturnTypeFQN))),
			)
		}
		return model.NoMatch()
	})
}

func matchesCommandVerb(methodName string) (string, bool) {
	lower := strings.ToLower(methodName)
	for _, verb := range commandVerbs {
		if strings.HasPrefix(lower, verb) {
			return verb, true
		}
	}
	return "", false
}

func isVoidOrIdentifierReturn(returnTypeFQN *string) bool {
	if returnTypeFQN == nil || *returnTypeFQN == "" {
		return true
	}
	return strings.HasSuffix(*returnTypeFQN, "Id")
}

func returnDescription(returnTypeFQN *string) string {
	if returnTypeFQN == nil || *returnTypeFQN == "" {
		return "void"
	}
	return *returnTypeFQN
}
