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

package compat

import "github.com/hexaglue/hexaglue/model"

// Domain is the built-in Domain compatibility policy (spec §4.3):
// compatible(a, a) is always true, AggregateRoot is compatible with Entity
// (an aggregate root is an entity), and every other distinct pair is
// incompatible.
func Domain() Policy[model.DomainKind] {
	return Func[model.DomainKind](func(a, b model.DomainKind) bool {
		if a == b {
			return true
		}
		return isAggregateRootEntityPair(a, b)
	})
}

func isAggregateRootEntityPair(a, b model.DomainKind) bool {
	pair := [2]model.DomainKind{a, b}
	return pair == [2]model.DomainKind{model.KindAggregateRoot, model.KindEntity} ||
		pair == [2]model.DomainKind{model.KindEntity, model.KindAggregateRoot}
}
