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

package classifier

import (
	"github.com/hexaglue/hexaglue/compat"
	"github.com/hexaglue/hexaglue/criteria"
	domaincriteria "github.com/hexaglue/hexaglue/criteria/domain"
	"github.com/hexaglue/hexaglue/diag"
	"github.com/hexaglue/hexaglue/model"
)

// NewDomain builds the built-in Domain classifier (spec §4.5): every
// domain.* criterion, the Domain compatibility policy, applying to every
// type node unconditionally.
func NewDomain(profile criteria.PriorityOverride, reporter diag.Reporter) *Classifier[model.DomainKind] {
	return New(
		model.TargetDomain,
		domaincriteria.Catalog(),
		compat.Domain(),
		profile,
		reporter,
		func(model.TypeNode) bool { return true },
	)
}
