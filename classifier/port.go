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
	portcriteria "github.com/hexaglue/hexaglue/criteria/port"
	"github.com/hexaglue/hexaglue/diag"
	"github.com/hexaglue/hexaglue/model"
)

// NewPort builds the built-in Port classifier (spec §4.5): every port.*
// criterion, the Port (identity-only) compatibility policy, applying only
// to interface-kind types — every other kind is Unclassified without
// evaluating a single criterion.
func NewPort(profile criteria.PriorityOverride, reporter diag.Reporter) *Classifier[model.PortKind] {
	return New(
		model.TargetPort,
		portcriteria.Catalog(),
		compat.Port(),
		profile,
		reporter,
		func(n model.TypeNode) bool { return n.Kind() == model.TypeKindInterface },
	)
}
