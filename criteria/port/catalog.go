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
	"github.com/hexaglue/hexaglue/criteria"
	"github.com/hexaglue/hexaglue/model"
)

// Catalog returns every reference port criterion this port ships (spec
// §4.1). The target classifier is responsible for only invoking these
// against interface-kind types (spec §4.5).
func Catalog() []criteria.Criterion[model.PortKind] {
	return []criteria.Criterion[model.PortKind]{
		Repository(),
		UseCase(),
		Gateway(),
		NamingRepository(),
		NamingUseCase(),
		NamingGateway(),
		CommandPattern(),
		PackageDriving(),
		PackageDriven(),
	}
}
