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

package model

import "fmt"

// InvalidNodeError reports a TypeNode constructed with missing required
// fields. This is a programming error by the graph builder, not a runtime
// condition the engine tolerates: construction fails fast (spec error kind
// "Invalid input data").
type InvalidNodeError struct {
	Field string
	Value string
}

func (e *InvalidNodeError) Error() string {
	return fmt.Sprintf("model: invalid type node: field %q: %s", e.Field, e.Value)
}
