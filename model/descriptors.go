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

// FieldDescriptor describes a single declared field of a TypeNode.
type FieldDescriptor struct {
	Name         string
	TypeFQN      string
	Modifiers    Modifiers
}

// MethodDescriptor describes a single declared method (or constructor) of a
// TypeNode. ReturnTypeFQN is nil for constructors, per spec §3.
type MethodDescriptor struct {
	Name              string
	ReturnTypeFQN     *string
	ParameterTypeFQNs []string
	Modifiers         Modifiers
	RoleTags          []string
}

// IsConstructor reports whether this descriptor has no return type.
func (m MethodDescriptor) IsConstructor() bool {
	return m.ReturnTypeFQN == nil
}

// ReferencedTypeFQNs returns every type FQN appearing in this method's
// signature: its return type (if any) followed by its parameter types, in
// declaration order.
func (m MethodDescriptor) ReferencedTypeFQNs() []string {
	out := make([]string, 0, len(m.ParameterTypeFQNs)+1)
	if m.ReturnTypeFQN != nil && *m.ReturnTypeFQN != "" {
		out = append(out, *m.ReturnTypeFQN)
	}
	out = append(out, m.ParameterTypeFQNs...)
	return out
}
