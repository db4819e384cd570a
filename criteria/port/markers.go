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

// Package port implements the reference Port criterion catalog (spec
// §4.1). The Port target classifier is responsible for only invoking these
// against interface-kind types (spec §4.5): it short-circuits before any
// criterion runs, so the criteria here do not re-check the kind
// themselves.
package port

// Annotation FQNs recognized by the explicit.* criteria.
const (
	AnnotationRepository = "ddd.annotation.Repository"
	AnnotationUseCase    = "ddd.annotation.UseCase"
	AnnotationGateway    = "ddd.annotation.Gateway"
)

// commandVerbs are the method-name prefixes port.signature.commandPattern
// recognizes (spec §4.1: "{create,process,execute,handle,…}*").
var commandVerbs = []string{"create", "process", "execute", "handle", "submit", "dispatch"}
