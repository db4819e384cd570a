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

// Package domain implements the reference Domain criterion catalog (spec
// §4.1). Every criterion here is a plain function adapted via
// criteria.New; none carry per-instance state beyond what criteria.New's
// closure captures.
package domain

// Annotation FQNs recognized by the explicit.* criteria. These mirror a
// conventional DDD annotation vocabulary (javax/jakarta-style marker
// annotations); a real deployment may recognize additional FQNs by
// supplying its own criterion built the same way.
const (
	AnnotationAggregateRoot = "ddd.annotation.AggregateRoot"
	AnnotationEntity        = "ddd.annotation.Entity"
	AnnotationValueObject   = "ddd.annotation.ValueObject"
	AnnotationIdentifier    = "ddd.annotation.Identifier"
)

// GeneratedAnnotationSimpleName is the simple name the single-pass driver
// looks for when filtering generated types (spec §4.6 step 2).
const GeneratedAnnotationSimpleName = "Generated"
