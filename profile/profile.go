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

// Package profile implements the CriteriaProfile overlay (spec §4.2): a
// criterion-id -> effective-priority override, sourced from a YAML text
// document. Parsing uses gopkg.in/yaml.v3, the serialization library used
// directly throughout the retrieval corpus for config documents.
package profile

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Profile is an immutable criterion-id -> priority override mapping. The
// zero value is the empty profile (every criterion uses its default
// priority).
type Profile struct {
	overrides map[string]int
}

// Empty is the profile with no overrides.
func Empty() Profile { return Profile{} }

// Override implements criteria.PriorityOverride.
func (p Profile) Override(key string) (int, bool) {
	if p.overrides == nil {
		return 0, false
	}
	v, ok := p.overrides[key]
	return v, ok
}

// Len reports how many overrides this profile carries.
func (p Profile) Len() int { return len(p.overrides) }

// ConfigError reports a malformed profile document (spec §7.1): surfaced at
// construction time, naming the offending key.
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("profile: invalid priority for %q: %s", e.Key, e.Reason)
}

// rawDocument mirrors the profile document shape (spec §4.2):
//
//	priorities:
//	  <criterion-id>: <integer>
//
// Priorities is decoded as a raw yaml.Node so Parse can report a precise,
// per-key error for non-integer scalars instead of failing the whole
// document opaquely.
type rawDocument struct {
	Priorities yaml.Node `yaml:"priorities"`
}

// Parse builds a Profile from a YAML document shaped per spec §4.2.
// Comments and blank lines are ignored by the YAML parser itself. A
// fractional value is truncated toward zero. A non-integer scalar, or a
// non-mapping priorities block, is a *ConfigError naming the offending key.
// An absent priorities block yields Empty().
func Parse(doc []byte) (Profile, error) {
	var raw rawDocument
	if err := yaml.Unmarshal(doc, &raw); err != nil {
		return Profile{}, fmt.Errorf("profile: malformed yaml: %w", err)
	}

	if raw.Priorities.Kind == 0 {
		return Empty(), nil
	}
	if raw.Priorities.Kind != yaml.MappingNode {
		return Profile{}, &ConfigError{Key: "priorities", Reason: "must be a mapping"}
	}

	overrides := make(map[string]int, len(raw.Priorities.Content)/2)
	content := raw.Priorities.Content
	for i := 0; i+1 < len(content); i += 2 {
		keyNode, valueNode := content[i], content[i+1]
		var key string
		if err := keyNode.Decode(&key); err != nil {
			return Profile{}, &ConfigError{Key: keyNode.Value, Reason: "key must be a scalar string"}
		}

		priority, err := decodePriority(valueNode)
		if err != nil {
			return Profile{}, &ConfigError{Key: key, Reason: err.Error()}
		}
		overrides[key] = priority
	}

	return Profile{overrides: overrides}, nil
}

func decodePriority(node *yaml.Node) (int, error) {
	var f float64
	if err := node.Decode(&f); err != nil {
		return 0, fmt.Errorf("value must be numeric, got %q", node.Value)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("value must be a finite number, got %q", node.Value)
	}
	return int(f), nil // truncates toward zero, matching float64->int conversion semantics
}
