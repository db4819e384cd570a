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

// Package config loads ClassificationConfig (spec §3) plus driver-level
// options from a YAML document, validating eagerly so a malformed
// configuration is a fatal error at load time, never deferred into a
// classification run (spec §7 rule 1).
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/hexaglue/hexaglue/model"
	"github.com/hexaglue/hexaglue/profile"
)

// Config is the immutable, validated configuration for a classification
// run: exclusion patterns, explicit per-FQN overrides, a criteria profile,
// and the driver's generated-type policy.
type Config struct {
	ExclusionPatterns       []string
	ExplicitClassifications map[string]string
	Profile                 profile.Profile
	IncludeGenerated        bool
}

// ConfigError reports a malformed configuration document, naming the
// offending key (spec §7.1).
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: invalid %q: %s", e.Key, e.Reason)
}

// document mirrors the on-disk YAML shape.
type document struct {
	Exclude          []string          `yaml:"exclude"`
	Explicit         map[string]string `yaml:"explicit"`
	ProfileName      string            `yaml:"profile"`
	ProfileDocument  string            `yaml:"prioritiesInline"`
	IncludeGenerated bool              `yaml:"includeGenerated"`
}

// Load parses and validates a configuration document. An explicit
// classification whose value does not name a known kind, or a
// profile reference that resolves to neither a built-in name nor an
// inline document, is a *ConfigError.
func Load(doc []byte) (*Config, error) {
	var raw document
	if err := yaml.Unmarshal(doc, &raw); err != nil {
		return nil, fmt.Errorf("config: malformed yaml: %w", err)
	}

	for fqn, kind := range raw.Explicit {
		if !knownKind(kind) {
			return nil, &ConfigError{Key: fqn, Reason: fmt.Sprintf("unknown kind %q", kind)}
		}
	}

	for _, pattern := range raw.Exclude {
		if pattern == "" {
			return nil, &ConfigError{Key: "exclude", Reason: "pattern must not be empty"}
		}
	}

	prof, err := resolveProfile(raw)
	if err != nil {
		return nil, err
	}

	return &Config{
		ExclusionPatterns:       append([]string(nil), raw.Exclude...),
		ExplicitClassifications: cloneMap(raw.Explicit),
		Profile:                 prof,
		IncludeGenerated:        raw.IncludeGenerated,
	}, nil
}

func resolveProfile(raw document) (profile.Profile, error) {
	switch {
	case raw.ProfileDocument != "":
		p, err := profile.Parse([]byte(raw.ProfileDocument))
		if err != nil {
			return profile.Profile{}, fmt.Errorf("config: inline profile: %w", err)
		}
		return p, nil
	case raw.ProfileName != "":
		p, err := profile.Builtin(raw.ProfileName)
		if err != nil {
			return profile.Profile{}, &ConfigError{Key: "profile", Reason: err.Error()}
		}
		return p, nil
	default:
		return profile.Builtin(profile.NameDefault)
	}
}

func knownKind(kind string) bool {
	switch kind {
	case string(model.KindAggregateRoot), string(model.KindEntity), string(model.KindValueObject),
		string(model.KindIdentifier), string(model.KindDomainEvent), string(model.KindDomainService),
		string(model.KindRepository), string(model.KindUseCase), string(model.KindGateway), string(model.KindCommand):
		return true
	}
	return false
}

func cloneMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
