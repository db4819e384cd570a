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

package config

import (
	"fmt"

	"github.com/hexaglue/hexaglue/profile"
)

// Builder is a mutable convenience for assembling a Config in code (tests,
// the CLI's flag handling) without hand-writing YAML. It always ends in
// Build(), which validates and returns a frozen *Config — spec §9's "a
// builder may be offered as a convenience but must produce a frozen value".
type Builder struct {
	exclude          []string
	explicit         map[string]string
	prof             profile.Profile
	includeGenerated bool
}

// NewBuilder starts from the default built-in profile.
func NewBuilder() *Builder {
	def, _ := profile.Builtin(profile.NameDefault)
	return &Builder{explicit: make(map[string]string), prof: def}
}

// Exclude appends an exclusion glob pattern.
func (b *Builder) Exclude(pattern string) *Builder {
	b.exclude = append(b.exclude, pattern)
	return b
}

// ExplicitClassification registers an FQN -> kind-name override.
func (b *Builder) ExplicitClassification(fqn, kind string) *Builder {
	b.explicit[fqn] = kind
	return b
}

// WithProfile overrides the criteria profile.
func (b *Builder) WithProfile(p profile.Profile) *Builder {
	b.prof = p
	return b
}

// IncludeGenerated toggles whether generated types are skipped.
func (b *Builder) IncludeGenerated(include bool) *Builder {
	b.includeGenerated = include
	return b
}

// Build validates and returns the frozen Config.
func (b *Builder) Build() (*Config, error) {
	for fqn, kind := range b.explicit {
		if !knownKind(kind) {
			return nil, &ConfigError{Key: fqn, Reason: fmt.Sprintf("unknown kind %q", kind)}
		}
	}
	return &Config{
		ExclusionPatterns:       append([]string(nil), b.exclude...),
		ExplicitClassifications: cloneMap(b.explicit),
		Profile:                 b.prof,
		IncludeGenerated:        b.includeGenerated,
	}, nil
}
