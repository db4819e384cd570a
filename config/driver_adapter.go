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

// Exclusions returns the configured exclusion glob patterns. Satisfies
// driver.Config structurally, so package driver never needs to import
// package config.
func (c *Config) Exclusions() []string {
	return c.ExclusionPatterns
}

// ExplicitClassificationFor looks up the configured override kind for fqn.
func (c *Config) ExplicitClassificationFor(fqn string) (string, bool) {
	kind, ok := c.ExplicitClassifications[fqn]
	return kind, ok
}

// ShouldIncludeGenerated reports whether generated types should be kept.
func (c *Config) ShouldIncludeGenerated() bool {
	return c.IncludeGenerated
}
