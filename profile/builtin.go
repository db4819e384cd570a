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

package profile

import (
	"embed"
	"fmt"
)

//go:embed resources/default.yaml resources/strict.yaml resources/annotation-only.yaml
var builtinResources embed.FS

// Built-in profile names (spec §4.2).
const (
	NameDefault        = "default"
	NameStrict         = "strict"
	NameAnnotationOnly = "annotation-only"
)

// Builtin loads one of the three named built-in profiles. Which resources
// are built in is a compile-time decision (spec §4.2); this port embeds
// them with go:embed rather than reading from disk at runtime.
func Builtin(name string) (Profile, error) {
	path, ok := map[string]string{
		NameDefault:        "resources/default.yaml",
		NameStrict:         "resources/strict.yaml",
		NameAnnotationOnly: "resources/annotation-only.yaml",
	}[name]
	if !ok {
		return Profile{}, fmt.Errorf("profile: unknown built-in profile %q", name)
	}

	doc, err := builtinResources.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("profile: reading built-in %q: %w", name, err)
	}
	return Parse(doc)
}
