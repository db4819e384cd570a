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

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexaglue/hexaglue/config"
)

func TestLoadDefaultsToBuiltinProfile(t *testing.T) {
	cfg, err := config.Load([]byte(`
exclude:
  - "**.*Exception"
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"**.*Exception"}, cfg.ExclusionPatterns)
	assert.Greater(t, cfg.Profile.Len(), 0)
}

func TestLoadRejectsUnknownExplicitKind(t *testing.T) {
	_, err := config.Load([]byte(`
explicit:
  com.example.OrderDetails: NOT_A_KIND
`))
	require.Error(t, err)
	var cfgErr *config.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "com.example.OrderDetails", cfgErr.Key)
}

func TestLoadRejectsEmptyExclusionPattern(t *testing.T) {
	_, err := config.Load([]byte(`
exclude:
  - ""
`))
	require.Error(t, err)
}

func TestLoadNamedProfile(t *testing.T) {
	cfg, err := config.Load([]byte(`
profile: strict
`))
	require.NoError(t, err)
	prio, ok := cfg.Profile.Override("domain.structural.hasIdentity")
	require.True(t, ok)
	assert.Equal(t, 32, prio)
}

func TestBuilderProducesFrozenConfig(t *testing.T) {
	cfg, err := config.NewBuilder().
		Exclude("**.*Exception").
		ExplicitClassification("com.example.OrderDetails", "VALUE_OBJECT").
		IncludeGenerated(true).
		Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"**.*Exception"}, cfg.ExclusionPatterns)
	assert.Equal(t, "VALUE_OBJECT", cfg.ExplicitClassifications["com.example.OrderDetails"])
	assert.True(t, cfg.IncludeGenerated)
}

func TestBuilderRejectsUnknownKind(t *testing.T) {
	_, err := config.NewBuilder().ExplicitClassification("x.Y", "NOT_A_KIND").Build()
	require.Error(t, err)
}
