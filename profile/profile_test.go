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

package profile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexaglue/hexaglue/profile"
)

func TestParseEmptyDocumentYieldsEmptyProfile(t *testing.T) {
	p, err := profile.Parse([]byte(`# nothing here`))
	require.NoError(t, err)
	assert.Equal(t, 0, p.Len())
	_, ok := p.Override("domain.explicit.entity")
	assert.False(t, ok)
}

func TestParseTruncatesFractionalTowardZero(t *testing.T) {
	p, err := profile.Parse([]byte(`
priorities:
  domain.naming.domainEvent: 40.9
  domain.semantic.domainEnum: -1.9
`))
	require.NoError(t, err)

	got, ok := p.Override("domain.naming.domainEvent")
	require.True(t, ok)
	assert.Equal(t, 40, got)

	got, ok = p.Override("domain.semantic.domainEnum")
	require.True(t, ok)
	assert.Equal(t, -1, got)
}

func TestParseRejectsNonIntegerScalar(t *testing.T) {
	_, err := profile.Parse([]byte(`
priorities:
  domain.naming.domainEvent: "not a number"
`))
	require.Error(t, err)
	var cfgErr *profile.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "domain.naming.domainEvent", cfgErr.Key)
}

func TestParseRejectsNonMappingPrioritiesBlock(t *testing.T) {
	_, err := profile.Parse([]byte(`
priorities: "oops"
`))
	require.Error(t, err)
	var cfgErr *profile.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "priorities", cfgErr.Key)
}

func TestBuiltinProfiles(t *testing.T) {
	def, err := profile.Builtin(profile.NameDefault)
	require.NoError(t, err)
	prio, ok := def.Override("domain.explicit.aggregateRoot")
	require.True(t, ok)
	assert.Equal(t, 100, prio)

	strict, err := profile.Builtin(profile.NameStrict)
	require.NoError(t, err)
	strictPrio, ok := strict.Override("domain.structural.hasIdentity")
	require.True(t, ok)
	assert.Less(t, strictPrio, prio)

	annotationOnly, err := profile.Builtin(profile.NameAnnotationOnly)
	require.NoError(t, err)
	disabled, ok := annotationOnly.Override("domain.structural.hasIdentity")
	require.True(t, ok)
	assert.Less(t, disabled, 0)

	explicitPrio, ok := annotationOnly.Override("domain.explicit.aggregateRoot")
	assert.False(t, ok, "annotation-only must not override explicit.* criteria")
	_ = explicitPrio
}

func TestBuiltinUnknownName(t *testing.T) {
	_, err := profile.Builtin("does-not-exist")
	require.Error(t, err)
}
