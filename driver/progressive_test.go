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

package driver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexaglue/hexaglue/config"
	"github.com/hexaglue/hexaglue/diag"
	"github.com/hexaglue/hexaglue/driver"
	"github.com/hexaglue/hexaglue/graph"
	"github.com/hexaglue/hexaglue/model"
)

func TestProgressiveDriverClassifiesAcrossPasses(t *testing.T) {
	money := model.MustNewTypeNode(model.TypeNodeSpec{
		FQN: "com.example.Money", SimpleName: "Money", Kind: model.TypeKindClass,
		Fields:      []model.FieldDescriptor{{Name: "id", TypeFQN: "java.lang.String"}},
		Annotations: []string{"ddd.annotation.ValueObject"},
	})
	q := graph.NewMemory(money)
	cfg, err := config.NewBuilder().Build()
	require.NoError(t, err)

	pd := driver.NewProgressiveDriver(nil, nil, cfg.Profile, diag.NoOp())
	results, stats := pd.Classify(q, cfg)

	require.Len(t, stats, 3)
	result, ok := results.Get(model.TypeNodeID(money.FQN()), model.TargetDomain)
	require.True(t, ok)
	assert.Equal(t, string(model.KindValueObject), result.Kind)
	assert.Equal(t, driver.PassSyntactic, stats[0].Pass)
}

func TestProgressiveDriverSkipsExplicitAfterFirstPass(t *testing.T) {
	money := model.MustNewTypeNode(model.TypeNodeSpec{
		FQN: "com.example.Money", SimpleName: "Money", Kind: model.TypeKindClass,
		Annotations: []string{"ddd.annotation.ValueObject"},
	})
	q := graph.NewMemory(money)
	cfg, err := config.NewBuilder().Build()
	require.NoError(t, err)

	pd := driver.NewProgressiveDriver(nil, nil, cfg.Profile, diag.NoOp())
	_, stats := pd.Classify(q, cfg)

	require.Len(t, stats, 3)
	assert.Greater(t, stats[2].SkippedExplicit, 0, "explicit-confidence subject should be skipped in later passes")
}
