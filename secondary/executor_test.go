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

package secondary_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexaglue/hexaglue/diag"
	"github.com/hexaglue/hexaglue/graph"
	"github.com/hexaglue/hexaglue/model"
	"github.com/hexaglue/hexaglue/secondary"
)

type funcWorker struct {
	id string
	fn func(ctx context.Context) (*model.ClassificationResult, error)
}

func (w funcWorker) ID() string { return w.id }
func (w funcWorker) Classify(ctx context.Context, _ model.TypeNode, _ graph.Query, _ *model.ClassificationResult) (*model.ClassificationResult, error) {
	return w.fn(ctx)
}

func subject() model.TypeNode {
	return model.MustNewTypeNode(model.TypeNodeSpec{FQN: "com.example.Order", SimpleName: "Order", Kind: model.TypeKindClass})
}

func TestExecutorReturnsResultBeforeTimeout(t *testing.T) {
	confidence := model.ConfidenceHigh
	want := &model.ClassificationResult{Subject: model.TypeNodeID("com.example.Order"), Confidence: &confidence}

	w := funcWorker{id: "fast", fn: func(ctx context.Context) (*model.ClassificationResult, error) {
		return want, nil
	}}

	executor := secondary.NewExecutor(4, diag.NoOp())
	defer executor.Shutdown(context.Background())

	got := executor.Run(context.Background(), secondary.WithTimeout(w, time.Second), subject(), graph.NewMemory(), nil)
	require.NotNil(t, got)
	assert.Equal(t, want, got)
}

func TestExecutorFallsBackOnTimeout(t *testing.T) {
	collector := diag.NewCollector()
	w := funcWorker{id: "slow", fn: func(ctx context.Context) (*model.ClassificationResult, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}}

	executor := secondary.NewExecutor(4, collector)
	defer executor.Shutdown(context.Background())

	got := executor.Run(context.Background(), secondary.WithTimeout(w, 10*time.Millisecond), subject(), graph.NewMemory(), nil)
	assert.Nil(t, got)

	var sawWarn bool
	for _, e := range collector.Entries() {
		if e.Severity == diag.SeverityWarn {
			sawWarn = true
		}
	}
	assert.True(t, sawWarn, "expected a warn diagnostic on timeout")
}

func TestExecutorFallsBackOnWorkerError(t *testing.T) {
	collector := diag.NewCollector()
	w := funcWorker{id: "broken", fn: func(ctx context.Context) (*model.ClassificationResult, error) {
		return nil, errors.New("boom")
	}}

	executor := secondary.NewExecutor(4, collector)
	defer executor.Shutdown(context.Background())

	got := executor.Run(context.Background(), secondary.WithTimeout(w, time.Second), subject(), graph.NewMemory(), nil)
	assert.Nil(t, got)

	var sawError bool
	for _, e := range collector.Entries() {
		if e.Severity == diag.SeverityError {
			sawError = true
		}
	}
	assert.True(t, sawError, "expected an error diagnostic on worker failure")
}

func TestExecutorShutdownIsIdempotent(t *testing.T) {
	executor := secondary.NewExecutor(2, diag.NoOp())
	require.NoError(t, executor.Shutdown(context.Background()))
	require.NoError(t, executor.Shutdown(context.Background()))
}

func TestExecutorAbsentResultMeansUsePrimary(t *testing.T) {
	w := funcWorker{id: "absent", fn: func(ctx context.Context) (*model.ClassificationResult, error) {
		return nil, nil
	}}

	executor := secondary.NewExecutor(2, diag.NoOp())
	defer executor.Shutdown(context.Background())

	got := executor.Run(context.Background(), secondary.WithTimeout(w, time.Second), subject(), graph.NewMemory(), nil)
	assert.Nil(t, got)
}
