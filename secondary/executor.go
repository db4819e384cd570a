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

package secondary

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hexaglue/hexaglue/diag"
	"github.com/hexaglue/hexaglue/graph"
	"github.com/hexaglue/hexaglue/model"
)

// Executor owns a worker pool created at construction and released on
// Shutdown (spec §4.8, §5). Concurrency is bounded via errgroup.Group's
// SetLimit, rather than a separate semaphore: no corpus example imports
// golang.org/x/sync/semaphore directly, and errgroup's own limiting gives
// the identical "bounded worker pool" semantics with one fewer dependency
// (see DESIGN.md).
type Executor struct {
	maxConcurrency int
	reporter       diag.Reporter

	mu     sync.Mutex
	closed bool
	once   sync.Once
	group  *errgroup.Group
}

// NewExecutor builds an Executor with the given concurrency bound.
// reporter receives timeout/error diagnostics (spec §4.8); pass diag.NoOp()
// if none is wired.
func NewExecutor(maxConcurrency int, reporter diag.Reporter) *Executor {
	if maxConcurrency <= 0 {
		maxConcurrency = 1
	}
	if reporter == nil {
		reporter = diag.NoOp()
	}
	g := &errgroup.Group{}
	g.SetLimit(maxConcurrency)
	return &Executor{maxConcurrency: maxConcurrency, reporter: reporter, group: g}
}

// Run submits reg against subject and blocks for its result, bounded by
// reg's effective timeout. Semantics (spec §4.8):
//   - completes before timeout: returns the worker's result (possibly nil,
//     meaning "use primary").
//   - timeout: cancels the worker's context, logs a warning, returns nil.
//   - worker returns an error: logs an error naming the worker id, returns nil.
func (e *Executor) Run(ctx context.Context, reg Registration, subject model.TypeNode, q graph.Query, primary *model.ClassificationResult) *model.ClassificationResult {
	e.mu.Lock()
	closed := e.closed
	e.mu.Unlock()
	if closed {
		e.reporter.Warn(fmt.Sprintf("secondary: executor closed, skipping worker %s", reg.Worker.ID()))
		return nil
	}

	runCtx, cancel := context.WithTimeout(ctx, reg.effectiveTimeout())
	defer cancel()

	type outcome struct {
		result *model.ClassificationResult
		err    error
	}
	done := make(chan outcome, 1)

	e.group.Go(func() error {
		result, err := reg.Worker.Classify(runCtx, subject, q, primary)
		done <- outcome{result: result, err: err}
		return nil
	})

	select {
	case <-runCtx.Done():
		e.reporter.Warn(fmt.Sprintf("secondary: worker %s timed out for subject %s", reg.Worker.ID(), subject.FQN()))
		return nil
	case out := <-done:
		if out.err != nil {
			e.reporter.Error(fmt.Sprintf("secondary: worker %s failed for subject %s", reg.Worker.ID(), subject.FQN()), out.err)
			return nil
		}
		return out.result
	}
}

// Shutdown blocks until outstanding workers have completed or observed
// cancellation, then releases the pool. Idempotent (spec §5).
func (e *Executor) Shutdown(ctx context.Context) error {
	var err error
	e.once.Do(func() {
		e.mu.Lock()
		e.closed = true
		e.mu.Unlock()

		waitDone := make(chan error, 1)
		go func() { waitDone <- e.group.Wait() }()

		select {
		case <-ctx.Done():
			err = ctx.Err()
		case werr := <-waitDone:
			err = werr
		}
	})
	return err
}
