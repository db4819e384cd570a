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

// Package secondary implements the Secondary Executor (spec §4.8): running
// an externally supplied classifier per subject on a worker, bounded by a
// per-classifier timeout, with cooperative cancellation and diagnostic
// reporting on timeout or error.
package secondary

import (
	"context"
	"time"

	"github.com/hexaglue/hexaglue/graph"
	"github.com/hexaglue/hexaglue/model"
)

// Worker is a single externally-supplied secondary classifier (spec §6): a
// single Classify operation returning an absent result (nil, nil) to mean
// "use primary". Implementations must observe ctx cancellation
// cooperatively — the executor does not forcibly terminate a worker that
// overruns its timeout.
type Worker interface {
	// ID is the worker's stable identifier, used in diagnostics.
	ID() string
	// Classify runs the secondary classification. primary is the result the
	// primary classifier already reached for subject, if any; returning nil
	// means "fall back to primary".
	Classify(ctx context.Context, subject model.TypeNode, q graph.Query, primary *model.ClassificationResult) (*model.ClassificationResult, error)
}

// DefaultTimeout is the documented default per-classifier timeout (spec
// §4.8).
const DefaultTimeout = 2 * time.Second

// Registration pairs a Worker with its effective timeout.
type Registration struct {
	Worker  Worker
	Timeout time.Duration
}

// WithTimeout builds a Registration overriding the default timeout for w.
func WithTimeout(w Worker, timeout time.Duration) Registration {
	return Registration{Worker: w, Timeout: timeout}
}

func (r Registration) effectiveTimeout() time.Duration {
	if r.Timeout <= 0 {
		return DefaultTimeout
	}
	return r.Timeout
}
