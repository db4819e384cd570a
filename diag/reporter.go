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

// Package diag defines the DiagnosticReporter capability (spec §6): three
// severities, used by the decision policy and the Secondary Executor to
// surface failures without aborting the run. The core engine depends only
// on this interface; concrete backends (zap, a test collector, /dev/null)
// live in their own packages so the core never picks a logging library for
// its caller.
package diag

// Reporter receives diagnostics emitted during classification. A Reporter
// must be safe to call from multiple goroutines: the Secondary Executor
// calls it from worker goroutines (spec §5).
type Reporter interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string, cause error)
}
