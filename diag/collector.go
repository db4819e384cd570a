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

package diag

import "sync"

// Severity tags a recorded entry.
type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityWarn  Severity = "warn"
	SeverityError Severity = "error"
)

// Entry is one recorded diagnostic.
type Entry struct {
	Severity Severity
	Message  string
	Cause    error
}

// Collector is a Reporter that records every call, safe for concurrent use
// by the Secondary Executor's worker goroutines. Intended for tests.
type Collector struct {
	mu      sync.Mutex
	entries []Entry
}

// NewCollector builds an empty Collector.
func NewCollector() *Collector { return &Collector{} }

func (c *Collector) Info(msg string) { c.record(Entry{Severity: SeverityInfo, Message: msg}) }
func (c *Collector) Warn(msg string) { c.record(Entry{Severity: SeverityWarn, Message: msg}) }
func (c *Collector) Error(msg string, cause error) {
	c.record(Entry{Severity: SeverityError, Message: msg, Cause: cause})
}

func (c *Collector) record(e Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, e)
}

// Entries returns a copy of everything recorded so far.
func (c *Collector) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Entry(nil), c.entries...)
}

var _ Reporter = (*Collector)(nil)
