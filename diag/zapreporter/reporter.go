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

// Package zapreporter adapts a *zap.Logger into a diag.Reporter. zap is the
// structured logger used directly by the retrieval corpus's CLI
// entrypoints (e.g. codenerd's cmd/nerd); this is the reporter the
// hexaglue CLI uses.
package zapreporter

import (
	"go.uber.org/zap"

	"github.com/hexaglue/hexaglue/diag"
)

type reporter struct {
	logger *zap.Logger
}

// New adapts logger into a diag.Reporter. A nil logger is replaced with
// zap.NewNop() so callers don't need a nil check.
func New(logger *zap.Logger) diag.Reporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return reporter{logger: logger}
}

func (r reporter) Info(msg string) {
	r.logger.Info(msg)
}

func (r reporter) Warn(msg string) {
	r.logger.Warn(msg)
}

func (r reporter) Error(msg string, cause error) {
	if cause == nil {
		r.logger.Error(msg)
		return
	}
	r.logger.Error(msg, zap.Error(cause))
}

var _ diag.Reporter = reporter{}
