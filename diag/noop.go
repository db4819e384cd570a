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

type noop struct{}

// NoOp returns a Reporter that discards everything. Useful as a default
// when a caller hasn't wired a real diagnostic sink yet.
func NoOp() Reporter { return noop{} }

func (noop) Info(string)          {}
func (noop) Warn(string)          {}
func (noop) Error(string, error)  {}

var _ Reporter = noop{}
