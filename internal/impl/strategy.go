// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package impl

import "znkr.io/worddiff/internal/config"

// Strategy is the way two texts are compared.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Strategy
type Strategy int

const (
	FullWordDiff Strategy = iota // word level diff of the complete texts
	LineDiff                     // line based prefix and suffix matching, word level diff of the rest
	NoDiff                       // no comparison, the cleaned text is returned unchanged
)

// Select returns the strategy for two token sequences of length n and m.
func Select(n, m int, cfg config.Config) Strategy {
	switch maxTokens := max(n, m); {
	case maxTokens <= cfg.WordDiffThreshold:
		return FullWordDiff
	case maxTokens <= cfg.LineDiffThreshold:
		return LineDiff
	default:
		return NoDiff
	}
}
