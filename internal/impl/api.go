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

// Package impl ties tokenization, LCS computation and merging together and picks the comparison
// strategy based on input size.
package impl

import (
	"znkr.io/worddiff/internal/config"
	"znkr.io/worddiff/internal/edits"
	"znkr.io/worddiff/internal/lcs"
	"znkr.io/worddiff/internal/tokens"
)

// Diff compares original and cleaned and returns merged edits. The cost of the comparison is
// bounded by the strategy returned by [Select].
func Diff(original, cleaned string, cfg config.Config) []edits.Edit {
	x, y := tokens.Split(original), tokens.Split(cleaned)
	switch {
	case len(x) == 0 && len(y) == 0:
		return nil
	case len(x) == 0:
		return []edits.Edit{{Op: edits.Insert, Text: cleaned}}
	case len(y) == 0:
		return []edits.Edit{{Op: edits.Delete, Text: original}}
	}

	s := Select(len(x), len(y), cfg)
	cfg.Logger.Debug("worddiff: strategy selected",
		"strategy", s.String(),
		"original_tokens", len(x),
		"cleaned_tokens", len(y))

	switch s {
	case FullWordDiff:
		if len(x)*len(y) < cfg.SyncCellLimit {
			return wordDiff(x, y)
		}
		cfg.Logger.Debug("worddiff: building table cooperatively",
			"cells", len(x)*len(y),
			"chunk_size", cfg.ChunkSize)
		cfg.Yield()
		return wordDiffChunked(x, y, cfg.ChunkSize, cfg.Yield)
	case LineDiff:
		cfg.Yield()
		return diffLines(original, cleaned, cfg)
	case NoDiff:
		return []edits.Edit{{Op: edits.Match, Text: cleaned}}
	default:
		panic("never reached")
	}
}

// WordDiff compares original and cleaned token by token without any size limit. Only the logger of
// cfg is used.
func WordDiff(original, cleaned string, cfg config.Config) []edits.Edit {
	x, y := tokens.Split(original), tokens.Split(cleaned)
	cfg.Logger.Debug("worddiff: synchronous diff",
		"original_tokens", len(x),
		"cleaned_tokens", len(y))
	return wordDiff(x, y)
}

func wordDiff(x, y []string) []edits.Edit {
	xids, yids := tokens.Intern(x, y)
	t := lcs.Build(xids, yids)
	return edits.Merge(edits.FromOps(lcs.Backtrack(t, xids, yids), x, y))
}

func wordDiffChunked(x, y []string, chunk int, yield func()) []edits.Edit {
	xids, yids := tokens.Intern(x, y)
	t := lcs.BuildChunked(xids, yids, chunk, yield)
	return edits.Merge(edits.FromOps(lcs.Backtrack(t, xids, yids), x, y))
}
