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

package worddiff

import (
	"fmt"
	"strings"

	"znkr.io/worddiff/internal/config"
	"znkr.io/worddiff/internal/edits"
	"znkr.io/worddiff/internal/impl"
	"znkr.io/worddiff/internal/tokens"
)

// Kind describes the kind of a segment.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind
type Kind int

const (
	Unchanged Kind = iota // Text that is present in both texts
	Added                 // Text that is only present in the cleaned text
	Removed               // Text that is only present in the original text
)

// Segment is a piece of text together with its kind.
//
// Added and Removed segments can span any number of tokens, consecutive tokens of the same kind are
// always merged. Unchanged segments are never merged. Each one is a single token, or in a line
// based diff, a single line without its newline or a single newline. The text of Unchanged
// segments is taken from the cleaned text.
type Segment struct {
	Text string
	Kind Kind
}

// Strategy describes how two texts are compared.
type Strategy = impl.Strategy

const (
	FullWordDiff = impl.FullWordDiff // Word level diff of the complete texts
	LineDiff     = impl.LineDiff     // Line based diff, word level diff of the changed lines only
	NoDiff       = impl.NoDiff       // No diff, the result is the cleaned text as a single segment
)

// Diff compares original and cleaned and returns the segments that transform one into the other.
//
// The cost of the comparison is bounded by the strategy [SelectStrategy] returns for the same
// inputs. Large diffs yield at regular intervals, see [YieldFunc].
//
// All options are supported.
func Diff(original, cleaned string, opts ...Option) []Segment {
	cfg := config.FromOptions(opts, config.All)
	return segments(impl.Diff(original, cleaned, cfg))
}

// DiffAsync runs [Diff] on a new goroutine. The returned channel receives the result and is closed
// afterwards. It is buffered, abandoning the channel doesn't leak the goroutine.
//
// All options are supported. Invalid options panic before DiffAsync returns.
func DiffAsync(original, cleaned string, opts ...Option) <-chan []Segment {
	cfg := config.FromOptions(opts, config.All)
	ch := make(chan []Segment, 1)
	go func() {
		defer close(ch)
		ch <- segments(impl.Diff(original, cleaned, cfg))
	}()
	return ch
}

// DiffSync compares original and cleaned word by word, irrespective of their size.
//
// The time and memory DiffSync needs grows with the product of the number of tokens in original
// and cleaned. Use [Diff] or [DiffAsync] for inputs of unknown size.
//
// The following options are supported: [worddiff.Logger]
func DiffSync(original, cleaned string, opts ...Option) []Segment {
	cfg := config.FromOptions(opts, config.Logger)
	return segments(impl.WordDiff(original, cleaned, cfg))
}

// SelectStrategy returns the strategy [Diff] uses to compare original and cleaned.
//
// The following options are supported: [worddiff.WordDiffThreshold], [worddiff.LineDiffThreshold],
// [worddiff.SyncCellLimit], [worddiff.InteriorCellLimit]
func SelectStrategy(original, cleaned string, opts ...Option) Strategy {
	cfg := config.FromOptions(opts, config.Thresholds)
	return impl.Select(tokens.Count(original), tokens.Count(cleaned), cfg)
}

// CountChanges returns the number of segments that are not [Unchanged].
func CountChanges(segs []Segment) int {
	n := 0
	for _, s := range segs {
		if s.Kind != Unchanged {
			n++
		}
	}
	return n
}

// Summary counts the segments of a diff by kind.
type Summary struct {
	Added   int // Number of Added segments
	Removed int // Number of Removed segments
}

// Summarize counts the [Added] and [Removed] segments in segs.
func Summarize(segs []Segment) Summary {
	var s Summary
	for _, seg := range segs {
		switch seg.Kind {
		case Added:
			s.Added++
		case Removed:
			s.Removed++
		}
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%d added, %d removed", s.Added, s.Removed)
}

// Cleaned returns the cleaned text of a diff, the concatenation of all segments that are not
// [Removed].
func Cleaned(segs []Segment) string {
	return join(segs, Removed)
}

// Original returns the original text of a diff, the concatenation of all segments that are not
// [Added].
//
// Unchanged segments are taken from the cleaned text. The result only equals the original text up
// to invisible characters.
func Original(segs []Segment) string {
	return join(segs, Added)
}

func join(segs []Segment, skip Kind) string {
	n := 0
	for _, s := range segs {
		if s.Kind != skip {
			n += len(s.Text)
		}
	}
	var sb strings.Builder
	sb.Grow(n)
	for _, s := range segs {
		if s.Kind != skip {
			sb.WriteString(s.Text)
		}
	}
	return sb.String()
}

func segments(es []edits.Edit) []Segment {
	if len(es) == 0 {
		return nil
	}
	out := make([]Segment, len(es))
	for i, e := range es {
		out[i].Text = e.Text
		switch e.Op {
		case edits.Match:
			out[i].Kind = Unchanged
		case edits.Delete:
			out[i].Kind = Removed
		case edits.Insert:
			out[i].Kind = Added
		default:
			panic("never reached")
		}
	}
	return out
}
