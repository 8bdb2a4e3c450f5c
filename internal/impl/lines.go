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

import (
	"strings"

	"znkr.io/worddiff/internal/config"
	"znkr.io/worddiff/internal/edits"
	"znkr.io/worddiff/internal/normalize"
	"znkr.io/worddiff/internal/tokens"
)

// diffLines matches the common leading and trailing lines of original and cleaned and only runs a
// word level diff on the lines in between.
func diffLines(original, cleaned string, cfg config.Config) []edits.Edit {
	x, y := tokens.SplitLines(original), tokens.SplitLines(cleaned)
	smin, smax, tmin, tmax := findChangeBounds(x, y)

	out := make([]edits.Edit, 0, 2*(tmin+len(y)-tmax)+2)
	for _, line := range y[:tmin] {
		out = appendLine(out, line)
	}

	// Lines are substrings of their text, so the interior is one contiguous substring.
	xi := original[byteLen(x[:smin]) : len(original)-byteLen(x[smax:])]
	yi := cleaned[byteLen(y[:tmin]) : len(cleaned)-byteLen(y[tmax:])]
	xt, yt := tokens.Split(xi), tokens.Split(yi)
	if len(xt)*len(yt) < cfg.InteriorCellLimit {
		out = append(out, wordDiff(xt, yt)...)
	} else {
		cfg.Logger.Debug("worddiff: interior too large, replacing it as a whole",
			"original_tokens", len(xt),
			"cleaned_tokens", len(yt))
		out = appendReplacement(out, xi, yi)
	}

	for _, line := range y[tmax:] {
		out = appendLine(out, line)
	}
	return edits.Merge(out)
}

// findChangeBounds returns the upper and lower bounds for the changed lines of x and y. The common
// suffix is searched after the common prefix and never overlaps it.
func findChangeBounds(x, y []string) (smin, smax, tmin, tmax int) {
	smin, tmin = 0, 0
	smax, tmax = len(x), len(y)

	// Strip common prefix.
	for smin < smax && tmin < tmax && normalize.Equal(x[smin], y[tmin]) {
		smin++
		tmin++
	}

	// Strip common suffix.
	for smax > smin && tmax > tmin && normalize.Equal(x[smax-1], y[tmax-1]) {
		smax--
		tmax--
	}

	return
}

// appendLine appends a matching line as its body followed by its newline, if any.
func appendLine(out []edits.Edit, line string) []edits.Edit {
	body, nl := strings.CutSuffix(line, "\n")
	if body != "" {
		out = append(out, edits.Edit{Op: edits.Match, Text: body})
	}
	if nl {
		out = append(out, edits.Edit{Op: edits.Match, Text: "\n"})
	}
	return out
}

// appendReplacement appends the deletion of xi followed by the insertion of yi. If both end with a
// newline, that newline is kept as a match after the two blocks.
func appendReplacement(out []edits.Edit, xi, yi string) []edits.Edit {
	xb, xnl := strings.CutSuffix(xi, "\n")
	yb, ynl := strings.CutSuffix(yi, "\n")
	if !xnl || !ynl || xb == "" || yb == "" {
		xb, yb = xi, yi
		xnl = false
	}
	if xb != "" {
		out = append(out, edits.Edit{Op: edits.Delete, Text: xb})
	}
	if yb != "" {
		out = append(out, edits.Edit{Op: edits.Insert, Text: yb})
	}
	if xnl {
		out = append(out, edits.Edit{Op: edits.Match, Text: "\n"})
	}
	return out
}

func byteLen(lines []string) int {
	n := 0
	for _, l := range lines {
		n += len(l)
	}
	return n
}
