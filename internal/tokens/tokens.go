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

// Package tokens splits text into the units that are compared by the diff: words, whitespace runs
// and lines.
package tokens

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"znkr.io/worddiff/internal/normalize"
)

// Split splits s into maximal runs of whitespace and non-whitespace characters. Whitespace is
// what [IsSpace] reports. The concatenation of the returned tokens is s. Tokens are substrings of
// s, no text is copied.
func Split(s string) []string {
	if s == "" {
		return nil
	}
	toks := make([]string, 0, countTokens(s))
	start := 0
	space := startsWithSpace(s)
	for i, r := range s {
		if sp := IsSpace(r); sp != space {
			toks = append(toks, s[start:i])
			start = i
			space = sp
		}
	}
	return append(toks, s[start:])
}

// Count returns the number of tokens [Split] would return for s.
func Count(s string) int {
	if s == "" {
		return 0
	}
	return countTokens(s)
}

func countTokens(s string) int {
	n := 1
	space := startsWithSpace(s)
	for _, r := range s {
		if sp := IsSpace(r); sp != space {
			n++
			space = sp
		}
	}
	return n
}

func startsWithSpace(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return IsSpace(r)
}

// IsSpace reports whether r separates tokens. NEL (U+0085) is a C1 control character that
// normalization removes, it belongs to the surrounding word.
func IsSpace(r rune) bool {
	return r != '\u0085' && unicode.IsSpace(r)
}

// SplitLines splits s on '\n' and returns the lines including the newline character. Only the last
// line may be missing a newline. An empty string has no lines.
func SplitLines(s string) []string {
	n := strings.Count(s, "\n")
	if len(s) > 0 && s[len(s)-1] != '\n' {
		n++
	}
	lines := make([]string, 0, n)
	for len(s) > 0 {
		m := strings.IndexByte(s, '\n')
		if m < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, s[:m+1])
		s = s[m+1:]
	}
	return lines
}

// Intern assigns an ID to the normalized form of every element in x and y. Two elements have the
// same ID if and only if they are equal after normalization.
func Intern(x, y []string) (xids, yids []int32) {
	idx := make(map[string]int32, len(x))
	buf := make([]int32, len(x)+len(y))
	xids, yids = buf[:len(x):len(x)], buf[len(x):]
	id := func(s string) int32 {
		k := normalize.String(s)
		v, ok := idx[k]
		if !ok {
			v = int32(len(idx))
			idx[k] = v
		}
		return v
	}
	for i, s := range x {
		xids[i] = id(s)
	}
	for i, s := range y {
		yids[i] = id(s)
	}
	return xids, yids
}
