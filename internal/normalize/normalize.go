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

// Package normalize removes characters that a human reader can't see from text, so that two
// tokens that only differ in invisible characters compare as equal.
//
// Only invisible characters are removed. Case, quote style, dash style and everything else that is
// visibly different is left alone, those differences are what a diff is supposed to show.
package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// invisible lists all code points removed by [String].
var invisible = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0000, Hi: 0x0008, Stride: 1}, // C0 controls before tab
		{Lo: 0x000b, Hi: 0x000c, Stride: 1}, // vertical tab, form feed
		{Lo: 0x000e, Hi: 0x001f, Stride: 1}, // C0 controls after carriage return
		{Lo: 0x007f, Hi: 0x009f, Stride: 1}, // delete and C1 controls
		{Lo: 0x00ad, Hi: 0x00ad, Stride: 1}, // soft hyphen
		{Lo: 0x200b, Hi: 0x200d, Stride: 1}, // zero width space, non-joiner, joiner
		{Lo: 0xfeff, Hi: 0xfeff, Stride: 1}, // zero width no-break space (byte order mark)
		{Lo: 0xfffe, Hi: 0xffff, Stride: 1}, // non-characters
	},
	LatinOffset: 5,
}

var set = runes.In(invisible)

// IsInvisible reports whether r is removed by [String].
func IsInvisible(r rune) bool {
	return set.Contains(r)
}

// String returns s with all invisible characters removed.
//
// If s doesn't contain any invisible characters, s is returned as is. Bytes that aren't part of a
// valid UTF-8 sequence are kept unchanged, they never compare equal to U+FFFD or to each other.
func String(s string) string {
	if strings.IndexFunc(s, IsInvisible) < 0 {
		return s
	}
	if !utf8.ValidString(s) {
		return removeKeepingInvalid(s)
	}
	out, _, err := transform.String(runes.Remove(set), s)
	if err != nil {
		// runes.Remove never fails on a complete input.
		panic("normalize: " + err.Error())
	}
	return out
}

// removeKeepingInvalid removes invisible characters from s without touching invalid bytes.
// Removing a character can join invalid bytes on either side into a new character, so this repeats
// until nothing is removed.
func removeKeepingInvalid(s string) string {
	for {
		var sb strings.Builder
		sb.Grow(len(s))
		for i := 0; i < len(s); {
			r, size := utf8.DecodeRuneInString(s[i:])
			if !IsInvisible(r) {
				sb.WriteString(s[i : i+size])
			}
			i += size
		}
		out := sb.String()
		if len(out) == len(s) {
			return out
		}
		s = out
	}
}

// Equal reports whether a and b are equal after removing invisible characters.
func Equal(a, b string) bool {
	return String(a) == String(b)
}
