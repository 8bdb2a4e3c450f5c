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

package lcs

import (
	"slices"

	"znkr.io/worddiff/internal/edits"
)

// Backtrack reads an alignment of x and y from a complete table t for x and y.
//
// The walk starts at (len(x), len(y)) and, at every step, takes the first applicable move:
//
//  1. a match if x[i-1] == y[j-1],
//  2. an insertion of y[j-1] if T(i, j-1) >= T(i-1, j),
//  3. a deletion of x[i-1].
//
// Ties between an insertion and a deletion are resolved in favor of the insertion. Because the
// walk goes backwards, that places deletions before insertions in the returned alignment.
func Backtrack[T comparable](t *Table, x, y []T) []edits.Op {
	if t.m != len(x) || t.n != len(y) {
		panic("lcs: table doesn't match inputs")
	}
	stride := t.n + 1
	cells := t.cells
	ops := make([]edits.Op, 0, len(x)+len(y)-t.Len())
	i, j := len(x), len(y)
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && x[i-1] == y[j-1]:
			ops = append(ops, edits.Match)
			i--
			j--
		case j > 0 && (i == 0 || cells[i*stride+j-1] >= cells[(i-1)*stride+j]):
			ops = append(ops, edits.Insert)
			j--
		default:
			ops = append(ops, edits.Delete)
			i--
		}
	}
	slices.Reverse(ops)
	return ops
}
