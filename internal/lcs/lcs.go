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

// Package lcs computes longest common subsequences with the classic dynamic programming algorithm.
//
// For two sequences x and y of length m and n, the table has (m+1)×(n+1) cells. Cell (i, j) holds
// the length of the longest common subsequence of x[:i] and y[:j]:
//
//	T(0, j) = T(i, 0) = 0
//	T(i, j) = T(i-1, j-1) + 1              if x[i-1] == y[j-1]
//	T(i, j) = max(T(i-1, j), T(i, j-1))    otherwise
//
// Both time and space are O(m·n). There are no shortcuts, callers are expected to bound m·n.
package lcs

// Table is a complete LCS table. Cells are stored row by row in a single slice.
type Table struct {
	m, n  int
	cells []int32
}

// At returns the length of the longest common subsequence of x[:i] and y[:j].
func (t *Table) At(i, j int) int {
	if i < 0 || i > t.m || j < 0 || j > t.n {
		panic("lcs: index out of range")
	}
	return int(t.cells[i*(t.n+1)+j])
}

// Len returns the length of the longest common subsequence of x and y.
func (t *Table) Len() int { return t.At(t.m, t.n) }

// Size returns the dimensions of the table, len(x)+1 and len(y)+1.
func (t *Table) Size() (rows, cols int) { return t.m + 1, t.n + 1 }

// Build computes the full LCS table for x and y.
func Build[T comparable](x, y []T) *Table {
	b := newBuilder(x, y)
	for b.next() {
	}
	return b.t
}

// BuildChunked computes the same table as [Build], but calls yield after every chunk table cells.
//
// The table is computed one row at a time. yield is only ever called between two rows and at most
// ⌈len(x)·len(y)/chunk⌉ times. For chunk <= 0, yield is never called.
func BuildChunked[T comparable](x, y []T, chunk int, yield func()) *Table {
	b := newBuilder(x, y)
	ops := 0
	for b.next() {
		ops += len(y)
		if chunk > 0 && ops >= chunk {
			yield()
			ops = 0
		}
	}
	return b.t
}

// builder computes a table one row at a time.
type builder[T comparable] struct {
	x, y []T
	t    *Table
	i    int // next row to compute
}

func newBuilder[T comparable](x, y []T) *builder[T] {
	m, n := len(x), len(y)
	return &builder[T]{
		x: x,
		y: y,
		t: &Table{m: m, n: n, cells: make([]int32, (m+1)*(n+1))},
		i: 1, // row 0 is all zeros
	}
}

// next computes the next row and reports whether it did. It returns false once the table is
// complete.
func (b *builder[T]) next() bool {
	i := b.i
	if i > len(b.x) {
		return false
	}
	stride := len(b.y) + 1
	prev := b.t.cells[(i-1)*stride : i*stride]
	cur := b.t.cells[i*stride : (i+1)*stride]
	xi := b.x[i-1]
	for j := 1; j < stride; j++ {
		if xi == b.y[j-1] {
			cur[j] = prev[j-1] + 1
		} else {
			cur[j] = max(prev[j], cur[j-1])
		}
	}
	b.i++
	return true
}
