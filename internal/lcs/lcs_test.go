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
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/worddiff/internal/edits"
)

// naive computes the table with a 2D slice, straight from the recurrence.
func naive[T comparable](x, y []T) [][]int {
	t := make([][]int, len(x)+1)
	for i := range t {
		t[i] = make([]int, len(y)+1)
	}
	for i := 1; i <= len(x); i++ {
		for j := 1; j <= len(y); j++ {
			if x[i-1] == y[j-1] {
				t[i][j] = t[i-1][j-1] + 1
			} else {
				t[i][j] = max(t[i-1][j], t[i][j-1])
			}
		}
	}
	return t
}

func cells(t *Table) [][]int {
	rows, cols := t.Size()
	out := make([][]int, rows)
	for i := range out {
		out[i] = make([]int, cols)
		for j := range out[i] {
			out[i][j] = t.At(i, j)
		}
	}
	return out
}

func randSeq(rng *rand.Rand, n, alphabet int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = rng.IntN(alphabet)
	}
	return out
}

func TestBuild(t *testing.T) {
	tests := []struct {
		x, y string
		want int
	}{
		{"", "", 0},
		{"abc", "", 0},
		{"", "abc", 0},
		{"abc", "abc", 3},
		{"abc", "xyz", 0},
		{"ABCBDAB", "BDCABA", 4},
		{"the quick fox", "the quack fox", 12},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s-%s", tt.x, tt.y), func(t *testing.T) {
			x, y := strings.Split(tt.x, ""), strings.Split(tt.y, "")
			if tt.x == "" {
				x = nil
			}
			if tt.y == "" {
				y = nil
			}
			tbl := Build(x, y)
			if got := tbl.Len(); got != tt.want {
				t.Errorf("Build(%q, %q).Len() = %d, want %d", tt.x, tt.y, got, tt.want)
			}
			if diff := cmp.Diff(naive(x, y), cells(tbl)); diff != "" {
				t.Errorf("Build(%q, %q) differs [-want,+got]:\n%s", tt.x, tt.y, diff)
			}
		})
	}
}

func TestBuildRandom(t *testing.T) {
	rng := rand.New(rand.NewChaCha8([32]byte{}))
	for range 200 {
		x := randSeq(rng, rng.IntN(40), 1+rng.IntN(6))
		y := randSeq(rng, rng.IntN(40), 1+rng.IntN(6))
		tbl := Build(x, y)
		if diff := cmp.Diff(naive(x, y), cells(tbl)); diff != "" {
			t.Fatalf("Build(%v, %v) differs [-want,+got]:\n%s", x, y, diff)
		}

		// Table invariants: zero borders, monotone rows and columns, steps of at most one.
		rows, cols := tbl.Size()
		for i := range rows {
			for j := range cols {
				v := tbl.At(i, j)
				if (i == 0 || j == 0) && v != 0 {
					t.Fatalf("T(%d, %d) = %d, want 0", i, j, v)
				}
				if v > min(i, j) {
					t.Fatalf("T(%d, %d) = %d exceeds min(i, j)", i, j, v)
				}
				if i > 0 {
					if d := v - tbl.At(i-1, j); d < 0 || d > 1 {
						t.Fatalf("T(%d, %d) - T(%d, %d) = %d", i, j, i-1, j, d)
					}
				}
				if j > 0 {
					if d := v - tbl.At(i, j-1); d < 0 || d > 1 {
						t.Fatalf("T(%d, %d) - T(%d, %d) = %d", i, j, i, j-1, d)
					}
				}
			}
		}
	}
}

func TestBuildChunked(t *testing.T) {
	rng := rand.New(rand.NewChaCha8([32]byte{1}))
	for _, chunk := range []int{-1, 0, 1, 7, 100, 5000} {
		t.Run(fmt.Sprint(chunk), func(t *testing.T) {
			for range 50 {
				x := randSeq(rng, rng.IntN(60), 4)
				y := randSeq(rng, rng.IntN(60), 4)
				yields := 0
				got := BuildChunked(x, y, chunk, func() { yields++ })
				want := Build(x, y)
				if diff := cmp.Diff(want, got, cmp.AllowUnexported(Table{})); diff != "" {
					t.Fatalf("BuildChunked(%v, %v, %d) differs from Build [-want,+got]:\n%s", x, y, chunk, diff)
				}
				bound := 0
				if chunk > 0 {
					bound = (len(x)*len(y) + chunk - 1) / chunk
				}
				if yields > bound {
					t.Errorf("BuildChunked(%dx%d, chunk=%d) yielded %d times, want at most %d", len(x), len(y), chunk, yields, bound)
				}
			}
		})
	}
}

func TestBuildChunkedYields(t *testing.T) {
	x := make([]int, 100)
	y := make([]int, 100)
	for i := range x {
		x[i] = i
		y[i] = i + 50
	}
	yields := 0
	tbl := BuildChunked(x, y, 5000, func() { yields++ })
	if yields != 2 {
		t.Errorf("BuildChunked(100x100, chunk=5000) yielded %d times, want 2", yields)
	}
	if got := tbl.Len(); got != 50 {
		t.Errorf("BuildChunked(...).Len() = %d, want 50", got)
	}
}

func TestAtOutOfRange(t *testing.T) {
	tbl := Build([]int{1, 2}, []int{2})
	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("At(%d, %d) did not panic", idx[0], idx[1])
				}
			}()
			tbl.At(idx[0], idx[1])
		}()
	}
}

func TestBacktrack(t *testing.T) {
	const (
		M = edits.Match
		D = edits.Delete
		I = edits.Insert
	)
	tests := []struct {
		name string
		x, y []string
		want []edits.Op
	}{
		{
			name: "empty",
			want: []edits.Op{},
		},
		{
			name: "only-inserts",
			y:    []string{"a", " ", "b"},
			want: []edits.Op{I, I, I},
		},
		{
			name: "only-deletes",
			x:    []string{"a", " ", "b"},
			want: []edits.Op{D, D, D},
		},
		{
			name: "identical",
			x:    []string{"a", " ", "b"},
			y:    []string{"a", " ", "b"},
			want: []edits.Op{M, M, M},
		},
		{
			name: "replacement-deletes-first",
			x:    []string{"a"},
			y:    []string{"b"},
			want: []edits.Op{D, I},
		},
		{
			name: "replacement-in-context",
			x:    []string{"The", " ", "qick", " ", "fox"},
			y:    []string{"The", " ", "quick", " ", "fox"},
			want: []edits.Op{M, M, D, I, M, M},
		},
		{
			name: "swap",
			x:    []string{"a", "b"},
			y:    []string{"b", "a"},
			want: []edits.Op{D, M, I},
		},
		{
			name: "insert-at-end",
			x:    []string{"a"},
			y:    []string{"a", " ", "b"},
			want: []edits.Op{M, I, I},
		},
		{
			name: "delete-at-start",
			x:    []string{"a", " ", "b"},
			y:    []string{"b"},
			want: []edits.Op{D, D, M},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Backtrack(Build(tt.x, tt.y), tt.x, tt.y)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Backtrack(%q, %q) differs [-want,+got]:\n%s", tt.x, tt.y, diff)
			}
		})
	}
}

func TestBacktrackRandom(t *testing.T) {
	rng := rand.New(rand.NewChaCha8([32]byte{2}))
	for range 500 {
		x := randSeq(rng, rng.IntN(50), 1+rng.IntN(5))
		y := randSeq(rng, rng.IntN(50), 1+rng.IntN(5))
		tbl := Build(x, y)
		ops := Backtrack(tbl, x, y)

		var i, j, matches int
		for _, op := range ops {
			switch op {
			case edits.Match:
				if x[i] != y[j] {
					t.Fatalf("Backtrack(%v, %v) matches x[%d]=%d with y[%d]=%d", x, y, i, x[i], j, y[j])
				}
				i++
				j++
				matches++
			case edits.Delete:
				i++
			case edits.Insert:
				j++
			}
		}
		if i != len(x) || j != len(y) {
			t.Fatalf("Backtrack(%v, %v) consumed x[:%d] and y[:%d]", x, y, i, j)
		}
		if matches != tbl.Len() {
			t.Fatalf("Backtrack(%v, %v) has %d matches, want %d", x, y, matches, tbl.Len())
		}
	}
}

func TestBacktrackMismatchedTable(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Backtrack with a mismatched table did not panic")
		}
	}()
	Backtrack(Build([]int{1}, []int{1}), []int{1, 2}, []int{1})
}

func BenchmarkBuild(b *testing.B) {
	rng := rand.New(rand.NewChaCha8([32]byte{}))
	x := randSeq(rng, 1000, 100)
	y := randSeq(rng, 1000, 100)
	for b.Loop() {
		Build(x, y)
	}
}
