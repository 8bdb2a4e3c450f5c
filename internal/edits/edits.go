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

// Package edits contains the internal edits representation that's produced by the LCS backtracking
// and is then translated to a user facing API.
package edits

import (
	"fmt"
	"strings"
)

// Op is a single step of an alignment between two token sequences x and y.
type Op uint8

const (
	Match  Op = iota // consumes one element of x and one element of y
	Delete           // consumes one element of x
	Insert           // consumes one element of y
)

func (op Op) String() string {
	switch op {
	case Match:
		return "match"
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	default:
		return fmt.Sprint(uint8(op))
	}
}

// Edit is an operation together with the text it applies to.
type Edit struct {
	Op   Op
	Text string
}

// FromOps translates an alignment of x and y into edits. Matches take their text from y.
func FromOps(ops []Op, x, y []string) []Edit {
	out := make([]Edit, 0, len(ops))
	s, t := 0, 0
	for _, op := range ops {
		switch op {
		case Match:
			out = append(out, Edit{Match, y[t]})
			s++
			t++
		case Delete:
			out = append(out, Edit{Delete, x[s]})
			s++
		case Insert:
			out = append(out, Edit{Insert, y[t]})
			t++
		default:
			panic("never reached")
		}
	}
	if s != len(x) || t != len(y) {
		panic(fmt.Sprintf("alignment covers x[:%d] and y[:%d], want x[:%d] and y[:%d]", s, t, len(x), len(y)))
	}
	return out
}

// Merge concatenates runs of consecutive deletions and runs of consecutive insertions into a
// single edit each. Matches are never merged, every match stays attached to exactly one token.
//
// Merge reuses the storage of es.
func Merge(es []Edit) []Edit {
	out := es[:0]
	for i := 0; i < len(es); {
		e := es[i]
		j := i + 1
		if e.Op != Match {
			for j < len(es) && es[j].Op == e.Op {
				j++
			}
		}
		if j-i > 1 {
			n := 0
			for _, r := range es[i:j] {
				n += len(r.Text)
			}
			var sb strings.Builder
			sb.Grow(n)
			for _, r := range es[i:j] {
				sb.WriteString(r.Text)
			}
			e.Text = sb.String()
		}
		out = append(out, e) // len(out) <= i, we never overwrite unread edits
		i = j
	}
	return out
}
