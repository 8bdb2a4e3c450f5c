// Package benchmarks compares the word diff with other Go diff libraries.
//
// The other libraries compare lines, not words. To make them comparable, every token is quoted
// and put on a line of its own, so all implementations compare the same token sequences.
package benchmarks

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/worddiff"
	"znkr.io/worddiff/internal/tokens"
)

type Impl struct {
	Name string
	Diff func(x, y string) []byte

	// MaxTokens is the largest input this implementation is benchmarked with, 0 means no limit.
	MaxTokens int
}

var Impls = []Impl{
	{
		Name: "worddiff",
		Diff: func(x, y string) []byte {
			return segmentLines(worddiff.Diff(x, y))
		},
	},
	{
		Name: "worddiff-sync",
		Diff: func(x, y string) []byte {
			return segmentLines(worddiff.DiffSync(x, y))
		},
		MaxTokens: 3000,
	},
	{
		Name: "go-internal",
		Diff: func(x, y string) []byte {
			return gointernal.Diff("x", []byte(tokenLines(x)), "y", []byte(tokenLines(y)))
		},
	},
	{
		Name: "diffmatchpatch",
		Diff: func(x, y string) []byte {
			dmp := diffmatchpatch.New()
			rx, ry, lines := dmp.DiffLinesToRunes(tokenLines(x), tokenLines(y))
			diffs := dmp.DiffMainRunes(rx, ry, false)
			diffs = dmp.DiffCharsToLines(diffs, lines)

			var buf bytes.Buffer
			for _, diff := range diffs {
				prefix := " "
				switch diff.Type {
				case diffmatchpatch.DiffInsert:
					prefix = "+"
				case diffmatchpatch.DiffDelete:
					prefix = "-"
				}
				for _, line := range strings.SplitAfter(diff.Text, "\n") {
					if line == "" {
						continue
					}
					buf.WriteString(prefix)
					buf.WriteString(line)
				}
			}
			return buf.Bytes()
		},
	},
	{
		Name: "godebug",
		Diff: func(x, y string) []byte {
			return []byte(godebug.Diff(tokenLines(x), tokenLines(y)))
		},
	},
	{
		Name: "mb0",
		Diff: func(x, y string) []byte {
			d := mb0tokens{x: tokens.Split(x), y: tokens.Split(y)}
			changes := mb0.Diff(len(d.x), len(d.y), d)
			var buf bytes.Buffer
			a := 0
			write := func(prefix byte, tok string) {
				buf.WriteByte(prefix)
				buf.WriteString(strconv.Quote(tok))
				buf.WriteByte('\n')
			}
			for _, ch := range changes {
				for ; a < ch.A; a++ {
					write(' ', d.x[a])
				}
				for i := range ch.Del {
					write('-', d.x[ch.A+i])
				}
				a += ch.Del
				for i := range ch.Ins {
					write('+', d.y[ch.B+i])
				}
			}
			for ; a < len(d.x); a++ {
				write(' ', d.x[a])
			}
			return buf.Bytes()
		},
	},
	{
		Name: "udiff",
		Diff: func(x, y string) []byte {
			return []byte(udiff.Unified("x", "y", tokenLines(x), tokenLines(y)))
		},
	},
}

// tokenLines returns s with one quoted token per line.
func tokenLines(s string) string {
	var sb strings.Builder
	for _, tok := range tokens.Split(s) {
		sb.WriteString(strconv.Quote(tok))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// segmentLines renders segments in the same format as the line based libraries. Merged segments
// are split into their tokens again.
func segmentLines(segs []worddiff.Segment) []byte {
	var buf bytes.Buffer
	for _, s := range segs {
		prefix := byte(' ')
		switch s.Kind {
		case worddiff.Added:
			prefix = '+'
		case worddiff.Removed:
			prefix = '-'
		}
		for _, tok := range tokens.Split(s.Text) {
			buf.WriteByte(prefix)
			buf.WriteString(strconv.Quote(tok))
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes()
}

// CountEdits returns the number of inserted and deleted lines in the output of an [Impl].
func CountEdits(out []byte) int {
	n := 0
	for _, line := range bytes.Split(out, []byte("\n")) {
		if bytes.HasPrefix(line, []byte("---")) || bytes.HasPrefix(line, []byte("+++")) {
			continue
		}
		if bytes.HasPrefix(line, []byte{'+'}) || bytes.HasPrefix(line, []byte{'-'}) {
			n++
		}
	}
	return n
}

type mb0tokens struct {
	x, y []string
}

func (d mb0tokens) Equal(i, j int) bool { return d.x[i] == d.y[j] }
