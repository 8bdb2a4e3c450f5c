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

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"znkr.io/worddiff"
)

var (
	addedColor   = lipgloss.Color("#9ece6a")
	removedColor = lipgloss.Color("#f7768e")
	mutedColor   = lipgloss.Color("#565f89")
)

type styles struct {
	added, removed, muted lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		added:   r.NewStyle().Foreground(addedColor).Underline(true).TabWidth(lipgloss.NoTabConversion),
		removed: r.NewStyle().Foreground(removedColor).Strikethrough(true).TabWidth(lipgloss.NoTabConversion),
		muted:   r.NewStyle().Foreground(mutedColor),
	}
}

// render writes segs as inline diff. Changes are enclosed in wdiff style markers, so the output
// stays readable without colors.
func render(w io.Writer, segs []worddiff.Segment, st styles) error {
	bw := bufio.NewWriter(w)
	for _, s := range segs {
		switch s.Kind {
		case worddiff.Unchanged:
			bw.WriteString(s.Text)
		case worddiff.Added:
			writeStyled(bw, st.added, "{+"+s.Text+"+}")
		case worddiff.Removed:
			writeStyled(bw, st.removed, "[-"+s.Text+"-]")
		default:
			panic("never reached")
		}
	}
	if n := len(segs); n > 0 {
		if last := segs[n-1].Text; last == "" || last[len(last)-1] != '\n' {
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

// writeStyled styles every line of text on its own. Rendering multiple lines at once would pad
// them to the same width.
func writeStyled(bw *bufio.Writer, style lipgloss.Style, text string) {
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			bw.WriteByte('\n')
		}
		if line != "" {
			bw.WriteString(style.Render(line))
		}
	}
}

func (st styles) summary(sum worddiff.Summary, strategy worddiff.Strategy) string {
	return st.muted.Render(fmt.Sprintf("%d added, %d removed (%v)", sum.Added, sum.Removed, strategy))
}
