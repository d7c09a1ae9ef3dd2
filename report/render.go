// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/bufbuild/cexpr/source"
)

// Rendering styles.
const (
	// Simple prints one line per diagnostic, like a compiler run by a build
	// tool: path:line:col: level: message.
	Simple Style = 1 + iota
	// Monochrome adds the annotated source lines, notes and help.
	Monochrome
	// Colored is Monochrome with ANSI colors.
	Colored
)

// Style is how a [Renderer] lays out diagnostics.
type Style int

// Renderer prints a [Report].
type Renderer struct {
	// Files resolves the locations in the report.
	Files *source.Manager
	Style Style

	// Whether to print Debug messages even when CEXPR_DEBUG is not set.
	ShowDebug bool
}

// RenderString renders a report to a string.
func (r Renderer) RenderString(report Report) string {
	var out strings.Builder
	var color color
	if r.Style == Colored {
		color = ansiColor()
	}

	for i := range report {
		r.diagnostic(&out, &report[i], &color)
		out.WriteByte('\n')
		if r.style() != Simple {
			out.WriteByte('\n')
		}
	}
	if r.style() == Simple {
		return out.String()
	}

	errors, warnings, _ := report.Count()
	pluralize := func(count int, what string) string {
		if count == 1 {
			return "1 " + what
		}
		return fmt.Sprint(count, " ", what, "s")
	}
	if errors > 0 {
		fmt.Fprint(&out, color.bRed, "encountered ", pluralize(errors, "error"))
		if warnings > 0 {
			fmt.Fprint(&out, " and ", pluralize(warnings, "warning"))
		}
		fmt.Fprintln(&out, color.reset)
	} else if warnings > 0 {
		fmt.Fprintln(&out, color.bYellow+"encountered "+pluralize(warnings, "warning")+color.reset)
	}
	return out.String()
}

// Render renders a report to w.
func (r Renderer) Render(w io.Writer, report Report) error {
	_, err := io.WriteString(w, r.RenderString(report))
	return err
}

func (r Renderer) style() Style {
	if r.Style == 0 {
		return Simple
	}
	return r.Style
}

func (r Renderer) resolve(loc source.Loc) source.Position {
	if r.Files == nil {
		return source.Position{}
	}
	return r.Files.Resolve(loc)
}

func (r Renderer) diagnostic(out *strings.Builder, d *Diagnostic, color *color) {
	primary := d.Primary()
	where := d.InFile
	if where == "" {
		where = "<unknown>"
	}
	if pos := r.resolve(primary.Range.Begin); pos.IsValid() {
		where = pos.String()
	}

	fmt.Fprintf(out, "%s: %s%s:%s %v", where, color.BoldForLevel(d.Level), d.Level, color.reset, d.Err)
	if r.style() == Simple {
		return
	}

	// Figure out how wide the line bar needs to be. This is given by
	// the width of the largest line value among the annotations.
	var greatestLine int
	for _, a := range d.Annotations {
		greatestLine = max(greatestLine, r.resolve(a.Range.Begin).Line)
	}
	barWidth := max(2, len(fmt.Sprint(greatestLine)))
	bar := func() {
		out.WriteByte('\n')
		out.WriteString(color.nBlue)
		out.WriteString(strings.Repeat(" ", barWidth))
	}

	primaryPath := r.resolve(primary.Range.Begin).Path
	var prev source.Position
	for _, a := range d.Annotations {
		pos := r.resolve(a.Range.Begin)
		if !pos.IsValid() {
			continue
		}
		if pos.Path != primaryPath {
			bar()
			fmt.Fprintf(out, "::: %s%s", pos, color.reset)
		}

		line, begin := r.Files.Line(a.Range.Begin)
		if pos.Path != prev.Path || pos.Line != prev.Line {
			bar()
			fmt.Fprintf(out, " | %s", color.reset)
			out.WriteByte('\n')
			out.WriteString(color.nBlue)
			fmt.Fprintf(out, "%*d | %s%s", barWidth, pos.Line, color.reset, line)
		}
		prev = pos

		end := len(line)
		if endPos := r.resolve(a.Range.End); endPos.Path == pos.Path && endPos.Line == pos.Line {
			_, e := r.Files.Line(a.Range.End)
			end = tokenEnd(line, e)
		}
		startCol := source.Width(0, line[:begin])
		endCol := max(startCol+1, source.Width(0, line[:max(begin, end)]))

		head, mark, ink := "-", "-", color.nBlue
		if a.Primary {
			head, mark, ink = "^", "~", color.BoldForLevel(d.Level)
		}
		bar()
		fmt.Fprintf(out, " | %s%s", color.reset, strings.Repeat(" ", startCol))
		out.WriteString(ink + head + strings.Repeat(mark, endCol-startCol-1))
		if a.Message != "" {
			out.WriteString(" " + a.Message)
		}
		out.WriteString(color.reset)
	}

	// Render the footers. For simplicity we collect them into an array first.
	var footers [][2]string
	for _, note := range d.Notes {
		footers = append(footers, [2]string{"note", note})
	}
	for _, help := range d.Help {
		footers = append(footers, [2]string{"help", help})
	}
	if r.ShowDebug || debugMode > debugOff {
		for _, debug := range d.Debug {
			footers = append(footers, [2]string{"debug", debug})
		}
	}
	for i, frame := range d.trace {
		if debugMode < debugFull && i > 0 {
			break
		}
		// Dump the stack trace for the diagnostic if one was included.
		footers = append(footers, [2]string{"debug", "at " + frame.Function})
		footers = append(footers, [2]string{"debug", fmt.Sprintf("   %s:%d", frame.File, frame.Line)})
	}
	for _, footer := range footers {
		bar()
		out.WriteString(" = ")
		fmt.Fprint(out, color.bCyan, footer[0], ": ", color.reset, footer[1])
	}
}

// tokenEnd returns the offset just past the token starting at offset i of
// line. Identifiers and numbers extend over their word characters; anything
// else is one byte.
func tokenEnd(line string, i int) int {
	if i >= len(line) {
		return len(line)
	}
	j := i
	for j < len(line) && isWord(line[j]) {
		j++
	}
	if j == i {
		return i + 1
	}
	return j
}

func isWord(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

type color struct {
	reset string
	// Normal colors.
	nRed, nYellow, nCyan, nBlue string
	// Bold colors.
	bRed, bYellow, bCyan, bBlue string
}

func ansiColor() color {
	return color{
		reset:   "\033[0m",
		nRed:    "\033[0;31m",
		nYellow: "\033[0;33m",
		nCyan:   "\033[0;36m",
		nBlue:   "\033[0;34m",
		bRed:    "\033[1;31m",
		bYellow: "\033[1;33m",
		bCyan:   "\033[1;36m",
		bBlue:   "\033[1;34m",
	}
}

func (c color) BoldForLevel(l Level) string {
	switch l {
	case Error:
		return c.bRed
	case Warning:
		return c.bYellow
	case Remark:
		return c.bCyan
	case note:
		return c.bBlue
	default:
		return ""
	}
}
