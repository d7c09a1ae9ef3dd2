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

// Package report provides a diagnostics report and a renderer that prints it
// against the source text it refers to.
//
// Checks append to a [Report] either with a [Diagnose] error, which knows how
// to annotate itself, or with one of the Errorf-style helpers followed by
// [Diagnostic.With]:
//
//	r.Errorf("expression is not assignable").With(
//		report.Snippet(lhs),
//		report.Note("..."),
//	)
package report

import (
	"fmt"
	"runtime"

	"github.com/bufbuild/cexpr/source"
)

// Levels of diagnostics, in decreasing severity.
const (
	Error Level = 1 + iota
	Warning
	Remark
	note // Used internally within the diagnostic renderer.
)

// Level is the severity of a [Diagnostic].
type Level int8

// String implements [fmt.Stringer].
func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Remark:
		return "remark"
	case note:
		return "note"
	default:
		return fmt.Sprintf("Level(%d)", int8(l))
	}
}

// Diagnose is an error that can be rendered as a diagnostic.
type Diagnose interface {
	error

	// Diagnose writes out this error to the given diagnostic.
	//
	// This function should not set Level nor Err; those are set by the
	// diagnostics framework.
	Diagnose(*Diagnostic)
}

// Diagnostic is a single error, warning, or remark.
type Diagnostic struct {
	// The error that prompted this diagnostic. Its Error() return is used
	// as the diagnostic message.
	Err error

	// The kind of diagnostic this is, which affects how and whether it is shown
	// to users.
	Level Level

	// The file this diagnostic occurs in, if it has no associated Annotations.
	InFile string

	// Annotated source ranges. The first one is the primary annotation.
	Annotations []Annotation

	// Notes and help messages to include at the end of the diagnostic, after the
	// Annotations. Debug messages are only shown when CEXPR_DEBUG is set.
	Notes, Help, Debug []string

	// Stack trace information for the diagnostic, for use in debugging.
	// Only populated when CEXPR_DEBUG is set.
	trace []runtime.Frame
}

// Annotation is a source range in a diagnostic, with an optional message.
type Annotation struct {
	Range   source.Range
	Message string
	// Whether this is the annotation the diagnostic is about, which is
	// rendered in the diagnostic's color.
	Primary bool
}

// Primary returns this diagnostic's primary annotation, or the zero
// Annotation if it has none.
func (d *Diagnostic) Primary() Annotation {
	for _, annotation := range d.Annotations {
		if annotation.Primary {
			return annotation
		}
	}
	return Annotation{}
}

// With applies options to this diagnostic. Returns d for chaining.
func (d *Diagnostic) With(options ...DiagnosticOption) *Diagnostic {
	for _, option := range options {
		option(d)
	}
	return d
}

// DiagnosticOption is an option for a [Diagnostic].
type DiagnosticOption func(*Diagnostic)

// InFile names the file a diagnostic with no annotations is about.
func InFile(path string) DiagnosticOption {
	return func(d *Diagnostic) { d.InFile = path }
}

// Ranger is anything with a source range, such as an ast.Expr.
type Ranger interface {
	Range() source.Range
}

// Snippet annotates the range of at, with no message.
func Snippet(at Ranger) DiagnosticOption {
	return Snippetf(at, "")
}

// Snippetf annotates the range of at with a formatted message.
func Snippetf(at Ranger, format string, args ...any) DiagnosticOption {
	return SnippetAtf(at.Range(), format, args...)
}

// SnippetAt annotates a range, with no message.
func SnippetAt(r source.Range) DiagnosticOption {
	return SnippetAtf(r, "")
}

// SnippetAtf annotates a range with a formatted message.
//
// The first annotation added to a diagnostic becomes its primary one.
func SnippetAtf(r source.Range, format string, args ...any) DiagnosticOption {
	// Hoisted out of the closure so that a bad argument blames the caller.
	annotation := Annotation{Range: r, Message: fmt.Sprintf(format, args...)}
	return func(d *Diagnostic) {
		annotation.Primary = len(d.Annotations) == 0
		d.Annotations = append(d.Annotations, annotation)
	}
}

// Note adds a note to the end of a diagnostic.
func Note(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.Notes = append(d.Notes, fmt.Sprintf(format, args...))
	}
}

// Help adds a suggestion to the end of a diagnostic.
func Help(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.Help = append(d.Help, fmt.Sprintf(format, args...))
	}
}

// Debugf adds a message that is only rendered when debugging is on.
func Debugf(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.Debug = append(d.Debug, fmt.Sprintf(format, args...))
	}
}

// Report is a list of diagnostics, in the order they were reported.
//
// The *Diagnostic returned by the methods below points into the report, and
// is only valid until the next diagnostic is added.
type Report []Diagnostic

// Error pushes an error diagnostic onto this report.
func (r *Report) Error(err Diagnose) {
	err.Diagnose(r.push(1, err, Error))
}

// Warn pushes a warning diagnostic onto this report.
func (r *Report) Warn(err Diagnose) {
	err.Diagnose(r.push(1, err, Warning))
}

// Remark pushes a remark diagnostic onto this report.
func (r *Report) Remark(err Diagnose) {
	err.Diagnose(r.push(1, err, Remark))
}

// Errorf pushes an error diagnostic with the given message.
func (r *Report) Errorf(format string, args ...any) *Diagnostic {
	return r.push(1, fmt.Errorf(format, args...), Error)
}

// Warnf pushes a warning diagnostic with the given message.
func (r *Report) Warnf(format string, args ...any) *Diagnostic {
	return r.push(1, fmt.Errorf(format, args...), Warning)
}

// Remarkf pushes a remark diagnostic with the given message.
func (r *Report) Remarkf(format string, args ...any) *Diagnostic {
	return r.push(1, fmt.Errorf(format, args...), Remark)
}

// Count returns the number of diagnostics of each level.
func (r Report) Count() (errors, warnings, remarks int) {
	for i := range r {
		switch r[i].Level {
		case Error:
			errors++
		case Warning:
			warnings++
		case Remark:
			remarks++
		}
	}
	return errors, warnings, remarks
}

// HasErrors returns whether any diagnostic in this report is an error.
func (r Report) HasErrors() bool {
	errors, _, _ := r.Count()
	return errors > 0
}

func (r *Report) push(skip int, err error, level Level) *Diagnostic {
	*r = append(*r, Diagnostic{Err: err, Level: level})
	d := &(*r)[len(*r)-1]

	// If debugging is on, capture a stack trace.
	if debugMode > debugOff {
		// Unwind the stack to find program counter information.
		pc := make([]uintptr, 64)
		pc = pc[:runtime.Callers(skip+2, pc)]

		// Fill trace with the result.
		var zero runtime.Frame
		frames := runtime.CallersFrames(pc)
		for {
			next, more := frames.Next()
			if next != zero {
				d.trace = append(d.trace, next)
			}
			if !more {
				break
			}
		}
	}
	return d
}
