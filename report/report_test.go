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

package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/cexpr/report"
	"github.com/bufbuild/cexpr/source"
)

type errBoom struct {
	at source.Range
}

func (e errBoom) Error() string { return "boom" }

func (e errBoom) Diagnose(d *report.Diagnostic) {
	d.With(report.SnippetAtf(e.at, "here"), report.Help("try not exploding"))
}

func TestReport(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	files := new(source.Manager)
	a := files.AddFile("a.c", "x + 1 = 2;\n")

	var r report.Report
	r.Errorf("expression is not assignable").With(
		report.SnippetAt(a.Range(0, 4)),
		report.SnippetAtf(a.Range(8, 8), "value"),
		report.Note("foo"),
	)
	r.Warnf("expression result unused").With(report.SnippetAt(a.Range(8, 8)))
	r.Error(errBoom{a.Range(2, 2)})
	r.Remarkf("just so you know").With(report.InFile("b.c"))

	errs, warnings, remarks := r.Count()
	assert.Equal(2, errs)
	assert.Equal(1, warnings)
	assert.Equal(1, remarks)
	assert.True(r.HasErrors())
	assert.Equal(a.Range(0, 4), r[0].Primary().Range)
	assert.Equal("boom", r[2].Err.Error())
	assert.Equal([]string{"try not exploding"}, r[2].Help)
	assert.Equal(report.Annotation{}, r[3].Primary())

	simple := report.Renderer{Files: files, Style: report.Simple}.RenderString(r)
	assert.Equal(strings.Join([]string{
		"a.c:1:1: error: expression is not assignable",
		"a.c:1:9: warning: expression result unused",
		"a.c:1:3: error: boom",
		"b.c: remark: just so you know",
		"",
	}, "\n"), simple)

	full := report.Renderer{Files: files, Style: report.Monochrome}.RenderString(r[:1])
	assert.Equal(strings.Join([]string{
		"a.c:1:1: error: expression is not assignable",
		"   | ",
		" 1 | x + 1 = 2;",
		"   | ^~~~~",
		"   |         - value",
		"   = note: foo",
		"",
		"encountered 1 error",
		"",
	}, "\n"), full)

	full = report.Renderer{Files: files, Style: report.Monochrome}.RenderString(r[1:2])
	assert.True(strings.HasSuffix(full, "encountered 1 warning\n"), full)
}

func TestRenderColored(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	files := new(source.Manager)
	a := files.AddFile("a.c", "\tfoo(x);\n")

	var r report.Report
	r.Errorf("bad").With(report.SnippetAt(a.Range(1, 5)))

	out := report.Renderer{Files: files, Style: report.Colored}.RenderString(r)
	assert.Contains(out, "\033[1;31merror:")
	assert.Contains(out, "encountered 1 error")

	// The tab advances to column 4, and the underline runs through x.
	out = report.Renderer{Files: files, Style: report.Monochrome}.RenderString(r)
	assert.Contains(out, "\n   |     ^~~~~\n")
	assert.Contains(out, "a.c:1:5: error: bad")
}

func TestRenderWriter(t *testing.T) {
	t.Parallel()

	var r report.Report
	r.Errorf("oops").With(report.InFile("c.c"))

	var out strings.Builder
	err := report.Renderer{}.Render(&out, r)
	assert.NoError(t, err)
	assert.Equal(t, "c.c: error: oops\n", out.String())
}
