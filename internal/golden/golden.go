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

// Package golden runs table-driven tests whose table lives on disk: one input
// file per case, with expected outputs in sibling files.
package golden

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// RefreshEnv is the environment variable holding a glob of cases whose
// expected outputs should be rewritten from the actual outputs.
const RefreshEnv = "CEXPR_REFRESH"

// Corpus is a directory of test cases.
type Corpus struct {
	// The directory containing the cases, relative to the file that calls
	// [Corpus.Run].
	Root string

	// The extension (without a dot) of files that define a case, such as
	// "sexpr".
	Extension string

	// The outputs each case produces. For a case foo.sexpr and an output
	// with extension "stderr", the expected value is read from
	// foo.sexpr.stderr. A missing file means the output is expected to be
	// empty.
	Outputs []Output

	// Test runs a single case and returns one string per element of Outputs.
	Test func(t *testing.T, path, text string) []string
}

// Output is one of the outputs of a case.
type Output struct {
	Extension string

	// Compares the actual and expected values. If nil, they are compared
	// byte-for-byte.
	Compare Compare
}

// Compare compares two outputs. Returns the empty string if they match, and
// a description of the mismatch otherwise.
type Compare func(got, want string) string

// Run runs every case in the corpus as a subtest.
func (c Corpus) Run(t *testing.T) {
	testDir := callerDir(0)
	root := filepath.Join(testDir, c.Root)

	var cases []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.TrimPrefix(filepath.Ext(p), ".") == c.Extension {
			cases = append(cases, p)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("golden: walking %q: %v", root, err)
	}
	slices.Sort(cases)

	refresh := os.Getenv(RefreshEnv)
	if refresh != "" {
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("golden: invalid glob in %s: %q", RefreshEnv, refresh)
		}
		t.Logf("golden: refreshing outputs matching %q", refresh)
		// A refresh must never be mistaken for a passing run.
		t.Fail()
	}

	for _, path := range cases {
		name, _ := filepath.Rel(testDir, path)
		name = filepath.ToSlash(name)
		t.Run(name, func(t *testing.T) {
			text, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("golden: reading %q: %v", path, err)
			}
			results := c.Test(t, name, string(text))
			if len(results) != len(c.Outputs) {
				t.Fatalf("golden: case produced %d outputs, want %d", len(results), len(c.Outputs))
			}

			update := false
			if refresh != "" {
				update, _ = doublestar.Match(refresh, name)
			}
			for i, output := range c.Outputs {
				c.check(t, fmt.Sprint(path, ".", output.Extension), output, results[i], update)
			}
		})
	}
}

func (c Corpus) check(t *testing.T, path string, output Output, got string, update bool) {
	t.Helper()
	if update {
		if got == "" {
			if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
				t.Errorf("golden: deleting %q: %v", path, err)
			}
			return
		}
		if err := os.WriteFile(path, []byte(got), 0o644); err != nil {
			t.Errorf("golden: writing %q: %v", path, err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		t.Errorf("golden: reading %q: %v", path, err)
		return
	}
	compare := output.Compare
	if compare == nil {
		compare = Diff
	}
	if msg := compare(got, string(want)); msg != "" {
		t.Errorf("output mismatch for %q:\n%s", path, msg)
	}
}

// Diff is the default [Compare]: an exact match, reported as a colorized
// unified diff.
func Diff(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}

	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+"):
			lines[i] = "\033[1;92m" + line + "\033[0m"
		case strings.HasPrefix(line, "-"):
			lines[i] = "\033[1;91m" + line + "\033[0m"
		}
	}
	return strings.Join(lines, "\n")
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("golden: could not determine the calling test's directory")
	}
	return filepath.Dir(file)
}
