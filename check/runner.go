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

package check

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/bufbuild/cexpr/ast"
	"github.com/bufbuild/cexpr/report"
)

// Runner checks many expression statements in parallel.
type Runner struct {
	Checker *Checker

	// If specified, at most this many checks run at once. If zero or
	// negative, then min(runtime.NumCPU(), runtime.GOMAXPROCS(-1)) is used.
	MaxParallelism int
}

// Run checks each of stmts as an expression statement and returns the
// diagnostics, grouped by statement in the order given.
//
// If ctx is cancelled, no further checks are started; Run returns the
// diagnostics of the checks that did run along with ctx's error.
func (r *Runner) Run(ctx context.Context, stmts ...ast.Expr) (report.Report, error) {
	par := r.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}
	sem := semaphore.NewWeighted(int64(par))

	// Each check gets its own report so that no locking is needed; they are
	// merged in order at the end.
	reports := make([]report.Report, len(stmts))
	var (
		wg  sync.WaitGroup
		err error
	)
	for i, stmt := range stmts {
		if err = sem.Acquire(ctx, 1); err != nil {
			break
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			r.Checker.Stmt(&reports[i], stmt)
		}()
	}
	wg.Wait()

	var out report.Report
	for _, rep := range reports {
		out = append(out, rep...)
	}
	return out, err
}
