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

package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bufbuild/cexpr/ast"
	"github.com/bufbuild/cexpr/source"
	"github.com/bufbuild/cexpr/walk"
)

// Dump renders the tree rooted at e with one node per line, children
// indented under their parents:
//
//	Binary + 'int' <1:1-1:5>
//	  IntegerLiteral 1 'int' <1:1>
//	  IntegerLiteral 2 'int' <1:5>
//
// Each line gives the node's variant, its distinguishing details, its type,
// and, if opts.Files is set, its range as line:column pairs.
func Dump(e ast.Expr, opts Options) string {
	var out strings.Builder
	depth := 0
	_ = walk.ExprsEnterAndExit(e,
		func(e ast.Expr) error {
			out.WriteString(strings.Repeat("  ", depth))
			out.WriteString(strings.TrimPrefix(e.Kind().String(), "Kind"))
			if detail := details(e, opts); detail != "" {
				out.WriteString(" " + detail)
			}
			fmt.Fprintf(&out, " '%s'", e.Type())
			if r := dumpRange(opts.Files, e.Range()); r != "" {
				out.WriteString(" <" + r + ">")
			}
			out.WriteByte('\n')
			depth++
			return nil
		},
		func(ast.Expr) error {
			depth--
			return nil
		},
	)
	return out.String()
}

// details returns the part of a node that is not one of its children.
func details(e ast.Expr, opts Options) string {
	switch e.Kind() {
	case ast.KindDeclRef:
		return e.AsDeclRef().Decl().Name()
	case ast.KindPredefined:
		return e.AsPredefined().IdentKind().String()
	case ast.KindIntegerLiteral, ast.KindCharLiteral, ast.KindFloatLiteral, ast.KindStringLiteral:
		return Print(e, opts)
	case ast.KindUnary:
		u := e.AsUnary()
		if u.IsPostfix() {
			return "postfix " + u.Op().String()
		}
		return u.Op().String()
	case ast.KindSizeOfAlignOfType:
		n := e.AsSizeOfAlignOfType()
		if n.IsSizeOf() {
			return "sizeof " + strconv.Quote(n.ArgType().String())
		}
		return "alignof " + strconv.Quote(n.ArgType().String())
	case ast.KindBinary:
		return e.AsBinary().Op().String()
	case ast.KindCompoundAssign:
		c := e.AsCompoundAssign()
		return fmt.Sprintf("%s computation '%s'", c.Op(), c.ComputationType())
	case ast.KindMember:
		m := e.AsMember()
		if m.IsArrow() {
			return "->" + m.Field().Name()
		}
		return "." + m.Field().Name()
	case ast.KindVectorElement:
		return e.AsVectorElement().Accessor()
	case ast.KindConditional:
		if e.AsConditional().Then().IsZero() {
			return "?:"
		}
	case ast.KindAddrLabel:
		return e.AsAddrLabel().Label().Name()
	case ast.KindTypesCompatible:
		tc := e.AsTypesCompatible()
		return fmt.Sprintf("'%s' '%s'", tc.Type1(), tc.Type2())
	}
	return ""
}

// dumpRange prints a range as line:col-line:col, or just line:col if it is a
// single location. Returns "" if the range cannot be resolved.
func dumpRange(files *source.Manager, r source.Range) string {
	if files == nil {
		return ""
	}
	begin, end := files.Resolve(r.Begin), files.Resolve(r.End)
	if !begin.IsValid() || !end.IsValid() {
		return ""
	}
	if r.Begin == r.End {
		return fmt.Sprintf("%d:%d", begin.Line, begin.Column)
	}
	return fmt.Sprintf("%d:%d-%d:%d", begin.Line, begin.Column, end.Line, end.Column)
}
