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

package exprtest

import (
	"strconv"
	"strings"

	"github.com/bufbuild/cexpr/apint"
	"github.com/bufbuild/cexpr/ctype"
)

var builtinTypes = map[string]ctype.Kind{
	"void":    ctype.KindVoid,
	"bool":    ctype.KindBool,
	"char":    ctype.KindChar,
	"schar":   ctype.KindSChar,
	"uchar":   ctype.KindUChar,
	"short":   ctype.KindShort,
	"ushort":  ctype.KindUShort,
	"int":     ctype.KindInt,
	"uint":    ctype.KindUInt,
	"long":    ctype.KindLong,
	"ulong":   ctype.KindULong,
	"llong":   ctype.KindLongLong,
	"ullong":  ctype.KindULongLong,
	"float":   ctype.KindFloat,
	"double":  ctype.KindDouble,
	"ldouble": ctype.KindLongDouble,
}

var qualifiers = map[string]ctype.Quals{
	"const":    ctype.Const,
	"volatile": ctype.Volatile,
	"restrict": ctype.Restrict,
}

// typ builds a type: a name, optionally followed by *s, or one of
// (ptr T), (const T), (volatile T), (restrict T), (array T [N]),
// (vector T N), and (fn R P... [...]).
func (in input) typ(s sexpr) ctype.QualType {
	if !s.isList {
		name := strings.TrimRight(s.atom, "*")
		var t ctype.QualType
		if k, ok := builtinTypes[name]; ok {
			t = in.Types.Builtin(k)
		} else if t, ok = in.typedefs[name]; !ok {
			panic(errorf(s.open, "unknown type %q", name))
		}
		for range len(s.atom) - len(name) {
			t = in.Types.PointerTo(t)
		}
		return t
	}

	args := s.args()
	switch head := s.head(); head {
	case "ptr":
		in.arity(s, 1)
		return in.Types.PointerTo(in.typ(args[0]))
	case "const", "volatile", "restrict":
		in.arity(s, 1)
		t := in.typ(args[0])
		return t.WithQuals(t.Quals() | qualifiers[head])
	case "array":
		if len(args) == 1 {
			return in.Types.IncompleteArrayOf(in.typ(args[0]))
		}
		in.arity(s, 2)
		return in.Types.ArrayOf(in.typ(args[0]), int64(in.count(args[1])))
	case "vector":
		in.arity(s, 2)
		return in.Types.VectorOf(in.typ(args[0]), in.count(args[1]))
	case "fn":
		if len(args) == 0 {
			panic(errorf(s.open, "function type requires a result"))
		}
		var params []ctype.QualType
		variadic := false
		for i, p := range args[1:] {
			if !p.isList && p.atom == "..." && i == len(args)-2 {
				variadic = true
				break
			}
			params = append(params, in.typ(p))
		}
		return in.Types.FunctionType(in.typ(args[0]), params, variadic)
	default:
		panic(errorf(s.open, "unknown type constructor %s", s))
	}
}

func (in input) count(s sexpr) int {
	n, err := strconv.Atoi(s.atom)
	if s.isList || err != nil || n < 0 {
		panic(errorf(s.open, "expected a count, got %s", s))
	}
	return n
}

func (in input) arity(s sexpr, n int) {
	if len(s.args()) != n {
		panic(errorf(s.open, "%s takes %d arguments, got %d", s.head(), n, len(s.args())))
	}
}

func (in input) name(s sexpr) string {
	if s.isList || s.quoted != 0 || s.atom == "" {
		panic(errorf(s.open, "expected a name, got %s", s))
	}
	return s.atom
}

// declare adds a single declaration form to scope.
func (in input) declare(s sexpr) {
	args := s.args()
	if len(args) == 0 {
		panic(errorf(s.open, "expected a declaration, got %s", s))
	}
	name := in.name(args[0])
	loc := in.loc(args[0].open)

	switch s.head() {
	case "var", "param", "func":
		in.arity(s, 2)
		ty := in.typ(args[1])
		switch s.head() {
		case "var":
			in.names[name] = in.Decls.NewVar(name, ty, loc).ID()
		case "param":
			in.names[name] = in.Decls.NewParam(name, ty, loc).ID()
		default:
			if !ty.IsFunctionType() {
				panic(errorf(args[1].open, "function %s declared with non-function type %s", name, ty))
			}
			in.names[name] = in.Decls.NewFunc(name, ty, loc).ID()
		}

	case "typedef":
		in.arity(s, 2)
		ty := in.typ(args[1])
		in.names[name] = in.Decls.NewTypedef(name, ty, loc).ID()
		in.typedefs[name] = ty

	case "struct", "union":
		kind := ctype.KindStruct
		if s.head() == "union" {
			kind = ctype.KindUnion
		}
		record := in.Types.NewRecord(kind, name)
		in.typedefs[name] = record
		if len(args) == 1 {
			return // Incomplete.
		}

		fields := make([]ctype.Field, len(args)-1)
		for i, f := range args[1:] {
			if !f.isList || len(f.list) != 2 {
				panic(errorf(f.open, "expected (name type), got %s", f))
			}
			fields[i] = ctype.Field{Name: in.name(f.list[0]), Type: in.typ(f.list[1])}
		}
		in.Types.Complete(record, fields...)
		for _, f := range args[1:] {
			field := in.name(f.list[0])
			id := in.Decls.NewField(record, field, in.loc(f.list[0].open)).ID()
			in.fields[fieldKey{record, field}] = id
		}

	case "enum":
		enum := in.Types.NewEnum(name, ctype.KindInt)
		in.typedefs[name] = enum
		intType := in.Types.Builtin(ctype.KindInt)
		for _, c := range args[1:] {
			if !c.isList || len(c.list) != 2 {
				panic(errorf(c.open, "expected (name value), got %s", c))
			}
			v, err := strconv.ParseInt(c.list[1].atom, 0, 64)
			if err != nil {
				panic(errorf(c.list[1].open, "bad enumerator value %s", c.list[1]))
			}
			value := apint.From(v, in.Types.IntWidth(intType), false)
			enumerator := in.name(c.list[0])
			in.names[enumerator] = in.Decls.NewEnumConstant(enumerator, intType, value, in.loc(c.list[0].open)).ID()
		}

	case "label":
		in.arity(s, 1)
		in.labels[name] = in.Decls.NewLabel(name, loc).ID()

	default:
		panic(errorf(s.open, "unknown declaration %s", s))
	}
}
