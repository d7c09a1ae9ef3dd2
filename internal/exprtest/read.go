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
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// sexpr is a parsed s-expression: either an atom or a parenthesized list.
type sexpr struct {
	// Byte offsets of the atom, or of the list's parentheses.
	open, close int

	atom   string
	quoted byte // '"' or '\'' for string and character atoms.
	list   []sexpr
	isList bool
}

func (s sexpr) head() string {
	if !s.isList || len(s.list) == 0 || s.list[0].isList {
		return ""
	}
	return s.list[0].atom
}

func (s sexpr) args() []sexpr {
	if !s.isList || len(s.list) == 0 {
		return nil
	}
	return s.list[1:]
}

// syntaxError is a fixture error at a byte offset of the input.
type syntaxError struct {
	offset int
	msg    string
}

func (e *syntaxError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.offset, e.msg)
}

func errorf(offset int, format string, args ...any) *syntaxError {
	return &syntaxError{offset, fmt.Sprintf(format, args...)}
}

// read parses every s-expression in text.
func read(text string) ([]sexpr, error) {
	r := reader{text: text}
	var out []sexpr
	for {
		r.skip()
		if r.pos >= len(r.text) {
			return out, nil
		}
		s, err := r.next()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
}

type reader struct {
	text string
	pos  int
}

// skip skips whitespace and ; comments.
func (r *reader) skip() {
	for r.pos < len(r.text) {
		c := r.text[r.pos]
		switch {
		case c == ';':
			for r.pos < len(r.text) && r.text[r.pos] != '\n' {
				r.pos++
			}
		case unicode.IsSpace(rune(c)):
			r.pos++
		default:
			return
		}
	}
}

func (r *reader) next() (sexpr, error) {
	start := r.pos
	switch c := r.text[r.pos]; c {
	case '(':
		r.pos++
		list := sexpr{open: start, isList: true}
		for {
			r.skip()
			if r.pos >= len(r.text) {
				return sexpr{}, errorf(start, "unclosed (")
			}
			if r.text[r.pos] == ')' {
				list.close = r.pos
				r.pos++
				return list, nil
			}
			s, err := r.next()
			if err != nil {
				return sexpr{}, err
			}
			list.list = append(list.list, s)
		}
	case ')':
		return sexpr{}, errorf(start, "unexpected )")
	case '"', '\'':
		return r.quoted(c)
	default:
		for r.pos < len(r.text) {
			c := r.text[r.pos]
			if c == '(' || c == ')' || c == '"' || c == ';' || unicode.IsSpace(rune(c)) {
				break
			}
			r.pos++
		}
		return sexpr{open: start, close: r.pos - 1, atom: r.text[start:r.pos]}, nil
	}
}

func (r *reader) quoted(q byte) (sexpr, error) {
	start := r.pos
	r.pos++
	for r.pos < len(r.text) && r.text[r.pos] != q {
		if r.text[r.pos] == '\\' {
			r.pos++
		}
		r.pos++
	}
	if r.pos >= len(r.text) {
		return sexpr{}, errorf(start, "unterminated %c", q)
	}
	r.pos++

	lit := r.text[start:r.pos]
	if q == '\'' {
		// strconv only unquotes single characters in Go syntax, which is
		// close enough to C's.
		v, _, _, err := strconv.UnquoteChar(lit[1:len(lit)-1], q)
		if err != nil {
			return sexpr{}, errorf(start, "bad character literal %s", lit)
		}
		return sexpr{open: start, close: r.pos - 1, atom: string(v), quoted: q}, nil
	}
	v, err := strconv.Unquote(lit)
	if err != nil {
		return sexpr{}, errorf(start, "bad string literal %s", lit)
	}
	return sexpr{open: start, close: r.pos - 1, atom: v, quoted: q}, nil
}

// String formats an s-expression back into text, for error messages.
func (s sexpr) String() string {
	switch {
	case s.quoted == '"':
		return strconv.Quote(s.atom)
	case s.quoted == '\'':
		return strconv.QuoteRune([]rune(s.atom)[0])
	case !s.isList:
		return s.atom
	}
	parts := make([]string, len(s.list))
	for i, e := range s.list {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}
