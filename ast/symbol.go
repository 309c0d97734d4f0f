// Copyright 2020-2023 Buf Technologies, Inc.
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

package ast

import (
	"strings"

	"github.com/kralicky/smtlib/token"
)

// Symbol is a non-empty SMT-LIB name. Its lexical form is recovered on
// print, not stored: a symbol whose characters are all in the simple-symbol
// alphabet, that does not start with a digit, and that does not collide
// with a reserved word prints bare; everything else prints quoted between
// '|' delimiters.
type Symbol struct {
	Name string
}

// NewSymbol constructs a Symbol. It panics on an empty name, since the
// grammar never admits one.
func NewSymbol(name string) Symbol {
	if name == "" {
		panic("ast: empty symbol")
	}
	return Symbol{Name: name}
}

// Keyword is a name that prints as ":name".
type Keyword struct {
	Name string
}

func NewKeyword(name string) Keyword {
	if name == "" {
		panic("ast: empty keyword")
	}
	return Keyword{Name: name}
}

func (k Keyword) String() string { return ":" + k.Name }

// canPrintBare reports whether a Symbol with this name prints without '|'
// quoting. This is stricter than the lexical simple-symbol rule: a symbol
// whose name happens to match a reserved word (e.g. "let") must also be
// quoted, since printing it bare would re-lex as the reserved word rather
// than as a plain symbol and break the round-trip property.
func canPrintBare(name string) bool {
	return token.IsSimpleSymbol(name) && !token.IsReservedWord(name)
}

func (s Symbol) String() string {
	if canPrintBare(s.Name) {
		return s.Name
	}
	var sb strings.Builder
	sb.WriteByte('|')
	for _, r := range s.Name {
		if r == '|' || r == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	sb.WriteByte('|')
	return sb.String()
}
