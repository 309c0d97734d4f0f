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

// Package token holds the small, dependency-free vocabulary shared by the
// lexer, parser, and AST: source positions and lexical token kinds. It sits
// at the bottom of the import graph on purpose — everything else in this
// module depends on it, it depends on nothing in this module.
package token

import "fmt"

// Position identifies a single character in source text by line and column,
// both zero-based at the start of a file. It is lexical-only metadata: it is
// attached to tokens and errors for diagnostics, never compared for
// equality by any operation in this module.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Column+1)
}

// Kind enumerates the lexical categories produced by the lexer.
type Kind int

const (
	// EOF is returned in place of a Token when the reader is exhausted at a
	// token boundary.
	EOF Kind = iota
	OParen
	CParen

	NumeralLit
	DecimalLit
	StringLit
	BinaryLit
	HexadecimalLit
	SymbolLit
	Keyword

	// Reserved words. Recognized only after a symbol has been read in full,
	// by consulting the reserved-word table (see ReservedWords in lexicon.go).
	RWAssert
	RWCheckSat
	RWDeclareSort
	RWDeclareFun
	RWDefineSort
	RWDefineFun
	RWExit
	RWGetAssertions
	RWGetAssignment
	RWGetInfo
	RWGetOption
	RWGetProof
	RWGetUnsatCore
	RWGetValue
	RWPop
	RWPush
	RWSetLogic
	RWSetInfo
	RWSetOption
	RWDeclareDatatypes
	RWPar
	RWNumeral
	RWDecimal
	RWString
	RWUnderscore
	RWBang
	RWAs
	RWLet
	RWForall
	RWExists
	RWGetModel
)

// reservedWordNames mirrors the ReservedWords table in lexicon.go, keyed by
// Kind; Kind.String, Kind.Name and Kind.IsReservedWord use it so error
// messages and tests can print a human name.
var reservedWordNames = map[Kind]string{
	RWAssert:           "assert",
	RWCheckSat:         "check-sat",
	RWDeclareSort:      "declare-sort",
	RWDeclareFun:       "declare-fun",
	RWDefineSort:       "define-sort",
	RWDefineFun:        "define-fun",
	RWExit:             "exit",
	RWGetAssertions:    "get-assertions",
	RWGetAssignment:    "get-assignment",
	RWGetInfo:          "get-info",
	RWGetOption:        "get-option",
	RWGetProof:         "get-proof",
	RWGetUnsatCore:     "get-unsat-core",
	RWGetValue:         "get-value",
	RWPop:              "pop",
	RWPush:             "push",
	RWSetLogic:         "set-logic",
	RWSetInfo:          "set-info",
	RWSetOption:        "set-option",
	RWDeclareDatatypes: "declare-datatypes",
	RWPar:              "par",
	RWNumeral:          "NUMERAL",
	RWDecimal:          "DECIMAL",
	RWString:           "STRING",
	RWUnderscore:       "_",
	RWBang:             "!",
	RWAs:               "as",
	RWLet:              "let",
	RWForall:           "forall",
	RWExists:           "exists",
	RWGetModel:         "get-model",
}

func (k Kind) String() string {
	switch k {
	case EOF:
		return "<EOF>"
	case OParen:
		return "'('"
	case CParen:
		return "')'"
	case NumeralLit:
		return "numeral"
	case DecimalLit:
		return "decimal"
	case StringLit:
		return "string literal"
	case BinaryLit:
		return "binary literal"
	case HexadecimalLit:
		return "hexadecimal literal"
	case SymbolLit:
		return "symbol"
	case Keyword:
		return "keyword"
	}
	if name, ok := reservedWordNames[k]; ok {
		return fmt.Sprintf("%q", name)
	}
	return "<unknown token>"
}

// Name returns the bare reserved-word text for k (e.g. "let", not the
// quoted `"let"` that String produces for error messages). It panics if k
// is not a reserved word; callers must check IsReservedWord first.
func (k Kind) Name() string {
	name, ok := reservedWordNames[k]
	if !ok {
		panic("token: Name called on non-reserved-word kind")
	}
	return name
}

// IsReservedWord reports whether k is one of the fixed SMT-LIB reserved
// words rather than a structural or literal token kind.
func (k Kind) IsReservedWord() bool {
	_, ok := reservedWordNames[k]
	return ok
}

// Token is a single lexeme together with the position of its first
// character and, for literal/name kinds, its decoded text. Position never
// participates in equality comparisons performed anywhere else in this
// module; it exists purely for diagnostics.
type Token struct {
	Kind Kind
	Pos  Position
	// Text is the decoded payload for SymbolLit, Keyword, NumeralLit (decimal
	// digits), DecimalLit (pre-decimal-point digits), StringLit (the decoded
	// string), BinaryLit ("0"/"1" characters), and HexadecimalLit (hex
	// digits, upper-cased). It is empty for structural and reserved-word
	// tokens.
	Text string
	// Frac holds the fractional digit sequence for DecimalLit tokens only.
	Frac string
}

func (t Token) String() string {
	if t.Text != "" {
		return fmt.Sprintf("%s %q", t.Kind, t.Text)
	}
	return t.Kind.String()
}
