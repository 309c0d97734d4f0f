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

package token

import "strings"

// simpleSymbolPunctuation is the fixed punctuation set admitted in a simple
// symbol, in addition to ASCII letters and digits.
const simpleSymbolPunctuation = "+-*/@$%^&_!?[]{}=<>~."

// IsSimpleSymbolChar reports whether r may appear anywhere in a simple
// symbol. Shared by the lexer (to read the maximal run of such characters)
// and by the ast package (to decide whether a Symbol must print quoted).
func IsSimpleSymbolChar(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	default:
		return strings.ContainsRune(simpleSymbolPunctuation, r)
	}
}

// IsSimpleSymbol reports whether name is made up entirely of simple-symbol
// characters and does not start with a digit.
func IsSimpleSymbol(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if !IsSimpleSymbolChar(r) {
			return false
		}
		if i == 0 && r >= '0' && r <= '9' {
			return false
		}
	}
	return true
}

// ReservedWords maps each SMT-LIB reserved word to its token kind. It is the
// single source of truth consulted both by the lexer (to classify a symbol
// once it has been read in full) and by the ast package (a Symbol whose name
// collides with a reserved word must always print quoted, or it would
// re-lex as that reserved word instead of as a plain symbol).
var ReservedWords = map[string]Kind{
	"assert":             RWAssert,
	"check-sat":          RWCheckSat,
	"declare-sort":       RWDeclareSort,
	"declare-fun":        RWDeclareFun,
	"define-sort":        RWDefineSort,
	"define-fun":         RWDefineFun,
	"exit":               RWExit,
	"get-assertions":     RWGetAssertions,
	"get-assignment":     RWGetAssignment,
	"get-info":           RWGetInfo,
	"get-option":         RWGetOption,
	"get-proof":          RWGetProof,
	"get-unsat-core":     RWGetUnsatCore,
	"get-value":          RWGetValue,
	"pop":                RWPop,
	"push":               RWPush,
	"set-logic":          RWSetLogic,
	"set-info":           RWSetInfo,
	"set-option":         RWSetOption,
	"declare-datatypes":  RWDeclareDatatypes,
	"par":                RWPar,
	"NUMERAL":            RWNumeral,
	"DECIMAL":            RWDecimal,
	"STRING":             RWString,
	"_":                  RWUnderscore,
	"!":                  RWBang,
	"as":                 RWAs,
	"let":                RWLet,
	"forall":             RWForall,
	"exists":             RWExists,
	"get-model":          RWGetModel,
}

// LookupReserved returns the reserved-word kind for name, if any.
func LookupReserved(name string) (Kind, bool) {
	k, ok := ReservedWords[name]
	return k, ok
}

// IsReservedWord reports whether name is one of the fixed SMT-LIB reserved
// words.
func IsReservedWord(name string) bool {
	_, ok := ReservedWords[name]
	return ok
}
