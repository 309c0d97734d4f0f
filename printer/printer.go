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

// Package printer serializes AST values back into SMT-LIB v2 text. It
// provides two independent implementations of the same contract — Fprint,
// a direct recursive walk, and FprintStackSafe, which bounds native stack
// usage to a small constant regardless of AST depth — and requires both to
// produce byte-identical output for every input.
package printer

import (
	"io"
	"strings"

	"github.com/kralicky/smtlib/ast"
)

// Fprint writes node's canonical textual form to w using direct structural
// recursion. It accepts any AST node: Term, Sort, Command, Script,
// Response, SExpr, and their constituent types.
func Fprint(w io.Writer, node any) error {
	return fprintRecursive(w, node)
}

// Sprint renders node to a string via Fprint.
func Sprint(node any) string {
	var b strings.Builder
	// A strings.Builder's Write never returns an error.
	_ = Fprint(&b, node)
	return b.String()
}

// FprintStackSafe writes node's canonical textual form to w using an
// explicit work stack instead of native recursion, so that pathologically
// deep trees (e.g. a long chain of nested Let terms) cannot exhaust the
// call stack. Its output is byte-identical to Fprint's for every input.
func FprintStackSafe(w io.Writer, node any) error {
	return fprintStackSafe(w, node)
}

// SprintStackSafe renders node to a string via FprintStackSafe.
func SprintStackSafe(node any) string {
	var b strings.Builder
	_ = FprintStackSafe(&b, node)
	return b.String()
}

// leafString renders AST node kinds whose own String() method is already
// the canonical form and whose nesting depth is never the target of the
// depth-robustness requirement (literals, symbols, keywords, identifiers,
// sorts, qualified identifiers). ok is false for any node kind the printer
// must walk structurally (terms, commands, scripts, responses, S-expressions,
// and the option/info-flag variants that can carry one).
func leafString(node any) (string, bool) {
	switch n := node.(type) {
	case ast.Numeral:
		return n.String(), true
	case ast.Decimal:
		return n.String(), true
	case ast.Hexadecimal:
		return n.String(), true
	case ast.Binary:
		return n.String(), true
	case ast.StringLiteral:
		return n.String(), true
	case ast.Symbol:
		return n.String(), true
	case ast.Keyword:
		return n.String(), true
	case ast.SimpleIdentifier:
		return n.String(), true
	case ast.IndexedIdentifier:
		return n.String(), true
	case ast.Sort:
		return n.String(), true
	case ast.QualifiedIdentifier:
		return n.String(), true
	case ast.VarBinding:
		// Depth lives entirely in n.Term, handled by the caller as a
		// sub-node; a bare VarBinding is never printed on its own.
		return "", false
	default:
		return "", false
	}
}

func quoteString(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// infoFlagString renders the fixed-name InfoFlag variants; KeywordFlag is
// handled by the caller since it carries a Keyword leaf.
func infoFlagString(f ast.InfoFlag) (string, bool) {
	switch f.(type) {
	case ast.ErrorBehaviorFlag:
		return ":error-behavior", true
	case ast.NameFlag:
		return ":name", true
	case ast.AuthorsFlag:
		return ":authors", true
	case ast.VersionFlag:
		return ":version", true
	case ast.StatusFlag:
		return ":status", true
	case ast.ReasonUnknownFlag:
		return ":reason-unknown", true
	case ast.AllStatisticsFlag:
		return ":all-statistics", true
	default:
		return "", false
	}
}

func boolString(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
