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

// Package smtlib_test exercises the central round-trip property that binds
// the lexer, parser, AST, and both printers into one verifiable whole
// (spec §8): for every AST value v and for each printer P, parse(P(v)) ==
// v and P(parse(P(v))) == P(v).
package smtlib_test

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kralicky/smtlib/ast"
	"github.com/kralicky/smtlib/parser"
	"github.com/kralicky/smtlib/printer"
)

func sym(name string) ast.Symbol { return ast.NewSymbol(name) }

func qidTerm(name string) ast.Term {
	return ast.NewQualIdentTerm(ast.NewQualifiedIdentifier(ast.NewSimpleIdentifier(sym(name))))
}

func leafSort(name string) ast.Sort {
	return ast.NewLeafSort(ast.NewSimpleIdentifier(sym(name)))
}

// cmpOpts lets go-cmp compare AST values whose types hold unexported
// fields (Numeral, Hexadecimal, Binary, QualifiedIdentifier, Sort) via each
// type's own Equal method rather than reflecting into those fields.
var cmpOpts = cmp.Options{
	cmp.Comparer(func(a, b ast.Numeral) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b ast.Hexadecimal) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b ast.Binary) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b ast.QualifiedIdentifier) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b ast.Sort) bool { return a.Equal(b) }),
}

func roundTripCommand(t *testing.T, cmd ast.Command) {
	t.Helper()

	printers := []struct {
		name   string
		sprint func(any) string
	}{
		{"recursive", printer.Sprint},
		{"stack-safe", printer.SprintStackSafe},
	}
	for _, p := range printers {
		text := p.sprint(cmd)
		parsed, err := parser.ParseCommandFromString(text)
		require.NoError(t, err, "%s: parsing printer output: %q", p.name, text)
		if diff := cmp.Diff(cmd, parsed, cmpOpts); diff != "" {
			t.Errorf("%s: parse(print(v)) != v (-want +got):\n%s", p.name, diff)
		}

		text2 := p.sprint(parsed)
		assert.Equal(t, text, text2, "%s: print(parse(print(v))) != print(v)", p.name)
	}
}

func TestRoundTripCommands(t *testing.T) {
	fun := ast.NewQualifiedIdentifier(ast.NewSimpleIdentifier(sym("f")))
	letTerm := ast.NewLet(qidTerm("x"), ast.NewVarBinding(sym("x"), qidTerm("true")))
	forallTerm := ast.NewForAll(qidTerm("x"), ast.NewSortedVar(sym("x"), leafSort("Int")))
	annotated := ast.NewAnnotatedTerm(qidTerm("x"), ast.NewAttribute(ast.NewKeyword("named"), ast.SExprSymbol{Symbol: sym("x")}))

	a1 := ast.ConstructorDecl{Name: sym("A1"), Fields: []ast.SelectorDecl{
		{Field: sym("a1a"), Sort: leafSort("A")},
		{Field: sym("a1b"), Sort: leafSort("A")},
	}}
	a2 := ast.ConstructorDecl{Name: sym("A2"), Fields: []ast.SelectorDecl{
		{Field: sym("a2a"), Sort: leafSort("A")},
		{Field: sym("a2b"), Sort: leafSort("A")},
	}}

	cmds := []ast.Command{
		ast.SetLogic{Logic: sym("QF_UF")},
		ast.SetOption{Option: ast.PrintSuccess{Value: true}},
		ast.SetOption{Option: ast.RandomSeed{Value: ast.NumeralFromInt64(42)}},
		ast.SetOption{Option: ast.RegularOutputChannel{Value: "stdout"}},
		ast.SetInfo{Attribute: ast.NewAttribute(ast.NewKeyword("source"), ast.SExprLiteral{Literal: ast.NewStringLiteral("hand-written")})},
		ast.DeclareSort{Name: sym("A"), Arity: ast.NumeralFromInt64(0)},
		ast.DefineSort{Name: sym("IntPair"), Params: nil, Sort: leafSort("Int")},
		ast.DeclareFun{Name: sym("f"), Params: []ast.Sort{leafSort("A"), leafSort("B")}, Sort: leafSort("C")},
		ast.DefineFun{
			Name:   sym("id"),
			Params: []ast.SortedVar{ast.NewSortedVar(sym("x"), leafSort("Int"))},
			Sort:   leafSort("Int"),
			Body:   qidTerm("x"),
		},
		ast.Push{N: ast.NumeralFromInt64(1)},
		ast.Pop{N: ast.NumeralFromInt64(1)},
		ast.Assert{Term: qidTerm("true")},
		ast.Assert{Term: ast.NewFunctionApplication(fun, qidTerm("a"), qidTerm("b"))},
		ast.Assert{Term: letTerm},
		ast.Assert{Term: forallTerm},
		ast.Assert{Term: annotated},
		ast.Assert{Term: ast.NewConstantTerm(ast.NewHexadecimal("deadBEEF"))},
		ast.Assert{Term: ast.NewConstantTerm(ast.BinaryFromBitString("1010"))},
		ast.Assert{Term: ast.NewConstantTerm(ast.NewDecimal("3", "14159"))},
		ast.Assert{Term: ast.NewConstantTerm(ast.NewNumeral(big.NewInt(123456789)))},
		ast.Assert{Term: ast.NewConstantTerm(ast.NewStringLiteral(`contains "quotes" and \backslash`))},
		ast.CheckSat{},
		ast.GetAssertions{},
		ast.GetProof{},
		ast.GetUnsatCore{},
		ast.NewGetValue(qidTerm("a"), qidTerm("b")),
		ast.GetAssignment{},
		ast.GetOption{Keyword: ast.NewKeyword("produce-models")},
		ast.GetInfo{Flag: ast.NameFlag{}},
		ast.GetInfo{Flag: ast.KeywordFlag{Keyword: ast.NewKeyword("custom")}},
		ast.Exit{},
		ast.GetModel{},
		ast.NewDeclareDatatypes(ast.NewDatatypeDecl(sym("A"), a1, a2)),
		ast.NonStandardCommand{SExpr: ast.SExprList{Items: []ast.SExpr{
			ast.SExprSymbol{Symbol: sym("custom-command")},
			ast.SExprLiteral{Literal: ast.NumeralFromInt64(5)},
		}}},
	}

	for _, cmd := range cmds {
		cmd := cmd
		t.Run(printer.Sprint(cmd), func(t *testing.T) {
			roundTripCommand(t, cmd)
		})
	}
}

func TestRoundTripScript(t *testing.T) {
	script := ast.NewScript(
		ast.SetLogic{Logic: sym("QF_LIA")},
		ast.DeclareFun{Name: sym("x"), Sort: leafSort("Int")},
		ast.Assert{Term: qidTerm("x")},
		ast.CheckSat{},
		ast.Exit{},
	)
	text := printer.Sprint(script)
	parsed, err := parser.ParseScriptFromString(text)
	require.NoError(t, err)
	if diff := cmp.Diff(script, parsed, cmpOpts); diff != "" {
		t.Errorf("parse(print(script)) != script (-want +got):\n%s", diff)
	}
	assert.Equal(t, text, printer.Sprint(parsed))
}

func TestLexerTotalOnPrinterOutput(t *testing.T) {
	// "For any text produced by the printer, the lexer consumes it
	// end-to-end without error" (spec §8).
	cmd := ast.DeclareFun{Name: sym("weird!name?"), Sort: leafSort("Bool")}
	text := printer.Sprint(cmd)
	_, err := parser.ParseCommandFromString(text)
	require.NoError(t, err)
}

func TestSymbolQuotingRoundTrips(t *testing.T) {
	for _, name := range []string{"1abc", "has space", "pipe|inside", "back\\slash", "let"} {
		s := sym(name)
		text := s.String()
		term := ast.NewQualIdentTerm(ast.NewQualifiedIdentifier(ast.NewSimpleIdentifier(s)))
		printed := printer.Sprint(term)
		parsed, err := parser.ParseTermFromString(printed)
		require.NoError(t, err, "name %q", name)
		qit, ok := parsed.(ast.QualIdentTerm)
		require.True(t, ok)
		simple, ok := qit.Identifier.Identifier.(ast.SimpleIdentifier)
		require.True(t, ok)
		assert.Equal(t, name, simple.Symbol.Name, "round-tripped symbol text %q", text)
	}
}
