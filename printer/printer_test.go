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

package printer_test

import (
	"testing"

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

func TestPrintAssert(t *testing.T) {
	cmd := ast.Assert{Term: qidTerm("true")}
	assert.Equal(t, "(assert true)\n", printer.Sprint(cmd))
}

func TestPrintDeclareFun(t *testing.T) {
	cmd := ast.DeclareFun{
		Name:   sym("f"),
		Params: []ast.Sort{leafSort("A"), leafSort("B")},
		Sort:   leafSort("C"),
	}
	assert.Equal(t, "(declare-fun f (A B) C)\n", printer.Sprint(cmd))
}

func TestPrintSetOption(t *testing.T) {
	cmd := ast.SetOption{Option: ast.PrintSuccess{Value: true}}
	assert.Equal(t, "(set-option :print-success true)\n", printer.Sprint(cmd))
}

func TestPrintDeclareDatatypes(t *testing.T) {
	a1 := ast.ConstructorDecl{Name: sym("A1"), Fields: []ast.SelectorDecl{
		{Field: sym("a1a"), Sort: leafSort("A")},
		{Field: sym("a1b"), Sort: leafSort("A")},
	}}
	a2 := ast.ConstructorDecl{Name: sym("A2"), Fields: []ast.SelectorDecl{
		{Field: sym("a2a"), Sort: leafSort("A")},
		{Field: sym("a2b"), Sort: leafSort("A")},
	}}
	cmd := ast.NewDeclareDatatypes(ast.NewDatatypeDecl(sym("A"), a1, a2))
	want := "(declare-datatypes () ((A (A1 (a1a A) (a1b A)) (A2 (a2a A) (a2b A)))))\n"
	assert.Equal(t, want, printer.Sprint(cmd))
}

func TestPrintZeroFieldConstructor(t *testing.T) {
	ctor := ast.ConstructorDecl{Name: sym("Nil")}
	dt := ast.NewDatatypeDecl(sym("List"), ctor)
	cmd := ast.NewDeclareDatatypes(dt)
	assert.Equal(t, "(declare-datatypes () ((List (Nil))))\n", printer.Sprint(cmd))
}

func TestPrintGetValue(t *testing.T) {
	cmd := ast.NewGetValue(qidTerm("a"), qidTerm("b"))
	assert.Equal(t, "(get-value (a b))\n", printer.Sprint(cmd))
}

func TestPrintResponses(t *testing.T) {
	assert.Equal(t, "success", printer.Sprint(ast.SuccessResponse{}))
	assert.Equal(t, "unsupported", printer.Sprint(ast.UnsupportedResponse{}))
	assert.Equal(t, `(error "boom")`, printer.Sprint(ast.ErrorResponse{Msg: "boom"}))
	assert.Equal(t, "sat", printer.Sprint(ast.CheckSatResponse{Result: ast.Sat}))
	assert.Equal(t, "unknown", printer.Sprint(ast.CheckSatResponse{Result: ast.Unknown}))
}

func TestPrintGetValueResponse(t *testing.T) {
	resp := ast.GetValueResponse{Pairs: []ast.ValuePair{
		{Term: qidTerm("a"), Value: ast.NewConstantTerm(ast.NumeralFromInt64(42))},
		{Term: qidTerm("b"), Value: ast.NewConstantTerm(ast.NumeralFromInt64(12))},
	}}
	assert.Equal(t, "((a 42) (b 12))", printer.Sprint(resp))
}

func TestPrintStringEscaping(t *testing.T) {
	lit := ast.NewStringLiteral(`she said "hi"`)
	assert.Equal(t, `"she said \"hi\""`, printer.Sprint(ast.NewConstantTerm(lit)))
}

func TestPrintSymbolQuoting(t *testing.T) {
	// Simple-symbol-alphabet names print bare.
	assert.Equal(t, "foo-bar!", sym("foo-bar!").String())
	// Anything else (starting with a digit, or containing a space) prints
	// quoted.
	assert.Equal(t, "|1abc|", sym("1abc").String())
	assert.Equal(t, "|hello world|", sym("hello world").String())
}

func TestPrintReservedWordSymbolAlwaysQuoted(t *testing.T) {
	// A Symbol whose name collides with a reserved word must quote, or
	// printing it bare would re-lex as the reserved word.
	assert.Equal(t, "|let|", sym("let").String())
}

func TestPrintCanonicalHexadecimal(t *testing.T) {
	h := ast.NewHexadecimal("deadBEEF")
	assert.Equal(t, "#xDEADBEEF", h.String())
}

func TestPrintNonStandardCommandVerbatim(t *testing.T) {
	cmd := ast.NonStandardCommand{SExpr: ast.SExprList{Items: []ast.SExpr{
		ast.SExprSymbol{Symbol: sym("custom-cmd")},
		ast.SExprSymbol{Symbol: sym("arg")},
	}}}
	assert.Equal(t, "(custom-cmd arg)\n", printer.Sprint(cmd))
}

func TestPrinterAgreement(t *testing.T) {
	cmds := []ast.Command{
		ast.Assert{Term: qidTerm("true")},
		ast.DeclareFun{Name: sym("f"), Params: []ast.Sort{leafSort("A")}, Sort: leafSort("B")},
		ast.SetOption{Option: ast.PrintSuccess{Value: false}},
		ast.Push{N: ast.NumeralFromInt64(1)},
		ast.CheckSat{},
		ast.NonStandardCommand{SExpr: ast.SExprList{Items: []ast.SExpr{
			ast.SExprSymbol{Symbol: sym("wrapped")},
			ast.SExprCommand{Command: ast.CheckSat{}},
		}}},
	}
	for _, c := range cmds {
		rec := printer.Sprint(c)
		ss := printer.SprintStackSafe(c)
		assert.Equal(t, rec, ss)
	}
}

// TestPrintSExprCommandSingleNewline guards against expandSExpr's
// ast.SExprCommand case double-appending the newline that expandCommand
// already supplies: a command embedded inside an s-expression must print
// with exactly one trailing newline, matching the recursive printer.
func TestPrintSExprCommandSingleNewline(t *testing.T) {
	sexpr := ast.SExprList{Items: []ast.SExpr{
		ast.SExprCommand{Command: ast.CheckSat{}},
	}}
	cmd := ast.NonStandardCommand{SExpr: sexpr}

	rec := printer.Sprint(cmd)
	ss := printer.SprintStackSafe(cmd)
	assert.Equal(t, "((check-sat)\n)\n", rec)
	assert.Equal(t, rec, ss)
}

// deepLetChain builds a right-nested chain of n-1 lets around x0: (let
// ((x{n-1} x{n-2})) ... (let ((x1 x0)) x0)).
func deepLetChain(n int) ast.Term {
	body := qidTerm("x0")
	for i := 1; i < n; i++ {
		name := ast.NewSymbol(symName(i))
		body = ast.NewLet(body, ast.NewVarBinding(name, qidTerm(symName(i-1))))
	}
	return body
}

func symName(i int) string {
	return "x" + itoa(i)
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var digits []byte
	for i > 0 {
		digits = append([]byte{byte('0' + i%10)}, digits...)
		i /= 10
	}
	return string(digits)
}

func TestStackSafePrinterHandlesDeepNesting(t *testing.T) {
	// The recursive printer is permitted to fail on pathologically deep
	// trees (spec's depth-robustness property); only the stack-safe
	// variant is required to survive this.
	term := deepLetChain(10000)
	out := printer.SprintStackSafe(term)
	require.NotEmpty(t, out)
}

func TestPrinterAgreementAtModerateDepth(t *testing.T) {
	term := deepLetChain(200)
	assert.Equal(t, printer.Sprint(term), printer.SprintStackSafe(term))
}

func TestStackSafePrinterRoundTrips(t *testing.T) {
	term := deepLetChain(10000)
	out := printer.SprintStackSafe(term)
	parsed, err := parser.ParseTermFromString(out)
	require.NoError(t, err)
	assert.Equal(t, term, parsed)
}
