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

package lexer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kralicky/smtlib/lexer"
	"github.com/kralicky/smtlib/token"
)

func allTokens(t *testing.T, src string) []token.Token {
	t.Helper()
	l := lexer.New(strings.NewReader(src))
	var toks []token.Token
	for {
		tok, err := l.NextToken()
		require.NoError(t, err)
		if tok.Kind == token.EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func TestLexerStructural(t *testing.T) {
	toks := allTokens(t, "(assert true)")
	require.Len(t, toks, 4)
	assert.Equal(t, token.OParen, toks[0].Kind)
	assert.Equal(t, token.RWAssert, toks[1].Kind)
	assert.Equal(t, token.SymbolLit, toks[2].Kind)
	assert.Equal(t, "true", toks[2].Text)
	assert.Equal(t, token.CParen, toks[3].Kind)
}

func TestLexerWhitespaceAndComments(t *testing.T) {
	toks := allTokens(t, "  ; a comment\n(foo) ; trailing\n")
	require.Len(t, toks, 3)
	assert.Equal(t, token.OParen, toks[0].Kind)
	assert.Equal(t, token.SymbolLit, toks[1].Kind)
	assert.Equal(t, token.CParen, toks[2].Kind)
}

func TestLexerNumeral(t *testing.T) {
	toks := allTokens(t, "0 42 007")
	require.Len(t, toks, 3)
	assert.Equal(t, "0", toks[0].Text)
	assert.Equal(t, "42", toks[1].Text)
	assert.Equal(t, "007", toks[2].Text)
	for _, tok := range toks {
		assert.Equal(t, token.NumeralLit, tok.Kind)
	}
}

func TestLexerDecimal(t *testing.T) {
	toks := allTokens(t, "1.0 3.14159")
	require.Len(t, toks, 2)
	assert.Equal(t, token.DecimalLit, toks[0].Kind)
	assert.Equal(t, "1", toks[0].Text)
	assert.Equal(t, "0", toks[0].Frac)
	assert.Equal(t, "3", toks[1].Text)
	assert.Equal(t, "14159", toks[1].Frac)
}

func TestLexerHexadecimal(t *testing.T) {
	toks := allTokens(t, "#xFF #xff #x00aB")
	require.Len(t, toks, 3)
	for _, tok := range toks {
		assert.Equal(t, token.HexadecimalLit, tok.Kind)
	}
	assert.Equal(t, "FF", toks[0].Text)
	assert.Equal(t, "FF", toks[1].Text, "lowercase input canonicalizes to uppercase")
	assert.Equal(t, "00AB", toks[2].Text)
}

func TestLexerBinary(t *testing.T) {
	toks := allTokens(t, "#b101 #b0")
	require.Len(t, toks, 2)
	assert.Equal(t, token.BinaryLit, toks[0].Kind)
	assert.Equal(t, "101", toks[0].Text)
	assert.Equal(t, "0", toks[1].Text)
}

func TestLexerString(t *testing.T) {
	toks := allTokens(t, `"hello" "with \"quotes\"" "back\\slash"`)
	require.Len(t, toks, 3)
	assert.Equal(t, "hello", toks[0].Text)
	assert.Equal(t, `with "quotes"`, toks[1].Text)
	assert.Equal(t, `back\slash`, toks[2].Text)
}

func TestLexerKeyword(t *testing.T) {
	toks := allTokens(t, ":print-success :42")
	require.Len(t, toks, 2)
	assert.Equal(t, token.Keyword, toks[0].Kind)
	assert.Equal(t, "print-success", toks[0].Text)
	assert.Equal(t, token.Keyword, toks[1].Kind)
	assert.Equal(t, "42", toks[1].Text, "keyword bodies may start with a digit")
}

func TestLexerQuotedSymbol(t *testing.T) {
	toks := allTokens(t, `|hello world| |a\|b|`)
	require.Len(t, toks, 2)
	assert.Equal(t, token.SymbolLit, toks[0].Kind)
	assert.Equal(t, "hello world", toks[0].Text)
	assert.Equal(t, "a|b", toks[1].Text)
}

func TestLexerReservedWords(t *testing.T) {
	toks := allTokens(t, "let forall exists push pop declare-datatypes par NUMERAL DECIMAL STRING _ ! as")
	want := []token.Kind{
		token.RWLet, token.RWForall, token.RWExists, token.RWPush, token.RWPop,
		token.RWDeclareDatatypes, token.RWPar, token.RWNumeral, token.RWDecimal,
		token.RWString, token.RWUnderscore, token.RWBang, token.RWAs,
	}
	require.Len(t, toks, len(want))
	for i, k := range want {
		assert.Equal(t, k, toks[i].Kind)
	}
}

func TestLexerSimpleSymbolAlphabet(t *testing.T) {
	toks := allTokens(t, "foo-bar+baz? <=> a.b.c")
	require.Len(t, toks, 3)
	assert.Equal(t, "foo-bar+baz?", toks[0].Text)
	assert.Equal(t, "<=>", toks[1].Text)
	assert.Equal(t, "a.b.c", toks[2].Text)
}

func TestLexerPositions(t *testing.T) {
	l := lexer.New(strings.NewReader("(a\n  b)"))
	tok, err := l.NextToken()
	require.NoError(t, err)
	assert.Equal(t, token.Position{Line: 0, Column: 0}, tok.Pos)

	tok, err = l.NextToken()
	require.NoError(t, err)
	assert.Equal(t, token.Position{Line: 0, Column: 1}, tok.Pos)

	tok, err = l.NextToken()
	require.NoError(t, err)
	assert.Equal(t, token.Position{Line: 1, Column: 2}, tok.Pos)
}

func TestLexerUnexpectedEOF(t *testing.T) {
	for _, src := range []string{`"unterminated`, `|unterminated`, "#", "#b", "#x"} {
		l := lexer.New(strings.NewReader(src))
		_, err := l.NextToken()
		require.Error(t, err, "source %q should fail", src)
		lexErr, ok := err.(*lexer.Error)
		require.True(t, ok)
		assert.Equal(t, lexer.UnexpectedEOF, lexErr.Kind)
	}
}

func TestLexerUnexpectedChar(t *testing.T) {
	l := lexer.New(strings.NewReader("#q"))
	_, err := l.NextToken()
	require.Error(t, err)
	lexErr, ok := err.(*lexer.Error)
	require.True(t, ok)
	assert.Equal(t, lexer.UnexpectedChar, lexErr.Kind)
	assert.Equal(t, 'q', lexErr.Char)
}

func TestLexerSymbolEscape(t *testing.T) {
	// Open question resolved in favor of honoring backslash escapes inside
	// unquoted symbols (see DESIGN.md).
	toks := allTokens(t, `foo\ bar`)
	require.Len(t, toks, 1)
	assert.Equal(t, "foo bar", toks[0].Text)
}
