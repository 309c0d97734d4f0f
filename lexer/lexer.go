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

package lexer

import (
	"io"
	"strings"

	"github.com/kralicky/smtlib/token"
)

// Lexer tokenizes SMT-LIB v2 source text. It is single-use and
// single-threaded: construct one per input, call NextToken until it
// returns a token.EOF kind or an error, then discard it.
type Lexer struct {
	r *charReader
}

// New constructs a Lexer reading from r.
func New(r io.Reader) *Lexer {
	return &Lexer{r: newCharReader(r)}
}

// NextToken returns the next token, or a token with Kind == token.EOF once
// the input is exhausted at a token boundary. It returns a non-nil *Error
// if the input is lexically malformed; the Lexer must not be used again
// after an error.
func (l *Lexer) NextToken() (token.Token, error) {
	for {
		c, pos, err := l.r.next()
		if err == io.EOF {
			return token.Token{Kind: token.EOF, Pos: pos}, nil
		}

		switch {
		case c == ' ' || c == '\n' || c == '\r' || c == '\t':
			continue
		case c == ';':
			l.skipComment()
			continue
		case c == '(':
			return token.Token{Kind: token.OParen, Pos: pos}, nil
		case c == ')':
			return token.Token{Kind: token.CParen, Pos: pos}, nil
		case c == ':':
			body, err := l.readSymbolBody()
			if err != nil {
				return token.Token{}, annotate(err, pos)
			}
			return token.Token{Kind: token.Keyword, Pos: pos, Text: body}, nil
		case c == '"':
			s, err := l.readString()
			if err != nil {
				return token.Token{}, annotate(err, pos)
			}
			return token.Token{Kind: token.StringLit, Pos: pos, Text: s}, nil
		case c == '#':
			tok, err := l.readRadixLiteral(pos)
			if err != nil {
				return token.Token{}, err
			}
			return tok, nil
		case c >= '0' && c <= '9':
			tok, err := l.readNumber(c, pos)
			if err != nil {
				return token.Token{}, err
			}
			return tok, nil
		case c == '|':
			s, err := l.readQuotedSymbol()
			if err != nil {
				return token.Token{}, annotate(err, pos)
			}
			return token.Token{Kind: token.SymbolLit, Pos: pos, Text: s}, nil
		case token.IsSimpleSymbolChar(c):
			l.r.unread(c, pos)
			body, err := l.readSymbolBody()
			if err != nil {
				return token.Token{}, annotate(err, pos)
			}
			if kind, ok := lookupReserved(body); ok {
				return token.Token{Kind: kind, Pos: pos}, nil
			}
			return token.Token{Kind: token.SymbolLit, Pos: pos, Text: body}, nil
		default:
			return token.Token{}, &Error{Kind: UnexpectedChar, Pos: pos, Char: c, Context: "input"}
		}
	}
}

func annotate(err error, pos token.Position) error {
	if e, ok := err.(*Error); ok {
		e.Pos = pos
	}
	return err
}

func (l *Lexer) skipComment() {
	for {
		c, _, err := l.r.next()
		if err == io.EOF || c == '\n' {
			return
		}
	}
}

// readSymbolBody reads the maximal run of simple-symbol characters,
// treating a backslash as escaping (and keeping verbatim) the character
// that follows it — the behavior spec.md §9 documents as an open question
// for unquoted symbols/keywords, resolved here in favor of honoring the
// escape (see DESIGN.md). Used for both keyword bodies (which, unlike
// plain symbols, may begin with a digit — the caller never applies the
// digit restriction to them) and plain symbol bodies.
func (l *Lexer) readSymbolBody() (string, error) {
	var sb strings.Builder
	for {
		c, pos, err := l.r.next()
		if err == io.EOF {
			break
		}
		if c == '\\' {
			nc, _, err := l.r.next()
			if err == io.EOF {
				return "", &Error{Kind: UnexpectedEOF, Context: "symbol escape"}
			}
			sb.WriteRune(nc)
			continue
		}
		if !token.IsSimpleSymbolChar(c) {
			l.r.unread(c, pos)
			break
		}
		sb.WriteRune(c)
	}
	return sb.String(), nil
}

func (l *Lexer) readString() (string, error) {
	var sb strings.Builder
	for {
		c, _, err := l.r.next()
		if err == io.EOF {
			return "", &Error{Kind: UnexpectedEOF, Context: "string literal"}
		}
		if c == '"' {
			// Could be the closing quote, or an escaped quote ("" rule is
			// not used here — spec uses backslash escapes: \" and \\).
			return sb.String(), nil
		}
		if c == '\\' {
			nc, pos, err := l.r.next()
			if err == io.EOF {
				return "", &Error{Kind: UnexpectedEOF, Context: "string literal"}
			}
			switch nc {
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			default:
				// Not a recognized escape: the backslash is literal, and
				// the following character starts over from scratch.
				sb.WriteByte('\\')
				l.r.unread(nc, pos)
			}
			continue
		}
		sb.WriteRune(c)
	}
}

func (l *Lexer) readQuotedSymbol() (string, error) {
	var sb strings.Builder
	for {
		c, _, err := l.r.next()
		if err == io.EOF {
			return "", &Error{Kind: UnexpectedEOF, Context: "quoted symbol"}
		}
		if c == '|' {
			return sb.String(), nil
		}
		if c == '\\' {
			nc, _, err := l.r.next()
			if err == io.EOF {
				return "", &Error{Kind: UnexpectedEOF, Context: "quoted symbol"}
			}
			sb.WriteRune(nc)
			continue
		}
		sb.WriteRune(c)
	}
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func (l *Lexer) readRadixLiteral(startPos token.Position) (token.Token, error) {
	sel, pos, err := l.r.next()
	if err == io.EOF {
		return token.Token{}, &Error{Kind: UnexpectedEOF, Pos: startPos, Context: "radix literal"}
	}
	switch sel {
	case 'b':
		var sb strings.Builder
		for {
			c, cpos, err := l.r.next()
			if err == io.EOF {
				break
			}
			if c != '0' && c != '1' {
				l.r.unread(c, cpos)
				break
			}
			sb.WriteRune(c)
		}
		if sb.Len() == 0 {
			return token.Token{}, &Error{Kind: UnexpectedEOF, Pos: startPos, Context: "binary literal"}
		}
		return token.Token{Kind: token.BinaryLit, Pos: startPos, Text: sb.String()}, nil
	case 'x':
		var sb strings.Builder
		for {
			c, cpos, err := l.r.next()
			if err == io.EOF {
				break
			}
			if !isHexDigit(c) {
				l.r.unread(c, cpos)
				break
			}
			sb.WriteRune(c)
		}
		if sb.Len() == 0 {
			return token.Token{}, &Error{Kind: UnexpectedEOF, Pos: startPos, Context: "hexadecimal literal"}
		}
		return token.Token{Kind: token.HexadecimalLit, Pos: startPos, Text: strings.ToUpper(sb.String())}, nil
	default:
		l.r.unread(sel, pos)
		return token.Token{}, &Error{Kind: UnexpectedChar, Pos: startPos, Char: sel, Context: "radix selector"}
	}
}

func (l *Lexer) readNumber(first rune, startPos token.Position) (token.Token, error) {
	var sb strings.Builder
	sb.WriteRune(first)
	for {
		c, pos, err := l.r.next()
		if err == io.EOF {
			break
		}
		if c < '0' || c > '9' {
			l.r.unread(c, pos)
			break
		}
		sb.WriteRune(c)
	}
	integer := sb.String()

	c, pos, err := l.r.next()
	if err == io.EOF {
		return token.Token{Kind: token.NumeralLit, Pos: startPos, Text: integer}, nil
	}
	if c != '.' {
		l.r.unread(c, pos)
		return token.Token{Kind: token.NumeralLit, Pos: startPos, Text: integer}, nil
	}

	var frac strings.Builder
	for {
		c, pos, err := l.r.next()
		if err == io.EOF {
			break
		}
		if c < '0' || c > '9' {
			l.r.unread(c, pos)
			break
		}
		frac.WriteRune(c)
	}
	if frac.Len() == 0 {
		return token.Token{}, &Error{Kind: UnexpectedEOF, Pos: startPos, Context: "decimal literal"}
	}
	return token.Token{Kind: token.DecimalLit, Pos: startPos, Text: integer, Frac: frac.String()}, nil
}
