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

package parser

import (
	"io"
	"strings"

	"github.com/kralicky/smtlib/lexer"
	"github.com/kralicky/smtlib/token"
)

// Parser holds one token of lookahead over a lexer.Lexer.
type Parser struct {
	lex *lexer.Lexer
	tok token.Token
}

// newParser constructs a Parser and primes its lookahead token.
func newParser(r io.Reader) (*Parser, error) {
	p := &Parser{lex: lexer.New(r)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) advance() error {
	t, err := p.lex.NextToken()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

func (p *Parser) errorf(want string) *Error {
	return &Error{Pos: p.tok.Pos, Got: p.tok, Want: want}
}

// expect consumes the current token if it has the given kind, or fails.
func (p *Parser) expect(kind token.Kind, want string) (token.Token, error) {
	if p.tok.Kind != kind {
		return token.Token{}, p.errorf(want)
	}
	t := p.tok
	if err := p.advance(); err != nil {
		return token.Token{}, err
	}
	return t, nil
}

func (p *Parser) expectOParen() error {
	_, err := p.expect(token.OParen, "'('")
	return err
}

func (p *Parser) expectCParen() error {
	_, err := p.expect(token.CParen, "')'")
	return err
}

// atEOF reports whether the lookahead token is the end-of-stream sentinel.
func (p *Parser) atEOF() bool {
	return p.tok.Kind == token.EOF
}

func stringReader(s string) io.Reader { return strings.NewReader(s) }
