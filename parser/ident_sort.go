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
	"github.com/kralicky/smtlib/ast"
	"github.com/kralicky/smtlib/token"
)

// parseSymbol consumes a SymbolLit token and returns an ast.Symbol. Unlike
// parseIdentifier, this never accepts an indexed "(_ ...)" form — it is
// used where the grammar specifically calls for a plain symbol (logic
// names, sort/function names, bound variable names).
func (p *Parser) parseSymbol() (ast.Symbol, error) {
	if p.tok.Kind == token.SymbolLit && p.tok.Text == "" {
		return ast.Symbol{}, p.errorf("non-empty symbol")
	}
	t, err := p.expect(token.SymbolLit, "symbol")
	if err != nil {
		return ast.Symbol{}, err
	}
	return ast.NewSymbol(t.Text), nil
}

func (p *Parser) parseKeyword() (ast.Keyword, error) {
	if p.tok.Kind == token.Keyword && p.tok.Text == "" {
		return ast.Keyword{}, p.errorf("non-empty keyword")
	}
	t, err := p.expect(token.Keyword, "keyword")
	if err != nil {
		return ast.Keyword{}, err
	}
	return ast.NewKeyword(t.Text), nil
}

func (p *Parser) parseNumeral() (ast.Numeral, error) {
	t, err := p.expect(token.NumeralLit, "numeral")
	if err != nil {
		return ast.Numeral{}, err
	}
	return ast.NumeralFromDigits(t.Text), nil
}

// parseIdentifier implements spec §4.2's "Identifier dispatch": a bare
// symbol yields a simple identifier; "(_ symbol n1 ... nk)" (k >= 1) yields
// an indexed identifier.
func (p *Parser) parseIdentifier() (ast.Identifier, error) {
	if p.tok.Kind == token.SymbolLit {
		sym, err := p.parseSymbol()
		if err != nil {
			return nil, err
		}
		return ast.NewSimpleIdentifier(sym), nil
	}
	if err := p.expectOParen(); err != nil {
		return nil, err
	}
	return p.parseIndexedIdentifierTail()
}

// parseIndexedIdentifierTail picks up right after the '(' of an indexed
// identifier has already been consumed, at the "_" token.
func (p *Parser) parseIndexedIdentifierTail() (ast.Identifier, error) {
	if _, err := p.expect(token.RWUnderscore, "'_'"); err != nil {
		return nil, err
	}
	sym, err := p.parseSymbol()
	if err != nil {
		return nil, err
	}
	head, err := p.parseNumeral()
	if err != nil {
		return nil, err
	}
	var tail []ast.Numeral
	for p.tok.Kind == token.NumeralLit {
		n, err := p.parseNumeral()
		if err != nil {
			return nil, err
		}
		tail = append(tail, n)
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.NewIndexedIdentifier(sym, head, tail...), nil
}

// parseSort implements spec §4.2's "Sort dispatch": an identifier alone
// yields a leaf sort; "(id sub1 ... subn)" (n >= 1) yields a parameterized
// sort.
func (p *Parser) parseSort() (ast.Sort, error) {
	if p.tok.Kind != token.OParen {
		id, err := p.parseIdentifier()
		if err != nil {
			return ast.Sort{}, err
		}
		return ast.NewLeafSort(id), nil
	}
	if err := p.expectOParen(); err != nil {
		return ast.Sort{}, err
	}
	id, err := p.parseIdentifier()
	if err != nil {
		return ast.Sort{}, err
	}
	head, err := p.parseSort()
	if err != nil {
		return ast.Sort{}, err
	}
	var tail []ast.Sort
	for p.tok.Kind != token.CParen {
		s, err := p.parseSort()
		if err != nil {
			return ast.Sort{}, err
		}
		tail = append(tail, s)
	}
	if err := p.expectCParen(); err != nil {
		return ast.Sort{}, err
	}
	return ast.NewParameterizedSort(id, head, tail...), nil
}

// parseQualifiedIdentifier implements a plain identifier (simple or
// indexed) or, when sort-annotated, "(as id sort)".
func (p *Parser) parseQualifiedIdentifier() (ast.QualifiedIdentifier, error) {
	if p.tok.Kind != token.OParen {
		id, err := p.parseIdentifier()
		if err != nil {
			return ast.QualifiedIdentifier{}, err
		}
		return ast.NewQualifiedIdentifier(id), nil
	}
	if err := p.expectOParen(); err != nil {
		return ast.QualifiedIdentifier{}, err
	}
	if p.tok.Kind == token.RWAs {
		return p.parseAnnotatedQualifiedIdentifierTail()
	}
	id, err := p.parseIndexedIdentifierTail()
	if err != nil {
		return ast.QualifiedIdentifier{}, err
	}
	return ast.NewQualifiedIdentifier(id), nil
}

// parseAnnotatedQualifiedIdentifierTail picks up right after the '(' of an
// "(as id sort)" form has already been consumed, at the "as" token.
func (p *Parser) parseAnnotatedQualifiedIdentifierTail() (ast.QualifiedIdentifier, error) {
	if _, err := p.expect(token.RWAs, `"as"`); err != nil {
		return ast.QualifiedIdentifier{}, err
	}
	id, err := p.parseIdentifier()
	if err != nil {
		return ast.QualifiedIdentifier{}, err
	}
	sort, err := p.parseSort()
	if err != nil {
		return ast.QualifiedIdentifier{}, err
	}
	if err := p.expectCParen(); err != nil {
		return ast.QualifiedIdentifier{}, err
	}
	return ast.NewAnnotatedQualifiedIdentifier(id, sort), nil
}
