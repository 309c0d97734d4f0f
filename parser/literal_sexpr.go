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

// isLiteralToken reports whether k is a token kind that parseLiteral accepts.
func isLiteralToken(k token.Kind) bool {
	switch k {
	case token.NumeralLit, token.DecimalLit, token.StringLit, token.BinaryLit, token.HexadecimalLit:
		return true
	default:
		return false
	}
}

func (p *Parser) parseLiteral() (ast.Literal, error) {
	t := p.tok
	switch t.Kind {
	case token.NumeralLit:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NumeralFromDigits(t.Text), nil
	case token.DecimalLit:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewDecimal(t.Text, t.Frac), nil
	case token.StringLit:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewStringLiteral(t.Text), nil
	case token.BinaryLit:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.BinaryFromBitString(t.Text), nil
	case token.HexadecimalLit:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewHexadecimal(t.Text), nil
	default:
		return nil, p.errorf("literal")
	}
}

// parseSExpr implements the closed S-expression grammar: a constant
// literal, a symbol, a keyword, or a parenthesized list of S-expressions.
func (p *Parser) parseSExpr() (ast.SExpr, error) {
	switch {
	case isLiteralToken(p.tok.Kind):
		lit, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		return ast.SExprLiteral{Literal: lit}, nil
	case p.tok.Kind == token.Keyword:
		kw, err := p.parseKeyword()
		if err != nil {
			return nil, err
		}
		return ast.SExprKeyword{Keyword: kw}, nil
	case p.tok.Kind == token.SymbolLit:
		sym, err := p.parseSymbol()
		if err != nil {
			return nil, err
		}
		return ast.SExprSymbol{Symbol: sym}, nil
	case p.tok.Kind == token.OParen:
		if err := p.expectOParen(); err != nil {
			return nil, err
		}
		var items []ast.SExpr
		for p.tok.Kind != token.CParen {
			item, err := p.parseSExpr()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		return ast.SExprList{Items: items}, nil
	case p.tok.Kind.IsReservedWord():
		// A reserved word standing alone is valid as a bare S-expression
		// symbol in attribute/option payloads (e.g. ":status unknown" would
		// not hit this, but something like a bare "let" keyword token used
		// as a plain name inside a non-standard payload can).
		sym := ast.NewSymbol(p.tok.Kind.Name())
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.SExprSymbol{Symbol: sym}, nil
	default:
		return nil, p.errorf("s-expression")
	}
}

// parseAttribute parses "keyword [value]", where value, if present, is a
// single S-expression.
func (p *Parser) parseAttribute() (ast.Attribute, error) {
	kw, err := p.parseKeyword()
	if err != nil {
		return ast.Attribute{}, err
	}
	if !p.startsSExpr() {
		return ast.NewAttribute(kw, nil), nil
	}
	val, err := p.parseSExpr()
	if err != nil {
		return ast.Attribute{}, err
	}
	return ast.NewAttribute(kw, val), nil
}

// startsSExpr reports whether the lookahead token could begin an
// attribute's S-expression value. A keyword never does: it always
// introduces the next attribute, so its presence ends the current one.
func (p *Parser) startsSExpr() bool {
	if p.tok.Kind == token.Keyword {
		return false
	}
	return isLiteralToken(p.tok.Kind) || p.tok.Kind == token.OParen ||
		p.tok.Kind == token.SymbolLit || p.tok.Kind.IsReservedWord()
}
