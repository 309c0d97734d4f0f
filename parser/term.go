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

// parseTerm implements spec §4.2's term dispatch:
//
//	constant                         -> ConstantTerm
//	identifier (outside '(')         -> QualIdentTerm
//	"(" "as" ...                     -> QualIdentTerm (sort-annotated)
//	"(" "let" ...                    -> Let
//	"(" "forall" ...                 -> ForAll
//	"(" "exists" ...                 -> Exists
//	"(" "!" ...                      -> AnnotatedTerm
//	"(" head arg1 ... argn ")"       -> FunctionApplication, n >= 1
//
// The one-token lookahead means the '(' must be consumed before the
// operator token can be inspected; every branch below therefore consumes
// the opening paren itself rather than delegating that to a sub-parser,
// and the sub-parsers below (parseLetTail, parseForallTail, ...) all
// start at the operator keyword and consume it themselves.
func (p *Parser) parseTerm() (ast.Term, error) {
	switch {
	case isLiteralToken(p.tok.Kind):
		lit, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		return ast.NewConstantTerm(lit), nil
	case p.tok.Kind == token.SymbolLit:
		qid, err := p.parseQualifiedIdentifier()
		if err != nil {
			return nil, err
		}
		return ast.NewQualIdentTerm(qid), nil
	case p.tok.Kind != token.OParen:
		return nil, p.errorf("term")
	}

	if err := p.expectOParen(); err != nil {
		return nil, err
	}
	switch p.tok.Kind {
	case token.RWUnderscore:
		id, err := p.parseIndexedIdentifierTail()
		if err != nil {
			return nil, err
		}
		return ast.NewQualIdentTerm(ast.NewQualifiedIdentifier(id)), nil
	case token.RWAs:
		qid, err := p.parseAnnotatedQualifiedIdentifierTail()
		if err != nil {
			return nil, err
		}
		return ast.NewQualIdentTerm(qid), nil
	case token.RWLet:
		return p.parseLetTail()
	case token.RWForall:
		return p.parseForallTail()
	case token.RWExists:
		return p.parseExistsTail()
	case token.RWBang:
		return p.parseAnnotatedTermTail()
	default:
		return p.parseFunctionApplicationTail()
	}
}

func (p *Parser) parseFunctionApplicationTail() (ast.Term, error) {
	fun, err := p.parseQualifiedIdentifier()
	if err != nil {
		return nil, err
	}
	head, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	var tail []ast.Term
	for p.tok.Kind != token.CParen {
		arg, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		tail = append(tail, arg)
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.NewFunctionApplication(fun, head, tail...), nil
}

func (p *Parser) parseVarBinding() (ast.VarBinding, error) {
	if err := p.expectOParen(); err != nil {
		return ast.VarBinding{}, err
	}
	name, err := p.parseSymbol()
	if err != nil {
		return ast.VarBinding{}, err
	}
	term, err := p.parseTerm()
	if err != nil {
		return ast.VarBinding{}, err
	}
	if err := p.expectCParen(); err != nil {
		return ast.VarBinding{}, err
	}
	return ast.NewVarBinding(name, term), nil
}

func (p *Parser) parseSortedVar() (ast.SortedVar, error) {
	if err := p.expectOParen(); err != nil {
		return ast.SortedVar{}, err
	}
	name, err := p.parseSymbol()
	if err != nil {
		return ast.SortedVar{}, err
	}
	sort, err := p.parseSort()
	if err != nil {
		return ast.SortedVar{}, err
	}
	if err := p.expectCParen(); err != nil {
		return ast.SortedVar{}, err
	}
	return ast.NewSortedVar(name, sort), nil
}

// parseLetTail picks up right after the '(' and consumes the "let" keyword.
func (p *Parser) parseLetTail() (ast.Term, error) {
	if _, err := p.expect(token.RWLet, `"let"`); err != nil {
		return nil, err
	}
	if err := p.expectOParen(); err != nil {
		return nil, err
	}
	head, err := p.parseVarBinding()
	if err != nil {
		return nil, err
	}
	var tail []ast.VarBinding
	for p.tok.Kind != token.CParen {
		b, err := p.parseVarBinding()
		if err != nil {
			return nil, err
		}
		tail = append(tail, b)
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.NewLet(body, head, tail...), nil
}

func (p *Parser) parseForallTail() (ast.Term, error) {
	if _, err := p.expect(token.RWForall, `"forall"`); err != nil {
		return nil, err
	}
	if err := p.expectOParen(); err != nil {
		return nil, err
	}
	head, err := p.parseSortedVar()
	if err != nil {
		return nil, err
	}
	var tail []ast.SortedVar
	for p.tok.Kind != token.CParen {
		v, err := p.parseSortedVar()
		if err != nil {
			return nil, err
		}
		tail = append(tail, v)
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.NewForAll(body, head, tail...), nil
}

func (p *Parser) parseExistsTail() (ast.Term, error) {
	if _, err := p.expect(token.RWExists, `"exists"`); err != nil {
		return nil, err
	}
	if err := p.expectOParen(); err != nil {
		return nil, err
	}
	head, err := p.parseSortedVar()
	if err != nil {
		return nil, err
	}
	var tail []ast.SortedVar
	for p.tok.Kind != token.CParen {
		v, err := p.parseSortedVar()
		if err != nil {
			return nil, err
		}
		tail = append(tail, v)
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.NewExists(body, head, tail...), nil
}

func (p *Parser) parseAnnotatedTermTail() (ast.Term, error) {
	if _, err := p.expect(token.RWBang, `"!"`); err != nil {
		return nil, err
	}
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	head, err := p.parseAttribute()
	if err != nil {
		return nil, err
	}
	var tail []ast.Attribute
	for p.tok.Kind != token.CParen {
		a, err := p.parseAttribute()
		if err != nil {
			return nil, err
		}
		tail = append(tail, a)
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.NewAnnotatedTerm(term, head, tail...), nil
}
