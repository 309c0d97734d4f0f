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

// Response grammars are disjoint per command: the same source text decodes
// differently depending on which command it is answering, so there is one
// entry point per response kind rather than a single parseResponse. Every
// kind accepts a bare "success" or "unsupported" in place of its specific
// payload. The "(error \"message\")" form is recognized only by the generic,
// check-sat, get-value, get-info and get-model entry points; get-assertions
// reads it as a two-term list, get-proof and get-option read it as an
// s-expression payload, and get-assignment and get-unsat-core report a
// parse error for it.

// tryGenResponse recognizes "success", "unsupported", or "(error
// \"message\")" and reports whether one matched.
func (p *Parser) tryGenResponse() (ast.Response, bool, error) {
	if p.tok.Kind == token.SymbolLit {
		switch p.tok.Text {
		case "success":
			if err := p.advance(); err != nil {
				return nil, false, err
			}
			return ast.SuccessResponse{}, true, nil
		case "unsupported":
			if err := p.advance(); err != nil {
				return nil, false, err
			}
			return ast.UnsupportedResponse{}, true, nil
		}
		return nil, false, nil
	}
	if p.tok.Kind != token.OParen {
		return nil, false, nil
	}
	// The '(' is consumed before the next token can be inspected; if that
	// token is not the "error" symbol, a parse error is returned.
	if err := p.expectOParen(); err != nil {
		return nil, false, err
	}
	if p.tok.Kind != token.SymbolLit || p.tok.Text != "error" {
		return nil, false, &Error{Pos: p.tok.Pos, Got: p.tok, Want: `response payload or "error"`}
	}
	if err := p.advance(); err != nil {
		return nil, false, err
	}
	msg, err := p.parseString()
	if err != nil {
		return nil, false, err
	}
	if err := p.expectCParen(); err != nil {
		return nil, false, err
	}
	return ast.ErrorResponse{Msg: msg}, true, nil
}

func (p *Parser) parseGenResponse() (ast.Response, error) {
	resp, ok, err := p.tryGenResponse()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, p.errorf("response")
	}
	return resp, nil
}

func (p *Parser) parseCheckSatResponse() (ast.Response, error) {
	if p.tok.Kind == token.SymbolLit {
		switch p.tok.Text {
		case "sat":
			if err := p.advance(); err != nil {
				return nil, err
			}
			return ast.CheckSatResponse{Result: ast.Sat}, nil
		case "unsat":
			if err := p.advance(); err != nil {
				return nil, err
			}
			return ast.CheckSatResponse{Result: ast.Unsat}, nil
		case "unknown":
			if err := p.advance(); err != nil {
				return nil, err
			}
			return ast.CheckSatResponse{Result: ast.Unknown}, nil
		}
	}
	return p.parseGenResponse()
}

func (p *Parser) parseGetAssertionsResponse() (ast.Response, error) {
	if p.tok.Kind != token.OParen {
		return p.parseGenResponse()
	}
	if err := p.expectOParen(); err != nil {
		return nil, err
	}
	var terms []ast.Term
	for p.tok.Kind != token.CParen {
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.GetAssertionsResponse{Terms: terms}, nil
}

func (p *Parser) parseValuationPair() (ast.ValuationPair, error) {
	if err := p.expectOParen(); err != nil {
		return ast.ValuationPair{}, err
	}
	sym, err := p.parseSymbol()
	if err != nil {
		return ast.ValuationPair{}, err
	}
	v, err := p.parseBool()
	if err != nil {
		return ast.ValuationPair{}, err
	}
	if err := p.expectCParen(); err != nil {
		return ast.ValuationPair{}, err
	}
	return ast.ValuationPair{Symbol: sym, Value: v}, nil
}

func (p *Parser) parseGetAssignmentResponse() (ast.Response, error) {
	if p.tok.Kind != token.OParen {
		return p.parseGenResponse()
	}
	if err := p.expectOParen(); err != nil {
		return nil, err
	}
	var pairs []ast.ValuationPair
	for p.tok.Kind != token.CParen {
		pair, err := p.parseValuationPair()
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.GetAssignmentResponse{Pairs: pairs}, nil
}

func (p *Parser) parseValuePair() (ast.ValuePair, error) {
	if err := p.expectOParen(); err != nil {
		return ast.ValuePair{}, err
	}
	term, err := p.parseTerm()
	if err != nil {
		return ast.ValuePair{}, err
	}
	val, err := p.parseTerm()
	if err != nil {
		return ast.ValuePair{}, err
	}
	if err := p.expectCParen(); err != nil {
		return ast.ValuePair{}, err
	}
	return ast.ValuePair{Term: term, Value: val}, nil
}

func (p *Parser) parseGetValueResponse() (ast.Response, error) {
	if p.tok.Kind != token.OParen {
		return p.parseGenResponse()
	}
	if err := p.expectOParen(); err != nil {
		return nil, err
	}
	// Disambiguate "(pair ...)" from "(error ...)": peek the payload shape
	// by checking whether this opens on "error" immediately.
	if p.tok.Kind == token.SymbolLit && p.tok.Text == "error" {
		if err := p.advance(); err != nil {
			return nil, err
		}
		msg, err := p.parseString()
		if err != nil {
			return nil, err
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		return ast.ErrorResponse{Msg: msg}, nil
	}
	var pairs []ast.ValuePair
	for p.tok.Kind != token.CParen {
		pair, err := p.parseValuePair()
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.GetValueResponse{Pairs: pairs}, nil
}

func (p *Parser) parseGetProofResponse() (ast.Response, error) {
	if p.tok.Kind == token.SymbolLit {
		return p.parseGenResponse()
	}
	sexpr, err := p.parseSExpr()
	if err != nil {
		return nil, err
	}
	return ast.GetProofResponse{SExpr: sexpr}, nil
}

func (p *Parser) parseGetUnsatCoreResponse() (ast.Response, error) {
	if p.tok.Kind != token.OParen {
		return p.parseGenResponse()
	}
	if err := p.expectOParen(); err != nil {
		return nil, err
	}
	var syms []ast.Symbol
	for p.tok.Kind != token.CParen {
		s, err := p.parseSymbol()
		if err != nil {
			return nil, err
		}
		syms = append(syms, s)
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.GetUnsatCoreResponse{Symbols: syms}, nil
}

func (p *Parser) parseGetOptionResponse() (ast.Response, error) {
	if p.tok.Kind == token.SymbolLit {
		switch p.tok.Text {
		case "success", "unsupported":
			return p.parseGenResponse()
		}
	}
	sexpr, err := p.parseSExpr()
	if err != nil {
		return nil, err
	}
	return ast.GetOptionResponse{SExpr: sexpr}, nil
}

func (p *Parser) parseGetInfoResponse() (ast.Response, error) {
	if p.tok.Kind != token.OParen {
		return p.parseGenResponse()
	}
	if err := p.expectOParen(); err != nil {
		return nil, err
	}
	if p.tok.Kind == token.SymbolLit && p.tok.Text == "error" {
		if err := p.advance(); err != nil {
			return nil, err
		}
		msg, err := p.parseString()
		if err != nil {
			return nil, err
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		return ast.ErrorResponse{Msg: msg}, nil
	}
	head, err := p.parseInfoResponseInner()
	if err != nil {
		return nil, err
	}
	var tail []ast.InfoResponse
	for p.tok.Kind != token.CParen {
		r, err := p.parseInfoResponseInner()
		if err != nil {
			return nil, err
		}
		tail = append(tail, r)
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.NewGetInfoResponse(head, tail...), nil
}

// parseInfoResponseInner parses a single "(keyword value)" pair whose
// leading '(' has not yet been consumed.
func (p *Parser) parseInfoResponseInner() (ast.InfoResponse, error) {
	if err := p.expectOParen(); err != nil {
		return ast.InfoResponse{}, err
	}
	kw, err := p.parseKeyword()
	if err != nil {
		return ast.InfoResponse{}, err
	}
	val, err := p.parseSExpr()
	if err != nil {
		return ast.InfoResponse{}, err
	}
	if err := p.expectCParen(); err != nil {
		return ast.InfoResponse{}, err
	}
	return ast.InfoResponse{Keyword: kw, Value: val}, nil
}

func (p *Parser) parseGetModelResponse() (ast.Response, error) {
	if p.tok.Kind != token.OParen {
		return p.parseGenResponse()
	}
	if err := p.expectOParen(); err != nil {
		return nil, err
	}
	if p.tok.Kind == token.SymbolLit && p.tok.Text == "error" {
		if err := p.advance(); err != nil {
			return nil, err
		}
		msg, err := p.parseString()
		if err != nil {
			return nil, err
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		return ast.ErrorResponse{Msg: msg}, nil
	}
	// Skip the optional leading "model" tag some solvers emit.
	if p.tok.Kind == token.SymbolLit && p.tok.Text == "model" {
		if err := p.advance(); err != nil {
			return nil, err
		}
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
	return ast.GetModelResponse{SExprs: items}, nil
}
