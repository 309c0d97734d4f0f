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

// parseBool recognizes the two theory symbols "true" and "false" where the
// grammar calls for a literal boolean value (set-option flags). These are
// ordinary symbols, not reserved words, so they arrive as token.SymbolLit.
func (p *Parser) parseBool() (bool, error) {
	if p.tok.Kind != token.SymbolLit {
		return false, p.errorf(`"true" or "false"`)
	}
	switch p.tok.Text {
	case "true":
		if err := p.advance(); err != nil {
			return false, err
		}
		return true, nil
	case "false":
		if err := p.advance(); err != nil {
			return false, err
		}
		return false, nil
	default:
		return false, p.errorf(`"true" or "false"`)
	}
}

func (p *Parser) parseString() (string, error) {
	t, err := p.expect(token.StringLit, "string literal")
	if err != nil {
		return "", err
	}
	return t.Text, nil
}

// parseCommand implements spec §4.2's command dispatch: the reserved word
// immediately following '(' selects the production. An unrecognized head
// (anything that isn't one of the fixed command keywords) falls back to
// NonStandardCommand, preserved as a raw S-expression.
func (p *Parser) parseCommand() (ast.Command, error) {
	if err := p.expectOParen(); err != nil {
		return nil, err
	}
	switch p.tok.Kind {
	case token.RWSetLogic:
		return p.parseSetLogicTail()
	case token.RWSetOption:
		return p.parseSetOptionTail()
	case token.RWSetInfo:
		return p.parseSetInfoTail()
	case token.RWDeclareSort:
		return p.parseDeclareSortTail()
	case token.RWDefineSort:
		return p.parseDefineSortTail()
	case token.RWDeclareFun:
		return p.parseDeclareFunTail()
	case token.RWDefineFun:
		return p.parseDefineFunTail()
	case token.RWPush:
		return p.parsePushTail()
	case token.RWPop:
		return p.parsePopTail()
	case token.RWAssert:
		return p.parseAssertTail()
	case token.RWCheckSat:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectCParen(); err != nil {
			return nil, err
		}
		return ast.CheckSat{}, nil
	case token.RWGetAssertions:
		return p.parseNullaryTail(ast.GetAssertions{})
	case token.RWGetProof:
		return p.parseNullaryTail(ast.GetProof{})
	case token.RWGetUnsatCore:
		return p.parseNullaryTail(ast.GetUnsatCore{})
	case token.RWGetValue:
		return p.parseGetValueTail()
	case token.RWGetAssignment:
		return p.parseNullaryTail(ast.GetAssignment{})
	case token.RWGetOption:
		return p.parseGetOptionTail()
	case token.RWGetInfo:
		return p.parseGetInfoTail()
	case token.RWExit:
		return p.parseNullaryTail(ast.Exit{})
	case token.RWGetModel:
		return p.parseNullaryTail(ast.GetModel{})
	case token.RWDeclareDatatypes:
		return p.parseDeclareDatatypesTail()
	default:
		return p.parseNonStandardCommandTail()
	}
}

func (p *Parser) parseNullaryTail(cmd ast.Command) (ast.Command, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return cmd, nil
}

func (p *Parser) parseSetLogicTail() (ast.Command, error) {
	if _, err := p.expect(token.RWSetLogic, `"set-logic"`); err != nil {
		return nil, err
	}
	logic, err := p.parseSymbol()
	if err != nil {
		return nil, err
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.SetLogic{Logic: logic}, nil
}

func (p *Parser) parseSetInfoTail() (ast.Command, error) {
	if _, err := p.expect(token.RWSetInfo, `"set-info"`); err != nil {
		return nil, err
	}
	attr, err := p.parseAttribute()
	if err != nil {
		return nil, err
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.SetInfo{Attribute: attr}, nil
}

func (p *Parser) parseDeclareSortTail() (ast.Command, error) {
	if _, err := p.expect(token.RWDeclareSort, `"declare-sort"`); err != nil {
		return nil, err
	}
	name, err := p.parseSymbol()
	if err != nil {
		return nil, err
	}
	arity, err := p.parseNumeral()
	if err != nil {
		return nil, err
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.DeclareSort{Name: name, Arity: arity}, nil
}

func (p *Parser) parseDefineSortTail() (ast.Command, error) {
	if _, err := p.expect(token.RWDefineSort, `"define-sort"`); err != nil {
		return nil, err
	}
	name, err := p.parseSymbol()
	if err != nil {
		return nil, err
	}
	if err := p.expectOParen(); err != nil {
		return nil, err
	}
	var params []ast.Symbol
	for p.tok.Kind != token.CParen {
		s, err := p.parseSymbol()
		if err != nil {
			return nil, err
		}
		params = append(params, s)
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	sort, err := p.parseSort()
	if err != nil {
		return nil, err
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.DefineSort{Name: name, Params: params, Sort: sort}, nil
}

func (p *Parser) parseDeclareFunTail() (ast.Command, error) {
	if _, err := p.expect(token.RWDeclareFun, `"declare-fun"`); err != nil {
		return nil, err
	}
	name, err := p.parseSymbol()
	if err != nil {
		return nil, err
	}
	if err := p.expectOParen(); err != nil {
		return nil, err
	}
	var params []ast.Sort
	for p.tok.Kind != token.CParen {
		s, err := p.parseSort()
		if err != nil {
			return nil, err
		}
		params = append(params, s)
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	sort, err := p.parseSort()
	if err != nil {
		return nil, err
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.DeclareFun{Name: name, Params: params, Sort: sort}, nil
}

func (p *Parser) parseDefineFunTail() (ast.Command, error) {
	if _, err := p.expect(token.RWDefineFun, `"define-fun"`); err != nil {
		return nil, err
	}
	name, err := p.parseSymbol()
	if err != nil {
		return nil, err
	}
	if err := p.expectOParen(); err != nil {
		return nil, err
	}
	var params []ast.SortedVar
	for p.tok.Kind != token.CParen {
		v, err := p.parseSortedVar()
		if err != nil {
			return nil, err
		}
		params = append(params, v)
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	sort, err := p.parseSort()
	if err != nil {
		return nil, err
	}
	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.DefineFun{Name: name, Params: params, Sort: sort, Body: body}, nil
}

func (p *Parser) parsePushTail() (ast.Command, error) {
	if _, err := p.expect(token.RWPush, `"push"`); err != nil {
		return nil, err
	}
	n, err := p.parseNumeral()
	if err != nil {
		return nil, err
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.Push{N: n}, nil
}

func (p *Parser) parsePopTail() (ast.Command, error) {
	if _, err := p.expect(token.RWPop, `"pop"`); err != nil {
		return nil, err
	}
	n, err := p.parseNumeral()
	if err != nil {
		return nil, err
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.Pop{N: n}, nil
}

func (p *Parser) parseAssertTail() (ast.Command, error) {
	if _, err := p.expect(token.RWAssert, `"assert"`); err != nil {
		return nil, err
	}
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.Assert{Term: term}, nil
}

func (p *Parser) parseGetValueTail() (ast.Command, error) {
	if _, err := p.expect(token.RWGetValue, `"get-value"`); err != nil {
		return nil, err
	}
	if err := p.expectOParen(); err != nil {
		return nil, err
	}
	head, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	var tail []ast.Term
	for p.tok.Kind != token.CParen {
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		tail = append(tail, t)
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.NewGetValue(head, tail...), nil
}

func (p *Parser) parseGetOptionTail() (ast.Command, error) {
	if _, err := p.expect(token.RWGetOption, `"get-option"`); err != nil {
		return nil, err
	}
	kw, err := p.parseKeyword()
	if err != nil {
		return nil, err
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.GetOption{Keyword: kw}, nil
}

func (p *Parser) parseGetInfoTail() (ast.Command, error) {
	if _, err := p.expect(token.RWGetInfo, `"get-info"`); err != nil {
		return nil, err
	}
	flag, err := p.parseInfoFlag()
	if err != nil {
		return nil, err
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.GetInfo{Flag: flag}, nil
}

// infoFlagNames maps the fixed ":keyword"-shaped info flags to their
// keyword spelling; anything else becomes a KeywordFlag.
var infoFlagNames = map[string]func() ast.InfoFlag{
	"error-behavior": func() ast.InfoFlag { return ast.ErrorBehaviorFlag{} },
	"name":           func() ast.InfoFlag { return ast.NameFlag{} },
	"authors":        func() ast.InfoFlag { return ast.AuthorsFlag{} },
	"version":        func() ast.InfoFlag { return ast.VersionFlag{} },
	"status":         func() ast.InfoFlag { return ast.StatusFlag{} },
	"reason-unknown": func() ast.InfoFlag { return ast.ReasonUnknownFlag{} },
	"all-statistics": func() ast.InfoFlag { return ast.AllStatisticsFlag{} },
}

func (p *Parser) parseInfoFlag() (ast.InfoFlag, error) {
	kw, err := p.parseKeyword()
	if err != nil {
		return nil, err
	}
	if mk, ok := infoFlagNames[kw.Name]; ok {
		return mk(), nil
	}
	return ast.KeywordFlag{Keyword: kw}, nil
}

// parseOption maps the fixed set of named :keyword options to code
// reading their value and producing the matching variant.
// Anything else becomes an AttributeOption, preserving the raw payload.
func (p *Parser) parseOption() (ast.SMTOption, error) {
	kw, err := p.parseKeyword()
	if err != nil {
		return nil, err
	}
	switch kw.Name {
	case "print-success":
		v, err := p.parseBool()
		if err != nil {
			return nil, err
		}
		return ast.PrintSuccess{Value: v}, nil
	case "expand-definitions":
		v, err := p.parseBool()
		if err != nil {
			return nil, err
		}
		return ast.ExpandDefinitions{Value: v}, nil
	case "interactive-mode":
		v, err := p.parseBool()
		if err != nil {
			return nil, err
		}
		return ast.InteractiveMode{Value: v}, nil
	case "produce-proofs":
		v, err := p.parseBool()
		if err != nil {
			return nil, err
		}
		return ast.ProduceProofs{Value: v}, nil
	case "produce-unsat-cores":
		v, err := p.parseBool()
		if err != nil {
			return nil, err
		}
		return ast.ProduceUnsatCores{Value: v}, nil
	case "produce-models":
		v, err := p.parseBool()
		if err != nil {
			return nil, err
		}
		return ast.ProduceModels{Value: v}, nil
	case "produce-assignments":
		v, err := p.parseBool()
		if err != nil {
			return nil, err
		}
		return ast.ProduceAssignments{Value: v}, nil
	case "regular-output-channel":
		v, err := p.parseString()
		if err != nil {
			return nil, err
		}
		return ast.RegularOutputChannel{Value: v}, nil
	case "diagnostic-output-channel":
		v, err := p.parseString()
		if err != nil {
			return nil, err
		}
		return ast.DiagnosticOutputChannel{Value: v}, nil
	case "random-seed":
		v, err := p.parseNumeral()
		if err != nil {
			return nil, err
		}
		return ast.RandomSeed{Value: v}, nil
	case "verbosity":
		v, err := p.parseNumeral()
		if err != nil {
			return nil, err
		}
		return ast.Verbosity{Value: v}, nil
	default:
		if !p.startsSExpr() {
			return ast.AttributeOption{Attribute: ast.NewAttribute(kw, nil)}, nil
		}
		val, err := p.parseSExpr()
		if err != nil {
			return nil, err
		}
		return ast.AttributeOption{Attribute: ast.NewAttribute(kw, val)}, nil
	}
}

func (p *Parser) parseSetOptionTail() (ast.Command, error) {
	if _, err := p.expect(token.RWSetOption, `"set-option"`); err != nil {
		return nil, err
	}
	opt, err := p.parseOption()
	if err != nil {
		return nil, err
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.SetOption{Option: opt}, nil
}

func (p *Parser) parseSelectorDecl() (ast.SelectorDecl, error) {
	if err := p.expectOParen(); err != nil {
		return ast.SelectorDecl{}, err
	}
	field, err := p.parseSymbol()
	if err != nil {
		return ast.SelectorDecl{}, err
	}
	sort, err := p.parseSort()
	if err != nil {
		return ast.SelectorDecl{}, err
	}
	if err := p.expectCParen(); err != nil {
		return ast.SelectorDecl{}, err
	}
	return ast.SelectorDecl{Field: field, Sort: sort}, nil
}

func (p *Parser) parseConstructorDecl() (ast.ConstructorDecl, error) {
	if err := p.expectOParen(); err != nil {
		return ast.ConstructorDecl{}, err
	}
	name, err := p.parseSymbol()
	if err != nil {
		return ast.ConstructorDecl{}, err
	}
	var fields []ast.SelectorDecl
	for p.tok.Kind != token.CParen {
		f, err := p.parseSelectorDecl()
		if err != nil {
			return ast.ConstructorDecl{}, err
		}
		fields = append(fields, f)
	}
	if err := p.expectCParen(); err != nil {
		return ast.ConstructorDecl{}, err
	}
	return ast.ConstructorDecl{Name: name, Fields: fields}, nil
}

func (p *Parser) parseDatatypeDecl() (ast.DatatypeDecl, error) {
	if err := p.expectOParen(); err != nil {
		return ast.DatatypeDecl{}, err
	}
	name, err := p.parseSymbol()
	if err != nil {
		return ast.DatatypeDecl{}, err
	}
	head, err := p.parseConstructorDecl()
	if err != nil {
		return ast.DatatypeDecl{}, err
	}
	var tail []ast.ConstructorDecl
	for p.tok.Kind != token.CParen {
		c, err := p.parseConstructorDecl()
		if err != nil {
			return ast.DatatypeDecl{}, err
		}
		tail = append(tail, c)
	}
	if err := p.expectCParen(); err != nil {
		return ast.DatatypeDecl{}, err
	}
	return ast.NewDatatypeDecl(name, head, tail...), nil
}

// parseDeclareDatatypesTail implements "(declare-datatypes () (dt1 ...
// dtn))"; the leading sort-arity list is required to be empty — parametric
// datatypes aren't part of this grammar.
func (p *Parser) parseDeclareDatatypesTail() (ast.Command, error) {
	if _, err := p.expect(token.RWDeclareDatatypes, `"declare-datatypes"`); err != nil {
		return nil, err
	}
	if err := p.expectOParen(); err != nil {
		return nil, err
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	if err := p.expectOParen(); err != nil {
		return nil, err
	}
	head, err := p.parseDatatypeDecl()
	if err != nil {
		return nil, err
	}
	var tail []ast.DatatypeDecl
	for p.tok.Kind != token.CParen {
		d, err := p.parseDatatypeDecl()
		if err != nil {
			return nil, err
		}
		tail = append(tail, d)
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	if err := p.expectCParen(); err != nil {
		return nil, err
	}
	return ast.NewDeclareDatatypes(head, tail...), nil
}

// parseNonStandardCommandTail reconstructs the entire command form (head
// included) as a raw SExprList, for any command keyword this parser does
// not recognize by name.
func (p *Parser) parseNonStandardCommandTail() (ast.Command, error) {
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
	return ast.NonStandardCommand{SExpr: ast.NewSExprList(items...)}, nil
}

// parseScript parses a sequence of commands until end of input.
func (p *Parser) parseScript() (ast.Script, error) {
	var commands []ast.Command
	for !p.atEOF() {
		cmd, err := p.parseCommand()
		if err != nil {
			return ast.Script{}, err
		}
		commands = append(commands, cmd)
	}
	return ast.NewScript(commands...), nil
}
