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

	"github.com/kralicky/smtlib/ast"
)

// NewParser constructs a Parser bound to r and primes its lookahead. Unlike
// the ParseX convenience functions, the returned Parser is reusable across
// multiple calls against the same underlying stream, so several values can
// be read one at a time without losing bytes the lexer has already
// buffered.
func NewParser(r io.Reader) (*Parser, error) {
	return newParser(r)
}

func (p *Parser) Term() (ast.Term, error)       { return p.parseTerm() }
func (p *Parser) Sort() (ast.Sort, error)       { return p.parseSort() }
func (p *Parser) Command() (ast.Command, error) { return p.parseCommand() }
func (p *Parser) Script() (ast.Script, error)   { return p.parseScript() }
func (p *Parser) AtEOF() bool                   { return p.atEOF() }

func (p *Parser) GenResponse() (ast.Response, error)           { return p.parseGenResponse() }
func (p *Parser) CheckSatResponse() (ast.Response, error)      { return p.parseCheckSatResponse() }
func (p *Parser) GetAssertionsResponse() (ast.Response, error) { return p.parseGetAssertionsResponse() }
func (p *Parser) GetAssignmentResponse() (ast.Response, error) { return p.parseGetAssignmentResponse() }
func (p *Parser) GetValueResponse() (ast.Response, error)      { return p.parseGetValueResponse() }
func (p *Parser) GetProofResponse() (ast.Response, error)      { return p.parseGetProofResponse() }
func (p *Parser) GetUnsatCoreResponse() (ast.Response, error)  { return p.parseGetUnsatCoreResponse() }
func (p *Parser) GetOptionResponse() (ast.Response, error)     { return p.parseGetOptionResponse() }
func (p *Parser) GetInfoResponse() (ast.Response, error)       { return p.parseGetInfoResponse() }
func (p *Parser) GetModelResponse() (ast.Response, error)      { return p.parseGetModelResponse() }

// run constructs a Parser over r, invokes parse, and requires parse to
// have consumed the entire input (aside from trailing whitespace/comments,
// which the lexer swallows at EOF). It is the shared plumbing behind every
// exported ParseX entry point.
func run[T any](r io.Reader, parse func(*Parser) (T, error)) (T, error) {
	var zero T
	p, err := newParser(r)
	if err != nil {
		return zero, err
	}
	v, err := parse(p)
	if err != nil {
		return zero, err
	}
	if !p.atEOF() {
		return zero, p.errorf("<EOF>")
	}
	return v, nil
}

// ParseTerm parses a single term from r.
func ParseTerm(r io.Reader) (ast.Term, error) {
	return run(r, (*Parser).parseTerm)
}

// ParseTermFromString parses a single term from s.
func ParseTermFromString(s string) (ast.Term, error) {
	return ParseTerm(stringReader(s))
}

// ParseSort parses a single sort from r.
func ParseSort(r io.Reader) (ast.Sort, error) {
	return run(r, (*Parser).parseSort)
}

func ParseSortFromString(s string) (ast.Sort, error) {
	return ParseSort(stringReader(s))
}

// ParseCommand parses a single command from r.
func ParseCommand(r io.Reader) (ast.Command, error) {
	return run(r, (*Parser).parseCommand)
}

func ParseCommandFromString(s string) (ast.Command, error) {
	return ParseCommand(stringReader(s))
}

// ParseScript parses a full script (zero or more commands) from r.
func ParseScript(r io.Reader) (ast.Script, error) {
	return run(r, (*Parser).parseScript)
}

func ParseScriptFromString(s string) (ast.Script, error) {
	return ParseScript(stringReader(s))
}

// ParseGenResponse parses the generic outcome of any command: success,
// unsupported, or an error response.
func ParseGenResponse(r io.Reader) (ast.Response, error) {
	return run(r, (*Parser).parseGenResponse)
}

func ParseGenResponseFromString(s string) (ast.Response, error) {
	return ParseGenResponse(stringReader(s))
}

// ParseCheckSatResponse parses the response to a check-sat command.
func ParseCheckSatResponse(r io.Reader) (ast.Response, error) {
	return run(r, (*Parser).parseCheckSatResponse)
}

func ParseCheckSatResponseFromString(s string) (ast.Response, error) {
	return ParseCheckSatResponse(stringReader(s))
}

// ParseGetAssertionsResponse parses the response to a get-assertions
// command.
func ParseGetAssertionsResponse(r io.Reader) (ast.Response, error) {
	return run(r, (*Parser).parseGetAssertionsResponse)
}

func ParseGetAssertionsResponseFromString(s string) (ast.Response, error) {
	return ParseGetAssertionsResponse(stringReader(s))
}

// ParseGetAssignmentResponse parses the response to a get-assignment
// command.
func ParseGetAssignmentResponse(r io.Reader) (ast.Response, error) {
	return run(r, (*Parser).parseGetAssignmentResponse)
}

func ParseGetAssignmentResponseFromString(s string) (ast.Response, error) {
	return ParseGetAssignmentResponse(stringReader(s))
}

// ParseGetValueResponse parses the response to a get-value command.
func ParseGetValueResponse(r io.Reader) (ast.Response, error) {
	return run(r, (*Parser).parseGetValueResponse)
}

func ParseGetValueResponseFromString(s string) (ast.Response, error) {
	return ParseGetValueResponse(stringReader(s))
}

// ParseGetProofResponse parses the response to a get-proof command.
func ParseGetProofResponse(r io.Reader) (ast.Response, error) {
	return run(r, (*Parser).parseGetProofResponse)
}

func ParseGetProofResponseFromString(s string) (ast.Response, error) {
	return ParseGetProofResponse(stringReader(s))
}

// ParseGetUnsatCoreResponse parses the response to a get-unsat-core
// command.
func ParseGetUnsatCoreResponse(r io.Reader) (ast.Response, error) {
	return run(r, (*Parser).parseGetUnsatCoreResponse)
}

func ParseGetUnsatCoreResponseFromString(s string) (ast.Response, error) {
	return ParseGetUnsatCoreResponse(stringReader(s))
}

// ParseGetOptionResponse parses the response to a get-option command.
func ParseGetOptionResponse(r io.Reader) (ast.Response, error) {
	return run(r, (*Parser).parseGetOptionResponse)
}

func ParseGetOptionResponseFromString(s string) (ast.Response, error) {
	return ParseGetOptionResponse(stringReader(s))
}

// ParseGetInfoResponse parses the response to a get-info command.
func ParseGetInfoResponse(r io.Reader) (ast.Response, error) {
	return run(r, (*Parser).parseGetInfoResponse)
}

func ParseGetInfoResponseFromString(s string) (ast.Response, error) {
	return ParseGetInfoResponse(stringReader(s))
}

// ParseGetModelResponse parses the response to a get-model command.
func ParseGetModelResponse(r io.Reader) (ast.Response, error) {
	return run(r, (*Parser).parseGetModelResponse)
}

func ParseGetModelResponseFromString(s string) (ast.Response, error) {
	return ParseGetModelResponse(stringReader(s))
}
