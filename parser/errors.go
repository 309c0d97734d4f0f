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

// Package parser implements a hand-written recursive-descent parser over
// the token stream produced by the lexer package, with a single token of
// lookahead. It exposes one entry point per AST kind the grammar can
// produce standalone (term, sort, command, script) plus one entry point
// per solver response kind, since response grammars are disjoint and the
// same text decodes differently depending on which command it answers.
package parser

import (
	"fmt"

	"github.com/kralicky/smtlib/token"
)

// Error is the parse error kind from spec §7: a token appeared where the
// grammar forbids it, or end of input appeared mid-production. It is
// terminal — the parser does not attempt recovery or resynchronization.
type Error struct {
	Pos token.Position
	// Got is the offending token.
	Got token.Token
	// Want is a short, human-readable description of what was expected,
	// e.g. "')'" or "identifier".
	Want string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Pos, e.Want, e.Got.Kind)
}

// GetPosition implements reporter.ErrorWithPos.
func (e *Error) GetPosition() token.Position { return e.Pos }

func (e *Error) Unwrap() error { return nil }
