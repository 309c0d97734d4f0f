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
	"fmt"

	"github.com/kralicky/smtlib/token"
)

// ErrorKind distinguishes the two ways a lexical scan can fail, per
// spec §7.
type ErrorKind int

const (
	// UnexpectedEOF is reported when the input ends inside an unterminated
	// token: an open string, an open quoted symbol, a bare '#' with nothing
	// following it, or an empty "#b"/"#x" body.
	UnexpectedEOF ErrorKind = iota
	// UnexpectedChar is reported when a character appears where the
	// grammar admits only specific alternatives, e.g. '#' followed by
	// neither 'b' nor 'x'.
	UnexpectedChar
)

// Error is the lexical error kind from spec §7. It is terminal: the call
// that produced it has failed and the lexer's position is undefined for any
// subsequent call.
type Error struct {
	Kind ErrorKind
	Pos  token.Position
	// Char is the offending character, valid only for UnexpectedChar.
	Char rune
	// Context is a short human-readable description of what was being
	// scanned, e.g. "string literal" or "quoted symbol".
	Context string
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnexpectedEOF:
		return fmt.Sprintf("%s: unexpected end of input in %s", e.Pos, e.Context)
	default:
		return fmt.Sprintf("%s: unexpected character %q in %s", e.Pos, e.Char, e.Context)
	}
}

// GetPosition implements reporter.ErrorWithPos.
func (e *Error) GetPosition() token.Position { return e.Pos }

// Unwrap satisfies errors.Unwrap conventions even though Error has no
// further underlying cause; it returns nil.
func (e *Error) Unwrap() error { return nil }
