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

// Package reporter gives the lexer's and parser's two terminal error kinds
// a common shape: something with a source Position attached, unwrapping to
// the underlying cause. Neither lexer.Error nor parser.Error needs this
// package to satisfy the interface (both already export GetPosition and
// Unwrap directly), but callers that want to handle the two uniformly
// without importing both packages can go through ErrorWithPos instead.
package reporter

import (
	"errors"
	"fmt"

	"github.com/kralicky/smtlib/token"
)

// ErrInvalidSource identifies a solver response driver.Driver could not
// parse into any response-kind-specific result; driver.Driver.Recv prefixes
// the parse failure it reports in ast.ErrorResponse.Msg with this sentinel's
// text so that message always names the failure kind, not just the
// underlying parser error.
var ErrInvalidSource = errors.New("smtlib: invalid source")

// ErrorWithPos is an error that carries the source position responsible
// for it. lexer.Error and parser.Error both satisfy this interface.
type ErrorWithPos interface {
	error
	GetPosition() token.Position
	Unwrap() error
}

// Error wraps err with pos, producing an ErrorWithPos, for callers that
// need to attach a position to an error that didn't originate from the
// lexer or parser, e.g. an I/O failure encountered partway through a read.
func Error(pos token.Position, err error) ErrorWithPos {
	return errorWithPos{pos: pos, underlying: err}
}

// Errorf is like Error but builds the underlying error via fmt.Errorf.
func Errorf(pos token.Position, format string, args ...any) ErrorWithPos {
	return errorWithPos{pos: pos, underlying: fmt.Errorf(format, args...)}
}

type errorWithPos struct {
	underlying error
	pos        token.Position
}

func (e errorWithPos) Error() string {
	return fmt.Sprintf("%s: %v", e.pos, e.underlying)
}

func (e errorWithPos) GetPosition() token.Position { return e.pos }

func (e errorWithPos) Unwrap() error { return e.underlying }

var _ ErrorWithPos = errorWithPos{}

// AsPositioned reports whether err (or something it wraps) is an
// ErrorWithPos, returning it if so. Both lexer.Error and parser.Error
// already implement the interface directly, so this is just errors.As
// with the interface type spelled out for callers that don't want to
// import the interface type themselves.
func AsPositioned(err error) (ErrorWithPos, bool) {
	var pe ErrorWithPos
	ok := errors.As(err, &pe)
	return pe, ok
}
