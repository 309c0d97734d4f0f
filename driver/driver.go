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

// Package driver is the external collaborator from spec.md §6: it spawns
// a child SMT solver process and drives it over exactly the core's public
// printer/parser contract. It is deliberately thin — solver-process
// bookkeeping, not part of the AST/lexer/parser/printer core — and every
// byte it writes or reads passes through printer.Fprint or one of the
// parser's response-kind entry points, never through ad hoc formatting.
package driver

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os/exec"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kralicky/smtlib/ast"
	"github.com/kralicky/smtlib/parser"
	"github.com/kralicky/smtlib/printer"
	"github.com/kralicky/smtlib/reporter"
)

// ResponseKind identifies which of the parser's disjoint response grammars
// to apply to the next line read from the solver, per spec.md §4.2: the
// same text decodes differently depending on which command it answers.
type ResponseKind int

const (
	GenResponse ResponseKind = iota
	CheckSatResponse
	GetAssertionsResponse
	GetAssignmentResponse
	GetValueResponse
	GetProofResponse
	GetUnsatCoreResponse
	GetOptionResponse
	GetInfoResponse
	GetModelResponse
)

// Options configures a Driver. Logger receives diagnostic lines about the
// child process's lifecycle only (spawn, exit, stderr passthrough); the
// core does no logging of its own, and a nil Logger discards these lines.
type Options struct {
	// Path is the solver executable to run, e.g. "z3" or "cvc5".
	Path string
	// Args are passed to the executable, e.g. []string{"-in"}.
	Args []string
	// Timeout bounds how long Close waits for the child to exit. Zero means
	// no timeout. Send and Recv do not apply it: they block on the pipe
	// write and on the line read respectively.
	Timeout time.Duration
	// Logger receives child-process lifecycle diagnostics. Nil discards them.
	Logger *log.Logger
}

// Driver manages one solver child process and speaks the core's wire
// format to it: Send prints a Command, Recv parses the response kind
// named by the command just sent.
type Driver struct {
	opts   Options
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Reader
	group  *errgroup.Group
	logger *log.Logger
}

// Start spawns the configured solver process and begins pumping its
// stderr to the logger in the background.
func Start(ctx context.Context, opts Options) (*Driver, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	cmd := exec.CommandContext(ctx, opts.Path, opts.Args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("driver: stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("driver: stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("driver: stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("driver: start %s: %w", opts.Path, err)
	}
	logger.Printf("driver: started %s (pid %d)", opts.Path, cmd.Process.Pid)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		sc := bufio.NewScanner(stderr)
		for sc.Scan() {
			logger.Printf("driver: %s stderr: %s", opts.Path, sc.Text())
		}
		return nil
	})

	return &Driver{
		opts:   opts,
		cmd:    cmd,
		stdin:  stdin,
		stdout: bufio.NewReader(stdout),
		group:  g,
		logger: logger,
	}, nil
}

func (d *Driver) withDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if d.opts.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d.opts.Timeout)
}

// Send prints cmd to the solver's stdin followed by a newline, and
// flushes. It is the only way this package produces solver input, and it
// goes exclusively through printer.Fprint.
func (d *Driver) Send(ctx context.Context, cmd ast.Command) error {
	_, cancel := d.withDeadline(ctx)
	defer cancel()

	if err := printer.Fprint(d.stdin, cmd); err != nil {
		return fmt.Errorf("driver: write command: %w", err)
	}
	return nil
}

// Recv reads one line-buffered response from the solver and parses it
// with the entry point named by kind. A parse failure is mapped to
// ast.ErrorResponse{Msg} wrapping reporter.ErrInvalidSource, except that a
// failure parsing a CheckSatResponse maps to
// ast.CheckSatResponse{Result: ast.Unknown} — the one exception spec.md §6
// calls out by name.
func (d *Driver) Recv(ctx context.Context, kind ResponseKind) (ast.Response, error) {
	_, cancel := d.withDeadline(ctx)
	defer cancel()

	line, err := d.stdout.ReadString('\n')
	if err != nil && line == "" {
		return nil, fmt.Errorf("driver: read response: %w", err)
	}

	resp, perr := parseResponse(kind, line)
	if perr == nil {
		return resp, nil
	}
	if kind == CheckSatResponse {
		return ast.CheckSatResponse{Result: ast.Unknown}, nil
	}
	invalid := fmt.Errorf("%w: %v", reporter.ErrInvalidSource, perr)
	return ast.ErrorResponse{Msg: invalid.Error()}, nil
}

func parseResponse(kind ResponseKind, line string) (ast.Response, error) {
	switch kind {
	case GenResponse:
		return parser.ParseGenResponseFromString(line)
	case CheckSatResponse:
		return parser.ParseCheckSatResponseFromString(line)
	case GetAssertionsResponse:
		return parser.ParseGetAssertionsResponseFromString(line)
	case GetAssignmentResponse:
		return parser.ParseGetAssignmentResponseFromString(line)
	case GetValueResponse:
		return parser.ParseGetValueResponseFromString(line)
	case GetProofResponse:
		return parser.ParseGetProofResponseFromString(line)
	case GetUnsatCoreResponse:
		return parser.ParseGetUnsatCoreResponseFromString(line)
	case GetOptionResponse:
		return parser.ParseGetOptionResponseFromString(line)
	case GetInfoResponse:
		return parser.ParseGetInfoResponseFromString(line)
	case GetModelResponse:
		return parser.ParseGetModelResponseFromString(line)
	default:
		return nil, fmt.Errorf("driver: unknown response kind %d", kind)
	}
}

// Close sends (exit), waits for the child to exit (bounded by ctx or the
// configured Timeout), and releases its resources.
func (d *Driver) Close(ctx context.Context) error {
	ctx, cancel := d.withDeadline(ctx)
	defer cancel()

	sendErr := d.Send(ctx, ast.Exit{})
	closeErr := d.stdin.Close()

	waitDone := make(chan error, 1)
	go func() { waitDone <- d.cmd.Wait() }()

	var waitErr error
	select {
	case waitErr = <-waitDone:
	case <-ctx.Done():
		_ = d.cmd.Process.Kill()
		waitErr = <-waitDone
	}
	_ = d.group.Wait()

	d.logger.Printf("driver: %s exited: %v", d.opts.Path, waitErr)
	return errors.Join(sendErr, closeErr, waitErr)
}
