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

// Package batch is a convenience layer over parser.ParseScript for callers
// with many independent sources to parse — e.g. a solver test suite with
// thousands of .smt2 files. It is not part of the core (spec.md §5: "no
// internal scheduling"); it does nothing a caller couldn't do by hand with
// a goroutine pool of their own, it just bounds concurrency the way the
// teacher's compiler executor bounds concurrent compile tasks.
package batch

import (
	"context"
	"io"

	"golang.org/x/sync/semaphore"

	"github.com/kralicky/smtlib/ast"
	"github.com/kralicky/smtlib/parser"
)

// Source names a single readable script for error reporting; Open is
// called at most once per ParseAll invocation.
type Source struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// Result holds the outcome of parsing one Source, in the order the
// sources were supplied.
type Result struct {
	Name   string
	Script ast.Script
	Err    error
}

// ParseAll parses every source concurrently, each through
// parser.ParseScript, holding at most concurrency sources open at once.
// Results are returned in the same order as sources regardless of
// completion order. A concurrency of zero or less defaults to 1.
func ParseAll(ctx context.Context, sources []Source, concurrency int) []Result {
	if concurrency <= 0 {
		concurrency = 1
	}
	sem := semaphore.NewWeighted(int64(concurrency))
	results := make([]Result, len(sources))
	done := make(chan struct{}, len(sources))

	for i, src := range sources {
		i, src := i, src
		go func() {
			defer func() { done <- struct{}{} }()
			if err := sem.Acquire(ctx, 1); err != nil {
				results[i] = Result{Name: src.Name, Err: err}
				return
			}
			defer sem.Release(1)
			results[i] = parseOne(src)
		}()
	}
	for range sources {
		<-done
	}
	return results
}

func parseOne(src Source) Result {
	rc, err := src.Open()
	if err != nil {
		return Result{Name: src.Name, Err: err}
	}
	defer rc.Close()

	script, err := parser.ParseScript(rc)
	return Result{Name: src.Name, Script: script, Err: err}
}
