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

package driver_test

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kralicky/smtlib/ast"
	"github.com/kralicky/smtlib/driver"
	"github.com/kralicky/smtlib/reporter"
)

// fakeSolver prints "sat" in response to every line of input, mimicking
// just enough of a solver's check-sat loop to exercise Driver's Send/Recv
// without depending on a real SMT solver being installed.
const fakeSolverScript = `while IFS= read -r line; do echo sat; done`

func requireShell(t *testing.T) string {
	t.Helper()
	path, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("no /bin/sh available to drive as a fake solver")
	}
	return path
}

func TestDriverSendRecv(t *testing.T) {
	sh := requireShell(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	d, err := driver.Start(ctx, driver.Options{
		Path:    sh,
		Args:    []string{"-c", fakeSolverScript},
		Timeout: 2 * time.Second,
	})
	require.NoError(t, err)

	require.NoError(t, d.Send(ctx, ast.CheckSat{}))
	resp, err := d.Recv(ctx, driver.CheckSatResponse)
	require.NoError(t, err)
	assert.Equal(t, ast.CheckSatResponse{Result: ast.Sat}, resp)

	require.NoError(t, d.Close(ctx))
}

func TestDriverRecvMapsParseFailureToCheckSatUnknown(t *testing.T) {
	sh := requireShell(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// This "solver" answers every line with garbage that cannot parse as
	// any response kind.
	d, err := driver.Start(ctx, driver.Options{
		Path: sh,
		Args: []string{"-c", `while IFS= read -r line; do echo "not a response("; done`},
	})
	require.NoError(t, err)

	require.NoError(t, d.Send(ctx, ast.CheckSat{}))
	resp, err := d.Recv(ctx, driver.CheckSatResponse)
	require.NoError(t, err)
	assert.Equal(t, ast.CheckSatResponse{Result: ast.Unknown}, resp,
		"a CheckSatResponse parse failure must map to Unknown, not an error response")

	_ = d.Close(ctx)
}

func TestDriverRecvMapsOtherParseFailureToErrorResponse(t *testing.T) {
	sh := requireShell(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	d, err := driver.Start(ctx, driver.Options{
		Path: sh,
		Args: []string{"-c", `while IFS= read -r line; do echo "not a response("; done`},
	})
	require.NoError(t, err)

	require.NoError(t, d.Send(ctx, ast.GetModel{}))
	resp, err := d.Recv(ctx, driver.GetModelResponse)
	require.NoError(t, err)
	errResp, ok := resp.(ast.ErrorResponse)
	require.True(t, ok, "a non-check-sat parse failure must map to ast.ErrorResponse, got %T", resp)
	assert.Contains(t, errResp.Msg, reporter.ErrInvalidSource.Error(),
		"the error response message should name reporter.ErrInvalidSource")

	_ = d.Close(ctx)
}
