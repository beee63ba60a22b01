// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package fault

import (
	"errors"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// requireStack asserts that the Error has a non-empty Stack whose
// frames include the named function.
func requireStack(r *require.Assertions, err error, funcName string) {
	var fault *Error
	r.ErrorAs(err, &fault)
	r.NotEmpty(fault.Stack)

	frames := runtime.CallersFrames(fault.Stack)
	var found bool
	for {
		frame, more := frames.Next()
		if strings.Contains(frame.Function, funcName) {
			found = true
			break
		}
		if !more {
			break
		}
	}
	r.True(found, "expected stack to contain %q, got:\n%s",
		funcName, fault.String())
}

func TestRun(t *testing.T) {
	r := require.New(t)

	// Normal call returning nil.
	r.NoError(Run(func() error { return nil }))

	// Normal call returning error; no stack is attached.
	boom := errors.New("boom")
	r.ErrorIs(Run(func() error { return boom }), boom)

	// Panic with error.
	kaboom := errors.New("kaboom")
	err := Run(func() error { panic(kaboom) })
	r.ErrorIs(err, kaboom)
	requireStack(r, err, "TestRun")

	// Panic with non-error.
	err = Run(func() error { panic("oops") })
	r.ErrorContains(err, "oops")
	requireStack(r, err, "TestRun")

	// Panic after returning an error: both join.
	both := Run(func() error {
		defer func() { panic(kaboom) }()
		return boom
	})
	r.ErrorIs(both, boom)
	r.ErrorIs(both, kaboom)
}

func TestRunR(t *testing.T) {
	r := require.New(t)

	// Normal call.
	ret, err := RunR(func() (int, error) { return 42, nil })
	r.NoError(err)
	r.Equal(42, ret)

	// Panic with error. The zero return value is preserved.
	boom := errors.New("boom")
	ret, err = RunR(func() (int, error) { panic(boom) })
	r.ErrorIs(err, boom)
	r.Zero(ret)
	requireStack(r, err, "TestRunR")
}
