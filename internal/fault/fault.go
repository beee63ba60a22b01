// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package fault converts panics raised by user-provided functions into
// ordinary errors that carry the goroutine stack at the point of the
// panic.
package fault

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

const captureDepth = 32

// An Error associates a recovered panic value with a stack trace.
type Error struct {
	Err   error
	Stack []uintptr
}

// Error implements error.
func (e *Error) Error() string {
	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "recovered: %v\n", e.Err)
	frames := runtime.CallersFrames(e.Stack)
	for {
		frame, more := frames.Next()
		_, _ = fmt.Fprintf(&sb, "%s ( %s:%d )\n", frame.Function, frame.File, frame.Line)

		if !more {
			return sb.String()
		}
	}
}

// String is for debugging use only.
func (e *Error) String() string { return e.Error() }

// Unwrap returns the enclosed error.
func (e *Error) Unwrap() error { return e.Err }

// capture converts a recover() value into an *Error. A nil recovery
// returns nil.
func capture(r any) error {
	var err error
	switch t := r.(type) {
	case nil:
		return nil
	case error:
		err = t
	default:
		err = fmt.Errorf("panic: %v", t)
	}
	stack := make([]uintptr, captureDepth)
	stack = stack[:runtime.Callers(3, stack)]
	return &Error{
		Err:   err,
		Stack: stack,
	}
}

// Run executes the function. If the function panics, the recovered
// value will be added to the returned error.
func Run(fn func() error) (err error) {
	defer func() {
		if r := capture(recover()); r != nil {
			err = errors.Join(err, r)
		}
	}()
	err = fn()
	return
}

// RunR executes the function, returning some result value. If the
// function panics, the recovered value will be added to the returned
// error.
func RunR[R any](fn func() (R, error)) (ret R, err error) {
	defer func() {
		if r := capture(recover()); r != nil {
			err = errors.Join(err, r)
		}
	}()
	ret, err = fn()
	return
}
