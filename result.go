// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package collate

import (
	"fmt"
	"reflect"
)

// kind discriminates the states of a [Result]. The zero value is
// kindUnset so that a zero Result is the unset sentinel.
type kind int8

const (
	kindUnset kind = iota
	kindSuccess
	kindFailure
	kindRaw
)

// A Result is the tagged outcome of one pipeline step.
//
// A Result is in exactly one of four states:
//   - success: an explicitly tagged value, created by [OK].
//   - failure: an error, created by [Err].
//   - raw: a bare, untagged value, created by [Raw]. How a raw value
//     is interpreted depends on the active [Pattern].
//   - unset: a distinguished "no value produced" sentinel, created by
//     [Unset]. The zero Result is unset.
//
// Results are produced per element per step and consumed immediately
// by the collation operations; they are never retained.
type Result[T any] struct {
	value T
	err   error
	kind  kind
}

// OK returns a success Result holding the given value.
func OK[T any](value T) Result[T] {
	return Result[T]{value: value, kind: kindSuccess}
}

// Err returns a failure Result holding the given error.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err, kind: kindFailure}
}

// Raw returns a Result holding a bare, untagged value.
func Raw[T any](value T) Result[T] {
	return Result[T]{value: value, kind: kindRaw}
}

// Unset returns the "no value produced" sentinel. It is distinct from
// a raw nil value, although [Pattern2] skips both.
func Unset[T any]() Result[T] {
	return Result[T]{}
}

// Error returns the enclosed error, or nil unless the Result is a
// failure.
func (r Result[T]) Error() error { return r.err }

// IsFailure reports whether the Result is a failure.
func (r Result[T]) IsFailure() bool { return r.kind == kindFailure }

// IsRaw reports whether the Result holds a bare, untagged value.
func (r Result[T]) IsRaw() bool { return r.kind == kindRaw }

// IsSuccess reports whether the Result is a tagged success.
func (r Result[T]) IsSuccess() bool { return r.kind == kindSuccess }

// IsUnset reports whether the Result is the unset sentinel.
func (r Result[T]) IsUnset() bool { return r.kind == kindUnset }

// Get returns the enclosed value and true when the Result holds one,
// either tagged or raw.
func (r Result[T]) Get() (T, bool) {
	if r.kind == kindSuccess || r.kind == kindRaw {
		return r.value, true
	}
	var zero T
	return zero, false
}

// String is for debugging use only.
func (r Result[T]) String() string {
	switch r.kind {
	case kindSuccess:
		return fmt.Sprintf("ok(%v)", r.value)
	case kindFailure:
		return fmt.Sprintf("err(%v)", r.err)
	case kindRaw:
		return fmt.Sprintf("raw(%v)", r.value)
	default:
		return "unset"
	}
}

// isNil reports whether a raw value is a typed or untyped nil. Unlike
// the unset sentinel, a nil can only be observed for nilable kinds.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface,
		reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}
