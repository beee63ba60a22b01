// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package collate

import "errors"

var (
	// ErrGatherTimeout is returned by the concurrent mapping
	// operations when their workers do not all deliver a result
	// within the configured gather timeout. A timeout fails the whole
	// gather, never a single element.
	ErrGatherTimeout = errors.New("gather timed out")

	// ErrInvalidFunction is returned when a single nil function is
	// supplied where a pipeline step or predicate is required.
	ErrInvalidFunction = errors.New("invalid function")

	// ErrInvalidFunctionList is returned when a list of functions is
	// empty or contains a nil entry. The wrapping error names the
	// offending position.
	ErrInvalidFunctionList = errors.New("invalid function list")

	// ErrPatternResult is returned by [Pattern0] operations when a
	// pipeline step produces a bare, untagged value. Pattern 0
	// requires every step to return an explicit success or failure.
	ErrPatternResult = errors.New("untagged value where a tagged result is required")
)
