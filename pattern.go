// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package collate

import "fmt"

// A Pattern is one of the three conventions for interpreting a
// pipeline step's [Result].
//
// All three patterns continue on a tagged success and halt on a
// failure; they differ in how bare values and missing values are
// treated:
//
//	           success     failure   raw value         unset / raw nil
//	Pattern0   continue    halt      halt              halt
//	Pattern1   continue    halt      continue          continue (zero value)
//	Pattern2   continue    halt      continue (*)      skip
//
// (*) Under [Pattern2], a raw nil behaves like unset and is skipped.
//
// Halting under Pattern0 for a bare value produces [ErrPatternResult].
type Pattern int

const (
	// Pattern0 is the strict convention: every step must return an
	// explicitly tagged success or failure.
	Pattern0 Pattern = iota

	// Pattern1 is the permissive convention: bare values are treated
	// as successes.
	Pattern1

	// Pattern2 is the filtering convention: bare values are treated
	// as successes, while unset (and raw nil) results are dropped
	// from the output without halting.
	Pattern2
)

// String implements fmt.Stringer.
func (p Pattern) String() string {
	switch p {
	case Pattern0, Pattern1, Pattern2:
		return fmt.Sprintf("pattern %d", int(p))
	default:
		return fmt.Sprintf("Pattern(%d)", int(p))
	}
}

// Eval applies the Pattern's rule to a single envelope.
//
// When the envelope continues the fold, Eval returns its value and
// ok=true. A skipped envelope ([Pattern2] only) returns ok=false with
// a nil error. A halting envelope returns a non-nil error: the
// enclosed failure, or [ErrPatternResult] for a bare value under
// [Pattern0]. An unrecognized Pattern halts with an error rather than
// guessing at semantics.
func Eval[T any](p Pattern, r Result[T]) (value T, ok bool, err error) {
	var zero T
	if r.kind == kindFailure {
		return zero, false, r.err
	}

	switch p {
	case Pattern0:
		if r.kind == kindSuccess {
			return r.value, true, nil
		}
		// Raw and unset both fall to the bare-value rule.
		return zero, false, fmt.Errorf("%w: %s", ErrPatternResult, r)
	case Pattern1:
		// Unset continues with the zero value.
		return r.value, true, nil
	case Pattern2:
		if r.kind == kindUnset || (r.kind == kindRaw && isNil(any(r.value))) {
			return zero, false, nil
		}
		return r.value, true, nil
	default:
		return zero, false, fmt.Errorf("unknown collation pattern %d", int(p))
	}
}
