// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package collate transforms ordered sequences through user-supplied
// functions, with uniform handling of success and failure outcomes
// and optional concurrent execution.
//
// # Results and patterns
//
// Every pipeline step reports its outcome as a [Result]: a tagged
// success ([OK]), a tagged failure ([Err]), a bare untagged value
// ([Raw]), or the distinguished "no value produced" sentinel
// ([Unset]). How a bare or missing value is interpreted depends on
// the active [Pattern]:
//
//   - [Pattern0] is strict: a bare value halts with
//     [ErrPatternResult].
//   - [Pattern1] is permissive: bare values are successes.
//   - [Pattern2] filters: unset results are dropped from the output
//     without halting the fold.
//
// All three halt on the first failure. [Collate] folds a sequence of
// envelopes under a pattern, [Reduce] classifies a combinator's
// returns, and [MapGather] never halts at all, partitioning elements
// into ordered success and failure lists instead.
//
// # Pipelines
//
// A pipeline is one or more [Step] functions composed with [Compose]
// into a single callable; a success or raw result threads its value
// into the next step, while a failure short-circuits. The [Fn]
// adapter accepts plain func(T) T and func(T) (T, error) signatures.
// Predicates compose with [AllOf] and [AnyOf].
//
// # Mapping
//
//	results, _ := collate.Map(slices.Values(items), step)   // lazy
//	out, err := collate.MapCollate(collate.Pattern1, seq, step)
//	out, err = collate.MapConcurrent(ctx, seq, step)
//
// [Map] is lazy and never materializes its input. [MapConcurrent]
// materializes the sequence, dispatches one task per element onto a
// [vawter.tech/collate/pool.Pool], and blocks until every element has
// been resolved, returning results in input order regardless of
// completion order. By default each call creates an ephemeral pool
// and tears it down on every exit path; pass [WithPool] to reuse a
// caller-managed pool, [WithWorkers] to bound concurrency, and
// [WithGatherTimeout] to bound the wait (default
// [DefaultGatherTimeout]).
//
// A worker panic is recovered and normalized into an ordinary failure
// for that element, carrying a [vawter.tech/collate/pool.FaultError]
// with the captured stack, so the error shape never reveals the
// execution mode.
//
// # Positional addressing
//
// The [vawter.tech/collate/index] package resolves index
// specifications (negative offsets, ranges, nested lists, sentinels)
// and provides fetch, insert, delete, replace, and map-at operations
// over materialized sequences.
package collate
