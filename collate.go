// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package collate

import "iter"

// Collate folds a sequence of envelopes under the given [Pattern],
// accumulating the values that continue the fold into an ordered
// slice.
//
// The fold is strictly left to right: the first halting envelope
// returns its error immediately and later envelopes are never
// visited. An empty sequence collates to an empty slice.
func Collate[T any](p Pattern, results iter.Seq[Result[T]]) ([]T, error) {
	out := []T{}
	for r := range results {
		v, ok, err := Eval(p, r)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, v)
		}
	}
	return out, nil
}

// Reduce folds the sequence into an accumulator. The combinator's
// return is classified under the given [Pattern]; a skipped result
// ([Pattern2] only) leaves the accumulator unchanged for that element
// rather than dropping an emitted value.
func Reduce[A, T any](p Pattern, items iter.Seq[T], initial A, fn func(A, T) Result[A]) (A, error) {
	var zero A
	if fn == nil {
		return zero, ErrInvalidFunction
	}
	acc := initial
	for item := range items {
		v, ok, err := Eval(p, fn(acc, item))
		if err != nil {
			return zero, err
		}
		if ok {
			acc = v
		}
	}
	return acc, nil
}

// A Mapped pairs an input element with the value its pipeline
// produced.
type Mapped[T any] struct {
	Item  T
	Value T
}

// A Faulted pairs an input element with the error its pipeline
// produced.
type Faulted[T any] struct {
	Item T
	Err  error
}

// A Partition is the outcome of [Gather]: per-element successes
// and failures, each in input order. An empty side is left nil.
type Partition[T any] struct {
	OK  []Mapped[T]
	Err []Faulted[T]
}

// Gather partitions a sequence of (element, envelope) pairs into
// ordered success and failure lists without ever halting.
//
// Each envelope is classified under the [Pattern0] convention, so a
// bare value becomes an [ErrPatternResult] failure entry for its
// element rather than failing the whole operation.
func Gather[T any](results iter.Seq2[T, Result[T]]) Partition[T] {
	var part Partition[T]
	for item, r := range results {
		if v, ok, err := Eval(Pattern0, r); err != nil {
			part.Err = append(part.Err, Faulted[T]{Item: item, Err: err})
		} else if ok {
			part.OK = append(part.OK, Mapped[T]{Item: item, Value: v})
		}
	}
	return part
}

// MapGather applies the pipeline to every element and partitions the
// elements with [Gather].
func MapGather[T any](items iter.Seq[T], fns ...Step[T]) (Partition[T], error) {
	step, err := Compose(fns...)
	if err != nil {
		return Partition[T]{}, err
	}

	return Gather(func(yield func(T, Result[T]) bool) {
		for item := range items {
			if !yield(item, apply(step, item)) {
				return
			}
		}
	}), nil
}
