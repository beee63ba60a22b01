// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package collate

import (
	"fmt"
	"iter"

	"vawter.tech/collate/internal/fault"
)

// Map lazily applies the composed pipeline to each element, returning
// a sequence of envelopes for collation.
//
// Validation and composition errors are reported eagerly, before any
// element is visited. Map itself never materializes the input:
// per-element work happens only as the returned sequence is realized,
// and a panic raised while realizing an element surfaces as a failure
// envelope for that element.
func Map[T any](items iter.Seq[T], fns ...Step[T]) (iter.Seq[Result[T]], error) {
	step, err := Compose(fns...)
	if err != nil {
		return nil, err
	}
	return func(yield func(Result[T]) bool) {
		for item := range items {
			if !yield(apply(step, item)) {
				return
			}
		}
	}, nil
}

// MapIndexed is a positional version of [Map]: each element is paired
// with its zero-based position before the pipeline runs, and every
// step receives that position alongside the threaded value.
func MapIndexed[T any](items iter.Seq[T], fns ...IndexedStep[T]) (iter.Seq[Result[T]], error) {
	if err := validateIndexedSteps(fns); err != nil {
		return nil, err
	}
	if len(fns) == 0 {
		return nil, fmt.Errorf("%w: empty pipeline", ErrInvalidFunctionList)
	}
	return func(yield func(Result[T]) bool) {
		idx := 0
		for item := range items {
			res, err := fault.RunR(func() (Result[T], error) {
				return applyIndexed(fns, idx, item), nil
			})
			if err != nil {
				res = Err[T](err)
			}
			if !yield(res) {
				return
			}
			idx++
		}
	}, nil
}

// MapCollate applies the pipeline to each element and collates the
// envelopes under the given [Pattern], in strict left-to-right order.
// No element is evaluated after a halt.
func MapCollate[T any](p Pattern, items iter.Seq[T], fns ...Step[T]) ([]T, error) {
	results, err := Map(items, fns...)
	if err != nil {
		return nil, err
	}
	return Collate(p, results)
}

// Filter lazily yields the elements satisfying every predicate.
func Filter[T any](items iter.Seq[T], preds ...Predicate[T]) (iter.Seq[T], error) {
	pred, err := AllOf(preds...)
	if err != nil {
		return nil, err
	}
	return func(yield func(T) bool) {
		for item := range items {
			if pred(item) && !yield(item) {
				return
			}
		}
	}, nil
}

// Reject lazily yields the elements satisfying none of the
// predicates. It is the complement of [Filter].
func Reject[T any](items iter.Seq[T], preds ...Predicate[T]) (iter.Seq[T], error) {
	pred, err := AnyOf(preds...)
	if err != nil {
		return nil, err
	}
	return func(yield func(T) bool) {
		for item := range items {
			if !pred(item) && !yield(item) {
				return
			}
		}
	}, nil
}

// FilterIndexed is a positional version of [Filter]: predicates
// receive each element together with its zero-based position.
func FilterIndexed[T any](items iter.Seq[T], preds ...IndexedPredicate[T]) (iter.Seq[T], error) {
	if err := validateIndexedPredicates(preds); err != nil {
		return nil, err
	}
	return func(yield func(T) bool) {
		idx := 0
		for item := range items {
			if allIndexed(preds, item, idx) && !yield(item) {
				return
			}
			idx++
		}
	}, nil
}

// RejectIndexed is the complement of [FilterIndexed].
func RejectIndexed[T any](items iter.Seq[T], preds ...IndexedPredicate[T]) (iter.Seq[T], error) {
	if err := validateIndexedPredicates(preds); err != nil {
		return nil, err
	}
	return func(yield func(T) bool) {
		idx := 0
		for item := range items {
			if !anyIndexed(preds, item, idx) && !yield(item) {
				return
			}
			idx++
		}
	}, nil
}

// apply runs one element through the pipeline under panic capture,
// converting a recovered panic into a failure envelope.
func apply[T any](step Step[T], item T) Result[T] {
	res, err := fault.RunR(func() (Result[T], error) {
		return step(item), nil
	})
	if err != nil {
		return Err[T](err)
	}
	return res
}

// applyIndexed threads a value through the indexed steps exactly as
// the composed form of [Compose] does for plain steps.
func applyIndexed[T any](fns []IndexedStep[T], idx int, v T) Result[T] {
	res := OK(v)
	for _, fn := range fns {
		switch res.kind {
		case kindSuccess, kindRaw:
			res = fn(idx, res.value)
		default:
			// Failure or unset short-circuits.
			return res
		}
	}
	return res
}

func allIndexed[T any](preds []IndexedPredicate[T], item T, idx int) bool {
	for _, pred := range preds {
		if !pred(item, idx) {
			return false
		}
	}
	return true
}

func anyIndexed[T any](preds []IndexedPredicate[T], item T, idx int) bool {
	for _, pred := range preds {
		if pred(item, idx) {
			return true
		}
	}
	return false
}

func validateIndexedPredicates[T any](preds []IndexedPredicate[T]) error {
	switch len(preds) {
	case 0:
		return fmt.Errorf("%w: no predicates", ErrInvalidFunctionList)
	case 1:
		if preds[0] == nil {
			return ErrInvalidFunction
		}
		return nil
	}
	for i, pred := range preds {
		if pred == nil {
			return fmt.Errorf("%w: nil predicate at position %d", ErrInvalidFunctionList, i)
		}
	}
	return nil
}
