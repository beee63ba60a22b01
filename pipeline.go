// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package collate

import "fmt"

type (
	// A Step is one stage of a transformation pipeline. It receives
	// the value threaded through the pipeline and reports its outcome
	// as a [Result]. See [Fn] to adapt plainer function signatures.
	Step[T any] func(T) Result[T]

	// An IndexedStep additionally receives the zero-based position of
	// the element being transformed.
	IndexedStep[T any] func(int, T) Result[T]

	// A Predicate reports whether a value should be selected.
	Predicate[T any] func(T) bool

	// An IndexedPredicate additionally receives the zero-based
	// position of the value under test.
	IndexedPredicate[T any] func(T, int) bool
)

// Adaptable is the set of function signatures accepted by [Fn].
type Adaptable[T any] interface {
	func(T) T | func(T) (T, error) | Step[T]
}

// Fn adapts various function signatures to pipeline [Step] values.
//
// A plain func(T) T produces bare values (its returns are untagged,
// so [Pattern0] will reject them), while a func(T) (T, error) is
// converted to explicit success/failure tagging.
func Fn[T any, A Adaptable[T]](fn A) Step[T] {
	a := any(fn)
	switch t := a.(type) {
	case func(T) T:
		return func(v T) Result[T] {
			return Raw(t(v))
		}
	case func(T) (T, error):
		return func(v T) Result[T] {
			ret, err := t(v)
			if err != nil {
				return Err[T](err)
			}
			return OK(ret)
		}
	}
	return a.(Step[T])
}

// Identity returns a Step that tags its input as a success without
// transforming it.
func Identity[T any]() Step[T] {
	return func(v T) Result[T] { return OK(v) }
}

// Steps flattens groups of steps into a single pipeline, dropping nil
// groups and nil entries.
func Steps[T any](groups ...[]Step[T]) []Step[T] {
	var out []Step[T]
	for _, group := range groups {
		for _, fn := range group {
			if fn != nil {
				out = append(out, fn)
			}
		}
	}
	return out
}

// Compose reduces the given steps to a single Step that threads a
// value through them left to right.
//
// A success or raw result passes its value to the next step; a
// failure or unset result short-circuits the remaining steps and
// becomes the pipeline's outcome. The final step's result is
// otherwise returned untouched, so tagging decisions made by the last
// step are visible to the active [Pattern].
//
// Composing zero steps is an error; see [ComposePass] for a
// pass-through alternative. A single step is returned as-is.
func Compose[T any](fns ...Step[T]) (Step[T], error) {
	step, err := compose(fns)
	if err != nil {
		return nil, err
	}
	if step == nil {
		return nil, fmt.Errorf("%w: empty pipeline", ErrInvalidFunctionList)
	}
	return step, nil
}

// ComposePass is a variant of [Compose] that returns [Identity] when
// no steps are given.
func ComposePass[T any](fns ...Step[T]) (Step[T], error) {
	step, err := compose(fns)
	if err != nil {
		return nil, err
	}
	if step == nil {
		return Identity[T](), nil
	}
	return step, nil
}

// compose validates the steps and reduces them, returning a nil Step
// for the empty case. Callers decide what an empty pipeline means.
func compose[T any](fns []Step[T]) (Step[T], error) {
	if err := validateSteps(fns); err != nil {
		return nil, err
	}
	switch len(fns) {
	case 0:
		return nil, nil
	case 1:
		return fns[0], nil
	}
	return func(v T) Result[T] {
		res := OK(v)
		for _, fn := range fns {
			switch res.kind {
			case kindSuccess, kindRaw:
				res = fn(res.value)
			default:
				// Failure or unset short-circuits.
				return res
			}
		}
		return res
	}, nil
}

// AllOf reduces the given predicates to a single Predicate satisfied
// only when every one of them is. A single predicate is returned
// unwrapped.
func AllOf[T any](preds ...Predicate[T]) (Predicate[T], error) {
	if err := validatePredicates(preds); err != nil {
		return nil, err
	}
	if len(preds) == 1 {
		return preds[0], nil
	}
	return func(v T) bool {
		for _, pred := range preds {
			if !pred(v) {
				return false
			}
		}
		return true
	}, nil
}

// AnyOf reduces the given predicates to a single Predicate satisfied
// when at least one of them is. A single predicate is returned
// unwrapped.
func AnyOf[T any](preds ...Predicate[T]) (Predicate[T], error) {
	if err := validatePredicates(preds); err != nil {
		return nil, err
	}
	if len(preds) == 1 {
		return preds[0], nil
	}
	return func(v T) bool {
		for _, pred := range preds {
			if pred(v) {
				return true
			}
		}
		return false
	}, nil
}

// validateSteps rejects nil entries before any composition is
// performed. A lone nil is reported as a scalar error; a nil inside a
// longer list is reported as a list error naming the position.
func validateSteps[T any](fns []Step[T]) error {
	if len(fns) == 1 {
		if fns[0] == nil {
			return ErrInvalidFunction
		}
		return nil
	}
	for i, fn := range fns {
		if fn == nil {
			return fmt.Errorf("%w: nil function at position %d", ErrInvalidFunctionList, i)
		}
	}
	return nil
}

func validatePredicates[T any](preds []Predicate[T]) error {
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

func validateIndexedSteps[T any](fns []IndexedStep[T]) error {
	if len(fns) == 1 {
		if fns[0] == nil {
			return ErrInvalidFunction
		}
		return nil
	}
	for i, fn := range fns {
		if fn == nil {
			return fmt.Errorf("%w: nil function at position %d", ErrInvalidFunctionList, i)
		}
	}
	return nil
}
