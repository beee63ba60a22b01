// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package index

import (
	"iter"
	"slices"

	"vawter.tech/collate"
)

// FetchAt returns the values addressed by the specification, in
// index-list order rather than sequence order. Any index that does
// not resolve fails the whole fetch. A nil specification returns the
// entire sequence unchanged, and an empty sequence fetches to an
// empty slice without resolving anything.
func FetchAt[T any](items iter.Seq[T], spec any) ([]T, error) {
	elems := slices.Collect(items)
	if spec == nil {
		return elems, nil
	}
	if len(elems) == 0 {
		return []T{}, nil
	}
	idxs, err := Normalize(spec)
	if err != nil {
		return nil, err
	}
	resolved, err := Resolve(len(elems), idxs)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(resolved))
	for i, at := range resolved {
		out[i] = elems[at]
	}
	return out, nil
}

// GetAt is a forgiving [FetchAt]: an index that does not resolve
// yields def instead of failing.
func GetAt[T any](items iter.Seq[T], spec any, def T) ([]T, error) {
	elems := slices.Collect(items)
	if spec == nil {
		return elems, nil
	}
	if len(elems) == 0 {
		return []T{}, nil
	}
	idxs, err := Normalize(spec)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(idxs))
	for i, idx := range idxs {
		at := idx
		if at < 0 {
			at = len(elems) + at
		}
		if at < 0 || at >= len(elems) {
			out[i] = def
			continue
		}
		out[i] = elems[at]
	}
	return out, nil
}

// InsertAt splices the given values immediately before each matched
// element. The [Append] token instead splices after the last element,
// and a nil specification inserts before every element. An empty
// input sequence becomes the values themselves.
func InsertAt[T any](items iter.Seq[T], spec any, values ...T) ([]T, error) {
	elems := slices.Collect(items)
	if len(elems) == 0 {
		return slices.Clone(values), nil
	}
	if t, ok := spec.(Token); ok && t == Append {
		return append(elems, values...), nil
	}
	match, err := Matcher(elems, spec)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(elems)+len(values))
	for i, item := range elems {
		if match(item, i) {
			out = append(out, values...)
		}
		out = append(out, item)
	}
	return out, nil
}

// DeleteAt drops the elements at every matched position.
//
// A nil specification matches every position and therefore deletes
// the entire sequence. This is deliberately asymmetric with [FetchAt]
// and [GetAt], where nil means "no filtering".
func DeleteAt[T any](items iter.Seq[T], spec any) ([]T, error) {
	elems := slices.Collect(items)
	if len(elems) == 0 {
		return []T{}, nil
	}
	match, err := Matcher(elems, spec)
	if err != nil {
		return nil, err
	}
	out := []T{}
	for i, item := range elems {
		if !match(item, i) {
			out = append(out, item)
		}
	}
	return out, nil
}

// ReplaceAt drops the element at each matched position and splices
// the given values in its place.
func ReplaceAt[T any](items iter.Seq[T], spec any, values ...T) ([]T, error) {
	elems := slices.Collect(items)
	match, err := Matcher(elems, spec)
	if err != nil {
		return nil, err
	}
	out := []T{}
	for i, item := range elems {
		if match(item, i) {
			out = append(out, values...)
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

// MapAt applies the pipeline to the element at each matched position
// and splices the transformed result in place, leaving unmatched
// elements untouched. Envelopes are interpreted under the
// [collate.Pattern1] map convention; the first failure halts the
// whole operation.
func MapAt[T any](items iter.Seq[T], spec any, fns ...collate.Step[T]) ([]T, error) {
	elems := slices.Collect(items)
	step, err := collate.Compose(fns...)
	if err != nil {
		return nil, err
	}
	match, err := Matcher(elems, spec)
	if err != nil {
		return nil, err
	}
	out := []T{}
	for i, item := range elems {
		if !match(item, i) {
			out = append(out, item)
			continue
		}
		v, ok, err := collate.Eval(collate.Pattern1, step(item))
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, v)
		}
	}
	return out, nil
}

// Filter returns the elements whose positions match the
// specification, in sequence order. It is the positional counterpart
// of the predicate-based [collate.Filter].
func Filter[T any](items iter.Seq[T], spec any) ([]T, error) {
	elems := slices.Collect(items)
	match, err := Matcher(elems, spec)
	if err != nil {
		return nil, err
	}
	out := []T{}
	for i, item := range elems {
		if match(item, i) {
			out = append(out, item)
		}
	}
	return out, nil
}

// Reject is the complement of [Filter].
func Reject[T any](items iter.Seq[T], spec any) ([]T, error) {
	elems := slices.Collect(items)
	match, err := Matcher(elems, spec)
	if err != nil {
		return nil, err
	}
	out := []T{}
	for i, item := range elems {
		if !match(item, i) {
			out = append(out, item)
		}
	}
	return out, nil
}
