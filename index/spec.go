// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package index

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sort"
)

var (
	// ErrIndexOutOfRange is returned when exactly one index in a
	// specification does not resolve to a valid position. The
	// wrapping error names the index as the caller wrote it.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrIndicesOutOfRange is the plural counterpart of
	// [ErrIndexOutOfRange]: two or more indices failed to resolve,
	// and the wrapping error names all of them, not just the first.
	ErrIndicesOutOfRange = errors.New("indices out of range")

	// ErrInvalidSpec is returned when a value cannot be interpreted
	// as an index specification at all.
	ErrInvalidSpec = errors.New("unparseable index specification")
)

// A Token is a positional sentinel accepted as an index
// specification.
type Token int

const (
	// First targets position 0.
	First Token = iota
	// Last targets the final position.
	Last
	// Append is recognized only by [InsertAt]: it splices after the
	// last element instead of before a matched one.
	Append
)

// String implements fmt.Stringer.
func (t Token) String() string {
	switch t {
	case First:
		return "first"
	case Last:
		return "last"
	case Append:
		return "append"
	default:
		return fmt.Sprintf("Token(%d)", int(t))
	}
}

// A Range is an inclusive interval of positions. A descending Range
// (From > To) expands in descending order; expansion order is
// significant for fetch and get.
type Range struct {
	From, To int
}

func (r Range) expand() []int {
	if r.From <= r.To {
		out := make([]int, 0, r.To-r.From+1)
		for i := r.From; i <= r.To; i++ {
			out = append(out, i)
		}
		return out
	}
	out := make([]int, 0, r.From-r.To+1)
	for i := r.From; i >= r.To; i-- {
		out = append(out, i)
	}
	return out
}

// Normalize converts an index specification into a flat list of
// (possibly negative) integer positions.
//
// Accepted forms: any integer kind, [Range], [First] and [Last],
// and arbitrarily nested lists of those. A keyed collection
// contributes only its values. Duplicates and caller-declared order
// are preserved verbatim, so Normalize is idempotent on an
// already-resolved []int. Anything else fails with [ErrInvalidSpec].
//
// A nil specification is not an index list; the operations in this
// package give it an "every position" or "no filtering" meaning
// before resolution ever happens.
func Normalize(spec any) ([]int, error) {
	switch s := spec.(type) {
	case int:
		return []int{s}, nil
	case Range:
		return s.expand(), nil
	case Token:
		switch s {
		case First:
			return []int{0}, nil
		case Last:
			return []int{-1}, nil
		}
		return nil, fmt.Errorf("%w: token %s", ErrInvalidSpec, s)
	case []int:
		return slices.Clone(s), nil
	case []any:
		out := []int{}
		for _, entry := range s {
			sub, err := Normalize(entry)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		}
		return out, nil
	case nil:
		return nil, fmt.Errorf("%w: nil specification", ErrInvalidSpec)
	}
	return normalizeReflect(spec)
}

// normalizeReflect handles the less common shapes: other integer
// widths, typed slices, and keyed collections.
func normalizeReflect(spec any) ([]int, error) {
	rv := reflect.ValueOf(spec)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return []int{int(rv.Int())}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return []int{int(rv.Uint())}, nil
	case reflect.Slice, reflect.Array:
		out := []int{}
		for i := range rv.Len() {
			sub, err := Normalize(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		}
		return out, nil
	case reflect.Map:
		// Go maps are unordered; visit keys in sorted display order
		// so that resolution is deterministic.
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
		})
		out := []int{}
		for _, key := range keys {
			sub, err := Normalize(rv.MapIndex(key).Interface())
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrInvalidSpec, spec)
}

// Resolve converts each negative index to a position counted from the
// end of a sequence of the given length (-1 is the last element) and
// confirms that every position is in range.
//
// All invalid indices are collected before failing: a single bad
// index produces [ErrIndexOutOfRange] naming it, two or more produce
// [ErrIndicesOutOfRange] naming the full invalid set. Indices are
// reported as the caller wrote them, before negative resolution.
func Resolve(length int, idxs []int) ([]int, error) {
	out := make([]int, len(idxs))
	var bad []int
	for i, idx := range idxs {
		at := idx
		if at < 0 {
			at = length + at
		}
		if at < 0 || at >= length {
			bad = append(bad, idx)
			continue
		}
		out[i] = at
	}
	switch len(bad) {
	case 0:
		return out, nil
	case 1:
		return nil, fmt.Errorf("%w: %d (length %d)", ErrIndexOutOfRange, bad[0], length)
	default:
		return nil, fmt.Errorf("%w: %v (length %d)", ErrIndicesOutOfRange, bad, length)
	}
}

// Matcher compiles a specification into a position predicate for the
// materialized sequence, so that splicing operations do not re-resolve
// indices per element.
//
// A nil specification compiles to an always-true predicate. A
// func(T, int) bool specification is used directly. Anything else
// goes through [Normalize] and [Resolve] and matches by position-set
// membership.
func Matcher[T any](items []T, spec any) (func(T, int) bool, error) {
	switch s := spec.(type) {
	case nil:
		return func(T, int) bool { return true }, nil
	case func(T, int) bool:
		return s, nil
	}
	idxs, err := Normalize(spec)
	if err != nil {
		return nil, err
	}
	resolved, err := Resolve(len(items), idxs)
	if err != nil {
		return nil, err
	}
	set := make(map[int]struct{}, len(resolved))
	for _, at := range resolved {
		set[at] = struct{}{}
	}
	return func(_ T, idx int) bool {
		_, ok := set[idx]
		return ok
	}, nil
}
