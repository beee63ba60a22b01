// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tcs := []struct {
		name string
		spec any
		want []int
	}{
		{"int", 3, []int{3}},
		{"negative", -1, []int{-1}},
		{"int64", int64(7), []int{7}},
		{"uint8", uint8(2), []int{2}},
		{"list", []int{0, 1, 2}, []int{0, 1, 2}},
		{"duplicates", []int{1, 1, 0}, []int{1, 1, 0}},
		{"ascending range", Range{1, 3}, []int{1, 2, 3}},
		{"descending range", Range{3, 1}, []int{3, 2, 1}},
		{"single range", Range{2, 2}, []int{2}},
		{"first", First, []int{0}},
		{"last", Last, []int{-1}},
		{"nested", []any{0, Range{2, 3}, Last}, []int{0, 2, 3, -1}},
		{"typed slice", []int8{4, 5}, []int{4, 5}},
		{"array", [2]int{8, 9}, []int{8, 9}},
		{"map values sorted by key", map[string]int{"b": 2, "a": 1}, []int{1, 2}},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Normalize(tc.spec)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	r := require.New(t)

	once, err := Normalize([]any{First, Range{1, 2}, -1})
	r.NoError(err)
	twice, err := Normalize(once)
	r.NoError(err)
	r.Equal(once, twice)
}

func TestNormalizeInvalid(t *testing.T) {
	a := assert.New(t)

	for _, spec := range []any{nil, "nope", 1.5, []any{0, "nope"}, Append} {
		_, err := Normalize(spec)
		a.ErrorIs(err, ErrInvalidSpec, "spec %v", spec)
	}
}

func TestNormalizeClones(t *testing.T) {
	r := require.New(t)

	spec := []int{0, 1}
	got, err := Normalize(spec)
	r.NoError(err)
	got[0] = 99
	r.Equal([]int{0, 1}, spec)
}

func TestResolve(t *testing.T) {
	r := require.New(t)

	got, err := Resolve(3, []int{0, -1, -3, 2})
	r.NoError(err)
	r.Equal([]int{0, 2, 0, 2}, got)
}

func TestResolveOutOfRange(t *testing.T) {
	r := require.New(t)

	_, err := Resolve(3, []int{0, 3})
	r.ErrorIs(err, ErrIndexOutOfRange)
	r.Contains(err.Error(), "3")

	// Multiple failures are all reported, as written by the caller.
	_, err = Resolve(3, []int{99, 0, -4})
	r.ErrorIs(err, ErrIndicesOutOfRange)
	r.Contains(err.Error(), "99")
	r.Contains(err.Error(), "-4")
}

func TestMatcher(t *testing.T) {
	r := require.New(t)

	items := []string{"a", "b", "c"}

	match, err := Matcher(items, nil)
	r.NoError(err)
	r.True(match("a", 0))
	r.True(match("c", 2))

	match, err = Matcher(items, []int{0, -1})
	r.NoError(err)
	r.True(match("a", 0))
	r.False(match("b", 1))
	r.True(match("c", 2))

	match, err = Matcher(items, func(s string, _ int) bool { return s == "b" })
	r.NoError(err)
	r.False(match("a", 0))
	r.True(match("b", 1))

	_, err = Matcher(items, 99)
	r.ErrorIs(err, ErrIndexOutOfRange)
}
