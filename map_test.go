// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package collate

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapIsLazy(t *testing.T) {
	r := require.New(t)

	visited := 0
	results, err := Map(slices.Values([]int{1, 2, 3, 4}), func(v int) Result[int] {
		visited++
		return OK(v)
	})
	r.NoError(err)
	// Nothing runs until the sequence is realized.
	r.Zero(visited)

	for range results {
		break
	}
	r.Equal(1, visited)
}

func TestMapValidatesEagerly(t *testing.T) {
	r := require.New(t)

	_, err := Map[int](slices.Values([]int{1}))
	r.ErrorIs(err, ErrInvalidFunctionList)
	_, err = Map[int](slices.Values([]int{1}), nil)
	r.ErrorIs(err, ErrInvalidFunction)
}

func TestMapPanicSurfacesOnRealization(t *testing.T) {
	r := require.New(t)

	results, err := Map(slices.Values([]int{1}), func(v int) Result[int] {
		panic("BOOM")
	})
	r.NoError(err)

	for res := range results {
		r.True(res.IsFailure())
		r.ErrorContains(res.Error(), "BOOM")
	}
}

func TestMapCollateAllSuccess(t *testing.T) {
	r := require.New(t)

	// An always-succeeding pipeline yields a same-length,
	// order-preserving output.
	in := []int{5, 6, 7, 8}
	out, err := MapCollate(Pattern1, slices.Values(in), Fn[int](func(v int) int {
		return v * 2
	}))
	r.NoError(err)
	r.Equal([]int{10, 12, 14, 16}, out)
}

func TestMapCollateHaltsEagerly(t *testing.T) {
	r := require.New(t)

	boom := errors.New("BOOM")
	visited := 0
	_, err := MapCollate(Pattern0, slices.Values([]int{1, 2, 3}), func(v int) Result[int] {
		visited++
		if v == 2 {
			return Err[int](boom)
		}
		return OK(v)
	})
	r.ErrorIs(err, boom)
	r.Equal(2, visited)
}

func TestMapIndexed(t *testing.T) {
	r := require.New(t)

	results, err := MapIndexed(slices.Values([]string{"a", "b", "c"}),
		func(idx int, v string) Result[string] {
			if idx == 1 {
				return Unset[string]()
			}
			return OK(v)
		})
	r.NoError(err)

	out, err := Collate(Pattern2, results)
	r.NoError(err)
	r.Equal([]string{"a", "c"}, out)
}

func TestMapIndexedValidation(t *testing.T) {
	r := require.New(t)

	_, err := MapIndexed[int](slices.Values([]int{1}))
	r.ErrorIs(err, ErrInvalidFunctionList)
	_, err = MapIndexed[int](slices.Values([]int{1}), nil)
	r.ErrorIs(err, ErrInvalidFunction)
}

func TestFilterReject(t *testing.T) {
	r := require.New(t)

	even := func(v int) bool { return v%2 == 0 }
	small := func(v int) bool { return v < 10 }

	kept, err := Filter(slices.Values([]int{1, 2, 3, 4, 12}), even, small)
	r.NoError(err)
	r.Equal([]int{2, 4}, slices.Collect(kept))

	dropped, err := Reject(slices.Values([]int{1, 2, 3, 4, 12}), even, small)
	r.NoError(err)
	// Reject drops anything matching either predicate.
	r.Equal([]int{}, slices.AppendSeq([]int{}, dropped))
}

func TestFilterIndexed(t *testing.T) {
	r := require.New(t)

	evenPos := func(_ string, idx int) bool { return idx%2 == 0 }

	kept, err := FilterIndexed(slices.Values([]string{"a", "b", "c", "d"}), evenPos)
	r.NoError(err)
	r.Equal([]string{"a", "c"}, slices.Collect(kept))

	dropped, err := RejectIndexed(slices.Values([]string{"a", "b", "c", "d"}), evenPos)
	r.NoError(err)
	r.Equal([]string{"b", "d"}, slices.Collect(dropped))
}

func TestFilterValidation(t *testing.T) {
	a := assert.New(t)

	_, err := Filter[int](slices.Values([]int{1}))
	a.ErrorIs(err, ErrInvalidFunctionList)
	_, err = FilterIndexed[int](slices.Values([]int{1}), nil)
	a.ErrorIs(err, ErrInvalidFunction)
}
