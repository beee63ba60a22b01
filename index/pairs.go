// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package index

import (
	"cmp"
	"fmt"
	"slices"
)

// A Pair is one entry of a map-like source after materialization into
// an ordered sequence.
type Pair[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// String returns a human-readable representation: "(key, value)".
func (p Pair[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Key, p.Value)
}

// Pairs materializes a map into an ordered sequence of key-value
// pairs. Go maps have no iteration order, so entries are sorted by
// key; positional operations over the result are then deterministic.
func Pairs[K cmp.Ordered, V any](m map[K]V) []Pair[K, V] {
	out := make([]Pair[K, V], 0, len(m))
	for k, v := range m {
		out = append(out, Pair[K, V]{Key: k, Value: v})
	}
	slices.SortFunc(out, func(a, b Pair[K, V]) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return out
}
