// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package index addresses elements of a sequence by position.
//
// An index specification describes target positions: a single
// (possibly negative) integer, a [Range], nested lists of either, or
// the [First], [Last], and [Append] tokens. [Normalize] flattens a
// specification into a concrete list of positions and [Resolve]
// validates it against a sequence of known length, converting
// negative indices so that -1 addresses the last element.
//
// The value-at operations — [FetchAt], [GetAt], [InsertAt],
// [DeleteAt], [ReplaceAt], and [MapAt] — materialize their source
// before resolving positions. This is a real limitation, not an
// oversight: a negative index cannot be resolved against an unbounded
// source, so these operations are only usable with finite sequences.
//
// A nil specification means "no filtering" for [FetchAt] and [GetAt]
// but "every position" for [InsertAt], [DeleteAt], and [ReplaceAt];
// in particular, DeleteAt with a nil specification deletes the entire
// sequence.
package index
