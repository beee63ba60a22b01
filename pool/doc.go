// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package pool provides a supervised, single-use worker pool.
//
// A [Pool] tracks the goroutines started through it, recovers panics
// into errors, and guarantees that its [Pool.Done] channel closes only
// after every task and deferred callback has completed. The concurrent
// mapping operations in the parent collate package create one
// ephemeral Pool per call and stop it before returning; callers that
// want to amortize pool construction across calls can create a Pool
// themselves and pass it through the mapping options.
//
// # Lifecycle
//
//	p := pool.New(ctx, pool.WithMaxConcurrency(8))
//	_ = p.Go(func(ctx context.Context) error { return work(ctx) })
//	p.Stop()
//	err := p.Wait()
//
// Stopping is one-way: after [Pool.Stop], dispatch via [Pool.Go]
// returns [ErrStopped] and the pool can never be restarted.
//
// # Execution limits
//
// [WithMaxConcurrency] bounds the number of simultaneously executing
// tasks with a semaphore, and [WithMaxRate] throttles task starts
// through a [golang.org/x/time/rate.Limiter]. Both gates delay
// execution rather than rejecting work.
package pool
