// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package collate

import (
	"context"
	"fmt"
	"iter"
	"runtime"
	"slices"
	"sync"
	"time"

	"vawter.tech/collate/internal/fault"
	"vawter.tech/collate/pool"
)

// DefaultGatherTimeout bounds how long a concurrent mapping operation
// waits for its workers to deliver results. Override it per call with
// [WithGatherTimeout].
const DefaultGatherTimeout = 10 * time.Second

// An Option configures the concurrent mapping operations.
type Option func(*config)

type config struct {
	gatherTimeout time.Duration
	pool          *pool.Pool
	poolOptions   []pool.Option
	workers       int
}

func newConfig(opts []Option) *config {
	cfg := &config{
		gatherTimeout: DefaultGatherTimeout,
		workers:       runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.gatherTimeout <= 0 {
		cfg.gatherTimeout = DefaultGatherTimeout
	}
	if cfg.workers <= 0 {
		cfg.workers = runtime.GOMAXPROCS(0)
	}
	return cfg
}

// WithGatherTimeout overrides [DefaultGatherTimeout]. An expired
// gather fails the whole operation with [ErrGatherTimeout]; there is
// no per-element cancellation.
func WithGatherTimeout(d time.Duration) Option {
	return func(cfg *config) {
		cfg.gatherTimeout = d
	}
}

// WithPool dispatches work onto a caller-supplied pool instead of an
// ephemeral one. The supplied pool is left running when the operation
// returns; stopping it remains the caller's responsibility.
func WithPool(p *pool.Pool) Option {
	return func(cfg *config) {
		cfg.pool = p
	}
}

// WithPoolOptions supplies startup options for the ephemeral pool
// created by the operation. It is ignored when [WithPool] is used.
func WithPoolOptions(opts ...pool.Option) Option {
	return func(cfg *config) {
		cfg.poolOptions = opts
	}
}

// WithWorkers bounds the number of elements being transformed at any
// one time. The default is [runtime.GOMAXPROCS]. It is ignored when
// [WithPool] is used; the supplied pool's own limits apply instead.
func WithWorkers(n int) Option {
	return func(cfg *config) {
		cfg.workers = n
	}
}

// MapConcurrent materializes the sequence, applies the step to every
// element concurrently, and returns the transformed values in input
// order. Envelopes are collated under [Pattern1], so the first
// failure is returned as the operation's error.
//
// The blocking behavior is all-or-nothing: the call does not return
// until every scattered element has been resolved, and no partial or
// streaming results are exposed.
func MapConcurrent[T any](ctx context.Context, items iter.Seq[T], fn Step[T], opts ...Option) ([]T, error) {
	return MapConcurrentCollate(ctx, Pattern1, items, fn, opts...)
}

// MapConcurrentCollate is a variant of [MapConcurrent] that collates
// the gathered envelopes under the given [Pattern].
func MapConcurrentCollate[T any](ctx context.Context, p Pattern, items iter.Seq[T], fn Step[T], opts ...Option) ([]T, error) {
	if fn == nil {
		return nil, ErrInvalidFunction
	}
	results, err := scatter(ctx, newConfig(opts), slices.Collect(items),
		func(_ int, item T) Result[T] {
			return fn(item)
		})
	if err != nil {
		return nil, err
	}
	return Collate(p, slices.Values(results))
}

// MapConcurrentIndexed is a positional version of [MapConcurrent]:
// the step receives each element's zero-based input position.
func MapConcurrentIndexed[T any](ctx context.Context, items iter.Seq[T], fn IndexedStep[T], opts ...Option) ([]T, error) {
	if fn == nil {
		return nil, ErrInvalidFunction
	}
	results, err := scatter(ctx, newConfig(opts), slices.Collect(items), fn)
	if err != nil {
		return nil, err
	}
	return Collate(Pattern1, slices.Values(results))
}

// scatter dispatches one task per element and gathers the envelopes
// back into submission order.
//
// Worker panics are normalized into failure envelopes wrapping a
// [pool.FaultError], so callers cannot distinguish execution mode
// from error shape. When scatter creates the pool itself, the pool is
// torn down on every exit path; a caller-supplied pool is left
// untouched.
func scatter[T any](ctx context.Context, cfg *config, elems []T, run IndexedStep[T]) ([]Result[T], error) {
	p := cfg.pool
	if owned := p == nil; owned {
		p = pool.New(ctx, append(
			[]pool.Option{pool.WithMaxConcurrency(cfg.workers)},
			cfg.poolOptions...)...)
		defer p.Stop()
	}

	// Each worker owns a single slot; the WaitGroup publishes the
	// writes to the gathering goroutine.
	results := make([]Result[T], len(elems))
	var wg sync.WaitGroup
	for i, item := range elems {
		wg.Add(1)
		err := p.Go(func(tctx context.Context) error {
			defer wg.Done()
			if err := context.Cause(tctx); err != nil {
				// The pool stopped while this task was queued.
				results[i] = Err[T](err)
				return nil
			}
			res, err := fault.RunR(func() (Result[T], error) {
				return run(i, item), nil
			})
			if err != nil {
				res = Err[T](err)
			}
			results[i] = res
			return nil
		})
		if err != nil {
			// Rejected dispatch (a caller-supplied pool that has been
			// stopped) is an element failure, not a panic.
			wg.Done()
			results[i] = Err[T](err)
		}
	}

	gathered := make(chan struct{})
	go func() {
		wg.Wait()
		close(gathered)
	}()

	timer := time.NewTimer(cfg.gatherTimeout)
	defer timer.Stop()
	select {
	case <-gathered:
		return results, nil
	case <-timer.C:
		return nil, fmt.Errorf("%w after %s", ErrGatherTimeout, cfg.gatherTimeout)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
