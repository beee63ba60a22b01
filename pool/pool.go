// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pool

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/time/rate"

	"vawter.tech/collate/internal/fault"
)

// ErrStopped is returned by [Pool.Go] once [Pool.Stop] has been
// called. It is also the cancellation cause of the context passed to
// tasks.
var ErrStopped = errors.New("pool stopped")

// A FaultError is produced when a task panics. It captures the
// goroutine stack at the point of the panic and unwraps to the
// panicking value.
type FaultError = fault.Error

// A Task is a unit of work dispatched onto a [Pool]. The context is
// canceled, with [ErrStopped] as its cause, once the pool begins
// stopping.
type Task func(ctx context.Context) error

// A Pool supervises a group of worker goroutines.
//
// A Pool tracks every goroutine started via [Pool.Go], aggregates the
// errors they return, and guarantees that [Pool.Wait] does not unblock
// until all of them have exited. Panics raised by tasks are recovered
// and surfaced as a [FaultError] rather than crashing the process.
//
// Pools are single-use: once [Pool.Stop] has been called, new work is
// rejected and the pool cannot be restarted. This property is what
// makes a pool safe to hand to a scoped operation; the operation stops
// the pool on every exit path and callers can verify the teardown by
// observing [ErrStopped] from a subsequent dispatch.
//
// All methods on a Pool are safe for concurrent use.
type Pool struct {
	name    string
	sctx    context.Context // Canceled when Stop begins.
	scancel context.CancelCauseFunc
	done    chan struct{} // Closed when stopped and drained.
	sem     chan struct{} // Nil when concurrency is unbounded.
	limiter *rate.Limiter // Nil when dispatch rate is unbounded.

	finishOnce sync.Once

	mu struct {
		sync.Mutex
		count    int
		stopping bool
		deferred []func() error // Invoked LIFO by finish.
		errs     []error
	}
}

// New returns a ready-to-use Pool. Canceling the parent context stops
// the pool.
func New(ctx context.Context, opts ...Option) *Pool {
	cfg := &config{name: "pool"}
	for _, opt := range opts {
		opt(cfg)
	}

	sctx, scancel := context.WithCancelCause(ctx)
	p := &Pool{
		name:    cfg.name,
		sctx:    sctx,
		scancel: scancel,
		done:    make(chan struct{}),
	}
	if cfg.maxConcurrency > 0 {
		p.sem = make(chan struct{}, cfg.maxConcurrency)
	}
	p.limiter = cfg.limiter

	// Propagate a parent cancellation into a Stop call so that the
	// done channel always closes. This goroutine is left untracked
	// since it doesn't represent user-provided work.
	go func() {
		<-sctx.Done()
		p.Stop()
	}()
	return p
}

// AddError appends additional errors to the value returned by
// [Pool.Wait]. This is useful when the pool is stopped in response to
// some external condition.
func (p *Pool) AddError(errs ...error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, err := range errs {
		if err != nil {
			p.mu.errs = append(p.mu.errs, err)
		}
	}
}

// Active returns true until [Pool.Stop] has been called.
func (p *Pool) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.mu.stopping
}

// Defer registers a callback that will be executed after [Pool.Stop]
// has been called and all tasks have exited. Callbacks run in LIFO
// order; any error they return is available from [Pool.Wait].
//
// If the pool has already stopped and drained, the callback runs
// immediately and Defer returns false.
func (p *Pool) Defer(fn func() error) (deferred bool) {
	p.mu.Lock()
	invokeNow := p.mu.stopping && p.mu.count == 0
	if !invokeNow {
		p.mu.deferred = append(p.mu.deferred, fn)
	}
	p.mu.Unlock()

	if invokeNow {
		// Don't execute user code while holding the mutex.
		if err := fault.Run(fn); err != nil {
			p.AddError(err)
		}
		return false
	}
	return true
}

// Done returns a channel that closes once the pool has stopped and all
// tasks and deferred callbacks have completed.
func (p *Pool) Done() <-chan struct{} { return p.done }

// Go dispatches the task onto a new worker goroutine.
//
// Once Go returns nil, the task is guaranteed to be invoked exactly
// once, and [Pool.Wait] will not unblock before it has returned. If
// the pool is already stopping, nothing is spawned and [ErrStopped] is
// returned.
//
// Any error returned by the task, including a [FaultError] from a
// recovered panic, is reported through [Pool.Wait].
func (p *Pool) Go(fn Task) error {
	if !p.apply(1) {
		return ErrStopped
	}
	go func() {
		defer p.apply(-1)
		if release := p.admit(); release != nil {
			defer release()
		}
		if err := fault.Run(func() error {
			return fn(p.sctx)
		}); err != nil {
			p.AddError(err)
		}
	}()
	return nil
}

// Len returns the number of tasks currently tracked by the pool.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mu.count
}

// Name returns the configured pool name.
func (p *Pool) Name() string { return p.name }

// Stop begins shutting down the pool.
//
// New tasks are rejected with [ErrStopped] and the task context is
// canceled. Once all running tasks have exited, deferred callbacks run
// and the [Pool.Done] channel closes. Stop is idempotent and does not
// block.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.mu.stopping {
		p.mu.Unlock()
		return
	}
	p.mu.stopping = true
	idle := p.mu.count == 0
	p.mu.Unlock()

	p.scancel(ErrStopped)
	if idle {
		p.finish()
	}
}

// Stopping returns a channel that closes when [Pool.Stop] has been
// called or the parent context has been canceled.
func (p *Pool) Stopping() <-chan struct{} { return p.sctx.Done() }

// String is for debugging use only.
func (p *Pool) String() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return fmt.Sprintf("%s: (%d tasks) (%d errors) (stopping=%t)",
		p.name, p.mu.count, len(p.mu.errs), p.mu.stopping)
}

// Wait blocks until the pool has stopped and all tasks have exited,
// then returns the joined errors reported by tasks, deferred
// callbacks, and [Pool.AddError].
func (p *Pool) Wait() error {
	return p.WaitCtx(context.Background())
}

// WaitCtx is an interruptable version of [Pool.Wait]. If the
// argument's Done channel closes first, the argument's Err value is
// returned.
func (p *Pool) WaitCtx(ctx context.Context) error {
	select {
	case <-p.done:
	case <-ctx.Done():
		return ctx.Err()
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return errors.Join(p.mu.errs...)
}

// admit applies the rate and concurrency gates. The gates only delay
// execution: once the pool begins stopping, queued tasks run
// immediately with a canceled context so that callers tracking task
// completion are never stranded.
func (p *Pool) admit() (release func()) {
	if p.limiter != nil {
		// The only error is a canceled context; run anyway.
		_ = p.limiter.Wait(p.sctx)
	}
	if p.sem == nil {
		return nil
	}
	select {
	case p.sem <- struct{}{}:
		return func() { <-p.sem }
	case <-p.sctx.Done():
		return nil
	}
}

// apply maintains the count of running tasks. It returns false if a
// positive delta is rejected because the pool is stopping.
func (p *Pool) apply(delta int) bool {
	p.mu.Lock()
	if delta > 0 && p.mu.stopping {
		p.mu.Unlock()
		return false
	}
	p.mu.count += delta
	fin := p.mu.stopping && p.mu.count == 0
	p.mu.Unlock()

	if fin {
		p.finish()
	}
	return true
}

// finish runs deferred callbacks in LIFO order and closes the done
// channel. It is called at most once, after the pool has stopped and
// the task count has reached zero.
func (p *Pool) finish() {
	p.finishOnce.Do(func() {
		p.mu.Lock()
		deferred := p.mu.deferred
		p.mu.deferred = nil
		p.mu.Unlock()

		for i := len(deferred) - 1; i >= 0; i-- {
			if err := fault.Run(deferred[i]); err != nil {
				p.AddError(err)
			}
		}
		close(p.done)
	})
}
