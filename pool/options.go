// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pool

import (
	"errors"

	"golang.org/x/time/rate"
)

// An Option configures a [Pool] during construction with [New].
type Option func(*config)

type config struct {
	limiter        *rate.Limiter
	maxConcurrency int
	name           string
}

// WithMaxConcurrency limits the number of tasks executing at any one
// time. Excess tasks block until a slot is available. A pool without
// this option runs every dispatched task immediately.
func WithMaxConcurrency(limit int) Option {
	if limit <= 0 {
		panic(errors.New("limit must be greater than zero"))
	}
	return func(cfg *config) {
		cfg.maxConcurrency = limit
	}
}

// WithMaxRate limits the rate at which tasks begin executing to r
// starts per second, with a burst allowance of b. Blocked tasks run
// once the enclosed [rate.Limiter] permits.
func WithMaxRate(r float64, b int) Option {
	if r <= 0 {
		panic(errors.New("rate must be greater than zero"))
	}
	return func(cfg *config) {
		cfg.limiter = rate.NewLimiter(rate.Limit(r), b)
	}
}

// WithName attaches a descriptive name to the pool for debugging
// output. The default name is "pool".
func WithName(name string) Option {
	return func(cfg *config) {
		cfg.name = name
	}
}
