// SPDX-License-Identifier: MIT

package constraint

import (
	"runtime"

	"go.uber.org/zap"
)

// Option configures a Provider or BuildAll.
type Option func(*config)

type config struct {
	workers int
	log     *zap.Logger
}

// DefaultWorkers returns the worker count BuildAll uses without WithWorkers.
func DefaultWorkers() int { return runtime.GOMAXPROCS(0) }

func newConfig(opts ...Option) config {
	c := config{workers: DefaultWorkers(), log: zap.NewNop()}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithWorkers bounds BuildAll concurrency. Panics if n <= 0.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic("constraint: WithWorkers(n<=0)")
	}
	return func(c *config) { c.workers = n }
}

// WithLogger routes diagnostics to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("constraint: WithLogger(nil)")
	}
	return func(c *config) { c.log = l }
}
