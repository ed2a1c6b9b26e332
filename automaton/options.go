// SPDX-License-Identifier: MIT
// Package: lexfsm/automaton
//
// options.go - functional options for builders.
//
// Contract:
//   • Option constructors validate and PANIC on nil callbacks/loggers
//     (programmer error). Build itself never panics.
//   • No hidden globals; everything flows through config.

package automaton

import "go.uber.org/zap"

// Option customizes a builder before its first Build.
type Option func(*config)

// config holds the resolved builder settings.
type config struct {
	log          *zap.Logger
	onEmptyGroup func(candidate int, word string)
	onConnect    func(from, to int, tokens []int)
}

// newConfig applies opts over the defaults: a no-op logger and no-op hooks.
func newConfig(opts ...Option) config {
	c := config{
		log:          zap.NewNop(),
		onEmptyGroup: func(int, string) {},
		onConnect:    func(int, int, []int) {},
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithLogger routes build diagnostics to l.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("automaton: WithLogger(nil)")
	}
	return func(c *config) {
		c.log = l
	}
}

// WithOnEmptyGroup registers fn, called whenever a phrase word resolves to no
// known token. The affected lattice edges stay unreachable.
// Panics on nil.
func WithOnEmptyGroup(fn func(candidate int, word string)) Option {
	if fn == nil {
		panic("automaton: WithOnEmptyGroup(nil)")
	}
	return func(c *config) {
		c.onEmptyGroup = fn
	}
}

// WithOnConnect registers fn, called after every successful tensor Connect
// with the edge endpoints and its token group. fn must not retain tokens.
// Panics on nil.
func WithOnConnect(fn func(from, to int, tokens []int)) Option {
	if fn == nil {
		panic("automaton: WithOnConnect(nil)")
	}
	return func(c *config) {
		c.onConnect = fn
	}
}
