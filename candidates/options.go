// SPDX-License-Identifier: MIT
// Package: lexfsm/candidates
//
// options.go - functional options and documented defaults for Selector.
// Option constructors panic on meaningless values (programmer error);
// Select itself never panics.

package candidates

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/lexfsm/vocab"
)

// Defaults (single source of truth).
const (
	// DefaultTopK is the number of highest-scoring classes kept per image.
	DefaultTopK = 3

	// DefaultMinScore is the exclusive lower bound on detection confidence.
	DefaultMinScore = 0.01

	// DefaultIoUThreshold is the overlap above which NMS suppresses a box.
	DefaultIoUThreshold = 0.8
)

// defaultBlacklist lists classes too generic to be useful constraints.
var defaultBlacklist = []string{
	"Tree", "Building", "Plant", "Man", "Woman", "Person", "Boy", "Girl",
	"Human eye", "Skull", "Human head", "Human face", "Human mouth",
	"Human ear", "Human nose", "Human hair", "Human hand", "Human foot",
	"Human arm", "Human leg", "Human beard", "Human body",
	"Vehicle registration plate", "Wheel", "Seat belt", "Tire",
	"Bicycle wheel", "Auto part", "Door handle", "Clothing", "Footwear",
	"Fashion accessory", "Sports equipment", "Hiking equipment", "Mammal",
	"Personal care", "Bathroom accessory", "Plumbing fixture", "Land vehicle",
}

// defaultReplacements rewrites class names that do not read as phrases.
var defaultReplacements = map[string]string{
	"band-aid":                    "bandaid",
	"wood-burning stove":          "wood burning stove",
	"kitchen & dining room table": "table",
	"salt and pepper shakers":     "salt and pepper",
	"power plugs and sockets":     "power plugs",
	"luggage and bags":            "luggage",
}

// DefaultBlacklist returns a copy of the built-in class blacklist.
func DefaultBlacklist() []string {
	return append([]string(nil), defaultBlacklist...)
}

// DefaultReplacements returns a copy of the built-in replacement table.
func DefaultReplacements() map[string]string {
	out := make(map[string]string, len(defaultReplacements))
	for k, v := range defaultReplacements {
		out[k] = v
	}

	return out
}

// Option customizes a Selector.
type Option func(*config)

type config struct {
	topK         int
	minScore     float64
	iouThreshold float64
	blacklist    map[string]struct{}
	replacements map[string]string
	hierarchy    *Hierarchy
	log          *zap.Logger
}

func newConfig(opts ...Option) config {
	c := config{
		topK:         DefaultTopK,
		minScore:     DefaultMinScore,
		iouThreshold: DefaultIoUThreshold,
		log:          zap.NewNop(),
	}
	WithBlacklist(defaultBlacklist)(&c)
	WithReplacements(defaultReplacements)(&c)
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithTopK keeps the k highest-scoring classes. Panics if k <= 0.
func WithTopK(k int) Option {
	if k <= 0 {
		panic("candidates: WithTopK(k<=0)")
	}
	return func(c *config) { c.topK = k }
}

// WithMinScore sets the exclusive confidence floor. Panics on NaN/Inf.
func WithMinScore(s float64) Option {
	if math.IsNaN(s) || math.IsInf(s, 0) {
		panic("candidates: WithMinScore: score must be finite")
	}
	return func(c *config) { c.minScore = s }
}

// WithIoUThreshold sets the NMS overlap threshold. Panics outside (0, 1].
func WithIoUThreshold(th float64) Option {
	if !(th > 0 && th <= 1) {
		panic("candidates: WithIoUThreshold: threshold must be in (0,1]")
	}
	return func(c *config) { c.iouThreshold = th }
}

// WithBlacklist replaces the class blacklist; names match exactly.
// An empty list disables blacklisting.
func WithBlacklist(classes []string) Option {
	return func(c *config) {
		c.blacklist = make(map[string]struct{}, len(classes))
		for _, cls := range classes {
			c.blacklist[cls] = struct{}{}
		}
	}
}

// WithReplacements replaces the phrase replacement table. Keys are
// normalized the same way class names are before matching.
func WithReplacements(table map[string]string) Option {
	return func(c *config) {
		c.replacements = make(map[string]string, len(table))
		for k, v := range table {
			c.replacements[vocab.Normalize(k)] = vocab.Normalize(v)
		}
	}
}

// WithHierarchy enables hierarchy-guided NMS ordering. Panics on nil.
func WithHierarchy(h *Hierarchy) Option {
	if h == nil {
		panic("candidates: WithHierarchy(nil)")
	}
	return func(c *config) { c.hierarchy = h }
}

// WithLogger routes selection diagnostics to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("candidates: WithLogger(nil)")
	}
	return func(c *config) { c.log = l }
}
