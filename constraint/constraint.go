// SPDX-License-Identifier: MIT

// Package constraint serves per-image constraint automata to a decoder:
// a Provider selects the candidate phrases of an image from its detections
// and builds the phrase automaton; Free always serves the unconstrained one.
// BuildAll fans a batch of images out over a bounded worker pool.
package constraint

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lexfsm/automaton"
	"github.com/katalvlaran/lexfsm/candidates"
)

// ErrUnknownImage is returned for an image id absent from the dataset.
var ErrUnknownImage = errors.New("constraint: unknown image")

// ErrNilDependency is returned when a constructor receives a nil collaborator.
var ErrNilDependency = errors.New("constraint: nil dependency")

// Source yields the automaton for one image.
type Source interface {
	StateMatrix(ctx context.Context, imageID int) (*automaton.Result, error)
}

// Detections is the read-only detection store a Provider draws from.
// *candidates.Dataset implements it.
type Detections interface {
	candidates.NameTable
	Detections(imageID int) ([]candidates.Detection, bool)
}

// Provider builds phrase automata from detections.
type Provider struct {
	dets     Detections
	selector *candidates.Selector
	builder  automaton.Builder
	log      *zap.Logger
}

// NewProvider wires a detection store, a selector and a builder.
// Returns ErrNilDependency when any of them is nil.
func NewProvider(dets Detections, sel *candidates.Selector, b automaton.Builder, opts ...Option) (*Provider, error) {
	if dets == nil || sel == nil || b == nil {
		return nil, fmt.Errorf("NewProvider: %w", ErrNilDependency)
	}
	c := newConfig(opts...)

	return &Provider{dets: dets, selector: sel, builder: b, log: c.log}, nil
}

// StateMatrix selects the candidate phrases of imageID and builds their
// automaton. ctx is checked once before building; the build itself is
// bounded and not interruptible.
func (p *Provider) StateMatrix(ctx context.Context, imageID int) (*automaton.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dets, ok := p.dets.Detections(imageID)
	if !ok {
		return nil, fmt.Errorf("Provider.StateMatrix(%d): %w", imageID, ErrUnknownImage)
	}
	phrases := p.selector.Select(dets, p.dets)
	res, err := p.builder.Build(phrases)
	if err != nil {
		return nil, fmt.Errorf("Provider.StateMatrix(%d): %w", imageID, err)
	}
	p.log.Debug("state matrix ready",
		zap.Int("image_id", imageID),
		zap.Strings("phrases", phrases),
		zap.Int("states", res.States))

	return res, nil
}

// Free serves the unconstrained automaton for every image.
type Free struct {
	null *automaton.NullBuilder
}

// NewFree returns a Free source over a vocabulary of vocabSize tokens.
func NewFree(vocabSize int) (*Free, error) {
	nb, err := automaton.NewNullBuilder(vocabSize)
	if err != nil {
		return nil, fmt.Errorf("NewFree: %w", err)
	}

	return &Free{null: nb}, nil
}

// StateMatrix returns the one-state automaton regardless of imageID.
func (f *Free) StateMatrix(ctx context.Context, _ int) (*automaton.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return f.null.Build(nil)
}
