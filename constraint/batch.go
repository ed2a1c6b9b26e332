// SPDX-License-Identifier: MIT

package constraint

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lexfsm/automaton"
)

// BuildAll builds the automaton of every image in imageIDs using at most
// WithWorkers concurrent builds. The first failure cancels the remaining
// work and is returned; otherwise results are keyed by image id.
// Duplicate ids are built once.
func BuildAll(ctx context.Context, src Source, imageIDs []int, opts ...Option) (map[int]*automaton.Result, error) {
	if src == nil {
		return nil, fmt.Errorf("BuildAll: %w", ErrNilDependency)
	}
	c := newConfig(opts...)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	var mu sync.Mutex
	out := make(map[int]*automaton.Result, len(imageIDs))
	seen := make(map[int]struct{}, len(imageIDs))
	for _, id := range imageIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		id := id // per-iteration copy (go.mod targets go1.21 loop semantics)
		g.Go(func() error {
			res, err := src.StateMatrix(gctx, id)
			if err != nil {
				return fmt.Errorf("BuildAll: image %d: %w", id, err)
			}
			mu.Lock()
			out[id] = res
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		c.log.Warn("batch build failed", zap.Error(err))
		return nil, err
	}
	c.log.Debug("batch built", zap.Int("images", len(out)), zap.Int("workers", c.workers))

	return out, nil
}
