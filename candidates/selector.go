// SPDX-License-Identifier: MIT

package candidates

import (
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/lexfsm/vocab"
)

// Selector ranks and normalizes detections into constraint phrases.
type Selector struct {
	cfg config
}

// NewSelector returns a Selector configured by opts.
func NewSelector(opts ...Option) *Selector {
	return &Selector{cfg: newConfig(opts...)}
}

// entry is a detection that survived filtering, with its class name.
type entry struct {
	det  Detection
	name string
}

// Select returns up to TopK distinct phrases for dets, highest confidence
// first. Detections whose category names cannot resolve are skipped.
func (s *Selector) Select(dets []Detection, names NameTable) []string {
	kept := s.filter(dets, names)
	kept = s.suppress(kept)

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].det.Score > kept[j].det.Score
	})
	if len(kept) > s.cfg.topK {
		kept = kept[:s.cfg.topK]
	}

	phrases := make([]string, 0, len(kept))
	seen := make(map[string]struct{}, len(kept))
	for _, e := range kept {
		text := vocab.Normalize(e.name)
		if r, ok := s.cfg.replacements[text]; ok {
			text = r
		}
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}
		phrases = append(phrases, text)
	}

	s.cfg.log.Debug("candidates selected",
		zap.Int("detections", len(dets)),
		zap.Int("kept", len(kept)),
		zap.Strings("phrases", phrases))

	return phrases
}

// filter drops low-confidence, blacklisted and unnamed detections.
func (s *Selector) filter(dets []Detection, names NameTable) []entry {
	out := make([]entry, 0, len(dets))
	for _, d := range dets {
		name, ok := names.ClassName(d.CategoryID)
		if !ok {
			continue
		}
		if d.Score <= s.cfg.minScore {
			continue
		}
		if _, banned := s.cfg.blacklist[name]; banned {
			continue
		}
		out = append(out, entry{det: d, name: name})
	}

	return out
}

// suppress runs hierarchy-guided NMS. Boxes are visited from the lowest
// hierarchy height, ties broken by higher score then input order; a box is
// dropped when it overlaps any kept box above the IoU threshold. Survivors
// are returned in visit order, which decides ties in the later score sort.
func (s *Selector) suppress(in []entry) []entry {
	order := make([]int, len(in))
	for i := range order {
		order[i] = i
	}
	h := s.cfg.hierarchy
	sort.SliceStable(order, func(a, b int) bool {
		ha, hb := h.Height(in[order[a]].name), h.Height(in[order[b]].name)
		if ha != hb {
			return ha < hb
		}
		return in[order[a]].det.Score > in[order[b]].det.Score
	})

	var kept []int
	for _, i := range order {
		overlap := false
		for _, k := range kept {
			if IoU(in[i].det.BBox, in[k].det.BBox) > s.cfg.iouThreshold {
				overlap = true
				break
			}
		}
		if !overlap {
			kept = append(kept, i)
		}
	}

	out := make([]entry, 0, len(kept))
	for _, i := range kept {
		out = append(out, in[i])
	}

	return out
}
