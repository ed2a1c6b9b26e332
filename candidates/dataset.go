// SPDX-License-Identifier: MIT

package candidates

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"go.uber.org/zap"
)

// BBox is an axis-aligned box as [x1, y1, x2, y2].
type BBox [4]float64

// Area returns the box area; degenerate boxes have zero area.
func (b BBox) Area() float64 {
	return (b[2] - b[0]) * (b[3] - b[1])
}

// IoU returns the intersection-over-union of a and b, 0 when either is empty.
func IoU(a, b BBox) float64 {
	iw := min(a[2], b[2]) - max(a[0], b[0])
	ih := min(a[3], b[3]) - max(a[1], b[1])
	if iw <= 0 || ih <= 0 {
		return 0
	}
	inter := iw * ih
	union := a.Area() + b.Area() - inter
	if union <= 0 {
		return 0
	}

	return inter / union
}

// Detection is one detector output for an image.
type Detection struct {
	ImageID    int
	BBox       BBox
	CategoryID int
	Score      float64
}

// NameTable resolves a category id to its class name.
type NameTable interface {
	ClassName(categoryID int) (string, bool)
}

// Dataset indexes detections by image id.
type Dataset struct {
	byImage map[int][]Detection
	names   map[int]string
}

// rawDataset mirrors the on-disk JSON layout.
type rawDataset struct {
	Annotations []struct {
		ImageID    int      `json:"image_id"`
		BBox       BBox     `json:"bbox"`
		CategoryID int      `json:"category_id"`
		Score      *float64 `json:"score"`
	} `json:"annotations"`
	Categories []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"categories"`
}

// BoxFormat names the coordinate layout of annotation boxes on disk.
type BoxFormat int

const (
	// BoxXYXY stores corners as [x1, y1, x2, y2].
	BoxXYXY BoxFormat = iota
	// BoxXYWH stores COCO-style [x, y, width, height].
	BoxXYWH
)

// LoadOption customizes LoadDataset.
type LoadOption func(*loadConfig)

type loadConfig struct {
	format BoxFormat
	log    *zap.Logger
}

// WithBoxFormat sets the on-disk box layout; boxes are always stored as
// [x1, y1, x2, y2] after loading. Panics on an unknown format.
func WithBoxFormat(f BoxFormat) LoadOption {
	if f != BoxXYXY && f != BoxXYWH {
		panic("candidates: WithBoxFormat: unknown format")
	}
	return func(c *loadConfig) { c.format = f }
}

// WithLoadLogger routes loading diagnostics to l. Panics on nil.
func WithLoadLogger(l *zap.Logger) LoadOption {
	if l == nil {
		panic("candidates: WithLoadLogger(nil)")
	}
	return func(c *loadConfig) { c.log = l }
}

// LoadDataset decodes a COCO-style detection file. Annotations without a
// score get score 1. Boxes are taken as they are; an inverted box is kept and
// logged at Warn, and IoU treats it as empty. Returns ErrDecode or
// ErrUnknownCategory.
func LoadDataset(r io.Reader, opts ...LoadOption) (*Dataset, error) {
	cfg := loadConfig{format: BoxXYXY, log: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	var raw rawDataset
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("LoadDataset: %w: %v", ErrDecode, err)
	}
	ds := &Dataset{
		byImage: make(map[int][]Detection),
		names:   make(map[int]string, len(raw.Categories)),
	}
	for _, c := range raw.Categories {
		ds.names[c.ID] = c.Name
	}
	for i, a := range raw.Annotations {
		if _, ok := ds.names[a.CategoryID]; !ok {
			return nil, fmt.Errorf("LoadDataset: annotation %d: category %d: %w", i, a.CategoryID, ErrUnknownCategory)
		}
		box := a.BBox
		if cfg.format == BoxXYWH {
			box = BBox{box[0], box[1], box[0] + box[2], box[1] + box[3]}
		}
		if box[2] < box[0] || box[3] < box[1] {
			cfg.log.Warn("inverted bounding box",
				zap.Int("annotation", i),
				zap.Int("image_id", a.ImageID),
				zap.Float64s("bbox", box[:]))
		}
		score := 1.0
		if a.Score != nil {
			score = *a.Score
		}
		ds.byImage[a.ImageID] = append(ds.byImage[a.ImageID], Detection{
			ImageID:    a.ImageID,
			BBox:       box,
			CategoryID: a.CategoryID,
			Score:      score,
		})
	}

	return ds, nil
}

// LoadDatasetFile opens path and delegates to LoadDataset.
func LoadDatasetFile(path string, opts ...LoadOption) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadDatasetFile: %w", err)
	}
	defer f.Close()

	return LoadDataset(f, opts...)
}

// Detections returns the detections of imageID; ok is false for images the
// dataset has never seen. The slice must not be modified.
func (d *Dataset) Detections(imageID int) (dets []Detection, ok bool) {
	dets, ok = d.byImage[imageID]
	return dets, ok
}

// ClassName implements NameTable.
func (d *Dataset) ClassName(categoryID int) (string, bool) {
	name, ok := d.names[categoryID]
	return name, ok
}

// Images returns every image id with at least one detection, ascending.
func (d *Dataset) Images() []int {
	ids := make([]int, 0, len(d.byImage))
	for id := range d.byImage {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}
