// SPDX-License-Identifier: MIT

package candidates

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Hierarchy stores each class's height: the number of edges on the longest
// downward path to a leaf. Leaves (the most specific classes) have height 0.
type Hierarchy struct {
	height map[string]int
}

// hierarchyNode mirrors the Open Images hierarchy JSON.
type hierarchyNode struct {
	LabelName   string          `json:"LabelName"`
	Subcategory []hierarchyNode `json:"Subcategory"`
}

// LoadHierarchy decodes a class tree. A class listed under several parents
// keeps its largest height. Returns ErrDecode on malformed input.
func LoadHierarchy(r io.Reader) (*Hierarchy, error) {
	var root hierarchyNode
	if err := json.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("LoadHierarchy: %w: %v", ErrDecode, err)
	}
	h := &Hierarchy{height: make(map[string]int)}
	h.walk(&root)

	return h, nil
}

// LoadHierarchyFile opens path and delegates to LoadHierarchy.
func LoadHierarchyFile(path string) (*Hierarchy, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadHierarchyFile: %w", err)
	}
	defer f.Close()

	return LoadHierarchy(f)
}

// walk records the height of n and its descendants, post-order.
func (h *Hierarchy) walk(n *hierarchyNode) int {
	height := 0
	for i := range n.Subcategory {
		if c := h.walk(&n.Subcategory[i]) + 1; c > height {
			height = c
		}
	}
	if n.LabelName != "" && height >= h.height[n.LabelName] {
		h.height[n.LabelName] = height
	}

	return height
}

// Height returns the height of class, 0 for classes not in the tree.
// A nil Hierarchy treats every class as a leaf.
func (h *Hierarchy) Height(class string) int {
	if h == nil {
		return 0
	}

	return h.height[class]
}

// Len returns the number of classes in the tree.
func (h *Hierarchy) Len() int { return len(h.height) }
