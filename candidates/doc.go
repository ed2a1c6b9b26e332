// Package candidates turns raw per-image object detections into the ordered
// list of constraint phrases an automaton builder consumes.
//
// Pipeline (Selector.Select):
//
//  1. Filter: drop detections scoring ≤ MinScore or whose class is blacklisted
//     (overly generic classes such as "Tree", "Person", "Human hand").
//  2. Suppress: hierarchy-guided non-maximum suppression; boxes are visited
//     from the most specific class (lowest hierarchy height) down, and a box
//     overlapping an already-kept one above the IoU threshold is dropped.
//  3. Rank: stable sort by confidence, highest first, keep TopK.
//  4. Normalize: lower-case, apply the replacement table
//     ("wood-burning stove" → "wood burning stove"), de-duplicate.
//
// Data sources:
//
//   - Dataset:   COCO-style detection JSON ("annotations" + "categories").
//   - Hierarchy: Open-Images-style class tree ("LabelName" / "Subcategory").
//
// Both are loaded once and read-only afterwards; a Selector is safe for
// concurrent use.
package candidates
