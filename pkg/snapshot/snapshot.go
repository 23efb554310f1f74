package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"flexlay/pkg/layout"
)

// Box is an element's resolved border-box geometry in absolute coordinates.
type Box struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Element is one node of a layout snapshot. Snapshots serialize to JSON and
// serve as reference files for differential layout tests.
type Element struct {
	Type          string            `json:"type"`
	Layout        Box               `json:"layout"`
	CSSProperties map[string]string `json:"css_properties,omitempty"`
	Children      []*Element        `json:"children,omitempty"`
}

// Capture walks a laid-out tree and produces a snapshot rooted at root.
// Node rects are local to the parent container; Capture composes them into
// absolute page coordinates. Children skipped by layout (display:none,
// out-of-flow) are omitted.
func Capture(tree *layout.Tree, root layout.NodeID) (*Element, error) {
	if tree == nil || !tree.Valid(root) {
		return nil, fmt.Errorf("snapshot: invalid root node")
	}
	n := tree.Node(root)
	if !n.Laid {
		return nil, fmt.Errorf("snapshot: tree has not been laid out")
	}
	return capture(tree, root, 0, 0), nil
}

func capture(tree *layout.Tree, id layout.NodeID, offsetX, offsetY float64) *Element {
	n := tree.Node(id)
	el := &Element{
		Type: n.Kind,
		Layout: Box{
			X:      offsetX + n.Rect.X,
			Y:      offsetY + n.Rect.Y,
			Width:  n.Rect.Width,
			Height: n.Rect.Height,
		},
	}
	if n.Style != nil && len(n.Style.Properties) > 0 {
		el.CSSProperties = make(map[string]string, len(n.Style.Properties))
		for k, v := range n.Style.Properties {
			el.CSSProperties[k] = v
		}
	}

	// Children are positioned inside this node's content box.
	childX := el.Layout.X
	childY := el.Layout.Y
	if n.Style != nil {
		p := n.Style.GetPadding()
		b := n.Style.GetBorderWidth()
		childX += p.Left + b.Left
		childY += p.Top + b.Top
	}
	for _, childID := range n.Children {
		if !tree.Node(childID).Laid {
			continue
		}
		el.Children = append(el.Children, capture(tree, childID, childX, childY))
	}
	return el
}

// Marshal encodes a snapshot as indented JSON with a trailing newline.
func Marshal(el *Element) ([]byte, error) {
	data, err := json.MarshalIndent(el, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("snapshot: encode: %w", err)
	}
	return append(data, '\n'), nil
}

// Save writes a snapshot as indented JSON, creating parent directories.
func Save(el *Element, path string) error {
	data, err := Marshal(el)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("snapshot: create output directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads a snapshot file written by Save.
func Load(path string) (*Element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: read %s: %w", path, err)
	}
	var el Element
	if err := json.Unmarshal(data, &el); err != nil {
		return nil, fmt.Errorf("snapshot: decode %s: %w", path, err)
	}
	return &el, nil
}

// CompareOptions configures snapshot comparison.
type CompareOptions struct {
	// Tolerance: maximum allowed difference per geometry field, in pixels.
	// Recommended: 1-2 to absorb rounding differences, 0 for exact match.
	Tolerance float64

	// MaxMismatchPercent: if > 0, pass when the percentage of mismatching
	// elements is <= this value. 0 requires every element to match.
	MaxMismatchPercent float64
}

// DefaultOptions returns sensible defaults for snapshot comparison.
func DefaultOptions() CompareOptions {
	return CompareOptions{Tolerance: 2}
}

// Mismatch records one geometry field that differs beyond tolerance.
type Mismatch struct {
	Path     string
	Field    string
	Actual   float64
	Expected float64
}

// CompareResult contains the results of a snapshot comparison.
type CompareResult struct {
	Match           bool
	TotalElements   int
	MatchedElements int
	Mismatches      []Mismatch
}

// MatchPercent is the share of elements whose geometry matched, 0-100.
func (r *CompareResult) MatchPercent() float64 {
	if r.TotalElements == 0 {
		return 100
	}
	return float64(r.MatchedElements) / float64(r.TotalElements) * 100
}

// Compare checks actual against expected element by element. Structural
// differences (element type, child count) are reported as mismatches on the
// offending path, with the whole missing subtree counted as failed.
func Compare(actual, expected *Element, opts CompareOptions) *CompareResult {
	result := &CompareResult{Match: true}
	compareElement(actual, expected, "root", opts, result)

	if !result.Match && opts.MaxMismatchPercent > 0 {
		pct := 100 - result.MatchPercent()
		if pct <= opts.MaxMismatchPercent {
			result.Match = true
		}
	}
	return result
}

// CompareFiles loads both snapshot files and compares them.
func CompareFiles(actualPath, expectedPath string, opts CompareOptions) (*CompareResult, error) {
	actual, err := Load(actualPath)
	if err != nil {
		return nil, err
	}
	expected, err := Load(expectedPath)
	if err != nil {
		return nil, err
	}
	return Compare(actual, expected, opts), nil
}

func compareElement(actual, expected *Element, path string, opts CompareOptions, result *CompareResult) {
	result.TotalElements++

	if actual.Type != expected.Type {
		result.Match = false
		result.Mismatches = append(result.Mismatches, Mismatch{
			Path: path, Field: "type",
		})
		// The element itself is already counted; charge its subtree too.
		result.TotalElements += countElements(expected) - 1
		return
	}

	fields := []struct {
		name             string
		actual, expected float64
	}{
		{"x", actual.Layout.X, expected.Layout.X},
		{"y", actual.Layout.Y, expected.Layout.Y},
		{"width", actual.Layout.Width, expected.Layout.Width},
		{"height", actual.Layout.Height, expected.Layout.Height},
	}
	ok := true
	for _, f := range fields {
		if abs(f.actual-f.expected) > opts.Tolerance {
			ok = false
			result.Mismatches = append(result.Mismatches, Mismatch{
				Path: path, Field: f.name, Actual: f.actual, Expected: f.expected,
			})
		}
	}
	if ok {
		result.MatchedElements++
	} else {
		result.Match = false
	}

	n := len(actual.Children)
	if len(expected.Children) < n {
		n = len(expected.Children)
	}
	if len(actual.Children) != len(expected.Children) {
		result.Match = false
		result.Mismatches = append(result.Mismatches, Mismatch{
			Path: path, Field: "children",
			Actual: float64(len(actual.Children)), Expected: float64(len(expected.Children)),
		})
	}
	for i := 0; i < n; i++ {
		compareElement(actual.Children[i], expected.Children[i],
			fmt.Sprintf("%s/%s[%d]", path, actual.Children[i].Type, i), opts, result)
	}
	for _, missed := range expected.Children[n:] {
		result.TotalElements += countElements(missed)
	}
}

func countElements(el *Element) int {
	total := 1
	for _, c := range el.Children {
		total += countElements(c)
	}
	return total
}

// Summary renders a short human-readable report, worst mismatches first.
func (r *CompareResult) Summary() string {
	if r.Match {
		return fmt.Sprintf("match: %d/%d elements (%.1f%%)",
			r.MatchedElements, r.TotalElements, r.MatchPercent())
	}
	out := fmt.Sprintf("mismatch: %d/%d elements (%.1f%%)\n",
		r.MatchedElements, r.TotalElements, r.MatchPercent())
	mm := make([]Mismatch, len(r.Mismatches))
	copy(mm, r.Mismatches)
	sort.SliceStable(mm, func(i, j int) bool {
		return abs(mm[i].Actual-mm[i].Expected) > abs(mm[j].Actual-mm[j].Expected)
	})
	limit := len(mm)
	if limit > 10 {
		limit = 10
	}
	for _, m := range mm[:limit] {
		out += fmt.Sprintf("  %s %s: got %.2f, want %.2f\n", m.Path, m.Field, m.Actual, m.Expected)
	}
	return out
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
