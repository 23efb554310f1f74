// Package fixture loads declarative layout scenes from YAML. A fixture
// names a viewport and a node tree with inline CSS, so layout cases can be
// written as data files instead of construction code.
package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"flexlay/pkg/css"
	"flexlay/pkg/layout"
)

// Document is one fixture file.
type Document struct {
	Viewport Viewport `yaml:"viewport"`
	Root     *Node    `yaml:"root"`
}

// Viewport gives the available size handed to the engine. A zero or
// negative axis means unconstrained.
type Viewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Node describes one element: a kind, inline CSS declarations, optional
// fixed measurement results for leaf content, and children.
type Node struct {
	Type     string   `yaml:"type"`
	CSS      string   `yaml:"css"`
	Metrics  *Metrics `yaml:"metrics"`
	Children []*Node  `yaml:"children"`
}

// Metrics pins a leaf's measured content sizes.
type Metrics struct {
	MinWidth float64  `yaml:"min-width"`
	MaxWidth float64  `yaml:"max-width"`
	Height   float64  `yaml:"height"`
	Baseline *float64 `yaml:"baseline"`
}

// Parse decodes a fixture document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}
	if doc.Root == nil {
		return nil, fmt.Errorf("fixture: missing root node")
	}
	return &doc, nil
}

// LoadFile reads and decodes a fixture file.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fixture: %s: %w", path, err)
	}
	return doc, nil
}

// Build constructs the layout tree the document describes.
func (d *Document) Build() (*layout.Tree, layout.NodeID, error) {
	tree := layout.NewTree()
	root, err := buildNode(tree, d.Root)
	if err != nil {
		return nil, layout.NilNode, err
	}
	return tree, root, nil
}

func buildNode(tree *layout.Tree, spec *Node) (layout.NodeID, error) {
	kind := spec.Type
	if kind == "" {
		kind = "box"
	}
	id := tree.NewNode(kind, css.ParseInlineStyle(spec.CSS))

	if spec.Metrics != nil {
		m := *spec.Metrics
		tree.SetMeasure(id, func() layout.Metrics {
			out := layout.Metrics{
				MinContentWidth: m.MinWidth,
				MaxContentWidth: m.MaxWidth,
				Height:          m.Height,
			}
			if m.Baseline != nil {
				out.Baseline = *m.Baseline
				out.HasBaseline = true
			}
			return out
		})
	}

	for i, child := range spec.Children {
		if child == nil {
			return layout.NilNode, fmt.Errorf("fixture: %s: child %d is empty", kind, i)
		}
		childID, err := buildNode(tree, child)
		if err != nil {
			return layout.NilNode, err
		}
		tree.AddChild(id, childID)
	}
	return id, nil
}

// Layout builds the tree and runs the engine over it with the document's
// viewport. Unset viewport axes are passed as unconstrained.
func (d *Document) Layout(engine *layout.LayoutEngine) (*layout.Tree, layout.NodeID, error) {
	tree, root, err := d.Build()
	if err != nil {
		return nil, layout.NilNode, err
	}
	w := d.Viewport.Width
	h := d.Viewport.Height
	if w <= 0 {
		w = layout.Indefinite
	}
	if h <= 0 {
		h = layout.Indefinite
	}
	if engine == nil {
		engine = layout.NewLayoutEngine()
	}
	if err := engine.Layout(tree, root, w, h); err != nil {
		return nil, layout.NilNode, err
	}
	return tree, root, nil
}
