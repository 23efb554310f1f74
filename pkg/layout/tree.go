package layout

import "flexlay/pkg/css"

// NodeID is a handle into a Tree's node arena. The engine passes these
// around instead of pointers so that its transient per-pass structures have
// no lifetime coupling to the persistent tree.
type NodeID int

// NilNode is the zero-value-adjacent invalid handle.
const NilNode NodeID = -1

// Rect is a node's resolved border-box geometry in its parent container's
// local coordinate space.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Metrics is the result of a content measurement probe: the intrinsic
// min-content and max-content widths, the content height at max-content
// width, and the first baseline (ascent from the box top), if any.
type Metrics struct {
	MinContentWidth float64
	MaxContentWidth float64
	Height          float64
	Baseline        float64
	HasBaseline     bool
}

// MeasureFunc measures a leaf node's content with a single unconstrained
// probe. It must be side-effect free; the engine may call it more than once.
type MeasureFunc func() Metrics

// Node is one slot in the caller-owned box tree. Style and Measure are
// inputs; Rect, Baseline, and Laid are outputs written by the engine.
type Node struct {
	Kind     string // caller's label for the node, carried into snapshots
	Style    *css.Style
	Measure  MeasureFunc
	Children []NodeID

	Rect        Rect
	Baseline    float64
	HasBaseline bool
	Laid        bool
}

// Tree is an arena of nodes. It owns node identity; the engine only ever
// reads the structure and writes back geometry.
type Tree struct {
	nodes []Node
}

func NewTree() *Tree {
	return &Tree{}
}

// NewNode appends a node to the arena and returns its handle.
func (t *Tree) NewNode(kind string, style *css.Style) NodeID {
	t.nodes = append(t.nodes, Node{Kind: kind, Style: style})
	return NodeID(len(t.nodes) - 1)
}

// AddChild appends child to parent's child list, preserving document order.
func (t *Tree) AddChild(parent, child NodeID) {
	if !t.Valid(parent) || !t.Valid(child) {
		return
	}
	p := t.Node(parent)
	p.Children = append(p.Children, child)
}

// Node returns the arena slot for id. The pointer is valid until the next
// NewNode call.
func (t *Tree) Node(id NodeID) *Node {
	return &t.nodes[id]
}

// Valid reports whether id refers to a node in this tree.
func (t *Tree) Valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// Len returns the number of nodes in the arena.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// SetMeasure attaches a content measurement callback to a leaf node.
func (t *Tree) SetMeasure(id NodeID, fn MeasureFunc) {
	if t.Valid(id) {
		t.Node(id).Measure = fn
	}
}

// Walk visits id and its subtree in document order.
func (t *Tree) Walk(id NodeID, visit func(NodeID, *Node)) {
	if !t.Valid(id) {
		return
	}
	n := t.Node(id)
	visit(id, n)
	for _, c := range n.Children {
		t.Walk(c, visit)
	}
}
