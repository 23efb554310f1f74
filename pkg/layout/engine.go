package layout

import (
	"errors"
	"fmt"
)

// Indefinite marks an available size as unknown ("max-content sizing").
// Any negative value is treated the same way.
const Indefinite = -1.0

// ErrUnresolvedInput reports a contract violation: the engine was invoked on
// a node without resolved styles, or with a handle outside the tree.
// Detecting this early is cheaper than debugging wrong pixel output.
var ErrUnresolvedInput = errors.New("layout: unresolved input")

// ErrDepthExceeded reports that nested containers recursed past the
// configured depth ceiling.
var ErrDepthExceeded = errors.New("layout: container nesting too deep")

// DefaultMaxDepth bounds call-stack recursion into nested containers.
const DefaultMaxDepth = 64

// LayoutEngine computes flex layout for a container subtree. One call
// processes one subtree to completion; the engine holds no per-pass state,
// so a single engine value may be reused across calls.
type LayoutEngine struct {
	maxDepth int

	// BlockLayout, when set, is invoked for items whose content is block
	// (non-flex) content, with the item's resolved content box as available
	// space. The flex engine never inspects what such content is.
	BlockLayout func(tree *Tree, id NodeID, availableWidth, availableHeight float64) error
}

func NewLayoutEngine() *LayoutEngine {
	return &LayoutEngine{maxDepth: DefaultMaxDepth}
}

// SetMaxDepth overrides the nesting ceiling for pathological trees.
func (le *LayoutEngine) SetMaxDepth(depth int) {
	if depth > 0 {
		le.maxDepth = depth
	}
}

// Layout lays out the flex container at root and its subtree.
// availableWidth/availableHeight are the container's content-box sizes as
// resolved by the caller's parent layout pass; pass Indefinite for an axis
// the caller has not constrained. Results are written into the tree's nodes:
// the root's Rect gets the container's resolved content-box size at (0,0),
// and every participating descendant gets a border-box Rect in its parent
// container's local coordinate space.
func (le *LayoutEngine) Layout(tree *Tree, root NodeID, availableWidth, availableHeight float64) error {
	if tree == nil {
		return fmt.Errorf("%w: nil tree", ErrUnresolvedInput)
	}
	if !tree.Valid(root) {
		return fmt.Errorf("%w: node %d outside tree", ErrUnresolvedInput, root)
	}
	if tree.Node(root).Style == nil {
		return fmt.Errorf("%w: node %d has no resolved style", ErrUnresolvedInput, root)
	}

	w, h, err := le.layoutFlex(tree, root, availableWidth, availableHeight, 0)
	if err != nil {
		return err
	}

	n := tree.Node(root)
	n.Rect = Rect{X: 0, Y: 0, Width: w, Height: h}
	n.Laid = true
	return nil
}
