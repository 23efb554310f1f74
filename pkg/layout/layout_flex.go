package layout

import (
	"fmt"

	"flexlay/pkg/css"
)

// layoutFlex runs the full pipeline for one container: collect items, sort
// by order, compute hypothetical sizes, pack lines, resolve flexible
// lengths, resolve cross sizes, position both axes, write geometry back, and
// recurse into items that are themselves containers. It returns the
// container's resolved content-box width and height.
func (le *LayoutEngine) layoutFlex(tree *Tree, id NodeID, availableWidth, availableHeight float64, depth int) (float64, float64, error) {
	if depth >= le.maxDepth {
		return 0, 0, fmt.Errorf("%w: nesting depth %d", ErrDepthExceeded, depth)
	}

	node := tree.Node(id)
	c := newFlexContainer(node.Style, availableWidth, availableHeight)

	items, err := le.collectFlexItems(tree, id, c)
	if err != nil {
		return 0, 0, err
	}
	if len(items) == 0 {
		// Zero participating items: definite axes keep their given size,
		// content-driven axes collapse to zero. Never an error.
		w, h := 0.0, 0.0
		if availableWidth >= 0 {
			w = availableWidth
		}
		if availableHeight >= 0 {
			h = availableHeight
		}
		return w, h, nil
	}

	sortFlexItemsByOrder(items)
	computeHypotheticalSizes(items)
	le.buildFlexLines(c, items)

	for _, line := range c.Lines {
		le.resolveFlexibleLengths(c, line)
	}
	le.resolveCrossSizes(tree, c)
	le.placeMainAxis(c)
	cross := le.placeCrossAxis(c)

	main := c.AvailableMain
	if !c.DefiniteMain() {
		main = 0
		for _, line := range c.Lines {
			if extent := usedMainExtent(c, line); extent > main {
				main = extent
			}
		}
	}

	if err := le.placeItems(tree, c, depth); err != nil {
		return 0, 0, err
	}

	if c.IsRow {
		return main, cross, nil
	}
	return cross, main, nil
}

// placeItems writes each item's final border-box rect into the tree, in the
// container's local coordinate space, then triggers layout of the item's own
// content with the now-fixed content box as available space: nested flex
// containers recurse into this engine, block content dispatches to the
// external BlockLayout collaborator, leaves are done.
func (le *LayoutEngine) placeItems(tree *Tree, c *FlexContainer, depth int) error {
	for _, line := range c.Lines {
		for _, it := range line.Items {
			n := tree.Node(it.ID)

			var r Rect
			var pbW, pbH float64
			if c.IsRow {
				r = Rect{
					X:      it.MainPos,
					Y:      line.CrossPos + it.CrossPos,
					Width:  it.PBMain + it.MainSize,
					Height: it.PBCross + it.CrossSize,
				}
				pbW, pbH = it.PBMain, it.PBCross
			} else {
				r = Rect{
					X:      line.CrossPos + it.CrossPos,
					Y:      it.MainPos,
					Width:  it.PBCross + it.CrossSize,
					Height: it.PBMain + it.MainSize,
				}
				pbW, pbH = it.PBCross, it.PBMain
			}
			n.Rect = r
			n.Baseline = it.Baseline
			n.HasBaseline = it.HasBaseline
			n.Laid = true

			if len(n.Children) == 0 {
				continue
			}
			contentW := r.Width - pbW
			contentH := r.Height - pbH
			if n.Style.GetDisplay() == css.DisplayFlex {
				if _, _, err := le.layoutFlex(tree, it.ID, contentW, contentH, depth+1); err != nil {
					return err
				}
			} else if le.BlockLayout != nil {
				if err := le.BlockLayout(tree, it.ID, contentW, contentH); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
