package layout

import "flexlay/pkg/css"

// Intrinsic sizing is the bottom-up half of the engine: an item's flex basis
// cannot be computed until its content's natural size is known. Leaf nodes
// answer through their caller-supplied MeasureFunc (one unconstrained
// probe); nested containers answer recursively from their children.

// intrinsicMainSize returns a node's content-based size along the parent's
// main axis, used when flex-basis resolves to auto with no specified size.
func (le *LayoutEngine) intrinsicMainSize(tree *Tree, id NodeID, mainHorizontal bool) float64 {
	if mainHorizontal {
		return le.ComputeMinMaxSizes(tree, id).MaxContentSize
	}
	return le.contentHeight(tree, id)
}

// intrinsicCrossSize returns an item's content-based size along the
// container's cross axis, used when the item has no specified cross size.
func (le *LayoutEngine) intrinsicCrossSize(tree *Tree, it *FlexItem, c *FlexContainer) float64 {
	if c.IsRow {
		return le.contentHeight(tree, it.ID)
	}
	return le.ComputeMinMaxSizes(tree, it.ID).MaxContentSize
}

// ComputeMinMaxSizes calculates a node's intrinsic min-content and
// max-content widths. Leaves are measured; flex containers aggregate their
// children: a row sums max-content widths (plus gaps) and a column takes the
// widest child. Min-content of a wrapping row is its widest single item,
// since every soft wrap opportunity may be taken.
func (le *LayoutEngine) ComputeMinMaxSizes(tree *Tree, id NodeID) MinMaxSizes {
	node := tree.Node(id)

	// A specified width settles both intrinsic sizes outright.
	if node.Style != nil {
		if w, ok := node.Style.GetSize(true); ok {
			return MinMaxSizes{MinContentSize: w, MaxContentSize: w}
		}
	}
	if node.Measure != nil {
		m := node.Measure()
		return MinMaxSizes{MinContentSize: m.MinContentWidth, MaxContentSize: m.MaxContentWidth}
	}

	style := node.Style
	if style == nil || len(node.Children) == 0 {
		return MinMaxSizes{}
	}

	row := true
	wrap := false
	if style.GetDisplay() == css.DisplayFlex {
		dir := style.GetFlexDirection()
		row = dir == css.FlexDirectionRow || dir == css.FlexDirectionRowReverse
		wrap = style.GetFlexWrap() != css.FlexWrapNowrap
	}
	gap := style.GetColumnGap()

	var sizes MinMaxSizes
	contributors := 0
	for _, childID := range node.Children {
		child := tree.Node(childID)
		if skipIntrinsic(child) {
			continue
		}
		cs := le.ComputeMinMaxSizes(tree, childID)
		extraW := horizontalExtras(child.Style)

		if row {
			if contributors > 0 {
				sizes.MaxContentSize += gap
			}
			sizes.MaxContentSize += cs.MaxContentSize + extraW
			if wrap {
				if m := cs.MinContentSize + extraW; m > sizes.MinContentSize {
					sizes.MinContentSize = m
				}
			} else {
				sizes.MinContentSize += cs.MinContentSize + extraW
			}
		} else {
			if m := cs.MaxContentSize + extraW; m > sizes.MaxContentSize {
				sizes.MaxContentSize = m
			}
			if m := cs.MinContentSize + extraW; m > sizes.MinContentSize {
				sizes.MinContentSize = m
			}
		}
		contributors++
	}
	return sizes
}

// contentHeight returns a node's natural content-box height.
func (le *LayoutEngine) contentHeight(tree *Tree, id NodeID) float64 {
	node := tree.Node(id)

	if node.Style != nil {
		if h, ok := node.Style.GetSize(false); ok {
			return h
		}
	}
	if node.Measure != nil {
		return node.Measure().Height
	}

	style := node.Style
	if style == nil || len(node.Children) == 0 {
		return 0
	}

	row := true
	if style.GetDisplay() == css.DisplayFlex {
		dir := style.GetFlexDirection()
		row = dir == css.FlexDirectionRow || dir == css.FlexDirectionRowReverse
	}
	gap := style.GetRowGap()

	total := 0.0
	contributors := 0
	for _, childID := range node.Children {
		child := tree.Node(childID)
		if skipIntrinsic(child) {
			continue
		}
		h := le.contentHeight(tree, childID) + verticalExtras(child.Style)
		if row {
			if h > total {
				total = h
			}
		} else {
			if contributors > 0 {
				total += gap
			}
			total += h
		}
		contributors++
	}
	return total
}

// skipIntrinsic reports whether a child contributes nothing to its parent's
// intrinsic size (out of flow or display:none).
func skipIntrinsic(n *Node) bool {
	if n.Style == nil {
		return true
	}
	if n.Style.GetDisplay() == css.DisplayNone {
		return true
	}
	switch n.Style.GetPosition() {
	case css.PositionAbsolute, css.PositionFixed:
		return true
	}
	return false
}

// horizontalExtras sums a box's horizontal margins, padding, and border.
func horizontalExtras(s *css.Style) float64 {
	if s == nil {
		return 0
	}
	m := s.GetMargin()
	p := s.GetPadding()
	b := s.GetBorderWidth()
	return m.Left + m.Right + p.Left + p.Right + b.Left + b.Right
}

// verticalExtras sums a box's vertical margins, padding, and border.
func verticalExtras(s *css.Style) float64 {
	if s == nil {
		return 0
	}
	m := s.GetMargin()
	p := s.GetPadding()
	b := s.GetBorderWidth()
	return m.Top + m.Bottom + p.Top + p.Bottom + b.Top + b.Bottom
}
