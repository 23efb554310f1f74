package layout

import (
	"fmt"
	"sort"

	"flexlay/pkg/css"
)

// newFlexContainer maps the container's style and available box onto
// main/cross axis terms for one resolution pass.
func newFlexContainer(style *css.Style, availableWidth, availableHeight float64) *FlexContainer {
	direction := style.GetFlexDirection()
	isRow := direction == css.FlexDirectionRow || direction == css.FlexDirectionRowReverse

	c := &FlexContainer{
		Direction:      direction,
		Wrap:           style.GetFlexWrap(),
		JustifyContent: style.GetJustifyContent(),
		AlignItems:     style.GetAlignItems(),
		AlignContent:   style.GetAlignContent(),
		IsRow:          isRow,
		MainReverse: direction == css.FlexDirectionRowReverse ||
			direction == css.FlexDirectionColumnReverse,
	}

	if isRow {
		c.AvailableMain = availableWidth
		c.AvailableCross = availableHeight
		c.MainGap = style.GetColumnGap()
		c.CrossGap = style.GetRowGap()
	} else {
		c.AvailableMain = availableHeight
		c.AvailableCross = availableWidth
		c.MainGap = style.GetRowGap()
		c.CrossGap = style.GetColumnGap()
	}
	return c
}

// collectFlexItems walks the container's children and produces one FlexItem
// per in-flow, visible child. Out-of-flow (absolute/fixed) and display:none
// children do not participate; their nodes are left untouched for the caller
// to position separately. Malformed numeric inputs have already been clamped
// by the style getters; a child without a resolved style is a contract
// violation surfaced as ErrUnresolvedInput.
func (le *LayoutEngine) collectFlexItems(tree *Tree, id NodeID, c *FlexContainer) ([]*FlexItem, error) {
	node := tree.Node(id)
	items := make([]*FlexItem, 0, len(node.Children))

	for i, childID := range node.Children {
		child := tree.Node(childID)
		st := child.Style
		if st == nil {
			return nil, fmt.Errorf("%w: child %d of node %d has no resolved style", ErrUnresolvedInput, i, id)
		}

		if st.GetDisplay() == css.DisplayNone {
			continue
		}
		switch st.GetPosition() {
		case css.PositionAbsolute, css.PositionFixed:
			continue
		}

		margin := st.GetMargin()
		padding := st.GetPadding()
		border := st.GetBorderWidth()

		item := &FlexItem{
			ID:        childID,
			Index:     i,
			Grow:      st.GetFlexGrow(),
			Shrink:    st.GetFlexShrink(),
			Order:     st.GetOrder(),
			AlignSelf: resolveAlignSelf(st.GetAlignSelf(), c.AlignItems),
		}

		if c.IsRow {
			item.MarginMainStart = margin.Left
			item.MarginMainEnd = margin.Right
			item.MarginCrossStart = margin.Top
			item.MarginCrossEnd = margin.Bottom
			item.AutoMarginStart = st.IsMarginAuto("left")
			item.AutoMarginEnd = st.IsMarginAuto("right")
			item.PBMain = padding.Left + padding.Right + border.Left + border.Right
			item.PBCross = padding.Top + padding.Bottom + border.Top + border.Bottom
			item.PBCrossStart = padding.Top + border.Top
		} else {
			item.MarginMainStart = margin.Top
			item.MarginMainEnd = margin.Bottom
			item.MarginCrossStart = margin.Left
			item.MarginCrossEnd = margin.Right
			item.AutoMarginStart = st.IsMarginAuto("top")
			item.AutoMarginEnd = st.IsMarginAuto("bottom")
			item.PBMain = padding.Top + padding.Bottom + border.Top + border.Bottom
			item.PBCross = padding.Left + padding.Right + border.Left + border.Right
			item.PBCrossStart = padding.Left + border.Left
		}

		item.MinMain = st.GetMinSize(c.IsRow)
		item.MaxMain = st.GetMaxSize(c.IsRow)
		item.MinCross = st.GetMinSize(!c.IsRow)
		item.MaxCross = st.GetMaxSize(!c.IsRow)

		item.Basis, item.BasisAuto = st.GetFlexBasis(c.AvailableMain)
		if item.BasisAuto {
			// flex-basis: auto falls back to the specified main-size
			// property, then to the item's intrinsic max-content size.
			if size, ok := st.GetSize(c.IsRow); ok {
				item.Basis = size
			} else {
				item.Basis = le.intrinsicMainSize(tree, childID, c.IsRow)
			}
		}
		item.ScaledShrinkFactor = item.Shrink * item.Basis

		items = append(items, item)
	}

	return items, nil
}

// resolveAlignSelf maps align-self: auto to the container's align-items.
func resolveAlignSelf(self css.AlignSelf, items css.AlignItems) css.AlignSelf {
	if self != css.AlignSelfAuto {
		return self
	}
	switch items {
	case css.AlignItemsFlexStart:
		return css.AlignSelfFlexStart
	case css.AlignItemsFlexEnd:
		return css.AlignSelfFlexEnd
	case css.AlignItemsCenter:
		return css.AlignSelfCenter
	case css.AlignItemsBaseline:
		return css.AlignSelfBaseline
	default:
		return css.AlignSelfStretch
	}
}

// sortFlexItemsByOrder sorts items by the order property. The sort is
// stable: items with equal order keep their document position.
func sortFlexItemsByOrder(items []*FlexItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Order < items[j].Order
	})
}
