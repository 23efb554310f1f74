package layout

import "flexlay/pkg/css"

// computeHypotheticalSizes derives each item's hypothetical main size: the
// flex base size clamped to the item's [min, max] main constraints. Target
// sizes start out at the hypothetical size; the resolver refines them.
func computeHypotheticalSizes(items []*FlexItem) {
	for _, it := range items {
		it.HypotheticalMain = clampSize(it.Basis, it.MinMain, it.MaxMain)
		it.TargetMain = it.HypotheticalMain
	}
}

// buildFlexLines packs items into one or more flex lines. With nowrap all
// items form a single line regardless of overflow. Otherwise items
// accumulate until adding the next one would exceed the available main size
// and the line already holds at least one item. wrap-reverse flips line
// order after all lines are built; item order within a line is untouched.
func (le *LayoutEngine) buildFlexLines(c *FlexContainer, items []*FlexItem) {
	c.Lines = nil
	if len(items) == 0 {
		return
	}

	singleLine := c.Wrap == css.FlexWrapNowrap || !c.DefiniteMain()
	if singleLine {
		line := &FlexLine{Items: items}
		line.MainSize = lineMainExtent(c, items)
		c.Lines = []*FlexLine{line}
		return
	}

	var current []*FlexItem
	currentSize := 0.0
	for _, it := range items {
		outer := it.OuterMain(it.HypotheticalMain)
		candidate := currentSize + outer
		if len(current) > 0 {
			candidate += c.MainGap
		}
		if len(current) > 0 && candidate > c.AvailableMain {
			line := &FlexLine{Items: current, MainSize: currentSize}
			c.Lines = append(c.Lines, line)
			current = nil
			currentSize = 0
			candidate = outer
		}
		current = append(current, it)
		currentSize = candidate
	}
	if len(current) > 0 {
		c.Lines = append(c.Lines, &FlexLine{Items: current, MainSize: currentSize})
	}

	if c.Wrap == css.FlexWrapWrapReverse {
		for i, j := 0, len(c.Lines)-1; i < j; i, j = i+1, j-1 {
			c.Lines[i], c.Lines[j] = c.Lines[j], c.Lines[i]
		}
	}
}

// lineMainExtent sums the outer hypothetical sizes of items plus gaps.
func lineMainExtent(c *FlexContainer, items []*FlexItem) float64 {
	total := 0.0
	for i, it := range items {
		if i > 0 {
			total += c.MainGap
		}
		total += it.OuterMain(it.HypotheticalMain)
	}
	return total
}
