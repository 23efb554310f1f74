package layout

import "flexlay/pkg/css"

// resolveCrossSizes determines each item's cross size and each line's cross
// size. An item with a specified cross-axis size uses it (clamped); anything
// else takes its intrinsic cross size for now and may be stretched once the
// line's extent is known. A single line in a container with a definite cross
// size spans that size outright.
func (le *LayoutEngine) resolveCrossSizes(tree *Tree, c *FlexContainer) {
	for _, line := range c.Lines {
		maxOuter := 0.0
		for _, it := range line.Items {
			st := tree.Node(it.ID).Style

			if size, ok := st.GetSize(!c.IsRow); ok {
				it.CrossSize = clampSize(size, it.MinCross, it.MaxCross)
				it.CrossAuto = false
			} else {
				it.CrossSize = clampSize(le.intrinsicCrossSize(tree, it, c), it.MinCross, it.MaxCross)
				it.CrossAuto = true
			}

			if c.IsRow {
				if m := tree.Node(it.ID).Measure; m != nil {
					metrics := m()
					if metrics.HasBaseline {
						it.Baseline = it.PBCrossStart + metrics.Baseline
						it.HasBaseline = true
					}
				}
			}

			if outer := it.OuterCross(it.CrossSize); outer > maxOuter {
				maxOuter = outer
			}
		}
		line.CrossSize = maxOuter
	}

	// A definite container cross size overrides the computed cross size of
	// a single line.
	if len(c.Lines) == 1 && c.DefiniteCross() {
		c.Lines[0].CrossSize = c.AvailableCross
	}

	// Stretch pass: items whose alignment resolves to stretch and whose
	// cross size property is auto fill the line, re-clamped against their
	// own cross constraints just like main sizes are in the freeze loop.
	for _, line := range c.Lines {
		for _, it := range line.Items {
			if it.AlignSelf != css.AlignSelfStretch || !it.CrossAuto {
				continue
			}
			target := line.CrossSize - it.MarginCrossStart - it.MarginCrossEnd - it.PBCross
			it.CrossSize = clampSize(target, it.MinCross, it.MaxCross)
		}
	}
}

// placeCrossAxis positions lines within the container and items within their
// lines, and returns the container's resolved content-box cross size.
func (le *LayoutEngine) placeCrossAxis(c *FlexContainer) float64 {
	if len(c.Lines) == 0 {
		if c.DefiniteCross() {
			return c.AvailableCross
		}
		return 0
	}

	totalLines := c.CrossGap * float64(len(c.Lines)-1)
	for _, line := range c.Lines {
		totalLines += line.CrossSize
	}

	leftover := 0.0
	if c.DefiniteCross() && len(c.Lines) > 1 {
		leftover = c.AvailableCross - totalLines
	}

	offset, spacing := alignContentOffsets(c.AlignContent, leftover, len(c.Lines))
	if c.AlignContent == css.AlignContentStretch && leftover > 0 {
		// Stretch grows every line equally instead of spacing them out.
		extra := leftover / float64(len(c.Lines))
		for _, line := range c.Lines {
			line.CrossSize += extra
		}
		offset, spacing = 0, 0
	}

	pos := offset
	for _, line := range c.Lines {
		line.CrossPos = pos
		pos += line.CrossSize + c.CrossGap + spacing

		// Line ascent: the max baseline among baseline-aligned members,
		// measured from the line's cross start including the member's
		// leading margin.
		line.Baseline = 0
		for _, it := range line.Items {
			if it.AlignSelf == css.AlignSelfBaseline && it.HasBaseline {
				if a := it.MarginCrossStart + it.Baseline; a > line.Baseline {
					line.Baseline = a
				}
			}
		}

		for _, it := range line.Items {
			it.CrossPos = alignItemCross(it, line)
		}
	}

	cross := totalLines
	if c.DefiniteCross() {
		cross = c.AvailableCross
	}
	return cross
}

// alignItemCross returns an item's border-box offset from its line's cross
// start. Baseline-aligned items without a baseline fall back to start.
func alignItemCross(it *FlexItem, line *FlexLine) float64 {
	switch it.AlignSelf {
	case css.AlignSelfFlexEnd:
		return line.CrossSize - it.MarginCrossEnd - it.PBCross - it.CrossSize
	case css.AlignSelfCenter:
		return it.MarginCrossStart + (line.CrossSize-it.OuterCross(it.CrossSize))/2
	case css.AlignSelfBaseline:
		if it.HasBaseline {
			return line.Baseline - it.Baseline
		}
		return it.MarginCrossStart
	default: // flex-start, stretch
		return it.MarginCrossStart
	}
}

// alignContentOffsets maps align-content onto a leading offset and spacing
// between lines, mirroring justifyOffsets for the cross axis.
func alignContentOffsets(mode css.AlignContent, leftover float64, n int) (offset, spacing float64) {
	if leftover <= 0 {
		return 0, 0
	}
	switch mode {
	case css.AlignContentFlexEnd:
		return leftover, 0
	case css.AlignContentCenter:
		return leftover / 2, 0
	case css.AlignContentSpaceBetween:
		if n > 1 {
			return 0, leftover / float64(n-1)
		}
		return 0, 0
	case css.AlignContentSpaceAround:
		spacing = leftover / float64(n)
		return spacing / 2, spacing
	case css.AlignContentSpaceEvenly:
		spacing = leftover / float64(n+1)
		return spacing, spacing
	case css.AlignContentFlexStart:
		return 0, 0
	default: // stretch is handled by the caller growing the lines
		return 0, 0
	}
}
