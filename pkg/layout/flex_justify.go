package layout

import "flexlay/pkg/css"

// placeMainAxis positions each line's items along the main axis. Auto
// margins consume the line's leftover space first; whatever remains goes to
// justify-content. The fixed main gap always separates adjacent items and is
// never altered by justification. For row-reverse and column-reverse the
// finished positions are mirrored across the container's main extent, which
// reverses item placement without touching line membership or order.
func (le *LayoutEngine) placeMainAxis(c *FlexContainer) {
	containerMain := c.AvailableMain
	if !c.DefiniteMain() {
		containerMain = 0
		for _, line := range c.Lines {
			extent := usedMainExtent(c, line)
			if extent > containerMain {
				containerMain = extent
			}
		}
	}

	for _, line := range c.Lines {
		n := len(line.Items)
		if n == 0 {
			continue
		}

		leftover := 0.0
		if c.DefiniteMain() {
			leftover = c.AvailableMain - usedMainExtent(c, line)
		}

		// Main-axis auto margins absorb positive leftover before
		// justification, each auto margin taking an equal share.
		if leftover > 0 {
			autoCount := 0
			for _, it := range line.Items {
				if it.AutoMarginStart {
					autoCount++
				}
				if it.AutoMarginEnd {
					autoCount++
				}
			}
			if autoCount > 0 {
				share := leftover / float64(autoCount)
				for _, it := range line.Items {
					if it.AutoMarginStart {
						it.MarginMainStart = share
					}
					if it.AutoMarginEnd {
						it.MarginMainEnd = share
					}
				}
				leftover = 0
			}
		}
		if leftover < 0 {
			leftover = 0
		}

		offset, spacing := justifyOffsets(c.JustifyContent, leftover, n)

		pos := offset
		for _, it := range line.Items {
			it.MainPos = pos + it.MarginMainStart
			pos += it.OuterMain(it.MainSize) + c.MainGap + spacing
		}

		if c.MainReverse {
			for _, it := range line.Items {
				it.MainPos = containerMain - it.MainPos - (it.PBMain + it.MainSize)
			}
		}
	}
}

// usedMainExtent returns the main-axis space a line occupies: outer item
// sizes plus the fixed gaps between them.
func usedMainExtent(c *FlexContainer, line *FlexLine) float64 {
	total := c.MainGap * float64(len(line.Items)-1)
	for _, it := range line.Items {
		total += it.OuterMain(it.MainSize)
	}
	return total
}

// justifyOffsets translates a justify-content mode into a leading offset and
// an extra spacing inserted between adjacent items, given the leftover space
// after item sizes, margins, and gaps are subtracted.
func justifyOffsets(mode css.JustifyContent, leftover float64, n int) (offset, spacing float64) {
	if leftover <= 0 {
		return 0, 0
	}
	switch mode {
	case css.JustifyContentFlexEnd:
		return leftover, 0
	case css.JustifyContentCenter:
		return leftover / 2, 0
	case css.JustifyContentSpaceBetween:
		if n > 1 {
			return 0, leftover / float64(n-1)
		}
		return 0, 0
	case css.JustifyContentSpaceAround:
		spacing = leftover / float64(n)
		return spacing / 2, spacing
	case css.JustifyContentSpaceEvenly:
		spacing = leftover / float64(n+1)
		return spacing, spacing
	default: // flex-start
		return 0, 0
	}
}
