package layout

import "math"

// sizeEpsilon absorbs float rounding when deciding whether free space or a
// clamp adjustment is effectively zero.
const sizeEpsilon = 1e-9

// clampSize clamps v into [min, max] and never below zero. Every phase that
// constrains a size (grow, shrink, stretch) goes through this one helper so
// the clamp contract cannot drift between phases.
func clampSize(v, min, max float64) float64 {
	if v > max {
		v = max
	}
	if v < min {
		v = min
	}
	if v < 0 {
		return 0
	}
	return v
}

// resolveFlexibleLengths distributes the line's free space across unfrozen
// items until a fixed point is reached.
//
// Positive free space is shared by flex-grow weight. Negative free space is
// shared by the scaled shrink factor, shrink × flex base size, so that a
// small item shrinks less than a large one with the same shrink value and a
// zero-basis item cannot be pushed below zero. After each distribution every
// updated item is re-clamped against its [min, max]; items whose clamped
// value differs from the computed one freeze at the bound and drop out of
// further distribution, and the remaining space is redistributed among the
// rest. The loop is bounded by the item count: each round either freezes at
// least one item or terminates, so hitting the cap only abandons free space
// for pathological inputs, which is an allowed terminal state.
func (le *LayoutEngine) resolveFlexibleLengths(c *FlexContainer, line *FlexLine) {
	items := line.Items
	if len(items) == 0 {
		return
	}

	// Without a definite main size there is no free space to distribute;
	// every item keeps its hypothetical size (max-content sizing).
	if !c.DefiniteMain() {
		for _, it := range items {
			it.MainSize = it.HypotheticalMain
			it.TargetMain = it.HypotheticalMain
		}
		return
	}

	fixed := c.MainGap * float64(len(items)-1)
	for _, it := range items {
		fixed += it.MarginMainStart + it.PBMain + it.MarginMainEnd
	}

	maxRounds := len(items) + 1
	for round := 0; round < maxRounds; round++ {
		// Free space against frozen targets and unfrozen hypothetical sizes.
		free := c.AvailableMain - fixed
		for _, it := range items {
			if it.Frozen {
				free -= it.TargetMain
			} else {
				free -= it.HypotheticalMain
				it.TargetMain = it.HypotheticalMain
			}
		}
		if unfrozenCount(items) == 0 || math.Abs(free) < sizeEpsilon {
			break
		}

		if free > 0 {
			totalGrow := 0.0
			for _, it := range items {
				if !it.Frozen {
					totalGrow += it.Grow
				}
			}
			if totalGrow <= 0 {
				break
			}
			for _, it := range items {
				if !it.Frozen && it.Grow > 0 {
					it.TargetMain = it.HypotheticalMain + free*(it.Grow/totalGrow)
				}
			}
		} else {
			totalScaled := 0.0
			for _, it := range items {
				if !it.Frozen {
					totalScaled += it.ScaledShrinkFactor
				}
			}
			if totalScaled <= 0 {
				break
			}
			for _, it := range items {
				if !it.Frozen && it.ScaledShrinkFactor > 0 {
					it.TargetMain = it.HypotheticalMain - (-free)*(it.ScaledShrinkFactor/totalScaled)
				}
			}
		}

		// Clamp-and-freeze: any item pushed past a bound is pinned there
		// and excluded from the next redistribution round.
		frozeAny := false
		for _, it := range items {
			if it.Frozen {
				continue
			}
			clamped := clampSize(it.TargetMain, it.MinMain, it.MaxMain)
			if math.Abs(clamped-it.TargetMain) > sizeEpsilon {
				it.TargetMain = clamped
				it.Frozen = true
				frozeAny = true
			}
		}
		if !frozeAny {
			break
		}
	}

	for _, it := range items {
		it.MainSize = it.TargetMain
	}
}

func unfrozenCount(items []*FlexItem) int {
	n := 0
	for _, it := range items {
		if !it.Frozen {
			n++
		}
	}
	return n
}
