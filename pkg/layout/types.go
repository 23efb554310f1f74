package layout

import "flexlay/pkg/css"

// FlexItem tracks one participating child during a single resolution pass.
// All fields except the node handle are transient and rebuilt per call.
type FlexItem struct {
	ID    NodeID
	Index int // original document position, tiebreaker for the order sort

	Grow      float64
	Shrink    float64
	Basis     float64 // flex base size (content-box main size before clamping)
	BasisAuto bool
	Order     int
	AlignSelf css.AlignSelf

	// Margins in main/cross terms. Auto margins read as 0 until resolved.
	MarginMainStart  float64
	MarginMainEnd    float64
	MarginCrossStart float64
	MarginCrossEnd   float64
	AutoMarginStart  bool
	AutoMarginEnd    bool

	// Padding+border per axis, added to content sizes for packing and output.
	PBMain       float64
	PBCross      float64
	PBCrossStart float64 // cross-start padding+border, part of the baseline ascent

	// CrossAuto is true when the cross-axis size property is unspecified,
	// which makes the item eligible for stretching.
	CrossAuto bool

	MinMain  float64
	MaxMain  float64
	MinCross float64
	MaxCross float64

	// Main-size resolution state.
	HypotheticalMain   float64 // basis clamped to [MinMain, MaxMain]
	TargetMain         float64
	ScaledShrinkFactor float64 // Shrink × Basis
	Frozen             bool

	// Outputs of the pass.
	MainSize    float64 // content-box main size
	CrossSize   float64 // content-box cross size
	MainPos     float64 // margin-resolved border-box offset along main axis
	CrossPos    float64 // border-box offset along cross axis within the line
	Baseline    float64 // ascent from border-box top
	HasBaseline bool
}

// OuterMain returns the item's full main-axis extent including margins,
// padding, and border around the given content size.
func (it *FlexItem) OuterMain(content float64) float64 {
	return it.MarginMainStart + it.PBMain + content + it.MarginMainEnd
}

// OuterCross returns the item's full cross-axis extent including margins,
// padding, and border around the given content size.
func (it *FlexItem) OuterCross(content float64) float64 {
	return it.MarginCrossStart + it.PBCross + content + it.MarginCrossEnd
}

// FlexLine groups items laid out together along the main axis. Lines are
// transient and never escape a resolution pass.
type FlexLine struct {
	Items     []*FlexItem
	MainSize  float64 // sum of outer hypothetical sizes, before resolution
	CrossSize float64 // max outer cross size, or the stretch target
	CrossPos  float64 // offset of the line within the container cross axis
	Baseline  float64 // max ascent among baseline-aligned members
}

// FlexContainer holds the per-call view of the container being laid out.
type FlexContainer struct {
	Direction      css.FlexDirection
	Wrap           css.FlexWrap
	JustifyContent css.JustifyContent
	AlignItems     css.AlignItems
	AlignContent   css.AlignContent
	IsRow          bool
	MainReverse    bool // row-reverse / column-reverse

	MainGap  float64
	CrossGap float64

	AvailableMain  float64 // container content-box main size; <0 = indefinite
	AvailableCross float64 // container content-box cross size; <0 = indefinite

	Lines []*FlexLine
}

// DefiniteMain reports whether the container has a definite main size.
func (c *FlexContainer) DefiniteMain() bool { return c.AvailableMain >= 0 }

// DefiniteCross reports whether the container has a definite cross size.
func (c *FlexContainer) DefiniteCross() bool { return c.AvailableCross >= 0 }

// MinMaxSizes holds intrinsic content-based sizes for a subtree:
// min-content (narrowest without overflow) and max-content (preferred
// size without wrapping), both along the horizontal axis.
type MinMaxSizes struct {
	MinContentSize float64
	MaxContentSize float64
}
