package css

import (
	"math"
	"strconv"
	"strings"
)

// FlexDirection represents the flex-direction property value.
type FlexDirection string

const (
	FlexDirectionRow           FlexDirection = "row"
	FlexDirectionRowReverse    FlexDirection = "row-reverse"
	FlexDirectionColumn        FlexDirection = "column"
	FlexDirectionColumnReverse FlexDirection = "column-reverse"
)

// GetFlexDirection returns the flex-direction value (default: row).
func (s *Style) GetFlexDirection() FlexDirection {
	if dir, ok := s.Get("flex-direction"); ok {
		switch dir {
		case "row-reverse":
			return FlexDirectionRowReverse
		case "column":
			return FlexDirectionColumn
		case "column-reverse":
			return FlexDirectionColumnReverse
		}
	}
	return FlexDirectionRow
}

// FlexWrap represents the flex-wrap property value.
type FlexWrap string

const (
	FlexWrapNowrap      FlexWrap = "nowrap"
	FlexWrapWrap        FlexWrap = "wrap"
	FlexWrapWrapReverse FlexWrap = "wrap-reverse"
)

// GetFlexWrap returns the flex-wrap value (default: nowrap).
func (s *Style) GetFlexWrap() FlexWrap {
	if wrap, ok := s.Get("flex-wrap"); ok {
		switch wrap {
		case "wrap":
			return FlexWrapWrap
		case "wrap-reverse":
			return FlexWrapWrapReverse
		}
	}
	return FlexWrapNowrap
}

// JustifyContent represents the justify-content property value.
type JustifyContent string

const (
	JustifyContentFlexStart    JustifyContent = "flex-start"
	JustifyContentFlexEnd      JustifyContent = "flex-end"
	JustifyContentCenter       JustifyContent = "center"
	JustifyContentSpaceBetween JustifyContent = "space-between"
	JustifyContentSpaceAround  JustifyContent = "space-around"
	JustifyContentSpaceEvenly  JustifyContent = "space-evenly"
)

// GetJustifyContent returns the justify-content value (default: flex-start).
func (s *Style) GetJustifyContent() JustifyContent {
	if justify, ok := s.Get("justify-content"); ok {
		switch justify {
		case "flex-end", "end":
			return JustifyContentFlexEnd
		case "center":
			return JustifyContentCenter
		case "space-between":
			return JustifyContentSpaceBetween
		case "space-around":
			return JustifyContentSpaceAround
		case "space-evenly":
			return JustifyContentSpaceEvenly
		}
	}
	return JustifyContentFlexStart
}

// AlignItems represents the align-items property value.
type AlignItems string

const (
	AlignItemsStretch   AlignItems = "stretch"
	AlignItemsFlexStart AlignItems = "flex-start"
	AlignItemsFlexEnd   AlignItems = "flex-end"
	AlignItemsCenter    AlignItems = "center"
	AlignItemsBaseline  AlignItems = "baseline"
)

// GetAlignItems returns the align-items value (default: stretch).
func (s *Style) GetAlignItems() AlignItems {
	if align, ok := s.Get("align-items"); ok {
		switch align {
		case "flex-start", "start":
			return AlignItemsFlexStart
		case "flex-end", "end":
			return AlignItemsFlexEnd
		case "center":
			return AlignItemsCenter
		case "baseline":
			return AlignItemsBaseline
		}
	}
	return AlignItemsStretch
}

// AlignSelf represents the align-self property value.
type AlignSelf string

const (
	AlignSelfAuto      AlignSelf = "auto"
	AlignSelfStretch   AlignSelf = "stretch"
	AlignSelfFlexStart AlignSelf = "flex-start"
	AlignSelfFlexEnd   AlignSelf = "flex-end"
	AlignSelfCenter    AlignSelf = "center"
	AlignSelfBaseline  AlignSelf = "baseline"
)

// GetAlignSelf returns the align-self value (default: auto, meaning the
// container's align-items applies).
func (s *Style) GetAlignSelf() AlignSelf {
	if align, ok := s.Get("align-self"); ok {
		switch align {
		case "stretch":
			return AlignSelfStretch
		case "flex-start", "start":
			return AlignSelfFlexStart
		case "flex-end", "end":
			return AlignSelfFlexEnd
		case "center":
			return AlignSelfCenter
		case "baseline":
			return AlignSelfBaseline
		}
	}
	return AlignSelfAuto
}

// AlignContent represents the align-content property value.
type AlignContent string

const (
	AlignContentFlexStart    AlignContent = "flex-start"
	AlignContentFlexEnd      AlignContent = "flex-end"
	AlignContentCenter       AlignContent = "center"
	AlignContentSpaceBetween AlignContent = "space-between"
	AlignContentSpaceAround  AlignContent = "space-around"
	AlignContentSpaceEvenly  AlignContent = "space-evenly"
	AlignContentStretch      AlignContent = "stretch"
)

// GetAlignContent returns the align-content value (default: stretch).
func (s *Style) GetAlignContent() AlignContent {
	if align, ok := s.Get("align-content"); ok {
		switch align {
		case "flex-start", "start":
			return AlignContentFlexStart
		case "flex-end", "end":
			return AlignContentFlexEnd
		case "center":
			return AlignContentCenter
		case "space-between":
			return AlignContentSpaceBetween
		case "space-around":
			return AlignContentSpaceAround
		case "space-evenly":
			return AlignContentSpaceEvenly
		}
	}
	return AlignContentStretch
}

// GetFlexGrow returns the flex-grow value (default: 0).
// Negative and non-numeric values clamp to 0.
func (s *Style) GetFlexGrow() float64 {
	return s.getFlexFactor("flex-grow", 0)
}

// GetFlexShrink returns the flex-shrink value (default: 1).
// Negative and non-numeric values clamp to 0.
func (s *Style) GetFlexShrink() float64 {
	return s.getFlexFactor("flex-shrink", 1)
}

func (s *Style) getFlexFactor(property string, def float64) float64 {
	val, ok := s.Get(property)
	if !ok {
		return def
	}
	num, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
	if err != nil || math.IsNaN(num) || num < 0 {
		return 0
	}
	if math.IsInf(num, 0) {
		return 0
	}
	return num
}

// GetFlexBasis returns the flex-basis value resolved against mainAvailable.
// The second return is true when the basis is auto: either specified as
// "auto", unspecified, unparseable, or a percentage against an indefinite
// available size. Negative bases clamp to 0.
func (s *Style) GetFlexBasis(mainAvailable float64) (float64, bool) {
	val, ok := s.Get("flex-basis")
	if !ok || strings.TrimSpace(val) == "auto" {
		return 0, true
	}
	basis, ok := ParseLengthPercent(val, mainAvailable)
	if !ok {
		return 0, true
	}
	if basis < 0 {
		basis = 0
	}
	return basis, false
}

// GetOrder returns the order value (default: 0).
func (s *Style) GetOrder() int {
	if val, ok := s.Get("order"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return n
		}
	}
	return 0
}

// GetRowGap returns the row-gap value (default: 0, never negative).
func (s *Style) GetRowGap() float64 {
	return s.getLengthOrZero("row-gap")
}

// GetColumnGap returns the column-gap value (default: 0, never negative).
func (s *Style) GetColumnGap() float64 {
	return s.getLengthOrZero("column-gap")
}

// GetMinSize returns the min-width or min-height constraint for the given
// geometric axis (default 0). Negative values clamp to 0.
func (s *Style) GetMinSize(horizontal bool) float64 {
	prop := "min-height"
	if horizontal {
		prop = "min-width"
	}
	return s.getLengthOrZero(prop)
}

// GetMaxSize returns the max-width or max-height constraint for the given
// geometric axis, or +Inf when absent or "none".
func (s *Style) GetMaxSize(horizontal bool) float64 {
	prop := "max-height"
	if horizontal {
		prop = "max-width"
	}
	val, ok := s.GetLength(prop)
	if !ok || val < 0 {
		return math.Inf(1)
	}
	return val
}

// GetSize returns the specified width or height for the given geometric
// axis, if present. Negative values read as unspecified.
func (s *Style) GetSize(horizontal bool) (float64, bool) {
	prop := "height"
	if horizontal {
		prop = "width"
	}
	val, ok := s.GetLength(prop)
	if !ok || val < 0 {
		return 0, false
	}
	return val, true
}
