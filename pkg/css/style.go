package css

import (
	"math"
	"strconv"
	"strings"
)

// Style holds the resolved CSS properties for one node. The engine never
// reads raw stylesheets; the caller is expected to have run cascade and
// inheritance before handing styles to layout.
type Style struct {
	Properties map[string]string
}

func NewStyle() *Style {
	return &Style{Properties: make(map[string]string)}
}

func (s *Style) Get(property string) (string, bool) {
	val, ok := s.Properties[property]
	return val, ok
}

func (s *Style) Set(property, value string) {
	s.Properties[property] = value
}

// GetLength returns the pixel value of a property, if present and parseable.
func (s *Style) GetLength(property string) (float64, bool) {
	val, ok := s.Get(property)
	if !ok {
		return 0, false
	}
	return ParseLength(val)
}

// ParseLength parses a length value (e.g., "100px" or "100").
// Percentages and keywords are rejected; use ParseLengthPercent for those.
func ParseLength(val string) (float64, bool) {
	val = strings.TrimSpace(val)
	if strings.HasSuffix(val, "%") {
		return 0, false
	}
	val = strings.TrimSuffix(val, "px")
	num, err := strconv.ParseFloat(val, 64)
	if err != nil || math.IsNaN(num) || math.IsInf(num, 0) {
		return 0, false
	}
	return num, true
}

// ParseLengthPercent parses a length or percentage value. Percentages
// resolve against reference; a negative reference means the reference is
// indefinite and the percentage cannot be resolved.
func ParseLengthPercent(val string, reference float64) (float64, bool) {
	val = strings.TrimSpace(val)
	if strings.HasSuffix(val, "%") {
		if reference < 0 {
			return 0, false
		}
		num, err := strconv.ParseFloat(strings.TrimSuffix(val, "%"), 64)
		if err != nil || math.IsNaN(num) || math.IsInf(num, 0) {
			return 0, false
		}
		return num / 100 * reference, true
	}
	return ParseLength(val)
}

// BoxEdge represents the four sides of a box (top, right, bottom, left).
type BoxEdge struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// GetMargin returns the margin values for all four sides.
// Sides specified as "auto" read as 0 here; use IsMarginAuto to detect them.
func (s *Style) GetMargin() BoxEdge {
	return BoxEdge{
		Top:    s.getLengthOrZero("margin-top"),
		Right:  s.getLengthOrZero("margin-right"),
		Bottom: s.getLengthOrZero("margin-bottom"),
		Left:   s.getLengthOrZero("margin-left"),
	}
}

// IsMarginAuto reports whether the margin on the given side ("top", "right",
// "bottom", "left") is the auto keyword.
func (s *Style) IsMarginAuto(side string) bool {
	val, ok := s.Get("margin-" + side)
	return ok && strings.TrimSpace(val) == "auto"
}

// GetPadding returns the padding values for all four sides.
func (s *Style) GetPadding() BoxEdge {
	return BoxEdge{
		Top:    s.getLengthOrZero("padding-top"),
		Right:  s.getLengthOrZero("padding-right"),
		Bottom: s.getLengthOrZero("padding-bottom"),
		Left:   s.getLengthOrZero("padding-left"),
	}
}

// GetBorderWidth returns the border width for all four sides.
func (s *Style) GetBorderWidth() BoxEdge {
	return BoxEdge{
		Top:    s.getLengthOrZero("border-top-width"),
		Right:  s.getLengthOrZero("border-right-width"),
		Bottom: s.getLengthOrZero("border-bottom-width"),
		Left:   s.getLengthOrZero("border-left-width"),
	}
}

// getLengthOrZero returns the length value or 0 if not found. Negative
// values are clamped to 0.
func (s *Style) getLengthOrZero(property string) float64 {
	val, ok := s.GetLength(property)
	if !ok || val < 0 {
		return 0
	}
	return val
}

// PositionType represents the position property value.
type PositionType string

const (
	PositionStatic   PositionType = "static"
	PositionRelative PositionType = "relative"
	PositionAbsolute PositionType = "absolute"
	PositionFixed    PositionType = "fixed"
)

// GetPosition returns the position type (default: static).
func (s *Style) GetPosition() PositionType {
	if pos, ok := s.Get("position"); ok {
		switch pos {
		case "relative":
			return PositionRelative
		case "absolute":
			return PositionAbsolute
		case "fixed":
			return PositionFixed
		}
	}
	return PositionStatic
}

// DisplayType represents the display property value.
type DisplayType string

const (
	DisplayBlock DisplayType = "block"
	DisplayFlex  DisplayType = "flex"
	DisplayNone  DisplayType = "none"
)

// GetDisplay returns the display value (default: block).
func (s *Style) GetDisplay() DisplayType {
	if display, ok := s.Get("display"); ok {
		switch display {
		case "flex":
			return DisplayFlex
		case "none":
			return DisplayNone
		}
	}
	return DisplayBlock
}

// ParseInlineStyle parses a "prop: value; prop: value" declaration list into
// a Style, expanding shorthand properties.
func ParseInlineStyle(styleAttr string) *Style {
	style := NewStyle()
	declarations := strings.Split(styleAttr, ";")
	for _, decl := range declarations {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		parts := strings.SplitN(decl, ":", 2)
		if len(parts) != 2 {
			continue
		}
		property := strings.TrimSpace(strings.ToLower(parts[0]))
		value := strings.TrimSpace(parts[1])

		ExpandShorthand(style, property, value)
	}
	return style
}

// ExpandShorthand expands shorthand CSS properties into individual
// properties and stores the result on style.
func ExpandShorthand(style *Style, property, value string) {
	switch property {
	case "margin":
		expandBoxProperty(style, "margin", value)
	case "padding":
		expandBoxProperty(style, "padding", value)
	case "flex":
		expandFlexProperty(style, value)
	case "gap":
		expandGapProperty(style, value)
	case "border-width":
		expandBorderWidth(style, value)
	default:
		style.Set(property, value)
	}
}

// expandBoxProperty expands margin/padding shorthand.
// Supports: "10px" (all), "10px 20px" (vertical horizontal),
//           "10px 20px 30px" (top h bottom), "10px 20px 30px 40px" (t r b l)
func expandBoxProperty(style *Style, prefix, value string) {
	parts := strings.Fields(value)

	switch len(parts) {
	case 1:
		style.Set(prefix+"-top", parts[0])
		style.Set(prefix+"-right", parts[0])
		style.Set(prefix+"-bottom", parts[0])
		style.Set(prefix+"-left", parts[0])
	case 2:
		style.Set(prefix+"-top", parts[0])
		style.Set(prefix+"-bottom", parts[0])
		style.Set(prefix+"-right", parts[1])
		style.Set(prefix+"-left", parts[1])
	case 3:
		style.Set(prefix+"-top", parts[0])
		style.Set(prefix+"-right", parts[1])
		style.Set(prefix+"-left", parts[1])
		style.Set(prefix+"-bottom", parts[2])
	case 4:
		style.Set(prefix+"-top", parts[0])
		style.Set(prefix+"-right", parts[1])
		style.Set(prefix+"-bottom", parts[2])
		style.Set(prefix+"-left", parts[3])
	}
}

// expandBorderWidth expands the border-width shorthand into the four
// border-<side>-width properties, with the usual 1/2/3/4 value forms.
func expandBorderWidth(style *Style, value string) {
	parts := strings.Fields(value)
	var top, right, bottom, left string
	switch len(parts) {
	case 1:
		top, right, bottom, left = parts[0], parts[0], parts[0], parts[0]
	case 2:
		top, right, bottom, left = parts[0], parts[1], parts[0], parts[1]
	case 3:
		top, right, bottom, left = parts[0], parts[1], parts[2], parts[1]
	case 4:
		top, right, bottom, left = parts[0], parts[1], parts[2], parts[3]
	default:
		return
	}
	style.Set("border-top-width", top)
	style.Set("border-right-width", right)
	style.Set("border-bottom-width", bottom)
	style.Set("border-left-width", left)
}

// expandFlexProperty expands the flex shorthand.
// Supports: "none", "auto", "<grow>", "<grow> <shrink>",
// "<grow> <basis>", "<grow> <shrink> <basis>".
func expandFlexProperty(style *Style, value string) {
	value = strings.TrimSpace(value)
	if value == "none" {
		style.Set("flex-grow", "0")
		style.Set("flex-shrink", "0")
		style.Set("flex-basis", "auto")
		return
	}
	if value == "auto" {
		style.Set("flex-grow", "1")
		style.Set("flex-shrink", "1")
		style.Set("flex-basis", "auto")
		return
	}

	parts := strings.Fields(value)
	switch len(parts) {
	case 1:
		style.Set("flex-grow", parts[0])
		style.Set("flex-shrink", "1")
		style.Set("flex-basis", "0%")
	case 2:
		style.Set("flex-grow", parts[0])
		if isNumber(parts[1]) {
			style.Set("flex-shrink", parts[1])
			style.Set("flex-basis", "0%")
		} else {
			style.Set("flex-shrink", "1")
			style.Set("flex-basis", parts[1])
		}
	case 3:
		style.Set("flex-grow", parts[0])
		style.Set("flex-shrink", parts[1])
		style.Set("flex-basis", parts[2])
	}
}

// expandGapProperty expands the gap shorthand into row-gap and column-gap.
func expandGapProperty(style *Style, value string) {
	parts := strings.Fields(value)
	switch len(parts) {
	case 1:
		style.Set("row-gap", parts[0])
		style.Set("column-gap", parts[0])
	case 2:
		style.Set("row-gap", parts[0])
		style.Set("column-gap", parts[1])
	}
}

// isNumber reports whether val is a bare number (no unit, no percent).
func isNumber(val string) bool {
	_, err := strconv.ParseFloat(val, 64)
	return err == nil
}

// Color is an 8-bit RGB color used by the debug renderer.
type Color struct {
	R, G, B uint8
}

// ParseColor parses named colors and #rrggbb hex values.
func ParseColor(colorStr string) (Color, bool) {
	colorStr = strings.ToLower(strings.TrimSpace(colorStr))

	if strings.HasPrefix(colorStr, "#") && len(colorStr) == 7 {
		r, err1 := strconv.ParseUint(colorStr[1:3], 16, 8)
		g, err2 := strconv.ParseUint(colorStr[3:5], 16, 8)
		b, err3 := strconv.ParseUint(colorStr[5:7], 16, 8)
		if err1 == nil && err2 == nil && err3 == nil {
			return Color{uint8(r), uint8(g), uint8(b)}, true
		}
		return Color{}, false
	}

	namedColors := map[string]Color{
		"red":     {255, 0, 0},
		"green":   {0, 128, 0},
		"blue":    {0, 0, 255},
		"yellow":  {255, 255, 0},
		"cyan":    {0, 255, 255},
		"magenta": {255, 0, 255},
		"white":   {255, 255, 255},
		"black":   {0, 0, 0},
		"gray":    {128, 128, 128},
		"orange":  {255, 165, 0},
		"purple":  {128, 0, 128},
		"pink":    {255, 192, 203},
		"silver":  {192, 192, 192},
		"teal":    {0, 128, 128},
		"navy":    {0, 0, 128},
	}
	color, ok := namedColors[colorStr]
	return color, ok
}
