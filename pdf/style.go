package pdf

import (
	"strconv"
	"strings"

	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// DefaultAccent is the fallback accent color used when a malformed hex value
// is supplied for an export.
const DefaultAccent = "#2563eb"

// StyleConverter converts export styling into Maroto properties.
type StyleConverter struct{}

// NewStyleConverter creates a style converter.
func NewStyleConverter() *StyleConverter {
	return &StyleConverter{}
}

// ConvertToTextProps converts TextProps to Maroto text properties.
func (s *StyleConverter) ConvertToTextProps(p TextProps) *props.Text {
	textProps := &props.Text{
		Size:  12,
		Style: fontstyle.Normal,
		Align: align.Left,
	}
	if p.Size > 0 {
		textProps.Size = p.Size
	}
	if p.Style != "" {
		textProps.Style = p.Style
	}
	if p.Align != "" {
		textProps.Align = p.Align
	}
	if p.Family != "" {
		textProps.Family = p.Family
	}
	textProps.Color = s.ConvertColor(p.Color)
	return textProps
}

// ConvertColor parses a hex color into a Maroto color, defaulting to black.
func (s *StyleConverter) ConvertColor(hex string) *props.Color {
	if r, g, b, ok := HexToRGB(hex); ok {
		return &props.Color{Red: r, Green: g, Blue: b}
	}
	return &props.Color{}
}

// ConvertAlignment maps an alignment keyword to Maroto alignment.
func (s *StyleConverter) ConvertAlignment(alignStr string) align.Type {
	switch strings.ToLower(alignStr) {
	case "center":
		return align.Center
	case "right":
		return align.Right
	case "justify":
		return align.Justify
	default:
		return align.Left
	}
}

// EstimateHeight returns a row height in mm large enough for content wrapped
// at the given font size to the given width. The 0.45 factor approximates the
// glyph advance of the built-in fonts at 1pt.
func (s *StyleConverter) EstimateHeight(content string, size, widthMM float64) float64 {
	if size <= 0 {
		size = 12
	}
	charWidth := size * 0.45 * 0.3528 // pt to mm
	perLine := int(widthMM / charWidth)
	if perLine < 1 {
		perLine = 1
	}

	lines := 0
	for _, segment := range strings.Split(content, "\n") {
		n := len([]rune(segment))
		if n == 0 {
			lines++
			continue
		}
		lines += (n + perLine - 1) / perLine
	}
	if lines < 1 {
		lines = 1
	}
	return float64(lines) * size * 0.5
}

// HexToRGB decodes a #RGB or #RRGGBB string into 8-bit channels. ok is false
// for malformed input; callers fall back to a default accent instead of
// failing the export.
func HexToRGB(hex string) (r, g, b int, ok bool) {
	hex = strings.TrimPrefix(hex, "#")

	switch len(hex) {
	case 6:
		rv, err1 := strconv.ParseInt(hex[0:2], 16, 0)
		gv, err2 := strconv.ParseInt(hex[2:4], 16, 0)
		bv, err3 := strconv.ParseInt(hex[4:6], 16, 0)
		if err1 != nil || err2 != nil || err3 != nil {
			return 0, 0, 0, false
		}
		return int(rv), int(gv), int(bv), true
	case 3:
		rv, err1 := strconv.ParseInt(strings.Repeat(string(hex[0]), 2), 16, 0)
		gv, err2 := strconv.ParseInt(strings.Repeat(string(hex[1]), 2), 16, 0)
		bv, err3 := strconv.ParseInt(strings.Repeat(string(hex[2]), 2), 16, 0)
		if err1 != nil || err2 != nil || err3 != nil {
			return 0, 0, 0, false
		}
		return int(rv), int(gv), int(bv), true
	}
	return 0, 0, 0, false
}

// AccentOrDefault returns the hex accent if well formed, DefaultAccent
// otherwise.
func AccentOrDefault(hex string) string {
	if _, _, _, ok := HexToRGB(hex); ok {
		return hex
	}
	return DefaultAccent
}
