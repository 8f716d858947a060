package pdf

import (
	"testing"

	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		r, g, b int
		ok      bool
	}{
		{name: "six_digit", hex: "#2563eb", r: 37, g: 99, b: 235, ok: true},
		{name: "no_hash", hex: "ff0000", r: 255, g: 0, b: 0, ok: true},
		{name: "short_form", hex: "#f0a", r: 255, g: 0, b: 170, ok: true},
		{name: "malformed", hex: "#zzzzzz", ok: false},
		{name: "wrong_length", hex: "#12345", ok: false},
		{name: "empty", hex: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, ok := HexToRGB(tt.hex)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, [3]int{tt.r, tt.g, tt.b}, [3]int{r, g, b})
			}
		})
	}
}

func TestAccentOrDefault(t *testing.T) {
	assert.Equal(t, "#ff0000", AccentOrDefault("#ff0000"))
	assert.Equal(t, DefaultAccent, AccentOrDefault("not-a-color"))
	assert.Equal(t, DefaultAccent, AccentOrDefault(""))
}

func TestConvertToTextProps(t *testing.T) {
	s := NewStyleConverter()

	props := s.ConvertToTextProps(TextProps{Size: 24, Style: fontstyle.Bold, Color: "#2563eb", Align: align.Center})
	assert.Equal(t, 24.0, props.Size)
	assert.Equal(t, fontstyle.Bold, props.Style)
	assert.Equal(t, align.Center, props.Align)
	require.NotNil(t, props.Color)
	assert.Equal(t, 37, props.Color.Red)

	// Zero values fall back to defaults.
	defaults := s.ConvertToTextProps(TextProps{})
	assert.Equal(t, 12.0, defaults.Size)
	assert.Equal(t, fontstyle.Normal, defaults.Style)
	assert.Equal(t, align.Left, defaults.Align)
}

func TestConvertAlignment(t *testing.T) {
	s := NewStyleConverter()
	assert.Equal(t, align.Center, s.ConvertAlignment("center"))
	assert.Equal(t, align.Right, s.ConvertAlignment("RIGHT"))
	assert.Equal(t, align.Type(align.Justify), s.ConvertAlignment("justify"))
	assert.Equal(t, align.Left, s.ConvertAlignment("left"))
	assert.Equal(t, align.Left, s.ConvertAlignment(""))
}

func TestEstimateHeightGrowsWithContent(t *testing.T) {
	s := NewStyleConverter()
	short := s.EstimateHeight("one line", 12, 170)
	long := s.EstimateHeight("line one\nline two\nline three", 12, 170)
	assert.Greater(t, long, short)

	// A paragraph wider than the content width wraps into extra lines.
	wrapped := s.EstimateHeight(string(make([]rune, 600)), 12, 170)
	assert.Greater(t, wrapped, short)
}

func TestBuilderProducesPDF(t *testing.T) {
	b := NewBuilder()
	b.AddText("Hello", TextProps{Size: 24, Style: fontstyle.Bold, Color: "#2563eb"})
	b.Space(10)
	b.AddDivider("#2563eb")
	b.AddText("Body paragraph with some wrapped content that spans the page.", TextProps{Size: 11})

	out, err := b.Output()
	require.NoError(t, err)
	AssertValidPDF(t, out)
}

func TestGreetingBackground(t *testing.T) {
	png, err := GreetingBackground(37, 99, 235)
	require.NoError(t, err)
	assert.Greater(t, len(png), 100)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
