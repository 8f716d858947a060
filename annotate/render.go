package annotate

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/flanksource/docsmith/pdf"
)

// Text is baked in with the Go font family. The on-screen font family names
// map to the closest available variant; only weight and slant are honored.
var (
	fontsOnce sync.Once
	fontsErr  error
	fontFaces map[fontKey]*opentype.Font
)

type fontKey struct {
	bold   bool
	italic bool
}

func loadFonts() {
	fontFaces = map[fontKey]*opentype.Font{}
	for _, variant := range []struct {
		key  fontKey
		data []byte
	}{
		{fontKey{false, false}, goregular.TTF},
		{fontKey{true, false}, gobold.TTF},
		{fontKey{false, true}, goitalic.TTF},
		{fontKey{true, true}, gobolditalic.TTF},
	} {
		parsed, err := opentype.Parse(variant.data)
		if err != nil {
			fontsErr = fmt.Errorf("failed to parse embedded font: %w", err)
			return
		}
		fontFaces[variant.key] = parsed
	}
}

// drawTextBox paints one box's text onto dst, wrapping words to the box width
// with a 4px inset, the same layout the live overlay shows.
func drawTextBox(dst *image.RGBA, box *TextBox) error {
	fontsOnce.Do(loadFonts)
	if fontsErr != nil {
		return fontsErr
	}

	face, err := opentype.NewFace(fontFaces[fontKey{box.Bold, box.Italic}], &opentype.FaceOptions{
		Size:    box.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("failed to build font face: %w", err)
	}
	defer face.Close()

	r, g, b, ok := pdf.HexToRGB(box.Color)
	if !ok {
		r, g, b = 0, 0, 0
	}
	textColor := color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}

	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(textColor),
		Face: face,
	}

	ascent := face.Metrics().Ascent
	lineHeight := box.FontSize * 1.2
	maxWidth := fixed.I(int(box.Geometry.Width - 8))

	y := box.Geometry.Y + 4
	emit := func(line string) {
		drawer.Dot = fixed.Point26_6{
			X: fixed.I(int(box.Geometry.X + 4)),
			Y: fixed.I(int(y)) + ascent,
		}
		drawer.DrawString(line)
		if box.Underline {
			width := drawer.MeasureString(line).Ceil()
			underlineY := int(y + box.FontSize)
			rect := image.Rect(int(box.Geometry.X+4), underlineY, int(box.Geometry.X+4)+width, underlineY+1)
			draw.Draw(dst, rect, image.NewUniform(textColor), image.Point{}, draw.Over)
		}
		y += lineHeight
	}

	words := strings.Fields(box.Text)
	line := ""
	for _, word := range words {
		test := word
		if line != "" {
			test = line + " " + word
		}
		if drawer.MeasureString(test) > maxWidth && line != "" {
			emit(line)
			line = word
		} else {
			line = test
		}
	}
	if line != "" {
		emit(line)
	}
	return nil
}
