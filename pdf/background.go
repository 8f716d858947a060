package pdf

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
)

// Greeting cards paint a light tint of the accent over the whole page plus a
// decorative border inset from the edges. Maroto has no absolute-position
// rectangle drawing, so the tint and border are rendered as a full-page
// background PNG instead.

const (
	bgPixelsPerMM = 4 // 840x1188 for A4, enough for a flat tint
	borderInsetMM = 15
	borderWidthMM = 1.5
)

// GreetingBackground renders the tint-and-border page background for the
// given accent channels.
func GreetingBackground(r, g, b int) ([]byte, error) {
	width := int(PageWidth * bgPixelsPerMM)
	height := int(PageHeight * bgPixelsPerMM)
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	// 10% tint over white.
	tint := color.RGBA{
		R: uint8((r + 255*9) / 10),
		G: uint8((g + 255*9) / 10),
		B: uint8((b + 255*9) / 10),
		A: 255,
	}
	draw.Draw(img, img.Bounds(), image.NewUniform(tint), image.Point{}, draw.Src)

	accent := color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
	inset := int(borderInsetMM * bgPixelsPerMM)
	thickness := int(borderWidthMM * bgPixelsPerMM)

	fill := func(rect image.Rectangle) {
		draw.Draw(img, rect, image.NewUniform(accent), image.Point{}, draw.Src)
	}
	fill(image.Rect(inset, inset, width-inset, inset+thickness))                   // top
	fill(image.Rect(inset, height-inset-thickness, width-inset, height-inset))    // bottom
	fill(image.Rect(inset, inset, inset+thickness, height-inset))                 // left
	fill(image.Rect(width-inset-thickness, inset, width-inset, height-inset))     // right

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
