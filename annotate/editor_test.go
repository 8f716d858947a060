package annotate

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRecognizer struct {
	lines []Line
	err   error
	calls int
}

func (s *stubRecognizer) Recognize(_ context.Context, _ image.Image) ([]Line, error) {
	s.calls++
	return s.lines, s.err
}

func testImagePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestLoadDownscalesWideImages(t *testing.T) {
	e := NewEditor(&stubRecognizer{})
	require.NoError(t, e.Load(testImagePNG(t, 2400, 1200)))

	w, h := e.WorkingBounds()
	assert.Equal(t, 1200, w)
	assert.Equal(t, 600, h)
	assert.Equal(t, StateLoaded, e.State())
}

func TestLoadKeepsSmallImagesUnscaled(t *testing.T) {
	e := NewEditor(&stubRecognizer{})
	require.NoError(t, e.Load(testImagePNG(t, 800, 500)))

	w, h := e.WorkingBounds()
	assert.Equal(t, 800, w)
	assert.Equal(t, 500, h)
}

func TestLoadRejectsGarbage(t *testing.T) {
	e := NewEditor(&stubRecognizer{})
	require.NoError(t, e.Load(testImagePNG(t, 100, 100)))

	err := e.Load([]byte("not an image"))
	require.Error(t, err)
	// Prior image survives a failed load.
	w, _ := e.WorkingBounds()
	assert.Equal(t, 100, w)
	assert.Equal(t, StateLoaded, e.State())
}

func TestExtractCreatesScaledBoxes(t *testing.T) {
	rec := &stubRecognizer{lines: []Line{
		{Text: "Hello world", Box: image.Rect(100, 200, 700, 260)},
		{Text: "   ", Box: image.Rect(0, 0, 50, 20)}, // blank, skipped
		{Text: "Second line", Box: image.Rect(100, 300, 140, 310)},
	}}
	e := NewEditor(rec)
	require.NoError(t, e.Load(testImagePNG(t, 2400, 1200))) // scale 0.5

	require.NoError(t, e.Extract(context.Background()))
	require.Equal(t, StateAnnotated, e.State())
	boxes := e.Boxes()
	require.Len(t, boxes, 2)

	first := boxes[0]
	assert.Equal(t, "Hello world", first.Text)
	assert.InDelta(t, 50.0, first.Geometry.X, 0.01)
	assert.InDelta(t, 100.0, first.Geometry.Y, 0.01)
	assert.InDelta(t, 300.0, first.Geometry.Width, 0.01)
	assert.InDelta(t, 30.0, first.Geometry.Height, 0.01)
	// 0.8 * scaled height, clamped to [12, 20].
	assert.InDelta(t, 20.0, first.FontSize, 0.01)
	assert.False(t, first.Italic)

	// Tiny line gets the floor dimensions and the minimum font size.
	second := boxes[1]
	assert.Equal(t, MinOCRWidth, second.Geometry.Width)
	assert.Equal(t, MinOCRHeight, second.Geometry.Height)
	assert.Equal(t, 12.0, second.FontSize)
}

func TestExtractReplacesBoxesWithFreshIDs(t *testing.T) {
	rec := &stubRecognizer{lines: []Line{{Text: "one", Box: image.Rect(0, 0, 100, 30)}}}
	e := NewEditor(rec)
	require.NoError(t, e.Load(testImagePNG(t, 400, 300)))
	require.NoError(t, e.Extract(context.Background()))
	firstID := e.Boxes()[0].ID

	require.NoError(t, e.Load(testImagePNG(t, 400, 300)))
	require.NoError(t, e.Extract(context.Background()))
	require.Len(t, e.Boxes(), 1)
	assert.NotEqual(t, firstID, e.Boxes()[0].ID)
}

func TestExtractFailureKeepsBoxes(t *testing.T) {
	rec := &stubRecognizer{lines: []Line{{Text: "keep me", Box: image.Rect(0, 0, 100, 30)}}}
	e := NewEditor(rec)
	require.NoError(t, e.Load(testImagePNG(t, 400, 300)))
	require.NoError(t, e.Extract(context.Background()))

	rec.err = fmt.Errorf("engine crashed")
	require.Error(t, e.Extract(context.Background()))
	require.Len(t, e.Boxes(), 1)
	assert.Equal(t, "keep me", e.Boxes()[0].Text)
}

func TestDragClampsToImage(t *testing.T) {
	g := Geometry{X: 10, Y: 10, Width: 100, Height: 40}

	moved := g.Drag(25, -5, 400, 300)
	assert.Equal(t, 35.0, moved.X)
	assert.Equal(t, 5.0, moved.Y)

	offLeft := g.Drag(-500, -500, 400, 300)
	assert.Equal(t, 0.0, offLeft.X)
	assert.Equal(t, 0.0, offLeft.Y)

	offRight := g.Drag(1000, 1000, 400, 300)
	assert.Equal(t, 300.0, offRight.X)
	assert.Equal(t, 260.0, offRight.Y)
}

func TestResizeAnchorsOppositeCorner(t *testing.T) {
	g := Geometry{X: 100, Y: 100, Width: 120, Height: 60}

	se := g.Resize(SouthEast, 30, 10)
	assert.Equal(t, Geometry{X: 100, Y: 100, Width: 150, Height: 70}, se)

	// North-west handle moves the origin and keeps the south-east corner.
	nw := g.Resize(NorthWest, 20, 10)
	assert.Equal(t, Geometry{X: 120, Y: 110, Width: 100, Height: 50}, nw)
	assert.Equal(t, g.X+g.Width, nw.X+nw.Width)
	assert.Equal(t, g.Y+g.Height, nw.Y+nw.Height)

	// Shrinking past the minimum pins at the floor.
	tiny := g.Resize(NorthWest, 500, 500)
	assert.Equal(t, MinResizeWidth, tiny.Width)
	assert.Equal(t, MinResizeHeight, tiny.Height)
	assert.Equal(t, g.X+g.Width-MinResizeWidth, tiny.X)
}

func TestDeleteAndSelection(t *testing.T) {
	rec := &stubRecognizer{lines: []Line{
		{Text: "a", Box: image.Rect(0, 0, 100, 30)},
		{Text: "b", Box: image.Rect(0, 40, 100, 70)},
	}}
	e := NewEditor(rec)
	require.NoError(t, e.Load(testImagePNG(t, 400, 300)))
	require.NoError(t, e.Extract(context.Background()))

	id := e.Boxes()[0].ID
	_, ok := e.Select(id)
	require.True(t, ok)

	require.True(t, e.Delete(id))
	assert.Len(t, e.Boxes(), 1)
	_, selected := e.Selected()
	assert.False(t, selected)

	assert.False(t, e.Delete("box-does-not-exist"))
}

func TestDetectStyleDominantColor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	white := color.RGBA{255, 255, 255, 255}
	red := color.RGBA{200, 0, 0, 255}
	blue := color.RGBA{0, 0, 200, 255}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.SetRGBA(x, y, white)
		}
	}
	// 40 red pixels, 10 blue pixels.
	for y := 0; y < 4; y++ {
		for x := 0; x < 10; x++ {
			img.SetRGBA(x, y, red)
		}
	}
	for x := 0; x < 10; x++ {
		img.SetRGBA(x, 5, blue)
	}

	hex, bold := DetectStyle(img, img.Bounds())
	assert.Equal(t, "#c80000", hex)
	// Coverage is 50%, above the bold threshold.
	assert.True(t, bold)

	// A mostly-white region is not bold and falls back to black.
	blank := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			blank.SetRGBA(x, y, white)
		}
	}
	hex, bold = DetectStyle(blank, blank.Bounds())
	assert.Equal(t, "#000000", hex)
	assert.False(t, bold)
}

func TestRenderBakesTextIntoPNG(t *testing.T) {
	rec := &stubRecognizer{lines: []Line{{Text: "Rendered words here", Box: image.Rect(10, 10, 300, 40)}}}
	e := NewEditor(rec)
	require.NoError(t, e.Load(testImagePNG(t, 400, 300)))
	require.NoError(t, e.Extract(context.Background()))
	e.Boxes()[0].Color = "#112233"
	e.Boxes()[0].Underline = true

	out, err := e.Render()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, out[:4])

	rendered, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)

	// Some pixels inside the box must no longer be white.
	changed := 0
	for y := 10; y < 40; y++ {
		for x := 10; x < 300; x++ {
			r, g, b, _ := rendered.At(x, y).RGBA()
			if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
				changed++
			}
		}
	}
	assert.Greater(t, changed, 10)
}

func TestExportDocFallback(t *testing.T) {
	rec := &stubRecognizer{lines: []Line{
		{Text: "first <line>", Box: image.Rect(0, 0, 100, 30)},
		{Text: "second", Box: image.Rect(0, 40, 100, 70)},
	}}
	e := NewEditor(rec)
	require.NoError(t, e.Load(testImagePNG(t, 400, 300)))
	require.NoError(t, e.Extract(context.Background()))

	assert.Equal(t, "first <line>\n\nsecond", e.ExtractedText())

	doc := string(e.ExportDoc())
	assert.Contains(t, doc, "first &lt;line&gt;")
	assert.Contains(t, doc, "<br/><br/>second")
}

func TestExportDocxProducesZipPackage(t *testing.T) {
	rec := &stubRecognizer{lines: []Line{{Text: "content", Box: image.Rect(0, 0, 100, 30)}}}
	e := NewEditor(rec)
	require.NoError(t, e.Load(testImagePNG(t, 400, 300)))
	require.NoError(t, e.Extract(context.Background()))

	out, err := e.ExportDocx()
	require.NoError(t, err)
	// docx is a zip container.
	assert.Equal(t, []byte{'P', 'K'}, out[:2])
}
