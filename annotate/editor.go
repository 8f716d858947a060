// Package annotate implements the image text-overlay editor: load a raster
// image, recognize text lines, overlay one editable box per line, and bake
// the edited text back into the image or export it as a word-processor
// document.
package annotate

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	"github.com/flanksource/commons/logger"
	xdraw "golang.org/x/image/draw"
)

// MaxWorkingWidth caps the working copy of a loaded image. Wider images are
// downscaled proportionally; narrower ones are used as-is.
const MaxWorkingWidth = 1200

// State tracks the editor lifecycle.
type State int

const (
	StateEmpty State = iota
	StateLoaded
	StateAnnotated
)

// Editor owns the working image and its text boxes. It is not safe for
// concurrent use; each editing session gets its own Editor.
type Editor struct {
	recognizer Recognizer

	state    State
	original image.Image
	working  *image.RGBA
	scale    float64 // working pixels per original pixel

	boxes    []*TextBox
	nextID   int
	selected string
	status   string
}

// NewEditor creates an empty editor using the given recognizer.
func NewEditor(recognizer Recognizer) *Editor {
	return &Editor{recognizer: recognizer, scale: 1}
}

// State returns the current lifecycle state.
func (e *Editor) State() State { return e.state }

// Status returns the last user-facing status message.
func (e *Editor) Status() string { return e.status }

// Boxes returns the live text boxes in creation order.
func (e *Editor) Boxes() []*TextBox { return e.boxes }

// WorkingBounds returns the working image dimensions in pixels.
func (e *Editor) WorkingBounds() (width, height int) {
	if e.working == nil {
		return 0, 0
	}
	b := e.working.Bounds()
	return b.Dx(), b.Dy()
}

// Load decodes image bytes and makes them the working image. Any existing
// boxes are discarded. Decode failure leaves the previous state untouched.
func (e *Editor) Load(data []byte) error {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		e.status = "Failed to load image"
		return fmt.Errorf("failed to decode image: %w", err)
	}
	e.LoadImage(img)
	return nil
}

// LoadImage makes img the working image, downscaling to MaxWorkingWidth.
func (e *Editor) LoadImage(img image.Image) {
	bounds := img.Bounds()
	scale := 1.0
	if bounds.Dx() > MaxWorkingWidth {
		scale = float64(MaxWorkingWidth) / float64(bounds.Dx())
	}
	width := int(float64(bounds.Dx()) * scale)
	height := int(float64(bounds.Dy()) * scale)

	working := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(working, working.Bounds(), img, bounds, xdraw.Over, nil)

	e.original = img
	e.working = working
	e.scale = scale
	e.boxes = nil
	e.selected = ""
	e.state = StateLoaded
	e.status = fmt.Sprintf("Image loaded (%dx%d working copy)", width, height)
}

// Extract runs recognition over the original image and replaces the box set
// with one box per non-empty line. Box geometry is the recognized bounding
// box transformed into working coordinates; font size tracks the line height.
// On failure the existing boxes are kept and the error is returned.
func (e *Editor) Extract(ctx context.Context) error {
	if e.state == StateEmpty {
		e.status = "Please upload an image first"
		return fmt.Errorf("no image loaded")
	}

	lines, err := e.recognizer.Recognize(ctx, e.original)
	if err != nil {
		e.status = "Text extraction failed. Please try again."
		logger.Errorf("OCR pass failed: %v", err)
		return fmt.Errorf("text extraction failed: %w", err)
	}

	boxes := make([]*TextBox, 0, len(lines))
	for _, line := range lines {
		if isBlank(line.Text) {
			continue
		}
		boxes = append(boxes, e.boxFromLine(line))
	}

	e.boxes = boxes
	e.selected = ""
	e.state = StateAnnotated
	e.status = fmt.Sprintf("Extracted %d text regions", len(boxes))
	return nil
}

func (e *Editor) boxFromLine(line Line) *TextBox {
	x := float64(line.Box.Min.X) * e.scale
	y := float64(line.Box.Min.Y) * e.scale
	width := float64(line.Box.Dx()) * e.scale
	height := float64(line.Box.Dy()) * e.scale

	// Font size tracks the unclamped line height.
	fontSize := clamp(height*0.8, 12, 20)

	scaled := image.Rect(int(x), int(y), int(x+width), int(y+height))
	hexColor, bold := DetectStyle(e.working, scaled)

	id := fmt.Sprintf("box-%d", e.nextID)
	e.nextID++

	return &TextBox{
		ID:   id,
		Text: line.Text,
		Geometry: Geometry{
			X:      x,
			Y:      y,
			Width:  maxf(MinOCRWidth, width),
			Height: maxf(MinOCRHeight, height),
		},
		FontFamily: "Inter",
		FontSize:   fontSize,
		Bold:       bold,
		Italic:     false,
		Underline:  false,
		Color:      hexColor,
	}
}

// Select marks a box as the toolbar target.
func (e *Editor) Select(id string) (*TextBox, bool) {
	box, ok := e.box(id)
	if ok {
		e.selected = id
	}
	return box, ok
}

// Selected returns the currently selected box, if any.
func (e *Editor) Selected() (*TextBox, bool) {
	return e.box(e.selected)
}

// Drag moves a box by a pointer delta, clamped to the working image.
func (e *Editor) Drag(id string, dx, dy float64) bool {
	box, ok := e.box(id)
	if !ok {
		return false
	}
	width, height := e.WorkingBounds()
	box.Geometry = box.Geometry.Drag(dx, dy, float64(width), float64(height))
	e.selected = id
	return true
}

// Resize adjusts a box from one corner handle.
func (e *Editor) Resize(id string, corner Corner, dx, dy float64) bool {
	box, ok := e.box(id)
	if !ok {
		return false
	}
	box.Geometry = box.Geometry.Resize(corner, dx, dy)
	e.selected = id
	return true
}

// SetText replaces a box's text content.
func (e *Editor) SetText(id, text string) bool {
	box, ok := e.box(id)
	if !ok {
		return false
	}
	box.Text = text
	return true
}

// Delete removes a box. The selection is cleared if it pointed at the box.
func (e *Editor) Delete(id string) bool {
	for i, box := range e.boxes {
		if box.ID == id {
			e.boxes = append(e.boxes[:i], e.boxes[i+1:]...)
			if e.selected == id {
				e.selected = ""
			}
			e.status = "Text box deleted"
			return true
		}
	}
	return false
}

func (e *Editor) box(id string) (*TextBox, bool) {
	if id == "" {
		return nil, false
	}
	for _, box := range e.boxes {
		if box.ID == id {
			return box, true
		}
	}
	return nil, false
}

// Render redraws the working image with every box's text baked in and
// returns it PNG-encoded.
func (e *Editor) Render() ([]byte, error) {
	if e.working == nil {
		return nil, fmt.Errorf("no image loaded")
	}

	out := image.NewRGBA(e.working.Bounds())
	copy(out.Pix, e.working.Pix)

	for _, box := range e.boxes {
		if err := drawTextBox(out, box); err != nil {
			return nil, fmt.Errorf("failed to render box %s: %w", box.ID, err)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode rendered image: %w", err)
	}
	return buf.Bytes(), nil
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
