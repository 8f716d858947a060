package annotate

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Line is one recognized text line with its bounding box in original-image
// coordinates.
type Line struct {
	Text string
	Box  image.Rectangle
}

// Recognizer extracts text lines from an image. Implementations are expected
// to be safe for sequential reuse but not for concurrent calls.
type Recognizer interface {
	Recognize(ctx context.Context, img image.Image) ([]Line, error)
}

// TesseractRecognizer runs a local Tesseract engine over the image.
type TesseractRecognizer struct {
	// Language is the traineddata language, "eng" when empty.
	Language string
}

// Recognize encodes the image to PNG and asks Tesseract for line-level
// bounding boxes. Empty lines are kept here; the editor filters them.
func (r *TesseractRecognizer) Recognize(ctx context.Context, img image.Image) ([]Line, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image for OCR: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	lang := r.Language
	if lang == "" {
		lang = "eng"
	}
	if err := client.SetLanguage(lang); err != nil {
		return nil, fmt.Errorf("failed to set OCR language: %w", err)
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to load image into OCR engine: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, fmt.Errorf("text recognition failed: %w", err)
	}

	lines := make([]Line, 0, len(boxes))
	for _, box := range boxes {
		lines = append(lines, Line{
			Text: strings.TrimRight(box.Word, "\n"),
			Box:  box.Box,
		})
	}
	return lines, nil
}
