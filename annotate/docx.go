package annotate

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/fumiama/go-docx"
)

// Export filenames.
const (
	DocxFilename          = "extracted-text.docx"
	DocFilename           = "extracted-text.doc"
	RenderedImageFilename = "edited-image.png"
)

// ExtractedText joins every box's text with blank lines, in box order.
func (e *Editor) ExtractedText() string {
	texts := make([]string, 0, len(e.boxes))
	for _, box := range e.boxes {
		texts = append(texts, box.Text)
	}
	return strings.Join(texts, "\n\n")
}

// ExportDocx writes the extracted text as a Word document, one paragraph per
// box.
func (e *Editor) ExportDocx() ([]byte, error) {
	doc := docx.New().WithDefaultTheme()
	for _, box := range e.boxes {
		doc.AddParagraph().AddText(box.Text)
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write docx: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportDoc writes the legacy fallback: an HTML payload Word opens as a .doc
// file. Used when a proper docx cannot be produced.
func (e *Editor) ExportDoc() []byte {
	text := html.EscapeString(e.ExtractedText())
	body := strings.ReplaceAll(text, "\n", "<br/>")
	page := fmt.Sprintf(`<!DOCTYPE html><html><head><meta charset="utf-8"><title>Extracted Text</title></head><body><div style="white-space:pre-wrap;">%s</div></body></html>`, body)
	return []byte(page)
}
