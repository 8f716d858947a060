package slides

import (
	"bytes"
	"fmt"
	"image/png"
	"strings"

	"github.com/flanksource/commons/logger"
	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Page rasters render at 1.5x the PDF's natural 72 DPI.
const rasterDPI = 108

// Slide content seeded from a page is capped at this many characters.
const contentLimit = 500

// FromPDF converts every page of a PDF into a slide: the page raster becomes
// the slide background and the page text, truncated, becomes the content. A
// page that fails to raster is skipped; the rest of the document still
// converts.
func FromPDF(data []byte) (*Deck, error) {
	if _, err := api.ReadContext(bytes.NewReader(data), model.NewDefaultConfiguration()); err != nil {
		return nil, fmt.Errorf("not a valid PDF: %w", err)
	}

	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	texts := pageTexts(data)

	deck := NewDeck()
	for page := 0; page < doc.NumPage(); page++ {
		img, err := doc.ImageDPI(page, rasterDPI)
		if err != nil {
			logger.Errorf("failed to raster page %d: %v", page+1, err)
			continue
		}
		var raster bytes.Buffer
		if err := png.Encode(&raster, img); err != nil {
			logger.Errorf("failed to encode page %d raster: %v", page+1, err)
			continue
		}

		content := ""
		if page < len(texts) {
			content = truncate(strings.TrimSpace(texts[page]), contentLimit)
		}
		if content == "" {
			content = fmt.Sprintf("Content from PDF page %d", page+1)
		}

		slide := deck.Add()
		slide.Title = fmt.Sprintf("Slide %d", page+1)
		slide.Content = content
		slide.Background = raster.Bytes()
	}

	if deck.Len() == 0 {
		return nil, fmt.Errorf("no pages could be converted")
	}
	deck.Select(0)
	return deck, nil
}

// pageTexts extracts plain text per page. Extraction failures degrade to the
// per-page placeholder rather than failing the conversion.
func pageTexts(data []byte) []string {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		logger.Errorf("text extraction unavailable: %v", err)
		return nil
	}

	texts := make([]string, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			logger.Errorf("failed to extract text from page %d: %v", i, err)
			continue
		}
		texts[i-1] = text
	}
	return texts
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
