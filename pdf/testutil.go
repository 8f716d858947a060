package pdf

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// AssertValidPDF performs basic structure validation on generated PDF bytes:
// header, minimum size, and a pdfcpu parse.
func AssertValidPDF(t *testing.T, pdfData []byte) {
	t.Helper()

	if len(pdfData) < 4 || string(pdfData[:4]) != "%PDF" {
		t.Error("generated data doesn't look like a PDF (missing %PDF header)")
		return
	}
	if len(pdfData) < 100 {
		t.Error("PDF appears too small to contain meaningful content")
		return
	}

	reader := bytes.NewReader(pdfData)
	if _, err := api.ReadContext(reader, model.NewDefaultConfiguration()); err != nil {
		t.Errorf("PDF structure validation failed: %v", err)
	}
}

// PDFInfo returns the page count and byte size of a generated PDF.
func PDFInfo(pdfData []byte) (pages int, size int, err error) {
	reader := bytes.NewReader(pdfData)
	ctx, err := api.ReadContext(reader, model.NewDefaultConfiguration())
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read PDF: %w", err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return 0, 0, fmt.Errorf("failed to count PDF pages: %w", err)
	}
	return ctx.PageCount, len(pdfData), nil
}
