package webreport

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/playwright-community/playwright-go"

	"github.com/flanksource/docsmith/pdf"
)

// Screenshotter captures rendered HTML as a full-page PNG. The production
// implementation drives a headless browser; tests substitute a fake.
type Screenshotter interface {
	CaptureHTML(html string) ([]byte, error)
	Close() error
}

// Viewport width used for report captures.
const captureWidth = 1200

// BrowserCapture is the headless-Chromium Screenshotter. The browser starts
// lazily on first capture and is reused until Close.
type BrowserCapture struct {
	pw      *playwright.Playwright
	browser playwright.Browser
}

// NewBrowserCapture creates an unstarted capture session.
func NewBrowserCapture() *BrowserCapture {
	return &BrowserCapture{}
}

func (c *BrowserCapture) ensureBrowser() error {
	if c.browser != nil {
		return nil
	}

	if err := playwright.Install(&playwright.RunOptions{
		Browsers: []string{"chromium"},
	}); err != nil {
		return fmt.Errorf("failed to install browser: %w", err)
	}

	pw, err := playwright.Run()
	if err != nil {
		return fmt.Errorf("failed to start playwright: %w", err)
	}
	c.pw = pw

	browser, err := c.pw.Chromium.Launch()
	if err != nil {
		return fmt.Errorf("failed to launch browser: %w", err)
	}
	c.browser = browser
	return nil
}

// CaptureHTML renders the HTML at the report viewport width and screenshots
// the full page.
func (c *BrowserCapture) CaptureHTML(html string) ([]byte, error) {
	if err := c.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := c.browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	defer page.Close()

	if err := page.SetViewportSize(captureWidth, 800); err != nil {
		return nil, fmt.Errorf("failed to set viewport: %w", err)
	}
	if err := page.SetContent(html); err != nil {
		return nil, fmt.Errorf("failed to set page content: %w", err)
	}

	fullPage := true
	shot, err := page.Screenshot(playwright.PageScreenshotOptions{
		Type:     playwright.ScreenshotTypePng,
		FullPage: &fullPage,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to capture report: %w", err)
	}
	return shot, nil
}

// Close shuts down the browser session.
func (c *BrowserCapture) Close() error {
	if c.browser != nil {
		if err := c.browser.Close(); err != nil {
			return err
		}
		c.browser = nil
	}
	if c.pw != nil {
		if err := c.pw.Stop(); err != nil {
			return err
		}
		c.pw = nil
	}
	return nil
}

// ExportPDF renders the analysis to HTML, captures it, and paginates the
// capture into an A4 PDF: the tall screenshot is cut into page-proportioned
// bands, one band per page.
func ExportPDF(a *Analysis, shooter Screenshotter) ([]byte, error) {
	html, err := RenderHTML(a)
	if err != nil {
		return nil, err
	}

	capture, err := shooter.CaptureHTML(html)
	if err != nil {
		return nil, err
	}

	bands, err := sliceIntoPages(capture)
	if err != nil {
		return nil, err
	}

	b := pdf.NewBuilder(pdf.WithMargins(10))
	for _, band := range bands {
		b.AddPageImage(band, extension.Png)
	}
	return b.Output()
}

// sliceIntoPages cuts a capture into bands whose aspect ratio matches the
// printable A4 page. The final band keeps its shorter height.
func sliceIntoPages(capture []byte) ([][]byte, error) {
	img, err := png.Decode(bytes.NewReader(capture))
	if err != nil {
		return nil, fmt.Errorf("failed to decode capture: %w", err)
	}

	bounds := img.Bounds()
	bandHeight := int(float64(bounds.Dx()) * pdf.PageHeight / pdf.PageWidth)
	if bandHeight < 1 {
		return nil, fmt.Errorf("capture too narrow to paginate")
	}

	sub, ok := img.(interface {
		SubImage(image.Rectangle) image.Image
	})
	if !ok {
		return nil, fmt.Errorf("capture image does not support slicing")
	}

	var bands [][]byte
	for y := bounds.Min.Y; y < bounds.Max.Y; y += bandHeight {
		bottom := y + bandHeight
		if bottom > bounds.Max.Y {
			bottom = bounds.Max.Y
		}
		var buf bytes.Buffer
		band := sub.SubImage(image.Rect(bounds.Min.X, y, bounds.Max.X, bottom))
		if err := png.Encode(&buf, band); err != nil {
			return nil, fmt.Errorf("failed to encode page band: %w", err)
		}
		bands = append(bands, buf.Bytes())
	}
	return bands, nil
}
