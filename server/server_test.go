package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flanksource/docsmith/annotate"
	"github.com/flanksource/docsmith/pdf"
	"github.com/flanksource/docsmith/slides"
	"github.com/flanksource/docsmith/theme"
	"github.com/flanksource/docsmith/webreport"
)

type stubRecognizer struct {
	lines []annotate.Line
	err   error
}

func (s *stubRecognizer) Recognize(_ context.Context, _ image.Image) ([]annotate.Line, error) {
	return s.lines, s.err
}

type fakeShooter struct{}

func (f *fakeShooter) CaptureHTML(_ string) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, 400, 600))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (f *fakeShooter) Close() error { return nil }

func newTestServer(t *testing.T, opts ...Option) *Server {
	t.Helper()
	base := []Option{
		WithRecognizer(&stubRecognizer{lines: []annotate.Line{
			{Text: "Hello world", Box: image.Rect(10, 10, 310, 40)},
		}}),
		WithScreenshotter(&fakeShooter{}),
		WithImageSearcher(&slides.ImageSearcher{Endpoint: "http://127.0.0.1:0"}),
		WithGrammarChecker(&slides.GrammarChecker{Endpoint: "http://127.0.0.1:0"}),
		WithAnalyzer(webreport.NewSeededAnalyzer(7, time.Now)),
		WithThemeStore(theme.NewStoreAt(filepath.Join(t.TempDir(), "theme.yaml"))),
	}
	return New([]byte("test-secret"), append(base, opts...)...)
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func uploadFile(t *testing.T, s *Server, path, field, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 400, 200))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestListTemplates(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/api/templates", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	groups := decode[[]templateGroup](t, rec)
	require.Len(t, groups, 6)
	assert.Equal(t, "Permission Letter", groups[0].Title)
	assert.NotEmpty(t, groups[0].Templates)
}

func TestTemplatesForUnknownType(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/api/templates/novel", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSuggestField(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/suggest?type=greeting&field=holiday", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	suggestion := decode[map[string]string](t, rec)
	assert.Equal(t, "holiday", suggestion["field"])
	assert.NotEmpty(t, suggestion["value"])

	rec = doJSON(t, s, http.MethodGet, "/api/suggest?type=greeting&field=nonsense", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDocumentPreview(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/documents/preview", documentRequest{
		Type:     "leave",
		Template: "leave-casual",
		Fields:   map[string]string{"managerName": "Ms. Davis"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[map[string]json.RawMessage](t, rec)
	assert.Contains(t, string(body["preview"]), "Ms. Davis")
	assert.Contains(t, string(body["form"]), "managerName")
}

func TestDocumentExportRequiresFields(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/documents/export", documentRequest{
		Type:     "greeting",
		Template: "greeting-birthday",
		Fields:   map[string]string{"recipientName": "Sarah"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestDocumentExportProducesPDF(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/documents/export", documentRequest{
		Type:     "greeting",
		Template: "greeting-birthday",
		Fields: map[string]string{
			"recipientName": "Sarah",
			"message":       "Have a wonderful day.",
			"senderName":    "Alex",
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "greeting_")
	pdf.AssertValidPDF(t, rec.Body.Bytes())
}

func TestDocumentExportRejectsUnknownTemplate(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/documents/export", documentRequest{
		Type:     "greeting",
		Template: "greeting-nonexistent",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnnotateFlow(t *testing.T) {
	s := newTestServer(t)

	rec := uploadFile(t, s, "/api/annotate", "image", "scan.png", testPNG(t))
	require.Equal(t, http.StatusOK, rec.Code)
	loaded := decode[map[string]any](t, rec)
	editorID, _ := loaded["editor"].(string)
	require.NotEmpty(t, editorID)
	assert.Equal(t, float64(400), loaded["width"])

	rec = doJSON(t, s, http.MethodPost, "/api/annotate/"+editorID+"/extract", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	extracted := decode[struct {
		Boxes []boxView `json:"boxes"`
	}](t, rec)
	require.Len(t, extracted.Boxes, 1)
	box := extracted.Boxes[0]
	assert.Equal(t, "Hello world", box.Text)

	newText := "Edited line"
	rec = doJSON(t, s, http.MethodPatch,
		fmt.Sprintf("/api/annotate/%s/boxes/%s", editorID, box.ID),
		boxUpdate{Text: &newText})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Edited line", decode[boxView](t, rec).Text)

	dx := 25.0
	rec = doJSON(t, s, http.MethodPatch,
		fmt.Sprintf("/api/annotate/%s/boxes/%s", editorID, box.ID),
		boxUpdate{DragX: &dx})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, box.X+25, decode[boxView](t, rec).X)

	rec = doJSON(t, s, http.MethodGet, "/api/annotate/"+editorID+"/render", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	_, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	assert.NoError(t, err)

	rec = doJSON(t, s, http.MethodGet, "/api/annotate/"+editorID+"/export?format=txt", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Edited line", rec.Body.String())

	rec = doJSON(t, s, http.MethodGet, "/api/annotate/"+editorID+"/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")), "docx is a zip package")

	rec = doJSON(t, s, http.MethodDelete,
		fmt.Sprintf("/api/annotate/%s/boxes/%s", editorID, box.ID), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, s, http.MethodDelete,
		fmt.Sprintf("/api/annotate/%s/boxes/%s", editorID, box.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAnnotateUnknownEditor(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/api/annotate/editor-99/render", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAnnotateRejectsGarbageImage(t *testing.T) {
	s := newTestServer(t)
	rec := uploadFile(t, s, "/api/annotate", "image", "scan.png", []byte("not an image"))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func samplePDF(t *testing.T) []byte {
	t.Helper()
	b := pdf.NewBuilder()
	b.AddText("Quarterly review agenda.", pdf.TextProps{Size: 12})
	out, err := b.Output()
	require.NoError(t, err)
	return out
}

func TestSlidesFlow(t *testing.T) {
	s := newTestServer(t)

	rec := uploadFile(t, s, "/api/slides/convert", "pdf", "deck.pdf", samplePDF(t))
	require.Equal(t, http.StatusOK, rec.Code)
	converted := decode[struct {
		Deck   string      `json:"deck"`
		Slides []slideView `json:"slides"`
	}](t, rec)
	require.NotEmpty(t, converted.Deck)
	require.NotEmpty(t, converted.Slides)
	assert.Equal(t, "Slide 1", converted.Slides[0].Title)

	title := "Opening"
	layout := "twoColumn"
	rec = doJSON(t, s, http.MethodPut, "/api/slides/"+converted.Deck+"/0",
		slideUpdate{Title: &title, Layout: &layout})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[slideView](t, rec)
	assert.Equal(t, "Opening", updated.Title)
	assert.Equal(t, slides.LayoutTwoColumn, updated.Layout)

	bogus := "spiral"
	rec = doJSON(t, s, http.MethodPut, "/api/slides/"+converted.Deck+"/0",
		slideUpdate{Layout: &bogus})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/api/slides/"+converted.Deck+"/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")), "pptx is a zip package")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "presentation_")
}

func TestSlidesUnknownDeck(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/api/slides/deck-42", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestImageSearchFallsBackToPlaceholders(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/api/images/search?q=mountains", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	results := decode[[]slides.Image](t, rec)
	assert.Len(t, results, 12)

	rec = doJSON(t, s, http.MethodGet, "/api/images/search", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGrammarFallbackHeuristics(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/grammar/check",
		grammarRequest{Text: "this has  two problems"})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[struct {
		Issues []slides.GrammarIssue `json:"issues"`
	}](t, rec)
	assert.NotEmpty(t, body.Issues)
}

func TestReportGeneration(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/report",
		reportRequest{URL: "not a url", Author: "A"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/api/report",
		reportRequest{URL: "https://example.com", Author: "Pat"})
	require.Equal(t, http.StatusOK, rec.Code)
	analysis := decode[webreport.Analysis](t, rec)
	assert.Equal(t, "example.com", analysis.Domain)
}

func TestReportExportProducesPDF(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/report/export", reportRequest{
		URL:    "https://example.com",
		Author: "Pat",
		UsageEdits: map[string]string{
			"targetAudience": "Reviewers",
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "Website_Report_example.com_")
	pdf.AssertValidPDF(t, rec.Body.Bytes())
}

func TestSearchSuggestions(t *testing.T) {
	results := SearchSuggestions("ppt")
	require.NotEmpty(t, results)
	assert.Equal(t, "pdf to ppt", results[0].Keyword)
	assert.Equal(t, "slides", results[0].Target)

	assert.Empty(t, SearchSuggestions("  "))
	assert.Len(t, SearchSuggestions("text to"), 5)
}

func TestSearchEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/api/search?q=website", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	results := decode[[]SearchResult](t, rec)
	require.Len(t, results, 1)
	assert.Equal(t, "Website Report Generator", results[0].Label)
}

func TestThemeToggleSticksToSession(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/theme", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "light", decode[map[string]string](t, rec)["mode"])

	rec = doJSON(t, s, http.MethodPost, "/api/theme/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dark", decode[map[string]string](t, rec)["mode"])
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/api/theme", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	verify := httptest.NewRecorder()
	s.Handler().ServeHTTP(verify, req)
	require.Equal(t, http.StatusOK, verify.Code)
	assert.Contains(t, verify.Body.String(), "dark")
}

func TestThemeFallsBackToStore(t *testing.T) {
	store := theme.NewStoreAt(filepath.Join(t.TempDir(), "theme.yaml"))
	require.NoError(t, store.Save(theme.Dark))

	s := newTestServer(t, WithThemeStore(store))
	rec := doJSON(t, s, http.MethodGet, "/api/theme", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dark", decode[map[string]string](t, rec)["mode"])
}
