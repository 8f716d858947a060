package slides

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeckAddSelectDelete(t *testing.T) {
	d := NewDeck()
	assert.Nil(t, d.Current())
	assert.False(t, d.Delete())

	first := d.Add()
	second := d.Add()
	assert.Equal(t, "Slide 1", first.Title)
	assert.Equal(t, "Slide 2", second.Title)
	assert.Equal(t, LayoutContent, second.Layout)
	assert.Equal(t, "#ffffff", second.BGColor)
	assert.Equal(t, 1, d.CurrentIndex())

	// Deleting the last slide clamps the cursor.
	require.True(t, d.Delete())
	assert.Equal(t, 0, d.CurrentIndex())
	assert.Same(t, first, d.Current())

	assert.False(t, d.Select(5))
	assert.True(t, d.Select(0))
}

func TestSlideImageDeduplication(t *testing.T) {
	d := NewDeck()
	slide := d.Add()

	img := Image{ID: "abc", URL: "https://example.com/a.png", Alt: "a"}
	assert.True(t, slide.AddImage(img))
	assert.False(t, slide.AddImage(img), "same id must be suppressed")
	assert.Len(t, slide.Images, 1)

	assert.True(t, slide.AddImage(Image{ID: "def"}))
	assert.True(t, slide.RemoveImage("abc"))
	assert.False(t, slide.RemoveImage("abc"))
	require.Len(t, slide.Images, 1)
	assert.Equal(t, "def", slide.Images[0].ID)
}

func TestGroupRequiresTwoElements(t *testing.T) {
	d := NewDeck()
	d.Add()

	_, err := d.Group([]string{"title"})
	require.Error(t, err)

	id1, err := d.Group([]string{"title", "content"})
	require.NoError(t, err)
	id2, err := d.Group([]string{"title", "content"})
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2, "group ids are never reused")
	assert.Equal(t, id2, d.Current().Groups["title"])
}

func TestParseLayout(t *testing.T) {
	for _, valid := range []string{"title", "content", "twoColumn", "imageLeft", "imageRight"} {
		_, err := ParseLayout(valid)
		assert.NoError(t, err, valid)
	}
	_, err := ParseLayout("diagonal")
	assert.Error(t, err)
}

func TestImageSearchParsesResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "mountains", r.URL.Query().Get("query"))
		assert.Equal(t, "12", r.URL.Query().Get("per_page"))
		fmt.Fprint(w, `{"results":[{"id":"p1","alt_description":"a peak","urls":{"regular":"https://img/r1","small":"https://img/s1"}},{"id":"p2","description":"valley","urls":{"regular":"https://img/r2","small":"https://img/s2"}}]}`)
	}))
	defer server.Close()

	s := &ImageSearcher{Endpoint: server.URL, Client: server.Client()}
	images, err := s.Search(context.Background(), "mountains")
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, "p1", images[0].ID)
	assert.Equal(t, "a peak", images[0].Alt)
	assert.Equal(t, "https://img/r1", images[0].URL)
	assert.Equal(t, "valley", images[1].Alt)
}

func TestImageSearchFallsBackToPlaceholders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	s := &ImageSearcher{Endpoint: server.URL, Client: server.Client()}
	images, err := s.Search(context.Background(), "sunset")
	require.NoError(t, err)
	require.Len(t, images, 12)
	assert.Equal(t, "demo-1", images[0].ID)
	assert.Contains(t, images[0].URL, "picsum.photos")
	assert.Equal(t, "sunset image 3", images[2].Alt)

	_, err = s.Search(context.Background(), "")
	assert.Error(t, err)
}

func TestGrammarRemoteCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "en-US", r.Form.Get("language"))
		fmt.Fprint(w, `{"matches":[{"message":"Possible typo","offset":5,"length":4,"replacements":[{"value":"team"}]}]}`)
	}))
	defer server.Close()

	c := &GrammarChecker{Endpoint: server.URL, Client: server.Client()}
	issues, err := c.Check(context.Background(), "the tema wins.")
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "Possible typo", issues[0].Message)

	fixed := issues[0].Apply("the tema wins.")
	assert.Equal(t, "the team wins.", fixed)
}

func TestGrammarFallbackHeuristics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c := &GrammarChecker{Endpoint: server.URL, Client: server.Client()}
	issues, err := c.Check(context.Background(), "bad  text with no ending")
	require.NoError(t, err)

	messages := make([]string, 0, len(issues))
	for _, issue := range issues {
		messages = append(messages, issue.Message)
	}
	assert.Contains(t, messages, "Multiple consecutive spaces found")
	assert.Contains(t, messages, "Text should start with capital letter")
	assert.Contains(t, messages, "Consider adding punctuation at the end")

	assert.Empty(t, BasicChecks("Clean sentence."))
}

func TestApplyOutOfRangeIsNoop(t *testing.T) {
	issue := GrammarIssue{Offset: 50, Length: 4, Replacements: []string{"x"}}
	assert.Equal(t, "short", issue.Apply("short"))

	none := GrammarIssue{Offset: 0, Length: 2}
	assert.Equal(t, "short", none.Apply("short"))
}

func TestWritePPTXPackageLayout(t *testing.T) {
	d := NewDeck()
	title := d.Add()
	title.Layout = LayoutTitle
	title.Title = "Quarterly Review"
	title.Content = "Q3 2026"
	title.BGColor = "#1a2b3c"

	body := d.Add()
	body.Content = "Revenue grew.\nCosts fell."
	body.Images = []Image{{ID: "img1", Data: pngBytes()}}

	out, err := WritePPTX(d)
	require.NoError(t, err)

	reader, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	require.NoError(t, err)

	parts := map[string]*zip.File{}
	for _, f := range reader.File {
		parts[f.Name] = f
	}
	for _, required := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/slide2.xml",
		"ppt/slides/_rels/slide2.xml.rels",
	} {
		assert.Contains(t, parts, required)
	}

	slide1 := readZipFile(t, parts["ppt/slides/slide1.xml"])
	assert.Contains(t, slide1, "Quarterly Review")
	assert.Contains(t, slide1, `sz="4400"`)
	assert.Contains(t, slide1, `algn="ctr"`)
	assert.Contains(t, slide1, `val="1A2B3C"`)
	assert.NoError(t, checkWellFormed(slide1))

	slide2 := readZipFile(t, parts["ppt/slides/slide2.xml"])
	assert.Contains(t, slide2, "Revenue grew.")
	assert.Contains(t, slide2, "r:embed")
	assert.NoError(t, checkWellFormed(slide2))

	// The embedded image landed in media.
	found := false
	for name := range parts {
		if strings.HasPrefix(name, "ppt/media/") && strings.HasSuffix(name, ".png") {
			found = true
		}
	}
	assert.True(t, found, "expected embedded png in ppt/media/")
}

func TestWritePPTXEmptyDeck(t *testing.T) {
	_, err := WritePPTX(NewDeck())
	assert.Error(t, err)
}

func TestWritePPTXEscapesText(t *testing.T) {
	d := NewDeck()
	s := d.Add()
	s.Title = `Profit & Loss <2026>`

	out, err := WritePPTX(d)
	require.NoError(t, err)

	reader, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	require.NoError(t, err)
	for _, f := range reader.File {
		if f.Name == "ppt/slides/slide1.xml" {
			content := readZipFile(t, f)
			assert.Contains(t, content, "Profit &amp; Loss &lt;2026&gt;")
			assert.NoError(t, checkWellFormed(content))
		}
	}
}

func TestPresentationFilename(t *testing.T) {
	name := PresentationFilename()
	assert.True(t, strings.HasPrefix(name, "presentation_"))
	assert.True(t, strings.HasSuffix(name, ".pptx"))
}

func readZipFile(t *testing.T, f *zip.File) string {
	t.Helper()
	rc, err := f.Open()
	require.NoError(t, err)
	defer rc.Close()
	var buf bytes.Buffer
	_, err = buf.ReadFrom(rc)
	require.NoError(t, err)
	return buf.String()
}

func checkWellFormed(content string) error {
	decoder := xml.NewDecoder(strings.NewReader(content))
	for {
		_, err := decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// pngBytes is a 1x1 transparent PNG.
func pngBytes() []byte {
	return []byte{
		0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
		0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
		0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
		0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x62, 0x00, 0x01, 0x00, 0x00,
		0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
		0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
	}
}
