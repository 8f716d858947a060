package slides

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flanksource/docsmith/pdf"
)

func samplePDF(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	b := pdf.NewBuilder()
	for _, p := range paragraphs {
		b.AddText(p, pdf.TextProps{Size: 12})
		b.Space(4)
	}
	out, err := b.Output()
	require.NoError(t, err)
	return out
}

func TestFromPDFCreatesSlidePerPage(t *testing.T) {
	data := samplePDF(t, "Introduction to the plan.", "Detailed figures follow.")

	deck, err := FromPDF(data)
	require.NoError(t, err)
	require.GreaterOrEqual(t, deck.Len(), 1)

	first := deck.Current()
	assert.Equal(t, 0, deck.CurrentIndex())
	assert.Equal(t, "Slide 1", first.Title)
	assert.Equal(t, LayoutContent, first.Layout)
	assert.Equal(t, "#ffffff", first.BGColor)
	assert.NotEmpty(t, first.Background, "page raster becomes the background")
	assert.NotEmpty(t, first.Content)
}

func TestFromPDFTruncatesContent(t *testing.T) {
	long := strings.Repeat("word ", 300)
	deck, err := FromPDF(samplePDF(t, long))
	require.NoError(t, err)
	assert.LessOrEqual(t, len([]rune(deck.Current().Content)), 500)
}

func TestFromPDFRejectsGarbage(t *testing.T) {
	_, err := FromPDF([]byte("definitely not a pdf"))
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 500))
	assert.Equal(t, "ab", truncate("abcd", 2))
	assert.Equal(t, "", truncate("", 10))
}
