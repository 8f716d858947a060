package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesPerType(t *testing.T) {
	tests := []struct {
		docType DocumentType
		count   int
		firstID string
	}{
		{Permission, 3, "permission-formal"},
		{Cover, 3, "cover-modern"},
		{Resume, 3, "resume-professional"},
		{Leave, 3, "leave-formal"},
		{Greeting, 5, "greeting-birthday"},
		{Business, 3, "business-proposal"},
	}

	for _, tt := range tests {
		t.Run(string(tt.docType), func(t *testing.T) {
			got := Templates(tt.docType)
			require.Len(t, got, tt.count)
			assert.Equal(t, tt.firstID, got[0].ID)
			for _, tpl := range got {
				assert.NotEmpty(t, tpl.Name)
				assert.NotEmpty(t, tpl.Fields)
			}
		})
	}
}

func TestTemplatesUnknownType(t *testing.T) {
	assert.Nil(t, Templates(DocumentType("invoice")))
}

func TestParseDocumentType(t *testing.T) {
	docType, err := ParseDocumentType("greeting")
	require.NoError(t, err)
	assert.Equal(t, Greeting, docType)

	_, err = ParseDocumentType("memo")
	assert.Error(t, err)
}

func TestTemplateByID(t *testing.T) {
	tpl, ok := TemplateByID(Greeting, "greeting-birthday")
	require.True(t, ok)
	assert.Equal(t, []string{"recipientName", "message", "wishes", "senderName"}, tpl.Fields)

	_, ok = TemplateByID(Greeting, "greeting-retirement")
	assert.False(t, ok)

	// Template ids do not leak across document types.
	_, ok = TemplateByID(Resume, "greeting-birthday")
	assert.False(t, ok)
}

func TestFieldCatalogCoversAllTemplateFields(t *testing.T) {
	// Every field referenced by a template must have a catalog entry,
	// otherwise the form renderer would silently drop it.
	for _, docType := range DocumentTypes() {
		for _, tpl := range Templates(docType) {
			for _, field := range tpl.Fields {
				_, ok := Field(field)
				assert.True(t, ok, "missing catalog entry for %s (%s)", field, tpl.ID)
			}
		}
	}
}

func TestFieldLookup(t *testing.T) {
	config, ok := Field("reason")
	require.True(t, ok)
	assert.Equal(t, KindTextarea, config.Kind)
	assert.Equal(t, "Reason", config.Label)

	_, ok = Field("nonexistent")
	assert.False(t, ok)
}

func TestIsParagraph(t *testing.T) {
	assert.True(t, IsParagraph("message"))
	assert.False(t, IsParagraph("email"))
	assert.False(t, IsParagraph("nonexistent"))
}

func TestSuggestReturnsCatalogEntry(t *testing.T) {
	examples := Suggestions(Greeting, "recipientName")
	require.NotEmpty(t, examples)

	got, ok := Suggest(Greeting, "recipientName")
	require.True(t, ok)
	assert.Contains(t, examples, got)
}

func TestSuggestVariesAcrossCalls(t *testing.T) {
	// With more than one example, repeated calls must eventually produce
	// at least two distinct values.
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		s, ok := Suggest(Leave, "leaveType")
		require.True(t, ok)
		seen[s] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestSuggestUnknownPair(t *testing.T) {
	_, ok := Suggest(Resume, "wishes")
	assert.False(t, ok)

	_, ok = Suggest(DocumentType("memo"), "reason")
	assert.False(t, ok)
}

func TestPreviewTitle(t *testing.T) {
	assert.Equal(t, "Leave Application", PreviewTitle(Leave))
	assert.Equal(t, "Document", PreviewTitle(DocumentType("memo")))
}
