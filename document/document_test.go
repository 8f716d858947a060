package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flanksource/docsmith/pdf"
	"github.com/flanksource/docsmith/registry"
)

func newTestSession(t *testing.T, docType registry.DocumentType, templateID string) *Session {
	t.Helper()
	template, ok := registry.TemplateByID(docType, templateID)
	require.True(t, ok, "template %s not registered", templateID)
	return NewSession(docType, template)
}

func TestValidateReportsMissingFields(t *testing.T) {
	s := newTestSession(t, registry.Greeting, "greeting-birthday")
	s.Set("recipientName", "Alex")
	s.Set("message", "Happy birthday!")

	err := s.Validate()
	require.Error(t, err)
	var missing *MissingFieldsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"senderName"}, missing.Fields)

	// Whitespace does not satisfy a requirement.
	s.Set("senderName", "   ")
	require.Error(t, s.Validate())

	s.Set("senderName", "Sam")
	require.NoError(t, s.Validate())
}

func TestExportRefusedUntilValid(t *testing.T) {
	s := newTestSession(t, registry.Greeting, "greeting-birthday")
	s.Set("recipientName", "Alex")
	s.Set("message", "Have a wonderful day")

	_, err := s.Export()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "senderName")

	s.Set("senderName", "Sam")
	out, err := s.Export()
	require.NoError(t, err)
	pdf.AssertValidPDF(t, out)
}

func TestFormFollowsTemplateOrder(t *testing.T) {
	s := newTestSession(t, registry.Permission, "permission-formal")
	inputs := s.Form()
	require.Len(t, inputs, len(s.Template.Fields))
	for i, input := range inputs {
		assert.Equal(t, s.Template.Fields[i], input.Name)
		assert.NotEmpty(t, input.Label)
	}

	// Required flags come from the document type.
	byName := map[string]Input{}
	for _, input := range inputs {
		byName[input.Name] = input
	}
	assert.True(t, byName["recipientName"].Required)
	assert.True(t, byName["reason"].Required)
	assert.False(t, byName["duration"].Required)
}

func TestFieldRecordSurvivesTemplateSwitch(t *testing.T) {
	s := newTestSession(t, registry.Permission, "permission-formal")
	s.Set("recipientName", "Dr. Chen")
	s.Set("reason", "Field trip approval")

	casual, ok := registry.TemplateByID(registry.Permission, "permission-casual")
	require.True(t, ok)
	s.SelectTemplate(registry.Permission, casual)

	assert.Equal(t, "Dr. Chen", s.Value("recipientName"))
	assert.Equal(t, "Field trip approval", s.Value("reason"))
}

func TestGreetingHeadline(t *testing.T) {
	tests := []struct {
		templateID string
		holiday    string
		want       string
	}{
		{"greeting-birthday", "", "Happy Birthday!"},
		{"greeting-anniversary", "", "Happy Anniversary!"},
		{"greeting-thank-you", "", "Thank You!"},
		{"greeting-holiday", "", "Season's Greetings!"},
		{"greeting-holiday", "Diwali", "Happy Diwali!"},
		{"greeting-congratulations", "", "Congratulations!"},
	}
	for _, tt := range tests {
		t.Run(tt.templateID+"_"+tt.holiday, func(t *testing.T) {
			s := newTestSession(t, registry.Greeting, tt.templateID)
			if tt.holiday != "" {
				s.Set("holiday", tt.holiday)
			}
			assert.Equal(t, tt.want, s.GreetingHeadline())
		})
	}
}

func TestLetterPreviewStructure(t *testing.T) {
	s := newTestSession(t, registry.Leave, "leave-formal")
	s.Set("managerName", "Priya Sharma")
	s.Set("startDate", "2026-09-01")
	s.Set("endDate", "2026-09-05")
	s.Set("reason", "Family commitment out of town.")
	s.Set("leaveType", "Annual Leave")
	s.Set("yourName", "Dev Patel")
	s.Set("employeeId", "E-1142")

	preview := s.Preview()
	assert.Contains(t, preview, "Dear Priya,")
	assert.Contains(t, preview, "Family commitment out of town.")
	assert.Contains(t, preview, "Leave Period: 2026-09-01 to 2026-09-05")
	assert.Contains(t, preview, "Leave Type: Annual Leave")
	assert.Contains(t, preview, "Employee ID: E-1142")
	assert.Contains(t, preview, "Sincerely,")
	// Signature prefers yourName here.
	assert.Contains(t, preview, "Dev Patel")
}

func TestLetterPreviewFallbacks(t *testing.T) {
	s := newTestSession(t, registry.Business, "business-inquiry")
	preview := s.Preview()
	assert.Contains(t, preview, "Dear Sir/Madam,")
	assert.Contains(t, preview, "[Your Name]")
}

func TestPreviewEscapesHTML(t *testing.T) {
	s := newTestSession(t, registry.Greeting, "greeting-birthday")
	s.Set("recipientName", `<script>alert("x")</script>`)
	s.Set("message", "a & b < c")

	preview := s.Preview()
	assert.NotContains(t, preview, "<script>")
	assert.Contains(t, preview, "&lt;script&gt;")
	assert.Contains(t, preview, "a &amp; b &lt; c")
}

func TestResumePreviewSections(t *testing.T) {
	s := newTestSession(t, registry.Resume, "resume-creative")
	s.Set("fullName", "Jordan Lee")
	s.Set("tagline", "Designer & Illustrator")
	s.Set("about", "I build playful interfaces.")
	s.Set("skills", "Figma, Procreate")

	preview := s.Preview()
	assert.Contains(t, preview, "Jordan Lee")
	// tagline substitutes for title
	assert.Contains(t, preview, "Designer &amp; Illustrator")
	assert.Contains(t, preview, "PROFESSIONAL SUMMARY")
	assert.Contains(t, preview, "I build playful interfaces.")
	assert.Contains(t, preview, "SKILLS")
	assert.NotContains(t, preview, "EDUCATION")
}

func TestExportLetterPDF(t *testing.T) {
	s := newTestSession(t, registry.Cover, "cover-modern")
	s.Set("hiringManager", "Morgan Reyes")
	s.Set("company", "Acme Corp")
	s.Set("position", "Backend Engineer")
	s.Set("introduction", "I am writing to express my interest in the Backend Engineer role.")
	s.Set("experience", strings.Repeat("Shipped reliable services. ", 40))
	s.Set("yourName", "Sam Taylor")
	s.Set("email", "sam@example.com")

	out, err := s.Export()
	require.NoError(t, err)
	pdf.AssertValidPDF(t, out)

	pages, size, err := pdf.PDFInfo(out)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, pages, 1)
	assert.Greater(t, size, 1000)
}

func TestExportResumePDF(t *testing.T) {
	s := newTestSession(t, registry.Resume, "resume-technical")
	s.Set("fullName", "Riley Kim")
	s.Set("email", "riley@example.com")
	s.Set("summary", "Systems engineer focused on storage and networking.")
	s.Set("technicalSkills", "Go, Rust, Kubernetes")
	s.Set("experience", "Infra team lead, 5 years.")

	out, err := s.Export()
	require.NoError(t, err)
	pdf.AssertValidPDF(t, out)
}

func TestApplySuggestionOverwrites(t *testing.T) {
	s := newTestSession(t, registry.Leave, "leave-formal")
	s.Set("reason", "my own words")
	suggestion, ok := s.ApplySuggestion("reason")
	require.True(t, ok)
	assert.NotEmpty(t, suggestion)
	assert.Equal(t, suggestion, s.Value("reason"))
	assert.Contains(t, registry.Suggestions(registry.Leave, "reason"), suggestion)

	_, ok = s.ApplySuggestion("nonexistentField")
	assert.False(t, ok)
}

func TestFilenameShape(t *testing.T) {
	s := newTestSession(t, registry.Business, "business-proposal")
	name := s.Filename()
	assert.True(t, strings.HasPrefix(name, "business_"))
	assert.True(t, strings.HasSuffix(name, ".pdf"))
}
