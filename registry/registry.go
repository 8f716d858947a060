// Package registry holds the static document catalogs: which templates exist
// for each document type, which fields each template collects, how each field
// is rendered, and the canned example content used for field suggestions.
//
// All lookups are pure and total: unknown keys return zero values, never panic.
// Callers treat a missing entry as "render nothing".
package registry

import (
	"fmt"
)

// DocumentType identifies one of the supported document categories.
type DocumentType string

const (
	Permission DocumentType = "permission"
	Cover      DocumentType = "cover"
	Resume     DocumentType = "resume"
	Leave      DocumentType = "leave"
	Greeting   DocumentType = "greeting"
	Business   DocumentType = "business"
)

// DocumentTypes lists every supported type in display order.
func DocumentTypes() []DocumentType {
	return []DocumentType{Permission, Cover, Resume, Leave, Greeting, Business}
}

// ParseDocumentType validates a raw string against the known types.
func ParseDocumentType(s string) (DocumentType, error) {
	switch DocumentType(s) {
	case Permission, Cover, Resume, Leave, Greeting, Business:
		return DocumentType(s), nil
	}
	return "", fmt.Errorf("unknown document type %q", s)
}

// Template is a named field layout variant within a document type. Fields are
// ordered; that order is the sole authority on which inputs are rendered.
type Template struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Fields      []string `json:"fields" yaml:"fields"`
}

var templates = map[DocumentType][]Template{
	Permission: {
		{
			ID:          "permission-formal",
			Name:        "Formal Permission",
			Description: "Traditional business format",
			Fields:      []string{"recipientName", "recipientTitle", "organization", "subject", "reason", "duration", "senderName", "senderTitle"},
		},
		{
			ID:          "permission-casual",
			Name:        "Casual Permission",
			Description: "Friendly and approachable",
			Fields:      []string{"recipientName", "subject", "reason", "senderName"},
		},
		{
			ID:          "permission-academic",
			Name:        "Academic Permission",
			Description: "For educational institutions",
			Fields:      []string{"principalName", "schoolName", "studentName", "class", "reason", "date", "parentName"},
		},
	},
	Cover: {
		{
			ID:          "cover-modern",
			Name:        "Modern Professional",
			Description: "Contemporary design",
			Fields:      []string{"hiringManager", "company", "position", "introduction", "experience", "whyCompany", "closing", "yourName", "email", "phone"},
		},
		{
			ID:          "cover-traditional",
			Name:        "Traditional Format",
			Description: "Classic business style",
			Fields:      []string{"hiringManager", "company", "position", "opening", "qualifications", "conclusion", "yourName", "address", "email", "phone"},
		},
		{
			ID:          "cover-creative",
			Name:        "Creative Style",
			Description: "Stand out from the crowd",
			Fields:      []string{"company", "position", "hook", "achievements", "passion", "yourName", "portfolio", "email"},
		},
	},
	Resume: {
		{
			ID:          "resume-professional",
			Name:        "Professional Resume",
			Description: "Clean and organized",
			Fields:      []string{"fullName", "title", "email", "phone", "location", "summary", "experience", "education", "skills"},
		},
		{
			ID:          "resume-creative",
			Name:        "Creative Resume",
			Description: "Showcase creativity",
			Fields:      []string{"fullName", "tagline", "email", "phone", "portfolio", "about", "experience", "skills", "projects"},
		},
		{
			ID:          "resume-technical",
			Name:        "Technical Resume",
			Description: "Tech-focused layout",
			Fields:      []string{"fullName", "title", "email", "github", "linkedin", "summary", "technicalSkills", "experience", "education", "certifications"},
		},
	},
	Leave: {
		{
			ID:          "leave-formal",
			Name:        "Formal Leave Request",
			Description: "Official leave application",
			Fields:      []string{"managerName", "leaveType", "startDate", "endDate", "reason", "contactInfo", "yourName", "employeeId"},
		},
		{
			ID:          "leave-casual",
			Name:        "Casual Leave Request",
			Description: "Informal request",
			Fields:      []string{"managerName", "startDate", "endDate", "reason", "yourName"},
		},
		{
			ID:          "leave-emergency",
			Name:        "Emergency Leave",
			Description: "Urgent leave request",
			Fields:      []string{"managerName", "emergencyType", "startDate", "duration", "contactNumber", "yourName"},
		},
	},
	Greeting: {
		{
			ID:          "greeting-birthday",
			Name:        "Birthday Card",
			Description: "Celebrate birthdays",
			Fields:      []string{"recipientName", "message", "wishes", "senderName"},
		},
		{
			ID:          "greeting-anniversary",
			Name:        "Anniversary Card",
			Description: "Celebrate anniversaries",
			Fields:      []string{"coupleName", "years", "message", "senderName"},
		},
		{
			ID:          "greeting-thank-you",
			Name:        "Thank You Card",
			Description: "Express gratitude",
			Fields:      []string{"recipientName", "reason", "message", "senderName"},
		},
		{
			ID:          "greeting-congratulations",
			Name:        "Congratulations",
			Description: "Celebrate achievements",
			Fields:      []string{"recipientName", "achievement", "message", "senderName"},
		},
		{
			ID:          "greeting-holiday",
			Name:        "Holiday Greeting",
			Description: "Seasonal wishes",
			Fields:      []string{"recipientName", "holiday", "message", "senderName"},
		},
	},
	Business: {
		{
			ID:          "business-proposal",
			Name:        "Business Proposal",
			Description: "Formal proposal letter",
			Fields:      []string{"recipientName", "company", "subject", "proposal", "benefits", "nextSteps", "yourName", "yourCompany", "email"},
		},
		{
			ID:          "business-inquiry",
			Name:        "Business Inquiry",
			Description: "Request information",
			Fields:      []string{"recipientName", "company", "subject", "inquiry", "questions", "yourName", "yourCompany", "email"},
		},
		{
			ID:          "business-complaint",
			Name:        "Complaint Letter",
			Description: "Formal complaint",
			Fields:      []string{"recipientName", "company", "orderNumber", "issue", "resolution", "yourName", "email", "phone"},
		},
	},
}

// Templates returns the template variants registered for docType, in fixed
// display order. Unknown types return nil.
func Templates(docType DocumentType) []Template {
	return templates[docType]
}

// TemplateByID resolves a template by its id within a document type.
func TemplateByID(docType DocumentType, id string) (Template, bool) {
	for _, t := range templates[docType] {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

var previewTitles = map[DocumentType]string{
	Permission: "Permission Letter",
	Cover:      "Cover Letter",
	Resume:     "Professional Resume",
	Leave:      "Leave Application",
	Greeting:   "Greeting Card",
	Business:   "Business Letter",
}

// PreviewTitle returns the display title used on template pickers.
func PreviewTitle(docType DocumentType) string {
	if title, ok := previewTitles[docType]; ok {
		return title
	}
	return "Document"
}
