// Package document implements the guided document flow: a session holding the
// selected template and entered field values, a form description, an HTML
// preview renderer, and a PDF export renderer with its validation gate.
package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/flanksource/docsmith/pdf"
	"github.com/flanksource/docsmith/registry"
)

// Session owns the state of one editing flow. It replaces the shared
// top-level variables of earlier iterations so that concurrent sessions and
// tests are possible.
type Session struct {
	DocType  registry.DocumentType
	Template registry.Template

	// Fields is the live field record. Values are written on every edit,
	// last write wins. It is deliberately NOT cleared when the template or
	// document type changes mid-session; stale keys from a previous template
	// carry over when field names coincide.
	Fields map[string]string

	Accent string // hex accent color
	Font   string // font family name
}

// NewSession starts a flow for the given type and template with defaults
// matching the UI (blue accent, standard font).
func NewSession(docType registry.DocumentType, template registry.Template) *Session {
	return &Session{
		DocType:  docType,
		Template: template,
		Fields:   map[string]string{},
		Accent:   pdf.DefaultAccent,
		Font:     "helvetica",
	}
}

// SelectTemplate switches the active template. The field record is preserved.
func (s *Session) SelectTemplate(docType registry.DocumentType, template registry.Template) {
	s.DocType = docType
	s.Template = template
}

// Set writes the current value of a field.
func (s *Session) Set(field, value string) {
	s.Fields[field] = value
}

// Value returns the current value of a field, empty when unset.
func (s *Session) Value(field string) string {
	return s.Fields[field]
}

// ValueOr returns the field value or a fallback when empty.
func (s *Session) ValueOr(field, fallback string) string {
	if v := s.Fields[field]; v != "" {
		return v
	}
	return fallback
}

// FirstOf returns the first non-empty value among the named fields, in order.
func (s *Session) FirstOf(fields ...string) string {
	for _, f := range fields {
		if v := s.Fields[f]; v != "" {
			return v
		}
	}
	return ""
}

// ApplySuggestion overwrites the field with a canned example. The previous
// value is replaced unconditionally.
func (s *Session) ApplySuggestion(field string) (string, bool) {
	suggestion, ok := registry.Suggest(s.DocType, field)
	if !ok {
		return "", false
	}
	s.Fields[field] = suggestion
	return suggestion, true
}

// Filename returns the export file name for this session.
func (s *Session) Filename() string {
	return fmt.Sprintf("%s_%d.pdf", s.DocType, time.Now().UnixMilli())
}

// longDate formats a date the way letters show it (e.g. "August 31, 2026").
func longDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// firstToken returns the leading whitespace-separated token of a name.
func firstToken(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return name
	}
	return fields[0]
}
