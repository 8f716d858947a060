package document

import (
	"fmt"
	"strings"

	"github.com/flanksource/docsmith/registry"
)

// requiredFields lists the per-type fields that must be non-blank before an
// export is produced. Requirements depend on the document type only, not on
// the selected template variant.
var requiredFields = map[registry.DocumentType][]string{
	registry.Permission: {"recipientName", "reason", "senderName"},
	registry.Cover:      {"company", "position", "yourName"},
	registry.Resume:     {"fullName", "email"},
	registry.Leave:      {"managerName", "startDate", "endDate", "yourName"},
	registry.Greeting:   {"recipientName", "message", "senderName"},
	registry.Business:   {"recipientName", "company", "yourName"},
}

// MissingFieldsError reports which required fields block an export.
type MissingFieldsError struct {
	DocType registry.DocumentType
	Fields  []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields for %s: %s", e.DocType, strings.Join(e.Fields, ", "))
}

// RequiredFields returns the required field names for a document type.
func RequiredFields(docType registry.DocumentType) []string {
	return requiredFields[docType]
}

// Validate checks the session against its type's required fields. Whitespace
// only values count as missing. A session with no values at all fails even if
// the type had no requirements.
func (s *Session) Validate() error {
	missing := []string{}
	for _, field := range requiredFields[s.DocType] {
		if strings.TrimSpace(s.Fields[field]) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return &MissingFieldsError{DocType: s.DocType, Fields: missing}
	}
	if len(s.Fields) == 0 {
		return &MissingFieldsError{DocType: s.DocType, Fields: requiredFields[s.DocType]}
	}
	return nil
}
