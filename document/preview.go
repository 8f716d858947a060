package document

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/flanksource/docsmith/registry"
)

// Preview renders the live HTML preview for the session. The preview family
// is chosen by document type: greeting cards, resumes, and everything else as
// a letter. All field values are HTML-escaped.
func (s *Session) Preview() string {
	switch s.DocType {
	case registry.Greeting:
		return s.greetingPreview()
	case registry.Resume:
		return s.resumePreview()
	default:
		return s.letterPreview()
	}
}

// GreetingHeadline picks the card headline from the template id. The holiday
// card substitutes the entered holiday name when present.
func (s *Session) GreetingHeadline() string {
	id := s.Template.ID
	switch {
	case strings.Contains(id, "birthday"):
		return "Happy Birthday!"
	case strings.Contains(id, "anniversary"):
		return "Happy Anniversary!"
	case strings.Contains(id, "thank"):
		return "Thank You!"
	case strings.Contains(id, "holiday"):
		if holiday := s.Value("holiday"); holiday != "" {
			return fmt.Sprintf("Happy %s!", holiday)
		}
		return "Season's Greetings!"
	}
	return "Congratulations!"
}

func (s *Session) greetingPreview() string {
	recipient := esc(s.ValueOr("recipientName", "[Recipient Name]"))
	message := esc(s.ValueOr("message", "[Your heartfelt message will appear here]"))
	sender := esc(s.ValueOr("senderName", "[Your Name]"))
	accent := esc(s.Accent)

	var b strings.Builder
	fmt.Fprintf(&b, `<div class="greeting-card" style="background: linear-gradient(135deg, %s22 0%%, %s44 100%%);">`, accent, accent)
	fmt.Fprintf(&b, `<div class="greeting-headline" style="color: %s;">%s</div>`, accent, esc(s.GreetingHeadline()))
	fmt.Fprintf(&b, `<div class="greeting-recipient">Dear %s,</div>`, recipient)
	fmt.Fprintf(&b, `<div class="greeting-message">%s</div>`, message)
	if wishes := s.Value("wishes"); wishes != "" {
		fmt.Fprintf(&b, `<div class="greeting-wishes">%s</div>`, esc(wishes))
	}
	fmt.Fprintf(&b, `<div class="greeting-from"><div>With warm regards,</div><div class="greeting-sender">%s</div></div>`, sender)
	b.WriteString(`</div>`)
	return b.String()
}

// resumeSections lists the section headings and the fields feeding each, in
// render order. The first non-empty field wins within a section.
var resumeSections = []struct {
	title  string
	fields []string
}{
	{"PROFESSIONAL SUMMARY", []string{"summary", "about"}},
	{"EXPERIENCE", []string{"experience"}},
	{"EDUCATION", []string{"education"}},
	{"SKILLS", []string{"skills", "technicalSkills"}},
	{"PROJECTS", []string{"projects"}},
	{"CERTIFICATIONS", []string{"certifications"}},
}

func (s *Session) resumePreview() string {
	accent := esc(s.Accent)
	name := esc(s.ValueOr("fullName", "[Your Name]"))
	title := esc(orDefault(s.FirstOf("title", "tagline"), "[Professional Title]"))

	contact := []string{
		s.ValueOr("email", "[email@example.com]"),
		s.ValueOr("phone", "[Phone Number]"),
	}
	if loc := s.Value("location"); loc != "" {
		contact = append(contact, loc)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<div class="resume-header">`)
	fmt.Fprintf(&b, `<h2 style="color: %s;">%s</h2>`, accent, name)
	fmt.Fprintf(&b, `<p class="resume-title">%s</p>`, title)
	fmt.Fprintf(&b, `<p class="resume-contact">%s</p>`, esc(strings.Join(contact, " | ")))
	for _, link := range []struct{ field, label string }{
		{"linkedin", "LinkedIn"},
		{"github", "GitHub"},
		{"portfolio", "Portfolio"},
	} {
		if v := s.Value(link.field); v != "" {
			href := v
			if link.field != "portfolio" && !strings.HasPrefix(href, "http") {
				href = "https://" + href
			}
			fmt.Fprintf(&b, `<p class="resume-link"><a href="%s" style="color: %s;">%s</a></p>`, esc(href), accent, link.label)
		}
	}
	b.WriteString(`</div>`)

	for _, section := range resumeSections {
		content := s.FirstOf(section.fields...)
		if content == "" {
			continue
		}
		fmt.Fprintf(&b, `<div class="resume-section"><h4 style="color: %s;">%s</h4><p>%s</p></div>`,
			accent, section.title, esc(content))
	}
	return b.String()
}

// Recipient resolves the letter addressee across the synonymous name fields.
func (s *Session) Recipient() string {
	return s.FirstOf("recipientName", "hiringManager", "managerName", "principalName")
}

// Signer resolves the letter signature name.
func (s *Session) Signer() string {
	return s.FirstOf("senderName", "yourName", "parentName")
}

// Salutation returns the "Dear X," line content: the first token of the
// recipient name, or the generic fallback when no recipient is known.
func (s *Session) Salutation() string {
	recipient := s.Recipient()
	if recipient == "" {
		return "Sir/Madam"
	}
	return firstToken(recipient)
}

func (s *Session) letterPreview() string {
	var b strings.Builder

	// Sender block.
	if s.FirstOf("yourName", "address", "email") != "" {
		b.WriteString(`<div class="letter-sender">`)
		if v := s.Value("yourName"); v != "" {
			fmt.Fprintf(&b, `<div class="letter-strong">%s</div>`, esc(v))
		}
		for _, f := range []string{"address", "email", "phone"} {
			if v := s.Value(f); v != "" {
				fmt.Fprintf(&b, `<div>%s</div>`, esc(v))
			}
		}
		b.WriteString(`</div>`)
	}

	fmt.Fprintf(&b, `<div class="letter-date">%s</div>`, longDate(time.Now()))

	// Recipient block.
	recipient := s.Recipient()
	org := s.FirstOf("company", "organization", "schoolName")
	if recipient != "" || org != "" {
		b.WriteString(`<div class="letter-recipient">`)
		if recipient != "" {
			fmt.Fprintf(&b, `<div class="letter-strong">%s</div>`, esc(recipient))
		}
		if v := s.Value("recipientTitle"); v != "" {
			fmt.Fprintf(&b, `<div>%s</div>`, esc(v))
		}
		if org != "" {
			fmt.Fprintf(&b, `<div>%s</div>`, esc(org))
		}
		b.WriteString(`</div>`)
	}

	if subject := s.Value("subject"); subject != "" {
		fmt.Fprintf(&b, `<div class="letter-subject">Subject: %s</div>`, esc(subject))
	}

	fmt.Fprintf(&b, `<div class="letter-salutation">Dear %s,</div>`, esc(s.Salutation()))

	// Body paragraphs come from the template's textarea fields, in template
	// order, skipping blanks.
	b.WriteString(`<div class="letter-body">`)
	for _, field := range s.Template.Fields {
		if v := s.Value(field); v != "" && registry.IsParagraph(field) {
			fmt.Fprintf(&b, `<p>%s</p>`, esc(v))
		}
	}
	if v := s.Value("duration"); v != "" {
		fmt.Fprintf(&b, `<p>Duration: %s</p>`, esc(v))
	}
	if start, end := s.Value("startDate"), s.Value("endDate"); start != "" && end != "" {
		fmt.Fprintf(&b, `<p>Leave Period: %s to %s</p>`, esc(start), esc(end))
	}
	if v := s.Value("leaveType"); v != "" {
		fmt.Fprintf(&b, `<p>Leave Type: %s</p>`, esc(v))
	}
	b.WriteString(`</div>`)

	// Signature block.
	b.WriteString(`<div class="letter-signature"><p>Sincerely,</p>`)
	fmt.Fprintf(&b, `<p class="letter-strong">%s</p>`, esc(orDefault(s.Signer(), "[Your Name]")))
	if v := s.Value("senderTitle"); v != "" {
		fmt.Fprintf(&b, `<p>%s</p>`, esc(v))
	}
	if v := s.Value("employeeId"); v != "" {
		fmt.Fprintf(&b, `<p>Employee ID: %s</p>`, esc(v))
	}
	if v := s.Value("studentName"); v != "" && s.DocType == registry.Permission {
		fmt.Fprintf(&b, `<p>Student: %s</p>`, esc(v))
	}
	if v := s.Value("class"); v != "" {
		fmt.Fprintf(&b, `<p>Class: %s</p>`, esc(v))
	}
	b.WriteString(`</div>`)

	return b.String()
}

func esc(s string) string {
	return html.EscapeString(s)
}

func orDefault(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
