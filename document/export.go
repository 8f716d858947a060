package document

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"

	"github.com/flanksource/docsmith/pdf"
	"github.com/flanksource/docsmith/registry"
)

const grayText = "#646464"

// Export validates the session and renders the PDF for its document type.
// The render family mirrors the preview: greeting card, resume, or letter.
func (s *Session) Export() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	accent := pdf.AccentOrDefault(s.Accent)
	switch s.DocType {
	case registry.Greeting:
		return s.exportGreeting(accent)
	case registry.Resume:
		return s.exportResume(accent)
	default:
		return s.exportLetter(accent)
	}
}

func (s *Session) exportGreeting(accent string) ([]byte, error) {
	r, g, bl, _ := pdf.HexToRGB(accent)
	background, err := pdf.GreetingBackground(r, g, bl)
	if err != nil {
		return nil, fmt.Errorf("failed to render card background: %w", err)
	}

	b := pdf.NewBuilder(pdf.WithBackground(background), pdf.WithMargins(30))

	// Content starts a quarter of the way down the page.
	b.Space(pdf.PageHeight/4 - 30)
	b.AddText(s.GreetingHeadline(), pdf.TextProps{Size: 24, Style: fontstyle.Bold, Color: accent, Align: align.Center})
	b.Space(10)
	b.AddText(fmt.Sprintf("Dear %s,", s.ValueOr("recipientName", "[Recipient Name]")),
		pdf.TextProps{Size: 16, Align: align.Center})
	b.Space(8)
	b.AddText(s.Value("message"), pdf.TextProps{Size: 12, Align: align.Center})
	if wishes := s.Value("wishes"); wishes != "" {
		b.Space(6)
		b.AddText(wishes, pdf.TextProps{Size: 12, Align: align.Center})
	}
	b.Space(15)
	b.AddText("With warm regards,", pdf.TextProps{Size: 12, Style: fontstyle.Italic, Align: align.Center})
	b.Space(4)
	b.AddText(s.ValueOr("senderName", "[Your Name]"), pdf.TextProps{Size: 12, Style: fontstyle.Bold, Align: align.Center})

	return b.Output()
}

func (s *Session) exportResume(accent string) ([]byte, error) {
	b := pdf.NewBuilder()

	b.AddText(s.ValueOr("fullName", "[Your Name]"),
		pdf.TextProps{Size: 24, Style: fontstyle.Bold, Color: accent, Align: align.Center})
	b.AddText(orDefault(s.FirstOf("title", "tagline"), "[Professional Title]"),
		pdf.TextProps{Size: 12, Color: grayText, Align: align.Center})

	contact := ""
	for _, f := range []string{"email", "phone", "location"} {
		if v := s.Value(f); v != "" {
			if contact != "" {
				contact += " | "
			}
			contact += v
		}
	}
	b.AddText(contact, pdf.TextProps{Size: 10, Color: grayText, Align: align.Center})

	b.Space(4)
	b.AddDivider(accent)
	b.Space(4)

	for _, section := range resumeSections {
		content := s.FirstOf(section.fields...)
		if content == "" {
			continue
		}
		b.AddText(section.title, pdf.TextProps{Size: 12, Style: fontstyle.Bold, Color: accent})
		b.AddText(content, pdf.TextProps{Size: 10})
		b.Space(3)
	}

	return b.Output()
}

func (s *Session) exportLetter(accent string) ([]byte, error) {
	b := pdf.NewBuilder()

	// Sender block.
	if v := s.Value("yourName"); v != "" {
		b.AddText(v, pdf.TextProps{Size: 11, Style: fontstyle.Bold})
	}
	for _, f := range []string{"address", "email", "phone"} {
		if v := s.Value(f); v != "" {
			b.AddText(v, pdf.TextProps{Size: 10})
		}
	}
	b.Space(4)

	b.AddText(longDate(time.Now()), pdf.TextProps{Size: 10, Color: grayText})
	b.Space(4)

	// Recipient block.
	if recipient := s.Recipient(); recipient != "" {
		b.AddText(recipient, pdf.TextProps{Size: 11, Style: fontstyle.Bold})
	}
	if v := s.Value("recipientTitle"); v != "" {
		b.AddText(v, pdf.TextProps{Size: 10})
	}
	if org := s.FirstOf("company", "organization", "schoolName"); org != "" {
		b.AddText(org, pdf.TextProps{Size: 10})
	}
	b.Space(4)

	if subject := s.Value("subject"); subject != "" {
		b.AddText("Subject: "+subject, pdf.TextProps{Size: 11, Style: fontstyle.Bold, Color: accent})
		b.Space(4)
	}

	b.AddText(fmt.Sprintf("Dear %s,", s.Salutation()), pdf.TextProps{Size: 11})
	b.Space(3)

	// Body paragraphs in template field order.
	for _, field := range s.Template.Fields {
		if v := s.Value(field); v != "" && registry.IsParagraph(field) {
			b.AddText(v, pdf.TextProps{Size: 11})
			b.Space(3)
		}
	}

	if v := s.Value("duration"); v != "" {
		b.AddText("Duration: "+v, pdf.TextProps{Size: 10})
	}
	if start, end := s.Value("startDate"), s.Value("endDate"); start != "" && end != "" {
		b.AddText(fmt.Sprintf("Leave Period: %s to %s", start, end), pdf.TextProps{Size: 10})
	}

	b.Space(6)
	b.AddText("Sincerely,", pdf.TextProps{Size: 11})
	b.Space(2)
	b.AddText(orDefault(s.Signer(), "[Your Name]"), pdf.TextProps{Size: 11, Style: fontstyle.Bold})
	if v := s.Value("senderTitle"); v != "" {
		b.AddText(v, pdf.TextProps{Size: 10})
	}
	if v := s.Value("employeeId"); v != "" {
		b.AddText("Employee ID: "+v, pdf.TextProps{Size: 10})
	}

	return b.Output()
}
