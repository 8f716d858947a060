package webreport

import (
	"fmt"
	"strings"
)

// The usage page is editable after generation: each list round-trips through
// a newline-joined text block and back.

// UsageText returns the editable text form of one usage section.
func (a *Analysis) UsageText(key string) (string, error) {
	switch key {
	case "gettingStarted":
		return strings.Join(a.Usage.GettingStarted, "\n"), nil
	case "mainFeatures":
		return strings.Join(a.Usage.MainFeatures, "\n"), nil
	case "bestPractices":
		return strings.Join(a.Usage.BestPractices, "\n"), nil
	case "useCases":
		return strings.Join(a.Usage.UseCases, "\n"), nil
	case "targetAudience":
		return a.Usage.TargetAudience, nil
	}
	return "", fmt.Errorf("unknown usage section %q", key)
}

// ApplyUsageEdit writes an edited text block back into a usage section.
// List sections split on newlines; blank lines are dropped and entries
// trimmed. targetAudience stays a single trimmed string.
func (a *Analysis) ApplyUsageEdit(key, text string) error {
	switch key {
	case "targetAudience":
		a.Usage.TargetAudience = strings.TrimSpace(text)
		return nil
	case "gettingStarted":
		a.Usage.GettingStarted = splitLines(text)
		return nil
	case "mainFeatures":
		a.Usage.MainFeatures = splitLines(text)
		return nil
	case "bestPractices":
		a.Usage.BestPractices = splitLines(text)
		return nil
	case "useCases":
		a.Usage.UseCases = splitLines(text)
		return nil
	}
	return fmt.Errorf("unknown usage section %q", key)
}

func splitLines(text string) []string {
	lines := []string{}
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
