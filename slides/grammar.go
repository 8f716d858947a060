package slides

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/flanksource/commons/logger"
)

const grammarEndpoint = "https://api.languagetool.org/v2/check"

// GrammarIssue is one finding with optional replacement suggestions.
type GrammarIssue struct {
	Message      string
	Offset       int
	Length       int
	Replacements []string
}

// GrammarChecker checks slide text against the LanguageTool API, degrading
// to local heuristic checks when the API is unreachable.
type GrammarChecker struct {
	Endpoint string
	Client   *http.Client
}

type grammarResponse struct {
	Matches []struct {
		Message      string `json:"message"`
		Offset       int    `json:"offset"`
		Length       int    `json:"length"`
		Replacements []struct {
			Value string `json:"value"`
		} `json:"replacements"`
	} `json:"matches"`
}

// Check returns grammar findings for text. A transport failure falls back to
// BasicChecks, whose findings carry no replacements.
func (c *GrammarChecker) Check(ctx context.Context, text string) ([]GrammarIssue, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("no text to check")
	}

	issues, err := c.remoteCheck(ctx, text)
	if err != nil {
		logger.Errorf("grammar API failed, using basic checks: %v", err)
		return BasicChecks(text), nil
	}
	return issues, nil
}

func (c *GrammarChecker) remoteCheck(ctx context.Context, text string) ([]GrammarIssue, error) {
	endpoint := c.Endpoint
	if endpoint == "" {
		endpoint = grammarEndpoint
	}

	form := url.Values{}
	form.Set("text", text)
	form.Set("language", "en-US")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := c.Client
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("grammar check returned %s", resp.Status)
	}

	var parsed grammarResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode grammar response: %w", err)
	}

	issues := make([]GrammarIssue, 0, len(parsed.Matches))
	for _, m := range parsed.Matches {
		issue := GrammarIssue{Message: m.Message, Offset: m.Offset, Length: m.Length}
		for _, r := range m.Replacements {
			issue.Replacements = append(issue.Replacements, r.Value)
		}
		issues = append(issues, issue)
	}
	return issues, nil
}

// BasicChecks runs the local heuristics: doubled spaces, a lowercase first
// letter, and missing terminal punctuation.
func BasicChecks(text string) []GrammarIssue {
	issues := []GrammarIssue{}

	if strings.Contains(text, "  ") {
		issues = append(issues, GrammarIssue{Message: "Multiple consecutive spaces found"})
	}

	runes := []rune(text)
	if len(runes) > 0 && unicode.IsLetter(runes[0]) && !unicode.IsUpper(runes[0]) {
		issues = append(issues, GrammarIssue{Message: "Text should start with capital letter"})
	}

	if len(runes) > 0 {
		switch runes[len(runes)-1] {
		case '.', '!', '?', ':', ';':
		default:
			issues = append(issues, GrammarIssue{Message: "Consider adding punctuation at the end"})
		}
	}
	return issues
}

// Apply substitutes an issue's first replacement into text. Text without a
// usable replacement is returned unchanged.
func (i GrammarIssue) Apply(text string) string {
	if len(i.Replacements) == 0 {
		return text
	}
	if i.Offset < 0 || i.Offset+i.Length > len(text) {
		return text
	}
	return text[:i.Offset] + i.Replacements[0] + text[i.Offset+i.Length:]
}
