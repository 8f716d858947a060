package webreport

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// defaultSearchKeywords are recommended when the site supplies none.
var defaultSearchKeywords = []string{
	"pdf ai",
	"durai pdf",
	"pdf converter",
	"website report",
	"pdf to ppt",
	"pdf to ppt converter",
	"text to file converter",
	"text to pdf converter",
	"text to doc converter",
	"text to document converter",
	"text to rich text file converter",
}

// seoSuggestions fabricates the SEO page: a primary keyword derived from the
// domain tokens plus fixed recommendations, led by the default keyword list.
func seoSuggestions(domain string) []string {
	parts := lo.Filter(strings.Split(domain, "."), func(p string, _ int) bool {
		return p != "" && p != "www"
	})
	baseKeywords := strings.Join(parts[:min(2, len(parts))], " ")

	suggestions := []string{
		fmt.Sprintf("Recommended keywords to target: %s", strings.Join(defaultSearchKeywords[:5], ", ")),
		fmt.Sprintf("Suggested primary keyword: %s", baseKeywords),
		"Add a concise meta description (150-160 chars) that includes the primary keyword.",
		"Use structured headings (H1, H2, H3) and include keywords in at least one H2.",
		"Ensure images have descriptive alt text and captions.",
		"Verify mobile responsiveness and minimize large images to improve load speed.",
		"Implement Open Graph tags for better sharing on social platforms.",
		"Check for broken links and set up redirects for removed pages.",
	}
	return suggestions
}
