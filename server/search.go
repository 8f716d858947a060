package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
)

// SearchResult points a matched keyword at the tool that handles it.
type SearchResult struct {
	Keyword string `json:"keyword"`
	Label   string `json:"label"`
	Target  string `json:"target"`
}

// searchKeywords is ordered; suggestions keep this order.
var searchKeywords = []string{
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

var searchTargets = map[string]SearchResult{
	"pdf ai":                           {Label: "AI Document Generator", Target: "documents"},
	"durai pdf":                        {Label: "AI Document Generator", Target: "documents"},
	"pdf converter":                    {Label: "PDF to PPT / Converters", Target: "slides"},
	"website report":                   {Label: "Website Report Generator", Target: "report"},
	"pdf to ppt":                       {Label: "PDF to PPT Converter", Target: "slides"},
	"pdf to ppt converter":             {Label: "PDF to PPT Converter", Target: "slides"},
	"text to file converter":           {Label: "Text to Document tools", Target: "annotate"},
	"text to pdf converter":            {Label: "Export to PDF", Target: "documents"},
	"text to doc converter":            {Label: "Export to DOC", Target: "annotate"},
	"text to document converter":       {Label: "Export to Document", Target: "annotate"},
	"text to rich text file converter": {Label: "Rich Text / Formatting", Target: "annotate"},
}

// SearchSuggestions returns the keyword entries containing the query as a
// substring, case-insensitively. An empty query matches nothing.
func SearchSuggestions(query string) []SearchResult {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	matched := lo.Filter(searchKeywords, func(keyword string, _ int) bool {
		return strings.Contains(keyword, query)
	})
	return lo.Map(matched, func(keyword string, _ int) SearchResult {
		result := searchTargets[keyword]
		result.Keyword = keyword
		return result
	})
}

func (s *Server) searchTools(c echo.Context) error {
	return c.JSON(http.StatusOK, SearchSuggestions(c.QueryParam("q")))
}
