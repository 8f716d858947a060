// Package webreport fabricates the multi-page "website analysis" document for
// a URL: a staged pseudo-analysis fills in canned overview, technical, usage,
// and SEO sections, which render as HTML and export to PDF via a headless
// browser capture.
package webreport

import (
	"fmt"
	"math/rand"
	"net/url"
	"strings"
	"time"
)

// Request is the report form input.
type Request struct {
	URL     string
	Author  string
	Company string
	Purpose string
}

// Overview is the executive-summary block.
type Overview struct {
	Description     string
	Category        string
	PrimaryLanguage string
	EstimatedPages  int
}

// Metric is one performance table row.
type Metric struct {
	Name   string
	Value  string
	Status string
}

// Technical is the technical-analysis block. Values are fabricated.
type Technical struct {
	ServerType       string
	ResponseTime     string
	SSLCertificate   string
	MobileResponsive string
	PageLoadSpeed    string
	Technologies     []string
	PerformanceScore int
	Metrics          []Metric
}

// Page is one row of the site-structure table.
type Page struct {
	Name    string
	Path    string
	Purpose string
}

// Structure is the site-structure block.
type Structure struct {
	Pages      []Page
	Navigation string
	Layout     string
}

// Usage is the usage-guide block; its lists are user-editable after
// generation.
type Usage struct {
	GettingStarted []string
	MainFeatures   []string
	BestPractices  []string
	TargetAudience string
	UseCases       []string
}

// Analysis is the full fabricated report content.
type Analysis struct {
	Title       string
	Domain      string
	Protocol    string
	Status      string
	LastChecked time.Time

	Overview  Overview
	Technical Technical
	Structure Structure
	Features  []string
	Usage     Usage
	SEO       []string

	Author  string
	Company string
	Purpose string
	Date    time.Time
	PageURL string
}

// Analyzer fabricates reports. The random source is injectable so tests get
// deterministic output.
type Analyzer struct {
	rand *rand.Rand
	now  func() time.Time
}

// NewAnalyzer creates an analyzer with a time-seeded random source.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
		now:  time.Now,
	}
}

// NewSeededAnalyzer creates an analyzer with a fixed seed and clock.
func NewSeededAnalyzer(seed int64, now func() time.Time) *Analyzer {
	return &Analyzer{rand: rand.New(rand.NewSource(seed)), now: now}
}

// Analyze validates the URL and runs the fabrication stages. Nothing is
// actually fetched from the target site.
func (a *Analyzer) Analyze(req Request) (*Analysis, error) {
	parsed, err := url.Parse(req.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid URL format")
	}
	domain := parsed.Hostname()

	analysis := &Analysis{
		Title:       fmt.Sprintf("%s Website Analysis", domain),
		Domain:      domain,
		Protocol:    parsed.Scheme,
		Status:      "Active",
		LastChecked: a.now(),
		Author:      req.Author,
		Company:     req.Company,
		Purpose:     req.Purpose,
		Date:        a.now(),
		PageURL:     req.URL,
	}

	a.fillOverview(analysis, req.URL)
	a.fillStructure(analysis)
	a.fillTechnical(analysis, domain)
	a.fillUsage(analysis, domain, req.URL)
	analysis.SEO = seoSuggestions(domain)

	return analysis, nil
}

func (a *Analyzer) fillOverview(analysis *Analysis, pageURL string) {
	analysis.Overview = Overview{
		Description:     fmt.Sprintf("Professional analysis and documentation of %s. This report provides comprehensive insights into the website's structure, functionality, and usage patterns.", analysis.Domain),
		Category:        siteCategory(analysis.Domain),
		PrimaryLanguage: "English",
		EstimatedPages:  a.rand.Intn(50) + 10,
	}

	analysis.Technical = Technical{
		ServerType:       "Cloud-based",
		ResponseTime:     fmt.Sprintf("%dms", a.rand.Intn(300)+100),
		SSLCertificate:   sslStatus(pageURL),
		MobileResponsive: "Yes",
		PageLoadSpeed:    "Good",
	}
}

func (a *Analyzer) fillStructure(analysis *Analysis) {
	analysis.Structure = Structure{
		Pages: []Page{
			{Name: "Home", Path: "/", Purpose: "Main landing page"},
			{Name: "About", Path: "/about", Purpose: "Company information"},
			{Name: "Contact", Path: "/contact", Purpose: "Contact information"},
			{Name: "Services", Path: "/services", Purpose: "Service offerings"},
			{Name: "Blog", Path: "/blog", Purpose: "Content and articles"},
		},
		Navigation: "Top navigation bar with dropdown menus",
		Layout:     "Modern responsive design with grid layout",
	}
	analysis.Features = a.featuresList()
}

func (a *Analyzer) fillTechnical(analysis *Analysis, domain string) {
	frameworks := []string{"React", "Vue.js", "Angular", "Next.js", "WordPress"}
	analysis.Technical.Technologies = []string{
		"HTML5", "CSS3", "JavaScript",
		frameworks[a.rand.Intn(len(frameworks))],
	}
	analysis.Technical.PerformanceScore = a.rand.Intn(20) + 80
	analysis.Technical.Metrics = []Metric{
		{Name: "First Contentful Paint", Value: "1.2s", Status: "good"},
		{Name: "Time to Interactive", Value: "2.8s", Status: "good"},
		{Name: "Cumulative Layout Shift", Value: "0.1", Status: "good"},
	}
}

func (a *Analyzer) fillUsage(analysis *Analysis, domain, pageURL string) {
	if tailored, ok := usageProfile(domain, pageURL); ok {
		analysis.Usage = tailored
		return
	}
	analysis.Usage = Usage{
		GettingStarted: []string{
			fmt.Sprintf("Navigate to %s in your web browser", pageURL),
			"Browse the home page to understand available features",
			"Use the navigation menu to access different sections",
			"Click on relevant links to explore content",
		},
		MainFeatures: []string{
			"User-friendly interface with intuitive navigation",
			"Responsive design for all devices",
			"Fast loading times and optimized performance",
			"Secure connection with SSL encryption",
			"Cross-browser compatibility",
		},
		BestPractices: []string{
			"Use modern web browsers for best experience",
			"Enable JavaScript for full functionality",
			"Clear cache if experiencing loading issues",
			"Bookmark frequently visited pages",
			"Use search functionality for quick access",
		},
		TargetAudience: a.targetAudience(),
		UseCases: []string{
			"Information gathering and research",
			"Service exploration and evaluation",
			"Content consumption and learning",
			"Communication and engagement",
			"Transaction or interaction completion",
		},
	}
}

func (a *Analyzer) featuresList() []string {
	base := []string{
		"Responsive navigation menu",
		"Search functionality",
		"Contact forms",
		"Social media integration",
	}
	additional := []string{
		"Newsletter subscription",
		"User authentication",
		"Content management system",
		"Analytics integration",
		"Mobile app links",
		"Live chat support",
	}
	a.rand.Shuffle(len(additional), func(i, j int) {
		additional[i], additional[j] = additional[j], additional[i]
	})
	count := a.rand.Intn(3) + 2
	return append(base, additional[:count]...)
}

func (a *Analyzer) targetAudience() string {
	audiences := []string{
		"General public seeking information and services",
		"Business professionals and corporate clients",
		"Students and educational institutions",
		"Industry-specific professionals and practitioners",
		"Consumers and end-users of products/services",
	}
	return audiences[a.rand.Intn(len(audiences))]
}

func siteCategory(domain string) string {
	switch {
	case strings.Contains(domain, "shop") || strings.Contains(domain, "store"):
		return "E-commerce"
	case strings.Contains(domain, "blog") || strings.Contains(domain, "news"):
		return "Content/Media"
	case strings.Contains(domain, "edu") || strings.Contains(domain, "learn"):
		return "Education"
	case strings.Contains(domain, "gov"):
		return "Government"
	}
	return "Business/Corporate"
}

func sslStatus(pageURL string) string {
	if strings.HasPrefix(pageURL, "https") {
		return "Valid"
	}
	return "Not Detected"
}

var purposeLabels = map[string]string{
	"analysis":      "Website Analysis",
	"audit":         "Technical Audit",
	"review":        "Business Review",
	"documentation": "Documentation",
	"other":         "General Report",
}

// PurposeLabel maps a purpose keyword to its display label; unknown keywords
// pass through unchanged.
func PurposeLabel(purpose string) string {
	if label, ok := purposeLabels[purpose]; ok {
		return label
	}
	return purpose
}

// Filename returns the export file name for the analysis.
func (a *Analysis) Filename() string {
	return fmt.Sprintf("Website_Report_%s_%d.pdf", a.Domain, time.Now().UnixMilli())
}
