package webreport

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// RenderHTML produces the self-contained report document. The same markup
// backs the on-screen preview and the headless-browser PDF capture, so all
// styling is inlined.
func RenderHTML(a *Analysis) (string, error) {
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, a); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return buf.String(), nil
}

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"upper":        strings.ToUpper,
	"purposeLabel": PurposeLabel,
	"longDate": func(a *Analysis) string {
		return a.Date.Format("January 2, 2006")
	},
	"sslValid": func(a *Analysis) bool {
		return a.Technical.SSLCertificate == "Valid"
	},
}).Parse(reportHTML))

const reportHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: 'Segoe UI', Arial, sans-serif; color: #1f2937; margin: 0; background: #fff; width: 1200px; }
.report-cover { text-align: center; padding: 120px 60px; border-bottom: 4px solid #2563eb; }
.report-cover h1 { font-size: 42px; color: #2563eb; }
.website-url { font-size: 20px; color: #6b7280; margin-bottom: 40px; }
.report-metadata { display: inline-block; text-align: left; }
.metadata-label { font-weight: 600; margin-right: 8px; }
.report-watermark { margin-top: 80px; color: #9ca3af; font-size: 13px; }
.report-page { padding: 48px 60px; border-bottom: 2px solid #e5e7eb; }
.page-header { display: flex; justify-content: space-between; border-bottom: 2px solid #2563eb; margin-bottom: 24px; }
.page-header h2 { color: #2563eb; }
.page-number { color: #9ca3af; align-self: center; }
.content-section { margin-bottom: 28px; }
.content-section h3 { color: #374151; }
.info-grid { display: grid; grid-template-columns: repeat(4, 1fr); gap: 12px; }
.info-card { border: 1px solid #e5e7eb; border-radius: 8px; padding: 12px; }
.info-card h3 { margin: 0 0 4px; font-size: 13px; color: #6b7280; }
.data-table { width: 100%; border-collapse: collapse; }
.data-table th, .data-table td { border: 1px solid #e5e7eb; padding: 8px 12px; text-align: left; }
.data-table th { background: #f3f4f6; }
.status-badge { padding: 2px 10px; border-radius: 10px; font-size: 12px; }
.status-success { background: #d1fae5; color: #065f46; }
.status-warning { background: #fef3c7; color: #92400e; }
</style>
</head>
<body>

<div class="report-cover">
  <h1>Website Analysis Report</h1>
  <div class="website-url">{{.PageURL}}</div>
  <div class="report-metadata">
    <div class="metadata-row"><span class="metadata-label">Report Author:</span><span>{{.Author}}</span></div>
    {{if .Company}}<div class="metadata-row"><span class="metadata-label">Organization:</span><span>{{.Company}}</span></div>{{end}}
    <div class="metadata-row"><span class="metadata-label">Report Purpose:</span><span>{{purposeLabel .Purpose}}</span></div>
    <div class="metadata-row"><span class="metadata-label">Date Generated:</span><span>{{longDate .}}</span></div>
  </div>
  <div class="report-watermark">Generated by AI Document Generator</div>
</div>

<div class="report-page">
  <div class="page-header"><h2>Executive Summary</h2><span class="page-number">Page 1</span></div>
  <div class="content-section">
    <h3>Overview</h3>
    <p>{{.Overview.Description}}</p>
  </div>
  <div class="info-grid">
    <div class="info-card"><h3>Domain</h3><p>{{.Domain}}</p></div>
    <div class="info-card"><h3>Protocol</h3><p>{{upper .Protocol}}</p></div>
    <div class="info-card"><h3>Status</h3><p><span class="status-badge status-success">{{.Status}}</span></p></div>
    <div class="info-card"><h3>Category</h3><p>{{.Overview.Category}}</p></div>
  </div>
  <div class="content-section">
    <h3>Key Findings</h3>
    <ul>
      <li>Website is fully operational and accessible</li>
      <li>Modern design with responsive layout</li>
      <li>SSL certificate {{if sslValid .}}properly configured{{else}}needs attention{{end}}</li>
      <li>Performance metrics within acceptable range</li>
      <li>Mobile-responsive design implemented</li>
    </ul>
  </div>
</div>

<div class="report-page">
  <div class="page-header"><h2>Technical Analysis</h2><span class="page-number">Page 2</span></div>
  <div class="content-section">
    <h3>Technical Specifications</h3>
    <table class="data-table">
      <thead><tr><th>Parameter</th><th>Value</th><th>Status</th></tr></thead>
      <tbody>
        <tr><td>Server Type</td><td>{{.Technical.ServerType}}</td><td><span class="status-badge status-success">Active</span></td></tr>
        <tr><td>Response Time</td><td>{{.Technical.ResponseTime}}</td><td><span class="status-badge status-success">Good</span></td></tr>
        <tr><td>SSL Certificate</td><td>{{.Technical.SSLCertificate}}</td><td><span class="status-badge {{if sslValid .}}status-success{{else}}status-warning{{end}}">{{if sslValid .}}Secure{{else}}Warning{{end}}</span></td></tr>
        <tr><td>Mobile Responsive</td><td>{{.Technical.MobileResponsive}}</td><td><span class="status-badge status-success">Optimized</span></td></tr>
      </tbody>
    </table>
  </div>
  <div class="content-section">
    <h3>Technologies Detected</h3>
    <div class="info-grid">
      {{range .Technical.Technologies}}<div class="info-card"><h3>Technology</h3><p>{{.}}</p></div>{{end}}
    </div>
  </div>
  <div class="content-section">
    <h3>Performance Metrics</h3>
    <p><strong>Overall Performance Score: {{.Technical.PerformanceScore}}/100</strong></p>
    <table class="data-table">
      <thead><tr><th>Metric</th><th>Value</th><th>Status</th></tr></thead>
      <tbody>
        {{range .Technical.Metrics}}<tr><td>{{.Name}}</td><td>{{.Value}}</td><td><span class="status-badge status-success">Good</span></td></tr>{{end}}
      </tbody>
    </table>
  </div>
</div>

<div class="report-page">
  <div class="page-header"><h2>Website Structure &amp; Navigation</h2><span class="page-number">Page 3</span></div>
  <div class="content-section">
    <h3>Site Structure</h3>
    <p>{{.Structure.Layout}}</p>
    <p><strong>Navigation System:</strong> {{.Structure.Navigation}}</p>
  </div>
  <div class="content-section">
    <h3>Main Pages</h3>
    <table class="data-table">
      <thead><tr><th>Page Name</th><th>Path</th><th>Purpose</th></tr></thead>
      <tbody>
        {{range .Structure.Pages}}<tr><td>{{.Name}}</td><td>{{.Path}}</td><td>{{.Purpose}}</td></tr>{{end}}
      </tbody>
    </table>
  </div>
  <div class="content-section">
    <h3>Key Features</h3>
    <ul>{{range .Features}}<li>{{.}}</li>{{end}}</ul>
  </div>
</div>

<div class="report-page">
  <div class="page-header"><h2>Usage Guide &amp; Documentation</h2><span class="page-number">Page 4</span></div>
  <div class="content-section">
    <h3>Getting Started</h3>
    <ol>{{range .Usage.GettingStarted}}<li>{{.}}</li>{{end}}</ol>
  </div>
  <div class="content-section">
    <h3>Main Features</h3>
    <ul>{{range .Usage.MainFeatures}}<li>{{.}}</li>{{end}}</ul>
  </div>
  <div class="content-section">
    <h3>Target Audience</h3>
    <p>{{.Usage.TargetAudience}}</p>
  </div>
  <div class="content-section">
    <h3>Common Use Cases</h3>
    <ul>{{range .Usage.UseCases}}<li>{{.}}</li>{{end}}</ul>
  </div>
  <div class="content-section">
    <h3>Best Practices</h3>
    <ul>{{range .Usage.BestPractices}}<li>{{.}}</li>{{end}}</ul>
  </div>
</div>

<div class="report-page">
  <div class="page-header"><h2>Recommendations &amp; Conclusion</h2><span class="page-number">Page 5</span></div>
  <div class="content-section">
    <h3>Recommendations</h3>
    <ul>
      <li><strong>Security:</strong> {{if sslValid .}}Continue maintaining SSL certificate updates{{else}}Implement SSL certificate for secure connections{{end}}</li>
      <li><strong>Performance:</strong> Maintain current optimization strategies for fast load times</li>
      <li><strong>Content:</strong> Regular updates to keep information current and relevant</li>
      <li><strong>User Experience:</strong> Continue monitoring user feedback for improvements</li>
      <li><strong>Analytics:</strong> Implement tracking to measure user engagement</li>
    </ul>
  </div>
  <div class="content-section">
    <h3>Conclusion</h3>
    <p>Based on this comprehensive analysis, {{.Domain}} demonstrates a professional web presence with modern design standards and good technical implementation. The website is accessible, responsive, and provides value to its target audience.</p>
    <p>The technical infrastructure appears solid with {{if sslValid .}}proper security measures{{else}}room for security improvements{{end}} and acceptable performance metrics. The user interface follows contemporary design principles and provides intuitive navigation.</p>
    <p>Overall assessment: The website is well-structured and serves its intended purpose effectively. Continued maintenance and periodic updates will ensure sustained performance and user satisfaction.</p>
  </div>
  <div class="content-section">
    <h3>Report Information</h3>
    <p><strong>Analysis Date:</strong> {{longDate .}}</p>
    <p><strong>Report Prepared By:</strong> {{.Author}}</p>
    {{if .Company}}<p><strong>Organization:</strong> {{.Company}}</p>{{end}}
    <p><strong>Report Type:</strong> {{purposeLabel .Purpose}}</p>
  </div>
</div>

{{if .SEO}}
<div class="report-page">
  <div class="page-header"><h2>SEO Suggestions</h2><span class="page-number">SEO</span></div>
  <div class="content-section">
    <h3>Overview</h3>
    <ul>{{range .SEO}}<li>{{.}}</li>{{end}}</ul>
  </div>
</div>
{{end}}

</body>
</html>`
