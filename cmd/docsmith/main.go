package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/flanksource/docsmith/annotate"
	"github.com/flanksource/docsmith/document"
	"github.com/flanksource/docsmith/registry"
	"github.com/flanksource/docsmith/server"
	"github.com/flanksource/docsmith/shutdown"
	"github.com/flanksource/docsmith/slides"
	"github.com/flanksource/docsmith/webreport"
)

// Build information (set by goreleaser)
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var (
	renderer     = lipgloss.NewRenderer(os.Stderr)
	successStyle = renderer.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = renderer.NewStyle().Foreground(lipgloss.Color("9"))
	headingStyle = renderer.NewStyle().Bold(true)
	dimStyle     = renderer.NewStyle().Foreground(lipgloss.Color("8"))
)

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "docsmith",
		Short: "Generate letters, resumes, cards, slide decks, and website reports",
		Long: `Docsmith is a document generation toolkit. It fills letter, resume, and
greeting-card templates into PDFs, lifts text out of scanned images into
editable documents, converts PDFs into PowerPoint decks, and fabricates
website analysis reports.`,
		Example: `  docsmith templates greeting
  docsmith generate --type greeting --template greeting-birthday \
      --field recipientName=Sarah --field message="Happy returns" --field senderName=Alex
  docsmith slides input.pdf -o deck.pptx
  docsmith serve --addr :8080`,
	}

	rootCmd.AddCommand(newTemplatesCommand())
	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newSuggestCommand())
	rootCmd.AddCommand(newAnnotateCommand())
	rootCmd.AddCommand(newSlidesCommand())
	rootCmd.AddCommand(newWebReportCommand())
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newTemplatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "templates [type]",
		Short: "List document types and their template variants",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			types := registry.DocumentTypes()
			if len(args) == 1 {
				docType, err := registry.ParseDocumentType(args[0])
				if err != nil {
					return err
				}
				types = []registry.DocumentType{docType}
			}

			for _, docType := range types {
				fmt.Printf("%s (%s)\n", headingStyle.Render(registry.PreviewTitle(docType)), docType)
				for _, template := range registry.Templates(docType) {
					fmt.Printf("  %-26s %s\n", template.ID, dimStyle.Render(template.Description))
					fmt.Printf("    fields: %s\n", strings.Join(template.Fields, ", "))
				}
			}
			return nil
		},
	}
}

func newGenerateCommand() *cobra.Command {
	var (
		docTypeFlag  string
		templateFlag string
		fieldFlags   []string
		accent       string
		font         string
		outputFile   string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Fill a template and export it as a PDF",
		Example: `  docsmith generate --type leave --template leave-casual \
      --field managerName="Ms. Davis" --field startDate=2026-09-01 \
      --field endDate=2026-09-05 --field reason="Family visit" --field yourName="Pat Doe"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := buildSession(docTypeFlag, templateFlag, fieldFlags, accent, font)
			if err != nil {
				return err
			}

			data, err := session.Export()
			if err != nil {
				return err
			}

			if outputFile == "" {
				outputFile = session.Filename()
			}
			if err := os.WriteFile(outputFile, data, 0644); err != nil {
				return fmt.Errorf("failed to write PDF: %w", err)
			}

			fmt.Println(successStyle.Render("✓ " + outputFile))
			return nil
		},
	}

	cmd.Flags().StringVar(&docTypeFlag, "type", "", "Document type (permission, cover, resume, leave, greeting, business)")
	cmd.Flags().StringVar(&templateFlag, "template", "", "Template id, see 'docsmith templates'")
	cmd.Flags().StringArrayVar(&fieldFlags, "field", nil, "Field value as name=value (repeatable)")
	cmd.Flags().StringVar(&accent, "accent", "", "Accent color as #rrggbb")
	cmd.Flags().StringVar(&font, "font", "", "Font family for the preview surface")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output PDF path")
	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("template")

	return cmd
}

func buildSession(docTypeFlag, templateFlag string, fieldFlags []string, accent, font string) (*document.Session, error) {
	docType, err := registry.ParseDocumentType(docTypeFlag)
	if err != nil {
		return nil, err
	}
	template, ok := registry.TemplateByID(docType, templateFlag)
	if !ok {
		return nil, fmt.Errorf("unknown template %q for type %s", templateFlag, docType)
	}

	session := document.NewSession(docType, template)
	for _, raw := range fieldFlags {
		name, value, ok := strings.Cut(raw, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --field %q, expected name=value", raw)
		}
		session.Set(name, value)
	}
	if accent != "" {
		session.Accent = accent
	}
	if font != "" {
		session.Font = font
	}
	return session, nil
}

func newSuggestCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "suggest <type> <field>",
		Short: "Show example content for a template field",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			docType, err := registry.ParseDocumentType(args[0])
			if err != nil {
				return err
			}

			if all {
				examples := registry.Suggestions(docType, args[1])
				if len(examples) == 0 {
					return fmt.Errorf("no suggestions for field %q", args[1])
				}
				for _, example := range examples {
					fmt.Println("- " + example)
				}
				return nil
			}

			value, ok := registry.Suggest(docType, args[1])
			if !ok {
				return fmt.Errorf("no suggestions for field %q", args[1])
			}
			fmt.Println(value)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Print every example instead of one")
	return cmd
}

func newAnnotateCommand() *cobra.Command {
	var (
		outputFile string
		format     string
		language   string
	)

	cmd := &cobra.Command{
		Use:   "annotate <image>",
		Short: "Extract text from an image into an editable document",
		Long: `Run OCR over a scanned image and export the recognized lines as a Word
document (docx), a legacy doc file, plain text, or a PNG with the text
rendered back onto the image.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			editor := annotate.NewEditor(&annotate.TesseractRecognizer{Language: language})
			if err := editor.Load(data); err != nil {
				return err
			}
			if err := editor.Extract(context.Background()); err != nil {
				return err
			}
			fmt.Fprintln(os.Stderr, dimStyle.Render(editor.Status()))

			var out []byte
			switch format {
			case "docx":
				if outputFile == "" {
					outputFile = annotate.DocxFilename
				}
				out, err = editor.ExportDocx()
				if err != nil {
					return err
				}
			case "doc":
				if outputFile == "" {
					outputFile = annotate.DocFilename
				}
				out = editor.ExportDoc()
			case "txt":
				fmt.Println(editor.ExtractedText())
				return nil
			case "png":
				if outputFile == "" {
					outputFile = annotate.RenderedImageFilename
				}
				out, err = editor.Render()
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("unsupported format %q", format)
			}

			if err := os.WriteFile(outputFile, out, 0644); err != nil {
				return err
			}
			fmt.Println(successStyle.Render("✓ " + outputFile))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output path")
	cmd.Flags().StringVar(&format, "format", "docx", "Export format: docx, doc, txt, or png")
	cmd.Flags().StringVar(&language, "lang", "", "OCR language (default eng)")
	return cmd
}

func newSlidesCommand() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "slides <pdf>",
		Short: "Convert a PDF into a PowerPoint deck, one slide per page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			deck, err := slides.FromPDF(data)
			if err != nil {
				return err
			}

			out, err := slides.WritePPTX(deck)
			if err != nil {
				return err
			}

			if outputFile == "" {
				outputFile = slides.PresentationFilename()
			}
			if err := os.WriteFile(outputFile, out, 0644); err != nil {
				return err
			}
			fmt.Println(successStyle.Render(fmt.Sprintf("✓ %s (%d slides)", outputFile, deck.Len())))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output PPTX path")
	return cmd
}

func newWebReportCommand() *cobra.Command {
	var (
		author     string
		company    string
		purpose    string
		outputFile string
		htmlOnly   bool
	)

	cmd := &cobra.Command{
		Use:   "webreport <url>",
		Short: "Generate a website analysis report for a URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer := webreport.NewAnalyzer()
			analysis, err := analyzer.Analyze(webreport.Request{
				URL:     args[0],
				Author:  author,
				Company: company,
				Purpose: purpose,
			})
			if err != nil {
				return err
			}

			if htmlOnly {
				html, err := webreport.RenderHTML(analysis)
				if err != nil {
					return err
				}
				fmt.Println(html)
				return nil
			}

			capture := webreport.NewBrowserCapture()
			defer capture.Close()

			data, err := webreport.ExportPDF(analysis, capture)
			if err != nil {
				return err
			}

			if outputFile == "" {
				outputFile = analysis.Filename()
			}
			if err := os.WriteFile(outputFile, data, 0644); err != nil {
				return err
			}
			fmt.Println(successStyle.Render("✓ " + outputFile))
			return nil
		},
	}

	cmd.Flags().StringVar(&author, "author", "", "Report author name")
	cmd.Flags().StringVar(&company, "company", "", "Company name on the cover page")
	cmd.Flags().StringVar(&purpose, "purpose", "analysis", "Report purpose (analysis, review, audit, ...)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output PDF path")
	cmd.Flags().BoolVar(&htmlOnly, "html", false, "Print the report HTML instead of exporting a PDF")
	return cmd
}

func newServeCommand() *cobra.Command {
	var (
		addr   string
		secret string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the document tools as an HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				secret = os.Getenv("DOCSMITH_SESSION_SECRET")
			}
			if secret == "" {
				return fmt.Errorf("session secret required, set --session-secret or DOCSMITH_SESSION_SECRET")
			}

			srv := server.New([]byte(secret))
			shutdown.AddHookWithPriority("http server", shutdown.PriorityIngress, func() {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := srv.Stop(ctx); err != nil {
					fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
				}
			})
			shutdown.AddHookWithPriority("browser", shutdown.PriorityBrowser, func() {
				if err := srv.Close(); err != nil {
					fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
				}
			})

			return shutdown.RunAndWait(func() error {
				go func() {
					if err := srv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
						fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
						os.Exit(1)
					}
				}()
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().StringVar(&secret, "session-secret", "", "Cookie session signing secret")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getVersionInfo())
		},
	}
}

func getVersionInfo() string {
	return fmt.Sprintf("docsmith %s (commit: %s, built: %s, go: %s)",
		version, commit, date, runtime.Version())
}
