// Package server exposes the document tools over HTTP: the template wizard,
// the image annotation editor, the slide converter, and the report generator.
package server

import (
	"context"
	"fmt"
	"sync"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/flanksource/docsmith/annotate"
	"github.com/flanksource/docsmith/slides"
	"github.com/flanksource/docsmith/theme"
	"github.com/flanksource/docsmith/webreport"
)

const sessionName = "docsmith"

// Server wires the tool packages behind an echo router. Slide decks are held
// in memory between the convert and export calls; everything else is
// stateless per request.
type Server struct {
	echo     *echo.Echo
	sessions *sessions.CookieStore

	recognizer annotate.Recognizer
	searcher   *slides.ImageSearcher
	grammar    *slides.GrammarChecker
	analyzer   *webreport.Analyzer
	capture    webreport.Screenshotter
	themes     *theme.Store

	mu        sync.Mutex
	decks     map[string]*slides.Deck
	deckSeq   int
	editors   map[string]*annotate.Editor
	editorSeq int
}

// Option configures a Server.
type Option func(*Server)

// WithRecognizer overrides the OCR engine.
func WithRecognizer(r annotate.Recognizer) Option {
	return func(s *Server) { s.recognizer = r }
}

// WithScreenshotter overrides the report capture backend.
func WithScreenshotter(c webreport.Screenshotter) Option {
	return func(s *Server) { s.capture = c }
}

// WithImageSearcher overrides the stock-photo search client.
func WithImageSearcher(searcher *slides.ImageSearcher) Option {
	return func(s *Server) { s.searcher = searcher }
}

// WithAnalyzer overrides the report analyzer, used by tests to pin the seed.
func WithAnalyzer(a *webreport.Analyzer) Option {
	return func(s *Server) { s.analyzer = a }
}

// WithGrammarChecker overrides the grammar client.
func WithGrammarChecker(checker *slides.GrammarChecker) Option {
	return func(s *Server) { s.grammar = checker }
}

// WithThemeStore overrides the theme persistence location.
func WithThemeStore(store *theme.Store) Option {
	return func(s *Server) { s.themes = store }
}

// New builds a server with default backends.
func New(sessionSecret []byte, opts ...Option) *Server {
	s := &Server{
		sessions:   sessions.NewCookieStore(sessionSecret),
		recognizer: &annotate.TesseractRecognizer{},
		searcher:   &slides.ImageSearcher{},
		grammar:    &slides.GrammarChecker{},
		analyzer:   webreport.NewAnalyzer(),
		capture:    webreport.NewBrowserCapture(),
		decks:      map[string]*slides.Deck{},
		editors:    map[string]*annotate.Editor{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.themes == nil {
		if store, err := theme.NewStore(); err == nil {
			s.themes = store
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	api := e.Group("/api")

	api.GET("/templates", s.listTemplates)
	api.GET("/templates/:type", s.templatesForType)
	api.GET("/suggest", s.suggestField)
	api.POST("/documents/preview", s.previewDocument)
	api.POST("/documents/export", s.exportDocument)

	api.POST("/annotate", s.loadImage)
	api.POST("/annotate/:editor/extract", s.extractText)
	api.PATCH("/annotate/:editor/boxes/:box", s.updateBox)
	api.DELETE("/annotate/:editor/boxes/:box", s.deleteBox)
	api.GET("/annotate/:editor/render", s.renderImage)
	api.GET("/annotate/:editor/export", s.exportExtractedText)

	api.POST("/slides/convert", s.convertPDF)
	api.GET("/slides/:deck", s.getDeck)
	api.PUT("/slides/:deck/:index", s.updateSlide)
	api.POST("/slides/:deck/export", s.exportDeck)
	api.GET("/images/search", s.searchImages)
	api.POST("/grammar/check", s.checkGrammar)

	api.POST("/report", s.generateReport)
	api.POST("/report/export", s.exportReport)

	api.GET("/search", s.searchTools)
	api.GET("/theme", s.getTheme)
	api.POST("/theme/toggle", s.toggleTheme)

	s.echo = e
	return s
}

// Handler returns the underlying echo instance, used by tests.
func (s *Server) Handler() *echo.Echo {
	return s.echo
}

// Start runs the HTTP listener.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Stop closes the HTTP listener.
func (s *Server) Stop(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Close releases the capture backend. Safe to call after Stop.
func (s *Server) Close() error {
	return s.capture.Close()
}

func attachment(filename string) string {
	return fmt.Sprintf("attachment; filename=%q", filename)
}

func (s *Server) storeDeck(deck *slides.Deck) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deckSeq++
	id := fmt.Sprintf("deck-%d", s.deckSeq)
	s.decks[id] = deck
	return id
}

func (s *Server) deck(id string) (*slides.Deck, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	deck, ok := s.decks[id]
	return deck, ok
}

func (s *Server) storeEditor(editor *annotate.Editor) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editorSeq++
	id := fmt.Sprintf("editor-%d", s.editorSeq)
	s.editors[id] = editor
	return id
}

func (s *Server) editor(id string) (*annotate.Editor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	editor, ok := s.editors[id]
	return editor, ok
}
