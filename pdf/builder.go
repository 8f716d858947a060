// Package pdf wraps Maroto with a small builder API used by the document
// export renderers and the website report paginator.
package pdf

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// A4 dimensions in mm.
const (
	PageWidth  = 210.0
	PageHeight = 297.0
)

// TextProps carries the per-text-unit styling the export renderers set before
// painting each unit.
type TextProps struct {
	Size   float64
	Style  fontstyle.Type
	Color  string // hex accent, empty means black
	Align  align.Type
	Family string
}

// Builder wraps a Maroto instance. Pages break automatically when the
// vertical cursor exceeds the printable height.
type Builder struct {
	maroto core.Maroto
	style  *StyleConverter
	margin float64
}

type builderConfig struct {
	debug      bool
	margin     float64
	background []byte
}

// Option configures a Builder.
type Option func(*builderConfig)

// WithDebug enables Maroto's grid overlay.
func WithDebug(enabled bool) Option {
	return func(c *builderConfig) { c.debug = enabled }
}

// WithMargins sets all four page margins in mm.
func WithMargins(mm float64) Option {
	return func(c *builderConfig) { c.margin = mm }
}

// WithBackground sets a full-page PNG painted behind every page.
func WithBackground(png []byte) Option {
	return func(c *builderConfig) { c.background = png }
}

// NewBuilder creates an A4 builder.
func NewBuilder(opts ...Option) *Builder {
	cfg := &builderConfig{margin: 20}
	for _, opt := range opts {
		opt(cfg)
	}

	builder := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(cfg.margin).
		WithRightMargin(cfg.margin).
		WithTopMargin(cfg.margin).
		WithBottomMargin(cfg.margin).
		WithDebug(cfg.debug)

	if cfg.background != nil {
		builder = builder.WithBackgroundImage(cfg.background, extension.Png)
	}

	return &Builder{
		maroto: maroto.New(builder.Build()),
		style:  NewStyleConverter(),
		margin: cfg.margin,
	}
}

// ContentWidth returns the printable width in mm.
func (b *Builder) ContentWidth() float64 {
	return PageWidth - 2*b.margin
}

// ContentHeight returns the printable height in mm.
func (b *Builder) ContentHeight() float64 {
	return PageHeight - 2*b.margin
}

// AddText paints one text unit, wrapped to the content width. Row height is
// estimated from the font size and content length so long paragraphs get
// enough room before the next unit.
func (b *Builder) AddText(content string, p TextProps) {
	if content == "" {
		return
	}
	height := b.style.EstimateHeight(content, p.Size, b.ContentWidth())
	textProps := b.style.ConvertToTextProps(p)
	b.maroto.AddRows(row.New(height).Add(col.New(12).Add(text.New(content, *textProps))))
}

// Space advances the vertical cursor by mm.
func (b *Builder) Space(mm float64) {
	if mm > 0 {
		b.maroto.AddRows(row.New(mm))
	}
}

// AddDivider paints a horizontal rule in the accent color.
func (b *Builder) AddDivider(hex string) {
	b.maroto.AddRows(row.New(4).Add(col.New(12).Add(line.New(props.Line{
		Color:         b.style.ConvertColor(hex),
		Thickness:     0.5,
		SizePercent:   100,
		OffsetPercent: 50,
	}))))
}

// AddImage paints image bytes at the given row height, full content width.
func (b *Builder) AddImage(data []byte, ext extension.Type, heightMM float64) {
	b.maroto.AddRows(row.New(heightMM).Add(col.New(12).Add(image.NewFromBytes(data, ext))))
}

// AddPageImage paints one image per page, sized to the full printable area.
// Used by the report paginator which slices a capture into page-height bands.
func (b *Builder) AddPageImage(data []byte, ext extension.Type) {
	b.AddImage(data, ext, b.ContentHeight())
}

// Output generates the final PDF bytes.
func (b *Builder) Output() ([]byte, error) {
	document, err := b.maroto.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return document.GetBytes(), nil
}
