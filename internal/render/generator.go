package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-pdf/fpdf"

	"resume-builder/internal/model"
)

// ErrRender wraps every failure of GeneratePDF.
var ErrRender = errors.New("failed to generate PDF")

// Generator renders resumes to single-page PDF documents. A Generator holds
// only configuration; each call builds its own document.
type Generator struct {
	fonts        FontSource
	now          func() time.Time
	placeholders map[Layout]Placeholders
	page         PaperSize
	logger       *slog.Logger
}

type Option func(*Generator)

func WithFonts(f FontSource) Option {
	return func(g *Generator) { g.fonts = f }
}

// WithClock fixes the time used for the footer and document metadata.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithPlaceholders overrides the sample content substituted for layout.
func WithPlaceholders(layout Layout, ph Placeholders) Option {
	return func(g *Generator) { g.placeholders[layout] = ph }
}

func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		fonts:        StandardFonts{},
		now:          time.Now,
		placeholders: map[Layout]Placeholders{},
		page:         A4,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Model builds the RenderModel for rec using the layout's placeholders.
func (g *Generator) Model(rec *model.Resume, layout Layout) RenderModel {
	ph, ok := g.placeholders[layout]
	if !ok {
		ph = layout.Placeholders()
	}
	return Build(rec, ph)
}

// Footer is the line printed at the bottom of every document.
func (g *Generator) Footer() string {
	return "Generated on " + g.now().Format("January 2, 2006")
}

// GeneratePDF renders rec as a one-page PDF. Either the complete document
// is returned or a nil slice and an error wrapping ErrRender.
func (g *Generator) GeneratePDF(ctx context.Context, rec *model.Resume, layout Layout) (out []byte, err error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("%w: panic: %v", ErrRender, r)
		}
	}()

	m := g.Model(rec, layout)
	now := g.now()

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: g.page.Width, Ht: g.page.Height},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCreationDate(now)
	doc.SetCatalogSort(true)
	doc.SetCreator("resume-builder", true)
	doc.SetTitle(m.Name.Text, true)

	fonts, err := g.fonts.Embed(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: embed fonts: %w", ErrRender, err)
	}

	doc.AddPage()
	res := assemble(newPDFCanvas(doc, fonts), &m, layout, g.page, g.Footer())
	if res.Overflow {
		g.logger.Warn("resume content exceeds the page", "name", m.Name.Text, "layout", string(layout), "bottom", res.Bottom)
	}

	buf, err := serialize(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	return buf, nil
}

// serialize finalizes doc into an in-memory buffer.
func serialize(doc *fpdf.Fpdf) ([]byte, error) {
	if err := doc.Error(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
