package render

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"resume-builder/internal/model"
)

//go:embed templates/resume.html.tmpl
var htmlFS embed.FS

var htmlTemplate = template.Must(template.New("resume.html.tmpl").ParseFS(htmlFS, "templates/resume.html.tmpl"))

// RenderHTML renders m as a standalone HTML page for browser based printing.
func RenderHTML(m *RenderModel, layout Layout, footer string) (string, error) {
	data := struct {
		Model   *RenderModel
		Sidebar bool
		Contact string
		Footer  string
	}{
		Model:   m,
		Sidebar: layout == Sidebar,
		Contact: m.contactLine(),
		Footer:  footer,
	}
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}
	return buf.String(), nil
}

// HTMLPrinter turns an HTML page into PDF bytes, e.g. with headless Chrome.
type HTMLPrinter interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// HTMLRenderer renders resumes through HTML and an HTMLPrinter. It shares
// the RenderModel and placeholder rules with Generator.
type HTMLRenderer struct {
	gen     *Generator
	printer HTMLPrinter
}

func NewHTMLRenderer(printer HTMLPrinter, opts ...Option) *HTMLRenderer {
	return &HTMLRenderer{gen: NewGenerator(opts...), printer: printer}
}

func (r *HTMLRenderer) GeneratePDF(ctx context.Context, rec *model.Resume, layout Layout) ([]byte, error) {
	m := r.gen.Model(rec, layout)
	page, err := RenderHTML(&m, layout, r.gen.Footer())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	out, err := r.printer.RenderHTMLToPDF(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	return out, nil
}
