package render

import (
	"fmt"
	"os"

	"github.com/go-pdf/fpdf"
)

// Fonts identifies the family registered on a document.
type Fonts struct {
	Family string
	// UTF8 is set for embedded TrueType fonts; core fonts need text
	// translated to cp1252 first.
	UTF8 bool
}

// FontSource embeds one regular and one bold face into a fresh document.
// It runs once per render, before anything is drawn.
type FontSource interface {
	Embed(doc *fpdf.Fpdf) (Fonts, error)
}

// StandardFonts uses the Helvetica core fonts, which every PDF reader ships.
type StandardFonts struct{}

func (StandardFonts) Embed(doc *fpdf.Fpdf) (Fonts, error) {
	doc.SetFont("Helvetica", "", 10)
	if err := doc.Error(); err != nil {
		return Fonts{}, err
	}
	return Fonts{Family: "Helvetica"}, nil
}

// TrueTypeFonts loads a regular and a bold TTF file from disk.
type TrueTypeFonts struct {
	RegularPath string
	BoldPath    string
}

const ttfFamily = "resume"

func (f TrueTypeFonts) Embed(doc *fpdf.Fpdf) (Fonts, error) {
	regular, err := os.ReadFile(f.RegularPath)
	if err != nil {
		return Fonts{}, fmt.Errorf("read regular font: %w", err)
	}
	bold, err := os.ReadFile(f.BoldPath)
	if err != nil {
		return Fonts{}, fmt.Errorf("read bold font: %w", err)
	}
	doc.AddUTF8FontFromBytes(ttfFamily, "", regular)
	doc.AddUTF8FontFromBytes(ttfFamily, "B", bold)
	if err := doc.Error(); err != nil {
		return Fonts{}, fmt.Errorf("embed fonts: %w", err)
	}
	return Fonts{Family: ttfFamily, UTF8: true}, nil
}

// pdfCanvas draws onto an fpdf document.
type pdfCanvas struct {
	doc    *fpdf.Fpdf
	family string
	tr     func(string) string
}

func newPDFCanvas(doc *fpdf.Fpdf, fonts Fonts) *pdfCanvas {
	tr := func(s string) string { return s }
	if !fonts.UTF8 {
		tr = doc.UnicodeTranslatorFromDescriptor("")
	}
	return &pdfCanvas{doc: doc, family: fonts.Family, tr: tr}
}

func (p *pdfCanvas) SetFont(bold bool, size float64) {
	style := ""
	if bold {
		style = "B"
	}
	p.doc.SetFont(p.family, style, size)
}

func (p *pdfCanvas) SetTextColor(c Color) {
	r, g, b := c.rgb255()
	p.doc.SetTextColor(r, g, b)
}

func (p *pdfCanvas) Text(x, y float64, s string) {
	p.doc.Text(x, y, p.tr(s))
}

func (p *pdfCanvas) TextWidth(s string) float64 {
	return p.doc.GetStringWidth(p.tr(s))
}

func (p *pdfCanvas) Line(x1, y1, x2, y2 float64, c Color, width float64) {
	r, g, b := c.rgb255()
	p.doc.SetDrawColor(r, g, b)
	p.doc.SetLineWidth(width)
	p.doc.Line(x1, y1, x2, y2)
}

func (p *pdfCanvas) FillRect(x, y, w, h float64, c Color) {
	r, g, b := c.rgb255()
	p.doc.SetFillColor(r, g, b)
	p.doc.Rect(x, y, w, h, "F")
}

func (c Color) rgb255() (int, int, int) {
	conv := func(v float64) int {
		switch {
		case v <= 0:
			return 0
		case v >= 1:
			return 255
		}
		return int(v*255 + 0.5)
	}
	return conv(c.R), conv(c.G), conv(c.B)
}
