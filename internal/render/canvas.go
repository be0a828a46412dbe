// Package render lays out a resume on a single PDF page.
//
// A resume record is first projected into a RenderModel (Build), then the
// assembler for the chosen Layout walks the sections top to bottom, threading
// a vertical cursor through each section renderer. Drawing goes through the
// Canvas interface; the PDF-backed canvas is created per call by Generator,
// so nothing here is shared between concurrent renders.
package render

// Color is an RGB color with components in [0, 1].
type Color struct {
	R, G, B float64
}

func Gray(v float64) Color { return Color{R: v, G: v, B: v} }

var (
	Black = Color{}
	White = Color{R: 1, G: 1, B: 1}
)

// PaperSize is measured in points (1" = 72pt).
type PaperSize struct {
	Name   string
	Width  float64
	Height float64
}

var A4 = PaperSize{Name: "A4", Width: 595.28, Height: 841.89} // 210mm x 297mm

// Canvas receives draw calls. Coordinates have their origin at the top-left
// corner of the page, y grows downward and Text places the baseline at y.
type Canvas interface {
	SetFont(bold bool, size float64)
	SetTextColor(c Color)
	Text(x, y float64, s string)
	// TextWidth measures s in the current font.
	TextWidth(s string) float64
	Line(x1, y1, x2, y2 float64, c Color, width float64)
	FillRect(x, y, w, h float64, c Color)
}
