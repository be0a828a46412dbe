package render

import (
	"strings"
	"unicode/utf8"
)

type textOp struct {
	X, Y  float64
	Text  string
	Bold  bool
	Size  float64
	Color Color
}

// recorder is a Canvas that keeps every text draw call. Each rune is half
// the font size wide.
type recorder struct {
	bold  bool
	size  float64
	color Color
	texts []textOp
	lines int
	rects int
}

func (r *recorder) SetFont(bold bool, size float64) { r.bold, r.size = bold, size }
func (r *recorder) SetTextColor(c Color)            { r.color = c }

func (r *recorder) Text(x, y float64, s string) {
	r.texts = append(r.texts, textOp{X: x, Y: y, Text: s, Bold: r.bold, Size: r.size, Color: r.color})
}

func (r *recorder) TextWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * r.size * 0.5
}

func (r *recorder) Line(x1, y1, x2, y2 float64, c Color, width float64) { r.lines++ }
func (r *recorder) FillRect(x, y, w, h float64, c Color)                { r.rects++ }

func (r *recorder) strings() []string {
	out := make([]string, len(r.texts))
	for i, t := range r.texts {
		out[i] = t.Text
	}
	return out
}

func (r *recorder) find(text string) (textOp, bool) {
	for _, t := range r.texts {
		if t.Text == text {
			return t, true
		}
	}
	return textOp{}, false
}

func (r *recorder) containing(sub string) []textOp {
	var out []textOp
	for _, t := range r.texts {
		if strings.Contains(t.Text, sub) {
			out = append(out, t)
		}
	}
	return out
}
