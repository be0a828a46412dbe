package render

import (
	"math"
	"strings"
)

// TextStyle is the font, color and line spacing of a run of text. A wrapped
// line advances the cursor by Size + LineGap.
type TextStyle struct {
	Bold    bool
	Size    float64
	Color   Color
	LineGap float64
}

func (s TextStyle) Advance() float64 { return s.Size + s.LineGap }

// WrapLines splits text on whitespace and fills lines greedily: a word joins
// the current line while the measured width of "line word" stays within
// maxWidth. A word that is wider than maxWidth on its own gets a line to
// itself and is never split. Empty or blank text yields no lines.
func WrapLines(text string, maxWidth float64, measure func(string) float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var (
		lines []string
		line  string
	)
	for _, w := range words {
		if line == "" {
			line = w
			continue
		}
		candidate := line + " " + w
		if measure(candidate) <= maxWidth {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = w
	}
	return append(lines, line)
}

// DrawWrapped draws text wrapped to maxWidth with its first baseline at y and
// returns the cursor below the last line. Blank text draws nothing and
// returns y unchanged.
func DrawWrapped(c Canvas, text string, x, y, maxWidth float64, st TextStyle) float64 {
	if strings.TrimSpace(text) == "" {
		return y
	}
	c.SetFont(st.Bold, st.Size)
	c.SetTextColor(st.Color)
	for _, line := range WrapLines(text, maxWidth, c.TextWidth) {
		c.Text(x, y, line)
		y += st.Advance()
	}
	return y
}

// column is a horizontal band of the page.
type column struct {
	X     float64
	Width float64
}

// inset returns the column shifted right by d and narrowed to match.
func (col column) inset(d float64) column {
	return column{X: col.X + d, Width: col.Width - d}
}

// split divides col into n equal sub-columns separated by gutter.
func (col column) split(n int, gutter float64) []column {
	if n <= 1 {
		return []column{col}
	}
	w := (col.Width - gutter*float64(n-1)) / float64(n)
	out := make([]column, n)
	for i := range out {
		out[i] = column{X: col.X + float64(i)*(w+gutter), Width: w}
	}
	return out
}

// halves splits items by index with ceil(n/2) in the first half.
func halves(items []string) ([]string, []string) {
	mid := int(math.Ceil(float64(len(items)) / 2))
	return items[:mid], items[mid:]
}
