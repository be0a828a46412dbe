package render

import "strings"

// theme holds the type scale and spacing of one layout.
type theme struct {
	Name        TextStyle
	Contact     TextStyle
	Header      TextStyle
	HeaderRule  bool
	Title       TextStyle
	Subtitle    TextStyle
	Meta        TextStyle
	Body        TextStyle
	Lead        TextStyle
	Footer      TextStyle
	Accent      Color
	Rule        Color
	Placeholder Color
	Indent      float64
	SectionGap  float64
	EntryGap    float64
	ItemGap     float64
}

const bullet = "• "

// sections draws the individual resume sections. Every method takes the
// cursor and returns the cursor below what it drew; a section without data
// draws nothing and returns the cursor unchanged.
type sections struct {
	c Canvas
	t theme
}

func (s sections) styleFor(st TextStyle, placeholder bool) TextStyle {
	if placeholder {
		st.Color = s.t.Placeholder
	}
	return st
}

func (s sections) text(col column, y float64, text string, st TextStyle) float64 {
	return DrawWrapped(s.c, text, col.X, y, col.Width, st)
}

func (s sections) header(col column, y float64, text string) float64 {
	next := s.text(col, y, text, s.t.Header)
	if s.t.HeaderRule {
		ruleY := next - s.t.Header.Advance() + 5
		s.c.Line(col.X, ruleY, col.X+col.Width, ruleY, s.t.Rule, 0.5)
	}
	return next
}

// bullets draws each item as its own wrapped, bullet-prefixed paragraph.
func (s sections) bullets(col column, y float64, items []string, st TextStyle) float64 {
	for _, it := range items {
		y = s.text(col, y, bullet+it, st)
		y += s.t.ItemGap
	}
	return y
}

func (s sections) name(col column, y float64, m *RenderModel) float64 {
	if m.Name.Empty() {
		return y
	}
	return s.text(col, y, m.Name.Text, s.styleFor(s.t.Name, m.Name.Placeholder))
}

func (s sections) contact(col column, y float64, m *RenderModel) float64 {
	if len(m.Contact) == 0 {
		return y
	}
	return s.text(col, y, m.contactLine(), s.styleFor(s.t.Contact, m.contactPlaceholder()))
}

// divider draws a horizontal rule just under the previous line.
func (s sections) divider(col column, y float64) float64 {
	s.c.Line(col.X, y-4, col.X+col.Width, y-4, s.t.Rule, 0.75)
	return y + s.t.SectionGap
}

func (s sections) summary(col column, y float64, m *RenderModel, heading string) float64 {
	if m.Summary.Empty() {
		return y
	}
	y = s.header(col, y, heading)
	y = s.text(col, y, m.Summary.Text, s.styleFor(s.t.Lead, m.Summary.Placeholder))
	return y + s.t.SectionGap
}

// skillsInline lists all skills as one comma separated paragraph.
func (s sections) skillsInline(col column, y float64, m *RenderModel) float64 {
	if len(m.Skills) == 0 {
		return y
	}
	y = s.header(col, y, "Skills")
	y = s.text(col, y, strings.Join(m.Skills, ", "), s.styleFor(s.t.Lead, m.SkillsPlaceholder))
	return y + s.t.SectionGap
}

// skillsColumns lays the skills out as two bullet lists side by side, the
// first holding ceil(n/2) items. Each list keeps its own cursor and the
// section ends below the longer one.
func (s sections) skillsColumns(col column, y float64, m *RenderModel) float64 {
	if len(m.Skills) == 0 {
		return y
	}
	y = s.header(col, y, "Skills")
	st := s.styleFor(s.t.Body, m.SkillsPlaceholder)
	sub := col.split(2, 10)
	first, second := halves(m.Skills)
	y1 := s.bullets(sub[0], y, first, st)
	y2 := s.bullets(sub[1], y, second, st)
	return max(y1, y2) + s.t.SectionGap
}

func (s sections) experience(col column, y float64, m *RenderModel, heading string) float64 {
	if len(m.Experience) == 0 {
		return y
	}
	y = s.header(col, y, heading)
	for _, e := range m.Experience {
		y = s.text(col, y, e.Heading, s.styleFor(s.t.Title, e.Placeholder))
		y = s.text(col, y, joinNonEmpty(" | ", e.Dates, e.Details), s.t.Meta)
		if e.Description != "" {
			y = s.text(col, y, e.Description, s.styleFor(s.t.Body, e.Placeholder))
			y += s.t.EntryGap
		}
		y = s.bullets(col.inset(s.t.Indent), y, e.Achievements, s.t.Body)
		if len(e.Projects) > 0 {
			y = s.text(col, y, "Projects: "+strings.Join(e.Projects, ", "), s.t.Body)
		}
		y = s.text(col, y, e.SkillsUsed, s.t.Body)
		y += s.t.EntryGap
	}
	return y
}

func (s sections) education(col column, y float64, m *RenderModel) float64 {
	if len(m.Education) == 0 {
		return y
	}
	y = s.header(col, y, "Education")
	for _, e := range m.Education {
		y = s.text(col, y, e.Heading, s.t.Title)
		y = s.text(col, y, e.Institution, s.t.Subtitle)
		y = s.text(col, y, e.Dates, s.t.Meta)
		y = s.text(col, y, joinNonEmpty(" | ", e.GPA, e.Honors), s.t.Meta)
		if e.Description != "" {
			y = s.text(col, y, e.Description, s.t.Body)
			y += s.t.EntryGap
		}
		y += s.t.EntryGap
	}
	return y
}

func (s sections) languages(col column, y float64, m *RenderModel) float64 {
	if len(m.Languages) == 0 {
		return y
	}
	y = s.header(col, y, "Languages")
	y = s.text(col, y, strings.Join(m.Languages, ", "), s.t.Lead)
	return y + s.t.SectionGap
}

func (s sections) certifications(col column, y float64, m *RenderModel) float64 {
	if len(m.Certifications) == 0 {
		return y
	}
	y = s.header(col, y, "Certifications")
	for _, c := range m.Certifications {
		y = s.text(col, y, c.Heading, s.t.Subtitle.bold())
		y = s.text(col, y, c.Dates, s.t.Meta)
		if c.Description != "" {
			y = s.text(col, y, c.Description, s.t.Body)
			y += s.t.EntryGap
		}
		y += s.t.ItemGap
	}
	return y
}

func (s sections) projects(col column, y float64, m *RenderModel) float64 {
	if len(m.Projects) == 0 {
		return y
	}
	y = s.header(col, y, "Projects")
	for _, p := range m.Projects {
		y = s.text(col, y, p.Name, s.t.Title)
		y = s.text(col, y, joinNonEmpty(" | ", p.Dates, p.Link), s.t.Meta)
		if p.Description != "" {
			y = s.text(col, y, p.Description, s.t.Body)
			y += s.t.EntryGap
		}
		if p.Technologies != "" {
			y = s.text(col, y, p.Technologies, s.t.Body)
			y += s.t.EntryGap
		}
		y += s.t.ItemGap
	}
	return y
}

// list is a headed bullet list (awards, volunteer work, hobbies).
func (s sections) list(col column, y float64, heading string, items []string) float64 {
	if len(items) == 0 {
		return y
	}
	y = s.header(col, y, heading)
	y = s.bullets(col, y, items, s.t.Body)
	return y + s.t.SectionGap
}

func (st TextStyle) bold() TextStyle {
	st.Bold = true
	return st
}
