package render

import "strings"

// Layout selects how sections are arranged on the page.
type Layout string

const (
	// Classic is a single column in fixed order.
	Classic Layout = "classic"
	// Sidebar puts skills, education and short lists in a shaded left
	// column and the work history in a wide right column.
	Sidebar Layout = "sidebar"
)

// ParseLayout maps a catalog value to a Layout, defaulting to Classic.
func ParseLayout(s string) Layout {
	if Layout(strings.ToLower(strings.TrimSpace(s))) == Sidebar {
		return Sidebar
	}
	return Classic
}

// Placeholders returns the sample content a layout substitutes by default.
func (l Layout) Placeholders() Placeholders {
	if l == Sidebar {
		return SamplePlaceholders
	}
	return ClassicPlaceholders
}

const (
	pageMargin   = 50.0
	footerOffset = 30.0
	sidebarWidth = 200.0
)

// Result reports where the cursor ended. Content below the bottom margin is
// still drawn but falls off the page; Overflow flags it.
type Result struct {
	Bottom   float64
	Overflow bool
}

var (
	headerBlue = Color{R: 0.2, G: 0.2, B: 0.6}

	classicTheme = theme{
		Name:        TextStyle{Bold: true, Size: 24, Color: Gray(0.1), LineGap: 6},
		Contact:     TextStyle{Size: 10, Color: Gray(0.4), LineGap: 2},
		Header:      TextStyle{Bold: true, Size: 16, Color: headerBlue, LineGap: 9},
		Title:       TextStyle{Bold: true, Size: 12, Color: Gray(0.3), LineGap: 6},
		Subtitle:    TextStyle{Size: 11, Color: Gray(0.4), LineGap: 4},
		Meta:        TextStyle{Size: 10, Color: Gray(0.5), LineGap: 5},
		Body:        TextStyle{Size: 10, Color: Black, LineGap: 2},
		Lead:        TextStyle{Size: 11, Color: Black, LineGap: 2},
		Footer:      TextStyle{Size: 8, Color: Gray(0.6), LineGap: 2},
		Accent:      headerBlue,
		Rule:        Gray(0.8),
		Placeholder: Gray(0.6),
		Indent:      20,
		SectionGap:  20,
		EntryGap:    10,
		ItemGap:     5,
	}

	sidebarTheme = theme{
		Name:        TextStyle{Bold: true, Size: 26, Color: Gray(0.12), LineGap: 8},
		Contact:     TextStyle{Size: 9.5, Color: Gray(0.4), LineGap: 4},
		Header:      TextStyle{Bold: true, Size: 12, Color: Color{R: 0.1, G: 0.35, B: 0.45}, LineGap: 10},
		HeaderRule:  true,
		Title:       TextStyle{Bold: true, Size: 11, Color: Gray(0.2), LineGap: 4},
		Subtitle:    TextStyle{Size: 10, Color: Gray(0.35), LineGap: 4},
		Meta:        TextStyle{Size: 9, Color: Gray(0.5), LineGap: 4},
		Body:        TextStyle{Size: 9.5, Color: Gray(0.1), LineGap: 4},
		Lead:        TextStyle{Size: 10, Color: Gray(0.1), LineGap: 4},
		Footer:      TextStyle{Size: 7.5, Color: Gray(0.6), LineGap: 2},
		Accent:      Color{R: 0.1, G: 0.35, B: 0.45},
		Rule:        Color{R: 0.7, G: 0.78, B: 0.82},
		Placeholder: Gray(0.6),
		Indent:      12,
		SectionGap:  16,
		EntryGap:    8,
		ItemGap:     3,
	}

	sidebarFill = Color{R: 0.93, G: 0.95, B: 0.96}
)

// assemble draws m onto one page and returns the final cursor. footer is
// drawn at a fixed position near the bottom edge and does not move the cursor.
func assemble(c Canvas, m *RenderModel, layout Layout, page PaperSize, footer string) Result {
	var bottom float64
	switch layout {
	case Sidebar:
		bottom = assembleSidebar(c, m, page, footer)
	default:
		bottom = assembleClassic(c, m, page, footer)
	}
	return Result{Bottom: bottom, Overflow: bottom > page.Height-pageMargin}
}

func assembleClassic(c Canvas, m *RenderModel, page PaperSize, footer string) float64 {
	s := sections{c: c, t: classicTheme}
	col := column{X: pageMargin, Width: page.Width - 2*pageMargin}

	c.FillRect(0, 0, page.Width, 6, s.t.Accent)

	y := pageMargin
	y = s.name(col, y, m)
	y = s.contact(col, y, m)
	y = s.divider(col, y)
	y = s.summary(col, y, m, "Professional Summary")
	y = s.skillsInline(col, y, m)
	y = s.experience(col, y, m, "Professional Experience")
	y = s.education(col, y, m)
	y = s.languages(col, y, m)
	y = s.certifications(col, y, m)
	y = s.projects(col, y, m)
	y = s.list(col, y, "Awards", m.Awards)
	y = s.list(col, y, "Volunteer", m.Volunteer)
	y = s.list(col, y, "Interests", m.Hobbies)

	s.text(col, page.Height-footerOffset, footer, s.t.Footer)
	return y
}

func assembleSidebar(c Canvas, m *RenderModel, page PaperSize, footer string) float64 {
	s := sections{c: c, t: sidebarTheme}
	left := column{X: 25, Width: sidebarWidth - 50}
	right := column{X: sidebarWidth + 25, Width: page.Width - sidebarWidth - 25 - 40}

	c.FillRect(0, 0, sidebarWidth, page.Height, sidebarFill)
	c.FillRect(sidebarWidth, 0, 4, page.Height, s.t.Accent)

	ry := pageMargin
	ry = s.name(right, ry, m)
	ry = s.contact(right, ry, m)
	ry = s.divider(right, ry)
	ry = s.summary(right, ry, m, "Profile")
	ry = s.experience(right, ry, m, "Work History")
	ry = s.projects(right, ry, m)

	ly := pageMargin
	ly = s.skillsColumns(left, ly, m)
	ly = s.education(left, ly, m)
	ly = s.certifications(left, ly, m)
	ly = s.languages(left, ly, m)
	ly = s.list(left, ly, "Awards", m.Awards)
	ly = s.list(left, ly, "Volunteer", m.Volunteer)
	ly = s.list(left, ly, "Hobbies", m.Hobbies)

	s.text(right, page.Height-footerOffset, footer, s.t.Footer)
	return max(ly, ry)
}
