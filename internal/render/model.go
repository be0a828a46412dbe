package render

import (
	"strings"

	"resume-builder/internal/model"
)

// Field is a display value. Placeholder marks text that was not in the
// record but supplied for presentation.
type Field struct {
	Text        string
	Placeholder bool
}

func (f Field) Empty() bool { return strings.TrimSpace(f.Text) == "" }

type ExperienceView struct {
	Heading      string
	Dates        string
	Details      string
	Description  string
	Achievements []string
	Projects     []string
	SkillsUsed   string
	Placeholder  bool
}

type EducationView struct {
	Heading     string
	Institution string
	Dates       string
	GPA         string
	Honors      string
	Description string
}

type CertificationView struct {
	Heading     string
	Dates       string
	Description string
}

type ProjectView struct {
	Name         string
	Dates        string
	Link         string
	Description  string
	Technologies string
}

// RenderModel is the presentation-ready projection of a resume. It is built
// once per render and only read afterwards; empty slices and empty fields
// mean the section is skipped.
type RenderModel struct {
	Name              Field
	Contact           []Field
	Summary           Field
	Skills            []string
	SkillsPlaceholder bool
	Experience        []ExperienceView
	Education         []EducationView
	Languages         []string
	Certifications    []CertificationView
	Projects          []ProjectView
	Awards            []string
	Volunteer         []string
	Hobbies           []string
}

// Placeholders is the sample content shown where a record has nothing.
// Zero-valued members substitute nothing.
type Placeholders struct {
	Name    string
	Phone   string
	Summary string
	Skills  []string
	Job     *model.Experience
}

var (
	// ClassicPlaceholders only keeps the header from being blank.
	ClassicPlaceholders = Placeholders{Name: "Resume"}

	SamplePlaceholders = Placeholders{
		Name:    "Your Name",
		Phone:   "+1 (555) 010-0199",
		Summary: "Motivated professional with a track record of delivering results. Add a short summary of your strengths and goals here.",
		Skills:  []string{"Communication", "Teamwork", "Problem Solving", "Time Management"},
		Job: &model.Experience{
			Company:     "Company Name",
			Position:    "Job Title",
			Current:     true,
			Description: "Describe your main responsibilities and the impact you had in this role.",
		},
	}
)

// Build projects rec into a RenderModel, substituting ph where rec is blank.
// rec is not modified.
func Build(rec *model.Resume, ph Placeholders) RenderModel {
	m := RenderModel{
		Name:    fieldOr(rec.Name, ph.Name),
		Summary: fieldOr(rec.Summary, ph.Summary),
	}

	m.Contact = contactFields(rec.Contact, ph.Phone)

	m.Skills = trimmed(rec.Skills)
	if len(m.Skills) == 0 && len(ph.Skills) > 0 {
		m.Skills = append([]string(nil), ph.Skills...)
		m.SkillsPlaceholder = true
	}

	for _, e := range rec.Experience {
		m.Experience = append(m.Experience, experienceView(e))
	}
	if len(m.Experience) == 0 && ph.Job != nil {
		v := experienceView(*ph.Job)
		v.Placeholder = true
		m.Experience = []ExperienceView{v}
	}

	for _, e := range rec.Education {
		m.Education = append(m.Education, EducationView{
			Heading:     joinNonEmpty(" in ", e.Degree, firstNonEmpty(e.Field, e.Major)),
			Institution: joinNonEmpty(", ", e.Institution, e.Location),
			Dates:       dateRange(e.StartDate, e.EndDate, false),
			GPA:         formatGPA(e.GPA),
			Honors:      strings.TrimSpace(e.Honors),
			Description: strings.TrimSpace(e.Description),
		})
	}

	for _, l := range rec.Languages {
		name := strings.TrimSpace(l.Name)
		if name == "" {
			continue
		}
		prof := l.Proficiency
		if prof == "" {
			prof = "intermediate"
		}
		m.Languages = append(m.Languages, name+" ("+title(prof)+")")
	}

	for _, c := range rec.Certifications {
		if strings.TrimSpace(c.Name) == "" {
			continue
		}
		dates := monthYear(c.Date)
		if exp := monthYear(c.ExpiryDate); exp != "" {
			dates = joinNonEmpty(" - ", dates, exp)
		}
		m.Certifications = append(m.Certifications, CertificationView{
			Heading:     joinNonEmpty(" - ", c.Name, c.Issuer),
			Dates:       dates,
			Description: strings.TrimSpace(c.Description),
		})
	}

	for _, p := range rec.Projects {
		if strings.TrimSpace(p.Name) == "" {
			continue
		}
		view := ProjectView{
			Name:        strings.TrimSpace(p.Name),
			Link:        linkLabel(p.Link),
			Description: strings.TrimSpace(p.Description),
		}
		if p.StartDate.Valid() {
			view.Dates = dateRange(p.StartDate, p.EndDate, false)
		}
		if techs := trimmed(p.Technologies); len(techs) > 0 {
			view.Technologies = "Technologies: " + strings.Join(techs, ", ")
		}
		m.Projects = append(m.Projects, view)
	}

	m.Awards = trimmed(rec.Awards)
	m.Volunteer = trimmed(rec.Volunteer)
	m.Hobbies = trimmed(rec.Hobbies)
	return m
}

func experienceView(e model.Experience) ExperienceView {
	heading := joinNonEmpty(" at ", e.Position, e.Company)
	v := ExperienceView{
		Heading:      heading,
		Dates:        dateRange(e.StartDate, e.EndDate, e.Current),
		Details:      joinNonEmpty(" | ", title(string(e.EmploymentType)), e.Location),
		Description:  strings.TrimSpace(e.Description),
		Achievements: trimmed(e.Achievements),
		Projects:     trimmed(e.Projects),
	}
	if skills := trimmed(e.SkillsUsed); len(skills) > 0 {
		v.SkillsUsed = "Skills: " + strings.Join(skills, ", ")
	}
	return v
}

func contactFields(c model.Contact, phonePlaceholder string) []Field {
	var out []Field
	if p := fieldOr(c.Phone, phonePlaceholder); !p.Empty() {
		out = append(out, p)
	}
	if e := strings.TrimSpace(c.Email); e != "" {
		out = append(out, Field{Text: e})
	}
	if a := c.Address; a != nil {
		if addr := joinNonEmpty(", ", a.Street, a.City, a.State, a.ZipCode, a.Country); addr != "" {
			out = append(out, Field{Text: addr})
		}
	}
	for _, link := range []string{c.LinkedIn, c.Website} {
		if l := linkLabel(link); l != "" {
			out = append(out, Field{Text: l})
		}
	}
	return out
}

func fieldOr(value, placeholder string) Field {
	if v := strings.TrimSpace(value); v != "" {
		return Field{Text: v}
	}
	if placeholder == "" {
		return Field{}
	}
	return Field{Text: placeholder, Placeholder: true}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// contactLine joins the contact items for a one-line header.
func (m *RenderModel) contactLine() string {
	parts := make([]string, len(m.Contact))
	for i, f := range m.Contact {
		parts[i] = f.Text
	}
	return strings.Join(parts, " | ")
}

// contactPlaceholder reports whether every contact item is sample text.
func (m *RenderModel) contactPlaceholder() bool {
	for _, f := range m.Contact {
		if !f.Placeholder {
			return false
		}
	}
	return len(m.Contact) > 0
}
