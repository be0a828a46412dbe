package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/model"
)

func gpa(v float64) *float64 { return &v }

func fullResume() *model.Resume {
	return &model.Resume{
		Name:       "Grace Hopper",
		TemplateID: "modern",
		Contact: model.Contact{
			Phone:    "555-0100",
			Email:    "grace@example.com",
			Address:  &model.Address{City: "Arlington", State: "VA"},
			LinkedIn: "https://www.linkedin.com/in/grace/",
			Website:  "https://www.example.co.uk",
		},
		Summary: "Compiler pioneer.",
		Skills:  []string{"COBOL", " ", "Compilers"},
		Experience: []model.Experience{{
			Company:        "US Navy",
			Position:       "Rear Admiral",
			Location:       "Washington, DC",
			StartDate:      model.NewDate(1967, 8, 1),
			EndDate:        model.NewDate(1986, 8, 14),
			Current:        true,
			EmploymentType: model.FullTime,
			Description:    "Standardized programming languages.",
			Achievements:   []string{"Led COBOL validation"},
			SkillsUsed:     []string{"COBOL", "Leadership"},
		}},
		Education: []model.Education{
			{
				Institution: "Yale",
				Degree:      "PhD",
				Field:       "Mathematics",
				StartDate:   model.NewDate(1930, 9, 1),
				EndDate:     model.NewDate(1934, 6, 1),
				GPA:         gpa(3.8),
			},
			{
				Institution: "Vassar",
				Degree:      "BA",
				Major:       "Physics",
				StartDate:   model.NewDate(1924, 9, 1),
			},
		},
		Languages: []model.Language{{Name: "German"}, {Name: "English", Proficiency: "native"}},
		Certifications: []model.Certification{{
			Name: "Naval Reserve", Issuer: "USNR", Date: model.NewDate(1943, 12, 1),
		}},
		Projects: []model.Project{{
			Name:         "FLOW-MATIC",
			Link:         "https://github.com/hopper/flowmatic/",
			Technologies: []string{"UNIVAC"},
		}},
		Hobbies: []string{"Clocks"},
	}
}

func TestBuildFullRecord(t *testing.T) {
	m := Build(fullResume(), SamplePlaceholders)

	assert.Equal(t, Field{Text: "Grace Hopper"}, m.Name)
	assert.Equal(t, "555-0100 | grace@example.com | Arlington, VA | linkedin.com/in/grace | example.co.uk", m.contactLine())
	assert.False(t, m.contactPlaceholder())
	assert.Equal(t, []string{"COBOL", "Compilers"}, m.Skills)
	assert.False(t, m.SkillsPlaceholder)

	require.Len(t, m.Experience, 1)
	e := m.Experience[0]
	assert.Equal(t, "Rear Admiral at US Navy", e.Heading)
	assert.Equal(t, "Aug 1967 - Present", e.Dates)
	assert.Equal(t, "Full Time | Washington, DC", e.Details)
	assert.Equal(t, "Skills: COBOL, Leadership", e.SkillsUsed)
	assert.False(t, e.Placeholder)

	require.Len(t, m.Education, 2)
	assert.Equal(t, "PhD in Mathematics", m.Education[0].Heading)
	assert.Equal(t, "Sep 1930 - Jun 1934", m.Education[0].Dates)
	assert.Equal(t, "GPA: 3.8", m.Education[0].GPA)
	assert.Equal(t, "BA in Physics", m.Education[1].Heading)
	assert.Equal(t, "Sep 1924 - Present", m.Education[1].Dates)

	assert.Equal(t, []string{"German (Intermediate)", "English (Native)"}, m.Languages)
	assert.Equal(t, []CertificationView{{Heading: "Naval Reserve - USNR", Dates: "Dec 1943"}}, m.Certifications)
	assert.Equal(t, []ProjectView{{
		Name:         "FLOW-MATIC",
		Link:         "github.com/hopper/flowmatic",
		Technologies: "Technologies: UNIVAC",
	}}, m.Projects)
	assert.Equal(t, []string{"Clocks"}, m.Hobbies)
	assert.Empty(t, m.Awards)
}

func TestBuildPlaceholders(t *testing.T) {
	rec := &model.Resume{Name: "Ada Lovelace"}

	t.Run("sample", func(t *testing.T) {
		m := Build(rec, SamplePlaceholders)
		assert.Equal(t, Field{Text: "Ada Lovelace"}, m.Name)
		assert.Equal(t, []Field{{Text: SamplePlaceholders.Phone, Placeholder: true}}, m.Contact)
		assert.True(t, m.contactPlaceholder())
		assert.Equal(t, Field{Text: SamplePlaceholders.Summary, Placeholder: true}, m.Summary)
		assert.Equal(t, SamplePlaceholders.Skills, m.Skills)
		assert.True(t, m.SkillsPlaceholder)
		require.Len(t, m.Experience, 1)
		assert.True(t, m.Experience[0].Placeholder)
		assert.Equal(t, "Job Title at Company Name", m.Experience[0].Heading)
		assert.Equal(t, Present, m.Experience[0].Dates)
	})

	t.Run("classic", func(t *testing.T) {
		m := Build(rec, ClassicPlaceholders)
		assert.Equal(t, Field{Text: "Ada Lovelace"}, m.Name)
		assert.Empty(t, m.Contact)
		assert.True(t, m.Summary.Empty())
		assert.Empty(t, m.Skills)
		assert.Empty(t, m.Experience)
	})

	t.Run("blank name", func(t *testing.T) {
		m := Build(&model.Resume{Name: "   "}, ClassicPlaceholders)
		assert.Equal(t, Field{Text: "Resume", Placeholder: true}, m.Name)
	})

	t.Run("placeholder skills are copied", func(t *testing.T) {
		m := Build(rec, SamplePlaceholders)
		m.Skills[0] = "changed"
		assert.Equal(t, "Communication", SamplePlaceholders.Skills[0])
	})
}

func TestBuildDoesNotModifyRecord(t *testing.T) {
	rec := fullResume()
	before := rec.Clone()
	Build(rec, SamplePlaceholders)
	assert.Equal(t, before, *rec)

	empty := &model.Resume{Name: "Ada Lovelace"}
	Build(empty, SamplePlaceholders)
	assert.Empty(t, empty.Skills)
	assert.Empty(t, empty.Experience)
	assert.Empty(t, empty.Contact.Phone)
}
