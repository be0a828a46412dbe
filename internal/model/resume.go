package model

// Go models that match resume.schema.json used for validation and rendering.
// Two shapes of stored resumes exist: the legacy one carries only the
// minimal fields, the extended one adds location, major, employment type,
// achievements and per-job projects. Everything except Name is optional.

type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
	Country string `json:"country,omitempty"`
}

type Contact struct {
	Phone    string   `json:"phone,omitempty"`
	Email    string   `json:"email,omitempty"`
	Address  *Address `json:"address,omitempty"`
	LinkedIn string   `json:"linkedin,omitempty"`
	Website  string   `json:"website,omitempty"`
}

type Education struct {
	Institution string   `json:"institution"`
	Degree      string   `json:"degree"`
	Field       string   `json:"field"`
	Location    string   `json:"location,omitempty"`
	Major       string   `json:"major,omitempty"`
	StartDate   *Date    `json:"startDate,omitempty"`
	EndDate     *Date    `json:"endDate,omitempty"` // nil means ongoing
	GPA         *float64 `json:"gpa,omitempty"`
	Honors      string   `json:"honors,omitempty"`
	Description string   `json:"description,omitempty"`
}

// EmploymentType is one of the EmploymentTypes values.
type EmploymentType string

const (
	FullTime   EmploymentType = "full-time"
	PartTime   EmploymentType = "part-time"
	Contract   EmploymentType = "contract"
	Internship EmploymentType = "internship"
	Freelance  EmploymentType = "freelance"
)

var EmploymentTypes = []EmploymentType{FullTime, PartTime, Contract, Internship, Freelance}

type Experience struct {
	Company        string         `json:"company"`
	Position       string         `json:"position"`
	Location       string         `json:"location,omitempty"`
	StartDate      *Date          `json:"startDate,omitempty"`
	EndDate        *Date          `json:"endDate,omitempty"`
	Current        bool           `json:"current,omitempty"`
	EmploymentType EmploymentType `json:"employmentType,omitempty"`
	Description    string         `json:"description,omitempty"`
	Achievements   []string       `json:"achievements,omitempty"`
	Projects       []string       `json:"projects,omitempty"`
	SkillsUsed     []string       `json:"skillsUsed,omitempty"`
}

type Language struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency,omitempty"` // beginner, intermediate, advanced, native
}

type Certification struct {
	Name        string `json:"name"`
	Issuer      string `json:"issuer,omitempty"`
	Date        *Date  `json:"date,omitempty"`
	ExpiryDate  *Date  `json:"expiryDate,omitempty"`
	Description string `json:"description,omitempty"`
}

type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Link         string   `json:"link,omitempty"`
	StartDate    *Date    `json:"startDate,omitempty"`
	EndDate      *Date    `json:"endDate,omitempty"`
}

// Resume is the user-editable content of a resume document.
type Resume struct {
	Name           string          `json:"name"`
	TemplateID     string          `json:"templateId"`
	Contact        Contact         `json:"contact"`
	Summary        string          `json:"summary,omitempty"`
	Education      []Education     `json:"education"`
	Skills         []string        `json:"skills"`
	Experience     []Experience    `json:"experience"`
	Languages      []Language      `json:"languages,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	Projects       []Project       `json:"projects,omitempty"`
	Awards         []string        `json:"awards,omitempty"`
	Volunteer      []string        `json:"volunteer,omitempty"`
	Hobbies        []string        `json:"hobbies,omitempty"`
}

// Clone returns a deep copy so callers can adjust a resume for one request
// without touching the stored value.
func (r Resume) Clone() Resume {
	out := r
	if r.Contact.Address != nil {
		a := *r.Contact.Address
		out.Contact.Address = &a
	}
	out.Education = append([]Education(nil), r.Education...)
	out.Skills = append([]string(nil), r.Skills...)
	out.Experience = make([]Experience, len(r.Experience))
	for i, e := range r.Experience {
		e.Achievements = append([]string(nil), e.Achievements...)
		e.Projects = append([]string(nil), e.Projects...)
		e.SkillsUsed = append([]string(nil), e.SkillsUsed...)
		out.Experience[i] = e
	}
	if r.Experience == nil {
		out.Experience = nil
	}
	out.Languages = append([]Language(nil), r.Languages...)
	out.Certifications = append([]Certification(nil), r.Certifications...)
	out.Projects = make([]Project, len(r.Projects))
	for i, p := range r.Projects {
		p.Technologies = append([]string(nil), p.Technologies...)
		out.Projects[i] = p
	}
	if r.Projects == nil {
		out.Projects = nil
	}
	out.Awards = append([]string(nil), r.Awards...)
	out.Volunteer = append([]string(nil), r.Volunteer...)
	out.Hobbies = append([]string(nil), r.Hobbies...)
	return out
}
