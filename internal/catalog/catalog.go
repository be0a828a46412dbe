package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"resume-builder/internal/domain"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrNotSuitable      = errors.New("template is not suitable for your experience level")
)

type Template struct {
	ID          string                   `yaml:"id" json:"id"`
	Name        string                   `yaml:"name" json:"name"`
	Description string                   `yaml:"description" json:"description"`
	Category    string                   `yaml:"category" json:"category"`
	PreviewURL  string                   `yaml:"previewUrl" json:"previewUrl"`
	Features    []string                 `yaml:"features" json:"features"`
	SuitableFor []domain.ExperienceLevel `yaml:"suitableFor" json:"suitableFor"`
	ColorScheme string                   `yaml:"colorScheme" json:"colorScheme"`
	Layout      string                   `yaml:"layout" json:"layout"`
}

func (t Template) SuitableForLevel(level domain.ExperienceLevel) bool {
	return level == "" || slices.Contains(t.SuitableFor, level)
}

type Category struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Catalog is a read-only list of templates. An empty experience level in
// any query means no filtering.
type Catalog struct {
	templates []Template
}

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded catalog.yaml: %v", err))
	}
	return c
}

// Parse reads a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc struct {
		Templates []Template `yaml:"templates"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	seen := make(map[string]bool, len(doc.Templates))
	for _, t := range doc.Templates {
		if t.ID == "" {
			return nil, errors.New("parse catalog: template without id")
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("parse catalog: duplicate template id %q", t.ID)
		}
		seen[t.ID] = true
		for _, l := range t.SuitableFor {
			if !l.Valid() {
				return nil, fmt.Errorf("parse catalog: template %q: unknown experience level %q", t.ID, l)
			}
		}
	}
	return &Catalog{templates: doc.Templates}, nil
}

func (c *Catalog) Len() int { return len(c.templates) }

func (c *Catalog) List(level domain.ExperienceLevel) []Template {
	return c.filter(level, func(Template) bool { return true })
}

// Get returns the template with id. ErrNotSuitable is returned when level
// is set and the template does not cover it.
func (c *Catalog) Get(id string, level domain.ExperienceLevel) (Template, error) {
	for _, t := range c.templates {
		if t.ID != id {
			continue
		}
		if !t.SuitableForLevel(level) {
			return Template{}, ErrNotSuitable
		}
		return t, nil
	}
	return Template{}, ErrTemplateNotFound
}

// Lookup returns a template by id regardless of experience level.
func (c *Catalog) Lookup(id string) (Template, bool) {
	for _, t := range c.templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// ByCategory fails with ErrCategoryNotFound only when the category itself
// is unknown; a known category may still yield no templates for level.
func (c *Catalog) ByCategory(category string, level domain.ExperienceLevel) ([]Template, error) {
	known := false
	for _, t := range c.templates {
		if t.Category == category {
			known = true
			break
		}
	}
	if !known {
		return nil, ErrCategoryNotFound
	}
	return c.filter(level, func(t Template) bool { return t.Category == category }), nil
}

// Categories lists every category with its template count, in catalog order.
func (c *Catalog) Categories() []Category {
	var out []Category
	index := map[string]int{}
	for _, t := range c.templates {
		i, ok := index[t.Category]
		if !ok {
			i = len(out)
			index[t.Category] = i
			out = append(out, Category{Name: t.Category})
		}
		out[i].Count++
	}
	return out
}

// Search matches query case-insensitively against name, description,
// category and features.
func (c *Catalog) Search(query string, level domain.ExperienceLevel) []Template {
	q := strings.ToLower(query)
	return c.filter(level, func(t Template) bool {
		if strings.Contains(strings.ToLower(t.Name), q) ||
			strings.Contains(strings.ToLower(t.Description), q) ||
			strings.Contains(strings.ToLower(t.Category), q) {
			return true
		}
		for _, f := range t.Features {
			if strings.Contains(strings.ToLower(f), q) {
				return true
			}
		}
		return false
	})
}

const maxRecommendations = 3

// Recommend returns up to three templates for level, templates made only
// for that level first.
func (c *Catalog) Recommend(level domain.ExperienceLevel) []Template {
	out := c.filter(level, func(Template) bool { return true })
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].SuitableFor) == 1 && len(out[j].SuitableFor) > 1
	})
	if len(out) > maxRecommendations {
		out = out[:maxRecommendations]
	}
	return out
}

func (c *Catalog) filter(level domain.ExperienceLevel, keep func(Template) bool) []Template {
	out := []Template{}
	for _, t := range c.templates {
		if keep(t) && t.SuitableForLevel(level) {
			out = append(out, t)
		}
	}
	return out
}
