package model

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/*.json
var schemaFS embed.FS

// Schema names one of the embedded JSON schemas.
type Schema string

const (
	ResumeSchema          Schema = "resume"
	SignupSchema          Schema = "signup"
	LoginSchema           Schema = "login"
	ForgotPasswordSchema  Schema = "forgot_password"
	ResetPasswordSchema   Schema = "reset_password"
	ExperienceLevelSchema Schema = "experience_level"
)

// FieldError describes one failed constraint. Field uses dotted paths such
// as "experience.0.company".
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when a payload does not satisfy its schema.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

var (
	schemasMu sync.Mutex
	schemas   = map[Schema]*gojsonschema.Schema{}
)

func loadSchema(name Schema) (*gojsonschema.Schema, error) {
	schemasMu.Lock()
	defer schemasMu.Unlock()
	if s, ok := schemas[name]; ok {
		return s, nil
	}
	raw, err := schemaFS.ReadFile("schema/" + string(name) + ".schema.json")
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", name, err)
	}
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}
	schemas[name] = s
	return s, nil
}

// Validate checks a raw JSON document against the named schema. A document
// that fails returns *ValidationError; any other error means the document
// could not be parsed at all.
func Validate(name Schema, body []byte) error {
	s, err := loadSchema(name)
	if err != nil {
		return err
	}
	res, err := s.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return &ValidationError{Errors: []FieldError{{Field: "(root)", Message: "invalid JSON body"}}}
	}
	if res.Valid() {
		return nil
	}
	verr := &ValidationError{}
	for _, e := range res.Errors() {
		verr.Errors = append(verr.Errors, FieldError{Field: fieldOf(e), Message: e.Description()})
	}
	return verr
}

func fieldOf(e gojsonschema.ResultError) string {
	field := e.Field()
	if e.Type() != "required" {
		return field
	}
	prop, ok := e.Details()["property"].(string)
	if !ok {
		return field
	}
	if field == "(root)" {
		return prop
	}
	return field + "." + prop
}
