// Package schemas provides JSON Schema validation for LLM output.
// Schemas are embedded at compile time.
package schemas

import (
	"fmt"
	"strings"

	_ "embed"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed generated_email.schema.json
var generatedEmailSchema string

// ValidationError represents a schema validation failure with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:")
	for _, fe := range ve.Errors {
		sb.WriteString(fmt.Sprintf("\n  %s: %s", fe.Field, fe.Message))
	}
	return sb.String()
}

// ValidateGeneratedEmail checks that jsonText conforms to the
// GeneratedEmail schema: non-empty subject and body, and a
// suggestedActions field that is an array of strings (or a single
// string, which callers coerce to an array).
func ValidateGeneratedEmail(jsonText string) error {
	schemaLoader := gojsonschema.NewStringLoader(generatedEmailSchema)
	documentLoader := gojsonschema.NewStringLoader(jsonText)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &ValidationError{Errors: []FieldError{
			{Field: "(document)", Message: err.Error()},
		}}
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, resultErr := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   resultErr.Field(),
			Message: resultErr.Description(),
		})
	}
	return ve
}
