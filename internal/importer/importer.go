// Package importer parses and validates bulk CV imports before they reach the store.
package importer

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/mahmoud/cv-studio/internal/store"
	"github.com/mahmoud/cv-studio/internal/types"
)

//go:embed schema/cv.schema.json
var cvSchema []byte

// ParseError means the input is not well-formed JSON. The user-facing
// outcome is "invalid format"; the store is untouched.
type ParseError struct {
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid format: %v", e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// ValidationError means the input parsed but does not match the required CV
// shape. The user-facing outcome is "invalid CV data format"; the store is
// untouched.
type ValidationError struct {
	Fields []FieldError
}

// FieldError is a single schema violation at a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid CV data format"
	}
	return fmt.Sprintf("invalid CV data format: %s: %s", e.Fields[0].Field, e.Fields[0].Message)
}

// Parse turns a bulk import blob into a CVData without committing it.
// Callers distinguish the two failure modes with errors.As: *ParseError for
// malformed JSON, *ValidationError for a well-formed document with the wrong
// shape.
func Parse(data []byte) (*types.CVData, error) {
	var cv types.CVData
	if err := json.Unmarshal(data, &cv); err != nil {
		return nil, &ParseError{Cause: err}
	}

	schemaLoader := gojsonschema.NewBytesLoader(cvSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		// The document already unmarshalled, so a failure here is a schema
		// loading problem, not user input.
		return nil, fmt.Errorf("failed to run schema validation: %w", err)
	}

	if !result.Valid() {
		verr := &ValidationError{}
		for _, re := range result.Errors() {
			verr.Fields = append(verr.Fields, FieldError{
				Field:   re.Field(),
				Message: re.Description(),
			})
		}
		return nil, verr
	}

	return &cv, nil
}

// Importer commits validated bulk imports to a store.
type Importer struct {
	store *store.Store
}

// New creates an Importer bound to the given store.
func New(s *store.Store) *Importer {
	return &Importer{store: s}
}

// Import parses, validates, and commits a bulk import. Any failure leaves the
// store exactly as it was.
func (i *Importer) Import(data []byte) (*types.CVData, error) {
	cv, err := Parse(data)
	if err != nil {
		return nil, err
	}
	i.store.Replace(cv)
	return cv, nil
}

// Export renders a CV back into the bulk import format. A document produced
// here re-imports to a field-by-field equal CV.
func Export(cv *types.CVData) ([]byte, error) {
	out, err := json.MarshalIndent(cv, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal CV: %w", err)
	}
	return out, nil
}
