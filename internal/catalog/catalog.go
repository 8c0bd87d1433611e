// Package catalog loads job posting catalogs from JSON files, validating
// them against an embedded JSON Schema before decoding.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-matcher/internal/types"
)

//go:embed job_catalog.schema.json
var catalogSchema string

// FieldError is a single schema violation at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError reports every schema violation found in a catalog
// document.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("catalog validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Load reads and parses a catalog file.
func Load(path string) ([]types.JobPosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse validates raw catalog JSON against the schema and decodes it.
// Postings without an id are assigned one; postings without an explicit
// is_active flag are treated as active.
func Parse(data []byte) ([]types.JobPosting, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	jobs := make([]types.JobPosting, 0, len(raw))
	for i, entry := range raw {
		job := types.JobPosting{IsActive: true}
		if err := json.Unmarshal(entry, &job); err != nil {
			return nil, fmt.Errorf("failed to decode catalog entry %d: %w", i, err)
		}
		if job.ID == uuid.Nil {
			job.ID = uuid.New()
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func validate(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(catalogSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate catalog: %w", err)
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
