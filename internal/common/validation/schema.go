// Package validation checks ticket batch files against a JSON schema before
// any ticket reaches the decision engine.
package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ticketBatchSchema is the wire shape of a ticket batch file: a top-level
// array of ticket objects. Field-level business rules (non-blank ids after
// trimming) stay in models.Ticket.Validate.
const ticketBatchSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["ticket_id", "customer_id", "subject", "description", "created_at"],
		"properties": {
			"ticket_id":   {"type": "string", "minLength": 1},
			"customer_id": {"type": "string", "minLength": 1},
			"subject":     {"type": "string"},
			"description": {"type": "string"},
			"created_at":  {"type": "string", "format": "date-time"}
		},
		"additionalProperties": true
	}
}`

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateTicketBatch validates raw JSON bytes against the batch schema.
func ValidateTicketBatch(data []byte) (*ValidationResult, error) {
	schemaLoader := gojsonschema.NewStringLoader(ticketBatchSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("batch schema validation failed: %w", err)
	}

	out := &ValidationResult{Valid: result.Valid()}
	for _, e := range result.Errors() {
		out.Errors = append(out.Errors, ValidationError{
			Field:   e.Field(),
			Message: e.Description(),
		})
	}
	return out, nil
}

// ErrorSummary flattens validation errors into a single message.
func (r *ValidationResult) ErrorSummary() string {
	if r.Valid || len(r.Errors) == 0 {
		return ""
	}
	parts := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return strings.Join(parts, "; ")
}
