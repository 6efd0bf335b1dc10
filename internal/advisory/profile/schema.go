package profile

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// profileSchema is the strict contract enforced at the API boundary.
// Normalize still runs afterwards, so the schema rejects only structurally
// broken payloads (wrong types); value-level repair is Normalize's job.
const profileSchema = `{
  "type": "object",
  "properties": {
    "name": {"type": "string"},
    "salary": {"type": "number", "minimum": 0},
    "expenses": {"type": "number", "minimum": 0},
    "risk_tolerance": {"type": "string"},
    "target_savings": {"type": "number", "minimum": 0},
    "country": {"type": "string"},
    "language": {"type": "string"},
    "life_stage": {"type": "string"},
    "goals": {"type": "array", "items": {"type": "string"}}
  },
  "additionalProperties": true
}`

var compiledSchema = gojsonschema.NewStringLoader(profileSchema)

// ValidateJSON checks a raw profile document against the schema and returns
// a single aggregated error describing every violation.
func ValidateJSON(raw []byte) error {
	result, err := gojsonschema.Validate(compiledSchema, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("profile validation: %w", err)
	}

	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return fmt.Errorf("profile validation: %s", strings.Join(msgs, "; "))
}
