// internal/leaderboard/schema.go
package leaderboard

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// resultsSchema describes a results file: model name to an object of
// metrics (numbers), per-attempt series (arrays of numbers or null) and
// descriptive strings such as the provider.
const resultsSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": {
    "type": "object",
    "additionalProperties": {
      "anyOf": [
        {"type": "number"},
        {"type": "string"},
        {"type": "array", "items": {"type": ["number", "null"]}}
      ]
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(resultsSchema)

// Validate checks raw results JSON against the results schema. Every
// violation is listed in the returned error.
func Validate(data []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResults, err)
	}
	if result.Valid() {
		return nil
	}
	var details []string
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidResults, strings.Join(details, "; "))
}
