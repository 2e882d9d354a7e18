package skills

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
)

// Schema describes the SKILL.md header block as a JSON Schema
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}

	s := reflector.Reflect(&Metadata{})
	s.Title = "SKILL.md header"
	return s
}

// SchemaJSON returns the indented JSON encoding of Schema
func SchemaJSON() (string, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal schema")
	}
	return string(data), nil
}
