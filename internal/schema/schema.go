package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/spacesedan/chatlog/internal/models"
)

const inputSchemaID = "https://github.com/spacesedan/chatlog/input.schema.json"

// InputSchema describes the JSON input document accepted by the parser.
func InputSchema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}

	s := reflector.Reflect(&models.Document{})
	s.ID = inputSchemaID
	s.Title = "Chat log input"

	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal input schema: %w", err)
	}
	return b, nil
}
