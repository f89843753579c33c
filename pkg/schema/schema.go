// Package schema exposes the JSON schema of the persisted Story record so
// client apps can validate what the API hands them.
package schema

import (
	"github.com/invopop/jsonschema"

	"fable/pkg/story"
)

func generateSchema[T any]() any {
	r := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return r.Reflect(v)
}

var StorySchema = generateSchema[story.Story]()
