package bril

import "github.com/invopop/jsonschema"

// document mirrors the shape Parse accepts. Only used for schema reflection.
type document struct {
	Functions []functionDocument `json:"functions" jsonschema:"title=Functions,description=Functions of the program in declaration order"`
}

type functionDocument struct {
	Name   string `json:"name" jsonschema:"title=Name,description=Function name"`
	Instrs []any  `json:"instrs" jsonschema:"title=Instructions,description=Opaque instruction values"`
}

// DocumentSchema returns the JSON Schema of a document Load accepts.
// Unknown keys are allowed at every level.
func DocumentSchema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		DoNotReference:            true,
	}
	s := reflector.Reflect(&document{})
	s.Title = "Bril program"
	return s
}
