// Package schema holds the wire contract of the websocket echo reply.
package schema

import (
	_ "embed"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed reply.json
var replySchema []byte
var replySchemaLoader = gojsonschema.NewBytesLoader(replySchema)

type Schema struct {
	schema *gojsonschema.Schema
}

func NewReplySchema() (*Schema, error) {
	schema, err := gojsonschema.NewSchema(replySchemaLoader)
	if err != nil {
		return nil, err
	}

	return &Schema{schema: schema}, nil
}

// Validate checks a serialized reply against the contract.
func (s *Schema) Validate(data []byte) (*gojsonschema.Result, error) {
	return s.schema.Validate(gojsonschema.NewBytesLoader(data))
}
