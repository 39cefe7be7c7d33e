// Package schema generates JSON Schema from the piklish config types.
package schema

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/invopop/jsonschema"

	"github.com/smykla-labs/piklish/pkg/config"
)

const (
	schemaURI = "https://json-schema.org/draft/2020-12/schema"
	title     = "piklish configuration"

	schemaBaseURL = "https://raw.githubusercontent.com/smykla-labs/piklish/main/schema"
)

// Filename returns the published schema file name.
func Filename() string {
	return "piklish-config.schema.json"
}

// SchemaDirective returns the Taplo directive written at the top of
// generated TOML config files.
func SchemaDirective() string {
	return "#:schema " + schemaBaseURL + "/" + Filename() + "\n"
}

// Generate produces a JSON Schema from the config.Config struct.
func Generate() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
	}

	s := r.Reflect(&config.Config{})
	s.Version = schemaURI
	s.Title = title

	return s
}

// GenerateJSON produces a JSON Schema as bytes.
// When indent is true, the output is pretty-printed.
func GenerateJSON(indent bool) ([]byte, error) {
	s := Generate()

	var (
		data []byte
		err  error
	)

	if indent {
		data, err = json.MarshalIndent(s, "", "  ")
	} else {
		data, err = json.Marshal(s)
	}

	if err != nil {
		return nil, errors.Wrap(err, "marshaling schema to JSON")
	}

	// Append trailing newline for file output.
	return append(data, '\n'), nil
}
