package openapi

import (
	"encoding/json"
	"net/http"
)

// Version is the OpenAPI release the documents declare.
const Version = "3.1.0"

// New creates an empty document described by cfg. serverURL is the base
// path operations are relative to.
func New(cfg *Config, version, serverURL string, components *Components) *Spec {
	spec := &Spec{
		OpenAPI: Version,
		Info: &Info{
			Title:       cfg.Title,
			Version:     version,
			Description: cfg.Description,
		},
		Paths:      make(map[string]*PathItem),
		Components: components,
	}
	if serverURL != "" {
		spec.Servers = []*Server{{URL: serverURL}}
	}
	return spec
}

// NewComponents returns components holding the shared error schema and
// the BadRequest and InternalError responses.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"Error": {
				Type:     "object",
				Required: []string{"error"},
				Properties: map[string]*Property{
					"error": {Type: "string", Description: "Error message"},
				},
			},
		},
		Responses: map[string]*Response{
			"BadRequest":    ResponseJSON("Invalid request", "Error"),
			"InternalError": ResponseJSON("Store failure", "Error"),
		},
	}
}

// AddSchemas merges schemas into the components, replacing same-named entries.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	for name, s := range schemas {
		c.Schemas[name] = s
	}
}

// AddOperation binds op to method on path. Methods other than GET and POST
// are ignored.
func (s *Spec) AddOperation(path, method string, op *Operation) {
	if s.Paths[path] == nil {
		s.Paths[path] = &PathItem{}
	}

	switch method {
	case http.MethodGet:
		s.Paths[path].Get = op
	case http.MethodPost:
		s.Paths[path].Post = op
	}
}

// MarshalJSON encodes the document with two-space indentation.
func MarshalJSON(spec *Spec) ([]byte, error) {
	return json.MarshalIndent(spec, "", "  ")
}

// Handler serves a pre-encoded document.
func Handler(doc []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(doc)
	}
}
