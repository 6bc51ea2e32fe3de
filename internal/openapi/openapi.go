// Package openapi assembles the OpenAPI 3 document served at /openapi.json.
// Each module declares the paths and schemas for its own routes; main
// collects them into a single Document. The document is a derived artifact:
// the declarations live next to the handlers they describe.
package openapi

import (
	"net/http"

	"github.com/alexken/stockroom/internal/httpx"
)

// Document is the root OpenAPI 3.0 object, restricted to the fields this
// API uses.
type Document struct {
	OpenAPI    string              `json:"openapi"`
	Info       Info                `json:"info"`
	Paths      map[string]PathItem `json:"paths"`
	Components Components          `json:"components"`
}

type Info struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version"`
}

// PathItem maps a lowercase HTTP method to its operation.
type PathItem map[string]Operation

type Operation struct {
	Summary     string              `json:"summary,omitempty"`
	Tags        []string            `json:"tags,omitempty"`
	Parameters  []Parameter         `json:"parameters,omitempty"`
	RequestBody *RequestBody        `json:"requestBody,omitempty"`
	Responses   map[string]Response `json:"responses"`
}

type Parameter struct {
	Name     string  `json:"name"`
	In       string  `json:"in"` // "path" or "query"
	Required bool    `json:"required,omitempty"`
	Schema   *Schema `json:"schema,omitempty"`
}

type RequestBody struct {
	Required bool                 `json:"required,omitempty"`
	Content  map[string]MediaType `json:"content"`
}

type Response struct {
	Description string               `json:"description"`
	Content     map[string]MediaType `json:"content,omitempty"`
}

type MediaType struct {
	Schema *Schema `json:"schema,omitempty"`
}

type Components struct {
	Schemas map[string]*Schema `json:"schemas"`
}

type Schema struct {
	Ref        string             `json:"$ref,omitempty"`
	Type       string             `json:"type,omitempty"`
	Format     string             `json:"format,omitempty"`
	Minimum    *float64           `json:"minimum,omitempty"`
	Nullable   bool               `json:"nullable,omitempty"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Required   []string           `json:"required,omitempty"`
	Items      *Schema            `json:"items,omitempty"`
}

// New creates an empty document ready for modules to add paths and schemas.
func New(title, description, version string) *Document {
	return &Document{
		OpenAPI:    "3.0.3",
		Info:       Info{Title: title, Description: description, Version: version},
		Paths:      map[string]PathItem{},
		Components: Components{Schemas: map[string]*Schema{}},
	}
}

// AddPaths merges path declarations into the document. Declaring the same
// path twice merges methods rather than replacing the entry.
func (d *Document) AddPaths(paths map[string]PathItem) {
	for p, item := range paths {
		if existing, ok := d.Paths[p]; ok {
			for method, op := range item {
				existing[method] = op
			}
			continue
		}
		d.Paths[p] = item
	}
}

// AddSchemas merges named component schemas into the document.
func (d *Document) AddSchemas(schemas map[string]*Schema) {
	for name, s := range schemas {
		d.Components.Schemas[name] = s
	}
}

// Handler serves the document as JSON.
func (d *Document) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.Respond(w, http.StatusOK, d)
	}
}
