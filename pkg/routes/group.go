// Package routes declares HTTP endpoints as prefixed groups so domain
// handlers can describe their surface without owning a multiplexer.
package routes

import (
	"net/http"

	"github.com/JaimeStill/employee-portal/pkg/openapi"
)

// Route is a single method and pattern bound to a handler. OpenAPI, when
// set, documents the route.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// Group is a set of routes sharing a URL prefix. Children inherit the prefix.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
}

// Register adds every route in groups to mux.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, g := range groups {
		register(mux, "", g)
	}
}

func register(mux *http.ServeMux, parent string, g Group) {
	prefix := parent + g.Prefix
	for _, r := range g.Routes {
		mux.HandleFunc(r.Method+" "+prefix+r.Pattern, r.Handler)
	}
	for _, child := range g.Children {
		register(mux, prefix, child)
	}
}

// Document adds copies of the documented routes in groups to spec.
// Operations without tags inherit the tags of their group; the operations
// held by the routes are never modified.
func Document(spec *openapi.Spec, groups ...Group) {
	for _, g := range groups {
		document(spec, "", g)
	}
}

func document(spec *openapi.Spec, parent string, g Group) {
	prefix := parent + g.Prefix
	for _, r := range g.Routes {
		if r.OpenAPI == nil {
			continue
		}
		op := *r.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = g.Tags
		}
		spec.AddOperation(prefix+r.Pattern, r.Method, &op)
	}
	for _, child := range g.Children {
		document(spec, prefix, child)
	}
}
