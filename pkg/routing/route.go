// Package routing binds URL paths to named views and navigates between them.
// A Table is built once at startup and is read-only afterwards. A Navigator
// tracks the current route and records navigation in a History.
package routing

import (
	"errors"
	"net/http"
	"net/url"
)

var (
	// ErrNotFound indicates no route matches the requested path or name.
	ErrNotFound = errors.New("route not found")

	// ErrDuplicatePath indicates two routes share the same path.
	ErrDuplicatePath = errors.New("duplicate route path")

	// ErrDuplicateName indicates two routes share the same name.
	ErrDuplicateName = errors.New("duplicate route name")

	// ErrInvalidRoute indicates a route is missing its name, path, or view.
	ErrInvalidRoute = errors.New("invalid route")
)

// Route maps a URL path and a symbolic name to the view that renders it.
type Route struct {
	Path string
	Name string
	View http.Handler
}

// Location is a navigation target addressed by path or by name.
// When both are set, Name takes precedence.
type Location struct {
	Path  string
	Name  string
	Query url.Values
}

// Path returns a Location addressing a route by its URL path.
func Path(p string) Location {
	return Location{Path: p}
}

// Named returns a Location addressing a route by its name.
func Named(name string) Location {
	return Location{Name: name}
}

// WithQuery returns a copy of the location carrying the given query values.
func (l Location) WithQuery(q url.Values) Location {
	l.Query = q
	return l
}

// String renders the location for logging.
func (l Location) String() string {
	if l.Name != "" {
		return "name:" + l.Name
	}
	return "path:" + l.Path
}

// href builds the URL for a resolved route, carrying the location's query.
func (l Location) href(r Route) string {
	if len(l.Query) == 0 {
		return r.Path
	}
	return r.Path + "?" + l.Query.Encode()
}
