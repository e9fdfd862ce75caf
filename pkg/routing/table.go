package routing

import (
	"fmt"
	"strings"
)

// Table is an immutable set of routes indexed by path and by name.
type Table struct {
	routes []Route
	byPath map[string]int
	byName map[string]int
}

// NewTable validates the routes and builds a Table.
// Paths and names must be unique, paths must start with "/",
// and every route must carry a view.
func NewTable(routes ...Route) (*Table, error) {
	t := &Table{
		routes: make([]Route, 0, len(routes)),
		byPath: make(map[string]int, len(routes)),
		byName: make(map[string]int, len(routes)),
	}

	for _, r := range routes {
		if err := validate(r); err != nil {
			return nil, err
		}
		if _, ok := t.byPath[r.Path]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePath, r.Path)
		}
		if _, ok := t.byName[r.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, r.Name)
		}

		t.byPath[r.Path] = len(t.routes)
		t.byName[r.Name] = len(t.routes)
		t.routes = append(t.routes, r)
	}

	return t, nil
}

// Resolve returns the route registered for path.
func (t *Table) Resolve(path string) (Route, error) {
	i, ok := t.byPath[path]
	if !ok {
		return Route{}, fmt.Errorf("%w: path %s", ErrNotFound, path)
	}
	return t.routes[i], nil
}

// ResolveName returns the route registered under name.
func (t *Table) ResolveName(name string) (Route, error) {
	i, ok := t.byName[name]
	if !ok {
		return Route{}, fmt.Errorf("%w: name %s", ErrNotFound, name)
	}
	return t.routes[i], nil
}

// ResolveLocation resolves a location by name when set, otherwise by path.
func (t *Table) ResolveLocation(loc Location) (Route, error) {
	if loc.Name != "" {
		return t.ResolveName(loc.Name)
	}
	return t.Resolve(loc.Path)
}

// Routes returns the routes in registration order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Len returns the number of registered routes.
func (t *Table) Len() int {
	return len(t.routes)
}

func validate(r Route) error {
	if r.Name == "" {
		return fmt.Errorf("%w: route %q has no name", ErrInvalidRoute, r.Path)
	}
	if !strings.HasPrefix(r.Path, "/") {
		return fmt.Errorf("%w: path %q for %s must start with /", ErrInvalidRoute, r.Path, r.Name)
	}
	if r.View == nil {
		return fmt.Errorf("%w: route %s has no view", ErrInvalidRoute, r.Name)
	}
	return nil
}
