package routing

import (
	"errors"
	"fmt"
	"net/url"
	"sync/atomic"
)

// Navigator tracks the current route of a Table and records navigation in a History.
// Failed navigation leaves both the current route and the history untouched.
type Navigator struct {
	table   *Table
	history History
	current atomic.Pointer[Route]
}

// NewNavigator creates a navigator over table. If the history already has an
// active entry that resolves, it becomes the current route.
func NewNavigator(table *Table, history History) *Navigator {
	n := &Navigator{
		table:   table,
		history: history,
	}

	if href := history.Location(); href != "" {
		if route, err := table.Resolve(pathOf(href)); err == nil {
			n.current.Store(&route)
		}
	}

	return n
}

// Current returns the active route. The second result is false before the first navigation.
func (n *Navigator) Current() (Route, bool) {
	r := n.current.Load()
	if r == nil {
		return Route{}, false
	}
	return *r, true
}

// Push resolves loc, appends a history entry, and makes it the current route.
func (n *Navigator) Push(loc Location) (Route, error) {
	route, err := n.table.ResolveLocation(loc)
	if err != nil {
		return Route{}, err
	}
	if err := n.history.Push(loc.href(route)); err != nil {
		return Route{}, fmt.Errorf("push %s: %w", loc, err)
	}
	n.current.Store(&route)
	return route, nil
}

// Replace resolves loc and overwrites the active history entry with it.
func (n *Navigator) Replace(loc Location) (Route, error) {
	route, err := n.table.ResolveLocation(loc)
	if err != nil {
		return Route{}, err
	}
	if err := n.history.Replace(loc.href(route)); err != nil {
		return Route{}, fmt.Errorf("replace %s: %w", loc, err)
	}
	n.current.Store(&route)
	return route, nil
}

// Back moves to the previous history entry.
func (n *Navigator) Back() (Route, error) {
	return n.Go(-1)
}

// Forward moves to the next history entry.
func (n *Navigator) Forward() (Route, error) {
	return n.Go(1)
}

// Go moves delta entries through the history and resolves the entry reached.
// An entry that no longer resolves moves the history back to where it was.
func (n *Navigator) Go(delta int) (Route, error) {
	href, err := n.history.Go(delta)
	if err != nil {
		return Route{}, err
	}

	route, err := n.table.Resolve(pathOf(href))
	if err != nil {
		if _, backErr := n.history.Go(-delta); backErr != nil {
			return Route{}, errors.Join(err, backErr)
		}
		return Route{}, err
	}
	n.current.Store(&route)
	return route, nil
}

func pathOf(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	return u.Path
}
