package module

import (
	"net/http"
	"strings"
)

// Router dispatches to mounted modules by first path segment, then to native
// handlers, then to the root module if one is mounted.
type Router struct {
	native  *http.ServeMux
	modules map[string]*Module
	root    *Module
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{
		native:  http.NewServeMux(),
		modules: make(map[string]*Module),
	}
}

// HandleNative registers a handler outside any module, e.g. health probes.
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.native.HandleFunc(pattern, handler)
}

// Mount registers m under its prefix. Mounting a second module at the same
// prefix replaces the first.
func (r *Router) Mount(m *Module) {
	if m.Root() {
		r.root = m
		return
	}
	r.modules[m.prefix] = m
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if m, ok := r.modules[firstSegment(req.URL.Path)]; ok {
		m.serve(w, req)
		return
	}

	if _, pattern := r.native.Handler(req); pattern != "" {
		r.native.ServeHTTP(w, req)
		return
	}

	if r.root != nil {
		r.root.serve(w, req)
		return
	}

	http.NotFound(w, req)
}

func firstSegment(path string) string {
	if path == "" || path == "/" {
		return ""
	}
	rest := path[1:]
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	return "/" + rest
}
