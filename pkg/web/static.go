package web

import (
	"bytes"
	"embed"
	"io/fs"
	"net/http"
	"path"
	"time"
)

// FileRoute is a GET route serving a single embedded file.
type FileRoute struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// PublicFile serves name from dir within fsys, or 404 when it is absent.
func PublicFile(fsys embed.FS, dir, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			http.NotFound(w, r)
			return
		}
		http.ServeContent(w, r, name, time.Time{}, bytes.NewReader(data))
	}
}

// PublicFileRoutes builds one root-level route per file name.
func PublicFileRoutes(fsys embed.FS, dir string, names ...string) []FileRoute {
	routes := make([]FileRoute, 0, len(names))
	for _, name := range names {
		routes = append(routes, FileRoute{
			Method:  http.MethodGet,
			Pattern: "/" + name,
			Handler: PublicFile(fsys, dir, name),
		})
	}
	return routes
}
