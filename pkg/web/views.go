// Package web serves server-rendered pages from pre-parsed Go templates.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// ViewDef describes a page: the route it is served at, its template file,
// its title, and the stylesheet bundle it loads.
type ViewDef struct {
	Route    string
	Template string
	Title    string
	Bundle   string
}

// ViewData is passed to every template. BasePath lets templates build links
// that survive mounting under a prefix. Active names the route being served,
// or is empty for pages outside the route table.
type ViewData struct {
	Title    string
	Bundle   string
	BasePath string
	Active   string
	Data     any
}

// Href joins BasePath and an absolute path p. The prefix root is the bare
// prefix, so Href("/") under "/portal" is "/portal".
func (d ViewData) Href(p string) string {
	if d.BasePath == "" {
		return p
	}
	if p == "/" {
		return d.BasePath
	}
	return d.BasePath + p
}

// TemplateSet holds one parsed template tree per view, each a clone of the
// shared layouts.
type TemplateSet struct {
	views    map[string]*template.Template
	basePath string
}

// NewTemplateSet parses the layouts once and clones them for every view.
// Any parse failure is returned so the server refuses to start.
func NewTemplateSet(layoutFS, viewFS embed.FS, layoutGlob, viewSubdir, basePath string, views []ViewDef) (*TemplateSet, error) {
	layouts, err := template.ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, err
	}

	viewSub, err := fs.Sub(viewFS, viewSubdir)
	if err != nil {
		return nil, err
	}

	parsed := make(map[string]*template.Template, len(views))
	for _, v := range views {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Template, err)
		}
		if _, err := t.ParseFS(viewSub, v.Template); err != nil {
			return nil, fmt.Errorf("parse template %s: %w", v.Template, err)
		}
		parsed[v.Template] = t
	}

	return &TemplateSet{
		views:    parsed,
		basePath: basePath,
	}, nil
}

// BasePath returns the prefix the set was built for.
func (ts *TemplateSet) BasePath() string {
	return ts.basePath
}

// Data builds the ViewData for view with the set's base path.
func (ts *TemplateSet) Data(view ViewDef, data any) ViewData {
	return ViewData{
		Title:    view.Title,
		Bundle:   view.Bundle,
		BasePath: ts.basePath,
		Data:     data,
	}
}

// Execute writes status and runs layout for view with fully built data.
func (ts *TemplateSet) Execute(w http.ResponseWriter, layout string, view ViewDef, status int, data ViewData) error {
	t, ok := ts.views[view.Template]
	if !ok {
		return fmt.Errorf("template not found: %s", view.Template)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	return t.ExecuteTemplate(w, layout, data)
}

// RenderStatus renders view with the given status code and page data.
func (ts *TemplateSet) RenderStatus(w http.ResponseWriter, layout string, view ViewDef, status int, data any) error {
	return ts.Execute(w, layout, view, status, ts.Data(view, data))
}

// ErrorHandler renders view with status.
func (ts *TemplateSet) ErrorHandler(layout string, view ViewDef, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ts.RenderStatus(w, layout, view, status, nil); err != nil {
			http.Error(w, http.StatusText(status), status)
		}
	}
}
