// Package app serves the employee portal pages: an Add form at "/" and the
// employee table at "/view", dispatched through a route table.
package app

import (
	"embed"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/employee-portal/internal/employees"
	"github.com/JaimeStill/employee-portal/pkg/module"
	"github.com/JaimeStill/employee-portal/pkg/routing"
	"github.com/JaimeStill/employee-portal/pkg/web"
)

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

//go:embed public/*
var publicFS embed.FS

const layout = "app.html"

// Route names usable with routing.Named.
const (
	RouteAdd  = "Add"
	RouteView = "View"
)

var (
	addDef  = web.ViewDef{Route: "/", Template: "add.html", Title: "Add Employee", Bundle: "app"}
	listDef = web.ViewDef{Route: "/view", Template: "view.html", Title: "Employees", Bundle: "app"}

	notFoundDef = web.ViewDef{Template: "404.html", Title: "Not Found", Bundle: "app"}
	failureDef  = web.ViewDef{Template: "500.html", Title: "Error", Bundle: "app"}
)

var publicFiles = []string{"app.css"}

// NewModule builds the pages module mounted at basePath ("/" for the root).
func NewModule(basePath string, sys employees.System, logger *slog.Logger) (*module.Module, error) {
	handler, _, err := newHandler(basePath, sys, logger)
	if err != nil {
		return nil, err
	}
	return module.New(basePath, handler), nil
}

func newHandler(basePath string, sys employees.System, logger *slog.Logger) (http.Handler, *routing.Table, error) {
	linkBase := basePath
	if linkBase == "/" {
		linkBase = ""
	}

	ts, err := web.NewTemplateSet(
		layoutFS,
		viewFS,
		"server/layouts/*.html",
		"server/views",
		linkBase,
		[]web.ViewDef{addDef, listDef, notFoundDef, failureDef},
	)
	if err != nil {
		return nil, nil, err
	}

	logger = logger.With("module", "app")

	add := &addView{ts: ts, sys: sys, logger: logger}
	list := &listView{ts: ts, sys: sys, logger: logger}

	table, err := routing.NewTable(
		routing.Route{Path: addDef.Route, Name: RouteAdd, View: add},
		routing.Route{Path: listDef.Route, Name: RouteView, View: list},
	)
	if err != nil {
		return nil, nil, err
	}
	add.table = table

	r := web.NewRouter()
	for _, route := range web.PublicFileRoutes(publicFS, "public", publicFiles...) {
		r.HandleFunc(route.Method+" "+route.Pattern, route.Handler)
	}

	notFound := ts.ErrorHandler(layout, notFoundDef, http.StatusNotFound)
	r.SetFallback(table.Handler(notFound).ServeHTTP)

	return r, table, nil
}
