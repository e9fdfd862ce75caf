package app

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/JaimeStill/employee-portal/internal/employees"
	"github.com/JaimeStill/employee-portal/pkg/routing"
	"github.com/JaimeStill/employee-portal/pkg/web"
)

var formRoles = []employees.Role{employees.RoleDeveloper, employees.RoleTester}

// addForm is the data behind add.html.
type addForm struct {
	Command employees.CreateCommand
	Roles   []employees.Role
	Error   string
}

type addView struct {
	ts     *web.TemplateSet
	sys    employees.System
	table  *routing.Table
	logger *slog.Logger
}

func (v *addView) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		v.render(w, r, http.StatusOK, addForm{
			Command: employees.CreateCommand{Role: employees.RoleDeveloper},
			Roles:   formRoles,
		})
	case http.MethodPost:
		v.submit(w, r)
	default:
		w.Header().Set("Allow", "GET, HEAD, POST")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (v *addView) submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		v.render(w, r, http.StatusBadRequest, addForm{Roles: formRoles, Error: "The form could not be read."})
		return
	}

	cmd := employees.CreateCommand{
		Name:       r.PostForm.Get("name"),
		Department: r.PostForm.Get("department"),
		Language:   r.PostForm.Get("language"),
		Role:       employees.Role(r.PostForm.Get("role")),
	}

	created, err := v.sys.Create(r.Context(), cmd)
	if errors.Is(err, employees.ErrInvalidCommand) {
		v.render(w, r, http.StatusUnprocessableEntity, addForm{
			Command: cmd,
			Roles:   formRoles,
			Error:   validationMessage(err),
		})
		return
	}
	if err != nil {
		v.logger.Error("create employee failed", "error", err)
		v.fail(w)
		return
	}

	nav := routing.NewNavigator(v.table, routing.NewResponseHistory(w, r, v.ts.BasePath()))
	if _, err := nav.Push(routing.Named(RouteView)); err != nil {
		v.logger.Error("navigate after create failed", "error", err, "id", created.ID)
		v.fail(w)
	}
}

func (v *addView) render(w http.ResponseWriter, r *http.Request, status int, form addForm) {
	if err := v.ts.Execute(w, layout, addDef, status, page(v.ts, r, addDef, form)); err != nil {
		v.logger.Error("render failed", "template", addDef.Template, "error", err)
	}
}

func (v *addView) fail(w http.ResponseWriter) {
	if err := v.ts.RenderStatus(w, layout, failureDef, http.StatusInternalServerError, nil); err != nil {
		v.logger.Error("render failed", "template", failureDef.Template, "error", err)
	}
}

type listView struct {
	ts     *web.TemplateSet
	sys    employees.System
	logger *slog.Logger
}

func (v *listView) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	list, err := v.sys.List(r.Context())
	if err != nil {
		v.logger.Error("list employees failed", "error", err)
		if err := v.ts.RenderStatus(w, layout, failureDef, http.StatusInternalServerError, nil); err != nil {
			v.logger.Error("render failed", "template", failureDef.Template, "error", err)
		}
		return
	}

	if err := v.ts.Execute(w, layout, listDef, http.StatusOK, page(v.ts, r, listDef, list)); err != nil {
		v.logger.Error("render failed", "template", listDef.Template, "error", err)
	}
}

// page builds the layout data for def and marks the route being served so
// the navigation can highlight it.
func page(ts *web.TemplateSet, r *http.Request, def web.ViewDef, data any) web.ViewData {
	d := ts.Data(def, data)
	if route, ok := routing.RouteFrom(r.Context()); ok {
		d.Active = route.Name
	}
	return d
}

// validationMessage drops the sentinel prefix so the form shows only the field problem.
func validationMessage(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i >= 0 {
		msg = msg[i+2:]
	}
	return msg
}
