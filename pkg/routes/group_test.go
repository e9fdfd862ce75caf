package routes_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/JaimeStill/employee-portal/pkg/openapi"
	"github.com/JaimeStill/employee-portal/pkg/routes"
)

func respond(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()

	routes.Register(mux,
		routes.Group{
			Routes: []routes.Route{
				{Method: "POST", Pattern: "/employee", Handler: respond("create")},
				{Method: "GET", Pattern: "/employees", Handler: respond("list")},
			},
		},
		routes.Group{
			Prefix: "/admin",
			Children: []routes.Group{{
				Prefix: "/employees",
				Routes: []routes.Route{{Method: "GET", Pattern: "/count", Handler: respond("count")}},
			}},
		},
	)

	tests := []struct {
		method string
		path   string
		status int
		body   string
	}{
		{http.MethodPost, "/employee", http.StatusOK, "create"},
		{http.MethodGet, "/employees", http.StatusOK, "list"},
		{http.MethodGet, "/admin/employees/count", http.StatusOK, "count"},
		{http.MethodGet, "/employee", http.StatusMethodNotAllowed, ""},
		{http.MethodGet, "/missing", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
			if tt.body != "" && w.Body.String() != tt.body {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.body)
			}
		})
	}
}

func TestDocument(t *testing.T) {
	list := &openapi.Operation{Summary: "List"}
	count := &openapi.Operation{Summary: "Count", Tags: []string{"Admin"}}

	spec := openapi.New(&openapi.Config{}, "1.0.0", "", openapi.NewComponents())
	routes.Document(spec,
		routes.Group{
			Tags: []string{"Employees"},
			Routes: []routes.Route{
				{Method: "GET", Pattern: "/employees", Handler: respond("list"), OpenAPI: list},
				{Method: "POST", Pattern: "/employee", Handler: respond("create")},
			},
		},
		routes.Group{
			Prefix: "/admin",
			Tags:   []string{"Employees"},
			Children: []routes.Group{{
				Prefix: "/employees",
				Routes: []routes.Route{{Method: "GET", Pattern: "/count", Handler: respond("count"), OpenAPI: count}},
			}},
		},
	)

	get := spec.Paths["/employees"]
	if get == nil || get.Get == nil || get.Get.Summary != "List" {
		t.Fatal("GET /employees not documented")
	}
	if tags := get.Get.Tags; len(tags) != 1 || tags[0] != "Employees" {
		t.Errorf("documented list tags = %v, want inherited [Employees]", tags)
	}
	if list.Tags != nil {
		t.Errorf("route operation mutated: tags = %v", list.Tags)
	}
	if _, ok := spec.Paths["/employee"]; ok {
		t.Error("undocumented route added to spec")
	}
	nested := spec.Paths["/admin/employees/count"]
	if nested == nil || nested.Get == nil || nested.Get.Summary != "Count" {
		t.Fatal("nested route not documented")
	}
	if nested.Get.Tags[0] != "Admin" {
		t.Errorf("count tags = %v, want explicit [Admin]", nested.Get.Tags)
	}
}

func TestDocument_Concurrent(t *testing.T) {
	shared := &openapi.Operation{Summary: "List"}
	group := routes.Group{
		Tags:   []string{"Employees"},
		Routes: []routes.Route{{Method: "GET", Pattern: "/employees", Handler: respond("list"), OpenAPI: shared}},
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			spec := openapi.New(&openapi.Config{}, "1.0.0", "", openapi.NewComponents())
			routes.Document(spec, group)
		}()
	}
	wg.Wait()

	if shared.Tags != nil {
		t.Errorf("shared operation tags = %v, want untouched", shared.Tags)
	}
}
