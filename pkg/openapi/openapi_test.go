package openapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/employee-portal/pkg/openapi"
)

func TestConfig_Finalize(t *testing.T) {
	t.Setenv("TEST_OPENAPI_TITLE", "Portal")

	cfg := &openapi.Config{}
	if err := cfg.Finalize(&openapi.ConfigEnv{Title: "TEST_OPENAPI_TITLE"}); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Title != "Portal" {
		t.Errorf("Title = %q, want Portal", cfg.Title)
	}
	if cfg.Description == "" {
		t.Error("Description default not applied")
	}
}

func TestSpec_AddOperation(t *testing.T) {
	spec := openapi.New(&openapi.Config{Title: "Test API"}, "1.0.0", "/api", openapi.NewComponents())

	list := &openapi.Operation{Summary: "List"}
	create := &openapi.Operation{Summary: "Create"}

	spec.AddOperation("/employees", http.MethodGet, list)
	spec.AddOperation("/employee", http.MethodPost, create)
	spec.AddOperation("/employee", http.MethodDelete, &openapi.Operation{Summary: "Delete"})

	if spec.Paths["/employees"].Get != list {
		t.Error("GET /employees not bound")
	}
	if spec.Paths["/employee"].Post != create {
		t.Error("POST /employee not bound")
	}
	if spec.Paths["/employee"].Get != nil {
		t.Error("unsupported method bound to GET")
	}
}

func TestMarshalJSON(t *testing.T) {
	components := openapi.NewComponents()
	components.AddSchemas(map[string]*openapi.Schema{
		"Employee": {Type: "object"},
	})

	spec := openapi.New(&openapi.Config{Title: "Test API"}, "1.0.0", "/api", components)
	spec.AddOperation("/employees", http.MethodGet, &openapi.Operation{
		Summary: "List employees",
		Responses: map[int]*openapi.Response{
			200: {Description: "Success"},
		},
	})

	data, err := openapi.MarshalJSON(spec)
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}

	var result struct {
		OpenAPI string `json:"openapi"`
		Info    struct {
			Title   string `json:"title"`
			Version string `json:"version"`
		} `json:"info"`
		Servers    []struct{ URL string } `json:"servers"`
		Components struct {
			Schemas   map[string]any `json:"schemas"`
			Responses map[string]any `json:"responses"`
		} `json:"components"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if result.OpenAPI != openapi.Version {
		t.Errorf("openapi = %q, want %q", result.OpenAPI, openapi.Version)
	}
	if result.Info.Title != "Test API" || result.Info.Version != "1.0.0" {
		t.Errorf("info = %+v", result.Info)
	}
	if len(result.Servers) != 1 || result.Servers[0].URL != "/api" {
		t.Errorf("servers = %+v", result.Servers)
	}
	for _, name := range []string{"Error", "Employee"} {
		if _, ok := result.Components.Schemas[name]; !ok {
			t.Errorf("schema %s missing", name)
		}
	}
	if _, ok := result.Components.Responses["BadRequest"]; !ok {
		t.Error("BadRequest response missing")
	}
}

func TestHandler(t *testing.T) {
	w := httptest.NewRecorder()
	openapi.Handler([]byte(`{"openapi":"3.1.0"}`)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if w.Body.String() != `{"openapi":"3.1.0"}` {
		t.Errorf("body = %q", w.Body.String())
	}
}
