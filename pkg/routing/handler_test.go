package routing_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/JaimeStill/employee-portal/pkg/routing"
)

func TestHandler_DispatchesToView(t *testing.T) {
	handler := newTable(t).Handler(nil)

	tests := []struct {
		path string
		want string
	}{
		{"/", "add"},
		{"/view", "view"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			resp := w.Result()
			defer resp.Body.Close()

			body, _ := io.ReadAll(resp.Body)
			if string(body) != tt.want {
				t.Errorf("body = %q, want %q", string(body), tt.want)
			}
		})
	}
}

func TestHandler_StoresRouteInContext(t *testing.T) {
	var got routing.Route
	var ok bool

	view := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = routing.RouteFrom(r.Context())
	})

	table, err := routing.NewTable(routing.Route{Path: "/view", Name: "View", View: view})
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/view", nil)
	table.Handler(nil).ServeHTTP(httptest.NewRecorder(), req)

	if !ok {
		t.Fatal("RouteFrom() ok = false")
	}
	if got.Name != "View" {
		t.Errorf("RouteFrom() name = %q, want View", got.Name)
	}
}

func TestHandler_Fallback(t *testing.T) {
	fallbackCalled := false
	fallback := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fallbackCalled = true
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("custom 404"))
	})

	handler := newTable(t).Handler(fallback)

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if !fallbackCalled {
		t.Error("fallback handler was not called")
	}

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}

func TestHandler_NilFallback(t *testing.T) {
	handler := newTable(t).Handler(nil)

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestResponseHistory_PushRedirects(t *testing.T) {
	tests := []struct {
		name     string
		basePath string
		want     string
	}{
		{"root module", "", "/view"},
		{"slash base", "/", "/view"},
		{"prefixed module", "/app", "/app/view"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			w := httptest.NewRecorder()

			history := routing.NewResponseHistory(w, req, tt.basePath)
			nav := routing.NewNavigator(newTable(t), history)

			current, ok := nav.Current()
			if !ok || current.Name != "Add" {
				t.Errorf("Current() = %+v, %v; want Add from request path", current, ok)
			}

			if _, err := nav.Push(routing.Named("View")); err != nil {
				t.Fatalf("Push() error = %v", err)
			}

			resp := w.Result()
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusSeeOther {
				t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusSeeOther)
			}
			if loc := resp.Header.Get("Location"); loc != tt.want {
				t.Errorf("Location = %q, want %q", loc, tt.want)
			}
			if history.Location() != tt.want {
				t.Errorf("history.Location() = %q, want %q", history.Location(), tt.want)
			}
		})
	}
}

func TestResponseHistory_PrefixRoot(t *testing.T) {
	tests := []struct {
		name     string
		basePath string
		loc      routing.Location
		want     string
	}{
		{"root module", "", routing.Named("Add"), "/"},
		{"prefixed root", "/portal", routing.Named("Add"), "/portal"},
		{"prefixed root with query", "/portal", routing.Named("Add").WithQuery(url.Values{"saved": {"1"}}), "/portal?saved=1"},
		{"prefixed view", "/portal", routing.Named("View"), "/portal/view"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			w := httptest.NewRecorder()

			nav := routing.NewNavigator(newTable(t), routing.NewResponseHistory(w, req, tt.basePath))
			if _, err := nav.Push(tt.loc); err != nil {
				t.Fatalf("Push() error = %v", err)
			}

			if loc := w.Header().Get("Location"); loc != tt.want {
				t.Errorf("Location = %q, want %q", loc, tt.want)
			}
		})
	}
}

func TestResponseHistory_TraversalUnsupported(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/view", nil)
	nav := routing.NewNavigator(newTable(t), routing.NewResponseHistory(httptest.NewRecorder(), req, ""))

	if _, err := nav.Back(); !errors.Is(err, routing.ErrHistoryUnsupported) {
		t.Errorf("Back() error = %v, want ErrHistoryUnsupported", err)
	}
}

func TestMemoryHistory_ReplaceOnEmpty(t *testing.T) {
	h := routing.NewMemoryHistory()

	if h.Location() != "" {
		t.Errorf("Location() = %q, want empty", h.Location())
	}

	h.Replace("/view")

	if h.Len() != 1 {
		t.Errorf("Len() = %d, want 1", h.Len())
	}
	if h.Location() != "/view" {
		t.Errorf("Location() = %q, want /view", h.Location())
	}

	if _, err := h.Go(1); !errors.Is(err, routing.ErrHistoryBoundary) {
		t.Errorf("Go(1) error = %v, want ErrHistoryBoundary", err)
	}
}
