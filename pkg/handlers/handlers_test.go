package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/employee-portal/pkg/handlers"
)

func TestRespondJSON(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		data     any
		wantBody string
	}{
		{"created", http.StatusCreated, map[string]any{"message": "inserted", "id": 3}, `{"id":3,"message":"inserted"}`},
		{"slice", http.StatusOK, []int{1, 2}, `[1,2]`},
		{"empty slice", http.StatusOK, []string{}, `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handlers.RespondJSON(w, tt.status, tt.data)

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", ct)
			}
			if got := strings.TrimSpace(w.Body.String()); got != tt.wantBody {
				t.Errorf("body = %s, want %s", got, tt.wantBody)
			}
		})
	}
}

func TestRespondError(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	w := httptest.NewRecorder()
	handlers.RespondError(w, logger, http.StatusBadRequest, errors.New("name is required"))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal error = %v", err)
	}
	if body["error"] != "name is required" {
		t.Errorf("error = %q, want %q", body["error"], "name is required")
	}
	if !strings.Contains(logs.String(), "status=400") {
		t.Errorf("log missing status: %s", logs.String())
	}
}

func TestDecodeJSON(t *testing.T) {
	type command struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ada"}`))
	got, err := handlers.DecodeJSON[command](req)
	if err != nil {
		t.Fatalf("DecodeJSON() error = %v", err)
	}
	if got.Name != "Ada" {
		t.Errorf("Name = %q, want Ada", got.Name)
	}

	for _, body := range []string{"", "{", `{"name":1}`} {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		if _, err := handlers.DecodeJSON[command](req); !errors.Is(err, handlers.ErrInvalidBody) {
			t.Errorf("DecodeJSON(%q) error = %v, want ErrInvalidBody", body, err)
		}
	}
}

func TestDecodeJSON_BodyLimit(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"`+strings.Repeat("a", 64)+`"}`))
	req.Body = http.MaxBytesReader(w, io.NopCloser(req.Body), 16)

	if _, err := handlers.DecodeJSON[map[string]string](req); !errors.Is(err, handlers.ErrInvalidBody) {
		t.Errorf("DecodeJSON() error = %v, want ErrInvalidBody", err)
	}
}
