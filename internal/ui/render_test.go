package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	w := httptest.NewRecorder()

	JSON(w, r, http.StatusCreated, map[string]int{"count": 2})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("unexpected content type %q", ct)
	}
	var body map[string]int
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["count"] != 2 {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestError(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/meals/x", nil)
	w := httptest.NewRecorder()

	Error(w, r, http.StatusNotFound, "Meal not found")

	var body ErrorBody
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if w.Code != http.StatusNotFound || body.Error != "Meal not found" {
		t.Fatalf("unexpected response %d %+v", w.Code, body)
	}
}

func TestDecode(t *testing.T) {
	type payload struct {
		Sets int `json:"sets"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", `{"sets":3}`, false},
		{"empty", ``, true},
		{"unknown field", `{"sets":3,"extra":1}`, true},
		{"trailing", `{"sets":3}{"sets":4}`, true},
		{"malformed", `{"sets":`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var p payload
			err := Decode(r, &p)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Decode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && p.Sets != 3 {
				t.Fatalf("expected sets 3, got %d", p.Sets)
			}
		})
	}
}
