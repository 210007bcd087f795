package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// performRequest runs a request against the router and returns the recorder
func performRequest(r http.Handler, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// newTestRouter wires routes with no database; only paths that reject the
// request before touching storage may be exercised against it.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	setupRoutes(r, &App{})
	return r
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not an error object: %s", rec.Body.String())
	}
	return body["error"]
}

func TestReportMissingParams(t *testing.T) {
	r := newTestRouter()
	paths := []string{
		"/report",
		"/report?id=u1",
		"/report?id=u1&year=2025",
		"/report?year=2025&month=5",
		"/report?id=u1&month=5",
	}
	for _, path := range paths {
		rec := performRequest(r, http.MethodGet, path, nil)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400 got %d", path, rec.Code)
		}
		if msg := decodeError(t, rec); msg != "Missing required parameters" {
			t.Fatalf("%s: unexpected error message %q", path, msg)
		}
	}
}

func TestReportNonNumericParams(t *testing.T) {
	r := newTestRouter()
	rec := performRequest(r, http.MethodGet, "/report?id=u1&year=abc&month=5", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestAddMissingFields(t *testing.T) {
	r := newTestRouter()
	bodies := []map[string]any{
		{},
		{"description": "lunch", "category": "food", "userid": "u1"}, // no sum
		{"description": "lunch", "category": "food", "sum": 12},      // no userid
		{"description": "lunch", "userid": "u1", "sum": 12},          // no category
		{"category": "food", "userid": "u1", "sum": 12},              // no description
	}
	for i, body := range bodies {
		raw, _ := json.Marshal(body)
		rec := performRequest(r, http.MethodPost, "/add", bytes.NewBuffer(raw))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("case %d: expected 400 got %d body=%s", i, rec.Code, rec.Body.String())
		}
		if msg := decodeError(t, rec); !strings.HasPrefix(msg, "Missing required fields") {
			t.Fatalf("case %d: unexpected error message %q", i, msg)
		}
	}
}

func TestAddInvalidCategory(t *testing.T) {
	r := newTestRouter()
	raw, _ := json.Marshal(map[string]any{
		"description": "flight", "category": "travel", "userid": "u1", "sum": 300,
	})
	rec := performRequest(r, http.MethodPost, "/add", bytes.NewBuffer(raw))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	msg := decodeError(t, rec)
	if !strings.Contains(msg, "Invalid category") || !strings.Contains(msg, "food, health, housing, sport, education") {
		t.Fatalf("error should list allowed categories, got %q", msg)
	}
}

func TestAddMalformedJSON(t *testing.T) {
	r := newTestRouter()
	rec := performRequest(r, http.MethodPost, "/add", strings.NewReader("{not json"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestAbout(t *testing.T) {
	r := newTestRouter()
	rec := performRequest(r, http.MethodGet, "/about", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var team []map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &team); err != nil {
		t.Fatalf("about response is not an array: %s", rec.Body.String())
	}
	if len(team) == 0 {
		t.Fatal("about returned an empty team")
	}
	for _, member := range team {
		if member["first_name"] == "" || member["last_name"] == "" {
			t.Fatalf("team member missing name fields: %+v", member)
		}
	}
}
