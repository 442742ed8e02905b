package validator

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
)

type slotRequest struct {
	CourtID   uint   `json:"court_id" binding:"required,gt=0"`
	StartTime string `json:"start_time" binding:"required"`
	Notes     string `json:"notes,omitempty" binding:"max=5"`
	Internal  string `json:"-" binding:"max=1"`
	Untagged  int    `binding:"gte=0"`
}

func bind(t *testing.T, body string) error {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	var r slotRequest
	return binding.JSON.Bind(req, &r)
}

func TestParseErrorUsesJSONNames(t *testing.T) {
	fields := ParseError(bind(t, `{"notes":"too long","Untagged":-1}`))

	want := map[string]string{
		"court_id":   "is required",
		"start_time": "is required",
		"notes":      "must be at most 5",
		"Untagged":   "must be greater than or equal to 0",
	}
	for key, msg := range want {
		if fields[key] != msg {
			t.Errorf("fields[%q] = %q, want %q", key, fields[key], msg)
		}
	}
	for _, goName := range []string{"CourtID", "StartTime", "Notes"} {
		if _, ok := fields[goName]; ok {
			t.Errorf("fields keyed by Go name %q: %v", goName, fields)
		}
	}
}

func TestParseErrorNonValidation(t *testing.T) {
	fields := ParseError(bind(t, `{"court_id":`))
	if fields["error"] == "" || len(fields) != 1 {
		t.Errorf("fields = %v, want a single error entry", fields)
	}

	if got := ParseError(errors.New("boom")); got["error"] != "boom" {
		t.Errorf("fields = %v", got)
	}
	if got := ParseError(nil); len(got) != 0 {
		t.Errorf("ParseError(nil) = %v, want empty", got)
	}
}
