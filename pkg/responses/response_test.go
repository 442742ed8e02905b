package responses

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DhavalSuthar-24/courtplan/internal/common"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(err error) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	FromError(c, err)
	return w
}

func TestFromErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", common.NotFoundf("referee %d", 1), http.StatusNotFound},
		{"conflict", common.Conflictf("duplicate"), http.StatusConflict},
		{"invalid argument", common.InvalidArgumentf("bad role"), http.StatusBadRequest},
		{"invalid state", common.InvalidStatef("slot has assigned match"), http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(tt.err)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestFromErrorHidesServerErrors(t *testing.T) {
	w := serve(errors.New("pq: password authentication failed"))

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "fail" {
		t.Errorf("status field = %q, want fail", resp.Status)
	}
	if resp.Message != "An unexpected error occurred on the server" {
		t.Errorf("message leaked: %q", resp.Message)
	}
}

func TestFromErrorConflictDetails(t *testing.T) {
	err := fmt.Errorf("create slot: %w", &common.ConflictError{Resource: "time slot", IDs: []uint{11, 12}})
	w := serve(err)

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
	var body struct {
		Details ConflictDetails `json:"details"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Details.ConflictCount != 2 || len(body.Details.ConflictIDs) != 2 {
		t.Errorf("details = %+v, want two conflicts", body.Details)
	}
}

func TestSendPaginated(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	SendPaginated(c, http.StatusOK, "", []int{1, 2}, 25, 2, 10)

	var resp PaginatedResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	p := resp.Pagination
	if p.TotalPages != 3 || !p.HasNextPage || !p.HasPrevPage {
		t.Errorf("pagination = %+v", p)
	}
	if p.NextPage == nil || *p.NextPage != 3 {
		t.Errorf("next page = %v, want 3", p.NextPage)
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name        string
		message     string
		details     []any
		wantMessage string
		wantDetails bool
	}{
		{"with field details", "Validation failed", []any{map[string]string{"end_time": "is required"}}, "Validation failed", true},
		{"default message", "", nil, "Invalid request payload or parameters", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			BadRequest(c, tt.message, tt.details...)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			var resp struct {
				Message string            `json:"message"`
				Details map[string]string `json:"details"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", resp.Message, tt.wantMessage)
			}
			if got := resp.Details["end_time"] != ""; got != tt.wantDetails {
				t.Errorf("details = %v", resp.Details)
			}
		})
	}
}
