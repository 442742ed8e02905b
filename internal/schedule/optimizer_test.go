package schedule

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/courtplan/internal/common"
	"github.com/DhavalSuthar-24/courtplan/internal/match"
	"github.com/DhavalSuthar-24/courtplan/internal/referee"
	"github.com/DhavalSuthar-24/courtplan/internal/timeslot"
	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestParseObjective(t *testing.T) {
	tests := []struct {
		in      string
		want    Objective
		wantErr bool
	}{
		{"", ObjectiveMinimalConflicts, false},
		{"minimal_conflicts", ObjectiveMinimalConflicts, false},
		{"referee_availability", ObjectiveRefereeAvailability, false},
		{"court_usage", ObjectiveCourtUsage, false},
		{"fastest", "", true},
	}
	for _, tt := range tests {
		got, err := ParseObjective(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseObjective(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseObjective(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPendingOptimizer(t *testing.T) {
	ctrl := gomock.NewController(t)
	matches := match.NewMockMatchRepository(ctrl)
	opt := NewPendingOptimizer(matches, nil, nil)
	ctx := context.Background()

	matches.EXPECT().GetTournamentMatches(ctx, uint(4), true).Return(make([]match.Match, 3), nil)

	res, err := opt.Optimize(ctx, 4, ObjectiveCourtUsage)
	if err != nil {
		t.Fatalf("Optimize() error = %v", err)
	}
	if res.Status != StatusPendingImplementation {
		t.Errorf("status = %q, want pending_implementation", res.Status)
	}
	if res.UnscheduledMatches != 3 || len(res.Suggestions) != 0 {
		t.Errorf("result = %+v", res)
	}

	if _, err := opt.Optimize(ctx, 4, "fastest"); !errors.Is(err, common.ErrInvalidArgument) {
		t.Errorf("unknown objective error = %v, want ErrInvalidArgument", err)
	}
}

func TestOptimizeScheduleEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	matches := match.NewMockMatchRepository(ctrl)
	r := gin.New()
	RegisterScheduleRoutes(r.Group("/api"), NewOptimizerController(NewPendingOptimizer(matches, nil, nil)))

	matches.EXPECT().GetTournamentMatches(gomock.Any(), uint(2), true).Return(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/tournaments/2/optimize-schedule", strings.NewReader(`{"optimize_for":"referee_availability"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"pending_implementation"`) {
		t.Errorf("status = %d, body %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/api/tournaments/2/optimize-schedule", strings.NewReader(`{"optimize_for":"fastest"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown objective status = %d, want 400", w.Code)
	}
}

type stubChecker struct{ calls int }

func (s *stubChecker) CheckConflicts(context.Context, uint, uint, time.Time, time.Time, *uint) ([]timeslot.TimeSlot, error) {
	s.calls++
	return nil, nil
}

type stubResolver struct{ calls int }

func (s *stubResolver) AvailableReferees(context.Context, uint, time.Time, time.Time) ([]referee.Referee, error) {
	s.calls++
	return nil, nil
}

func TestPendingOptimizerKeepsFeasibilitySources(t *testing.T) {
	ctrl := gomock.NewController(t)
	matches := match.NewMockMatchRepository(ctrl)
	checker, resolver := &stubChecker{}, &stubResolver{}

	opt := NewPendingOptimizer(matches, checker, resolver)
	if opt.checker != checker || opt.resolver != resolver {
		t.Fatal("optimizer dropped its conflict checker or availability resolver")
	}

	matches.EXPECT().GetTournamentMatches(gomock.Any(), uint(2), true).Return(nil, nil)
	if _, err := opt.Optimize(context.Background(), 2, ObjectiveMinimalConflicts); err != nil {
		t.Fatalf("Optimize() error = %v", err)
	}
	if checker.calls != 0 || resolver.calls != 0 {
		t.Errorf("pending optimizer consulted feasibility sources: %d/%d calls", checker.calls, resolver.calls)
	}
}
