package referee

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/courtplan/internal/common"
	"github.com/DhavalSuthar-24/courtplan/internal/match"
	"go.uber.org/mock/gomock"
)

func boolPtr(v bool) *bool { return &v }

func strPtr(v string) *string { return &v }

func newTestService(t *testing.T) (*RefereeService, *MockRefereeRepository, *match.MockMatchRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := NewMockRefereeRepository(ctrl)
	matches := match.NewMockMatchRepository(ctrl)
	return NewRefereeService(repo, matches, nil), repo, matches
}

func referee(id uint) *Referee {
	r := &Referee{Name: "Alex Morgan", Active: true}
	r.ID = id
	return r
}

func scheduledMatch(id uint) *match.Match {
	start := hm(10, 0)
	m := &match.Match{TournamentID: 1, StartTime: &start, DurationMinutes: 60, MarginMinutes: 10}
	m.ID = id
	return m
}

func TestAssignRefereeToMatch(t *testing.T) {
	t.Run("duplicate role conflicts, other role succeeds", func(t *testing.T) {
		svc, repo, matches := newTestService(t)
		ctx := context.Background()

		repo.EXPECT().GetRefereeByID(ctx, uint(1)).Return(referee(1), nil).Times(3)
		matches.EXPECT().GetMatchByID(ctx, uint(4)).Return(scheduledMatch(4), nil).Times(3)

		taken := map[Role]bool{}
		repo.EXPECT().CreateAssignment(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, a *RefereeAssignment) error {
				if taken[a.Role] {
					return fmt.Errorf("referee assignment already exists: %w", common.ErrConflict)
				}
				taken[a.Role] = true
				a.ID = uint(len(taken))
				return nil
			}).Times(3)

		if _, err := svc.AssignRefereeToMatch(ctx, &RefereeAssignment{RefereeID: 1, MatchID: 4, Role: RoleMain}); err != nil {
			t.Fatalf("first assignment error = %v", err)
		}

		_, err := svc.AssignRefereeToMatch(ctx, &RefereeAssignment{RefereeID: 1, MatchID: 4, Role: RoleMain})
		if !errors.Is(err, common.ErrConflict) {
			t.Errorf("duplicate assignment error = %v, want ErrConflict", err)
		}

		got, err := svc.AssignRefereeToMatch(ctx, &RefereeAssignment{RefereeID: 1, MatchID: 4, Role: RoleAssistant})
		if err != nil {
			t.Fatalf("second role error = %v", err)
		}
		if got.Role != RoleAssistant {
			t.Errorf("role = %q, want assistant", got.Role)
		}
	})

	t.Run("empty role defaults to main", func(t *testing.T) {
		svc, repo, matches := newTestService(t)
		ctx := context.Background()

		repo.EXPECT().GetRefereeByID(ctx, uint(1)).Return(referee(1), nil)
		matches.EXPECT().GetMatchByID(ctx, uint(4)).Return(scheduledMatch(4), nil)
		repo.EXPECT().CreateAssignment(ctx, gomock.Any()).Return(nil)

		got, err := svc.AssignRefereeToMatch(ctx, &RefereeAssignment{RefereeID: 1, MatchID: 4})
		if err != nil {
			t.Fatalf("AssignRefereeToMatch() error = %v", err)
		}
		if got.Role != RoleMain {
			t.Errorf("role = %q, want main", got.Role)
		}
	})

	t.Run("invalid role", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.AssignRefereeToMatch(context.Background(), &RefereeAssignment{RefereeID: 1, MatchID: 4, Role: "umpire"})
		if !errors.Is(err, common.ErrInvalidArgument) {
			t.Errorf("error = %v, want ErrInvalidArgument", err)
		}
	})

	t.Run("unknown referee", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		ctx := context.Background()

		repo.EXPECT().GetRefereeByID(ctx, uint(9)).Return(nil, common.NotFoundf("referee"))

		_, err := svc.AssignRefereeToMatch(ctx, &RefereeAssignment{RefereeID: 9, MatchID: 4, Role: RoleMain})
		if !errors.Is(err, common.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("unknown match", func(t *testing.T) {
		svc, repo, matches := newTestService(t)
		ctx := context.Background()

		repo.EXPECT().GetRefereeByID(ctx, uint(1)).Return(referee(1), nil)
		matches.EXPECT().GetMatchByID(ctx, uint(40)).Return(nil, common.NotFoundf("match"))

		_, err := svc.AssignRefereeToMatch(ctx, &RefereeAssignment{RefereeID: 1, MatchID: 40, Role: RoleMain})
		if !errors.Is(err, common.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})
}

func TestDeclareAvailability(t *testing.T) {
	t.Run("defaults max matches", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		ctx := context.Background()

		repo.EXPECT().GetRefereeByID(ctx, uint(1)).Return(referee(1), nil)
		repo.EXPECT().CreateAvailability(ctx, gomock.Any()).Return(nil)

		avail, err := svc.DeclareAvailability(ctx, &RefereeAvailability{
			RefereeID: 1, TournamentID: 2, AvailableFrom: hm(8, 0), AvailableTo: hm(18, 0),
		})
		if err != nil {
			t.Fatalf("DeclareAvailability() error = %v", err)
		}
		if avail.MaxMatchesPerDay != DefaultMaxMatchesPerDay {
			t.Errorf("MaxMatchesPerDay = %d, want %d", avail.MaxMatchesPerDay, DefaultMaxMatchesPerDay)
		}
	})

	t.Run("empty window", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.DeclareAvailability(context.Background(), &RefereeAvailability{
			RefereeID: 1, TournamentID: 2, AvailableFrom: hm(18, 0), AvailableTo: hm(18, 0),
		})
		if !errors.Is(err, common.ErrInvalidArgument) {
			t.Errorf("error = %v, want ErrInvalidArgument", err)
		}
	})

	t.Run("negative max", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.DeclareAvailability(context.Background(), &RefereeAvailability{
			RefereeID: 1, TournamentID: 2, AvailableFrom: hm(8, 0), AvailableTo: hm(18, 0), MaxMatchesPerDay: -1,
		})
		if !errors.Is(err, common.ErrInvalidArgument) {
			t.Errorf("error = %v, want ErrInvalidArgument", err)
		}
	})

	t.Run("second declaration", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		ctx := context.Background()

		repo.EXPECT().GetRefereeByID(ctx, uint(1)).Return(referee(1), nil)
		repo.EXPECT().CreateAvailability(ctx, gomock.Any()).
			Return(fmt.Errorf("referee availability already exists: %w", common.ErrConflict))

		_, err := svc.DeclareAvailability(ctx, &RefereeAvailability{
			RefereeID: 1, TournamentID: 2, AvailableFrom: hm(8, 0), AvailableTo: hm(18, 0),
		})
		if !errors.Is(err, common.ErrConflict) {
			t.Errorf("error = %v, want ErrConflict", err)
		}
	})
}

func TestUpdateReferee_OnlySuppliedFields(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	current := referee(3)
	current.Email = strPtr("old@example.com")
	repo.EXPECT().GetRefereeByID(ctx, uint(3)).Return(current, nil)
	repo.EXPECT().UpdateReferee(ctx, gomock.Any()).Return(nil)

	got, err := svc.UpdateReferee(ctx, 3, RefereeUpdate{Active: boolPtr(false)})
	if err != nil {
		t.Fatalf("UpdateReferee() error = %v", err)
	}
	if got.Active {
		t.Error("Active = true, want false")
	}
	if got.Name != "Alex Morgan" || got.Email == nil || *got.Email != "old@example.com" {
		t.Errorf("untouched fields changed: %+v", got)
	}
}

func TestUpdateReferee_RejectsBlankName(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().GetRefereeByID(ctx, uint(3)).Return(referee(3), nil)

	_, err := svc.UpdateReferee(ctx, 3, RefereeUpdate{Name: strPtr("  ")})
	if !errors.Is(err, common.ErrInvalidArgument) {
		t.Errorf("error = %v, want ErrInvalidArgument", err)
	}
}

func TestListReferees_PageOffset(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().ListReferees(ctx, nil, 20, 40).Return([]Referee{}, int64(41), nil)

	_, total, err := svc.ListReferees(ctx, nil, 3, 20)
	if err != nil {
		t.Fatalf("ListReferees() error = %v", err)
	}
	if total != 41 {
		t.Errorf("total = %d, want 41", total)
	}
}

func TestRefereeConflicts(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	avail := &RefereeAvailability{
		RefereeID: 1, TournamentID: 1,
		AvailableFrom: hm(9, 0), AvailableTo: hm(18, 0),
		MaxMatchesPerDay: 2,
	}
	repo.EXPECT().GetRefereeByID(ctx, uint(1)).Return(referee(1), nil)
	repo.EXPECT().GetAvailability(ctx, uint(1), uint(1)).Return(avail, nil)
	repo.EXPECT().ListAssignedMatches(ctx, []uint{1}).Return([]AssignedMatch{
		{RefereeID: 1, MatchID: 10, TournamentID: 1, Role: RoleMain, StartTime: hm(9, 0), DurationMinutes: 60, MarginMinutes: 10},
		{RefereeID: 1, MatchID: 10, TournamentID: 1, Role: RoleVideoReferee, StartTime: hm(9, 0), DurationMinutes: 60, MarginMinutes: 10},
		{RefereeID: 1, MatchID: 11, TournamentID: 1, Role: RoleMain, StartTime: hm(10, 5), DurationMinutes: 60},
		{RefereeID: 1, MatchID: 12, TournamentID: 1, Role: RoleMain, StartTime: hm(17, 30), DurationMinutes: 60},
		{RefereeID: 1, MatchID: 99, TournamentID: 2, Role: RoleMain, StartTime: hm(9, 0), DurationMinutes: 60},
	}, nil)

	conflicts, err := svc.RefereeConflicts(ctx, 1, 1, nil)
	if err != nil {
		t.Fatalf("RefereeConflicts() error = %v", err)
	}

	kinds := map[ConflictType][]uint{}
	for _, c := range conflicts {
		kinds[c.ConflictType] = append(kinds[c.ConflictType], c.MatchIDs...)
	}
	if got := kinds[ConflictOverlap]; len(got) != 2 || got[0] != 10 || got[1] != 11 {
		t.Errorf("overlap match ids = %v, want [10 11]", got)
	}
	if got := kinds[ConflictTooManyMatches]; len(got) != 3 {
		t.Errorf("too_many_matches match ids = %v, want 3 matches", got)
	}
	if got := kinds[ConflictNotAvailable]; len(got) != 1 || got[0] != 12 {
		t.Errorf("not_available match ids = %v, want [12]", got)
	}
}

func TestRefereeConflicts_NoAvailability(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	filter := hm(0, 0)
	repo.EXPECT().GetRefereeByID(ctx, uint(1)).Return(referee(1), nil)
	repo.EXPECT().GetAvailability(ctx, uint(1), uint(1)).Return(nil, common.NotFoundf("referee availability"))
	repo.EXPECT().ListAssignedMatches(ctx, []uint{1}).Return([]AssignedMatch{
		{RefereeID: 1, MatchID: 10, TournamentID: 1, StartTime: hm(9, 0), DurationMinutes: 60},
		{RefereeID: 1, MatchID: 11, TournamentID: 1, StartTime: hm(9, 0).Add(24 * time.Hour), DurationMinutes: 60},
	}, nil)

	conflicts, err := svc.RefereeConflicts(ctx, 1, 1, &filter)
	if err != nil {
		t.Fatalf("RefereeConflicts() error = %v", err)
	}
	if len(conflicts) != 1 || conflicts[0].ConflictType != ConflictNotAvailable || conflicts[0].MatchIDs[0] != 10 {
		t.Errorf("conflicts = %+v, want one not_available for match 10", conflicts)
	}
}

func TestParseRole(t *testing.T) {
	for _, s := range []string{"main", "assistant", "line_judge", "video_referee"} {
		if r, err := ParseRole(s); err != nil || string(r) != s {
			t.Errorf("ParseRole(%q) = %q, %v", s, r, err)
		}
	}
	if _, err := ParseRole("Main"); !errors.Is(err, common.ErrInvalidArgument) {
		t.Errorf("ParseRole(Main) error = %v, want ErrInvalidArgument", err)
	}
}
