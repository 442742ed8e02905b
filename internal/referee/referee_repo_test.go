package referee

import (
	"context"
	"errors"
	"testing"

	"github.com/DhavalSuthar-24/courtplan/internal/common"
	"github.com/DhavalSuthar-24/courtplan/internal/match"
	"github.com/DhavalSuthar-24/courtplan/internal/models"
	"github.com/DhavalSuthar-24/courtplan/internal/testutil"
	"gorm.io/gorm"
)

func setupRepo(t *testing.T) (*gorm.DB, *GormRefereeRepository) {
	t.Helper()
	ctx := context.Background()

	db, cleanup := testutil.SetupPostgresContainer(ctx, t)
	t.Cleanup(cleanup)

	if err := db.AutoMigrate(&match.Match{}); err != nil {
		t.Fatalf("migrate matches: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate referees: %v", err)
	}
	return db, NewGormRefereeRepository(db)
}

func TestGormRefereeRepository_Assignments(t *testing.T) {
	db, repo := setupRepo(t)
	ctx := context.Background()

	ref := &Referee{Name: "Jordan Lee", Active: true}
	if err := repo.CreateReferee(ctx, ref); err != nil {
		t.Fatalf("CreateReferee() error = %v", err)
	}
	start := hm(10, 0)
	m := &match.Match{TournamentID: 1, StartTime: &start, DurationMinutes: 45, MarginMinutes: 15}
	if err := match.NewGormMatchRepository(db).CreateMatch(ctx, m); err != nil {
		t.Fatalf("CreateMatch() error = %v", err)
	}

	if err := repo.CreateAssignment(ctx, &RefereeAssignment{RefereeID: ref.ID, MatchID: m.ID, Role: RoleMain}); err != nil {
		t.Fatalf("CreateAssignment() error = %v", err)
	}
	err := repo.CreateAssignment(ctx, &RefereeAssignment{RefereeID: ref.ID, MatchID: m.ID, Role: RoleMain})
	if !errors.Is(err, common.ErrConflict) {
		t.Errorf("duplicate role error = %v, want ErrConflict", err)
	}
	if err := repo.CreateAssignment(ctx, &RefereeAssignment{RefereeID: ref.ID, MatchID: m.ID, Role: RoleVideoReferee}); err != nil {
		t.Errorf("second role error = %v", err)
	}

	err = repo.CreateAssignment(ctx, &RefereeAssignment{RefereeID: ref.ID, MatchID: m.ID + 100, Role: RoleMain})
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("unknown match error = %v, want ErrNotFound", err)
	}

	assigned, err := repo.ListAssignedMatches(ctx, []uint{ref.ID})
	if err != nil {
		t.Fatalf("ListAssignedMatches() error = %v", err)
	}
	if len(assigned) != 2 {
		t.Fatalf("assigned rows = %d, want 2", len(assigned))
	}
	if w := assigned[0].Window(); !w.End.Equal(hm(11, 0)) {
		t.Errorf("window end = %v, want 11:00", w.End)
	}

	rows, err := repo.UpdateAssignments(ctx, ref.ID, m.ID, boolPtr(true), nil)
	if err != nil {
		t.Fatalf("UpdateAssignments() error = %v", err)
	}
	for _, r := range rows {
		if !r.Confirmed {
			t.Errorf("row %d not confirmed", r.ID)
		}
	}
	if _, err := repo.UpdateAssignments(ctx, ref.ID, m.ID+100, boolPtr(true), nil); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("update missing pair error = %v, want ErrNotFound", err)
	}

	listed, err := repo.ListMatchReferees(ctx, m.ID)
	if err != nil {
		t.Fatalf("ListMatchReferees() error = %v", err)
	}
	if len(listed) != 2 || listed[0].Referee.Name != "Jordan Lee" {
		t.Errorf("match referees = %+v", listed)
	}

	removed, err := repo.RemoveAssignments(ctx, ref.ID, m.ID)
	if err != nil || !removed {
		t.Fatalf("RemoveAssignments() = %v, %v; want true", removed, err)
	}
	removed, err = repo.RemoveAssignments(ctx, ref.ID, m.ID)
	if err != nil || removed {
		t.Errorf("second RemoveAssignments() = %v, %v; want false", removed, err)
	}
}

func TestGormRefereeRepository_Availability(t *testing.T) {
	_, repo := setupRepo(t)
	ctx := context.Background()

	active := &Referee{Name: "B Active", Active: true}
	inactive := &Referee{Name: "A Inactive", Active: false}
	for _, r := range []*Referee{active, inactive} {
		if err := repo.CreateReferee(ctx, r); err != nil {
			t.Fatalf("CreateReferee() error = %v", err)
		}
		avail := &RefereeAvailability{
			RefereeID:        r.ID,
			TournamentID:     7,
			AvailableFrom:    hm(8, 0),
			AvailableTo:      hm(18, 0),
			MaxMatchesPerDay: 3,
			PreferredCourts:  models.IDSlice{4, 2, 4},
		}
		if err := repo.CreateAvailability(ctx, avail); err != nil {
			t.Fatalf("CreateAvailability() error = %v", err)
		}
	}

	dup := &RefereeAvailability{RefereeID: active.ID, TournamentID: 7, AvailableFrom: hm(8, 0), AvailableTo: hm(9, 0), MaxMatchesPerDay: 1}
	if err := repo.CreateAvailability(ctx, dup); !errors.Is(err, common.ErrConflict) {
		t.Errorf("duplicate availability error = %v, want ErrConflict", err)
	}

	bad := &RefereeAvailability{RefereeID: inactive.ID, TournamentID: 8, AvailableFrom: hm(9, 0), AvailableTo: hm(8, 0), MaxMatchesPerDay: 1}
	if err := repo.CreateAvailability(ctx, bad); !errors.Is(err, common.ErrInvalidArgument) {
		t.Errorf("inverted window error = %v, want ErrInvalidArgument", err)
	}

	candidates, err := repo.ListCandidates(ctx, 7)
	if err != nil {
		t.Fatalf("ListCandidates() error = %v", err)
	}
	if len(candidates) != 1 || candidates[0].Referee.ID != active.ID {
		t.Fatalf("candidates = %+v, want only the active referee", candidates)
	}
	if pc := candidates[0].Availability.PreferredCourts; len(pc) != 2 || pc[0] != 2 || pc[1] != 4 {
		t.Errorf("preferred courts = %v, want [2 4]", pc)
	}

	roster, err := repo.ListTournamentReferees(ctx, 7)
	if err != nil {
		t.Fatalf("ListTournamentReferees() error = %v", err)
	}
	if len(roster) != 1 || len(roster[0].Assignments) != 0 {
		t.Errorf("roster = %+v", roster)
	}

	refs, total, err := repo.ListReferees(ctx, nil, 10, 0)
	if err != nil {
		t.Fatalf("ListReferees() error = %v", err)
	}
	if total != 2 || refs[0].Name != "A Inactive" {
		t.Errorf("ListReferees() = %+v (total %d), want name order", refs, total)
	}

	if err := repo.DeleteReferee(ctx, active.ID); err != nil {
		t.Fatalf("DeleteReferee() error = %v", err)
	}
	if _, err := repo.GetAvailability(ctx, active.ID, 7); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("availability after delete error = %v, want ErrNotFound", err)
	}
	if err := repo.DeleteReferee(ctx, active.ID); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("second delete error = %v, want ErrNotFound", err)
	}
}
