package timeslot

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/courtplan/internal/common"
	"github.com/DhavalSuthar-24/courtplan/internal/match"
	"github.com/DhavalSuthar-24/courtplan/internal/testutil"
	"gorm.io/gorm"
)

func setupRepo(t *testing.T) (*gorm.DB, *GormTimeSlotRepository) {
	t.Helper()
	ctx := context.Background()

	db, cleanup := testutil.SetupPostgresContainer(ctx, t)
	t.Cleanup(cleanup)

	if err := db.AutoMigrate(&match.Match{}); err != nil {
		t.Fatalf("migrate matches: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate time slots: %v", err)
	}
	return db, NewGormTimeSlotRepository(db)
}

func createMatch(t *testing.T, db *gorm.DB) *match.Match {
	t.Helper()
	m := &match.Match{TournamentID: 1, DurationMinutes: 60}
	if err := match.NewGormMatchRepository(db).CreateMatch(context.Background(), m); err != nil {
		t.Fatalf("create match: %v", err)
	}
	return m
}

func TestGormTimeSlotRepository_ConcurrentAssign(t *testing.T) {
	db, repo := setupRepo(t)
	ctx := context.Background()

	slot := freeSlot(0)
	if err := repo.CreateTimeSlot(ctx, slot); err != nil {
		t.Fatalf("CreateTimeSlot() error = %v", err)
	}

	const workers = 8
	matches := make([]*match.Match, workers)
	for i := range matches {
		matches[i] = createMatch(t, db)
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(matchID uint) {
			defer wg.Done()
			ok, err := repo.AssignMatch(ctx, slot.ID, matchID)
			if err != nil {
				t.Errorf("AssignMatch() error = %v", err)
				return
			}
			if ok {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}(matches[i].ID)
	}
	wg.Wait()

	if winners != 1 {
		t.Fatalf("%d concurrent assignments succeeded, want 1", winners)
	}

	got, err := repo.GetTimeSlotByID(ctx, slot.ID)
	if err != nil {
		t.Fatalf("GetTimeSlotByID() error = %v", err)
	}
	if got.IsAvailable || got.MatchID == nil {
		t.Errorf("slot = %+v, want assigned and unavailable", got)
	}
}

func TestGormTimeSlotRepository_ExclusionBackstop(t *testing.T) {
	_, repo := setupRepo(t)
	ctx := context.Background()

	first := &TimeSlot{TournamentID: 1, CourtID: 1, StartTime: hm(10, 0), EndTime: hm(11, 0), IsAvailable: true}
	if err := repo.CreateTimeSlot(ctx, first); err != nil {
		t.Fatalf("CreateTimeSlot() error = %v", err)
	}

	overlap := &TimeSlot{TournamentID: 1, CourtID: 1, StartTime: hm(10, 30), EndTime: hm(11, 30), IsAvailable: true}
	if err := repo.CreateTimeSlot(ctx, overlap); !errors.Is(err, common.ErrConflict) {
		t.Errorf("overlapping insert error = %v, want ErrConflict", err)
	}

	touching := &TimeSlot{TournamentID: 1, CourtID: 1, StartTime: hm(11, 0), EndTime: hm(12, 0), IsAvailable: true}
	if err := repo.CreateTimeSlot(ctx, touching); err != nil {
		t.Errorf("touching insert error = %v", err)
	}

	otherCourt := &TimeSlot{TournamentID: 1, CourtID: 2, StartTime: hm(10, 30), EndTime: hm(11, 30), IsAvailable: true}
	if err := repo.CreateTimeSlot(ctx, otherCourt); err != nil {
		t.Errorf("other court insert error = %v", err)
	}

	inverted := &TimeSlot{TournamentID: 1, CourtID: 3, StartTime: hm(11, 0), EndTime: hm(10, 0), IsAvailable: true}
	if err := repo.CreateTimeSlot(ctx, inverted); !errors.Is(err, common.ErrInvalidArgument) {
		t.Errorf("inverted insert error = %v, want ErrInvalidArgument", err)
	}
}

func TestGormTimeSlotRepository_Lifecycle(t *testing.T) {
	db, repo := setupRepo(t)
	ctx := context.Background()
	svc := NewTimeSlotService(repo, nil, nil, 10)

	slot, err := svc.CreateTimeSlot(ctx, &TimeSlot{TournamentID: 1, CourtID: 1, StartTime: hm(9, 0), EndTime: hm(10, 0), IsAvailable: true})
	if err != nil {
		t.Fatalf("CreateTimeSlot() error = %v", err)
	}
	m := createMatch(t, db)

	if _, err := svc.AssignMatch(ctx, slot.ID, m.ID); err != nil {
		t.Fatalf("AssignMatch() error = %v", err)
	}
	if err := svc.DeleteTimeSlot(ctx, slot.ID); !errors.Is(err, common.ErrInvalidState) {
		t.Fatalf("DeleteTimeSlot() with match error = %v, want ErrInvalidState", err)
	}

	withMatches, err := svc.ListTimeSlotsWithMatches(ctx, 1, nil)
	if err != nil {
		t.Fatalf("ListTimeSlotsWithMatches() error = %v", err)
	}
	if len(withMatches) != 1 || withMatches[0].Match == nil || withMatches[0].Match.ID != m.ID {
		t.Errorf("with matches = %+v", withMatches)
	}

	if _, err := svc.ReleaseTimeSlot(ctx, slot.ID); err != nil {
		t.Fatalf("ReleaseTimeSlot() error = %v", err)
	}
	if _, err := svc.ReleaseTimeSlot(ctx, slot.ID); !errors.Is(err, common.ErrInvalidState) {
		t.Errorf("second ReleaseTimeSlot() error = %v, want ErrInvalidState", err)
	}
	if err := svc.DeleteTimeSlot(ctx, slot.ID); err != nil {
		t.Fatalf("DeleteTimeSlot() error = %v", err)
	}
	if _, err := svc.GetTimeSlot(ctx, slot.ID); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("GetTimeSlot() after delete error = %v, want ErrNotFound", err)
	}
}

func TestGormTimeSlotRepository_AssignUnknownMatch(t *testing.T) {
	_, repo := setupRepo(t)
	ctx := context.Background()

	slot := freeSlot(0)
	if err := repo.CreateTimeSlot(ctx, slot); err != nil {
		t.Fatalf("CreateTimeSlot() error = %v", err)
	}
	if _, err := repo.AssignMatch(ctx, slot.ID, 9999); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("AssignMatch() error = %v, want ErrNotFound", err)
	}
}

func TestGormTimeSlotRepository_DeleteMatchReleasesSlot(t *testing.T) {
	db, repo := setupRepo(t)
	ctx := context.Background()

	slot := freeSlot(0)
	if err := repo.CreateTimeSlot(ctx, slot); err != nil {
		t.Fatalf("CreateTimeSlot() error = %v", err)
	}
	m := createMatch(t, db)
	if ok, err := repo.AssignMatch(ctx, slot.ID, m.ID); err != nil || !ok {
		t.Fatalf("AssignMatch() = %v, %v", ok, err)
	}

	if err := match.NewGormMatchRepository(db).DeleteMatch(ctx, m.ID); err != nil {
		t.Fatalf("DeleteMatch() error = %v", err)
	}

	got, err := repo.GetTimeSlotByID(ctx, slot.ID)
	if err != nil {
		t.Fatalf("GetTimeSlotByID() error = %v", err)
	}
	if !got.Free() {
		t.Errorf("slot = %+v, want released", got)
	}
}

func TestGormTimeSlotRepository_Queries(t *testing.T) {
	_, repo := setupRepo(t)
	ctx := context.Background()

	for _, s := range []*TimeSlot{
		{TournamentID: 1, CourtID: 2, StartTime: hm(9, 0), EndTime: hm(10, 0), IsAvailable: true},
		{TournamentID: 1, CourtID: 1, StartTime: hm(9, 0), EndTime: hm(10, 0), IsAvailable: false},
		{TournamentID: 1, CourtID: 1, StartTime: hm(10, 0), EndTime: hm(11, 0), IsAvailable: true},
		{TournamentID: 1, CourtID: 1, StartTime: hm(9, 0).AddDate(0, 0, 1), EndTime: hm(10, 0).AddDate(0, 0, 1), IsAvailable: true},
		{TournamentID: 2, CourtID: 1, StartTime: hm(8, 0), EndTime: hm(9, 0), IsAvailable: true},
	} {
		if err := repo.CreateTimeSlot(ctx, s); err != nil {
			t.Fatalf("CreateTimeSlot() error = %v", err)
		}
	}

	d := hm(15, 0)
	slots, err := repo.GetTournamentTimeSlots(ctx, 1, ListFilter{Day: &d})
	if err != nil {
		t.Fatalf("GetTournamentTimeSlots() error = %v", err)
	}
	if len(slots) != 3 {
		t.Fatalf("day filter returned %d slots, want 3", len(slots))
	}
	if slots[0].CourtID != 1 || slots[1].CourtID != 2 || !slots[2].StartTime.Equal(hm(10, 0)) {
		t.Errorf("ordering wrong: %+v", slots)
	}

	court := uint(1)
	slots, err = repo.GetTournamentTimeSlots(ctx, 1, ListFilter{CourtID: &court, OnlyAvailable: true})
	if err != nil {
		t.Fatalf("GetTournamentTimeSlots() error = %v", err)
	}
	if len(slots) != 2 {
		t.Errorf("court+available filter returned %d slots, want 2", len(slots))
	}

	after := hm(9, 0)
	next, err := repo.GetNextAvailableTimeSlot(ctx, 1, &court, &after)
	if err != nil {
		t.Fatalf("GetNextAvailableTimeSlot() error = %v", err)
	}
	if !next.StartTime.Equal(hm(10, 0)) {
		t.Errorf("next available starts %v, want 10:00", next.StartTime)
	}

	late := hm(12, 0).AddDate(0, 0, 5)
	if _, err := repo.GetNextAvailableTimeSlot(ctx, 1, nil, &late); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("GetNextAvailableTimeSlot() error = %v, want ErrNotFound", err)
	}
}

func TestGormTimeSlotRepository_LockCourtInTransaction(t *testing.T) {
	_, repo := setupRepo(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := repo.WithTransaction(ctx, func(tx TimeSlotRepository) error {
		return tx.LockCourt(ctx, 1, 1)
	})
	if err != nil {
		t.Errorf("LockCourt() in transaction error = %v", err)
	}
}
