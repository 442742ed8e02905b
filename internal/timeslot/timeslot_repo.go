package timeslot

import (
	"context"
	"time"

	"github.com/DhavalSuthar-24/courtplan/internal/common"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=timeslot_repo.go -destination=timeslot_repo_mock.go -package=timeslot

// TimeSlotRepository defines methods to interact with time slot records.
//
// AssignMatch, ReleaseTimeSlot and DeleteFreeTimeSlot are conditional writes: they
// report false when the slot is missing or in the wrong state, and the caller
// decides which.
type TimeSlotRepository interface {
	CreateTimeSlot(ctx context.Context, slot *TimeSlot) error
	GetTimeSlotByID(ctx context.Context, id uint) (*TimeSlot, error)
	LockTimeSlot(ctx context.Context, id uint) (*TimeSlot, error)
	LockCourt(ctx context.Context, tournamentID, courtID uint) error
	GetCourtTimeSlots(ctx context.Context, tournamentID, courtID uint) ([]TimeSlot, error)
	GetTournamentTimeSlots(ctx context.Context, tournamentID uint, filter ListFilter) ([]TimeSlot, error)
	GetTimeSlotsWithMatches(ctx context.Context, tournamentID uint, day *time.Time) ([]TimeSlot, error)
	GetNextAvailableTimeSlot(ctx context.Context, tournamentID uint, courtID *uint, after *time.Time) (*TimeSlot, error)
	UpdateTimeSlot(ctx context.Context, slot *TimeSlot) error
	AssignMatch(ctx context.Context, id, matchID uint) (bool, error)
	ReleaseTimeSlot(ctx context.Context, id uint) (bool, error)
	DeleteFreeTimeSlot(ctx context.Context, id uint) (bool, error)

	// Transaction support
	WithTransaction(ctx context.Context, txFunc func(TimeSlotRepository) error) error
}

// GormTimeSlotRepository implements TimeSlotRepository using GORM
type GormTimeSlotRepository struct {
	db *gorm.DB
}

// NewGormTimeSlotRepository creates a new GormTimeSlotRepository
func NewGormTimeSlotRepository(db *gorm.DB) *GormTimeSlotRepository {
	return &GormTimeSlotRepository{db: db}
}

// WithTransaction runs txFunc against a repository bound to one transaction.
func (r *GormTimeSlotRepository) WithTransaction(ctx context.Context, txFunc func(TimeSlotRepository) error) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	txRepo := &GormTimeSlotRepository{db: tx}
	if err := txFunc(txRepo); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

func (r *GormTimeSlotRepository) CreateTimeSlot(ctx context.Context, slot *TimeSlot) error {
	return common.TranslateDBError(r.db.WithContext(ctx).Create(slot).Error, "time slot")
}

func (r *GormTimeSlotRepository) GetTimeSlotByID(ctx context.Context, id uint) (*TimeSlot, error) {
	var slot TimeSlot
	if err := r.db.WithContext(ctx).First(&slot, id).Error; err != nil {
		return nil, common.TranslateDBError(err, "time slot")
	}
	return &slot, nil
}

// LockTimeSlot loads the slot with SELECT ... FOR UPDATE. Only meaningful inside WithTransaction.
func (r *GormTimeSlotRepository) LockTimeSlot(ctx context.Context, id uint) (*TimeSlot, error) {
	var slot TimeSlot
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&slot, id).Error
	if err != nil {
		return nil, common.TranslateDBError(err, "time slot")
	}
	return &slot, nil
}

// LockCourt takes a transaction-scoped advisory lock on (tournament, court) so that
// conflict checks and the writes that follow them are serialised per court. The ids
// are folded into int4 keys; a collision only serialises unrelated courts.
func (r *GormTimeSlotRepository) LockCourt(ctx context.Context, tournamentID, courtID uint) error {
	err := r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(?, ?)", int32(tournamentID), int32(courtID)).Error
	return common.TranslateDBError(err, "court lock")
}

func (r *GormTimeSlotRepository) GetCourtTimeSlots(ctx context.Context, tournamentID, courtID uint) ([]TimeSlot, error) {
	var slots []TimeSlot
	err := r.db.WithContext(ctx).
		Where("tournament_id = ? AND court_id = ?", tournamentID, courtID).
		Order("start_time asc").
		Find(&slots).Error
	if err != nil {
		return nil, common.TranslateDBError(err, "time slots")
	}
	return slots, nil
}

func dayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 0, 1)
}

func (r *GormTimeSlotRepository) tournamentQuery(ctx context.Context, tournamentID uint, day *time.Time) *gorm.DB {
	query := r.db.WithContext(ctx).Where("tournament_id = ?", tournamentID)
	if day != nil {
		from, to := dayBounds(*day)
		query = query.Where("start_time >= ? AND start_time < ?", from, to)
	}
	return query
}

// GetTournamentTimeSlots lists slots ordered by start time then court.
func (r *GormTimeSlotRepository) GetTournamentTimeSlots(ctx context.Context, tournamentID uint, filter ListFilter) ([]TimeSlot, error) {
	var slots []TimeSlot
	query := r.tournamentQuery(ctx, tournamentID, filter.Day)
	if filter.CourtID != nil {
		query = query.Where("court_id = ?", *filter.CourtID)
	}
	if filter.OnlyAvailable {
		query = query.Where("is_available = ?", true)
	}
	if err := query.Order("start_time asc, court_id asc").Find(&slots).Error; err != nil {
		return nil, common.TranslateDBError(err, "time slots")
	}
	return slots, nil
}

func (r *GormTimeSlotRepository) GetTimeSlotsWithMatches(ctx context.Context, tournamentID uint, day *time.Time) ([]TimeSlot, error) {
	var slots []TimeSlot
	err := r.tournamentQuery(ctx, tournamentID, day).
		Preload("Match").
		Order("start_time asc, court_id asc").
		Find(&slots).Error
	if err != nil {
		return nil, common.TranslateDBError(err, "time slots")
	}
	return slots, nil
}

// GetNextAvailableTimeSlot returns the earliest free slot starting strictly after after.
func (r *GormTimeSlotRepository) GetNextAvailableTimeSlot(ctx context.Context, tournamentID uint, courtID *uint, after *time.Time) (*TimeSlot, error) {
	query := r.db.WithContext(ctx).
		Where("tournament_id = ? AND is_available = ? AND match_id IS NULL", tournamentID, true)
	if courtID != nil {
		query = query.Where("court_id = ?", *courtID)
	}
	if after != nil {
		query = query.Where("start_time > ?", *after)
	}

	var slot TimeSlot
	if err := query.Order("start_time asc, court_id asc").First(&slot).Error; err != nil {
		return nil, common.TranslateDBError(err, "available time slot")
	}
	return &slot, nil
}

// UpdateTimeSlot writes the mutable columns of slot.
func (r *GormTimeSlotRepository) UpdateTimeSlot(ctx context.Context, slot *TimeSlot) error {
	err := r.db.WithContext(ctx).
		Model(slot).
		Select("start_time", "end_time", "is_available", "match_id").
		Updates(slot).Error
	return common.TranslateDBError(err, "time slot")
}

// AssignMatch sets match_id and clears is_available only if the slot is free.
func (r *GormTimeSlotRepository) AssignMatch(ctx context.Context, id, matchID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&TimeSlot{}).
		Where("id = ? AND match_id IS NULL AND is_available = ?", id, true).
		Updates(map[string]interface{}{"match_id": matchID, "is_available": false})
	if result.Error != nil {
		return false, common.TranslateDBError(result.Error, "match")
	}
	return result.RowsAffected == 1, nil
}

// ReleaseTimeSlot clears match_id and sets is_available only if a match is held.
func (r *GormTimeSlotRepository) ReleaseTimeSlot(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&TimeSlot{}).
		Where("id = ? AND match_id IS NOT NULL", id).
		Updates(map[string]interface{}{"match_id": nil, "is_available": true})
	if result.Error != nil {
		return false, common.TranslateDBError(result.Error, "time slot")
	}
	return result.RowsAffected == 1, nil
}

// DeleteFreeTimeSlot removes the slot only if no match is assigned.
func (r *GormTimeSlotRepository) DeleteFreeTimeSlot(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND match_id IS NULL", id).
		Delete(&TimeSlot{})
	if result.Error != nil {
		return false, common.TranslateDBError(result.Error, "time slot")
	}
	return result.RowsAffected == 1, nil
}

const overlapConstraintName = "excl_time_slots_court_overlap"

// Migrate creates the time_slots table and the exclusion constraint that rejects
// overlapping [start_time, end_time) ranges on the same tournament court.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&TimeSlot{}); err != nil {
		return err
	}
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS btree_gist").Error; err != nil {
		return err
	}
	return db.Exec(`DO $$
BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '` + overlapConstraintName + `') THEN
		ALTER TABLE time_slots ADD CONSTRAINT ` + overlapConstraintName + `
			EXCLUDE USING gist (
				tournament_id WITH =,
				court_id WITH =,
				tstzrange(start_time, end_time, '[)') WITH &&
			);
	END IF;
END
$$`).Error
}
