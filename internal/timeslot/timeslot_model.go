package timeslot

import (
	"time"

	"github.com/DhavalSuthar-24/courtplan/internal/interval"
	"github.com/DhavalSuthar-24/courtplan/internal/match"
	"github.com/DhavalSuthar-24/courtplan/internal/models"
)

// TimeSlot is a bookable interval on one court of a tournament. IsAvailable and
// MatchID always change together.
type TimeSlot struct {
	models.BaseModel
	TournamentID uint         `gorm:"not null;index:idx_time_slots_tournament_court" json:"tournament_id"`
	CourtID      uint         `gorm:"not null;index:idx_time_slots_tournament_court" json:"court_id"`
	StartTime    time.Time    `gorm:"not null;index" json:"start_time"`
	EndTime      time.Time    `gorm:"not null;check:chk_time_slots_range,end_time > start_time" json:"end_time"`
	IsAvailable  bool         `gorm:"not null" json:"is_available"`
	MatchID      *uint        `gorm:"index" json:"match_id"`
	Match        *match.Match `gorm:"foreignKey:MatchID;constraint:OnDelete:SET NULL" json:"match,omitempty"`
}

func (TimeSlot) TableName() string {
	return "time_slots"
}

func (s *TimeSlot) Range() interval.Range {
	return interval.Range{Start: s.StartTime, End: s.EndTime}
}

// Free reports whether a match can be assigned to the slot.
func (s *TimeSlot) Free() bool {
	return s.IsAvailable && s.MatchID == nil
}

// ListFilter narrows ListSlots. Zero values mean "no filter".
type ListFilter struct {
	CourtID       *uint
	Day           *time.Time
	OnlyAvailable bool
}

// SlotUpdate enumerates the mutable fields of a slot. Nil fields are left alone.
type SlotUpdate struct {
	StartTime   *time.Time
	EndTime     *time.Time
	IsAvailable *bool
	MatchID     *uint
}

// Empty reports whether the update changes nothing.
func (u SlotUpdate) Empty() bool {
	return u.StartTime == nil && u.EndTime == nil && u.IsAvailable == nil && u.MatchID == nil
}

// BulkResult summarises a grid generation run.
type BulkResult struct {
	CreatedCount int        `json:"created_count"`
	SkippedCount int        `json:"skipped_count"`
	Slots        []TimeSlot `json:"slots"`
}

// CourtSchedule groups one court's slots for a day.
type CourtSchedule struct {
	CourtID        uint       `json:"court_id"`
	TotalSlots     int        `json:"total_slots"`
	AvailableSlots int        `json:"available_slots"`
	Slots          []TimeSlot `json:"slots"`
}

// AvailabilitySummary is the daily schedule overview of a tournament.
type AvailabilitySummary struct {
	TournamentID           uint            `json:"tournament_id"`
	Date                   string          `json:"date"`
	TotalSlots             int             `json:"total_slots"`
	AvailableSlots         int             `json:"available_slots"`
	OccupiedSlots          int             `json:"occupied_slots"`
	AvailabilityPercentage float64         `json:"availability_percentage"`
	Courts                 []CourtSchedule `json:"courts"`
}
