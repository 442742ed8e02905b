package referee

import (
	"time"

	"github.com/DhavalSuthar-24/courtplan/internal/common"
	"github.com/DhavalSuthar-24/courtplan/internal/interval"
	"github.com/DhavalSuthar-24/courtplan/internal/match"
	"github.com/DhavalSuthar-24/courtplan/internal/models"
)

// Role is the part a referee plays in a match.
type Role string

const (
	RoleMain         Role = "main"
	RoleAssistant    Role = "assistant"
	RoleLineJudge    Role = "line_judge"
	RoleVideoReferee Role = "video_referee"
)

const DefaultMaxMatchesPerDay = 5

// ParseRole accepts the four known roles; an empty string means main.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case "":
		return RoleMain, nil
	case RoleMain, RoleAssistant, RoleLineJudge, RoleVideoReferee:
		return r, nil
	default:
		return "", common.InvalidArgumentf("role %q must be one of main, assistant, line_judge, video_referee", s)
	}
}

// Referee is a person eligible to officiate. Deactivate rather than delete referees
// with history: deletion cascades to availability and assignments.
type Referee struct {
	models.BaseModel
	Name               string  `gorm:"type:varchar(150);not null;index" json:"name"`
	Email              *string `gorm:"type:varchar(255)" json:"email"`
	Phone              *string `gorm:"type:varchar(50)" json:"phone"`
	CertificationLevel *string `gorm:"type:varchar(100)" json:"certification_level"`
	Active             bool    `gorm:"not null;index" json:"active"`
	Notes              *string `gorm:"type:text" json:"notes"`
}

func (Referee) TableName() string {
	return "referees"
}

// RefereeAvailability is a referee's declared window for one tournament.
type RefereeAvailability struct {
	models.BaseModel
	RefereeID        uint           `gorm:"not null;uniqueIndex:idx_referee_tournament_unique" json:"referee_id"`
	TournamentID     uint           `gorm:"not null;uniqueIndex:idx_referee_tournament_unique;index" json:"tournament_id"`
	AvailableFrom    time.Time      `gorm:"not null" json:"available_from"`
	AvailableTo      time.Time      `gorm:"not null;check:chk_referee_availability_range,available_to > available_from" json:"available_to"`
	MaxMatchesPerDay int            `gorm:"not null;check:chk_referee_availability_max,max_matches_per_day > 0" json:"max_matches_per_day"`
	PreferredCourts  models.IDSlice `gorm:"type:jsonb;not null" json:"preferred_courts"`
	Notes            *string        `gorm:"type:text" json:"notes"`
	Referee          *Referee       `gorm:"foreignKey:RefereeID;constraint:OnDelete:CASCADE" json:"-"`
}

func (RefereeAvailability) TableName() string {
	return "referee_availabilities"
}

func (a *RefereeAvailability) Window() interval.Range {
	return interval.Range{Start: a.AvailableFrom, End: a.AvailableTo}
}

// RefereeAssignment links a referee to a match in one role.
type RefereeAssignment struct {
	models.BaseModel
	RefereeID uint         `gorm:"not null;uniqueIndex:idx_referee_match_role" json:"referee_id"`
	MatchID   uint         `gorm:"not null;uniqueIndex:idx_referee_match_role;index" json:"match_id"`
	Role      Role         `gorm:"type:varchar(20);not null;uniqueIndex:idx_referee_match_role" json:"role"`
	Confirmed bool         `gorm:"not null" json:"confirmed"`
	Notes     *string      `gorm:"type:text" json:"notes"`
	Referee   *Referee     `gorm:"foreignKey:RefereeID;constraint:OnDelete:CASCADE" json:"-"`
	Match     *match.Match `gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE" json:"-"`
}

func (RefereeAssignment) TableName() string {
	return "referee_assignments"
}

// AssignedMatch is a referee assignment joined with the match columns needed to
// compute its conflict window.
type AssignedMatch struct {
	RefereeID       uint
	MatchID         uint
	TournamentID    uint
	Role            Role
	StartTime       time.Time
	DurationMinutes int
	MarginMinutes   int
}

// Window is [start, start+duration+margin).
func (a AssignedMatch) Window() interval.Range {
	return match.Window(a.StartTime, a.DurationMinutes, a.MarginMinutes)
}

// Candidate is an active referee together with their availability for a tournament.
type Candidate struct {
	Referee      Referee
	Availability RefereeAvailability
}

// RefereeWithAssignments is the tournament roster view of a referee.
type RefereeWithAssignments struct {
	Referee
	Availability []RefereeAvailability `json:"availability"`
	Assignments  []RefereeAssignment   `json:"assignments"`
}

// MatchReferee pairs a referee with one of their assignment rows for a match.
type MatchReferee struct {
	Referee    Referee           `json:"referee"`
	Assignment RefereeAssignment `json:"assignment"`
}

// RefereeUpdate enumerates the mutable referee fields. Nil fields are left alone.
type RefereeUpdate struct {
	Name               *string
	Email              *string
	Phone              *string
	CertificationLevel *string
	Active             *bool
	Notes              *string
}

// ConflictType classifies a referee schedule problem.
type ConflictType string

const (
	ConflictOverlap        ConflictType = "overlap"
	ConflictTooManyMatches ConflictType = "too_many_matches"
	ConflictNotAvailable   ConflictType = "not_available"
)

// ScheduleConflict is one problem in a referee's assigned schedule.
type ScheduleConflict struct {
	RefereeID    uint         `json:"referee_id"`
	ConflictType ConflictType `json:"conflict_type"`
	MatchIDs     []uint       `json:"match_ids"`
	Description  string       `json:"description"`
}
