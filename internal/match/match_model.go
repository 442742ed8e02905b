package match

import (
	"time"

	"github.com/DhavalSuthar-24/courtplan/internal/interval"
	"github.com/DhavalSuthar-24/courtplan/internal/models"
)

type MatchStatus string

const (
	StatusMatchPending   MatchStatus = "pending"
	StatusMatchScheduled MatchStatus = "scheduled"
	StatusMatchCompleted MatchStatus = "completed"
	StatusMatchCancelled MatchStatus = "cancelled"
)

// Match is the part of a tournament match the scheduler needs: where and when it is
// played and how long it blocks the people officiating it.
type Match struct {
	models.BaseModel
	TournamentID    uint        `gorm:"not null;index" json:"tournament_id"`
	CourtID         *uint       `gorm:"index" json:"court_id,omitempty"`
	StartTime       *time.Time  `json:"start_time,omitempty"`
	DurationMinutes int         `gorm:"not null" json:"duration_minutes"`
	MarginMinutes   int         `gorm:"not null" json:"margin_minutes"`
	Status          MatchStatus `gorm:"type:varchar(20);not null" json:"status"`
}

func (Match) TableName() string {
	return "matches"
}

// Window is the conflict window [start, start+duration+margin). The margin is a
// trailing buffer only.
func Window(start time.Time, durationMinutes, marginMinutes int) interval.Range {
	return interval.Range{
		Start: start,
		End:   start.Add(time.Duration(durationMinutes+marginMinutes) * time.Minute),
	}
}
