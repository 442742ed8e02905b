// Package schedule defines the contract for proposing slots for unscheduled matches.
// No ranking heuristic exists yet; PendingOptimizer reports that explicitly instead
// of guessing.
package schedule

import (
	"context"
	"time"

	"github.com/DhavalSuthar-24/courtplan/internal/common"
	"github.com/DhavalSuthar-24/courtplan/internal/match"
	"github.com/DhavalSuthar-24/courtplan/internal/referee"
	"github.com/DhavalSuthar-24/courtplan/internal/timeslot"
)

// Objective selects what an optimizer ranks candidate slots by.
type Objective string

const (
	ObjectiveMinimalConflicts    Objective = "minimal_conflicts"
	ObjectiveRefereeAvailability Objective = "referee_availability"
	ObjectiveCourtUsage          Objective = "court_usage"
)

// ParseObjective defaults an empty string to minimal_conflicts.
func ParseObjective(s string) (Objective, error) {
	switch o := Objective(s); o {
	case "":
		return ObjectiveMinimalConflicts, nil
	case ObjectiveMinimalConflicts, ObjectiveRefereeAvailability, ObjectiveCourtUsage:
		return o, nil
	default:
		return "", common.InvalidArgumentf("optimize_for %q must be one of minimal_conflicts, referee_availability, court_usage", s)
	}
}

type Status string

const (
	StatusCompleted             Status = "completed"
	StatusPendingImplementation Status = "pending_implementation"
)

// ConflictChecker is the only source of truth about court collisions.
type ConflictChecker interface {
	CheckConflicts(ctx context.Context, tournamentID, courtID uint, start, end time.Time, excludeID *uint) ([]timeslot.TimeSlot, error)
}

// AvailabilityResolver is the only source of truth about referee feasibility.
type AvailabilityResolver interface {
	AvailableReferees(ctx context.Context, tournamentID uint, start, end time.Time) ([]referee.Referee, error)
}

// CandidateSlot is one ranked option for a match. Lower ConflictScore is better.
type CandidateSlot struct {
	Slot                timeslot.TimeSlot `json:"slot"`
	AvailableRefereeIDs []uint            `json:"available_referee_ids"`
	ConflictScore       float64           `json:"conflict_score"`
	Reason              string            `json:"recommendation_reason"`
}

// Suggestion ranks candidate slots for one unscheduled match, best first.
type Suggestion struct {
	MatchID    uint            `json:"match_id"`
	Candidates []CandidateSlot `json:"candidates"`
}

type Result struct {
	TournamentID       uint         `json:"tournament_id"`
	Objective          Objective    `json:"optimization_type"`
	Status             Status       `json:"status"`
	Message            string       `json:"message"`
	UnscheduledMatches int          `json:"unscheduled_matches"`
	Suggestions        []Suggestion `json:"suggestions"`
}

// Optimizer proposes slots for a tournament's unscheduled matches. Implementations
// must judge feasibility only through a ConflictChecker and an AvailabilityResolver.
type Optimizer interface {
	Optimize(ctx context.Context, tournamentID uint, objective Objective) (*Result, error)
}

// PendingOptimizer satisfies Optimizer until a ranking heuristic is chosen. It reports
// how many matches await a slot and returns no suggestions.
type PendingOptimizer struct {
	matches match.MatchRepository

	// checker and resolver are reserved for the ranking implementation. Candidate
	// slots and referees must come from them so an optimizer can never propose what
	// the conflict and availability checks would reject.
	checker  ConflictChecker
	resolver AvailabilityResolver
}

func NewPendingOptimizer(matches match.MatchRepository, checker ConflictChecker, resolver AvailabilityResolver) *PendingOptimizer {
	return &PendingOptimizer{matches: matches, checker: checker, resolver: resolver}
}

func (o *PendingOptimizer) Optimize(ctx context.Context, tournamentID uint, objective Objective) (*Result, error) {
	objective, err := ParseObjective(string(objective))
	if err != nil {
		return nil, err
	}

	unscheduled, err := o.matches.GetTournamentMatches(ctx, tournamentID, true)
	if err != nil {
		return nil, err
	}

	return &Result{
		TournamentID:       tournamentID,
		Objective:          objective,
		Status:             StatusPendingImplementation,
		Message:            "schedule optimization is not implemented yet",
		UnscheduledMatches: len(unscheduled),
		Suggestions:        []Suggestion{},
	}, nil
}
