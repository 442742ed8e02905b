package referee

import (
	"context"
	"sort"
	"time"

	"github.com/DhavalSuthar-24/courtplan/internal/common"
	"github.com/DhavalSuthar-24/courtplan/internal/interval"
	"github.com/DhavalSuthar-24/courtplan/internal/observability/metrics"
)

// Resolver decides which referees can officiate a proposed match window.
type Resolver struct {
	repo    RefereeRepository
	metrics *metrics.SchedulingMetrics
}

func NewResolver(repo RefereeRepository, m *metrics.SchedulingMetrics) *Resolver {
	return &Resolver{repo: repo, metrics: m}
}

// AvailableReferees returns, ordered by id, the active referees whose declared
// availability for the tournament contains [start, end) and none of whose assigned
// matches overlaps it. A match blocks [start, start+duration+margin).
func (r *Resolver) AvailableReferees(ctx context.Context, tournamentID uint, start, end time.Time) ([]Referee, error) {
	window := interval.Range{Start: start, End: end}
	if !window.Valid() {
		return nil, common.InvalidArgumentf("start time %s must be before end time %s",
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}

	candidates, err := r.repo.ListCandidates(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	admitted := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Availability.Window().Contains(window) {
			admitted = append(admitted, c)
		} else {
			r.metrics.RecordRefereeCandidate(ctx, "outside_availability")
		}
	}
	if len(admitted) == 0 {
		return []Referee{}, nil
	}

	ids := make([]uint, len(admitted))
	for i, c := range admitted {
		ids[i] = c.Referee.ID
	}
	assigned, err := r.repo.ListAssignedMatches(ctx, ids)
	if err != nil {
		return nil, err
	}

	busy := busyReferees(assigned, window)
	out := make([]Referee, 0, len(admitted))
	for _, c := range admitted {
		if busy[c.Referee.ID] {
			r.metrics.RecordRefereeCandidate(ctx, "assignment_conflict")
			continue
		}
		r.metrics.RecordRefereeCandidate(ctx, "available")
		out = append(out, c.Referee)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// busyReferees marks every referee holding a match whose conflict window overlaps window.
func busyReferees(assigned []AssignedMatch, window interval.Range) map[uint]bool {
	busy := make(map[uint]bool)
	for _, a := range assigned {
		if busy[a.RefereeID] {
			continue
		}
		if a.Window().Overlaps(window) {
			busy[a.RefereeID] = true
		}
	}
	return busy
}
