package referee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/DhavalSuthar-24/courtplan/internal/common"
	"github.com/DhavalSuthar-24/courtplan/internal/match"
	"github.com/DhavalSuthar-24/courtplan/internal/observability/metrics"
)

// RefereeService manages referees, their availability and their match assignments.
type RefereeService struct {
	repo     RefereeRepository
	matches  match.MatchRepository
	resolver *Resolver
	metrics  *metrics.SchedulingMetrics
}

func NewRefereeService(repo RefereeRepository, matches match.MatchRepository, m *metrics.SchedulingMetrics) *RefereeService {
	return &RefereeService{
		repo:     repo,
		matches:  matches,
		resolver: NewResolver(repo, m),
		metrics:  m,
	}
}

func (s *RefereeService) CreateReferee(ctx context.Context, ref *Referee) (*Referee, error) {
	ref.Name = strings.TrimSpace(ref.Name)
	if ref.Name == "" {
		return nil, common.InvalidArgumentf("referee name is required")
	}
	if err := s.repo.CreateReferee(ctx, ref); err != nil {
		return nil, err
	}
	return ref, nil
}

func (s *RefereeService) GetReferee(ctx context.Context, id uint) (*Referee, error) {
	return s.repo.GetRefereeByID(ctx, id)
}

// ListReferees returns the requested page ordered by name and the total count.
func (s *RefereeService) ListReferees(ctx context.Context, active *bool, page, pageSize int) ([]Referee, int64, error) {
	if page < 1 {
		page = 1
	}
	return s.repo.ListReferees(ctx, active, pageSize, (page-1)*pageSize)
}

// UpdateReferee applies the non-nil fields of upd.
func (s *RefereeService) UpdateReferee(ctx context.Context, id uint, upd RefereeUpdate) (*Referee, error) {
	ref, err := s.repo.GetRefereeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, common.InvalidArgumentf("referee name cannot be empty")
		}
		ref.Name = name
	}
	if upd.Email != nil {
		ref.Email = upd.Email
	}
	if upd.Phone != nil {
		ref.Phone = upd.Phone
	}
	if upd.CertificationLevel != nil {
		ref.CertificationLevel = upd.CertificationLevel
	}
	if upd.Active != nil {
		ref.Active = *upd.Active
	}
	if upd.Notes != nil {
		ref.Notes = upd.Notes
	}

	if err := s.repo.UpdateReferee(ctx, ref); err != nil {
		return nil, err
	}
	return ref, nil
}

func (s *RefereeService) DeleteReferee(ctx context.Context, id uint) error {
	return s.repo.DeleteReferee(ctx, id)
}

// DeclareAvailability records the referee's window for a tournament. A zero
// MaxMatchesPerDay takes the default; a second declaration for the same tournament
// is a conflict.
func (s *RefereeService) DeclareAvailability(ctx context.Context, avail *RefereeAvailability) (*RefereeAvailability, error) {
	if !avail.Window().Valid() {
		return nil, common.InvalidArgumentf("available_from %s must be before available_to %s",
			avail.AvailableFrom.Format(time.RFC3339), avail.AvailableTo.Format(time.RFC3339))
	}
	switch {
	case avail.MaxMatchesPerDay == 0:
		avail.MaxMatchesPerDay = DefaultMaxMatchesPerDay
	case avail.MaxMatchesPerDay < 0:
		return nil, common.InvalidArgumentf("max_matches_per_day must be positive")
	}

	if _, err := s.repo.GetRefereeByID(ctx, avail.RefereeID); err != nil {
		return nil, err
	}
	if err := s.repo.CreateAvailability(ctx, avail); err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, common.Conflictf("referee %d already declared availability for tournament %d",
				avail.RefereeID, avail.TournamentID)
		}
		return nil, err
	}
	return avail, nil
}

func (s *RefereeService) ListTournamentReferees(ctx context.Context, tournamentID uint) ([]RefereeWithAssignments, error) {
	return s.repo.ListTournamentReferees(ctx, tournamentID)
}

// AvailableReferees is the availability resolver.
func (s *RefereeService) AvailableReferees(ctx context.Context, tournamentID uint, start, end time.Time) ([]Referee, error) {
	return s.resolver.AvailableReferees(ctx, tournamentID, start, end)
}

// AssignRefereeToMatch links the referee to the match in role. The same referee may
// hold several distinct roles on one match but never the same role twice.
func (s *RefereeService) AssignRefereeToMatch(ctx context.Context, assignment *RefereeAssignment) (*RefereeAssignment, error) {
	role, err := ParseRole(string(assignment.Role))
	if err != nil {
		s.metrics.RecordRefereeAssignment(ctx, "invalid_role")
		return nil, err
	}
	assignment.Role = role

	if _, err := s.repo.GetRefereeByID(ctx, assignment.RefereeID); err != nil {
		return nil, err
	}
	if _, err := s.matches.GetMatchByID(ctx, assignment.MatchID); err != nil {
		return nil, err
	}

	if err := s.repo.CreateAssignment(ctx, assignment); err != nil {
		if errors.Is(err, common.ErrConflict) {
			s.metrics.RecordRefereeAssignment(ctx, "duplicate")
			return nil, common.Conflictf("referee %d already holds role %s on match %d",
				assignment.RefereeID, assignment.Role, assignment.MatchID)
		}
		s.metrics.RecordRefereeAssignment(ctx, "error")
		return nil, err
	}

	s.metrics.RecordRefereeAssignment(ctx, "success")
	slog.InfoContext(ctx, "referee assigned",
		slog.Uint64("referee_id", uint64(assignment.RefereeID)),
		slog.Uint64("match_id", uint64(assignment.MatchID)),
		slog.String("role", string(assignment.Role)),
	)
	return assignment, nil
}

func (s *RefereeService) ListMatchReferees(ctx context.Context, matchID uint) ([]MatchReferee, error) {
	if _, err := s.matches.GetMatchByID(ctx, matchID); err != nil {
		return nil, err
	}
	return s.repo.ListMatchReferees(ctx, matchID)
}

// UpdateAssignment changes confirmed and notes on the referee's rows for the match.
func (s *RefereeService) UpdateAssignment(ctx context.Context, refereeID, matchID uint, confirmed *bool, notes *string) ([]RefereeAssignment, error) {
	return s.repo.UpdateAssignments(ctx, refereeID, matchID, confirmed, notes)
}

// RemoveAssignment reports whether any assignment row was removed.
func (s *RefereeService) RemoveAssignment(ctx context.Context, refereeID, matchID uint) (bool, error) {
	return s.repo.RemoveAssignments(ctx, refereeID, matchID)
}

// RefereeConflicts inspects the referee's scheduled assignments in a tournament,
// optionally limited to the calendar day of day, and reports overlapping matches,
// days above max_matches_per_day, and matches outside the declared availability.
func (s *RefereeService) RefereeConflicts(ctx context.Context, refereeID, tournamentID uint, day *time.Time) ([]ScheduleConflict, error) {
	if _, err := s.repo.GetRefereeByID(ctx, refereeID); err != nil {
		return nil, err
	}

	avail, err := s.repo.GetAvailability(ctx, refereeID, tournamentID)
	if errors.Is(err, common.ErrNotFound) {
		avail, err = nil, nil
	}
	if err != nil {
		return nil, err
	}

	assigned, err := s.repo.ListAssignedMatches(ctx, []uint{refereeID})
	if err != nil {
		return nil, err
	}
	return findConflicts(refereeID, avail, scopeMatches(assigned, tournamentID, day)), nil
}

// scopeMatches keeps one row per match of the tournament, ordered by start time.
func scopeMatches(assigned []AssignedMatch, tournamentID uint, day *time.Time) []AssignedMatch {
	var from, to time.Time
	if day != nil {
		from = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		to = from.AddDate(0, 0, 1)
	}

	seen := make(map[uint]bool)
	var out []AssignedMatch
	for _, a := range assigned {
		if a.TournamentID != tournamentID || seen[a.MatchID] {
			continue
		}
		if day != nil && (a.StartTime.Before(from) || !a.StartTime.Before(to)) {
			continue
		}
		seen[a.MatchID] = true
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out
}

func findConflicts(refereeID uint, avail *RefereeAvailability, matches []AssignedMatch) []ScheduleConflict {
	conflicts := []ScheduleConflict{}

	for i := range matches {
		for j := i + 1; j < len(matches); j++ {
			if matches[i].Window().Overlaps(matches[j].Window()) {
				conflicts = append(conflicts, ScheduleConflict{
					RefereeID:    refereeID,
					ConflictType: ConflictOverlap,
					MatchIDs:     []uint{matches[i].MatchID, matches[j].MatchID},
					Description: fmt.Sprintf("matches %d and %d overlap including margin",
						matches[i].MatchID, matches[j].MatchID),
				})
			}
		}
	}

	limit := DefaultMaxMatchesPerDay
	if avail != nil {
		limit = avail.MaxMatchesPerDay
	}
	var days []string
	perDay := make(map[string][]uint)
	for _, m := range matches {
		key := m.StartTime.Format("2006-01-02")
		if _, ok := perDay[key]; !ok {
			days = append(days, key)
		}
		perDay[key] = append(perDay[key], m.MatchID)
	}
	for _, d := range days {
		if ids := perDay[d]; len(ids) > limit {
			conflicts = append(conflicts, ScheduleConflict{
				RefereeID:    refereeID,
				ConflictType: ConflictTooManyMatches,
				MatchIDs:     ids,
				Description:  fmt.Sprintf("%d matches on %s exceeds the limit of %d", len(ids), d, limit),
			})
		}
	}

	for _, m := range matches {
		played := match.Window(m.StartTime, m.DurationMinutes, 0)
		if avail != nil && avail.Window().Contains(played) {
			continue
		}
		desc := fmt.Sprintf("match %d falls outside the declared availability", m.MatchID)
		if avail == nil {
			desc = fmt.Sprintf("match %d is assigned but no availability was declared", m.MatchID)
		}
		conflicts = append(conflicts, ScheduleConflict{
			RefereeID:    refereeID,
			ConflictType: ConflictNotAvailable,
			MatchIDs:     []uint{m.MatchID},
			Description:  desc,
		})
	}
	return conflicts
}
