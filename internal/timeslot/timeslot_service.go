package timeslot

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/DhavalSuthar-24/courtplan/internal/common"
	"github.com/DhavalSuthar-24/courtplan/internal/interval"
	"github.com/DhavalSuthar-24/courtplan/internal/observability/metrics"
)

const defaultPreviewSize = 10

// TimeSlotService owns slot creation, conflict checking and match assignment.
type TimeSlotService struct {
	repo        TimeSlotRepository
	cache       SummaryCache
	metrics     *metrics.SchedulingMetrics
	previewSize int
}

// NewTimeSlotService wires the service. A nil cache disables summary caching and
// nil metrics record nothing.
func NewTimeSlotService(repo TimeSlotRepository, cache SummaryCache, m *metrics.SchedulingMetrics, previewSize int) *TimeSlotService {
	if cache == nil {
		cache = NoopSummaryCache{}
	}
	if previewSize <= 0 {
		previewSize = defaultPreviewSize
	}
	return &TimeSlotService{
		repo:        repo,
		cache:       cache,
		metrics:     m,
		previewSize: previewSize,
	}
}

func validRange(start, end time.Time) error {
	if !start.Before(end) {
		return common.InvalidArgumentf("start time %s must be before end time %s",
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return nil
}

// overlapping filters slots down to those overlapping [start, end), skipping excludeID.
func overlapping(slots []TimeSlot, start, end time.Time, excludeID *uint) []TimeSlot {
	var out []TimeSlot
	for _, s := range slots {
		if excludeID != nil && s.ID == *excludeID {
			continue
		}
		if interval.Overlaps(s.StartTime, s.EndTime, start, end) {
			out = append(out, s)
		}
	}
	return out
}

func conflictError(conflicts []TimeSlot) error {
	ids := make([]uint, len(conflicts))
	for i, s := range conflicts {
		ids[i] = s.ID
	}
	return &common.ConflictError{Resource: "time slot", IDs: ids}
}

func checkConflicts(ctx context.Context, repo TimeSlotRepository, tournamentID, courtID uint, start, end time.Time, excludeID *uint) ([]TimeSlot, error) {
	if err := validRange(start, end); err != nil {
		return nil, err
	}
	slots, err := repo.GetCourtTimeSlots(ctx, tournamentID, courtID)
	if err != nil {
		return nil, err
	}
	return overlapping(slots, start, end, excludeID), nil
}

// CheckConflicts returns the slots of (tournament, court) whose interval overlaps
// [start, end), ignoring excludeID when set.
func (s *TimeSlotService) CheckConflicts(ctx context.Context, tournamentID, courtID uint, start, end time.Time, excludeID *uint) ([]TimeSlot, error) {
	return checkConflicts(ctx, s.repo, tournamentID, courtID, start, end, excludeID)
}

// CreateTimeSlot persists slot after checking it against the court's existing slots.
// The check and the insert run under the court's advisory lock.
func (s *TimeSlotService) CreateTimeSlot(ctx context.Context, slot *TimeSlot) (*TimeSlot, error) {
	if err := validRange(slot.StartTime, slot.EndTime); err != nil {
		return nil, err
	}
	slot.MatchID = nil

	err := s.repo.WithTransaction(ctx, func(tx TimeSlotRepository) error {
		if err := tx.LockCourt(ctx, slot.TournamentID, slot.CourtID); err != nil {
			return err
		}
		conflicts, err := checkConflicts(ctx, tx, slot.TournamentID, slot.CourtID, slot.StartTime, slot.EndTime, nil)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			s.metrics.RecordSlotConflicts(ctx, "create", len(conflicts))
			return conflictError(conflicts)
		}
		return tx.CreateTimeSlot(ctx, slot)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordSlotsCreated(ctx, "single", 1)
	s.invalidate(ctx, slot.TournamentID)
	return slot, nil
}

// BulkCreateTimeSlots generates the grid and inserts it slot by slot. Drafts overlapping
// an existing slot are skipped, and a failed insert is logged and skipped without
// aborting the rest. Only successful inserts are counted.
func (s *TimeSlotService) BulkCreateTimeSlots(ctx context.Context, spec GridSpec) (*BulkResult, error) {
	started := time.Now()
	spec.CourtIDs = uniqueIDs(spec.CourtIDs)

	drafts, err := Generate(spec)
	if err != nil {
		return nil, err
	}

	existing := make(map[uint][]TimeSlot, len(spec.CourtIDs))
	for _, courtID := range spec.CourtIDs {
		slots, err := s.repo.GetCourtTimeSlots(ctx, spec.TournamentID, courtID)
		if err != nil {
			return nil, err
		}
		existing[courtID] = slots
	}

	result := &BulkResult{Slots: []TimeSlot{}}
	for i := range drafts {
		draft := drafts[i]
		if len(overlapping(existing[draft.CourtID], draft.StartTime, draft.EndTime, nil)) > 0 {
			result.SkippedCount++
			continue
		}

		if err := s.repo.CreateTimeSlot(ctx, &draft); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			slog.WarnContext(ctx, "bulk slot insert failed",
				slog.Uint64("tournament_id", uint64(draft.TournamentID)),
				slog.Uint64("court_id", uint64(draft.CourtID)),
				slog.Time("start_time", draft.StartTime),
				slog.String("error", err.Error()),
			)
			result.SkippedCount++
			continue
		}

		existing[draft.CourtID] = append(existing[draft.CourtID], draft)
		result.CreatedCount++
		if len(result.Slots) < s.previewSize {
			result.Slots = append(result.Slots, draft)
		}
	}

	s.metrics.RecordSlotsCreated(ctx, "bulk", result.CreatedCount)
	s.metrics.RecordSlotConflicts(ctx, "bulk", result.SkippedCount)
	s.metrics.RecordBulkGenerationDuration(ctx, time.Since(started))
	if result.CreatedCount > 0 {
		s.invalidate(ctx, spec.TournamentID)
	}

	slog.InfoContext(ctx, "bulk slot generation finished",
		slog.Uint64("tournament_id", uint64(spec.TournamentID)),
		slog.Int("created", result.CreatedCount),
		slog.Int("skipped", result.SkippedCount),
	)
	return result, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func (s *TimeSlotService) GetTimeSlot(ctx context.Context, id uint) (*TimeSlot, error) {
	return s.repo.GetTimeSlotByID(ctx, id)
}

func (s *TimeSlotService) ListTimeSlots(ctx context.Context, tournamentID uint, filter ListFilter) ([]TimeSlot, error) {
	return s.repo.GetTournamentTimeSlots(ctx, tournamentID, filter)
}

func (s *TimeSlotService) ListTimeSlotsWithMatches(ctx context.Context, tournamentID uint, day *time.Time) ([]TimeSlot, error) {
	return s.repo.GetTimeSlotsWithMatches(ctx, tournamentID, day)
}

func (s *TimeSlotService) NextAvailableTimeSlot(ctx context.Context, tournamentID uint, courtID *uint, after *time.Time) (*TimeSlot, error) {
	return s.repo.GetNextAvailableTimeSlot(ctx, tournamentID, courtID, after)
}

// UpdateTimeSlot applies a partial update. New bounds are re-checked against the
// court excluding the slot itself. Supplying MatchID assigns it and requires a free
// slot; IsAvailable=true is rejected while a match is held.
func (s *TimeSlotService) UpdateTimeSlot(ctx context.Context, id uint, upd SlotUpdate) (*TimeSlot, error) {
	if upd.MatchID != nil && upd.IsAvailable != nil && *upd.IsAvailable {
		return nil, common.InvalidArgumentf("a slot cannot be available and hold a match")
	}

	var updated *TimeSlot
	err := s.repo.WithTransaction(ctx, func(tx TimeSlotRepository) error {
		slot, err := tx.LockTimeSlot(ctx, id)
		if err != nil {
			return err
		}
		if upd.Empty() {
			updated = slot
			return nil
		}

		if upd.StartTime != nil || upd.EndTime != nil {
			start, end := slot.StartTime, slot.EndTime
			if upd.StartTime != nil {
				start = *upd.StartTime
			}
			if upd.EndTime != nil {
				end = *upd.EndTime
			}
			if err := tx.LockCourt(ctx, slot.TournamentID, slot.CourtID); err != nil {
				return err
			}
			conflicts, err := checkConflicts(ctx, tx, slot.TournamentID, slot.CourtID, start, end, &slot.ID)
			if err != nil {
				return err
			}
			if len(conflicts) > 0 {
				s.metrics.RecordSlotConflicts(ctx, "update", len(conflicts))
				return conflictError(conflicts)
			}
			slot.StartTime, slot.EndTime = start, end
		}

		switch {
		case upd.MatchID != nil:
			if !slot.Free() {
				return common.InvalidStatef("time slot %d is not available", slot.ID)
			}
			slot.MatchID = upd.MatchID
			slot.IsAvailable = false
		case upd.IsAvailable != nil:
			if *upd.IsAvailable && slot.MatchID != nil {
				return common.InvalidStatef("time slot %d has an assigned match; release it first", slot.ID)
			}
			slot.IsAvailable = *upd.IsAvailable
		}

		if err := tx.UpdateTimeSlot(ctx, slot); err != nil {
			return err
		}
		updated = slot
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !upd.Empty() {
		s.invalidate(ctx, updated.TournamentID)
	}
	return updated, nil
}

// AssignMatch puts matchID on a free slot. The write is conditional, so of two
// concurrent assignments to the same slot only one succeeds.
func (s *TimeSlotService) AssignMatch(ctx context.Context, slotID, matchID uint) (*TimeSlot, error) {
	ok, err := s.repo.AssignMatch(ctx, slotID, matchID)
	if err != nil {
		s.metrics.RecordSlotAssignment(ctx, "assign", "error")
		return nil, err
	}

	slot, err := s.repo.GetTimeSlotByID(ctx, slotID)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.metrics.RecordSlotAssignment(ctx, "assign", "invalid_state")
		if slot.MatchID != nil {
			return nil, common.InvalidStatef("time slot %d already has an assigned match", slotID)
		}
		return nil, common.InvalidStatef("time slot %d is not available", slotID)
	}

	s.metrics.RecordSlotAssignment(ctx, "assign", "success")
	s.invalidate(ctx, slot.TournamentID)
	return slot, nil
}

// ReleaseTimeSlot clears the slot's match and makes it available again.
func (s *TimeSlotService) ReleaseTimeSlot(ctx context.Context, slotID uint) (*TimeSlot, error) {
	ok, err := s.repo.ReleaseTimeSlot(ctx, slotID)
	if err != nil {
		s.metrics.RecordSlotAssignment(ctx, "release", "error")
		return nil, err
	}

	slot, err := s.repo.GetTimeSlotByID(ctx, slotID)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.metrics.RecordSlotAssignment(ctx, "release", "invalid_state")
		return nil, common.InvalidStatef("time slot %d has no assigned match", slotID)
	}

	s.metrics.RecordSlotAssignment(ctx, "release", "success")
	s.invalidate(ctx, slot.TournamentID)
	return slot, nil
}

// DeleteTimeSlot removes a slot that holds no match.
func (s *TimeSlotService) DeleteTimeSlot(ctx context.Context, slotID uint) error {
	slot, err := s.repo.GetTimeSlotByID(ctx, slotID)
	if err != nil {
		return err
	}
	if slot.MatchID != nil {
		return common.InvalidStatef("time slot %d has an assigned match; release it first", slotID)
	}

	ok, err := s.repo.DeleteFreeTimeSlot(ctx, slotID)
	if err != nil {
		return err
	}
	if !ok {
		// assigned or removed between the read and the delete
		if _, err := s.repo.GetTimeSlotByID(ctx, slotID); err != nil {
			return err
		}
		return common.InvalidStatef("time slot %d has an assigned match; release it first", slotID)
	}

	s.invalidate(ctx, slot.TournamentID)
	return nil
}

// AvailabilitySummary reports the tournament's slots on day grouped by court.
func (s *TimeSlotService) AvailabilitySummary(ctx context.Context, tournamentID uint, day time.Time) (*AvailabilitySummary, error) {
	day, _ = dayBounds(day)

	cached, hit, err := s.cache.Get(ctx, tournamentID, day)
	if err != nil {
		slog.WarnContext(ctx, "schedule summary cache read failed", slog.String("error", err.Error()))
	}
	s.metrics.RecordSummaryCacheLookup(ctx, hit)
	if hit {
		return cached, nil
	}

	// captured before the store read; a slot change after this point makes Set a no-op
	generation, genErr := s.cache.Generation(ctx, tournamentID)
	if genErr != nil {
		slog.WarnContext(ctx, "schedule summary generation read failed", slog.String("error", genErr.Error()))
	}

	slots, err := s.repo.GetTournamentTimeSlots(ctx, tournamentID, ListFilter{Day: &day})
	if err != nil {
		return nil, err
	}

	summary := summarize(tournamentID, day, slots)
	if genErr == nil {
		if err := s.cache.Set(ctx, day, summary, generation); err != nil {
			slog.WarnContext(ctx, "schedule summary cache write failed", slog.String("error", err.Error()))
		}
	}
	return summary, nil
}

func summarize(tournamentID uint, day time.Time, slots []TimeSlot) *AvailabilitySummary {
	summary := &AvailabilitySummary{
		TournamentID: tournamentID,
		Date:         day.Format("2006-01-02"),
		TotalSlots:   len(slots),
		Courts:       []CourtSchedule{},
	}

	byCourt := make(map[uint]*CourtSchedule)
	for _, slot := range slots {
		cs, ok := byCourt[slot.CourtID]
		if !ok {
			cs = &CourtSchedule{CourtID: slot.CourtID}
			byCourt[slot.CourtID] = cs
		}
		cs.TotalSlots++
		cs.Slots = append(cs.Slots, slot)
		if slot.IsAvailable {
			cs.AvailableSlots++
			summary.AvailableSlots++
		}
	}
	summary.OccupiedSlots = summary.TotalSlots - summary.AvailableSlots
	if summary.TotalSlots > 0 {
		pct := float64(summary.AvailableSlots) / float64(summary.TotalSlots) * 100
		summary.AvailabilityPercentage = math.Round(pct*100) / 100
	}

	for _, cs := range byCourt {
		summary.Courts = append(summary.Courts, *cs)
	}
	sort.Slice(summary.Courts, func(i, j int) bool { return summary.Courts[i].CourtID < summary.Courts[j].CourtID })
	return summary
}

func (s *TimeSlotService) invalidate(ctx context.Context, tournamentID uint) {
	if err := s.cache.InvalidateTournament(ctx, tournamentID); err != nil && !errors.Is(err, context.Canceled) {
		slog.WarnContext(ctx, "schedule summary cache invalidation failed",
			slog.Uint64("tournament_id", uint64(tournamentID)),
			slog.String("error", err.Error()),
		)
	}
}
