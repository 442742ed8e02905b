package timeslot

import (
	"fmt"
	"math"
	"time"

	"github.com/DhavalSuthar-24/courtplan/internal/common"
)

// ClockTime is a time of day with minute precision.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClock parses "HH:MM" or "HH:MM:SS" (seconds must be zero).
func ParseClock(s string) (ClockTime, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		t, err := time.Parse(layout, s)
		if err == nil {
			if t.Second() != 0 {
				break
			}
			return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
		}
	}
	return ClockTime{}, common.InvalidArgumentf("time of day %q", s)
}

func (c ClockTime) minutes() int {
	return c.Hour*60 + c.Minute
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// on returns the instant of c on the calendar day of d, in d's location.
func (c ClockTime) on(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour, c.Minute, 0, 0, d.Location())
}

// A single bulk request may cover at most a year and produce at most maxGridSlots
// drafts; everything is generated in memory and inserted within one request.
const (
	maxGridDays  = 366
	maxGridSlots = 10000
)

// GridSpec describes a bulk slot generation request.
type GridSpec struct {
	TournamentID     uint
	CourtIDs         []uint
	StartDate        time.Time
	EndDate          time.Time
	SlotDuration     time.Duration
	BreakDuration    time.Duration
	DailyOpen        ClockTime
	DailyClose       ClockTime
	ExcludedWeekdays []int // 0 = Monday ... 6 = Sunday
}

// Validate checks the grid parameters.
func (g GridSpec) Validate() error {
	switch {
	case len(g.CourtIDs) == 0:
		return common.InvalidArgumentf("at least one court is required")
	case g.SlotDuration <= 0:
		return common.InvalidArgumentf("slot duration must be positive")
	case g.BreakDuration < 0:
		return common.InvalidArgumentf("break duration must not be negative")
	case g.DailyOpen.minutes() >= g.DailyClose.minutes():
		return common.InvalidArgumentf("daily open %s must be before close %s", g.DailyOpen, g.DailyClose)
	case dayOf(g.EndDate, g.StartDate.Location()).Before(dayOf(g.StartDate, g.StartDate.Location())):
		return common.InvalidArgumentf("end date must not be before start date")
	}
	for _, wd := range g.ExcludedWeekdays {
		if wd < 0 || wd > 6 {
			return common.InvalidArgumentf("excluded weekday %d out of range 0-6", wd)
		}
	}

	loc := g.StartDate.Location()
	first, last := dayOf(g.StartDate, loc), dayOf(g.EndDate, loc)
	if span := int(math.Round(last.Sub(first).Hours()/24)) + 1; span > maxGridDays {
		return common.InvalidArgumentf("date range of %d days exceeds the limit of %d", span, maxGridDays)
	}
	if n := g.draftCount(first, last); n > maxGridSlots {
		return common.InvalidArgumentf("grid would create %d slots, more than the limit of %d", n, maxGridSlots)
	}
	return nil
}

// draftCount is the number of drafts Generate will produce for days first..last.
func (g GridSpec) draftCount(first, last time.Time) int {
	window := time.Duration(g.DailyClose.minutes()-g.DailyOpen.minutes()) * time.Minute
	if g.SlotDuration > window {
		return 0
	}
	perDay := int((window-g.SlotDuration)/(g.SlotDuration+g.BreakDuration)) + 1

	excluded := make(map[int]bool, len(g.ExcludedWeekdays))
	for _, wd := range g.ExcludedWeekdays {
		excluded[wd] = true
	}
	days := 0
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		if !excluded[mondayIndex(day.Weekday())] {
			days++
		}
	}
	return days * len(g.CourtIDs) * perDay
}

// mondayIndex maps time.Weekday to 0 = Monday ... 6 = Sunday.
func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

func dayOf(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// Generate partitions the grid window into slot drafts. Days run from StartDate to
// EndDate inclusive in StartDate's location; for every non-excluded day each court gets
// [open, open+d), [open+d+b, open+2d+b), ... while the slot still ends by close.
// Trailing partial slots are dropped, never truncated.
func Generate(g GridSpec) ([]TimeSlot, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	excluded := make(map[int]bool, len(g.ExcludedWeekdays))
	for _, wd := range g.ExcludedWeekdays {
		excluded[wd] = true
	}

	loc := g.StartDate.Location()
	last := dayOf(g.EndDate, loc)
	step := g.SlotDuration + g.BreakDuration

	var drafts []TimeSlot
	for day := dayOf(g.StartDate, loc); !day.After(last); day = day.AddDate(0, 0, 1) {
		if excluded[mondayIndex(day.Weekday())] {
			continue
		}
		open, closeAt := g.DailyOpen.on(day), g.DailyClose.on(day)
		for _, courtID := range g.CourtIDs {
			for cursor := open; !cursor.Add(g.SlotDuration).After(closeAt); cursor = cursor.Add(step) {
				drafts = append(drafts, TimeSlot{
					TournamentID: g.TournamentID,
					CourtID:      courtID,
					StartTime:    cursor,
					EndTime:      cursor.Add(g.SlotDuration),
					IsAvailable:  true,
				})
			}
		}
	}
	return drafts, nil
}
