// Package interval holds the half-open range predicates every schedule check is built on.
// A range [start, end) includes start and excludes end, so ranges that only share an
// endpoint never overlap.
package interval

import "time"

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) share any instant.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Contains reports whether [innerStart, innerEnd) lies entirely inside [outerStart, outerEnd).
func Contains(outerStart, outerEnd, innerStart, innerEnd time.Time) bool {
	return !innerStart.Before(outerStart) && !outerEnd.Before(innerEnd)
}

// Range is a half-open [Start, End) time range.
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Valid reports whether the range is non-empty.
func (r Range) Valid() bool {
	return r.Start.Before(r.End)
}

func (r Range) Overlaps(o Range) bool {
	return Overlaps(r.Start, r.End, o.Start, o.End)
}

func (r Range) Contains(o Range) bool {
	return Contains(r.Start, r.End, o.Start, o.End)
}
