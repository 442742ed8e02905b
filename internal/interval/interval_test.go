package interval

import (
	"testing"
	"time"
)

func at(minute int) time.Time {
	return time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC).Add(time.Duration(minute) * time.Minute)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{"touching boundary", 0, 10, 10, 20, false},
		{"one minute overlap", 0, 10, 9, 20, true},
		{"disjoint", 0, 10, 15, 20, false},
		{"identical", 0, 10, 0, 10, true},
		{"nested", 0, 30, 10, 20, true},
		{"b before a touching", 10, 20, 0, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(at(tt.aStart), at(tt.aEnd), at(tt.bStart), at(tt.bEnd))
			if got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			// symmetric
			rev := Overlaps(at(tt.bStart), at(tt.bEnd), at(tt.aStart), at(tt.aEnd))
			if rev != got {
				t.Errorf("Overlaps() not symmetric: %v vs %v", got, rev)
			}
		})
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		name                                       string
		outerStart, outerEnd, innerStart, innerEnd int
		want                                       bool
	}{
		{"equal bounds", 0, 60, 0, 60, true},
		{"strictly inside", 0, 60, 10, 50, true},
		{"starts before", 60, 480, 0, 90, false},
		{"ends after", 0, 60, 30, 61, false},
		{"disjoint", 0, 60, 100, 120, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Contains(at(tt.outerStart), at(tt.outerEnd), at(tt.innerStart), at(tt.innerEnd))
			if got != tt.want {
				t.Errorf("Contains() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRange(t *testing.T) {
	r := Range{Start: at(0), End: at(60)}
	if !r.Valid() {
		t.Error("Valid() = false, want true")
	}
	if (Range{Start: at(10), End: at(10)}).Valid() {
		t.Error("empty range reported valid")
	}
	if r.Overlaps(Range{Start: at(60), End: at(90)}) {
		t.Error("adjacent ranges reported overlapping")
	}
	if !r.Contains(Range{Start: at(15), End: at(45)}) {
		t.Error("Contains() = false for inner range")
	}
}
