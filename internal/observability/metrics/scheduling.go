package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	schedulingMeterName = "courtplan.scheduling"
)

// SchedulingMetrics instruments slot and referee scheduling. A nil *SchedulingMetrics
// records nothing.
type SchedulingMetrics struct {
	slotsCreated           metric.Int64Counter
	slotConflicts          metric.Int64Counter
	slotAssignments        metric.Int64Counter
	bulkGenerationDuration metric.Float64Histogram
	refereeResolutions     metric.Int64Counter
	refereeAssignments     metric.Int64Counter
	summaryCacheLookups    metric.Int64Counter
}

func NewSchedulingMetrics() (*SchedulingMetrics, error) {
	meter := otel.Meter(schedulingMeterName)

	slotsCreated, err := meter.Int64Counter(
		"scheduling_slots_created_total",
		metric.WithDescription("Total number of time slots persisted"),
		metric.WithUnit("{slot}"),
	)
	if err != nil {
		return nil, err
	}

	slotConflicts, err := meter.Int64Counter(
		"scheduling_slot_conflicts_total",
		metric.WithDescription("Total number of slot writes rejected or skipped for overlapping an existing slot"),
		metric.WithUnit("{slot}"),
	)
	if err != nil {
		return nil, err
	}

	slotAssignments, err := meter.Int64Counter(
		"scheduling_slot_assignments_total",
		metric.WithDescription("Match-to-slot assign and release attempts by outcome"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, err
	}

	bulkGenerationDuration, err := meter.Float64Histogram(
		"scheduling_bulk_generation_duration_seconds",
		metric.WithDescription("Time spent generating and persisting a slot grid"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60,
		),
	)
	if err != nil {
		return nil, err
	}

	refereeResolutions, err := meter.Int64Counter(
		"scheduling_referee_candidates_total",
		metric.WithDescription("Referee candidates evaluated by the availability resolver by outcome"),
		metric.WithUnit("{referee}"),
	)
	if err != nil {
		return nil, err
	}

	refereeAssignments, err := meter.Int64Counter(
		"scheduling_referee_assignments_total",
		metric.WithDescription("Referee-to-match assignment attempts by outcome"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, err
	}

	summaryCacheLookups, err := meter.Int64Counter(
		"scheduling_summary_cache_lookups_total",
		metric.WithDescription("Schedule availability cache lookups by result"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulingMetrics{
		slotsCreated:           slotsCreated,
		slotConflicts:          slotConflicts,
		slotAssignments:        slotAssignments,
		bulkGenerationDuration: bulkGenerationDuration,
		refereeResolutions:     refereeResolutions,
		refereeAssignments:     refereeAssignments,
		summaryCacheLookups:    summaryCacheLookups,
	}, nil
}

func (m *SchedulingMetrics) RecordSlotsCreated(ctx context.Context, source string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.slotsCreated.Add(ctx, int64(n), metric.WithAttributes(
		attribute.String("source", source),
	))
}

func (m *SchedulingMetrics) RecordSlotConflicts(ctx context.Context, operation string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.slotConflicts.Add(ctx, int64(n), metric.WithAttributes(
		attribute.String("operation", operation),
	))
}

func (m *SchedulingMetrics) RecordSlotAssignment(ctx context.Context, operation, outcome string) {
	if m == nil {
		return
	}
	m.slotAssignments.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	))
}

func (m *SchedulingMetrics) RecordBulkGenerationDuration(ctx context.Context, duration time.Duration) {
	if m == nil {
		return
	}
	m.bulkGenerationDuration.Record(ctx, duration.Seconds())
}

func (m *SchedulingMetrics) RecordRefereeCandidate(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.refereeResolutions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

func (m *SchedulingMetrics) RecordRefereeAssignment(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.refereeAssignments.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

func (m *SchedulingMetrics) RecordSummaryCacheLookup(ctx context.Context, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.summaryCacheLookups.Add(ctx, 1, metric.WithAttributes(
		attribute.String("result", result),
	))
}
