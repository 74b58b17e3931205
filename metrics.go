package cindex

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus;
// see the metrics/promcollector package for a ready-made adapter.
type MetricsCollector interface {
	// RecordEvaluate is called after each centroid index computation.
	// duration is the total time taken, err is nil if successful.
	RecordEvaluate(duration time.Duration, err error)

	// RecordMatch is called after each matching direction.
	// direction is "forward" (A→B) or "backward" (B→A).
	RecordMatch(direction string, sources, targets, orphans int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordEvaluate(time.Duration, error)              {}
func (NoopMetricsCollector) RecordMatch(string, int, int, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	EvaluateCount      atomic.Int64
	EvaluateErrors     atomic.Int64
	EvaluateTotalNanos atomic.Int64
	MatchCount         atomic.Int64
	MatchSources       atomic.Int64
	MatchOrphans       atomic.Int64
	MatchTotalNanos    atomic.Int64
}

// RecordEvaluate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEvaluate(duration time.Duration, err error) {
	b.EvaluateCount.Add(1)
	b.EvaluateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.EvaluateErrors.Add(1)
	}
}

// RecordMatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMatch(_ string, sources, _, orphans int, duration time.Duration) {
	b.MatchCount.Add(1)
	b.MatchSources.Add(int64(sources))
	b.MatchOrphans.Add(int64(orphans))
	b.MatchTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		EvaluateCount:    b.EvaluateCount.Load(),
		EvaluateErrors:   b.EvaluateErrors.Load(),
		EvaluateAvgNanos: avgNanos(b.EvaluateTotalNanos.Load(), b.EvaluateCount.Load()),
		MatchCount:       b.MatchCount.Load(),
		MatchSources:     b.MatchSources.Load(),
		MatchOrphans:     b.MatchOrphans.Load(),
		MatchAvgNanos:    avgNanos(b.MatchTotalNanos.Load(), b.MatchCount.Load()),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	EvaluateCount    int64
	EvaluateErrors   int64
	EvaluateAvgNanos int64
	MatchCount       int64
	MatchSources     int64
	MatchOrphans     int64
	MatchAvgNanos    int64
}
