package vecdist

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordLoad is called after each input is normalized.
	// source is the input kind ("path", "sequence", ...), err is nil if
	// successful.
	RecordLoad(source string, duration time.Duration, err error)

	// RecordDistance is called after each distance call.
	// calcType is empty when the call failed before classification.
	// invocations is the number of strategy evaluations.
	RecordDistance(calcType string, invocations int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(string, time.Duration, error)          {}
func (NoopMetricsCollector) RecordDistance(string, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LoadCount          atomic.Int64
	FileLoadCount      atomic.Int64
	LoadErrors         atomic.Int64
	LoadTotalNanos     atomic.Int64
	DistanceCount      atomic.Int64
	DistanceErrors     atomic.Int64
	DistanceTotalNanos atomic.Int64
	Invocations        atomic.Int64
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(source string, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	b.LoadTotalNanos.Add(duration.Nanoseconds())
	if source == "path" {
		b.FileLoadCount.Add(1)
	}
	if err != nil {
		b.LoadErrors.Add(1)
	}
}

// RecordDistance implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDistance(_ string, invocations int, duration time.Duration, err error) {
	b.DistanceCount.Add(1)
	b.DistanceTotalNanos.Add(duration.Nanoseconds())
	b.Invocations.Add(int64(invocations))
	if err != nil {
		b.DistanceErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LoadCount:        b.LoadCount.Load(),
		FileLoadCount:    b.FileLoadCount.Load(),
		LoadErrors:       b.LoadErrors.Load(),
		LoadAvgNanos:     avg(b.LoadTotalNanos.Load(), b.LoadCount.Load()),
		DistanceCount:    b.DistanceCount.Load(),
		DistanceErrors:   b.DistanceErrors.Load(),
		DistanceAvgNanos: avg(b.DistanceTotalNanos.Load(), b.DistanceCount.Load()),
		Invocations:      b.Invocations.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LoadCount        int64
	FileLoadCount    int64
	LoadErrors       int64
	LoadAvgNanos     int64
	DistanceCount    int64
	DistanceErrors   int64
	DistanceAvgNanos int64
	Invocations      int64
}
