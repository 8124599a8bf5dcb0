package photonkd

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    inserts  prometheus.Counter
//	    rebuilds *prometheus.CounterVec
//	}
//
//	func (p *PrometheusCollector) RecordRebuild(reason string, nodes, live int) {
//	    p.rebuilds.WithLabelValues(reason).Inc()
//	}
type MetricsCollector interface {
	// RecordBuild is called after each bulk build with the number of input points.
	RecordBuild(count int, duration time.Duration, err error)

	// RecordInsert is called after each insert.
	RecordInsert(duration time.Duration)

	// RecordDelete is called after each delete. found reports whether a live
	// point was tombstoned.
	RecordDelete(found bool, duration time.Duration, err error)

	// RecordRebuild is called for every local subtree rebuild.
	RecordRebuild(reason string, nodes, live int)

	// RecordSave is called after each snapshot write.
	RecordSave(bytes int, duration time.Duration, err error)

	// RecordLoad is called after each snapshot read.
	RecordLoad(bytes int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, time.Duration, error)   {}
func (NoopMetricsCollector) RecordInsert(time.Duration)              {}
func (NoopMetricsCollector) RecordDelete(bool, time.Duration, error) {}
func (NoopMetricsCollector) RecordRebuild(string, int, int)          {}
func (NoopMetricsCollector) RecordSave(int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordLoad(int, time.Duration, error)    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount        atomic.Int64
	BuildErrors       atomic.Int64
	BuildPoints       atomic.Int64
	InsertCount       atomic.Int64
	InsertTotalNanos  atomic.Int64
	DeleteCount       atomic.Int64
	DeleteMisses      atomic.Int64
	DeleteErrors      atomic.Int64
	RebuildCount      atomic.Int64
	RebuildImbalance  atomic.Int64
	RebuildTombstones atomic.Int64
	RebuildNodes      atomic.Int64
	RebuildDiscarded  atomic.Int64
	SaveCount         atomic.Int64
	SaveErrors        atomic.Int64
	SaveBytes         atomic.Int64
	LoadCount         atomic.Int64
	LoadErrors        atomic.Int64
	LoadBytes         atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(count int, _ time.Duration, err error) {
	b.BuildCount.Add(1)
	if err != nil {
		b.BuildErrors.Add(1)
		return
	}
	b.BuildPoints.Add(int64(count))
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
}

// RecordDelete implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDelete(found bool, _ time.Duration, err error) {
	b.DeleteCount.Add(1)
	switch {
	case err != nil:
		b.DeleteErrors.Add(1)
	case !found:
		b.DeleteMisses.Add(1)
	}
}

// RecordRebuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRebuild(reason string, nodes, live int) {
	b.RebuildCount.Add(1)
	b.RebuildNodes.Add(int64(nodes))
	b.RebuildDiscarded.Add(int64(nodes - live))
	switch reason {
	case string(RebuildImbalance):
		b.RebuildImbalance.Add(1)
	case string(RebuildTombstones):
		b.RebuildTombstones.Add(1)
	}
}

// RecordSave implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSave(bytes int, _ time.Duration, err error) {
	b.SaveCount.Add(1)
	if err != nil {
		b.SaveErrors.Add(1)
		return
	}
	b.SaveBytes.Add(int64(bytes))
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(bytes int, _ time.Duration, err error) {
	b.LoadCount.Add(1)
	if err != nil {
		b.LoadErrors.Add(1)
		return
	}
	b.LoadBytes.Add(int64(bytes))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:        b.BuildCount.Load(),
		BuildErrors:       b.BuildErrors.Load(),
		BuildPoints:       b.BuildPoints.Load(),
		InsertCount:       b.InsertCount.Load(),
		InsertAvgNanos:    b.getAvgInsertNanos(),
		DeleteCount:       b.DeleteCount.Load(),
		DeleteMisses:      b.DeleteMisses.Load(),
		DeleteErrors:      b.DeleteErrors.Load(),
		RebuildCount:      b.RebuildCount.Load(),
		RebuildImbalance:  b.RebuildImbalance.Load(),
		RebuildTombstones: b.RebuildTombstones.Load(),
		RebuildNodes:      b.RebuildNodes.Load(),
		RebuildDiscarded:  b.RebuildDiscarded.Load(),
		SaveCount:         b.SaveCount.Load(),
		SaveErrors:        b.SaveErrors.Load(),
		SaveBytes:         b.SaveBytes.Load(),
		LoadCount:         b.LoadCount.Load(),
		LoadErrors:        b.LoadErrors.Load(),
		LoadBytes:         b.LoadBytes.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgInsertNanos() int64 {
	count := b.InsertCount.Load()
	if count == 0 {
		return 0
	}
	return b.InsertTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount        int64
	BuildErrors       int64
	BuildPoints       int64
	InsertCount       int64
	InsertAvgNanos    int64
	DeleteCount       int64
	DeleteMisses      int64
	DeleteErrors      int64
	RebuildCount      int64
	RebuildImbalance  int64
	RebuildTombstones int64
	RebuildNodes      int64
	RebuildDiscarded  int64
	SaveCount         int64
	SaveErrors        int64
	SaveBytes         int64
	LoadCount         int64
	LoadErrors        int64
	LoadBytes         int64
}
