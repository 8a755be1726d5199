package observability

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// LatencyBounds are the upper bounds of the latency buckets. The last
// bucket counts everything slower than the final bound.
var LatencyBounds = [...]time.Duration{
	100 * time.Microsecond,
	500 * time.Microsecond,
	time.Millisecond,
	5 * time.Millisecond,
	10 * time.Millisecond,
	50 * time.Millisecond,
	100 * time.Millisecond,
	500 * time.Millisecond,
	time.Second,
}

const numBuckets = len(LatencyBounds) + 1

// Monitor aggregates per-route request counts, errors and latency. All
// methods are safe for concurrent use.
type Monitor struct {
	enabled atomic.Bool
	routes  sync.Map // route -> *routeMetrics
	global  struct {
		totalRequests atomic.Uint64
		totalErrors   atomic.Uint64
		totalDuration atomic.Uint64
	}
	startedAt time.Time
}

type routeMetrics struct {
	count          atomic.Uint64
	errors         atomic.Uint64
	totalDuration  atomic.Uint64
	minDuration    atomic.Uint64
	maxDuration    atomic.Uint64
	latencyBuckets [numBuckets]atomic.Uint64
}

// NewMonitor creates an enabled monitor
func NewMonitor() *Monitor {
	m := &Monitor{startedAt: time.Now()}
	m.enabled.Store(true)
	return m
}

// Enable turns recording on
func (m *Monitor) Enable() {
	m.enabled.Store(true)
}

// Disable turns recording off; already recorded data is kept
func (m *Monitor) Disable() {
	m.enabled.Store(false)
}

// RecordRequest records one handled request
func (m *Monitor) RecordRequest(route string, duration time.Duration, failed bool) {
	if m == nil || !m.enabled.Load() {
		return
	}

	val, _ := m.routes.LoadOrStore(route, &routeMetrics{})
	rm := val.(*routeMetrics)

	d := uint64(duration.Nanoseconds())
	rm.count.Add(1)
	if failed {
		rm.errors.Add(1)
		m.global.totalErrors.Add(1)
	}
	rm.totalDuration.Add(d)
	updateMinMax(rm, d)
	rm.latencyBuckets[bucketFor(duration)].Add(1)

	m.global.totalRequests.Add(1)
	m.global.totalDuration.Add(d)
}

func updateMinMax(rm *routeMetrics, d uint64) {
	for {
		min := rm.minDuration.Load()
		if min != 0 && d >= min {
			break
		}
		if rm.minDuration.CompareAndSwap(min, d) {
			break
		}
	}
	for {
		max := rm.maxDuration.Load()
		if d <= max {
			break
		}
		if rm.maxDuration.CompareAndSwap(max, d) {
			break
		}
	}
}

func bucketFor(d time.Duration) int {
	for i, bound := range LatencyBounds {
		if d < bound {
			return i
		}
	}
	return numBuckets - 1
}

// RouteStats is a point-in-time view of one route
type RouteStats struct {
	Route          string
	Count          uint64
	Errors         uint64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LatencyBuckets [numBuckets]uint64
}

// Snapshot is a point-in-time view of the monitor
type Snapshot struct {
	Uptime        time.Duration
	TotalRequests uint64
	TotalErrors   uint64
	AvgDuration   time.Duration
	Routes        []RouteStats
}

// Snapshot returns the current statistics, routes sorted by name
func (m *Monitor) Snapshot() Snapshot {
	snap := Snapshot{
		Uptime:        time.Since(m.startedAt),
		TotalRequests: m.global.totalRequests.Load(),
		TotalErrors:   m.global.totalErrors.Load(),
	}
	if snap.TotalRequests > 0 {
		snap.AvgDuration = time.Duration(m.global.totalDuration.Load() / snap.TotalRequests)
	}

	m.routes.Range(func(key, value any) bool {
		rm := value.(*routeMetrics)
		rs := RouteStats{
			Route:       key.(string),
			Count:       rm.count.Load(),
			Errors:      rm.errors.Load(),
			MinDuration: time.Duration(rm.minDuration.Load()),
			MaxDuration: time.Duration(rm.maxDuration.Load()),
		}
		if rs.Count > 0 {
			rs.AvgDuration = time.Duration(rm.totalDuration.Load() / rs.Count)
		}
		for i := range rm.latencyBuckets {
			rs.LatencyBuckets[i] = rm.latencyBuckets[i].Load()
		}
		snap.Routes = append(snap.Routes, rs)
		return true
	})

	sort.Slice(snap.Routes, func(i, j int) bool {
		return snap.Routes[i].Route < snap.Routes[j].Route
	})
	return snap
}
