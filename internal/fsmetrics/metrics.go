// Package fsmetrics instruments the engine's own lifecycle: a counter/
// gauge/timer collector that Build/Add/Remove/Search record against
// and that a host can read back through Engine.Metrics() for its own
// observability stack, per spec.md §6's "host publishes metrics"
// framing. It owns no goroutines and no global state beyond what a
// caller explicitly constructs, matching the engine's single-writer,
// synchronous concurrency model (spec.md §5).
package fsmetrics

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// MetricType distinguishes the three primitives a MetricsCollector
// tracks.
type MetricType string

const (
	MetricTypeCounter MetricType = "counter"
	MetricTypeGauge   MetricType = "gauge"
	MetricTypeTimer   MetricType = "timer"
)

// Metric is one flattened measurement, as returned by
// MetricsCollector.GetAllMetrics.
type Metric struct {
	Name      string            `json:"name"`
	Type      MetricType        `json:"type"`
	Value     float64           `json:"value"`
	Unit      string            `json:"unit"`
	Timestamp time.Time         `json:"timestamp"`
	Tags      map[string]string `json:"tags,omitempty"`
}

// Counter is a monotonically increasing count (document totals,
// search calls, cache hits/misses).
type Counter struct {
	value int64
	name  string
	tags  map[string]string
}

// NewCounter constructs a standalone counter, starting at zero.
func NewCounter(name string, tags map[string]string) *Counter {
	return &Counter{name: name, tags: tags}
}

func (c *Counter) Inc()            { atomic.AddInt64(&c.value, 1) }
func (c *Counter) Add(delta int64) { atomic.AddInt64(&c.value, delta) }
func (c *Counter) Value() int64    { return atomic.LoadInt64(&c.value) }
func (c *Counter) Reset()          { atomic.StoreInt64(&c.value, 0) }

// Gauge is a point-in-time value that moves up and down (live document
// count, result-set size). Stored fixed-point (three decimal places)
// so reads/writes stay atomic without a mutex.
type Gauge struct {
	value int64
	name  string
	tags  map[string]string
}

// NewGauge constructs a standalone gauge, starting at zero.
func NewGauge(name string, tags map[string]string) *Gauge {
	return &Gauge{name: name, tags: tags}
}

func (g *Gauge) Set(v float64)   { atomic.StoreInt64(&g.value, int64(v*1000)) }
func (g *Gauge) Inc()            { atomic.AddInt64(&g.value, 1000) }
func (g *Gauge) Dec()            { atomic.AddInt64(&g.value, -1000) }
func (g *Gauge) Add(delta float64) { atomic.AddInt64(&g.value, int64(delta*1000)) }
func (g *Gauge) Value() float64  { return float64(atomic.LoadInt64(&g.value)) / 1000.0 }

// durationBuckets are the histogram edges a Timer sorts its
// observations into, in milliseconds; the last bucket is an overflow
// bucket for anything slower.
var durationBuckets = []float64{0.1, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000}

// durationHistogram accumulates one Timer's observed durations well
// enough to answer count/sum/mean/percentile queries, without keeping
// every sample around.
type durationHistogram struct {
	mu     sync.Mutex
	counts []int64
	sum    float64
	count  int64
}

func newDurationHistogram() *durationHistogram {
	return &durationHistogram{counts: make([]int64, len(durationBuckets)+1)}
}

func (h *durationHistogram) observe(ms float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sum += ms
	h.count++
	for i, edge := range durationBuckets {
		if ms <= edge {
			h.counts[i]++
			return
		}
	}
	h.counts[len(durationBuckets)]++
}

// stats returns count, sum, mean, and the 50/90/95/99th percentiles
// (bucket-edge approximations, not exact), all under one lock so the
// snapshot is internally consistent.
func (h *durationHistogram) stats() (count int64, sum, mean float64, pcts map[float64]float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	count, sum = h.count, h.sum
	if count > 0 {
		mean = sum / float64(count)
	}
	pcts = make(map[float64]float64, 4)
	for _, p := range []float64{50, 90, 95, 99} {
		pcts[p] = h.percentileLocked(p)
	}
	return
}

func (h *durationHistogram) percentileLocked(p float64) float64 {
	if h.count == 0 {
		return 0
	}
	target := int64(float64(h.count) * p / 100.0)
	var cumulative int64
	for i, c := range h.counts {
		cumulative += c
		if cumulative >= target {
			if i < len(durationBuckets) {
				return durationBuckets[i]
			}
			return durationBuckets[len(durationBuckets)-1]
		}
	}
	return 0
}

// Timer measures one named operation's wall-clock duration across
// repeated calls and reports its distribution through
// MetricsCollector.GetAllMetrics.
type Timer struct {
	hist *durationHistogram
	name string
	tags map[string]string
}

// NewTimer constructs a standalone timer.
func NewTimer(name string, tags map[string]string) *Timer {
	return &Timer{hist: newDurationHistogram(), name: name, tags: tags}
}

// Time starts the clock and returns a function that records the
// elapsed duration when called; the idiom is `defer timer.Time()()`.
func (t *Timer) Time() func() {
	start := time.Now()
	return func() {
		t.hist.observe(float64(time.Since(start).Nanoseconds()) / 1e6)
	}
}

// MetricsCollector owns every counter, gauge, and timer one engine
// instance records, keyed by name+tags, and renders them as a flat
// Metric slice on demand.
type MetricsCollector struct {
	mu       sync.RWMutex
	counters map[string]*Counter
	gauges   map[string]*Gauge
	timers   map[string]*Timer
}

// NewMetricsCollector constructs an empty collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		counters: make(map[string]*Counter),
		gauges:   make(map[string]*Gauge),
		timers:   make(map[string]*Timer),
	}
}

// Counter gets or creates the named+tagged counter.
func (mc *MetricsCollector) Counter(name string, tags map[string]string) *Counter {
	key := metricKey(name, tags)

	mc.mu.RLock()
	if c, ok := mc.counters[key]; ok {
		mc.mu.RUnlock()
		return c
	}
	mc.mu.RUnlock()

	mc.mu.Lock()
	defer mc.mu.Unlock()
	if c, ok := mc.counters[key]; ok {
		return c
	}
	c := NewCounter(name, tags)
	mc.counters[key] = c
	return c
}

// Gauge gets or creates the named+tagged gauge.
func (mc *MetricsCollector) Gauge(name string, tags map[string]string) *Gauge {
	key := metricKey(name, tags)

	mc.mu.RLock()
	if g, ok := mc.gauges[key]; ok {
		mc.mu.RUnlock()
		return g
	}
	mc.mu.RUnlock()

	mc.mu.Lock()
	defer mc.mu.Unlock()
	if g, ok := mc.gauges[key]; ok {
		return g
	}
	g := NewGauge(name, tags)
	mc.gauges[key] = g
	return g
}

// Timer gets or creates the named+tagged timer.
func (mc *MetricsCollector) Timer(name string, tags map[string]string) *Timer {
	key := metricKey(name, tags)

	mc.mu.RLock()
	if t, ok := mc.timers[key]; ok {
		mc.mu.RUnlock()
		return t
	}
	mc.mu.RUnlock()

	mc.mu.Lock()
	defer mc.mu.Unlock()
	if t, ok := mc.timers[key]; ok {
		return t
	}
	t := NewTimer(name, tags)
	mc.timers[key] = t
	return t
}

// GetAllMetrics flattens every counter, gauge, and timer into Metric
// records. A timer expands into three records (_count, _sum_ms,
// _mean_ms) plus one per tracked percentile (_pNN_ms).
func (mc *MetricsCollector) GetAllMetrics() []Metric {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	now := time.Now()
	var out []Metric

	for _, c := range mc.counters {
		out = append(out, Metric{Name: c.name, Type: MetricTypeCounter, Value: float64(c.Value()), Unit: "count", Timestamp: now, Tags: c.tags})
	}
	for _, g := range mc.gauges {
		out = append(out, Metric{Name: g.name, Type: MetricTypeGauge, Value: g.Value(), Unit: "value", Timestamp: now, Tags: g.tags})
	}
	for _, t := range mc.timers {
		count, sum, mean, pcts := t.hist.stats()
		out = append(out,
			Metric{Name: t.name + "_count", Type: MetricTypeTimer, Value: float64(count), Unit: "count", Timestamp: now, Tags: t.tags},
			Metric{Name: t.name + "_sum_ms", Type: MetricTypeTimer, Value: sum, Unit: "ms", Timestamp: now, Tags: t.tags},
			Metric{Name: t.name + "_mean_ms", Type: MetricTypeTimer, Value: mean, Unit: "ms", Timestamp: now, Tags: t.tags},
		)
		for _, p := range []float64{50, 90, 95, 99} {
			out = append(out, Metric{
				Name:      fmt.Sprintf("%s_p%.0f_ms", t.name, p),
				Type:      MetricTypeTimer,
				Value:     pcts[p],
				Unit:      "ms",
				Timestamp: now,
				Tags:      t.tags,
			})
		}
	}
	return out
}

// metricKey folds a name and its tags into one map key; tag iteration
// order is map order, which is fine since the key only needs to be
// stable within one process run, not across runs.
func metricKey(name string, tags map[string]string) string {
	if len(tags) == 0 {
		return name
	}
	key := name
	for k, v := range tags {
		key += ":" + k + "=" + v
	}
	return key
}
