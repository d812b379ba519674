package app

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dshills/projterm/internal/input"
)

// Metrics accumulates projection and repaint timings.
type Metrics struct {
	eventCount     atomic.Uint64
	projectTotalNs atomic.Int64
	repaintTotalNs atomic.Int64
	projectMaxNs   atomic.Int64
	repaintMaxNs   atomic.Int64
	lastProjectNs  atomic.Int64
	lastRepaintNs  atomic.Int64
	reloadCount    atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordEvent records the timings of one handled event.
func (m *Metrics) RecordEvent(project, repaint time.Duration) {
	m.eventCount.Add(1)
	m.projectTotalNs.Add(project.Nanoseconds())
	m.repaintTotalNs.Add(repaint.Nanoseconds())
	m.lastProjectNs.Store(project.Nanoseconds())
	m.lastRepaintNs.Store(repaint.Nanoseconds())
	storeMax(&m.projectMaxNs, project.Nanoseconds())
	storeMax(&m.repaintMaxNs, repaint.Nanoseconds())
}

// RecordReload records a successful configuration reload.
func (m *Metrics) RecordReload() {
	m.reloadCount.Add(1)
}

func storeMax(v *atomic.Int64, ns int64) {
	for {
		old := v.Load()
		if ns <= old {
			return
		}
		if v.CompareAndSwap(old, ns) {
			return
		}
	}
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	count := m.eventCount.Load()

	var avgProject, avgRepaint int64
	if count > 0 {
		avgProject = m.projectTotalNs.Load() / int64(count)
		avgRepaint = m.repaintTotalNs.Load() / int64(count)
	}

	return MetricsSnapshot{
		Uptime:        time.Since(m.startTime),
		EventCount:    count,
		ReloadCount:   m.reloadCount.Load(),
		AvgProjectNs:  avgProject,
		AvgRepaintNs:  avgRepaint,
		MaxProjectNs:  m.projectMaxNs.Load(),
		MaxRepaintNs:  m.repaintMaxNs.Load(),
		LastProjectNs: m.lastProjectNs.Load(),
		LastRepaintNs: m.lastRepaintNs.Load(),
	}
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime        time.Duration
	EventCount    uint64
	ReloadCount   uint64
	AvgProjectNs  int64
	AvgRepaintNs  int64
	MaxProjectNs  int64
	MaxRepaintNs  int64
	LastProjectNs int64
	LastRepaintNs int64
}

// Measurement returns the last timings as the event the editor shows in
// its status bar.
func (s MetricsSnapshot) Measurement() input.MeasurementEvent {
	return input.MeasurementEvent{
		ProjectMs: time.Duration(s.LastProjectNs).Milliseconds(),
		RepaintMs: time.Duration(s.LastRepaintNs).Milliseconds(),
	}
}

// Summary formats the snapshot as one log line.
func (s MetricsSnapshot) Summary() string {
	return fmt.Sprintf("uptime=%s events=%d reloads=%d project avg=%s max=%s repaint avg=%s max=%s",
		s.Uptime.Round(time.Millisecond), s.EventCount, s.ReloadCount,
		time.Duration(s.AvgProjectNs), time.Duration(s.MaxProjectNs),
		time.Duration(s.AvgRepaintNs), time.Duration(s.MaxRepaintNs))
}

// Timer provides a simple way to measure elapsed time.
type Timer struct {
	start time.Time
}

// StartTimer creates a new timer.
func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the elapsed time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Stop returns the elapsed time and resets the timer.
func (t *Timer) Stop() time.Duration {
	elapsed := t.Elapsed()
	t.start = time.Now()
	return elapsed
}

// Metrics returns the application's metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}
