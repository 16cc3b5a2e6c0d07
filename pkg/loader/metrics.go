package loader

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Load results.
const (
	resultLoaded = "loaded"
	resultCached = "cached"
	resultFailed = "failed"
)

// Metrics holds the loader's Prometheus metrics. A nil *Metrics records
// nothing.
type Metrics struct {
	Loads           *prometheus.CounterVec
	ResidentModules prometheus.Gauge
	InfoQueries     prometheus.Counter
	WatchEvents     *prometheus.CounterVec
}

// NewMetrics creates loader metrics registered with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Loads: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "hyscan",
				Subsystem: "driver",
				Name:      "loads_total",
				Help:      "Driver load attempts by result",
			},
			[]string{"result"},
		),
		ResidentModules: f.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "hyscan",
				Subsystem: "driver",
				Name:      "resident_modules",
				Help:      "Number of driver modules kept resident",
			},
		),
		InfoQueries: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: "hyscan",
				Subsystem: "driver",
				Name:      "info_queries_total",
				Help:      "Driver info queries",
			},
		),
		WatchEvents: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "hyscan",
				Subsystem: "driver",
				Name:      "watch_events_total",
				Help:      "Driver directory changes by operation",
			},
			[]string{"op"},
		),
	}
}

func (m *Metrics) loadResult(result string) {
	if m != nil {
		m.Loads.WithLabelValues(result).Inc()
	}
}

func (m *Metrics) setResident(n int) {
	if m != nil {
		m.ResidentModules.Set(float64(n))
	}
}

func (m *Metrics) infoQuery() {
	if m != nil {
		m.InfoQueries.Inc()
	}
}

func (m *Metrics) watchEvent(op string) {
	if m != nil {
		m.WatchEvents.WithLabelValues(op).Inc()
	}
}
