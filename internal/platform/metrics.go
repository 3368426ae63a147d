package platform

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts loop activity in its own registry. Nothing is served;
// WriteTextfile dumps the registry for a node_exporter textfile collector
// or a CI artifact.
type Metrics struct {
	registry *prometheus.Registry

	ticks         prometheus.Counter
	rejected      prometheus.Counter
	captures      prometheus.Counter
	cellsCaptured prometheus.Counter
	levelsCleared prometheus.Counter
	runs          *prometheus.CounterVec
	fill          prometheus.Gauge
	level         prometheus.Gauge
	tickDuration  prometheus.Histogram
}

// NewMetrics creates the metric set on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		ticks: f.NewCounter(prometheus.CounterOpts{
			Name: "axion_ticks_total",
			Help: "Simulation ticks run",
		}),
		rejected: f.NewCounter(prometheus.CounterOpts{
			Name: "axion_moves_rejected_total",
			Help: "Direction changes rejected as reversals",
		}),
		captures: f.NewCounter(prometheus.CounterOpts{
			Name: "axion_captures_total",
			Help: "Closed trails",
		}),
		cellsCaptured: f.NewCounter(prometheus.CounterOpts{
			Name: "axion_cells_captured_total",
			Help: "Cells turned to filled by captures, trail included",
		}),
		levelsCleared: f.NewCounter(prometheus.CounterOpts{
			Name: "axion_levels_cleared_total",
			Help: "Levels won",
		}),
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "axion_runs_total",
			Help: "Recorded runs by outcome",
		}, []string{"outcome"}),
		fill: f.NewGauge(prometheus.GaugeOpts{
			Name: "axion_fill_percent",
			Help: "Filled share of the current board",
		}),
		level: f.NewGauge(prometheus.GaugeOpts{
			Name: "axion_level",
			Help: "Current level",
		}),
		tickDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "axion_tick_duration_seconds",
			Help:    "Time spent in Game.Tick",
			Buckets: []float64{0.00001, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),
	}
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes all metrics in the Prometheus text format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("platform: cannot write metrics: %w", err)
	}
	return nil
}
