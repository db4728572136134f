package api

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/a-bouts/great-circle/latlon"
)

type metrics struct {
	registry *prometheus.Registry
	solves   *prometheus.CounterVec
	failures prometheus.Counter
	origins  prometheus.Gauge
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gcircle_solves_total",
			Help: "Number of geodesic problems solved, by algorithm.",
		}, []string{"algorithm"}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gcircle_convergence_failures_total",
			Help: "Number of Vincenty solutions that did not converge.",
		}),
		origins: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gcircle_origins_cached",
			Help: "Number of origins held in the registry.",
		}),
	}
	m.registry.MustRegister(m.solves, m.failures, m.origins)
	return m
}

// solver counts every Vincenty run. It is what origin coordinates call on a
// cache miss, so the counter only moves for new pairs.
func (m *metrics) solver() latlon.Solver {
	return latlon.SolverFunc(func(lat1 latlon.Latitude, lon1 latlon.Longitude, lat2 latlon.Latitude, lon2 latlon.Longitude) (latlon.Solution, error) {
		m.solves.WithLabelValues(latlon.Ellipsoidal.String()).Inc()
		s, err := latlon.Vincenty(lat1, lon1, lat2, lon2)
		if errors.Is(err, latlon.ErrFailedToConverge) {
			m.failures.Inc()
		}
		return s, err
	})
}
