package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the Prometheus instruments of the query service.
// Construct it once per process; promauto registers on the default
// registry and a second New would panic on duplicate registration.
type Metrics struct {
	QueriesTotal  *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec

	CatalogBuilds        prometheus.Counter
	CatalogBuildDuration prometheus.Histogram
	CatalogTools         prometheus.Gauge
	CatalogContainers    prometheus.Gauge
}

func New() *Metrics {
	return &Metrics{
		QueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "biofinder_queries_total",
			Help: "Total queries served, by operation and outcome.",
		}, []string{"op", "outcome"}),
		QueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "biofinder_query_duration_seconds",
			Help:    "Query handling latency, by operation.",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
		CatalogBuilds: promauto.NewCounter(prometheus.CounterOpts{
			Name: "biofinder_catalog_builds_total",
			Help: "Catalog rebuilds since process start.",
		}),
		CatalogBuildDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "biofinder_catalog_build_duration_seconds",
			Help:    "Time spent loading sources and building the catalog.",
			Buckets: prometheus.DefBuckets,
		}),
		CatalogTools: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "biofinder_catalog_tools",
			Help: "Tool metadata records in the current catalog.",
		}),
		CatalogContainers: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "biofinder_catalog_containers",
			Help: "Container records in the current catalog.",
		}),
	}
}

// ObserveQuery records one served query. Safe on a nil receiver so
// callers wired without metrics need no guard.
func (m *Metrics) ObserveQuery(op, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.QueriesTotal.WithLabelValues(op, outcome).Inc()
	m.QueryDuration.WithLabelValues(op).Observe(d.Seconds())
}

// ObserveCatalogBuild records one catalog rebuild.
func (m *Metrics) ObserveCatalogBuild(tools, containers int, d time.Duration) {
	if m == nil {
		return
	}
	m.CatalogBuilds.Inc()
	m.CatalogBuildDuration.Observe(d.Seconds())
	m.CatalogTools.Set(float64(tools))
	m.CatalogContainers.Set(float64(containers))
}
