package infrastructure

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherwidget.app/internal/ports"
)

// StoreStatsSource exposes hit/miss counters of a session store backend
type StoreStatsSource interface {
	GetStats() ports.StoreStats
}

// PrometheusMetricsCollector implements the MetricsCollector port on a
// private registry, so several instances can coexist in one process.
type PrometheusMetricsCollector struct {
	registry *prometheus.Registry

	apiCalls    *prometheus.CounterVec
	apiLatency  *prometheus.HistogramVec
	staleDrops  *prometheus.CounterVec
	noticesSent *prometheus.CounterVec
}

// NewPrometheusMetricsCollector registers the widget metrics plus Go runtime collectors
func NewPrometheusMetricsCollector() *PrometheusMetricsCollector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &PrometheusMetricsCollector{
		registry: registry,
		apiCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_api_requests_total",
				Help: "The total number of upstream weather API requests",
			},
			[]string{"provider", "operation", "success"},
		),
		apiLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "weather_api_request_duration_seconds",
				Help:    "Upstream weather API request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider", "operation"},
		),
		staleDrops: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "widget_stale_responses_total",
				Help: "Responses discarded because a newer request was issued",
			},
			[]string{"operation"},
		),
		noticesSent: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "widget_notices_total",
				Help: "User notices raised by the widget",
			},
			[]string{"level"},
		),
	}
}

func (m *PrometheusMetricsCollector) RecordWeatherAPICall(provider, operation string, success bool, duration time.Duration) {
	m.apiCalls.WithLabelValues(provider, operation, strconv.FormatBool(success)).Inc()
	m.apiLatency.WithLabelValues(provider, operation).Observe(duration.Seconds())
}

func (m *PrometheusMetricsCollector) RecordStaleResponse(operation string) {
	m.staleDrops.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetricsCollector) RecordNotice(level string) {
	m.noticesSent.WithLabelValues(level).Inc()
}

// RegisterStoreStats exports the store's counters, read at scrape time
func (m *PrometheusMetricsCollector) RegisterStoreStats(storeType string, source StoreStatsSource) error {
	labels := prometheus.Labels{"store_type": storeType}

	metrics := []prometheus.Collector{
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name:        "widget_store_hits_total",
			Help:        "Session store lookups that found a value",
			ConstLabels: labels,
		}, func() float64 { return float64(source.GetStats().Hits) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name:        "widget_store_misses_total",
			Help:        "Session store lookups that found nothing",
			ConstLabels: labels,
		}, func() float64 { return float64(source.GetStats().Misses) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name:        "widget_store_hit_ratio",
			Help:        "Session store hit ratio (hits/total lookups)",
			ConstLabels: labels,
		}, func() float64 { return source.GetStats().HitRatio }),
	}

	for _, metric := range metrics {
		if err := m.registry.Register(metric); err != nil {
			return err
		}
	}
	return nil
}

// Registry returns the registry backing this collector
func (m *PrometheusMetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *PrometheusMetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
