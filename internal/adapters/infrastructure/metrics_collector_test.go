package infrastructure

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherwidget.app/internal/ports"
)

func gatherFamily(t *testing.T, collector *PrometheusMetricsCollector, name string) *dto.MetricFamily {
	t.Helper()

	families, err := collector.Registry().Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() == name {
			return family
		}
	}
	t.Fatalf("metric family %s not gathered", name)
	return nil
}

func labelValue(metric *dto.Metric, name string) string {
	for _, label := range metric.GetLabel() {
		if label.GetName() == name {
			return label.GetValue()
		}
	}
	return ""
}

func TestPrometheusMetricsCollector_WeatherAPICalls(t *testing.T) {
	collector := NewPrometheusMetricsCollector()

	collector.RecordWeatherAPICall("openweathermap", "current", true, 120*time.Millisecond)
	collector.RecordWeatherAPICall("openweathermap", "current", true, 80*time.Millisecond)
	collector.RecordWeatherAPICall("openweathermap", "forecast", false, time.Second)

	calls := gatherFamily(t, collector, "weather_api_requests_total")
	counts := map[string]float64{}
	for _, metric := range calls.GetMetric() {
		key := labelValue(metric, "operation") + "/" + labelValue(metric, "success")
		counts[key] = metric.GetCounter().GetValue()
	}
	assert.Equal(t, map[string]float64{"current/true": 2, "forecast/false": 1}, counts)

	latency := gatherFamily(t, collector, "weather_api_request_duration_seconds")
	var observations uint64
	for _, metric := range latency.GetMetric() {
		observations += metric.GetHistogram().GetSampleCount()
	}
	assert.Equal(t, uint64(3), observations)
}

func TestPrometheusMetricsCollector_StaleResponsesAndNotices(t *testing.T) {
	collector := NewPrometheusMetricsCollector()

	collector.RecordStaleResponse("current")
	collector.RecordStaleResponse("current")
	collector.RecordNotice("error")

	stale := gatherFamily(t, collector, "widget_stale_responses_total")
	require.Len(t, stale.GetMetric(), 1)
	assert.Equal(t, "current", labelValue(stale.GetMetric()[0], "operation"))
	assert.Equal(t, float64(2), stale.GetMetric()[0].GetCounter().GetValue())

	notices := gatherFamily(t, collector, "widget_notices_total")
	require.Len(t, notices.GetMetric(), 1)
	assert.Equal(t, float64(1), notices.GetMetric()[0].GetCounter().GetValue())
}

type fixedStats ports.StoreStats

func (f fixedStats) GetStats() ports.StoreStats { return ports.StoreStats(f) }

func TestPrometheusMetricsCollector_StoreStats(t *testing.T) {
	collector := NewPrometheusMetricsCollector()

	require.NoError(t, collector.RegisterStoreStats("memory", fixedStats{Hits: 3, Misses: 1, TotalOps: 4, HitRatio: 0.75}))

	hits := gatherFamily(t, collector, "widget_store_hits_total")
	assert.Equal(t, float64(3), hits.GetMetric()[0].GetCounter().GetValue())
	assert.Equal(t, "memory", labelValue(hits.GetMetric()[0], "store_type"))

	ratio := gatherFamily(t, collector, "widget_store_hit_ratio")
	assert.Equal(t, 0.75, ratio.GetMetric()[0].GetGauge().GetValue())

	assert.Error(t, collector.RegisterStoreStats("memory", fixedStats{}), "duplicate registration")
}

func TestPrometheusMetricsCollector_IndependentRegistries(t *testing.T) {
	first := NewPrometheusMetricsCollector()
	second := NewPrometheusMetricsCollector()

	first.RecordNotice("info")

	families, err := second.Registry().Gather()
	require.NoError(t, err)
	for _, family := range families {
		assert.NotEqual(t, "widget_notices_total", family.GetName())
	}
}

func TestPrometheusMetricsCollector_Handler(t *testing.T) {
	collector := NewPrometheusMetricsCollector()
	collector.RecordStaleResponse("forecast")

	recorder := httptest.NewRecorder()
	collector.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `widget_stale_responses_total{operation="forecast"} 1`)
}
