package service

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the HTTP
// surface and the scheduling runs.
type MetricsService struct {
	registry *prometheus.Registry
	handler  http.Handler

	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec

	runsTotal          prometheus.Counter
	runDuration        prometheus.Histogram
	studentsAssigned   prometheus.Gauge
	studentsUnassigned prometheus.Gauge
	lessonsByType      *prometheus.GaugeVec
}

// NewMetricsService registers the collectors on a private registry.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	runsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scheduling_runs_total",
		Help: "Total number of completed scheduling runs",
	})

	runDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "scheduling_run_duration_seconds",
		Help:    "Duration of a full scheduling run",
		Buckets: prometheus.DefBuckets,
	})

	studentsAssigned := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "scheduling_students_assigned",
		Help: "Students placed into scheduled lessons by the last run",
	})

	studentsUnassigned := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "scheduling_students_unassigned",
		Help: "Students left in fallback records by the last run",
	})

	lessonsByType := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "scheduling_lessons",
		Help: "Lessons produced by the last run, by lesson type",
	}, []string{"type"})

	registry.MustRegister(requestDuration, requestTotal, runsTotal, runDuration,
		studentsAssigned, studentsUnassigned, lessonsByType)

	return &MetricsService{
		registry:           registry,
		handler:            promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration:    requestDuration,
		requestTotal:       requestTotal,
		runsTotal:          runsTotal,
		runDuration:        runDuration,
		studentsAssigned:   studentsAssigned,
		studentsUnassigned: studentsUnassigned,
		lessonsByType:      lessonsByType,
	}
}

// Handler exposes the registry for the /metrics endpoint.
func (m *MetricsService) Handler() http.Handler {
	return m.handler
}

// ObserveHTTPRequest records one served request.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	labels := []string{method, path, strconv.Itoa(status)}
	m.requestDuration.WithLabelValues(labels...).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(labels...).Inc()
}

// ObserveRun records the outcome of one scheduling run.
func (m *MetricsService) ObserveRun(duration time.Duration, assigned, unassigned int, lessonsByType map[string]int) {
	m.runsTotal.Inc()
	m.runDuration.Observe(duration.Seconds())
	m.studentsAssigned.Set(float64(assigned))
	m.studentsUnassigned.Set(float64(unassigned))
	m.lessonsByType.Reset()
	for lessonType, count := range lessonsByType {
		m.lessonsByType.WithLabelValues(lessonType).Set(float64(count))
	}
}
