package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type ServerMetrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	documentsTotal    *prometheus.CounterVec
	stageDuration     *prometheus.HistogramVec
	structurerMode    *prometheus.GaugeVec
	storeOperations   *prometheus.CounterVec
	warningsPerResult prometheus.Histogram
}

func NewServerMetrics(service string) *ServerMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docstruct",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "docstruct",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "docstruct",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	documentsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docstruct",
			Subsystem: "pipeline",
			Name:      "documents_total",
			Help:      "Total documents processed by MIME type and outcome.",
		},
		[]string{"service", "mime_type", "status"},
	)
	stageDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "docstruct",
			Subsystem: "pipeline",
			Name:      "stage_duration_seconds",
			Help:      "Pipeline stage duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "stage"},
	)
	structurerMode := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "docstruct",
			Subsystem: "pipeline",
			Name:      "structurer_mode",
			Help:      "Active structuring strategy (1 for the selected mode).",
		},
		[]string{"service", "mode"},
	)
	storeOperations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docstruct",
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Total record store operations by kind and outcome.",
		},
		[]string{"service", "operation", "status"},
	)
	warningsPerResult := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "docstruct",
			Subsystem: "pipeline",
			Name:      "warnings_per_result",
			Help:      "Distribution of completeness warnings per processed document.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8},
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		documentsTotal,
		stageDuration,
		structurerMode,
		storeOperations,
		warningsPerResult,
	)

	return &ServerMetrics{
		registry:          registry,
		requestTotal:      requestTotal,
		requestDuration:   requestDuration,
		requestInFlight:   requestInFlight,
		documentsTotal:    documentsTotal,
		stageDuration:     stageDuration,
		structurerMode:    structurerMode,
		storeOperations:   storeOperations,
		warningsPerResult: warningsPerResult,
	}
}

func (m *ServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *ServerMetrics) Middleware(service string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path := normalizePath(r.URL.Path)
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(recorder, r)

		m.requestTotal.WithLabelValues(
			service,
			r.Method,
			path,
			strconv.Itoa(recorder.statusCode),
		).Inc()
		m.requestDuration.WithLabelValues(service, r.Method, path).Observe(time.Since(start).Seconds())
	})
}

func normalizePath(path string) string {
	switch {
	case strings.HasPrefix(path, "/v1/records/"):
		return "/v1/records/{record_id}"
	default:
		return path
	}
}

func (m *ServerMetrics) RecordDocument(service, mimeType, status string, warnings int, duration time.Duration) {
	if mimeType == "" {
		mimeType = "unknown"
	}
	m.documentsTotal.WithLabelValues(service, mimeType, status).Inc()
	m.stageDuration.WithLabelValues(service, "pipeline").Observe(duration.Seconds())
	if status == "ok" {
		m.warningsPerResult.Observe(float64(warnings))
	}
}

func (m *ServerMetrics) SetStructurerMode(service, mode string) {
	m.structurerMode.WithLabelValues(service, mode).Set(1)
}

func (m *ServerMetrics) RecordStoreOperation(service, operation, status string) {
	m.storeOperations.WithLabelValues(service, operation, status).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}
