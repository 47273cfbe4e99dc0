package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the API
// and the conflict-scan hot path.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	scanDuration    prometheus.Observer
	scanTotal       prometheus.Counter
	scanSections    prometheus.Counter
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
}

// NewMetricsService registers core Prometheus collectors.
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

	scanDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "catalog_scan_duration_seconds",
		Help:    "Duration of open-alternatives catalog scans",
		Buckets: prometheus.DefBuckets,
	})

	scanTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "catalog_scans_total",
		Help: "Total open-alternatives catalog scans",
	})

	scanSections := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "catalog_scan_sections_total",
		Help: "Total sections examined across scans",
	})

	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scan_cache_hits_total",
		Help: "Total scan cache hits",
	})

	cacheMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scan_cache_misses_total",
		Help: "Total scan cache misses",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, scanDuration, scanTotal, scanSections, cacheHits, cacheMisses, goroutines)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		scanDuration:    scanDuration,
		scanTotal:       scanTotal,
		scanSections:    scanSections,
		cacheHits:       cacheHits,
		cacheMisses:     cacheMisses,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// ObserveCatalogScan records one open-alternatives scan.
func (m *MetricsService) ObserveCatalogScan(sections int, duration time.Duration) {
	if m == nil {
		return
	}
	m.scanTotal.Inc()
	m.scanSections.Add(float64(sections))
	m.scanDuration.Observe(duration.Seconds())
}

// RecordCacheOperation records a scan-cache hit or miss.
func (m *MetricsService) RecordCacheOperation(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.cacheHits.Inc()
	} else {
		m.cacheMisses.Inc()
	}
}
