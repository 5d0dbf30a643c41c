package prometheus

import (
	"time"

	"orphanage-service/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Orphanage metrics
	OrphanageOperationsCounter prometheus.CounterVec

	// Upload metrics
	ImagesUploadedCounter prometheus.Counter
	ValidationFailures    prometheus.Counter
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Database operation metrics
	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	// Orphanage metrics
	OrphanageOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_operations_total",
			Help: "Total number of orphanage operations",
		},
		[]string{"operation"},
	)

	// Upload metrics
	ImagesUploadedCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_images_uploaded_total",
			Help: "Total number of image files stored",
		},
	)

	ValidationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_validation_failures_total",
			Help: "Total number of rejected creation payloads",
		},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordOrphanageOperation increments the counter for orphanage operations
func RecordOrphanageOperation(operation string) {
	OrphanageOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordImagesUploaded adds the number of image files stored by a request
func RecordImagesUploaded(count int) {
	ImagesUploadedCounter.Add(float64(count))
}

// RecordValidationFailure increments the counter for rejected payloads
func RecordValidationFailure() {
	ValidationFailures.Inc()
}
