package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	repositoryQueryTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lat",
		Subsystem: "repository",
		Name:      "query_total",
		Help:      "Count of event repository operations.",
	}, []string{"operation", "status"})

	repositoryQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lat",
		Subsystem: "repository",
		Name:      "query_duration_seconds",
		Help:      "Duration of event repository operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// Repository tracks ClickHouse event repository metrics.
type Repository struct{}

// NewRepository constructs a Repository observer.
func NewRepository() *Repository {
	return &Repository{}
}

// Observe records one repository operation.
func (Repository) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	repositoryQueryTotal.WithLabelValues(operation, status).Inc()
	repositoryQueryDuration.WithLabelValues(operation, status).
		Observe(time.Since(started).Seconds())
}
