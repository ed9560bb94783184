package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	withdrawalRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lat",
		Subsystem: "withdrawal",
		Name:      "requests_total",
		Help:      "Count of withdrawal request creations.",
	}, []string{"status"})

	withdrawalFulfillTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lat",
		Subsystem: "withdrawal",
		Name:      "fulfill_total",
		Help:      "Count of withdrawal fulfillment attempts.",
	}, []string{"status"})

	withdrawalFulfillDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lat",
		Subsystem: "withdrawal",
		Name:      "fulfill_duration_seconds",
		Help:      "Duration of fulfillment attempts including external transfers.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	withdrawalQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "lat",
		Subsystem: "withdrawal",
		Name:      "queue_depth",
		Help:      "Number of pending withdrawal requests.",
	})
)

// Withdrawal tracks request-queue metrics.
type Withdrawal struct{}

// NewWithdrawal constructs a Withdrawal observer.
func NewWithdrawal() *Withdrawal {
	return &Withdrawal{}
}

// ObserveCreate records a request creation outcome.
func (Withdrawal) ObserveCreate(err error) {
	withdrawalRequestsTotal.WithLabelValues(statusOf(err)).Inc()
}

// ObserveFulfill records a fulfillment attempt outcome and duration.
func (Withdrawal) ObserveFulfill(err error, started time.Time) {
	status := statusOf(err)
	withdrawalFulfillTotal.WithLabelValues(status).Inc()
	withdrawalFulfillDuration.WithLabelValues(status).
		Observe(time.Since(started).Seconds())
}

// SetQueueDepth records the number of live requests.
func (Withdrawal) SetQueueDepth(depth int) {
	withdrawalQueueDepth.Set(float64(depth))
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
