package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/EigenExplorer/liquid-avs-token/internal/model"
)

var (
	settlementTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lat",
		Subsystem: "redemption",
		Name:      "settlement_total",
		Help:      "Count of settlement attempts.",
	}, []string{"status"})

	settlementRequests = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lat",
		Subsystem: "redemption",
		Name:      "settlement_requests",
		Help:      "Number of withdrawal requests per settlement.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"status"})

	completeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lat",
		Subsystem: "redemption",
		Name:      "complete_total",
		Help:      "Count of redemption completion attempts.",
	}, []string{"status"})

	completeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lat",
		Subsystem: "redemption",
		Name:      "complete_duration_seconds",
		Help:      "Duration of completion attempts including external calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	completeReceipts = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lat",
		Subsystem: "redemption",
		Name:      "complete_receipts",
		Help:      "Number of receipts per completed redemption.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
	}, []string{"status"})

	slashingRatio = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lat",
		Subsystem: "redemption",
		Name:      "slashing_ratio",
		Help:      "Observed actual/expected ratio when slashing is applied.",
		Buckets:   prometheus.LinearBuckets(0, 0.05, 21),
	}, []string{"asset"})

	openRedemptions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "lat",
		Subsystem: "redemption",
		Name:      "open",
		Help:      "Number of redemptions awaiting completion.",
	})
)

// Redemption tracks settlement and redemption engine metrics.
type Redemption struct{}

// NewRedemption constructs a Redemption observer.
func NewRedemption() *Redemption {
	return &Redemption{}
}

// ObserveSettle records a settlement attempt.
func (Redemption) ObserveSettle(err error, requests int) {
	status := statusOf(err)
	settlementTotal.WithLabelValues(status).Inc()
	settlementRequests.WithLabelValues(status).Observe(float64(requests))
}

// ObserveComplete records a completion attempt.
func (Redemption) ObserveComplete(err error, receipts int, started time.Time) {
	status := statusOf(err)
	completeTotal.WithLabelValues(status).Inc()
	completeDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	completeReceipts.WithLabelValues(status).Observe(float64(receipts))
}

// ObserveSlashing records the ratio applied to one redemption/asset pair.
func (Redemption) ObserveSlashing(asset model.AssetID, ratio float64) {
	slashingRatio.WithLabelValues(string(asset)).Observe(ratio)
}

// SetOpenRedemptions records the number of in-flight redemptions.
func (Redemption) SetOpenRedemptions(n int) {
	openRedemptions.Set(float64(n))
}
