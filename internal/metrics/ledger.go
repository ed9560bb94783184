package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/EigenExplorer/liquid-avs-token/internal/model"
)

var (
	ledgerPoolBalance = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "lat",
		Subsystem: "ledger",
		Name:      "pool_balance",
		Help:      "Current stored pool balance per asset in base units.",
	}, []string{"asset", "pool"})

	ledgerReconcileTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lat",
		Subsystem: "ledger",
		Name:      "reconcile_total",
		Help:      "Count of custody reconciliation checks.",
	}, []string{"asset", "status"})

	ledgerReconcileDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lat",
		Subsystem: "ledger",
		Name:      "reconcile_duration_seconds",
		Help:      "Duration of custody reconciliation checks.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"asset", "status"})
)

// Ledger tracks balance-ledger metrics.
type Ledger struct{}

// NewLedger constructs a Ledger observer.
func NewLedger() *Ledger {
	return &Ledger{}
}

// SetPool records the stored balance of one pool.
func (Ledger) SetPool(asset model.AssetID, pool model.Pool, amount uint64) {
	ledgerPoolBalance.WithLabelValues(string(asset), string(pool)).Set(float64(amount))
}

// ObserveReconcile records the outcome and duration of a custody check.
func (Ledger) ObserveReconcile(asset model.AssetID, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	ledgerReconcileTotal.WithLabelValues(string(asset), status).Inc()
	ledgerReconcileDuration.WithLabelValues(string(asset), status).
		Observe(time.Since(started).Seconds())
}
