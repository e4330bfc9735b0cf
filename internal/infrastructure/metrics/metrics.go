package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Transaction metrics
	TransactionsProcessed *prometheus.CounterVec
	TransactionDuration   prometheus.Histogram

	// Booking metrics
	BookingTransitions *prometheus.CounterVec

	// Account metrics
	AccountsLocked prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		TransactionsProcessed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "txledger_transactions_processed_total",
				Help: "Total number of processed transactions by type and outcome",
			},
			[]string{"type", "status"},
		),
		TransactionDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "txledger_transaction_duration_seconds",
				Help:    "Transaction processing duration in seconds",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
			},
		),
		BookingTransitions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "txledger_booking_transitions_total",
				Help: "Total number of booking state transitions by resulting state",
			},
			[]string{"state"},
		),
		AccountsLocked: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "txledger_accounts_locked_total",
				Help: "Total number of accounts locked by chargebacks",
			},
		),
	}
}
