// internal/metrics/prometheus.go
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

// PrometheusMetrics records engine commands as Prometheus series.
type PrometheusMetrics struct {
	commandsTotal   *prometheus.CounterVec
	commandDuration *prometheus.HistogramVec
	transferAmount  prometheus.Histogram
	loanAmount      prometheus.Histogram
	accountsOpen    prometheus.Gauge
}

// NewPrometheusMetrics registers the bank collectors on reg.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		commandsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bank_commands_total",
				Help: "Total number of bank commands by outcome",
			},
			[]string{"command", "outcome"},
		),
		commandDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bank_command_duration_seconds",
				Help:    "Bank command execution time",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
			},
			[]string{"command"},
		),
		transferAmount: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bank_transfer_amount",
				Help:    "Amounts moved by successful transfers",
				Buckets: prometheus.ExponentialBuckets(10, 4, 8),
			},
		),
		loanAmount: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bank_loan_amount",
				Help:    "Amounts granted by approved loans",
				Buckets: prometheus.ExponentialBuckets(10, 4, 8),
			},
		),
		accountsOpen: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "bank_accounts_open",
				Help: "Accounts currently in the directory",
			},
		),
	}
}

// RecordCommand counts one command execution and observes its duration.
func (m *PrometheusMetrics) RecordCommand(command, outcome string, duration time.Duration) {
	m.commandsTotal.WithLabelValues(command, outcome).Inc()
	m.commandDuration.WithLabelValues(command).Observe(duration.Seconds())
}

// RecordTransfer observes the amount of a successful transfer.
func (m *PrometheusMetrics) RecordTransfer(amount decimal.Decimal) {
	m.transferAmount.Observe(amount.InexactFloat64())
}

// RecordLoan observes the amount of an approved loan.
func (m *PrometheusMetrics) RecordLoan(amount decimal.Decimal) {
	m.loanAmount.Observe(amount.InexactFloat64())
}

// SetAccountsOpen reports the current directory size.
func (m *PrometheusMetrics) SetAccountsOpen(n int) {
	m.accountsOpen.Set(float64(n))
}
