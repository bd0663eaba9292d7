package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SessionMetrics holds all Prometheus metrics for the Session module
type SessionMetrics struct {
	// Lifecycle metrics
	SessionsCreated   *prometheus.CounterVec
	SessionsCompleted *prometheus.CounterVec
	SessionsTimedOut  *prometheus.CounterVec
	DeadlineSweeps    prometheus.Counter
	SweptSessions     prometheus.Counter

	// Proof metrics
	ProofsAccepted *prometheus.CounterVec
	ProofsRejected *prometheus.CounterVec

	// Settlement metrics
	SettlementVolume *prometheus.CounterVec
	TreasuryFees     *prometheus.CounterVec

	// Ledger metrics
	DepositsReceived     *prometheus.CounterVec
	WithdrawalsProcessed *prometheus.CounterVec
	EarningsWithdrawn    *prometheus.CounterVec
}

var (
	sessionMetricsOnce sync.Once
	sessionMetrics     *SessionMetrics
)

// NewSessionMetrics creates and registers Session metrics (singleton pattern)
func NewSessionMetrics() *SessionMetrics {
	sessionMetricsOnce.Do(func() {
		sessionMetrics = &SessionMetrics{
			// Lifecycle metrics
			SessionsCreated: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paystream",
					Subsystem: "session",
					Name:      "sessions_created_total",
					Help:      "Total sessions created",
				},
				[]string{"denom"},
			),
			SessionsCompleted: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paystream",
					Subsystem: "session",
					Name:      "sessions_completed_total",
					Help:      "Total sessions completed voluntarily",
				},
				[]string{"denom"},
			),
			SessionsTimedOut: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paystream",
					Subsystem: "session",
					Name:      "sessions_timed_out_total",
					Help:      "Total sessions closed by timeout",
				},
				[]string{"denom"},
			),
			DeadlineSweeps: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "paystream",
					Subsystem: "session",
					Name:      "deadline_sweeps_total",
					Help:      "End-of-block deadline sweep runs",
				},
			),
			SweptSessions: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "paystream",
					Subsystem: "session",
					Name:      "swept_sessions_total",
					Help:      "Sessions timed out by the deadline sweep",
				},
			),

			// Proof metrics
			ProofsAccepted: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paystream",
					Subsystem: "session",
					Name:      "proofs_accepted_total",
					Help:      "Total usage proofs accepted",
				},
				[]string{"denom"},
			),
			ProofsRejected: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paystream",
					Subsystem: "session",
					Name:      "proofs_rejected_total",
					Help:      "Total usage proofs rejected by verification",
				},
				[]string{"denom"},
			),

			// Settlement metrics
			SettlementVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paystream",
					Subsystem: "session",
					Name:      "settlement_volume_total",
					Help:      "Total gross payment settled",
				},
				[]string{"denom"},
			),
			TreasuryFees: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paystream",
					Subsystem: "session",
					Name:      "treasury_fees_total",
					Help:      "Total protocol fees accrued to the treasury",
				},
				[]string{"denom"},
			),

			// Ledger metrics
			DepositsReceived: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paystream",
					Subsystem: "session",
					Name:      "deposits_received_total",
					Help:      "Total prepaid ledger deposits",
				},
				[]string{"denom"},
			),
			WithdrawalsProcessed: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paystream",
					Subsystem: "session",
					Name:      "withdrawals_processed_total",
					Help:      "Total prepaid ledger withdrawals",
				},
				[]string{"denom"},
			),
			EarningsWithdrawn: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paystream",
					Subsystem: "session",
					Name:      "earnings_withdrawn_total",
					Help:      "Total host earnings withdrawn",
				},
				[]string{"denom"},
			),
		}
	})
	return sessionMetrics
}

// GetSessionMetrics returns the singleton Session metrics instance
func GetSessionMetrics() *SessionMetrics {
	if sessionMetrics == nil {
		return NewSessionMetrics()
	}
	return sessionMetrics
}
