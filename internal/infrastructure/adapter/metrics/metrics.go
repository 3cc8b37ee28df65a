package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the prometheus collectors for ledger operations
type Metrics struct {
	TransactionsRecorded *prometheus.CounterVec
	ApprovalsIssued      prometheus.Counter
	ApprovalRepeats      prometheus.Counter
	CouponsRedeemed      prometheus.Counter
	DebitsRejected       prometheus.Counter
	RequestDuration      *prometheus.HistogramVec
}

// New creates the collectors and registers them with the given registerer
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		TransactionsRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_transactions_recorded_total",
			Help: "Credit transactions appended to the ledger, by cause.",
		}, []string{"type"}),
		ApprovalsIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "approvals_issued_total",
			Help: "Approvals newly created.",
		}),
		ApprovalRepeats: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "approvals_repeated_total",
			Help: "Approval requests answered from an existing record.",
		}),
		CouponsRedeemed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "coupons_redeemed_total",
			Help: "Coupon redemptions credited.",
		}),
		DebitsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ledger_debits_rejected_total",
			Help: "Debits rejected by the non-negativity guard.",
		}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	reg.MustRegister(
		m.TransactionsRecorded,
		m.ApprovalsIssued,
		m.ApprovalRepeats,
		m.CouponsRedeemed,
		m.DebitsRejected,
		m.RequestDuration,
	)
	return m
}
