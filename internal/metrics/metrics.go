package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	PaymentsIngested = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "kassabot_payments_ingested_total",
		Help: "Incoming bank payments stored",
	})
	PaymentsDeduplicated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "kassabot_payments_deduplicated_total",
		Help: "Incoming payments resolved to an existing row",
	})
	PaymentsMatched = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "kassabot_payments_matched_total",
		Help: "Payments matched to a pending request",
	})
	SettlementAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kassabot_settlement_attempts_total",
		Help: "Vendor settlement calls by bookmaker and result",
	}, []string{"bookmaker", "result"})
)

func init() {
	prometheus.MustRegister(
		PaymentsIngested,
		PaymentsDeduplicated,
		PaymentsMatched,
		SettlementAttempts,
	)
}
